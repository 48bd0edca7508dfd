package dom

import (
	"slices"
	"sync"
)

// Document is the document-level event target of a session.
//
// Listeners registered with Subscribe see every published event of the
// types they asked for, regardless of target. Publish delivers to a
// snapshot of the listeners, so a listener may unsubscribe itself (or
// others) while being called.
type Document struct {
	mu        sync.Mutex
	nextID    uint64
	listeners map[uint64]*listener
}

type listener struct {
	types map[Type]struct{}
	fn    func(Event)
}

// NewDocument creates an empty Document.
func NewDocument() *Document {
	return &Document{listeners: make(map[uint64]*listener)}
}

// Subscribe registers fn for the given event types and returns the function
// that removes it. The returned function is idempotent.
func (d *Document) Subscribe(fn func(Event), types ...Type) (unsubscribe func()) {
	l := &listener{
		types: make(map[Type]struct{}, len(types)),
		fn:    fn,
	}
	for _, t := range types {
		l.types[t] = struct{}{}
	}

	d.mu.Lock()
	d.nextID++
	id := d.nextID
	d.listeners[id] = l
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			delete(d.listeners, id)
			d.mu.Unlock()
		})
	}
}

// Publish delivers ev to every listener subscribed to its type, in
// subscription order. A listener removed by an earlier listener during the
// same Publish is not called.
func (d *Document) Publish(ev Event) {
	d.mu.Lock()
	snapshot := make([]uint64, 0, len(d.listeners))
	for id, l := range d.listeners {
		if _, ok := l.types[ev.Type]; ok {
			snapshot = append(snapshot, id)
		}
	}
	d.mu.Unlock()

	slices.Sort(snapshot)
	for _, id := range snapshot {
		d.mu.Lock()
		l, ok := d.listeners[id]
		d.mu.Unlock()
		if ok {
			l.fn(ev)
		}
	}
}

// ListenerCount returns the number of live subscriptions.
func (d *Document) ListenerCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners)
}
