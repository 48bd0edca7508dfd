package vango

import (
	"sync"
	"sync/atomic"
)

var ownerIDCounter atomic.Uint64

// Cleanup is a function that releases a resource.
type Cleanup func()

// Owner represents a component scope that owns resources and context
// values. Owners form a hierarchy mirroring the component tree.
type Owner struct {
	id uint64

	// parent is nil for the root Owner (typically the session).
	parent *Owner

	children   []*Owner
	childrenMu sync.Mutex

	// cleanups registered via OnCleanup, run in reverse order on Dispose.
	cleanups   []Cleanup
	cleanupsMu sync.Mutex

	// values stores context values for this scope.
	values   map[any]any
	valuesMu sync.RWMutex

	disposed atomic.Bool
}

// NewOwner creates a new Owner with the given parent.
// The new Owner is registered as a child of the parent.
// If parent is nil, creates a root Owner.
func NewOwner(parent *Owner) *Owner {
	o := &Owner{
		id:     ownerIDCounter.Add(1),
		parent: parent,
	}
	if parent != nil {
		parent.addChild(o)
	}
	return o
}

// ID returns the unique identifier for this Owner.
func (o *Owner) ID() uint64 {
	return o.id
}

// Parent returns the parent Owner, or nil if this is a root Owner.
func (o *Owner) Parent() *Owner {
	return o.parent
}

// IsDisposed returns true if this Owner has been disposed.
func (o *Owner) IsDisposed() bool {
	return o.disposed.Load()
}

func (o *Owner) addChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	o.children = append(o.children, child)
}

func (o *Owner) removeChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()

	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

// Children returns a snapshot of the live child Owners.
func (o *Owner) Children() []*Owner {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	return append([]*Owner(nil), o.children...)
}

// OnCleanup registers a cleanup function to run when this Owner is disposed.
// If the Owner is already disposed the cleanup runs immediately.
func (o *Owner) OnCleanup(fn Cleanup) {
	if fn == nil {
		return
	}
	if o.disposed.Load() {
		fn()
		return
	}

	o.cleanupsMu.Lock()
	defer o.cleanupsMu.Unlock()
	o.cleanups = append(o.cleanups, fn)
}

// SetValue sets a value on this Owner.
func (o *Owner) SetValue(key, value any) {
	o.valuesMu.Lock()
	defer o.valuesMu.Unlock()

	if o.values == nil {
		o.values = make(map[any]any)
	}
	o.values[key] = value
}

// GetValue retrieves a value from this Owner or its parents.
func (o *Owner) GetValue(key any) any {
	val, _ := o.lookup(key)
	return val
}

func (o *Owner) lookup(key any) (any, bool) {
	for cur := o; cur != nil; cur = cur.parent {
		cur.valuesMu.RLock()
		val, ok := cur.values[key]
		cur.valuesMu.RUnlock()
		if ok {
			return val, true
		}
	}
	return nil, false
}

// Dispose disposes this Owner and all its children, then runs its cleanups.
// Children are disposed in reverse order (last created first) and cleanups
// run last-registered first. A panicking cleanup does not stop the others;
// the first panic is re-raised once all cleanups ran.
// Dispose is idempotent.
func (o *Owner) Dispose() {
	if o.disposed.Swap(true) {
		return
	}

	if o.parent != nil {
		o.parent.removeChild(o)
	}

	o.childrenMu.Lock()
	children := o.children
	o.children = nil
	o.childrenMu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	o.cleanupsMu.Lock()
	cleanups := o.cleanups
	o.cleanups = nil
	o.cleanupsMu.Unlock()

	var firstPanic any
	for i := len(cleanups) - 1; i >= 0; i-- {
		func() {
			defer func() {
				if r := recover(); r != nil && firstPanic == nil {
					firstPanic = r
				}
			}()
			cleanups[i]()
		}()
	}

	o.valuesMu.Lock()
	o.values = nil
	o.valuesMu.Unlock()

	if firstPanic != nil {
		panic(firstPanic)
	}
}
