package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	verrors "github.com/vango-dev/vango-ui/internal/errors"
	"github.com/vango-dev/vango-ui/pkg/dom"
	"github.com/vango-dev/vango-ui/pkg/render"
	"github.com/vango-dev/vango-ui/pkg/vango"
	"github.com/vango-dev/vango-ui/pkg/vdom"
)

const (
	readTimeout  = 60 * time.Second
	pingInterval = 25 * time.Second
	sendBuffer   = 16
)

var errClientGone = errors.New("server: client disconnected")

// View renders the current state of a mounted page.
type View func() *vdom.VNode

// App mounts a page on a session owner. Components created under owner
// find the session's scheduler and document through vango.SchedulerContext
// and dom.DocumentContext.
type App func(owner *vango.Owner) (View, error)

// update is the message sent to the client after every render.
type update struct {
	HTML string `json:"html"`
}

// Session is one connected client. All component state is touched only on
// the session's loop goroutine.
type Session struct {
	id     string
	conn   *websocket.Conn
	owner  *vango.Owner
	loop   *vango.Loop
	doc    *dom.Document
	hids   *vdom.HIDGenerator
	view   View
	logger *slog.Logger

	renderer *render.Renderer
	metrics  *Metrics
	tracer   trace.Tracer

	// handlers maps "<hid>_on<event>" to the element handler. Loop only.
	handlers map[string]any
	lastHTML string

	send      chan []byte
	closeOnce sync.Once
}

func newSession(conn *websocket.Conn, app App, cfg Config, logger *slog.Logger, metrics *Metrics, tracer trace.Tracer) (*Session, error) {
	s := &Session{
		id:       uuid.NewString(),
		conn:     conn,
		owner:    vango.NewOwner(nil),
		doc:      dom.NewDocument(),
		hids:     vdom.NewHIDGenerator(),
		renderer: render.NewRenderer(render.RendererConfig{}),
		metrics:  metrics,
		tracer:   tracer,
		handlers: make(map[string]any),
		send:     make(chan []byte, sendBuffer),
	}
	s.logger = logger.With("session_id", s.id)
	s.loop = vango.NewLoop(
		vango.WithQueueSize(cfg.QueueSize),
		vango.WithLoopLogger(s.logger),
		vango.WithAfterEach(s.flush),
	)

	dom.DocumentContext.Provide(s.owner, s.doc)
	vango.SchedulerContext.Provide(s.owner, vango.NewScheduler(s.loop))

	view, err := app(s.owner)
	if err != nil {
		s.owner.Dispose()
		return nil, err
	}
	s.view = view
	return s, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Owner returns the root owner of the session's component tree.
func (s *Session) Owner() *vango.Owner { return s.owner }

// Document returns the session's document-level event target.
func (s *Session) Document() *dom.Document { return s.doc }

// serve runs the session until the client disconnects or ctx is done. The
// owner is disposed on return, which disposes every component and removes
// their document listeners.
func (s *Session) serve(ctx context.Context) error {
	defer s.owner.Dispose()
	defer s.loop.Close()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.loop.Run(ctx) })
	g.Go(func() error { return s.writeLoop(ctx) })
	g.Go(func() error {
		defer s.close()
		return s.readLoop()
	})

	// The first render goes through the loop like any other update.
	s.loop.Dispatch(func() {})

	go func() {
		<-ctx.Done()
		s.close()
	}()

	err := g.Wait()
	if errors.Is(err, errClientGone) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// readLoop decodes client events and queues them on the loop.
func (s *Session) readLoop() error {
	for {
		s.conn.SetReadDeadline(time.Now().Add(readTimeout))
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.metrics.wsError("read")
				s.logger.Error("read error", "error", err)
			}
			return errClientGone
		}

		ev, err := decodeEvent(msg)
		if err != nil {
			s.metrics.wsError("decode")
			s.logger.Warn("invalid event", "error", err)
			continue
		}

		if err := s.loop.TryDispatch(func() { s.handleEvent(ev) }); err != nil {
			s.metrics.wsError("queue_full")
			s.logger.Warn("event dropped", "type", ev.Type,
				"error", verrors.New("E302").Wrap(err))
		}
	}
}

// decodeEvent parses a client message of the form
// {"type":"click","hid":"h3","button":0,"key":""}.
func decodeEvent(msg []byte) (dom.Event, error) {
	var ev dom.Event
	if err := json.Unmarshal(msg, &ev); err != nil {
		return ev, verrors.New("E301").Wrap(err)
	}
	if !ev.Type.Valid() {
		return ev, verrors.New("E301").WithDetailf("unknown event type %q", ev.Type)
	}
	return ev, nil
}

// writeLoop sends queued updates and keeps the connection alive.
func (s *Session) writeLoop(ctx context.Context) error {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				s.metrics.wsError("write")
				return errClientGone
			}
			s.metrics.renderSent()

		case <-ticker.C:
			deadline := time.Now().Add(10 * time.Second)
			if err := s.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return errClientGone
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// handleEvent runs on the loop. Document listeners see the event before
// the element handler, as capture-phase listeners do in the browser.
func (s *Session) handleEvent(ev dom.Event) {
	start := time.Now()
	_, span := s.tracer.Start(context.Background(), "event "+string(ev.Type),
		trace.WithAttributes(
			attribute.String("vango.session_id", s.id),
			attribute.String("vango.event", string(ev.Type)),
			attribute.String("vango.hid", ev.Target),
		),
	)
	defer span.End()
	defer func() { s.metrics.event(string(ev.Type), time.Since(start)) }()

	s.doc.Publish(ev)

	h, ok := s.handlers[ev.Target+"_"+ev.Type.Handler()]
	if !ok {
		return
	}
	if !invoke(h, ev) {
		span.SetStatus(codes.Error, "unsupported handler")
		s.logger.Warn("unsupported handler", "hid", ev.Target, "type", ev.Type)
	}
}

// invoke calls a handler of a supported signature.
func invoke(h any, ev dom.Event) bool {
	switch fn := h.(type) {
	case func():
		fn()
	case func(dom.Event):
		fn(ev)
	default:
		return false
	}
	return true
}

// flush re-renders the page and queues the HTML if it changed. Runs on the
// loop after every dispatched function.
func (s *Session) flush() {
	html, err := s.renderView()
	if err != nil {
		s.logger.Error("render failed", "error", err)
		return
	}
	if html == s.lastHTML {
		return
	}
	s.lastHTML = html

	msg, err := json.Marshal(update{HTML: html})
	if err != nil {
		s.logger.Error("encode failed", "error", err)
		return
	}
	select {
	case s.send <- msg:
	default:
		s.metrics.wsError("send_full")
		s.logger.Warn("send buffer full, dropping update")
	}
}

// renderView renders the view, assigns hydration IDs and rebuilds the
// handler table.
func (s *Session) renderView() (string, error) {
	tree := s.view()

	s.hids.Reset()
	vdom.AssignHIDs(tree, s.hids)

	clear(s.handlers)
	vdom.Walk(tree, func(n *vdom.VNode) bool {
		for key, h := range n.Handlers() {
			if h != nil {
				s.handlers[n.HID+"_"+key] = h
			}
		}
		return true
	})

	return s.renderer.RenderToString(tree)
}

func (s *Session) close() {
	s.closeOnce.Do(func() {
		s.conn.Close()
	})
}
