package server

import (
	"context"
	_ "embed"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	verrors "github.com/vango-dev/vango-ui/internal/errors"
	httpmw "github.com/vango-dev/vango-ui/pkg/middleware"
	"github.com/vango-dev/vango-ui/pkg/popover"
	"github.com/vango-dev/vango-ui/pkg/render"
	"github.com/vango-dev/vango-ui/pkg/vango"
	"github.com/vango-dev/vango-ui/pkg/vdom"
)

//go:embed static/client.js
var clientScript string

const tracerName = "github.com/vango-dev/vango-ui/pkg/server"

// Server is the playground HTTP/WebSocket server.
type Server struct {
	config   Config
	router   chi.Router
	upgrader websocket.Upgrader
	app      App

	registry       *prometheus.Registry
	metrics        *Metrics
	popoverMetrics *popover.Metrics
	httpMetrics    *httpmw.Metrics
	tracerProvider trace.TracerProvider
	tracer         trace.Tracer
	logger         *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session

	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger.With("component", "server")
		}
	}
}

// WithRegistry sets the Prometheus registry metrics are registered on and
// served from. Default: a fresh registry per server.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// WithTracerProvider sets the tracer provider for request and event spans.
// Default: the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Server) {
		if tp != nil {
			s.tracerProvider = tp
		}
	}
}

// WithApp replaces the demo page.
func WithApp(app App) Option {
	return func(s *Server) {
		s.app = app
	}
}

// New creates a Server.
func New(config Config, opts ...Option) *Server {
	s := &Server{
		config:   config.withDefaults(),
		registry:       prometheus.NewRegistry(),
		tracerProvider: otel.GetTracerProvider(),
		logger:         slog.Default().With("component", "server"),
		sessions:       make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.tracer = s.tracerProvider.Tracer(tracerName)
	s.metrics = NewMetrics(s.registry)
	s.httpMetrics = httpmw.NewMetrics(httpmw.WithRegistry(s.registry))
	s.popoverMetrics = popover.NewMetrics(popover.MetricsConfig{Registry: s.registry})

	if s.app == nil {
		popoverOpts := append([]popover.Option{
			popover.WithMetrics(s.popoverMetrics),
			popover.WithLogger(s.logger),
		}, s.config.Popover...)
		s.app = Demo(s.config.Branding, popoverOpts...)
	}

	checkOrigin := s.config.CheckOrigin
	if checkOrigin == nil {
		checkOrigin = sameOrigin
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     checkOrigin,
	}

	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.httpMetrics.Handler)
	r.Use(httpmw.OpenTelemetry(
		httpmw.WithTracerProvider(s.tracerProvider),
		httpmw.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/metrics" && r.URL.Path != "/healthz"
		}),
	))

	r.Get("/", s.handlePage)
	r.Get("/live", s.handleLive)
	r.Get("/client.js", s.handleScript)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})
	return r
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Registry returns the registry the server's metrics are registered on.
func (s *Server) Registry() *prometheus.Registry {
	return s.registry
}

// SessionCount returns the number of connected sessions.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// handlePage renders the page shell with a static first render. The live
// session replaces the body once connected.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	owner := vango.NewOwner(nil)
	defer owner.Dispose()

	view, err := s.app(owner)
	if err != nil {
		s.logger.Error("mount failed", "error", err)
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	body := view()
	vdom.AssignHIDs(body, vdom.NewHIDGenerator())

	page := vdom.Html(
		vdom.Lang("en"),
		vdom.Head(
			vdom.Meta(vdom.Charset("utf-8")),
			vdom.Meta(vdom.Name("viewport"), vdom.ContentAttr("width=device-width, initial-scale=1")),
			vdom.Title(vdom.Text("vango-ui playground")),
		),
		vdom.Body(
			vdom.Div(vdom.ID("app"), body),
			vdom.Script(vdom.Src("/client.js")),
		),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte("<!DOCTYPE html>"))
	if err := render.NewRenderer(render.RendererConfig{}).RenderToWriter(w, page); err != nil {
		s.logger.Error("render failed", "error", err)
	}
}

func (s *Server) handleScript(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Write([]byte(clientScript))
}

// handleLive upgrades the connection and serves a session until the client
// goes away.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.metrics.wsError("upgrade")
		s.logger.Warn("upgrade failed", "error", err)
		return
	}

	sess, err := newSession(conn, s.app, s.config, s.logger, s.metrics, s.tracer)
	if err != nil {
		s.logger.Error("mount failed", "error", err)
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "mount failed"))
		conn.Close()
		return
	}

	s.register(sess)
	defer s.unregister(sess)

	sess.logger.Info("session opened", "remote", r.RemoteAddr)
	if err := sess.serve(r.Context()); err != nil {
		sess.logger.Warn("session ended", "error", err)
	}
	sess.logger.Info("session closed")
}

func (s *Server) register(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.id] = sess
	s.metrics.sessionOpened()
}

func (s *Server) unregister(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sess.id)
	s.metrics.sessionClosed()
}

// Run serves on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return verrors.New("E300").WithDetail("listen " + s.config.Address).Wrap(err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("server starting", "address", ln.Addr().String())
		if err := s.httpServer.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return verrors.New("E300").WithDetail("serve").Wrap(err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return s.Shutdown(context.WithoutCancel(ctx))
	})
	return g.Wait()
}

// Shutdown closes every session and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.mu.Lock()
	for _, sess := range s.sessions {
		sess.close()
	}
	s.mu.Unlock()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return verrors.New("E300").WithDetail("shutdown").Wrap(err)
		}
	}
	s.logger.Info("server shutdown complete")
	return nil
}

// sameOrigin accepts upgrades without an Origin header and those whose
// Origin host matches the request host.
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Host == r.Host
}
