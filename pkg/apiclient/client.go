package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"reflect"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vango-ui/internal/errors"
	"github.com/vango-dev/vango-ui/internal/validate"
)

// DefaultVersion is the API version path appended to base addresses.
const DefaultVersion = "/api/v1"

// DefaultTimeout bounds every request unless overridden.
const DefaultTimeout = 10 * time.Second

const tracerName = "github.com/vango-dev/vango-ui/pkg/apiclient"

// maxErrorBody is how much of an error response body is kept for the
// error detail.
const maxErrorBody = 512

// Client is a JSON client bound to one service.
type Client struct {
	service string
	base    *url.URL
	http    *http.Client
	timeout time.Duration
	tracer  trace.Tracer
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient uses a copy of hc for requests. The transport is shared;
// jar and timeout changes made by this package apply to the copy only.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			cp := *hc
			c.http = &cp
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTracerProvider sets the tracer provider; the global one is used
// otherwise.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		if tp != nil {
			c.tracer = tp.Tracer(tracerName)
		}
	}
}

// New creates a client for service at baseURL + version. An empty version
// means DefaultVersion.
func New(service, baseURL, version string, opts ...Option) (*Client, error) {
	base, err := parseBase(baseURL, version)
	if err != nil {
		return nil, err
	}

	c := &Client{
		service: service,
		base:    base,
		http:    &http.Client{Timeout: DefaultTimeout},
		tracer:  otel.Tracer(tracerName),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		c.http.Timeout = c.timeout
	}
	c.logger = c.logger.With("component", "apiclient", "service", service)
	return c, nil
}

func parseBase(baseURL, version string) (*url.URL, error) {
	if version == "" {
		version = DefaultVersion
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.New("E200").WithDetailf("%q", baseURL).Wrap(err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, errors.New("E200").
			WithDetailf("%q must be an absolute http(s) URL", baseURL).
			WithSuggestion("Set api.authURL and api.videoURL in vango-ui.json")
	}
	return u.JoinPath(version), nil
}

// NewVideoClient creates the video service client.
func NewVideoClient(baseURL, version string, opts ...Option) (*Client, error) {
	return New("video", baseURL, version, opts...)
}

// Service returns the service name the client was created for.
func (c *Client) Service() string { return c.service }

// BaseURL returns the base address including the version path.
func (c *Client) BaseURL() string { return c.base.String() }

// Do sends in as JSON to path (relative to the base address) and decodes
// the response into out. Either may be nil. Struct request bodies are
// validated before sending.
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	endpoint := c.base.JoinPath(path)
	detail := method + " " + endpoint.Path

	var body io.Reader
	if in != nil {
		if isStruct(in) {
			if err := validate.Struct(in, "E201"); err != nil {
				return err
			}
		}
		data, err := json.Marshal(in)
		if err != nil {
			return errors.New("E201").WithDetail(detail).Wrap(err)
		}
		body = bytes.NewReader(data)
	}

	ctx, span := c.tracer.Start(ctx, c.service+" "+method+" "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", endpoint.String()),
			attribute.String("vango_ui.service", c.service),
		),
	)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return c.fail(span, errors.New("E201").WithDetail(detail).Wrap(err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return c.fail(span, errors.New("E202").WithDetail(detail).Wrap(err))
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	c.logger.Debug("request", "method", method, "path", endpoint.Path,
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		verr := errors.New("E203").WithStatus(resp.StatusCode).WithDetail(detail)
		if msg := strings.TrimSpace(string(snippet)); msg != "" {
			verr = verr.Wrap(fmt.Errorf("%s", msg))
		}
		return c.fail(span, verr)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return c.fail(span, errors.New("E204").WithDetail(detail).Wrap(err))
	}
	return nil
}

func (c *Client) fail(span trace.Span, err *errors.VangoError) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Message)
	c.logger.Debug("request failed", "error", err)
	return err
}

func isStruct(v any) bool {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

// AuthClient is the authentication service client.
type AuthClient struct {
	*Client
}

// NewAuthClient creates the authentication service client. Requests carry
// cookies set by the service.
func NewAuthClient(baseURL, version string, opts ...Option) (*AuthClient, error) {
	c, err := New("auth", baseURL, version, opts...)
	if err != nil {
		return nil, err
	}
	if c.http.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		c.http.Jar = jar
	}
	return &AuthClient{Client: c}, nil
}

// CreateOrganisation registers an organisation and returns its API key.
func (a *AuthClient) CreateOrganisation(ctx context.Context, req CreateOrganisationRequest) (CreateOrganisationResponse, error) {
	var resp CreateOrganisationResponse
	err := a.Do(ctx, http.MethodPost, "/organisations", req, &resp)
	return resp, err
}

// ValidateUser checks a user's credentials and returns their API key.
func (a *AuthClient) ValidateUser(ctx context.Context, req ValidateUserRequest) (ValidateUserResponse, error) {
	var resp ValidateUserResponse
	err := a.Do(ctx, http.MethodPost, "/users/validate", req, &resp)
	return resp, err
}
