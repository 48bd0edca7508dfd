package server

import (
	"net/http"
	"time"

	"github.com/vango-dev/vango-ui/pkg/branding"
	"github.com/vango-dev/vango-ui/pkg/popover"
)

// Config holds playground server settings.
type Config struct {
	// Address is the listen address (default ":3000").
	Address string

	// Branding is provided to the demo page.
	Branding branding.Branding

	// Popover holds defaults applied to every demo popover.
	Popover []popover.Option

	// QueueSize is the per-session event queue capacity.
	QueueSize int

	// CheckOrigin validates the Origin header of WebSocket upgrades.
	// Default: same host only.
	CheckOrigin func(r *http.Request) bool

	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	ShutdownTimeout   time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Address:           ":3000",
		QueueSize:         256,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

// withDefaults fills unset fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Address == "" {
		c.Address = d.Address
	}
	if c.QueueSize <= 0 {
		c.QueueSize = d.QueueSize
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = d.ReadHeaderTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	return c
}
