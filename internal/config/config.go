package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/vango-dev/vango-ui/internal/errors"
	"github.com/vango-dev/vango-ui/internal/validate"
	"github.com/vango-dev/vango-ui/pkg/popover"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "vango-ui.json"

	// EnvVar overrides the configured environment.
	EnvVar = "VANGO_UI_ENV"

	// DefaultPort is the default playground server port.
	DefaultPort = 3000

	// DefaultHost is the default playground server host.
	DefaultHost = "localhost"

	// DefaultAPIVersion is the version path appended to API base URLs.
	DefaultAPIVersion = "/api/v1"
)

// Environments.
const (
	Development = "development"
	Staging     = "staging"
	Production  = "production"
)

// apiDefaults holds the base URLs of the backing services per environment.
var apiDefaults = map[string]struct{ auth, video string }{
	Development: {"http://localhost:8081", "http://localhost:8082"},
	Staging:     {"https://auth.staging.vango.dev", "https://video.staging.vango.dev"},
	Production:  {"https://auth.vango.dev", "https://video.vango.dev"},
}

// Config represents the complete vango-ui.json configuration.
type Config struct {
	// Environment selects the API defaults.
	Environment string `json:"environment,omitempty"`

	// Server contains playground server configuration.
	Server ServerConfig `json:"server,omitempty"`

	// API contains the backing service endpoints.
	API APIConfig `json:"api,omitempty"`

	// Popover contains defaults applied to every popover the host creates.
	Popover PopoverConfig `json:"popover,omitempty"`

	// Branding is provided to the component tree.
	Branding BrandingConfig `json:"branding,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains playground server settings.
type ServerConfig struct {
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty" validate:"gte=0,lte=65535"`
}

// APIConfig contains the auth and video service endpoints.
type APIConfig struct {
	AuthURL  string `json:"authURL,omitempty" validate:"omitempty,http_url"`
	VideoURL string `json:"videoURL,omitempty" validate:"omitempty,http_url"`
	Version  string `json:"version,omitempty" validate:"api_version"`
}

// PopoverConfig contains popover defaults.
type PopoverConfig struct {
	Side    string `json:"side,omitempty" validate:"side"`
	Align   string `json:"align,omitempty" validate:"align"`
	Trigger string `json:"trigger,omitempty" validate:"trigger"`

	// HoverCloseDelay uses Go duration syntax ("150ms").
	HoverCloseDelay string `json:"hoverCloseDelay,omitempty"`
}

// BrandingConfig mirrors branding.Branding without the secret.
type BrandingConfig struct {
	OrganisationID string `json:"organisationId,omitempty"`
	BrandColor     string `json:"brandColor,omitempty" validate:"omitempty,hexcolor"`
}

// New creates a new Config with default values.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from the specified directory.
// It looks for vango-ui.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path, applies
// defaults and the environment override, and validates the result.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E100").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path))
		}
		return nil, errors.New("E101").Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E101").
			WithDetail("Failed to parse " + path + ": " + err.Error())
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields. The API URLs
// depend on the environment, so the override is applied first.
func (c *Config) applyDefaults() {
	if env := strings.TrimSpace(os.Getenv(EnvVar)); env != "" {
		c.Environment = env
	}
	c.Environment = strings.ToLower(c.Environment)
	if c.Environment == "" {
		c.Environment = Development
	}

	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}

	if c.API.Version == "" {
		c.API.Version = DefaultAPIVersion
	}
	if urls, ok := apiDefaults[c.Environment]; ok {
		if c.API.AuthURL == "" {
			c.API.AuthURL = urls.auth
		}
		if c.API.VideoURL == "" {
			c.API.VideoURL = urls.video
		}
	}

	if c.Popover.Side == "" {
		c.Popover.Side = string(popover.SideBottom)
	}
	if c.Popover.Align == "" {
		c.Popover.Align = string(popover.AlignCenter)
	}
	if c.Popover.Trigger == "" {
		c.Popover.Trigger = popover.TriggerClick.String()
	}
	if c.Popover.HoverCloseDelay == "" {
		c.Popover.HoverCloseDelay = popover.DefaultHoverCloseDelay.String()
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, ok := apiDefaults[c.Environment]; !ok {
		return errors.New("E103").WithDetailf("environment %q", c.Environment)
	}
	if err := validate.Struct(c, "E102"); err != nil {
		return err
	}
	if _, err := c.HoverCloseDelay(); err != nil {
		return err
	}
	return nil
}

// HoverCloseDelay parses Popover.HoverCloseDelay. Non-positive values are
// rejected.
func (c *Config) HoverCloseDelay() (time.Duration, error) {
	s := c.Popover.HoverCloseDelay
	if s == "" {
		return popover.DefaultHoverCloseDelay, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, errors.New("E104").WithDetailf("popover.hoverCloseDelay %q", s).Wrap(err)
	}
	if d <= 0 {
		return 0, errors.New("E104").WithDetailf("popover.hoverCloseDelay %q must be positive", s)
	}
	return d, nil
}

// PopoverOptions converts the popover section into controller options.
func (c *Config) PopoverOptions() ([]popover.Option, error) {
	side, err := popover.ParseSide(c.Popover.Side)
	if err != nil {
		return nil, errors.New("E102").WithDetail("popover.side").Wrap(err)
	}
	align, err := popover.ParseAlign(c.Popover.Align)
	if err != nil {
		return nil, errors.New("E102").WithDetail("popover.align").Wrap(err)
	}
	trigger, err := popover.ParseTrigger(c.Popover.Trigger)
	if err != nil {
		return nil, errors.New("E102").WithDetail("popover.trigger").Wrap(err)
	}
	delay, err := c.HoverCloseDelay()
	if err != nil {
		return nil, err
	}
	return []popover.Option{
		popover.WithSide(side),
		popover.WithAlign(align),
		popover.WithTrigger(trigger),
		popover.WithHoverCloseDelay(delay),
	}, nil
}

// Address returns the host:port the playground server listens on.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// LoadOrDefault loads the config from dir when present and returns the
// defaults otherwise.
func LoadOrDefault(dir string) (*Config, error) {
	if !Exists(dir) {
		cfg := New()
		return cfg, cfg.Validate()
	}
	return Load(dir)
}
