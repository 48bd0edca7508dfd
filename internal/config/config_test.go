package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/vango-ui/internal/errors"
	"github.com/vango-dev/vango-ui/pkg/popover"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return dir
}

func TestNew(t *testing.T) {
	t.Setenv(EnvVar, "")
	cfg := New()

	if cfg.Environment != Development {
		t.Errorf("Environment = %q, want %q", cfg.Environment, Development)
	}
	if cfg.Address() != "localhost:3000" {
		t.Errorf("Address() = %q, want localhost:3000", cfg.Address())
	}
	if cfg.API.Version != DefaultAPIVersion {
		t.Errorf("API.Version = %q, want %q", cfg.API.Version, DefaultAPIVersion)
	}
	if cfg.API.AuthURL != "http://localhost:8081" {
		t.Errorf("API.AuthURL = %q", cfg.API.AuthURL)
	}
	if cfg.Popover.Side != "bottom" || cfg.Popover.Align != "center" || cfg.Popover.Trigger != "click" {
		t.Errorf("Popover = %+v, want bottom/center/click", cfg.Popover)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvVar, "")
	dir := writeConfig(t, `{
		"environment": "staging",
		"server": {"port": 4000},
		"api": {"videoURL": "https://video.internal.test"},
		"popover": {"side": "top", "align": "start", "trigger": "hover", "hoverCloseDelay": "300ms"},
		"branding": {"organisationId": "org_1", "brandColor": "#4f46e5"}
	}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Path() != filepath.Join(dir, ConfigFileName) {
		t.Errorf("Path() = %q", cfg.Path())
	}
	if cfg.Address() != "localhost:4000" {
		t.Errorf("Address() = %q, want localhost:4000", cfg.Address())
	}
	if cfg.API.AuthURL != "https://auth.staging.vango.dev" {
		t.Errorf("API.AuthURL = %q, want staging default", cfg.API.AuthURL)
	}
	if cfg.API.VideoURL != "https://video.internal.test" {
		t.Errorf("API.VideoURL = %q, want explicit value kept", cfg.API.VideoURL)
	}
	if cfg.Branding.BrandColor != "#4f46e5" {
		t.Errorf("Branding.BrandColor = %q", cfg.Branding.BrandColor)
	}

	d, err := cfg.HoverCloseDelay()
	if err != nil || d != 300*time.Millisecond {
		t.Errorf("HoverCloseDelay() = %v, %v; want 300ms", d, err)
	}
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv(EnvVar, "Production")
	dir := writeConfig(t, `{"environment": "staging"}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Environment != Production {
		t.Errorf("Environment = %q, want %q", cfg.Environment, Production)
	}
	if cfg.API.AuthURL != "https://auth.vango.dev" {
		t.Errorf("API.AuthURL = %q, want production default", cfg.API.AuthURL)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(EnvVar, "")

	tests := []struct {
		name    string
		content string
		code    string
		detail  string
	}{
		{"invalid json", `{"server": `, "E101", ""},
		{"unknown environment", `{"environment": "qa"}`, "E103", "qa"},
		{"port out of range", `{"server": {"port": 70000}}`, "E102", "server.port"},
		{"bad side", `{"popover": {"side": "middle"}}`, "E102", "popover.side"},
		{"bad trigger", `{"popover": {"trigger": "focus"}}`, "E102", "popover.trigger"},
		{"bad api version", `{"api": {"version": "v1"}}`, "E102", "api.version"},
		{"bad api url", `{"api": {"authURL": "not a url"}}`, "E102", "api.authURL"},
		{"bad brand color", `{"branding": {"brandColor": "blue"}}`, "E102", "branding.brandColor"},
		{"bad duration", `{"popover": {"hoverCloseDelay": "soon"}}`, "E104", "soon"},
		{"negative duration", `{"popover": {"hoverCloseDelay": "-1s"}}`, "E104", "positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !errors.HasCode(err, tt.code) {
				t.Fatalf("Load() error = %v, want %s", err, tt.code)
			}
			if tt.detail != "" && !strings.Contains(err.Error(), tt.detail) {
				t.Errorf("error %q should mention %q", err, tt.detail)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.HasCode(err, "E100") {
		t.Errorf("Load() error = %v, want E100", err)
	}
}

func TestLoadOrDefault(t *testing.T) {
	t.Setenv(EnvVar, "")
	cfg, err := LoadOrDefault(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg.Path() != "" {
		t.Errorf("Path() = %q, want empty for defaults", cfg.Path())
	}

	t.Setenv(EnvVar, "qa")
	if _, err := LoadOrDefault(t.TempDir()); !errors.HasCode(err, "E103") {
		t.Errorf("LoadOrDefault() error = %v, want E103", err)
	}
}

func TestPopoverOptions(t *testing.T) {
	t.Setenv(EnvVar, "")
	cfg := New()
	cfg.Popover = PopoverConfig{Side: "left", Align: "end", Trigger: "hover", HoverCloseDelay: "1s"}

	opts, err := cfg.PopoverOptions()
	if err != nil {
		t.Fatalf("PopoverOptions: %v", err)
	}
	c := popover.New(opts...)
	defer c.Dispose()

	if got := c.Placement(); got.Side != popover.SideLeft || got.Align != popover.AlignEnd {
		t.Errorf("Placement() = %v, want left-end", got)
	}
	if c.Trigger() != popover.TriggerHover {
		t.Errorf("Trigger() = %v, want hover", c.Trigger())
	}

	cfg.Popover.Align = "middle"
	if _, err := cfg.PopoverOptions(); !errors.HasCode(err, "E102") {
		t.Errorf("PopoverOptions() error = %v, want E102", err)
	}
}
