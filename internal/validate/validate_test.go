package validate

import (
	"strings"
	"testing"

	"github.com/vango-dev/vango-ui/internal/errors"
)

type sample struct {
	Popover struct {
		Side    string `json:"side" validate:"side"`
		Align   string `json:"align" validate:"align"`
		Trigger string `json:"trigger" validate:"trigger"`
	} `json:"popover"`
	Version string `json:"version" validate:"api_version"`
	Color   string `json:"brandColor" validate:"omitempty,hexcolor"`
}

func valid() sample {
	var s sample
	s.Popover.Side = "top"
	s.Popover.Align = "end"
	s.Popover.Trigger = "hover"
	s.Version = "/api/v1"
	s.Color = "#ff6600"
	return s
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*sample)
		wantField string
	}{
		{"valid", func(*sample) {}, ""},
		{"empty placement", func(s *sample) { s.Popover.Side, s.Popover.Align, s.Popover.Trigger = "", "", "" }, ""},
		{"bad side", func(s *sample) { s.Popover.Side = "up" }, "popover.side"},
		{"bad align", func(s *sample) { s.Popover.Align = "middle" }, "popover.align"},
		{"bad trigger", func(s *sample) { s.Popover.Trigger = "press" }, "popover.trigger"},
		{"bad version", func(s *sample) { s.Version = "v1" }, "version"},
		{"bad color", func(s *sample) { s.Color = "orange" }, "brandColor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)
			err := Struct(s, "E102")

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.HasCode(err, "E102") {
				t.Fatalf("error = %v, want E102", err)
			}
			if !strings.Contains(err.Error(), tt.wantField+" failed validation") {
				t.Errorf("error %q does not name %s", err.Error(), tt.wantField)
			}
		})
	}
}

func TestConvertNil(t *testing.T) {
	if Convert(nil, "E102") != nil {
		t.Error("Expected nil")
	}
}
