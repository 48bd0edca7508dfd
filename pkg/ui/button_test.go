package ui

import (
	"strings"
	"testing"

	"github.com/vango-dev/vango-ui/pkg/vdom"
	"github.com/vango-dev/vango-ui/pkg/vtest"
)

func TestCN(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"a", "", "  b  "}, "a b"},
		{[]string{" ", "c"}, "c"},
	}
	for _, tt := range tests {
		if got := CN(tt.in...); got != tt.want {
			t.Errorf("CN(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestButtonVariantsAndSizes(t *testing.T) {
	tests := []struct {
		name string
		opts []ButtonOption
		want []string
	}{
		{"default", nil, []string{"bg-primary", "h-10 px-4 py-2"}},
		{"outline", []ButtonOption{Outline()}, []string{"border border-input"}},
		{"secondary", []ButtonOption{Secondary()}, []string{"bg-secondary"}},
		{"ghost", []ButtonOption{Ghost()}, []string{"hover:bg-accent"}},
		{"destructive", []ButtonOption{Destructive()}, []string{"bg-destructive"}},
		{"sm", []ButtonOption{Sm()}, []string{"h-9 rounded-md px-3"}},
		{"lg", []ButtonOption{Lg()}, []string{"h-11 rounded-md px-8"}},
		{"icon", []ButtonOption{Icon()}, []string{"h-10 w-10"}},
		{"unknown falls back", []ButtonOption{WithVariant("neon"), WithSize("xxl")}, []string{"bg-primary", "h-10 px-4 py-2"}},
		{"extra class", []ButtonOption{WithClass("w-full")}, []string{"w-full"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := Button(tt.opts...)
			class, _ := node.Props["class"].(string)
			for _, want := range tt.want {
				if !strings.Contains(class, want) {
					t.Errorf("class %q missing %q", class, want)
				}
			}
		})
	}
}

func TestButtonClickHandler(t *testing.T) {
	clicked := false
	node := Button(WithOnClick(func() { clicked = true }), WithChildren("Save"))

	handler, ok := node.Handlers()["onclick"].(func())
	if !ok {
		t.Fatal("Expected onclick handler")
	}
	handler()
	if !clicked {
		t.Error("Expected handler to run")
	}
	vtest.ExpectContains(t, node, ">Save</button>")
}

func TestButtonDisabledAndLoadingSuppressClicks(t *testing.T) {
	tests := []struct {
		name string
		opt  ButtonOption
	}{
		{"disabled", WithDisabled(true)},
		{"loading", WithLoading(true)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := Button(WithOnClick(func() {}), tt.opt)
			if node.IsInteractive() {
				t.Error("Expected no click handler")
			}
			if node.Props["disabled"] != true {
				t.Error("Expected disabled attribute")
			}
		})
	}

	loading := Button(WithLoading(true), WithLeadingIcon(vdom.Span(vdom.Text("+"))))
	vtest.ExpectAttribute(t, loading, "aria-busy", "true")
	vtest.ExpectContains(t, loading, `data-spinner="true"`)
	vtest.ExpectNotContains(t, loading, "<span>+</span>")
}

func TestButtonIconSlots(t *testing.T) {
	node := Button(
		WithLeadingIcon(vdom.Span(vdom.Text("L"))),
		WithTrailingIcon(vdom.Span(vdom.Text("T"))),
		WithChildren("Label"),
	)
	html := vtest.RenderToString(node)

	lead := strings.Index(html, "L</span>")
	label := strings.Index(html, "Label")
	trail := strings.Index(html, "T</span>")
	if lead < 0 || label < 0 || trail < 0 || !(lead < label && label < trail) {
		t.Errorf("Expected leading icon, label, trailing icon in order, got %s", html)
	}
}

func TestButtonDataAttrs(t *testing.T) {
	node := Button(WithAttr("testid", "save"))
	vtest.ExpectAttribute(t, node, "data-testid", "save")
	vtest.ExpectAttribute(t, node, "type", "button")
}
