package ui

import (
	"github.com/vango-dev/vango-ui/pkg/vdom"
)

// Variant is the visual style of a Button.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantOutline     Variant = "outline"
	VariantSecondary   Variant = "secondary"
	VariantGhost       Variant = "ghost"
	VariantDestructive Variant = "destructive"
)

// Size is the size of a Button.
type Size string

const (
	SizeDefault Size = "default"
	SizeSm      Size = "sm"
	SizeLg      Size = "lg"
	SizeIcon    Size = "icon"
)

// ButtonOption configures a Button component.
type ButtonOption func(*buttonConfig)

type buttonConfig struct {
	variant      Variant
	size         Size
	disabled     bool
	loading      bool
	className    string
	children     []any
	leadingIcon  *vdom.VNode
	trailingIcon *vdom.VNode
	onClick      any
	attrs        map[string]string
}

func defaultButtonConfig() buttonConfig {
	return buttonConfig{
		variant: VariantDefault,
		size:    SizeDefault,
	}
}

// Variant options for Button

// WithVariant sets the button variant.
func WithVariant(v Variant) ButtonOption {
	return func(c *buttonConfig) {
		c.variant = v
	}
}

// Outline sets the button to outline variant.
func Outline() ButtonOption { return WithVariant(VariantOutline) }

// Secondary sets the button to secondary variant.
func Secondary() ButtonOption { return WithVariant(VariantSecondary) }

// Ghost sets the button to ghost variant.
func Ghost() ButtonOption { return WithVariant(VariantGhost) }

// Destructive sets the button to destructive variant.
func Destructive() ButtonOption { return WithVariant(VariantDestructive) }

// Size options for Button

// WithSize sets the button size.
func WithSize(s Size) ButtonOption {
	return func(c *buttonConfig) {
		c.size = s
	}
}

// Sm sets the button to small size.
func Sm() ButtonOption { return WithSize(SizeSm) }

// Lg sets the button to large size.
func Lg() ButtonOption { return WithSize(SizeLg) }

// Icon sets the button to the square icon size.
func Icon() ButtonOption { return WithSize(SizeIcon) }

// Behavior options

// WithDisabled sets the disabled state.
func WithDisabled(d bool) ButtonOption {
	return func(c *buttonConfig) {
		c.disabled = d
	}
}

// WithLoading sets the loading state. A loading button shows a spinner
// and does not respond to clicks.
func WithLoading(l bool) ButtonOption {
	return func(c *buttonConfig) {
		c.loading = l
	}
}

// WithOnClick sets the click handler: func() or func(dom.Event).
func WithOnClick(handler any) ButtonOption {
	return func(c *buttonConfig) {
		c.onClick = handler
	}
}

// Content options

// WithChildren sets the button children.
func WithChildren(children ...any) ButtonOption {
	return func(c *buttonConfig) {
		c.children = children
	}
}

// WithLeadingIcon renders icon before the children.
func WithLeadingIcon(icon *vdom.VNode) ButtonOption {
	return func(c *buttonConfig) {
		c.leadingIcon = icon
	}
}

// WithTrailingIcon renders icon after the children.
func WithTrailingIcon(icon *vdom.VNode) ButtonOption {
	return func(c *buttonConfig) {
		c.trailingIcon = icon
	}
}

// WithClass adds additional CSS classes.
func WithClass(className string) ButtonOption {
	return func(c *buttonConfig) {
		c.className = c.className + " " + className
	}
}

// WithAttr adds a data attribute.
func WithAttr(name, value string) ButtonOption {
	return func(c *buttonConfig) {
		if c.attrs == nil {
			c.attrs = make(map[string]string)
		}
		c.attrs[name] = value
	}
}

var buttonVariantClasses = map[Variant]string{
	VariantDefault:     "bg-primary text-primary-foreground hover:bg-primary/90",
	VariantDestructive: "bg-destructive text-destructive-foreground hover:bg-destructive/90",
	VariantOutline:     "border border-input bg-background hover:bg-accent hover:text-accent-foreground",
	VariantSecondary:   "bg-secondary text-secondary-foreground hover:bg-secondary/80",
	VariantGhost:       "hover:bg-accent hover:text-accent-foreground",
}

var buttonSizeClasses = map[Size]string{
	SizeDefault: "h-10 px-4 py-2",
	SizeSm:      "h-9 rounded-md px-3",
	SizeLg:      "h-11 rounded-md px-8",
	SizeIcon:    "h-10 w-10",
}

// Button renders a button element with the configured options. Unknown
// variants and sizes render with the defaults.
func Button(opts ...ButtonOption) *vdom.VNode {
	cfg := defaultButtonConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	variant, ok := buttonVariantClasses[cfg.variant]
	if !ok {
		variant = buttonVariantClasses[VariantDefault]
	}
	size, ok := buttonSizeClasses[cfg.size]
	if !ok {
		size = buttonSizeClasses[SizeDefault]
	}

	classes := CN(
		"inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-sm font-medium ring-offset-background transition-colors focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:pointer-events-none disabled:opacity-50",
		variant,
		size,
		cfg.className,
	)

	inert := cfg.disabled || cfg.loading

	attrs := []any{
		vdom.Type("button"),
		vdom.Class(classes),
		vdom.Data("variant", string(cfg.variant)),
		vdom.Data("size", string(cfg.size)),
	}
	if inert {
		attrs = append(attrs, vdom.Disabled())
	}
	if cfg.loading {
		attrs = append(attrs, vdom.AriaBusy(true))
	}
	if cfg.onClick != nil && !inert {
		attrs = append(attrs, vdom.OnClick(cfg.onClick))
	}
	for name, value := range cfg.attrs {
		attrs = append(attrs, vdom.Data(name, value))
	}

	if cfg.loading {
		attrs = append(attrs, spinnerIcon())
	} else if cfg.leadingIcon != nil {
		attrs = append(attrs, vdom.Span(vdom.Class("shrink-0"), vdom.AriaHidden(true), cfg.leadingIcon))
	}
	attrs = append(attrs, cfg.children...)
	if cfg.trailingIcon != nil {
		attrs = append(attrs, vdom.Span(vdom.Class("shrink-0"), vdom.AriaHidden(true), cfg.trailingIcon))
	}

	return vdom.Button(attrs...)
}

// spinnerIcon returns an SVG spinner icon for loading state.
func spinnerIcon() *vdom.VNode {
	return vdom.El("svg",
		vdom.Class("h-4 w-4 animate-spin"),
		vdom.Data("spinner", "true"),
		vdom.Attr{Key: "xmlns", Value: "http://www.w3.org/2000/svg"},
		vdom.Attr{Key: "fill", Value: "none"},
		vdom.Attr{Key: "viewBox", Value: "0 0 24 24"},
		vdom.El("circle",
			vdom.Class("opacity-25"),
			vdom.Attr{Key: "cx", Value: "12"},
			vdom.Attr{Key: "cy", Value: "12"},
			vdom.Attr{Key: "r", Value: "10"},
			vdom.Attr{Key: "stroke", Value: "currentColor"},
			vdom.Attr{Key: "stroke-width", Value: "4"},
		),
		vdom.El("path",
			vdom.Class("opacity-75"),
			vdom.Attr{Key: "fill", Value: "currentColor"},
			vdom.Attr{Key: "d", Value: "M4 12a8 8 0 018-8V0C5.373 0 0 5.373 0 12h4z"},
		),
	)
}
