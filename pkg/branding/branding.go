// Package branding carries the organisation's branding through a component
// tree. The Provider is mounted once near the root; descendants read the
// value with Use.
package branding

import (
	"github.com/vango-dev/vango-ui/internal/validate"
	"github.com/vango-dev/vango-ui/pkg/vango"
	"github.com/vango-dev/vango-ui/pkg/vdom"
)

// ColorProperty is the CSS custom property the brand color is exposed as.
const ColorProperty = "--brand-color"

// Branding is the organisation's theming and identity state.
type Branding struct {
	OrganisationID string `json:"organisationId"`
	BrandColor     string `json:"brandColor" validate:"omitempty,hexcolor"`

	// Secret is never rendered.
	Secret string `json:"-"`
}

// Validate checks the brand color.
func (b Branding) Validate() error {
	return validate.Struct(b, "E205")
}

// Style returns the inline style declaring the brand color, or "" if none
// is set.
func (b Branding) Style() string {
	if b.BrandColor == "" {
		return ""
	}
	return ColorProperty + ": " + b.BrandColor
}

var brandingContext = vango.CreateContext(Branding{})

// Provide makes b visible to owner and its descendants. The value is
// dropped when owner is disposed.
func Provide(owner *vango.Owner, b Branding) error {
	if err := b.Validate(); err != nil {
		return err
	}
	brandingContext.Provide(owner, b)
	return nil
}

// Use returns the nearest provided Branding, or the zero value.
func Use(owner *vango.Owner) Branding {
	return brandingContext.Use(owner)
}

// Provider provides b on owner and wraps children with Wrap. Call it once
// at mount; views that re-render should call Wrap.
func Provider(owner *vango.Owner, b Branding, children ...any) (*vdom.VNode, error) {
	if err := Provide(owner, b); err != nil {
		return nil, err
	}
	return Wrap(b, children...), nil
}

// Wrap returns an element declaring the brand color custom property around
// children. It neither validates nor provides b.
func Wrap(b Branding, children ...any) *vdom.VNode {
	args := []any{
		vdom.Class("contents"),
		vdom.Data("branding", "true"),
	}
	if b.OrganisationID != "" {
		args = append(args, vdom.Data("organisation", b.OrganisationID))
	}
	if style := b.Style(); style != "" {
		args = append(args, vdom.StyleAttr(style))
	}
	args = append(args, children...)
	return vdom.Div(args...)
}
