package popover

import (
	"fmt"
	"strings"
)

// Side is the edge of the trigger the content is placed against.
type Side string

const (
	SideTop    Side = "top"
	SideRight  Side = "right"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
)

// Align positions the content along the trigger edge.
type Align string

const (
	AlignStart  Align = "start"
	AlignCenter Align = "center"
	AlignEnd    Align = "end"
)

// Placement is the requested position of the content relative to the
// trigger. The zero value is bottom/center with no gap.
type Placement struct {
	Side  Side
	Align Align

	// Offset is the gap between trigger and content along the side axis.
	Offset float64
}

func (p Placement) String() string {
	p = p.normalize()
	return string(p.Side) + "-" + string(p.Align)
}

func (p Placement) normalize() Placement {
	switch p.Side {
	case SideTop, SideRight, SideBottom, SideLeft:
	default:
		p.Side = SideBottom
	}
	switch p.Align {
	case AlignStart, AlignCenter, AlignEnd:
	default:
		p.Align = AlignCenter
	}
	return p
}

// ParseSide parses a side name. The empty string is SideBottom.
func ParseSide(s string) (Side, error) {
	switch side := Side(strings.ToLower(strings.TrimSpace(s))); side {
	case "":
		return SideBottom, nil
	case SideTop, SideRight, SideBottom, SideLeft:
		return side, nil
	}
	return SideBottom, fmt.Errorf("%w: side %q", ErrInvalidOption, s)
}

// ParseAlign parses an alignment name. The empty string is AlignCenter.
func ParseAlign(s string) (Align, error) {
	switch align := Align(strings.ToLower(strings.TrimSpace(s))); align {
	case "":
		return AlignCenter, nil
	case AlignStart, AlignCenter, AlignEnd:
		return align, nil
	}
	return AlignCenter, fmt.Errorf("%w: align %q", ErrInvalidOption, s)
}

// Point is a position in CSS pixels.
type Point struct {
	X, Y float64
}

// Size is a width and height in CSS pixels.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned box, as returned by getBoundingClientRect.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether p lies inside r. The right and bottom edges
// are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Resolve returns the top-left corner of content placed next to trigger.
//
// The content sits against the requested side of the trigger, Offset away
// from it. On the cross axis Start aligns the leading edges, End the
// trailing edges, and Center the midpoints. No collision handling is done:
// the result may fall outside the viewport.
func Resolve(trigger Rect, content Size, p Placement) Point {
	p = p.normalize()

	var pt Point
	switch p.Side {
	case SideTop:
		pt.Y = trigger.Y - content.Height - p.Offset
	case SideBottom:
		pt.Y = trigger.Y + trigger.Height + p.Offset
	case SideLeft:
		pt.X = trigger.X - content.Width - p.Offset
	case SideRight:
		pt.X = trigger.X + trigger.Width + p.Offset
	}

	switch p.Side {
	case SideTop, SideBottom:
		pt.X = alignAxis(trigger.X, trigger.Width, content.Width, p.Align)
	default:
		pt.Y = alignAxis(trigger.Y, trigger.Height, content.Height, p.Align)
	}
	return pt
}

func alignAxis(start, length, size float64, a Align) float64 {
	switch a {
	case AlignStart:
		return start
	case AlignEnd:
		return start + length - size
	default:
		return start + (length-size)/2
	}
}
