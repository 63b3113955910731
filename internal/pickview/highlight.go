package pickview

import (
	"errors"
	"fmt"
	"maps"

	"github.com/MeKo-Tech/scandefaults/internal/style"
)

// PickState is the state of an item as shown by a highlight.
type PickState int

const (
	PickStateToPick PickState = iota
	PickStatePicked
	PickStateIgnore
	PickStateUnknown
)

var pickStateNames = style.EnumNames[PickState]{
	Kind:  "pick state",
	Names: []string{"toPick", "picked", "ignore", "unknown"},
}

// PickStates returns every state in declaration order.
func PickStates() []PickState { return pickStateNames.Values() }

func (s PickState) String() string                   { return pickStateNames.Name(s) }
func (s PickState) MarshalText() ([]byte, error)     { return pickStateNames.Marshal(s) }
func (s *PickState) UnmarshalText(text []byte) error { return pickStateNames.Unmarshal(s, text) }

// HighlightStyleType discriminates the highlight style implementations.
type HighlightStyleType int

const (
	HighlightRectangular HighlightStyleType = iota
	HighlightRectangularWithIcons
	HighlightDot
	HighlightDotWithIcons
	HighlightCustomView
)

var highlightTypeNames = style.EnumNames[HighlightStyleType]{
	Kind:  "highlight style",
	Names: []string{"Rectangular", "RectangularWithIcons", "Dot", "DotWithIcons", "CustomView"},
}

// HighlightStyleTypes returns every style type in declaration order.
func HighlightStyleTypes() []HighlightStyleType { return highlightTypeNames.Values() }

// ParseHighlightStyleType resolves a name such as "DotWithIcons".
func ParseHighlightStyleType(s string) (HighlightStyleType, error) {
	return highlightTypeNames.Parse(s)
}

func (t HighlightStyleType) String() string                   { return highlightTypeNames.Name(t) }
func (t HighlightStyleType) MarshalText() ([]byte, error)     { return highlightTypeNames.Marshal(t) }
func (t *HighlightStyleType) UnmarshalText(text []byte) error { return highlightTypeNames.Unmarshal(t, text) }

// HighlightStyle is how the pick view marks items in the camera preview.
type HighlightStyle interface {
	Type() HighlightStyleType
	// Encode returns the wire object, always carrying a "type" field.
	Encode() any
	// CloneValue returns a copy that shares no maps or icons with the style.
	CloneValue() any
}

// StateBrushes assigns a brush to each pick state.
type StateBrushes map[PickState]style.Brush

func (b StateBrushes) encode() map[string]any {
	out := make(map[string]any, len(b))
	for _, s := range PickStates() {
		if brush, ok := b[s]; ok {
			out[s.String()] = brush.Encode()
		}
	}
	return out
}

func (b StateBrushes) clone() StateBrushes { return maps.Clone(b) }

// StateIcons assigns an icon to each pick state. States without an icon
// are drawn without one.
type StateIcons map[PickState]style.Icon

func (i StateIcons) encode() map[string]any {
	out := make(map[string]any, len(i))
	for _, s := range PickStates() {
		if icon, ok := i[s]; ok {
			out[s.String()] = icon.Encode()
		}
	}
	return out
}

func (i StateIcons) clone() StateIcons {
	if i == nil {
		return nil
	}
	out := make(StateIcons, len(i))
	for s, icon := range i {
		out[s] = icon.Clone()
	}
	return out
}

// Rectangular outlines each item with a state-colored rectangle.
type Rectangular struct {
	Brushes         StateBrushes
	SelectedBrushes StateBrushes
	// StyleResponseCacheEnabled keeps asynchronously provided styles per item.
	StyleResponseCacheEnabled bool
}

func (Rectangular) Type() HighlightStyleType { return HighlightRectangular }

func (r Rectangular) clone() Rectangular {
	r.Brushes = r.Brushes.clone()
	r.SelectedBrushes = r.SelectedBrushes.clone()
	return r
}

func (r Rectangular) CloneValue() any { return r.clone() }

func (r Rectangular) Encode() any {
	return map[string]any{
		"type":                      r.Type().String(),
		"brushes":                   r.Brushes.encode(),
		"selectedBrushes":           r.SelectedBrushes.encode(),
		"styleResponseCacheEnabled": r.StyleResponseCacheEnabled,
	}
}

// RectangularWithIcons adds a status icon to the rectangle.
type RectangularWithIcons struct {
	Rectangular
	Icons                  StateIcons
	SelectedIcons          StateIcons
	MinimumHighlightWidth  float64
	MinimumHighlightHeight float64
}

func (RectangularWithIcons) Type() HighlightStyleType { return HighlightRectangularWithIcons }

func (r RectangularWithIcons) CloneValue() any {
	r.Rectangular = r.Rectangular.clone()
	r.Icons = r.Icons.clone()
	r.SelectedIcons = r.SelectedIcons.clone()
	return r
}

func (r RectangularWithIcons) Encode() any {
	out := r.Rectangular.Encode().(map[string]any)
	out["type"] = r.Type().String()
	out["icons"] = r.Icons.encode()
	out["selectedIcons"] = r.SelectedIcons.encode()
	out["minimumHighlightWidth"] = r.MinimumHighlightWidth
	out["minimumHighlightHeight"] = r.MinimumHighlightHeight
	return out
}

// Dot marks each item with a state-colored dot.
type Dot struct {
	Brushes                   StateBrushes
	SelectedBrushes           StateBrushes
	StyleResponseCacheEnabled bool
}

func (Dot) Type() HighlightStyleType { return HighlightDot }

func (d Dot) clone() Dot {
	d.Brushes = d.Brushes.clone()
	d.SelectedBrushes = d.SelectedBrushes.clone()
	return d
}

func (d Dot) CloneValue() any { return d.clone() }

func (d Dot) Encode() any {
	return map[string]any{
		"type":                      d.Type().String(),
		"brushes":                   d.Brushes.encode(),
		"selectedBrushes":           d.SelectedBrushes.encode(),
		"styleResponseCacheEnabled": d.StyleResponseCacheEnabled,
	}
}

// DotWithIcons draws the state icon inside the dot.
type DotWithIcons struct {
	Dot
	Icons         StateIcons
	SelectedIcons StateIcons
}

func (DotWithIcons) Type() HighlightStyleType { return HighlightDotWithIcons }

func (d DotWithIcons) CloneValue() any {
	d.Dot = d.Dot.clone()
	d.Icons = d.Icons.clone()
	d.SelectedIcons = d.SelectedIcons.clone()
	return d
}

func (d DotWithIcons) Encode() any {
	out := d.Dot.Encode().(map[string]any)
	out["type"] = d.Type().String()
	out["icons"] = d.Icons.encode()
	out["selectedIcons"] = d.SelectedIcons.encode()
	return out
}

// CustomView lets the host render its own view per item.
type CustomView struct {
	Brushes                StateBrushes
	SelectedBrushes        StateBrushes
	FitViewsToBarcode      bool
	MinimumHighlightWidth  float64
	MinimumHighlightHeight float64
	StatusIconStyle        *style.Icon
}

func (CustomView) Type() HighlightStyleType { return HighlightCustomView }

func (c CustomView) CloneValue() any {
	c.Brushes = c.Brushes.clone()
	c.SelectedBrushes = c.SelectedBrushes.clone()
	if c.StatusIconStyle != nil {
		icon := c.StatusIconStyle.Clone()
		c.StatusIconStyle = &icon
	}
	return c
}

func (c CustomView) Encode() any {
	out := map[string]any{
		"type":                   c.Type().String(),
		"brushes":                c.Brushes.encode(),
		"selectedBrushes":        c.SelectedBrushes.encode(),
		"fitViewsToBarcode":      c.FitViewsToBarcode,
		"minimumHighlightWidth":  c.MinimumHighlightWidth,
		"minimumHighlightHeight": c.MinimumHighlightHeight,
		"statusIconStyle":        nil,
	}
	if c.StatusIconStyle != nil {
		out["statusIconStyle"] = c.StatusIconStyle.Encode()
	}
	return out
}

func toPickColor() style.Color  { return style.Opaque(0xfb, 0xc0, 0x2c) }
func pickedColor() style.Color  { return style.Opaque(0x2e, 0xc1, 0xce) }
func ignoreColor() style.Color  { return style.Opaque(0xa0, 0xa4, 0xa8) }
func unknownColor() style.Color { return style.White() }

func stateBrushes(alpha uint8, width float64) StateBrushes {
	brush := func(c style.Color) style.Brush {
		return style.Brush{Fill: c.WithAlpha(alpha), Stroke: c, StrokeWidth: width}
	}
	return StateBrushes{
		PickStateToPick:  brush(toPickColor()),
		PickStatePicked:  brush(pickedColor()),
		PickStateIgnore:  brush(ignoreColor()),
		PickStateUnknown: brush(unknownColor().WithAlpha(0x99)),
	}
}

func stateIcons() StateIcons {
	return StateIcons{
		PickStateToPick: style.NewIcon(style.IconToPick).WithColors(style.Black(), toPickColor(), style.IconShapeCircle),
		PickStatePicked: style.NewIcon(style.IconPicked).WithColors(style.White(), pickedColor(), style.IconShapeCircle),
		PickStateIgnore: style.NewIcon(style.IconXMark).WithColors(style.White(), ignoreColor(), style.IconShapeCircle),
	}
}

// NewRectangular returns the rectangular style with its default brushes.
func NewRectangular() Rectangular {
	return Rectangular{
		Brushes:         stateBrushes(0x33, 1),
		SelectedBrushes: stateBrushes(0x66, 2),
	}
}

func NewRectangularWithIcons() RectangularWithIcons {
	return RectangularWithIcons{
		Rectangular:            NewRectangular(),
		Icons:                  stateIcons(),
		SelectedIcons:          stateIcons(),
		MinimumHighlightWidth:  40,
		MinimumHighlightHeight: 40,
	}
}

func NewDot() Dot {
	return Dot{
		Brushes:         stateBrushes(0xff, 0),
		SelectedBrushes: stateBrushes(0xff, 2),
	}
}

func NewDotWithIcons() DotWithIcons {
	return DotWithIcons{Dot: NewDot(), Icons: stateIcons(), SelectedIcons: stateIcons()}
}

func NewCustomView() CustomView {
	return CustomView{
		Brushes:                stateBrushes(0x33, 1),
		SelectedBrushes:        stateBrushes(0x66, 2),
		FitViewsToBarcode:      true,
		MinimumHighlightWidth:  40,
		MinimumHighlightHeight: 40,
	}
}

// ErrUnknownHighlightStyle is returned for style names outside the closed set.
var ErrUnknownHighlightStyle = errors.New("pickview: unknown highlight style")

// NewHighlightStyle builds the default instance of a style type.
func NewHighlightStyle(t HighlightStyleType) (HighlightStyle, error) {
	switch t {
	case HighlightRectangular:
		return NewRectangular(), nil
	case HighlightRectangularWithIcons:
		return NewRectangularWithIcons(), nil
	case HighlightDot:
		return NewDot(), nil
	case HighlightDotWithIcons:
		return NewDotWithIcons(), nil
	case HighlightCustomView:
		return NewCustomView(), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownHighlightStyle, int(t))
}

// HighlightStyles returns the default instance of every style, keyed by name.
func HighlightStyles() map[string]HighlightStyle {
	out := make(map[string]HighlightStyle, len(highlightTypeNames.Names))
	for _, t := range HighlightStyleTypes() {
		s, _ := NewHighlightStyle(t)
		out[t.String()] = s
	}
	return out
}
