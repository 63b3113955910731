// Package style holds the immutable value types that UI defaults are
// expressed in: colors, fonts, brushes, icons, anchors and styled text.
//
// Every type implements Encode, which returns the representation the
// hybrid frontends expect in a defaults document.
package style

import (
	"errors"
	"fmt"
)

// SystemFontFamily is the platform UI font.
const SystemFontFamily = "system"

// FontWeight is the stroke weight of a font.
type FontWeight int

const (
	FontWeightRegular FontWeight = iota
	FontWeightMedium
	FontWeightBold
)

var fontWeightNames = EnumNames[FontWeight]{
	Kind:  "font weight",
	Names: []string{"regular", "medium", "bold"},
}

func (w FontWeight) String() string               { return fontWeightNames.Name(w) }
func (w FontWeight) MarshalText() ([]byte, error) { return fontWeightNames.Marshal(w) }
func (w *FontWeight) UnmarshalText(text []byte) error {
	v, err := fontWeightNames.Parse(string(text))
	if err != nil {
		return err
	}
	*w = v
	return nil
}

// Font describes a typeface at a given size.
type Font struct {
	Family string
	Size   float64
	Weight FontWeight
}

// SystemFont returns the platform font at the given size and weight.
func SystemFont(size float64, weight FontWeight) Font {
	return Font{Family: SystemFontFamily, Size: size, Weight: weight}
}

func (f Font) String() string {
	return fmt.Sprintf("%s %gpt %s", f.Family, f.Size, f.Weight)
}

func (f Font) Encode() any {
	return map[string]any{
		"family": f.Family,
		"size":   f.Size,
		"weight": f.Weight.String(),
	}
}

// Brush describes how a highlight shape is filled and stroked.
type Brush struct {
	Fill        Color
	Stroke      Color
	StrokeWidth float64
}

// TransparentBrush draws nothing.
func TransparentBrush() Brush { return Brush{} }

func (b Brush) String() string {
	return fmt.Sprintf("fill=%s stroke=%s width=%g", b.Fill, b.Stroke, b.StrokeWidth)
}

func (b Brush) Encode() any {
	return map[string]any{
		"fillColor":   b.Fill.Hex(),
		"strokeColor": b.Stroke.Hex(),
		"strokeWidth": b.StrokeWidth,
	}
}

// IconType is the closed set of built-in icons.
type IconType int

const (
	IconChevronRight IconType = iota
	IconInfo
	IconExclamationMark
	IconCheckmark
	IconXMark
	IconQuestionMark
	IconPlus
	IconMinus
	IconStar
	IconLowStock
	IconExpiredItem
	IconWrongItem
	IconFragileItem
	IconToPick
	IconPicked
)

var iconTypeNames = EnumNames[IconType]{
	Kind: "icon type",
	Names: []string{
		"chevronRight", "info", "exclamationMark", "checkmark", "xMark",
		"questionMark", "plus", "minus", "star", "lowStock",
		"expiredItem", "wrongItem", "fragileItem", "toPick", "picked",
	},
}

// ParseIconType resolves a wire name such as "checkmark".
func ParseIconType(s string) (IconType, error) { return iconTypeNames.Parse(s) }

func (t IconType) String() string               { return iconTypeNames.Name(t) }
func (t IconType) MarshalText() ([]byte, error) { return iconTypeNames.Marshal(t) }
func (t *IconType) UnmarshalText(text []byte) error {
	v, err := iconTypeNames.Parse(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// IconShape is the background shape behind an icon.
type IconShape int

const (
	IconShapeNone IconShape = iota
	IconShapeCircle
	IconShapeSquare
)

var iconShapeNames = EnumNames[IconShape]{
	Kind:  "icon shape",
	Names: []string{"none", "circle", "square"},
}

func (s IconShape) String() string                   { return iconShapeNames.Name(s) }
func (s IconShape) MarshalText() ([]byte, error)     { return iconShapeNames.Marshal(s) }
func (s *IconShape) UnmarshalText(text []byte) error { return iconShapeNames.Unmarshal(s, text) }

// Icon references a built-in icon with optional colors.
type Icon struct {
	Type            IconType
	IconColor       *Color
	BackgroundColor *Color
	BackgroundShape IconShape
}

// NewIcon returns an icon of the given type using platform colors.
func NewIcon(t IconType) Icon {
	return Icon{Type: t}
}

// WithColors returns a copy of the icon with explicit colors set.
func (i Icon) WithColors(icon, background Color, shape IconShape) Icon {
	i.IconColor = &icon
	i.BackgroundColor = &background
	i.BackgroundShape = shape
	return i
}

// Clone returns a copy that shares no colors with i.
func (i Icon) Clone() Icon {
	i.IconColor = clonePtr(i.IconColor)
	i.BackgroundColor = clonePtr(i.BackgroundColor)
	return i
}

func (i Icon) CloneValue() any { return i.Clone() }

func (i Icon) String() string { return i.Type.String() }

func (i Icon) Encode() any {
	out := map[string]any{
		"icon": i.Type.String(),
	}
	if i.IconColor != nil {
		out["iconColor"] = i.IconColor.Hex()
	}
	if i.BackgroundColor != nil {
		out["backgroundColor"] = i.BackgroundColor.Hex()
		out["backgroundShape"] = i.BackgroundShape.String()
	}
	return out
}

// TextStyle is a run of attributes applied to a range of StyledText.
type TextStyle struct {
	Start  int
	Length int
	Font   *Font
	Color  *Color
}

// StyledText is text with attribute runs.
type StyledText struct {
	Text string
	Runs []TextStyle
}

// ErrRunOutOfRange is returned when a style run falls outside the text.
var ErrRunOutOfRange = errors.New("style: text run out of range")

// Validate checks that every run lies inside the text.
func (s StyledText) Validate() error {
	n := len([]rune(s.Text))
	for i, r := range s.Runs {
		if r.Start < 0 || r.Length < 0 || r.Start+r.Length > n {
			return fmt.Errorf("%w: run %d [%d,%d) in text of length %d", ErrRunOutOfRange, i, r.Start, r.Start+r.Length, n)
		}
	}
	return nil
}

// Clone returns a copy whose runs can be changed without affecting s.
func (s StyledText) Clone() StyledText {
	if s.Runs == nil {
		return s
	}
	runs := make([]TextStyle, len(s.Runs))
	for i, r := range s.Runs {
		r.Font = clonePtr(r.Font)
		r.Color = clonePtr(r.Color)
		runs[i] = r
	}
	s.Runs = runs
	return s
}

func (s StyledText) CloneValue() any { return s.Clone() }

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func (s StyledText) Encode() any {
	runs := make([]map[string]any, 0, len(s.Runs))
	for _, r := range s.Runs {
		run := map[string]any{"start": r.Start, "length": r.Length}
		if r.Font != nil {
			run["font"] = r.Font.Encode()
		}
		if r.Color != nil {
			run["color"] = r.Color.Hex()
		}
		runs = append(runs, run)
	}
	return map[string]any{"text": s.Text, "runs": runs}
}
