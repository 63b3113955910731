package style

import (
	"errors"
	"fmt"
)

// ErrUnknownEnumValue is returned when an enum name is not part of its set.
var ErrUnknownEnumValue = errors.New("style: unknown enum value")

// EnumNames maps the values of a closed int enum to their wire names.
// The index of a name is the enum value.
type EnumNames[T ~int] struct {
	Kind  string
	Names []string
}

// Name returns the wire name of v, or "" when v is outside the set.
func (e EnumNames[T]) Name(v T) string {
	if !e.Valid(v) {
		return ""
	}
	return e.Names[v]
}

// Valid reports whether v is one of the declared values.
func (e EnumNames[T]) Valid(v T) bool {
	return v >= 0 && int(v) < len(e.Names)
}

// Parse resolves a wire name to its value.
func (e EnumNames[T]) Parse(name string) (T, error) {
	for i, n := range e.Names {
		if n == name {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %s %q", ErrUnknownEnumValue, e.Kind, name)
}

// Marshal renders v for encoding.TextMarshaler implementations.
func (e EnumNames[T]) Marshal(v T) ([]byte, error) {
	if !e.Valid(v) {
		return nil, fmt.Errorf("%w: %s %d", ErrUnknownEnumValue, e.Kind, int(v))
	}
	return []byte(e.Names[v]), nil
}

// Unmarshal parses text into dst for encoding.TextUnmarshaler
// implementations. dst is left unchanged on error.
func (e EnumNames[T]) Unmarshal(dst *T, text []byte) error {
	v, err := e.Parse(string(text))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// Values returns every declared value in order.
func (e EnumNames[T]) Values() []T {
	out := make([]T, len(e.Names))
	for i := range e.Names {
		out[i] = T(i)
	}
	return out
}

// Anchor is a screen-relative position.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTopCenter
	AnchorTopRight
	AnchorCenterLeft
	AnchorCenter
	AnchorCenterRight
	AnchorBottomLeft
	AnchorBottomCenter
	AnchorBottomRight
)

var anchorNames = EnumNames[Anchor]{
	Kind: "anchor",
	Names: []string{
		"topLeft", "topCenter", "topRight",
		"centerLeft", "center", "centerRight",
		"bottomLeft", "bottomCenter", "bottomRight",
	},
}

// Anchors returns every anchor in declaration order.
func Anchors() []Anchor { return anchorNames.Values() }

// ParseAnchor resolves a wire name such as "bottomRight".
func ParseAnchor(s string) (Anchor, error) { return anchorNames.Parse(s) }

func (a Anchor) String() string               { return anchorNames.Name(a) }
func (a Anchor) MarshalText() ([]byte, error) { return anchorNames.Marshal(a) }
func (a Anchor) Encode() any                  { return a.String() }
func (a *Anchor) UnmarshalText(text []byte) error {
	v, err := anchorNames.Parse(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// TextAlignment aligns text inside an annotation component.
type TextAlignment int

const (
	TextAlignmentLeft TextAlignment = iota
	TextAlignmentCenter
	TextAlignmentRight
	TextAlignmentJustified
	TextAlignmentNatural
)

var textAlignmentNames = EnumNames[TextAlignment]{
	Kind:  "text alignment",
	Names: []string{"left", "center", "right", "justified", "natural"},
}

func (t TextAlignment) String() string               { return textAlignmentNames.Name(t) }
func (t TextAlignment) MarshalText() ([]byte, error) { return textAlignmentNames.Marshal(t) }
func (t TextAlignment) Encode() any                  { return t.String() }
func (t *TextAlignment) UnmarshalText(text []byte) error {
	v, err := textAlignmentNames.Parse(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
