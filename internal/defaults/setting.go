package defaults

import (
	"github.com/MeKo-Tech/scandefaults/internal/style"
)

// Kind is the value type of a setting.
type Kind int

const (
	KindBool Kind = iota
	KindEnum
	KindColor
	KindFont
	KindNumber
	KindText
	KindIcon
	KindBrush
	KindStyledText
	KindHighlightStyle
	KindFilterHighlight
	KindFeedback
	KindObject
	KindBarcodeFilter
)

var kindNames = style.EnumNames[Kind]{
	Kind: "setting kind",
	Names: []string{
		"bool", "enum", "color", "font", "number", "text", "icon",
		"brush", "styledText", "highlightStyle", "filterHighlight", "feedback",
		"object", "barcodeFilter",
	},
}

func (k Kind) String() string                   { return kindNames.Name(k) }
func (k Kind) MarshalText() ([]byte, error)     { return kindNames.Marshal(k) }
func (k *Kind) UnmarshalText(text []byte) error { return kindNames.Unmarshal(k, text) }

// Group is the feature area a setting belongs to.
type Group string

const (
	GroupFeedback                Group = "feedback"
	GroupCamera                  Group = "camera"
	GroupControlVisibility       Group = "controlVisibility"
	GroupControlPosition         Group = "controlPosition"
	GroupHighlightStyle          Group = "highlightStyle"
	GroupStatusAnnotation        Group = "statusAnnotation"
	GroupPopoverAnnotation       Group = "popoverAnnotation"
	GroupInfoAnnotation          Group = "infoAnnotation"
	GroupInfoAnnotationHeader    Group = "infoAnnotationHeader"
	GroupInfoAnnotationFooter    Group = "infoAnnotationFooter"
	GroupInfoAnnotationBody      Group = "infoAnnotationBody"
	GroupPickSettings            Group = "pickSettings"
	GroupPickViewHighlight       Group = "pickViewHighlight"
	GroupPickViewLoading         Group = "pickViewLoading"
	GroupPickViewGuidance        Group = "pickViewGuidance"
	GroupPickViewHints           Group = "pickViewHints"
	GroupPickViewButtons         Group = "pickViewButtons"
	GroupPickViewHardwareTrigger Group = "pickViewHardwareTrigger"
)

// Scope places a block of settings inside the defaults document.
// Settings are named "<Name>.<key>" and rendered at Section/Document/key.
type Scope struct {
	Name     string
	Section  string
	Document string
}

// Setting is a named, typed, immutable default value.
//
// A Nullable setting without a default holds a nil Value; nil never stands
// for a failed lookup.
type Setting struct {
	Name     string
	Scope    Scope
	Key      string
	Group    Group
	Kind     Kind
	Nullable bool
	Value    any
}

func (s Scope) setting(group Group, kind Kind, key string, v any) Setting {
	return Setting{
		Name:  s.Name + "." + key,
		Scope: s,
		Key:   key,
		Group: group,
		Kind:  kind,
		Value: v,
	}
}

func (s Scope) Bool(g Group, key string, v bool) Setting {
	return s.setting(g, KindBool, key, v)
}

// Enum registers an enum value; v should implement encoding.TextMarshaler.
func (s Scope) Enum(g Group, key string, v any) Setting {
	return s.setting(g, KindEnum, key, v)
}

func (s Scope) Color(g Group, key string, v style.Color) Setting {
	return s.setting(g, KindColor, key, v)
}

func (s Scope) Font(g Group, key string, v style.Font) Setting {
	return s.setting(g, KindFont, key, v)
}

func (s Scope) Number(g Group, key string, v float64) Setting {
	return s.setting(g, KindNumber, key, v)
}

func (s Scope) Text(g Group, key string, v string) Setting {
	return s.setting(g, KindText, key, v)
}

func (s Scope) Brush(g Group, key string, v style.Brush) Setting {
	return s.setting(g, KindBrush, key, v)
}

// Value registers a non-nullable setting of an arbitrary kind.
func (s Scope) Value(g Group, kind Kind, key string, v any) Setting {
	return s.setting(g, kind, key, v)
}

// Optional registers a nullable setting. A nil pointer means "no default".
func Optional[T any](s Scope, g Group, kind Kind, key string, v *T) Setting {
	st := s.setting(g, kind, key, nil)
	st.Nullable = true
	if v != nil {
		st.Value = *v
	}
	return st
}

// Cloner is implemented by values that hold maps or pointers. The registry
// stores and returns clones of them, so no caller shares its state.
type Cloner interface {
	CloneValue() any
}

func cloneValue(v any) any {
	if c, ok := v.(Cloner); ok {
		return c.CloneValue()
	}
	return v
}

func (s Setting) clone() Setting {
	s.Value = cloneValue(s.Value)
	return s
}

// IsSet reports whether the setting carries a value.
func (s Setting) IsSet() bool { return s.Value != nil }

// Encoded returns the document representation of the setting's value.
func (s Setting) Encoded() any { return EncodeValue(s.Value) }
