package defaults

import (
	"encoding"
	"fmt"
)

// Encoder is implemented by values with a custom document representation.
type Encoder interface {
	Encode() any
}

// EncodeValue converts a default value into plain JSON/YAML-friendly data.
func EncodeValue(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case Encoder:
		return t.Encode()
	case encoding.TextMarshaler:
		text, err := t.MarshalText()
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(text)
	default:
		return v
	}
}

// DocumentOption customizes Registry.Document.
type DocumentOption func(*documentOptions)

type documentOptions struct {
	override     func(Setting) (any, bool)
	skipPresets  bool
	onlySections map[string]bool
}

// WithOverride replaces a setting's value before encoding when fn returns true.
func WithOverride(fn func(Setting) (any, bool)) DocumentOption {
	return func(o *documentOptions) { o.override = fn }
}

// WithoutPresets leaves preset tables out of the document.
func WithoutPresets() DocumentOption {
	return func(o *documentOptions) { o.skipPresets = true }
}

// WithSections restricts the document to the named top-level sections.
func WithSections(sections ...string) DocumentOption {
	return func(o *documentOptions) {
		o.onlySections = make(map[string]bool, len(sections))
		for _, s := range sections {
			o.onlySections[s] = true
		}
	}
}

// Document renders the registry as nested maps:
//
//	Section -> Document -> key -> encoded value
//
// Preset families add Section -> Document -> Table -> preset -> Field.
func (r *Registry) Document(opts ...DocumentOption) (map[string]any, error) {
	var o documentOptions
	for _, opt := range opts {
		opt(&o)
	}

	doc := make(map[string]any)
	for _, s := range r.settings {
		if o.onlySections != nil && !o.onlySections[s.Scope.Section] {
			continue
		}
		v := s.Value
		if o.override != nil {
			if ov, ok := o.override(s.clone()); ok {
				v = ov
			}
		}
		scope(doc, s.Scope)[s.Key] = EncodeValue(v)
	}

	if o.skipPresets {
		return doc, nil
	}
	for _, f := range r.families {
		if o.onlySections != nil && !o.onlySections[f.Scope.Section] {
			continue
		}
		block := scope(doc, f.Scope)
		table, _ := block[f.Table].(map[string]any)
		if table == nil {
			table = make(map[string]any)
			block[f.Table] = table
		}
		for _, p := range f.Presets {
			v, err := f.Resolve(p)
			if err != nil {
				return nil, fmt.Errorf("resolving %s/%s: %w", f.Name(), p, err)
			}
			entry, _ := table[p].(map[string]any)
			if entry == nil {
				entry = make(map[string]any)
				table[p] = entry
			}
			entry[f.Field] = EncodeValue(v)
		}
	}
	return doc, nil
}

func scope(doc map[string]any, s Scope) map[string]any {
	section, _ := doc[s.Section].(map[string]any)
	if section == nil {
		section = make(map[string]any)
		doc[s.Section] = section
	}
	block, _ := section[s.Document].(map[string]any)
	if block == nil {
		block = make(map[string]any)
		section[s.Document] = block
	}
	return block
}
