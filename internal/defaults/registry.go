// Package defaults implements a read-only registry of UI default values.
//
// A Registry is assembled once from the settings and preset families of
// each view and never changes afterwards, so any number of goroutines may
// read from it without synchronization.
package defaults

import (
	"fmt"
	"slices"
)

// PresetFamily is a default whose value depends on a closed preset enum.
type PresetFamily struct {
	Scope Scope
	// Key names the family inside its scope, e.g. "circleHighlightSize".
	Key string
	// Table and Field place resolved values at Table/<preset>/Field
	// in the defaults document.
	Table    string
	Field    string
	Kind     Kind
	Nullable bool
	Presets  []string
	// Resolve maps a preset name to its value. Unknown names must yield
	// an *UnsupportedPresetError.
	Resolve func(preset string) (any, error)
}

// Name returns the qualified family name, e.g. "barcodeArView.circleHighlightSize".
func (f PresetFamily) Name() string { return f.Scope.Name + "." + f.Key }

// Registry is an immutable catalog of settings and preset families.
type Registry struct {
	settings    []Setting
	index       map[string]int
	families    []PresetFamily
	familyIndex map[string]int
	groups      []Group
}

// NewRegistry validates and indexes the given settings and families.
func NewRegistry(settings []Setting, families ...PresetFamily) (*Registry, error) {
	r := &Registry{
		settings:    make([]Setting, 0, len(settings)),
		index:       make(map[string]int, len(settings)),
		families:    make([]PresetFamily, 0, len(families)),
		familyIndex: make(map[string]int, len(families)),
	}

	for _, s := range settings {
		if s.Key == "" || s.Scope.Name == "" {
			return nil, fmt.Errorf("%w: setting %q has no scope or key", ErrInvalidSetting, s.Name)
		}
		if !s.Nullable && s.Value == nil {
			return nil, fmt.Errorf("%w: %s is not nullable but has no value", ErrInvalidSetting, s.Name)
		}
		if _, dup := r.index[s.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSetting, s.Name)
		}
		r.index[s.Name] = len(r.settings)
		r.settings = append(r.settings, s.clone())
		if !slices.Contains(r.groups, s.Group) {
			r.groups = append(r.groups, s.Group)
		}
	}

	for _, f := range families {
		name := f.Name()
		if f.Resolve == nil || len(f.Presets) == 0 {
			return nil, fmt.Errorf("%w: preset family %s has no presets or resolver", ErrInvalidSetting, name)
		}
		if _, dup := r.familyIndex[name]; dup {
			return nil, fmt.Errorf("%w: preset family %s", ErrDuplicateSetting, name)
		}
		if _, clash := r.index[name]; clash {
			return nil, fmt.Errorf("%w: preset family %s shadows a setting", ErrDuplicateSetting, name)
		}
		r.familyIndex[name] = len(r.families)
		r.families = append(r.families, f)
	}

	return r, nil
}

// Get returns the default value of the named setting. Nullable settings
// without a default return (nil, nil).
func (r *Registry) Get(name string) (any, error) {
	s, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSetting, name)
	}
	return s.Value, nil
}

// MustGet is Get for names known at compile time; it panics on unknown names.
func (r *Registry) MustGet(name string) any {
	v, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Lookup returns the full setting record. The value is a copy the caller
// may modify freely.
func (r *Registry) Lookup(name string) (Setting, bool) {
	i, ok := r.index[name]
	if !ok {
		return Setting{}, false
	}
	return r.settings[i].clone(), true
}

// Len returns the number of registered settings.
func (r *Registry) Len() int { return len(r.settings) }

// Settings returns every setting in declaration order.
func (r *Registry) Settings() []Setting {
	out := make([]Setting, len(r.settings))
	for i, s := range r.settings {
		out[i] = s.clone()
	}
	return out
}

// Groups returns the groups in order of first appearance.
func (r *Registry) Groups() []Group {
	return slices.Clone(r.groups)
}

// InGroup returns the settings of one group in declaration order.
func (r *Registry) InGroup(g Group) []Setting {
	var out []Setting
	for _, s := range r.settings {
		if s.Group == g {
			out = append(out, s.clone())
		}
	}
	return out
}

// Families returns every preset family in declaration order.
func (r *Registry) Families() []PresetFamily {
	return slices.Clone(r.families)
}

// Family looks up a preset family by qualified name.
func (r *Registry) Family(name string) (PresetFamily, bool) {
	i, ok := r.familyIndex[name]
	if !ok {
		return PresetFamily{}, false
	}
	return r.families[i], true
}

// ForPreset resolves a preset-parameterized default. The result is nil only
// for nullable families whose preset has no default.
func (r *Registry) ForPreset(family, preset string) (any, error) {
	f, ok := r.Family(family)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPresetFamily, family)
	}
	if !slices.Contains(f.Presets, preset) {
		return nil, &UnsupportedPresetError{Family: family, Preset: preset, Supported: slices.Clone(f.Presets)}
	}
	v, err := f.Resolve(preset)
	if err != nil {
		return nil, err
	}
	return cloneValue(v), nil
}
