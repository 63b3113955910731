// Package catalog assembles the process-wide defaults registry from every
// view package.
package catalog

import (
	"fmt"
	"sync"

	"github.com/MeKo-Tech/scandefaults/internal/arview"
	"github.com/MeKo-Tech/scandefaults/internal/defaults"
	"github.com/MeKo-Tech/scandefaults/internal/pickview"
)

// Build creates a new registry holding the AR and pick view defaults.
func Build() (*defaults.Registry, error) {
	settings := append(arview.Settings(), pickview.Settings()...)
	reg, err := defaults.NewRegistry(settings, arview.Families()...)
	if err != nil {
		return nil, fmt.Errorf("building defaults catalog: %w", err)
	}
	return reg, nil
}

var defaultRegistry = sync.OnceValue(func() *defaults.Registry {
	reg, err := Build()
	if err != nil {
		panic(err)
	}
	return reg
})

// Default returns the shared registry. It is built on first use.
func Default() *defaults.Registry { return defaultRegistry() }

// Get reads a setting from the shared registry.
func Get(name string) (any, error) { return Default().Get(name) }

// ForPreset resolves a preset family value from the shared registry.
func ForPreset(family, preset string) (any, error) { return Default().ForPreset(family, preset) }

// Document renders the shared registry. A non-empty locale translates the
// pick view texts.
func Document(locale string, opts ...defaults.DocumentOption) (map[string]any, error) {
	if locale != "" {
		opts = append(opts, defaults.WithOverride(pickview.Localize(locale)))
	}
	return Default().Document(opts...)
}
