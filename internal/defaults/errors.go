package defaults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownSetting is returned when a setting name is not registered.
	ErrUnknownSetting = errors.New("defaults: unknown setting")

	// ErrDuplicateSetting is returned when two settings share a name.
	ErrDuplicateSetting = errors.New("defaults: duplicate setting")

	// ErrInvalidSetting is returned for settings that cannot be registered.
	ErrInvalidSetting = errors.New("defaults: invalid setting")

	// ErrUnknownPresetFamily is returned when a preset family is not registered.
	ErrUnknownPresetFamily = errors.New("defaults: unknown preset family")

	// ErrUnsupportedPreset matches every *UnsupportedPresetError.
	ErrUnsupportedPreset = errors.New("defaults: unsupported preset")
)

// UnsupportedPresetError reports a preset value outside a family's closed set.
// Callers that only pass declared preset values never see it.
type UnsupportedPresetError struct {
	Family    string
	Preset    string
	Supported []string
}

func (e *UnsupportedPresetError) Error() string {
	return fmt.Sprintf("unsupported preset %q for %s (supported: %s)",
		e.Preset, e.Family, strings.Join(e.Supported, ", "))
}

// Is makes errors.Is(err, ErrUnsupportedPreset) hold.
func (e *UnsupportedPresetError) Is(target error) bool {
	return target == ErrUnsupportedPreset
}
