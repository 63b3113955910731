// Package capture holds the capture-mode defaults shared by the views: the
// recommended camera settings and the barcode filter settings.
package capture

import (
	"maps"

	d "github.com/MeKo-Tech/scandefaults/internal/defaults"
	"github.com/MeKo-Tech/scandefaults/internal/style"
)

// VideoResolution is the preferred resolution of the camera stream.
type VideoResolution int

const (
	VideoResolutionAuto VideoResolution = iota
	VideoResolutionHD
	VideoResolutionFullHD
	VideoResolutionUHD4K
)

var videoResolutionNames = style.EnumNames[VideoResolution]{
	Kind:  "video resolution",
	Names: []string{"auto", "hd", "fullHd", "uhd4k"},
}

func (r VideoResolution) String() string                   { return videoResolutionNames.Name(r) }
func (r VideoResolution) MarshalText() ([]byte, error)     { return videoResolutionNames.Marshal(r) }
func (r *VideoResolution) UnmarshalText(text []byte) error { return videoResolutionNames.Unmarshal(r, text) }

// FocusRange limits the distances the autofocus searches.
type FocusRange int

const (
	FocusRangeFull FocusRange = iota
	FocusRangeNear
	FocusRangeFar
)

var focusRangeNames = style.EnumNames[FocusRange]{
	Kind:  "focus range",
	Names: []string{"full", "near", "far"},
}

func (f FocusRange) String() string                   { return focusRangeNames.Name(f) }
func (f FocusRange) MarshalText() ([]byte, error)     { return focusRangeNames.Marshal(f) }
func (f *FocusRange) UnmarshalText(text []byte) error { return focusRangeNames.Unmarshal(f, text) }

// FocusGestureStrategy is what a tap-to-focus gesture does.
type FocusGestureStrategy int

const (
	FocusGestureNone FocusGestureStrategy = iota
	FocusGestureManual
	FocusGestureManualUntilCapture
	FocusGestureAutoOnLocation
)

var focusGestureNames = style.EnumNames[FocusGestureStrategy]{
	Kind:  "focus gesture strategy",
	Names: []string{"none", "manual", "manualUntilCapture", "autoOnLocation"},
}

func (g FocusGestureStrategy) String() string                   { return focusGestureNames.Name(g) }
func (g FocusGestureStrategy) MarshalText() ([]byte, error)     { return focusGestureNames.Marshal(g) }
func (g *FocusGestureStrategy) UnmarshalText(text []byte) error { return focusGestureNames.Unmarshal(g, text) }

// Properties are free-form camera properties passed through to the device.
type Properties map[string]any

func (p Properties) CloneValue() any { return maps.Clone(p) }

func (p Properties) Encode() any {
	out := make(map[string]any, len(p))
	maps.Copy(out, p)
	return out
}

// CameraSettings configures the camera a capture mode runs on.
type CameraSettings struct {
	PreferredResolution         VideoResolution
	ZoomFactor                  float64
	FocusRange                  FocusRange
	ZoomGestureZoomFactor       float64
	FocusGestureStrategy        FocusGestureStrategy
	ShouldPreferSmoothAutoFocus bool
	Properties                  Properties
}

// Settings lists the camera settings as registry entries, one per field.
func (c CameraSettings) Settings(s d.Scope) []d.Setting {
	props := c.Properties
	if props == nil {
		props = Properties{}
	}
	return []d.Setting{
		s.Enum(d.GroupCamera, "preferredResolution", c.PreferredResolution),
		s.Number(d.GroupCamera, "zoomFactor", c.ZoomFactor),
		s.Enum(d.GroupCamera, "focusRange", c.FocusRange),
		s.Number(d.GroupCamera, "zoomGestureZoomFactor", c.ZoomGestureZoomFactor),
		s.Enum(d.GroupCamera, "focusGestureStrategy", c.FocusGestureStrategy),
		s.Bool(d.GroupCamera, "shouldPreferSmoothAutoFocus", c.ShouldPreferSmoothAutoFocus),
		s.Value(d.GroupCamera, d.KindObject, "properties", props),
	}
}
