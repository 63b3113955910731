// Package arview holds the defaults of the augmented-reality barcode view:
// its controls, highlights and annotations.
//
// Scalar defaults are constants. Struct-valued defaults are returned by
// functions so every caller gets its own copy and the package-level values
// cannot be mutated.
package arview

import (
	"github.com/MeKo-Tech/scandefaults/internal/capture"
	"github.com/MeKo-Tech/scandefaults/internal/style"
)

// Feedback and camera.
const (
	DefaultHapticsEnabled = true
	DefaultSoundEnabled   = true
	DefaultCameraPosition = CameraPositionWorldFacing
)

// DefaultRecommendedCameraSettings is the camera setup the view is tuned for.
func DefaultRecommendedCameraSettings() capture.CameraSettings {
	return capture.CameraSettings{
		PreferredResolution:   capture.VideoResolutionUHD4K,
		ZoomFactor:            1,
		FocusRange:            capture.FocusRangeFull,
		ZoomGestureZoomFactor: 2,
		FocusGestureStrategy:  capture.FocusGestureManualUntilCapture,
		Properties:            capture.Properties{},
	}
}

// Control visibility and placement.
const (
	DefaultShouldShowTorchControl        = false
	DefaultShouldShowZoomControl         = true
	DefaultShouldShowCameraSwitchControl = false
	DefaultShouldShowMacroModeControl    = false

	DefaultTorchControlPosition        = style.AnchorTopLeft
	DefaultZoomControlPosition         = style.AnchorBottomRight
	DefaultCameraSwitchControlPosition = style.AnchorTopRight
	DefaultMacroModeControlPosition    = style.AnchorBottomLeft
)

func scanditBlue() style.Color    { return style.Opaque(0x2e, 0xc1, 0xce) }
func annotationDark() style.Color { return style.Opaque(0x12, 0x16, 0x19) }
func warningYellow() style.Color  { return style.Opaque(0xfb, 0xc0, 0x2c) }

// Rectangle highlight.
const DefaultHighlightIsPulsing = false

func DefaultRectangleHighlightBrush() style.Brush {
	return style.Brush{Fill: scanditBlue().WithAlpha(0x66), Stroke: scanditBlue(), StrokeWidth: 1}
}

func DefaultRectangleHighlightIcon() *style.Icon { return nil }

// Status icon annotation.
const (
	DefaultStatusIconAnnotationAnchor  = AnnotationAnchorTop
	DefaultStatusIconAnnotationTrigger = AnnotationTriggerHighlightTapAndBarcodeScan
	DefaultStatusIconAnnotationHasTip  = true
)

func DefaultStatusIconAnnotationIcon() style.Icon {
	return style.NewIcon(style.IconExclamationMark).WithColors(style.Black(), warningYellow(), style.IconShapeCircle)
}

func DefaultStatusIconAnnotationText() *string { return nil }

func DefaultStatusIconAnnotationBackgroundColor() style.Color { return style.White().WithAlpha(0xe6) }

func DefaultStatusIconAnnotationIconTextColor() style.Color { return style.Black() }

func DefaultStatusIconAnnotationLabelFont() style.Font {
	return style.SystemFont(14, style.FontWeightBold)
}

// Popover annotation.
const (
	DefaultPopoverAnnotationTrigger                 = AnnotationTriggerHighlightTap
	DefaultPopoverAnnotationIsEntirePopoverTappable = false
	DefaultPopoverAnnotationButtonEnabled           = true
	DefaultPopoverAnnotationAnchor                  = AnnotationAnchorTop
)

func DefaultPopoverAnnotationButtonFont() style.Font {
	return style.SystemFont(14, style.FontWeightMedium)
}

func DefaultPopoverAnnotationButtonTextColor() style.Color { return style.Black() }

// Info annotation.
const (
	DefaultInfoAnnotationTrigger                    = AnnotationTriggerHighlightTapAndBarcodeScan
	DefaultInfoAnnotationHasTip                     = true
	DefaultInfoAnnotationIsEntireAnnotationTappable = false
	DefaultInfoAnnotationAnchor                     = AnnotationAnchorBottom
	DefaultInfoAnnotationWidth                      = InfoAnnotationWidthLarge
)

func DefaultInfoAnnotationBackgroundColor() style.Color { return style.White().WithAlpha(0xe6) }

// Info annotation header and footer.

func DefaultInfoAnnotationHeaderIcon() *style.Icon { return nil }

func DefaultInfoAnnotationHeaderText() *string { return nil }

func DefaultInfoAnnotationHeaderBackgroundColor() style.Color { return annotationDark() }

func DefaultInfoAnnotationHeaderTextColor() style.Color { return style.White() }

func DefaultInfoAnnotationHeaderFont() style.Font {
	return style.SystemFont(16, style.FontWeightBold)
}

func DefaultInfoAnnotationFooterIcon() *style.Icon { return nil }

func DefaultInfoAnnotationFooterText() *string { return nil }

func DefaultInfoAnnotationFooterBackgroundColor() style.Color { return annotationDark() }

func DefaultInfoAnnotationFooterTextColor() style.Color { return style.White() }

func DefaultInfoAnnotationFooterFont() style.Font {
	return style.SystemFont(14, style.FontWeightRegular)
}

// Info annotation body component.
const (
	DefaultInfoAnnotationBodyComponentIsLeftIconTappable  = true
	DefaultInfoAnnotationBodyComponentIsRightIconTappable = true
	DefaultInfoAnnotationBodyComponentTextAlignment       = style.TextAlignmentCenter
)

func DefaultInfoAnnotationBodyComponentText() *string { return nil }

func DefaultInfoAnnotationBodyComponentStyledText() *style.StyledText { return nil }

func DefaultInfoAnnotationBodyComponentLeftIcon() *style.Icon { return nil }

func DefaultInfoAnnotationBodyComponentRightIcon() *style.Icon { return nil }

func DefaultInfoAnnotationBodyComponentFont() style.Font {
	return style.SystemFont(14, style.FontWeightRegular)
}

func DefaultInfoAnnotationBodyComponentTextColor() style.Color { return style.Black() }

// Feedback is the sound and haptic played when a barcode is scanned.
type Feedback struct {
	Sound   bool
	Haptics bool
}

// DefaultFeedback is the feedback of a freshly created view.
func DefaultFeedback() Feedback {
	return Feedback{Sound: DefaultSoundEnabled, Haptics: DefaultHapticsEnabled}
}

func (f Feedback) Encode() any {
	return map[string]any{
		"scanned": map[string]any{"sound": f.Sound, "haptics": f.Haptics},
	}
}
