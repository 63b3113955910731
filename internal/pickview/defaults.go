// Package pickview holds the defaults of the barcode pick view and of the
// pick mode settings.
package pickview

import (
	"github.com/MeKo-Tech/scandefaults/internal/capture"
	"github.com/MeKo-Tech/scandefaults/internal/style"
)

// DefaultHighlightStyleType is the style a new pick view starts with.
const DefaultHighlightStyleType = HighlightDotWithIcons

// DefaultHighlightStyle returns a fresh instance of the default style.
func DefaultHighlightStyle() HighlightStyle {
	return NewDotWithIcons()
}

// Loading dialog.
const DefaultShowLoadingDialog = true

func DefaultLoadingDialogTextForPicking() string   { return englishText(TextLoadingPicking) }
func DefaultLoadingDialogTextForUnpicking() string { return englishText(TextLoadingUnpicking) }

// Guidelines.
const DefaultShowGuidelines = true

func DefaultInitialGuidelineText() string    { return englishText(TextInitialGuideline) }
func DefaultMoveCloserGuidelineText() string { return englishText(TextMoveCloserGuideline) }
func DefaultTapShutterToPauseGuidelineText() string {
	return englishText(TextTapShutterToPauseGuideline)
}

// Hints.
const DefaultShowHints = true

func DefaultOnFirstItemToPickFoundHintText() string {
	return englishText(TextFirstItemToPickFoundHint)
}

func DefaultOnFirstItemPickCompletedHintText() string {
	return englishText(TextFirstItemPickCompletedHint)
}

func DefaultOnFirstUnmarkedItemPickCompletedHintText() string {
	return englishText(TextFirstUnmarkedItemPickedHint)
}

func DefaultOnFirstItemUnpickCompletedHintText() string {
	return englishText(TextFirstItemUnpickCompletedHint)
}

// Buttons.
const (
	DefaultShowFinishButton    = true
	DefaultShowPauseButton     = true
	DefaultShowZoomButton      = true
	DefaultZoomButtonPosition  = style.AnchorBottomRight
	DefaultShowTorchButton     = false
	DefaultTorchButtonPosition = style.AnchorTopLeft
)

// DefaultFilterHighlightSettings is nil: filtered barcodes are not marked.
func DefaultFilterHighlightSettings() *FilterHighlightSettings { return nil }

// Fixed values the view publishes for hybrid hosts.
const DefaultHardwareTriggerEnabled = true

func DefaultUIButtonsOffset() *float64 { return nil }

func DefaultHardwareTriggerKeyCode() *float64 { return nil }

// Pick mode settings.
const (
	DefaultPickHapticsEnabled = true
	DefaultPickSoundEnabled   = true
	DefaultPickCachingEnabled = false
)

// DefaultBarcodeFilterSettings excludes nothing.
func DefaultBarcodeFilterSettings() capture.BarcodeFilterSettings {
	return capture.BarcodeFilterSettings{}
}
