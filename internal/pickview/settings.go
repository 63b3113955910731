package pickview

import (
	d "github.com/MeKo-Tech/scandefaults/internal/defaults"
)

// viewScope places the view's settings at BarcodePick/BarcodePickView.
func viewScope() d.Scope {
	return d.Scope{Name: "barcodePickView", Section: "BarcodePick", Document: "BarcodePickView"}
}

// settingsScope holds the pick mode settings.
func settingsScope() d.Scope {
	return d.Scope{Name: "barcodePickSettings", Section: "BarcodePick", Document: "BarcodePickSettings"}
}

// stylesScope lists the default instance of every highlight style.
func stylesScope() d.Scope {
	return d.Scope{Name: "barcodePickViewHighlightStyle", Section: "BarcodePick", Document: "BarcodePickViewHighlightStyle"}
}

// Settings returns every default of the pick view, the pick settings and
// the highlight style catalog.
func Settings() []d.Setting {
	s := viewScope()
	out := []d.Setting{
		s.Value(d.GroupPickViewHighlight, d.KindHighlightStyle, "highlightStyle", DefaultHighlightStyle()),

		s.Bool(d.GroupPickViewLoading, "showLoadingDialog", DefaultShowLoadingDialog),
		s.Text(d.GroupPickViewLoading, TextLoadingPicking, DefaultLoadingDialogTextForPicking()),
		s.Text(d.GroupPickViewLoading, TextLoadingUnpicking, DefaultLoadingDialogTextForUnpicking()),

		s.Bool(d.GroupPickViewGuidance, "showGuidelines", DefaultShowGuidelines),
		s.Text(d.GroupPickViewGuidance, TextInitialGuideline, DefaultInitialGuidelineText()),
		s.Text(d.GroupPickViewGuidance, TextMoveCloserGuideline, DefaultMoveCloserGuidelineText()),
		s.Text(d.GroupPickViewGuidance, TextTapShutterToPauseGuideline, DefaultTapShutterToPauseGuidelineText()),

		s.Bool(d.GroupPickViewHints, "showHints", DefaultShowHints),
		s.Text(d.GroupPickViewHints, TextFirstItemToPickFoundHint, DefaultOnFirstItemToPickFoundHintText()),
		s.Text(d.GroupPickViewHints, TextFirstItemPickCompletedHint, DefaultOnFirstItemPickCompletedHintText()),
		s.Text(d.GroupPickViewHints, TextFirstUnmarkedItemPickedHint, DefaultOnFirstUnmarkedItemPickCompletedHintText()),
		s.Text(d.GroupPickViewHints, TextFirstItemUnpickCompletedHint, DefaultOnFirstItemUnpickCompletedHintText()),

		s.Bool(d.GroupPickViewButtons, "showFinishButton", DefaultShowFinishButton),
		s.Bool(d.GroupPickViewButtons, "showPauseButton", DefaultShowPauseButton),
		s.Bool(d.GroupPickViewButtons, "showZoomButton", DefaultShowZoomButton),
		s.Enum(d.GroupPickViewButtons, "zoomButtonPosition", DefaultZoomButtonPosition),
		s.Bool(d.GroupPickViewButtons, "showTorchButton", DefaultShowTorchButton),
		s.Enum(d.GroupPickViewButtons, "torchButtonPosition", DefaultTorchButtonPosition),
		d.Optional(s, d.GroupPickViewButtons, d.KindNumber, "uiButtonsOffset", DefaultUIButtonsOffset()),

		d.Optional(s, d.GroupPickViewHighlight, d.KindFilterHighlight, "filterHighlightSettings", DefaultFilterHighlightSettings()),

		s.Bool(d.GroupPickViewHardwareTrigger, "hardwareTriggerEnabled", DefaultHardwareTriggerEnabled),
		d.Optional(s, d.GroupPickViewHardwareTrigger, d.KindNumber, "hardwareTriggerKeyCode", DefaultHardwareTriggerKeyCode()),

		settingsScope().Bool(d.GroupPickSettings, "hapticsEnabled", DefaultPickHapticsEnabled),
		settingsScope().Bool(d.GroupPickSettings, "soundEnabled", DefaultPickSoundEnabled),
		settingsScope().Bool(d.GroupPickSettings, "cachingEnabled", DefaultPickCachingEnabled),
		settingsScope().Value(d.GroupPickSettings, d.KindBarcodeFilter, "barcodeFilterSettings", DefaultBarcodeFilterSettings()),
	}

	for _, t := range HighlightStyleTypes() {
		hs, _ := NewHighlightStyle(t)
		out = append(out, stylesScope().Value(d.GroupPickViewHighlight, d.KindHighlightStyle, t.String(), hs))
	}
	return out
}

// Localize returns a document override that swaps the view's texts for
// their translation in the best match for locale.
func Localize(locale string) func(d.Setting) (any, bool) {
	texts := Texts(locale)
	return func(s d.Setting) (any, bool) {
		if s.Scope != viewScope() || s.Kind != d.KindText {
			return nil, false
		}
		v, ok := texts[s.Key]
		return v, ok
	}
}
