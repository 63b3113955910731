package arview

import (
	d "github.com/MeKo-Tech/scandefaults/internal/defaults"
)

// viewScope places the view's settings at BarcodeAr/BarcodeArView.
func viewScope() d.Scope {
	return d.Scope{Name: "barcodeArView", Section: "BarcodeAr", Document: "BarcodeArView"}
}

// feedbackScope holds the scan feedback published next to the view.
func feedbackScope() d.Scope {
	return d.Scope{Name: "barcodeAr", Section: "BarcodeAr", Document: "Feedback"}
}

// cameraScope holds the recommended camera settings published next to the view.
func cameraScope() d.Scope {
	return d.Scope{Name: "barcodeArRecommendedCameraSettings", Section: "BarcodeAr", Document: "RecommendedCameraSettings"}
}

// Settings returns every non-preset default of the view in header order.
func Settings() []d.Setting {
	s := viewScope()
	out := []d.Setting{
		s.Bool(d.GroupFeedback, "hapticsEnabled", DefaultHapticsEnabled),
		s.Bool(d.GroupFeedback, "soundEnabled", DefaultSoundEnabled),

		s.Bool(d.GroupControlVisibility, "shouldShowTorchControl", DefaultShouldShowTorchControl),
		s.Bool(d.GroupControlVisibility, "shouldShowZoomControl", DefaultShouldShowZoomControl),
		s.Bool(d.GroupControlVisibility, "shouldShowCameraSwitchControl", DefaultShouldShowCameraSwitchControl),
		s.Bool(d.GroupControlVisibility, "shouldShowMacroModeControl", DefaultShouldShowMacroModeControl),
		s.Enum(d.GroupCamera, "cameraPosition", DefaultCameraPosition),
		s.Enum(d.GroupControlPosition, "torchControlPosition", DefaultTorchControlPosition),
		s.Enum(d.GroupControlPosition, "zoomControlPosition", DefaultZoomControlPosition),
		s.Enum(d.GroupControlPosition, "cameraSwitchControlPosition", DefaultCameraSwitchControlPosition),
		s.Enum(d.GroupControlPosition, "macroModeControlPosition", DefaultMacroModeControlPosition),

		s.Brush(d.GroupHighlightStyle, "rectangleHighlightBrush", DefaultRectangleHighlightBrush()),
		d.Optional(s, d.GroupHighlightStyle, d.KindIcon, "rectangleHighlightIcon", DefaultRectangleHighlightIcon()),
		s.Bool(d.GroupHighlightStyle, "highlightIsPulsing", DefaultHighlightIsPulsing),

		s.Enum(d.GroupStatusAnnotation, "statusIconAnnotationAnchor", DefaultStatusIconAnnotationAnchor),
		s.Enum(d.GroupStatusAnnotation, "statusIconAnnotationTrigger", DefaultStatusIconAnnotationTrigger),
		s.Bool(d.GroupStatusAnnotation, "statusIconAnnotationHasTip", DefaultStatusIconAnnotationHasTip),
		s.Value(d.GroupStatusAnnotation, d.KindIcon, "statusIconAnnotationIcon", DefaultStatusIconAnnotationIcon()),
		d.Optional(s, d.GroupStatusAnnotation, d.KindText, "statusIconAnnotationText", DefaultStatusIconAnnotationText()),
		s.Color(d.GroupStatusAnnotation, "statusIconAnnotationBackgroundColor", DefaultStatusIconAnnotationBackgroundColor()),
		s.Color(d.GroupStatusAnnotation, "statusIconAnnotationIconTextColor", DefaultStatusIconAnnotationIconTextColor()),
		s.Font(d.GroupStatusAnnotation, "statusIconAnnotationLabelFont", DefaultStatusIconAnnotationLabelFont()),

		s.Enum(d.GroupPopoverAnnotation, "popoverAnnotationTrigger", DefaultPopoverAnnotationTrigger),
		s.Bool(d.GroupPopoverAnnotation, "popoverAnnotationIsEntirePopoverTappable", DefaultPopoverAnnotationIsEntirePopoverTappable),
		s.Bool(d.GroupPopoverAnnotation, "popoverAnnotationButtonEnabled", DefaultPopoverAnnotationButtonEnabled),
		s.Font(d.GroupPopoverAnnotation, "popoverAnnotationButtonFont", DefaultPopoverAnnotationButtonFont()),
		s.Color(d.GroupPopoverAnnotation, "popoverAnnotationButtonTextColor", DefaultPopoverAnnotationButtonTextColor()),
		s.Enum(d.GroupPopoverAnnotation, "popoverAnnotationAnchor", DefaultPopoverAnnotationAnchor),

		s.Enum(d.GroupInfoAnnotation, "infoAnnotationTrigger", DefaultInfoAnnotationTrigger),
		s.Color(d.GroupInfoAnnotation, "infoAnnotationBackgroundColor", DefaultInfoAnnotationBackgroundColor()),
		s.Bool(d.GroupInfoAnnotation, "infoAnnotationHasTip", DefaultInfoAnnotationHasTip),
		s.Bool(d.GroupInfoAnnotation, "infoAnnotationIsEntireAnnotationTappable", DefaultInfoAnnotationIsEntireAnnotationTappable),
		s.Enum(d.GroupInfoAnnotation, "infoAnnotationAnchor", DefaultInfoAnnotationAnchor),
		s.Enum(d.GroupInfoAnnotation, "infoAnnotationWidth", DefaultInfoAnnotationWidth),

		d.Optional(s, d.GroupInfoAnnotationHeader, d.KindIcon, "infoAnnotationHeaderIcon", DefaultInfoAnnotationHeaderIcon()),
		d.Optional(s, d.GroupInfoAnnotationHeader, d.KindText, "infoAnnotationHeaderText", DefaultInfoAnnotationHeaderText()),
		s.Color(d.GroupInfoAnnotationHeader, "infoAnnotationHeaderBackgroundColor", DefaultInfoAnnotationHeaderBackgroundColor()),
		s.Color(d.GroupInfoAnnotationHeader, "infoAnnotationHeaderTextColor", DefaultInfoAnnotationHeaderTextColor()),
		s.Font(d.GroupInfoAnnotationHeader, "infoAnnotationHeaderFont", DefaultInfoAnnotationHeaderFont()),

		d.Optional(s, d.GroupInfoAnnotationFooter, d.KindIcon, "infoAnnotationFooterIcon", DefaultInfoAnnotationFooterIcon()),
		d.Optional(s, d.GroupInfoAnnotationFooter, d.KindText, "infoAnnotationFooterText", DefaultInfoAnnotationFooterText()),
		s.Color(d.GroupInfoAnnotationFooter, "infoAnnotationFooterBackgroundColor", DefaultInfoAnnotationFooterBackgroundColor()),
		s.Color(d.GroupInfoAnnotationFooter, "infoAnnotationFooterTextColor", DefaultInfoAnnotationFooterTextColor()),
		s.Font(d.GroupInfoAnnotationFooter, "infoAnnotationFooterFont", DefaultInfoAnnotationFooterFont()),

		s.Bool(d.GroupInfoAnnotationBody, "infoAnnotationBodyComponentIsLeftIconTappable", DefaultInfoAnnotationBodyComponentIsLeftIconTappable),
		s.Bool(d.GroupInfoAnnotationBody, "infoAnnotationBodyComponentIsRightIconTappable", DefaultInfoAnnotationBodyComponentIsRightIconTappable),
		d.Optional(s, d.GroupInfoAnnotationBody, d.KindText, "infoAnnotationBodyComponentText", DefaultInfoAnnotationBodyComponentText()),
		d.Optional(s, d.GroupInfoAnnotationBody, d.KindStyledText, "infoAnnotationBodyComponentStyledText", DefaultInfoAnnotationBodyComponentStyledText()),
		s.Enum(d.GroupInfoAnnotationBody, "infoAnnotationBodyComponentTextAlignment", DefaultInfoAnnotationBodyComponentTextAlignment),
		d.Optional(s, d.GroupInfoAnnotationBody, d.KindIcon, "infoAnnotationBodyComponentLeftIcon", DefaultInfoAnnotationBodyComponentLeftIcon()),
		d.Optional(s, d.GroupInfoAnnotationBody, d.KindIcon, "infoAnnotationBodyComponentRightIcon", DefaultInfoAnnotationBodyComponentRightIcon()),
		s.Font(d.GroupInfoAnnotationBody, "infoAnnotationBodyComponentFont", DefaultInfoAnnotationBodyComponentFont()),
		s.Color(d.GroupInfoAnnotationBody, "infoAnnotationBodyComponentTextColor", DefaultInfoAnnotationBodyComponentTextColor()),

		feedbackScope().Value(d.GroupFeedback, d.KindFeedback, "barcodeArFeedback", DefaultFeedback()),
	}
	return append(out, DefaultRecommendedCameraSettings().Settings(cameraScope())...)
}
