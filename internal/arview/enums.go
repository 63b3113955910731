package arview

import "github.com/MeKo-Tech/scandefaults/internal/style"

// CameraPosition selects which camera the view opens.
type CameraPosition int

const (
	CameraPositionWorldFacing CameraPosition = iota
	CameraPositionUserFacing
	CameraPositionUnspecified
)

var cameraPositionNames = style.EnumNames[CameraPosition]{
	Kind:  "camera position",
	Names: []string{"worldFacing", "userFacing", "unspecified"},
}

func (p CameraPosition) String() string                   { return cameraPositionNames.Name(p) }
func (p CameraPosition) MarshalText() ([]byte, error)     { return cameraPositionNames.Marshal(p) }
func (p *CameraPosition) UnmarshalText(text []byte) error { return cameraPositionNames.Unmarshal(p, text) }

// AnnotationTrigger decides when an annotation becomes visible.
type AnnotationTrigger int

const (
	AnnotationTriggerHighlightTap AnnotationTrigger = iota
	AnnotationTriggerHighlightTapAndBarcodeScan
)

var annotationTriggerNames = style.EnumNames[AnnotationTrigger]{
	Kind:  "annotation trigger",
	Names: []string{"highlightTap", "highlightTapAndBarcodeScan"},
}

func (t AnnotationTrigger) String() string                   { return annotationTriggerNames.Name(t) }
func (t AnnotationTrigger) MarshalText() ([]byte, error)     { return annotationTriggerNames.Marshal(t) }
func (t *AnnotationTrigger) UnmarshalText(text []byte) error { return annotationTriggerNames.Unmarshal(t, text) }

// AnnotationAnchor attaches an annotation to one side of its barcode.
// Status icon, popover and info annotations share this set.
type AnnotationAnchor int

const (
	AnnotationAnchorTop AnnotationAnchor = iota
	AnnotationAnchorBottom
	AnnotationAnchorLeft
	AnnotationAnchorRight
)

var annotationAnchorNames = style.EnumNames[AnnotationAnchor]{
	Kind:  "annotation anchor",
	Names: []string{"top", "bottom", "left", "right"},
}

func (a AnnotationAnchor) String() string                   { return annotationAnchorNames.Name(a) }
func (a AnnotationAnchor) MarshalText() ([]byte, error)     { return annotationAnchorNames.Marshal(a) }
func (a *AnnotationAnchor) UnmarshalText(text []byte) error { return annotationAnchorNames.Unmarshal(a, text) }

// InfoAnnotationWidthPreset is the width class of an info annotation.
type InfoAnnotationWidthPreset int

const (
	InfoAnnotationWidthSmall InfoAnnotationWidthPreset = iota
	InfoAnnotationWidthMedium
	InfoAnnotationWidthLarge
)

var infoWidthNames = style.EnumNames[InfoAnnotationWidthPreset]{
	Kind:  "info annotation width",
	Names: []string{"small", "medium", "large"},
}

func (w InfoAnnotationWidthPreset) String() string                   { return infoWidthNames.Name(w) }
func (w InfoAnnotationWidthPreset) MarshalText() ([]byte, error)     { return infoWidthNames.Marshal(w) }
func (w *InfoAnnotationWidthPreset) UnmarshalText(text []byte) error { return infoWidthNames.Unmarshal(w, text) }

// CircleHighlightPreset is the closed set of circle highlight looks.
type CircleHighlightPreset int

const (
	CircleHighlightPresetDot CircleHighlightPreset = iota
	CircleHighlightPresetIcon
)

var circlePresetNames = style.EnumNames[CircleHighlightPreset]{
	Kind:  "circle highlight preset",
	Names: []string{"dot", "icon"},
}

// CircleHighlightPresets returns every declared preset.
func CircleHighlightPresets() []CircleHighlightPreset { return circlePresetNames.Values() }

// ParseCircleHighlightPreset resolves a wire name such as "dot".
func ParseCircleHighlightPreset(s string) (CircleHighlightPreset, error) {
	return circlePresetNames.Parse(s)
}

func (p CircleHighlightPreset) String() string               { return circlePresetNames.Name(p) }
func (p CircleHighlightPreset) MarshalText() ([]byte, error) { return circlePresetNames.Marshal(p) }
func (p *CircleHighlightPreset) UnmarshalText(text []byte) error {
	v, err := circlePresetNames.Parse(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
