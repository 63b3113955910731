package pickview

import "github.com/MeKo-Tech/scandefaults/internal/style"

// FilterHighlightType is how filtered-out barcodes are marked.
type FilterHighlightType int

const FilterHighlightBrush FilterHighlightType = 0

var filterHighlightTypeNames = style.EnumNames[FilterHighlightType]{
	Kind:  "filter highlight type",
	Names: []string{"brush"},
}

func (t FilterHighlightType) String() string                   { return filterHighlightTypeNames.Name(t) }
func (t FilterHighlightType) MarshalText() ([]byte, error)     { return filterHighlightTypeNames.Marshal(t) }
func (t *FilterHighlightType) UnmarshalText(text []byte) error { return filterHighlightTypeNames.Unmarshal(t, text) }

// FilterHighlightSettings controls the look of barcodes rejected by a filter.
type FilterHighlightSettings struct {
	Type  FilterHighlightType
	Brush *style.Brush
}

// NewBrushFilterHighlight marks filtered barcodes with the given brush.
func NewBrushFilterHighlight(b style.Brush) FilterHighlightSettings {
	return FilterHighlightSettings{Type: FilterHighlightBrush, Brush: &b}
}

func (f FilterHighlightSettings) CloneValue() any {
	if f.Brush != nil {
		b := *f.Brush
		f.Brush = &b
	}
	return f
}

func (f FilterHighlightSettings) Encode() any {
	var brush any
	if f.Brush != nil {
		brush = f.Brush.Encode()
	}
	return map[string]any{
		"brush":         brush,
		"highlightType": f.Type.String(),
	}
}
