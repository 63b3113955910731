package pickview

import (
	"encoding"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/MeKo-Tech/scandefaults/internal/barcode"
	"github.com/MeKo-Tech/scandefaults/internal/capture"
	"github.com/MeKo-Tech/scandefaults/internal/defaults"
	"github.com/MeKo-Tech/scandefaults/internal/style"
)

func newRegistry(t *testing.T) *defaults.Registry {
	t.Helper()
	reg, err := defaults.NewRegistry(Settings())
	require.NoError(t, err)
	return reg
}

func TestViewDefaults(t *testing.T) {
	reg := newRegistry(t)

	tests := []struct {
		name string
		want any
	}{
		{"barcodePickView.showLoadingDialog", true},
		{"barcodePickView.loadingDialogTextForPicking", "Picking..."},
		{"barcodePickView.showGuidelines", true},
		{"barcodePickView.showHints", true},
		{"barcodePickView.showFinishButton", true},
		{"barcodePickView.showPauseButton", true},
		{"barcodePickView.showZoomButton", true},
		{"barcodePickView.zoomButtonPosition", style.AnchorBottomRight},
		{"barcodePickView.showTorchButton", false},
		{"barcodePickView.torchButtonPosition", style.AnchorTopLeft},
		{"barcodePickView.hardwareTriggerEnabled", true},
		{"barcodePickSettings.hapticsEnabled", true},
		{"barcodePickSettings.soundEnabled", true},
		{"barcodePickSettings.cachingEnabled", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := reg.Get(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestNullableViewDefaults(t *testing.T) {
	reg := newRegistry(t)
	for _, name := range []string{
		"barcodePickView.filterHighlightSettings",
		"barcodePickView.uiButtonsOffset",
		"barcodePickView.hardwareTriggerKeyCode",
	} {
		s, ok := reg.Lookup(name)
		require.True(t, ok, name)
		assert.True(t, s.Nullable, name)
		assert.False(t, s.IsSet(), name)
	}
}

func TestDefaultHighlightStyle(t *testing.T) {
	reg := newRegistry(t)
	v, err := reg.Get("barcodePickView.highlightStyle")
	require.NoError(t, err)

	hs, ok := v.(HighlightStyle)
	require.True(t, ok)
	assert.Equal(t, DefaultHighlightStyleType, hs.Type())

	encoded := hs.Encode().(map[string]any)
	assert.Equal(t, "DotWithIcons", encoded["type"])
	assert.Contains(t, encoded, "icons")
	assert.Contains(t, encoded, "brushes")
}

func TestHighlightStyleCatalog(t *testing.T) {
	styles := HighlightStyles()
	require.Len(t, styles, 5)

	for name, hs := range styles {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, name, hs.Type().String())

			data, err := json.Marshal(hs.Encode())
			require.NoError(t, err)

			var decoded map[string]any
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, name, decoded["type"])

			brushes := decoded["brushes"].(map[string]any)
			assert.Len(t, brushes, len(PickStates()))
		})
	}

	reg := newRegistry(t)
	v, err := reg.Get("barcodePickViewHighlightStyle.CustomView")
	require.NoError(t, err)
	assert.Equal(t, HighlightCustomView, v.(HighlightStyle).Type())
}

func TestNewHighlightStyleUnknown(t *testing.T) {
	_, err := NewHighlightStyle(HighlightStyleType(42))
	assert.ErrorIs(t, err, ErrUnknownHighlightStyle)

	typ, err := ParseHighlightStyleType("Rectangular")
	require.NoError(t, err)
	assert.Equal(t, HighlightRectangular, typ)

	_, err = ParseHighlightStyleType("Circle")
	assert.ErrorIs(t, err, style.ErrUnknownEnumValue)
}

func TestStylesAreIndependent(t *testing.T) {
	a := NewDot()
	a.Brushes[PickStatePicked] = style.TransparentBrush()
	b := NewDot()
	assert.NotEqual(t, style.TransparentBrush(), b.Brushes[PickStatePicked])
}

func TestFilterHighlightEncode(t *testing.T) {
	f := NewBrushFilterHighlight(style.Brush{Fill: style.White(), Stroke: style.Black(), StrokeWidth: 1})
	assert.Equal(t, map[string]any{
		"highlightType": "brush",
		"brush": map[string]any{
			"fillColor":   "#FFFFFFFF",
			"strokeColor": "#000000FF",
			"strokeWidth": 1.0,
		},
	}, f.Encode())

	assert.Equal(t, map[string]any{"highlightType": "brush", "brush": nil},
		FilterHighlightSettings{}.Encode())
}

func TestLocalizedTexts(t *testing.T) {
	tests := []struct {
		locale string
		want   language.Tag
	}{
		{"en", language.English},
		{"de-CH", language.German},
		{"fr", language.French},
		{"es-419", language.Spanish},
		{"de-DE,de;q=0.9,en;q=0.5", language.German},
		{"ja", language.English},
		{"", language.English},
		{"not a locale", language.English},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchLanguage(tt.locale))
		})
	}

	de := Texts("de")
	assert.Equal(t, "Wird kommissioniert...", de[TextLoadingPicking])
	assert.Len(t, de, 9)

	// Texts returns a copy.
	de[TextLoadingPicking] = "changed"
	s, ok := Text(TextLoadingPicking, "de")
	require.True(t, ok)
	assert.Equal(t, "Wird kommissioniert...", s)

	_, ok = Text("nope", "de")
	assert.False(t, ok)
}

func TestEveryLanguageHasEveryText(t *testing.T) {
	for i, table := range textTables {
		assert.Len(t, table, len(textTables[0]), Languages()[i].String())
		for key := range textTables[0] {
			assert.NotEmpty(t, table[key], "%s/%s", Languages()[i], key)
		}
	}
}

func TestLocalizeOverride(t *testing.T) {
	reg := newRegistry(t)

	doc, err := reg.Document(defaults.WithOverride(Localize("fr")))
	require.NoError(t, err)
	view := doc["BarcodePick"].(map[string]any)["BarcodePickView"].(map[string]any)
	assert.Equal(t, "Rapprochez-vous des articles", view[TextMoveCloserGuideline])
	assert.Equal(t, true, view["showHints"])

	// The registry keeps the English values.
	v, err := reg.Get("barcodePickView." + TextMoveCloserGuideline)
	require.NoError(t, err)
	assert.Equal(t, "Move closer to items", v)
}

func TestDocumentBridgeEntries(t *testing.T) {
	reg := newRegistry(t)
	doc, err := reg.Document()
	require.NoError(t, err)

	pick := doc["BarcodePick"].(map[string]any)
	view := pick["BarcodePickView"].(map[string]any)
	assert.Equal(t, true, view["hardwareTriggerEnabled"])
	assert.Contains(t, view, "uiButtonsOffset")
	assert.Nil(t, view["uiButtonsOffset"])
	assert.Contains(t, view, "hardwareTriggerKeyCode")
	assert.Nil(t, view["filterHighlightSettings"])

	settings := pick["BarcodePickSettings"].(map[string]any)
	assert.Equal(t, map[string]any{
		"hapticsEnabled": true,
		"soundEnabled":   true,
		"cachingEnabled": false,
	}, settings)

	styles := pick["BarcodePickViewHighlightStyle"].(map[string]any)
	assert.Len(t, styles, 5)
}

func TestEnumText(t *testing.T) {
	var state PickState
	require.NoError(t, state.UnmarshalText([]byte("ignore")))
	assert.Equal(t, PickStateIgnore, state)

	var typ HighlightStyleType
	require.NoError(t, typ.UnmarshalText([]byte("CustomView")))
	assert.Equal(t, HighlightCustomView, typ)

	var filter FilterHighlightType
	require.NoError(t, filter.UnmarshalText([]byte("brush")))
	assert.Equal(t, FilterHighlightBrush, filter)

	for name, target := range map[string]encoding.TextUnmarshaler{
		"pick state":            &state,
		"highlight style":       &typ,
		"filter highlight type": &filter,
	} {
		err := target.UnmarshalText([]byte("sparkle"))
		assert.ErrorIs(t, err, style.ErrUnknownEnumValue, name)
		assert.Contains(t, err.Error(), name)
	}

	// Failed parses leave the previous value.
	assert.Equal(t, PickStateIgnore, state)
}

func TestPickStateJSONKeys(t *testing.T) {
	var brushes map[PickState]string
	require.NoError(t, json.Unmarshal([]byte(`{"toPick":"a","picked":"b"}`), &brushes))
	assert.Equal(t, map[PickState]string{PickStateToPick: "a", PickStatePicked: "b"}, brushes)

	assert.Error(t, json.Unmarshal([]byte(`{"later":"c"}`), &brushes))
}

func TestLanguagesIsACopy(t *testing.T) {
	langs := Languages()
	require.Equal(t, language.English, langs[0])
	langs[0] = language.Japanese

	assert.Equal(t, language.English, Languages()[0])
	assert.Equal(t, language.English, MatchLanguage("ja"))
}

func TestHighlightStyleClones(t *testing.T) {
	for _, typ := range HighlightStyleTypes() {
		t.Run(typ.String(), func(t *testing.T) {
			orig, err := NewHighlightStyle(typ)
			require.NoError(t, err)
			want := orig.Encode()

			cp := orig.CloneValue().(HighlightStyle)
			assert.Equal(t, want, cp.Encode())

			switch c := cp.(type) {
			case Rectangular:
				clear(c.Brushes)
			case RectangularWithIcons:
				clear(c.Brushes)
				clear(c.Icons)
			case Dot:
				clear(c.SelectedBrushes)
			case DotWithIcons:
				clear(c.SelectedBrushes)
				*c.SelectedIcons[PickStateToPick].IconColor = style.Transparent()
			case CustomView:
				clear(c.Brushes)
			}
			assert.Equal(t, want, orig.Encode())
		})
	}

	f := NewBrushFilterHighlight(style.Brush{StrokeWidth: 1})
	fc := f.CloneValue().(FilterHighlightSettings)
	fc.Brush.StrokeWidth = 5
	assert.Equal(t, 1.0, f.Brush.StrokeWidth)
}

func TestBarcodeFilterSettings(t *testing.T) {
	reg := newRegistry(t)

	s, ok := reg.Lookup("barcodePickSettings.barcodeFilterSettings")
	require.True(t, ok)
	assert.Equal(t, defaults.KindBarcodeFilter, s.Kind)
	assert.Equal(t, defaults.GroupPickSettings, s.Group)

	f := s.Value.(capture.BarcodeFilterSettings)
	assert.False(t, f.Excludes(barcode.Barcode{Symbology: barcode.SymbologyQR, Data: "anything"}))

	doc, err := reg.Document()
	require.NoError(t, err)
	settings := doc["BarcodePick"].(map[string]any)["BarcodePickSettings"].(map[string]any)
	data, err := json.Marshal(settings["barcodeFilterSettings"])
	require.NoError(t, err)
	assert.JSONEq(t, `{"excludeEan13":false,"excludeUpca":false,"excludedCodesRegex":"","excludedSymbolCounts":{},"excludedSymbologies":[]}`, string(data))
}
