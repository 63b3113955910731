package defaults

import (
	"errors"
	"sync"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/scandefaults/internal/style"
)

var testScope = Scope{Name: "testView", Section: "Test", Document: "TestView"}

func sizeFamily() PresetFamily {
	sizes := map[string]float64{"small": 10, "large": 30}
	return PresetFamily{
		Scope:   testScope,
		Key:     "markerSize",
		Table:   "markerPresets",
		Field:   "size",
		Kind:    KindNumber,
		Presets: []string{"small", "large"},
		Resolve: func(p string) (any, error) {
			v, ok := sizes[p]
			if !ok {
				return nil, &UnsupportedPresetError{Family: "testView.markerSize", Preset: p}
			}
			return v, nil
		},
	}
}

func iconFamily() PresetFamily {
	return PresetFamily{
		Scope:    testScope,
		Key:      "markerIcon",
		Table:    "markerPresets",
		Field:    "icon",
		Kind:     KindIcon,
		Nullable: true,
		Presets:  []string{"small", "large"},
		Resolve: func(p string) (any, error) {
			if p == "large" {
				return style.NewIcon(style.IconStar), nil
			}
			return nil, nil
		},
	}
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	var noText *string
	reg, err := NewRegistry([]Setting{
		testScope.Bool(GroupControlVisibility, "shouldShowTorch", true),
		testScope.Enum(GroupControlPosition, "torchPosition", style.AnchorTopLeft),
		testScope.Color(GroupHighlightStyle, "fill", style.White()),
		testScope.Number(GroupHighlightStyle, "size", 18),
		Optional(testScope, GroupStatusAnnotation, KindText, "label", noText),
		Optional(testScope, GroupStatusAnnotation, KindIcon, "icon", &style.Icon{Type: style.IconCheckmark}),
	}, sizeFamily(), iconFamily())
	require.NoError(t, err)
	return reg
}

func TestRegistryGet(t *testing.T) {
	reg := newTestRegistry(t)

	v, err := reg.Get("testView.shouldShowTorch")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = reg.Get("testView.torchPosition")
	require.NoError(t, err)
	assert.Equal(t, style.AnchorTopLeft, v)

	_, err = reg.Get("testView.nope")
	assert.ErrorIs(t, err, ErrUnknownSetting)
}

func TestRegistryNullable(t *testing.T) {
	reg := newTestRegistry(t)

	v, err := reg.Get("testView.label")
	require.NoError(t, err, "an absent nullable default is not a lookup failure")
	assert.Nil(t, v)

	s, ok := reg.Lookup("testView.label")
	require.True(t, ok)
	assert.True(t, s.Nullable)
	assert.False(t, s.IsSet())

	icon, err := reg.Get("testView.icon")
	require.NoError(t, err)
	assert.Equal(t, style.Icon{Type: style.IconCheckmark}, icon)
}

func TestRegistryMustGet(t *testing.T) {
	reg := newTestRegistry(t)
	assert.Equal(t, 18.0, reg.MustGet("testView.size"))
	assert.Panics(t, func() { reg.MustGet("testView.missing") })
}

func TestNewRegistryRejectsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		settings []Setting
		families []PresetFamily
		wantErr  error
	}{
		{
			name: "duplicate setting",
			settings: []Setting{
				testScope.Bool(GroupFeedback, "a", true),
				testScope.Bool(GroupFeedback, "a", false),
			},
			wantErr: ErrDuplicateSetting,
		},
		{
			name:     "missing key",
			settings: []Setting{{Name: "x", Scope: testScope}},
			wantErr:  ErrInvalidSetting,
		},
		{
			name:     "nil value on non-nullable",
			settings: []Setting{testScope.Value(GroupFeedback, KindText, "t", nil)},
			wantErr:  ErrInvalidSetting,
		},
		{
			name:     "family without resolver",
			families: []PresetFamily{{Scope: testScope, Key: "f", Presets: []string{"a"}}},
			wantErr:  ErrInvalidSetting,
		},
		{
			name:     "duplicate family",
			families: []PresetFamily{sizeFamily(), sizeFamily()},
			wantErr:  ErrDuplicateSetting,
		},
		{
			name:     "family shadows setting",
			settings: []Setting{testScope.Number(GroupHighlightStyle, "markerSize", 1)},
			families: []PresetFamily{sizeFamily()},
			wantErr:  ErrDuplicateSetting,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.settings, tt.families...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegistryListings(t *testing.T) {
	reg := newTestRegistry(t)

	assert.Equal(t, 6, reg.Len())
	assert.Equal(t, []Group{
		GroupControlVisibility, GroupControlPosition, GroupHighlightStyle, GroupStatusAnnotation,
	}, reg.Groups())

	hl := reg.InGroup(GroupHighlightStyle)
	require.Len(t, hl, 2)
	assert.Equal(t, "fill", hl[0].Key)
	assert.Equal(t, "size", hl[1].Key)

	// Listings are copies; mutating them leaves the registry untouched.
	all := reg.Settings()
	all[0].Value = false
	assert.Equal(t, true, reg.MustGet("testView.shouldShowTorch"))

	assert.Len(t, reg.Families(), 2)
	assert.Empty(t, reg.InGroup(GroupPickViewButtons))
}

func TestRegistryForPreset(t *testing.T) {
	reg := newTestRegistry(t)

	v, err := reg.ForPreset("testView.markerSize", "large")
	require.NoError(t, err)
	assert.Equal(t, 30.0, v)

	v, err = reg.ForPreset("testView.markerIcon", "small")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = reg.ForPreset("testView.markerSize", "huge")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedPreset)

	var presetErr *UnsupportedPresetError
	require.True(t, errors.As(err, &presetErr))
	assert.Equal(t, "huge", presetErr.Preset)
	assert.Equal(t, []string{"small", "large"}, presetErr.Supported)
	assert.Contains(t, presetErr.Error(), "small, large")

	_, err = reg.ForPreset("testView.unknown", "small")
	assert.ErrorIs(t, err, ErrUnknownPresetFamily)
}

func TestRegistryDocument(t *testing.T) {
	reg := newTestRegistry(t)

	doc, err := reg.Document()
	require.NoError(t, err)

	view := doc["Test"].(map[string]any)["TestView"].(map[string]any)
	assert.Equal(t, true, view["shouldShowTorch"])
	assert.Equal(t, "topLeft", view["torchPosition"])
	assert.Equal(t, "#FFFFFFFF", view["fill"])
	assert.Nil(t, view["label"])
	assert.Contains(t, view, "label")

	presets := view["markerPresets"].(map[string]any)
	assert.Equal(t, map[string]any{"size": 10.0, "icon": nil}, presets["small"])
	assert.Equal(t, map[string]any{"size": 30.0, "icon": map[string]any{"icon": "star"}}, presets["large"])
}

func TestRegistryDocumentOptions(t *testing.T) {
	reg := newTestRegistry(t)

	doc, err := reg.Document(
		WithoutPresets(),
		WithOverride(func(s Setting) (any, bool) {
			if s.Key == "label" {
				return "Overridden", true
			}
			return nil, false
		}),
	)
	require.NoError(t, err)
	view := doc["Test"].(map[string]any)["TestView"].(map[string]any)
	assert.Equal(t, "Overridden", view["label"])
	assert.NotContains(t, view, "markerPresets")

	// The override does not leak into the registry.
	v, err := reg.Get("testView.label")
	require.NoError(t, err)
	assert.Nil(t, v)

	empty, err := reg.Document(WithSections("Other"))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestEncodeValue(t *testing.T) {
	assert.Nil(t, EncodeValue(nil))
	assert.Equal(t, "bottomRight", EncodeValue(style.AnchorBottomRight))
	assert.Equal(t, "bool", EncodeValue(KindBool))
	assert.Equal(t, 3.5, EncodeValue(3.5))
	assert.Equal(t, "#000000FF", EncodeValue(style.Black()))
}

func TestRegistryConcurrentReads(t *testing.T) {
	reg := newTestRegistry(t)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				v, err := reg.Get("testView.shouldShowTorch")
				assert.NoError(t, err)
				assert.Equal(t, true, v)
				_, err = reg.ForPreset("testView.markerSize", "small")
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
}

// TestRegistryGet_Idempotent verifies repeated reads agree for every setting.
func TestRegistryGet_Idempotent(t *testing.T) {
	reg := newTestRegistry(t)
	names := make([]any, 0, reg.Len())
	for _, s := range reg.Settings() {
		names = append(names, s.Name)
	}

	properties := gopter.NewProperties(nil)
	properties.Property("Get returns the same value on every call", prop.ForAll(
		func(name string, repeats int) bool {
			first, err := reg.Get(name)
			if err != nil {
				return false
			}
			for range repeats {
				again, err := reg.Get(name)
				if err != nil || again != first {
					return false
				}
			}
			return true
		},
		gen.OneConstOf(names...),
		gen.IntRange(1, 20),
	))
	properties.TestingRun(t)
}

func TestKindText(t *testing.T) {
	for _, name := range []string{"bool", "highlightStyle", "feedback"} {
		var k Kind
		require.NoError(t, k.UnmarshalText([]byte(name)))
		assert.Equal(t, name, k.String())
	}

	var k Kind
	err := k.UnmarshalText([]byte("matrix"))
	assert.ErrorIs(t, err, style.ErrUnknownEnumValue)
	assert.Contains(t, err.Error(), "setting kind")
}

type mutableValue struct{ tags map[string]bool }

func (m mutableValue) CloneValue() any {
	tags := make(map[string]bool, len(m.tags))
	for k, v := range m.tags {
		tags[k] = v
	}
	return mutableValue{tags: tags}
}

func TestRegistryHandsOutClones(t *testing.T) {
	input := mutableValue{tags: map[string]bool{"a": true}}
	reg, err := NewRegistry([]Setting{testScope.Value(GroupFeedback, KindFeedback, "tags", input)})
	require.NoError(t, err)

	// The caller's value is copied on registration.
	input.tags["b"] = true

	v, err := reg.Get("testView.tags")
	require.NoError(t, err)
	v.(mutableValue).tags["c"] = true

	s, ok := reg.Lookup("testView.tags")
	require.True(t, ok)
	s.Value.(mutableValue).tags["d"] = true
	reg.Settings()[0].Value.(mutableValue).tags["e"] = true
	reg.InGroup(GroupFeedback)[0].Value.(mutableValue).tags["f"] = true

	assert.Equal(t, map[string]bool{"a": true}, reg.MustGet("testView.tags").(mutableValue).tags)
}
