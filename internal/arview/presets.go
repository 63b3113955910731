package arview

import (
	"slices"
	"strconv"

	"github.com/MeKo-Tech/scandefaults/internal/defaults"
	"github.com/MeKo-Tech/scandefaults/internal/style"
)

const circlePresetTable = "circleHighlightPresets"

func unsupportedCirclePreset(key string, p CircleHighlightPreset) error {
	name := p.String()
	if name == "" {
		name = strconv.Itoa(int(p))
	}
	return unsupportedCirclePresetName(key, name)
}

func unsupportedCirclePresetName(key, name string) error {
	return &defaults.UnsupportedPresetError{
		Family:    viewScope().Name + "." + key,
		Preset:    name,
		Supported: slices.Clone(circlePresetNames.Names),
	}
}

// CircleHighlightSize returns the diameter, in points, of a circle highlight.
func CircleHighlightSize(p CircleHighlightPreset) (float64, error) {
	switch p {
	case CircleHighlightPresetDot:
		return 18, nil
	case CircleHighlightPresetIcon:
		return 26, nil
	}
	return 0, unsupportedCirclePreset("circleHighlightSize", p)
}

// CircleHighlightBrush returns the fill and stroke of a circle highlight.
func CircleHighlightBrush(p CircleHighlightPreset) (style.Brush, error) {
	switch p {
	case CircleHighlightPresetDot:
		return style.Brush{Fill: style.White(), Stroke: style.White(), StrokeWidth: 0}, nil
	case CircleHighlightPresetIcon:
		return style.Brush{Fill: style.White(), Stroke: scanditBlue(), StrokeWidth: 2}, nil
	}
	return style.Brush{}, unsupportedCirclePreset("circleHighlightBrush", p)
}

// CircleHighlightIcon returns the icon drawn inside a circle highlight.
// The dot preset has none.
func CircleHighlightIcon(p CircleHighlightPreset) (*style.Icon, error) {
	switch p {
	case CircleHighlightPresetDot:
		return nil, nil
	case CircleHighlightPresetIcon:
		icon := style.NewIcon(style.IconCheckmark).WithColors(scanditBlue(), style.Transparent(), style.IconShapeNone)
		return &icon, nil
	}
	return nil, unsupportedCirclePreset("circleHighlightIcon", p)
}

// Families returns the preset-parameterized defaults of the view.
func Families() []defaults.PresetFamily {
	return []defaults.PresetFamily{
		circleFamily("circleHighlightSize", "size", defaults.KindNumber, false,
			func(p CircleHighlightPreset) (any, error) { return CircleHighlightSize(p) }),
		circleFamily("circleHighlightBrush", "brush", defaults.KindBrush, false,
			func(p CircleHighlightPreset) (any, error) { return CircleHighlightBrush(p) }),
		circleFamily("circleHighlightIcon", "icon", defaults.KindIcon, true,
			func(p CircleHighlightPreset) (any, error) {
				icon, err := CircleHighlightIcon(p)
				if err != nil || icon == nil {
					return nil, err
				}
				return *icon, nil
			}),
	}
}

func circleFamily(key, field string, kind defaults.Kind, nullable bool,
	resolve func(CircleHighlightPreset) (any, error),
) defaults.PresetFamily {
	return defaults.PresetFamily{
		Scope:    viewScope(),
		Key:      key,
		Table:    circlePresetTable,
		Field:    field,
		Kind:     kind,
		Nullable: nullable,
		Presets:  slices.Clone(circlePresetNames.Names),
		Resolve: func(name string) (any, error) {
			p, err := ParseCircleHighlightPreset(name)
			if err != nil {
				return nil, unsupportedCirclePresetName(key, name)
			}
			return resolve(p)
		},
	}
}
