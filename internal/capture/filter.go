package capture

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"unicode/utf8"

	"github.com/MeKo-Tech/scandefaults/internal/barcode"
)

// ErrInvalidFilter is returned for filter settings that cannot be applied.
var ErrInvalidFilter = errors.New("capture: invalid barcode filter")

// BarcodeFilterSettings decides which scanned barcodes a mode ignores.
// The zero value excludes nothing.
type BarcodeFilterSettings struct {
	ExcludeEAN13 bool
	ExcludeUPCA  bool
	// ExcludedCodesRegex drops barcodes whose data fully matches it.
	ExcludedCodesRegex   string
	ExcludedSymbolCounts map[barcode.Symbology][]int
	ExcludedSymbologies  []barcode.Symbology
}

// Validate checks that the exclusion pattern compiles.
func (f BarcodeFilterSettings) Validate() error {
	if _, err := f.pattern(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}
	return nil
}

func (f BarcodeFilterSettings) pattern() (*regexp.Regexp, error) {
	if f.ExcludedCodesRegex == "" {
		return nil, nil
	}
	return regexp.Compile(`^(?:` + f.ExcludedCodesRegex + `)$`)
}

// Excludes reports whether b is filtered out. Settings that fail Validate
// exclude nothing by pattern.
func (f BarcodeFilterSettings) Excludes(b barcode.Barcode) bool {
	if slices.Contains(f.ExcludedSymbologies, b.Symbology) {
		return true
	}
	if b.Symbology == barcode.SymbologyEAN13UPCA {
		// UPC-A is reported as twelve digits, EAN-13 as thirteen.
		switch len(b.Data) {
		case 12:
			if f.ExcludeUPCA {
				return true
			}
		case 13:
			if f.ExcludeEAN13 {
				return true
			}
		}
	}
	if counts, ok := f.ExcludedSymbolCounts[b.Symbology]; ok {
		if slices.Contains(counts, utf8.RuneCountInString(b.Data)) {
			return true
		}
	}
	if re, err := f.pattern(); err == nil && re != nil && re.MatchString(b.Data) {
		return true
	}
	return false
}

func (f BarcodeFilterSettings) CloneValue() any {
	if f.ExcludedSymbolCounts != nil {
		counts := make(map[barcode.Symbology][]int, len(f.ExcludedSymbolCounts))
		for s, c := range f.ExcludedSymbolCounts {
			counts[s] = slices.Clone(c)
		}
		f.ExcludedSymbolCounts = counts
	}
	f.ExcludedSymbologies = slices.Clone(f.ExcludedSymbologies)
	return f
}

func (f BarcodeFilterSettings) Encode() any {
	counts := make(map[string]any, len(f.ExcludedSymbolCounts))
	for _, s := range slices.Sorted(maps.Keys(f.ExcludedSymbolCounts)) {
		counts[s.String()] = slices.Sorted(slices.Values(f.ExcludedSymbolCounts[s]))
	}
	symbologies := make([]string, 0, len(f.ExcludedSymbologies))
	for _, s := range f.ExcludedSymbologies {
		symbologies = append(symbologies, s.String())
	}
	return map[string]any{
		"excludeEan13":         f.ExcludeEAN13,
		"excludeUpca":          f.ExcludeUPCA,
		"excludedCodesRegex":   f.ExcludedCodesRegex,
		"excludedSymbolCounts": counts,
		"excludedSymbologies":  symbologies,
	}
}
