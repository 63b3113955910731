package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	outputFormatJSON = "json"
	outputFormatYAML = "yaml"
	outputFormatText = "text"
)

// writeOutput renders v in the requested format. Text output uses text when
// given and falls back to a flattened key = value listing.
func writeOutput(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case "", outputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case outputFormatText:
		if text != nil {
			return text(w)
		}
		return writeFlat(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// writeFlat prints nested maps as sorted "a.b.c = value" lines.
func writeFlat(w io.Writer, v any) error {
	lines := make(map[string]string)
	flatten("", v, lines)
	for _, k := range slices.Sorted(maps.Keys(lines)) {
		if _, err := fmt.Fprintf(w, "%s = %s\n", k, lines[k]); err != nil {
			return err
		}
	}
	return nil
}

func flatten(prefix string, v any, out map[string]string) {
	m, ok := v.(map[string]any)
	if !ok || len(m) == 0 {
		out[prefix] = scalarText(v)
		return
	}
	for k, child := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		flatten(key, child, out)
	}
}

// scalarText renders a value on one line: strings bare, everything else as
// compact JSON.
func scalarText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimSpace(string(data))
}
