package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MeKo-Tech/scandefaults/internal/catalog"
	"github.com/MeKo-Tech/scandefaults/internal/defaults"
)

type familyEntry struct {
	Name     string   `json:"name" yaml:"name"`
	Kind     string   `json:"kind" yaml:"kind"`
	Nullable bool     `json:"nullable" yaml:"nullable"`
	Presets  []string `json:"presets" yaml:"presets"`
}

// presetCmd represents the preset command.
var presetCmd = &cobra.Command{
	Use:   "preset [family] [preset]",
	Short: "Resolve a preset-parameterized default",
	Long: `Resolve a default that depends on a preset, such as the circle highlight
size for the dot or icon preset. Without arguments the preset families are
listed.

Examples:
  scandefaults preset
  scandefaults preset barcodeArView.circleHighlightSize icon
  scandefaults preset barcodeArView.circleHighlightBrush dot --format yaml`,
	Args:         cobra.RangeArgs(0, 2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		out := cmd.OutOrStdout()

		switch len(args) {
		case 0:
			families := catalog.Default().Families()
			entries := make([]familyEntry, 0, len(families))
			for _, f := range families {
				entries = append(entries, familyEntry{
					Name:     f.Name(),
					Kind:     f.Kind.String(),
					Nullable: f.Nullable,
					Presets:  f.Presets,
				})
			}
			return writeOutput(out, cfg.Output.Format, entries, func(w io.Writer) error {
				for _, e := range entries {
					if _, err := fmt.Fprintf(w, "%s [%s]\n", e.Name, strings.Join(e.Presets, ", ")); err != nil {
						return err
					}
				}
				return nil
			})
		case 1:
			return fmt.Errorf("missing preset for family %s", args[0])
		}

		v, err := catalog.ForPreset(args[0], args[1])
		if err != nil {
			return err
		}
		encoded := defaults.EncodeValue(v)
		return writeOutput(out, cfg.Output.Format, encoded, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, scalarText(encoded))
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(presetCmd)
}
