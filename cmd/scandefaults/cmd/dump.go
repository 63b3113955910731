package cmd

import (
	"github.com/spf13/cobra"

	"github.com/MeKo-Tech/scandefaults/internal/catalog"
	"github.com/MeKo-Tech/scandefaults/internal/defaults"
)

// dumpCmd represents the dump command.
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the complete defaults document",
	Long: `Print the defaults document as nested Section / Document / key maps,
including the preset tables.

Examples:
  scandefaults dump
  scandefaults dump --format yaml --locale fr
  scandefaults dump --section BarcodePick --format text
  scandefaults dump --no-presets`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		var opts []defaults.DocumentOption
		if sections, _ := cmd.Flags().GetStringSlice("section"); len(sections) > 0 {
			opts = append(opts, defaults.WithSections(sections...))
		}
		if noPresets, _ := cmd.Flags().GetBool("no-presets"); noPresets {
			opts = append(opts, defaults.WithoutPresets())
		}

		doc, err := catalog.Document(cfg.Output.Locale, opts...)
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), cfg.Output.Format, doc, nil)
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().StringSlice("section", nil, "only include these top-level sections (BarcodeAr, BarcodePick)")
	dumpCmd.Flags().Bool("no-presets", false, "leave preset tables out")
}
