package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MeKo-Tech/scandefaults/internal/catalog"
	"github.com/MeKo-Tech/scandefaults/internal/defaults"
	"github.com/MeKo-Tech/scandefaults/internal/pickview"
)

// getCmd represents the get command.
var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Print the default value of one setting",
	Long: `Print the default value of a setting by its qualified name.

Nullable settings without a default print null. Pick view texts follow
--locale.

Examples:
  scandefaults get barcodeArView.shouldShowZoomControl
  scandefaults get barcodeArView.rectangleHighlightBrush --format yaml
  scandefaults get barcodePickView.initialGuidelineText --locale de --format text`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		s, ok := catalog.Default().Lookup(args[0])
		if !ok {
			return fmt.Errorf("%w: %s", defaults.ErrUnknownSetting, args[0])
		}

		v := s.Value
		if cfg.Output.Locale != "" {
			if lv, ok := pickview.Localize(cfg.Output.Locale)(s); ok {
				v = lv
			}
		}
		encoded := defaults.EncodeValue(v)

		return writeOutput(cmd.OutOrStdout(), cfg.Output.Format, encoded, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, scalarText(encoded))
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
