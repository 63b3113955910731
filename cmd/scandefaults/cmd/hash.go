package cmd

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MeKo-Tech/scandefaults/internal/barcode"
)

type hashResult struct {
	Hash      string `json:"hash" yaml:"hash"`
	Symbology string `json:"symbology" yaml:"symbology"`
}

// hashCmd represents the hash command.
var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Compute the identity hash of a barcode",
	Long: `Compute the unique hash identifying a barcode across frames and sessions.

The hash covers the symbology, the payload (raw bytes when given, the data
string otherwise), the add-on and the composite data. The location of the
code does not take part.

Examples:
  scandefaults hash --symbology code128 --data ABC-123
  scandefaults hash --symbology ean13Upca --data 4006381333931 --add-on 12
  scandefaults hash --symbology dataMatrix --raw-hex 1d3031 --format text`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		symName, _ := cmd.Flags().GetString("symbology")
		sym, err := barcode.ParseSymbology(symName)
		if err != nil {
			return err
		}

		b := barcode.Barcode{Symbology: sym}
		b.Data, _ = cmd.Flags().GetString("data")
		b.AddOnData, _ = cmd.Flags().GetString("add-on")
		b.CompositeData, _ = cmd.Flags().GetString("composite")
		if rawHex, _ := cmd.Flags().GetString("raw-hex"); rawHex != "" {
			b.RawData, err = hex.DecodeString(rawHex)
			if err != nil {
				return fmt.Errorf("invalid --raw-hex: %w", err)
			}
		}

		res := hashResult{Hash: b.UniqueHash(), Symbology: sym.String()}
		return writeOutput(cmd.OutOrStdout(), cfg.Output.Format, res, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, res.Hash)
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(hashCmd)
	hashCmd.Flags().StringP("symbology", "s", "", "symbology name (e.g. code128, qr, ean13Upca)")
	hashCmd.Flags().StringP("data", "d", "", "payload as text")
	hashCmd.Flags().String("raw-hex", "", "payload as hex-encoded bytes; takes precedence over --data")
	hashCmd.Flags().String("add-on", "", "EAN/UPC add-on data")
	hashCmd.Flags().String("composite", "", "GS1 composite data")
	_ = hashCmd.MarkFlagRequired("symbology")
}
