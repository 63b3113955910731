package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MeKo-Tech/scandefaults/internal/catalog"
	"github.com/MeKo-Tech/scandefaults/internal/defaults"
)

// settingEntry is one row of the list output.
type settingEntry struct {
	Name     string `json:"name" yaml:"name"`
	Group    string `json:"group" yaml:"group"`
	Kind     string `json:"kind" yaml:"kind"`
	Nullable bool   `json:"nullable" yaml:"nullable"`
	Value    any    `json:"value" yaml:"value"`
}

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered settings",
	Long: `List every registered setting with its group, kind and default value.

Examples:
  scandefaults list --format text
  scandefaults list --group controlVisibility
  scandefaults list --groups`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		reg := catalog.Default()
		out := cmd.OutOrStdout()

		if groupsOnly, _ := cmd.Flags().GetBool("groups"); groupsOnly {
			groups := reg.Groups()
			return writeOutput(out, cfg.Output.Format, groups, func(w io.Writer) error {
				for _, g := range groups {
					if _, err := fmt.Fprintln(w, g); err != nil {
						return err
					}
				}
				return nil
			})
		}

		settings := reg.Settings()
		if g, _ := cmd.Flags().GetString("group"); g != "" {
			settings = reg.InGroup(defaults.Group(g))
			if len(settings) == 0 {
				return fmt.Errorf("no settings in group %q", g)
			}
		}

		entries := make([]settingEntry, 0, len(settings))
		for _, s := range settings {
			entries = append(entries, settingEntry{
				Name:     s.Name,
				Group:    string(s.Group),
				Kind:     s.Kind.String(),
				Nullable: s.Nullable,
				Value:    s.Encoded(),
			})
		}

		return writeOutput(out, cfg.Output.Format, entries, func(w io.Writer) error {
			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "NAME\tKIND\tVALUE")
			for _, e := range entries {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Kind, scalarText(e.Value))
			}
			return tw.Flush()
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringP("group", "g", "", "only list settings of this group")
	listCmd.Flags().Bool("groups", false, "list the group names instead of settings")
}
