package gridlegend

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/gridlegend/gridlegend/internal/report"
	"github.com/gridlegend/gridlegend/internal/types"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagCopy bool

	copyToClipboard = clipboard.WriteAll
)

func init() {
	colorCmd := &cobra.Command{
		Use:   "color <category>",
		Short: "Print the chart color of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := app.reg.ColorFor(types.Category(args[0]))
			if err != nil {
				return &exitError{code: 1, err: err}
			}
			fmt.Fprintln(cmd.OutOrStdout(), col)
			if flagCopy {
				if err := copyToClipboard(string(col)); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				log.WithField("color", col).Info("copied to clipboard")
			}
			return nil
		},
	}
	colorCmd.Flags().BoolVar(&flagCopy, "copy", false, "also copy the color to the clipboard")
	rootCmd.AddCommand(colorCmd)

	labelCmd := &cobra.Command{
		Use:   "label <key>",
		Short: "Print the label of a category, region or axis key in the selected locale",
		Example: `  gridlegend label demand
  gridlegend label --locale jp tohuku`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.reg.LabelFor(app.locale, args[0])
			if err != nil {
				return &exitError{code: 1, err: err}
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	rootCmd.AddCommand(labelCmd)

	regionsCmd := &cobra.Command{
		Use:   "regions",
		Short: "List regions in display order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flagJSON {
				return writeJSON(cmd, app.reg.Regions())
			}
			return report.PrintRegions(cmd.OutOrStdout(), app.reg, printOptions())
		},
	}
	regionsCmd.Flags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.AddCommand(regionsCmd)
}
