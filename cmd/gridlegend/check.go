package gridlegend

import (
	"fmt"

	"github.com/gridlegend/gridlegend/internal/report"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the legend tables are consistent (exit 1 on issues)",
		Long: `Check reports duplicated categories, categories without a color,
colors that no classification lists, unparsable color values, label keys
present in one locale but not another, and categories or regions without
a label. Config overrides are checked too.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			issues := app.reg.Check()
			if flagJSON {
				if err := writeJSON(cmd, issues); err != nil {
					return err
				}
			} else {
				report.PrintIssues(cmd.OutOrStdout(), issues, printOptions())
			}
			if len(issues) > 0 {
				return &exitError{code: 1, err: fmt.Errorf("%d legend issue(s)", len(issues))}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.AddCommand(cmd)
}
