package gridlegend

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/gridlegend/gridlegend/internal/report"
	"github.com/gridlegend/gridlegend/internal/types"
	"github.com/spf13/cobra"
)

var sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

func init() {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the whole legend: categories by class, then regions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			title := func(s string) string {
				if app.noColor {
					return s
				}
				return sectionStyle.Render(s)
			}
			sections := []struct {
				class types.Class
				cats  []types.Category
			}{
				{types.ClassRenewable, app.reg.RenewableCategories()},
				{types.ClassNonRenewable, app.reg.NonRenewableCategories()},
				{types.ClassMisc, app.reg.MiscCategories()},
			}
			for _, s := range sections {
				fmt.Fprintln(w, title(fmt.Sprintf("%s (%d)", s.class, len(s.cats))))
				if err := report.PrintCategories(w, app.reg, s.cats, printOptions()); err != nil {
					return err
				}
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, title("regions"))
			if err := report.PrintRegions(w, app.reg, printOptions()); err != nil {
				return err
			}
			fmt.Fprintf(w, "\nlocale: %s  fallback: %s  fingerprint: %s\n", app.locale, app.reg.FallbackLocale(), app.reg.Fingerprint())
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
