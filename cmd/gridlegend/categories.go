package gridlegend

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gridlegend/gridlegend/internal/legend"
	"github.com/gridlegend/gridlegend/internal/report"
	"github.com/gridlegend/gridlegend/internal/types"
	"github.com/spf13/cobra"
)

var (
	flagClass string
	flagMatch string
	flagJSON  bool
)

type categoryRow struct {
	Category types.Category `json:"category"`
	Class    types.Class    `json:"class"`
	Color    types.Color    `json:"color"`
	Label    string         `json:"label"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List energy-source categories with colors and labels",
		Example: `  gridlegend categories --class renewable
  gridlegend categories --match 'thermal_*' --locale jp
  gridlegend categories --json`,
		RunE: runCategories,
	}
	cmd.Flags().StringVar(&flagClass, "class", "all", "renewable | non_renewable | misc | all")
	cmd.Flags().StringVar(&flagMatch, "match", "", "only categories whose id matches this glob")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.AddCommand(cmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	cats, err := selectCategories(app.reg, flagClass, flagMatch)
	if err != nil {
		return err
	}
	if flagJSON {
		rows := make([]categoryRow, 0, len(cats))
		for _, c := range cats {
			cl, _ := app.reg.ClassOf(c)
			label, _ := app.reg.CategoryLabel(app.locale, c)
			rows = append(rows, categoryRow{Category: c, Class: cl, Color: app.reg.ColorOrFallback(c), Label: label})
		}
		return writeJSON(cmd, rows)
	}
	return report.PrintCategories(cmd.OutOrStdout(), app.reg, cats, printOptions())
}

// selectCategories filters the registry's categories by class and glob.
func selectCategories(reg *legend.Registry, class, match string) ([]types.Category, error) {
	var cats []types.Category
	switch types.Class(class) {
	case types.ClassRenewable:
		cats = reg.RenewableCategories()
	case types.ClassNonRenewable:
		cats = reg.NonRenewableCategories()
	case types.ClassMisc:
		cats = reg.MiscCategories()
	case "", "all":
		cats = reg.AllCategories()
	default:
		return nil, fmt.Errorf("unknown class %q (want renewable, non_renewable, misc or all)", class)
	}
	if match == "" {
		return cats, nil
	}
	if !doublestar.ValidatePattern(match) {
		return nil, fmt.Errorf("invalid --match pattern %q", match)
	}
	out := cats[:0]
	for _, c := range cats {
		if ok, _ := doublestar.Match(match, string(c)); ok {
			out = append(out, c)
		}
	}
	return out, nil
}
