package gridlegend

import (
	"github.com/gridlegend/gridlegend/internal/tui"
	"github.com/gridlegend/gridlegend/internal/types"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the legend interactively",
		Long: `Opens a terminal browser over the categories and regions.

Keys: tab switches tables, l toggles the locale (remembered in
~/.gridlegend/tui_prefs.json), / searches ids and labels, c copies the
selected color, q quits.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			var loc types.Locale
			if app.localeExplicit {
				loc = app.locale
			}
			return tui.Run(app.reg, loc)
		},
	}
	rootCmd.AddCommand(cmd)
}
