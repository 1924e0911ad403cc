package gridlegend

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/gridlegend/gridlegend/internal/legend"
	"github.com/spf13/cobra"
)

var flagDocsFile string

var (
	legendStart = []byte("<!-- BEGIN:LEGEND -->")
	legendEnd   = []byte("<!-- END:LEGEND -->")
)

// gendocs regenerates the legend table in README.md between the markers
// <!-- BEGIN:LEGEND --> and <!-- END:LEGEND -->.
func init() {
	cmd := &cobra.Command{
		Use:   "gendocs",
		Short: "Regenerate the README legend table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := flagDocsFile
			b, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			i := bytes.Index(b, legendStart)
			j := bytes.Index(b, legendEnd)
			if i < 0 || j < 0 || j <= i {
				return fmt.Errorf("markers not found in %s", path)
			}

			var nb bytes.Buffer
			nb.Write(b[:i])
			nb.Write(legendStart)
			nb.WriteString("\n")
			nb.WriteString(legendMarkdown(app.reg))
			nb.Write(legendEnd)
			nb.Write(b[j+len(legendEnd):])
			if err := os.WriteFile(path, nb.Bytes(), 0644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Updated", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&flagDocsFile, "file", "README.md", "markdown file containing the legend markers")
	rootCmd.AddCommand(cmd)
}

// legendMarkdown renders one table row per category plus a region table,
// with a column per locale.
func legendMarkdown(reg *legend.Registry) string {
	locs := reg.Locales()
	var out strings.Builder
	out.WriteString("\n| Class | Category | Color |")
	for _, l := range locs {
		out.WriteString(" " + string(l) + " |")
	}
	out.WriteString("\n|---|---|---|" + strings.Repeat("---|", len(locs)) + "\n")
	for _, c := range reg.AllCategories() {
		cl, _ := reg.ClassOf(c)
		fmt.Fprintf(&out, "| %s | `%s` | `%s` |", cl, c, reg.ColorOrFallback(c))
		for _, l := range locs {
			label, _ := reg.CategoryLabel(l, c)
			out.WriteString(" " + label + " |")
		}
		out.WriteString("\n")
	}

	out.WriteString("\n| # | Region |")
	for _, l := range locs {
		out.WriteString(" " + string(l) + " |")
	}
	out.WriteString("\n|---|---|" + strings.Repeat("---|", len(locs)) + "\n")
	for i, r := range reg.Regions() {
		fmt.Fprintf(&out, "| %d | `%s` |", i+1, r)
		for _, l := range locs {
			label, _ := reg.RegionLabel(l, r)
			out.WriteString(" " + label + " |")
		}
		out.WriteString("\n")
	}
	out.WriteString("\n")
	return out.String()
}
