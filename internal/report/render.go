package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/gridlegend/gridlegend/internal/legend"
	"github.com/gridlegend/gridlegend/internal/types"
	"github.com/gridlegend/gridlegend/internal/validate"
	"github.com/olekukonko/tablewriter"
)

type PrintOptions struct {
	NoColor bool
	Locale  types.Locale
}

func (o PrintOptions) locale() types.Locale {
	if o.Locale == "" {
		return types.LocaleEN
	}
	return o.Locale
}

// Swatch renders a two-cell color block for col. With noColor, or for a
// value that does not parse, it returns a blank of the same width.
func Swatch(col types.Color, noColor bool) string {
	if noColor {
		return "  "
	}
	hex, err := validate.ToHex(string(col))
	if err != nil {
		return "  "
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

// PrintCategories writes one row per category: class, id, label in the
// selected locale, color value, normalized hex and a swatch. Unstyled
// categories are shown with the fallback color.
func PrintCategories(w io.Writer, r *legend.Registry, cats []types.Category, opts PrintOptions) error {
	if len(cats) == 0 {
		fmt.Fprintln(w, "No categories matched")
		return nil
	}
	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		class := "-"
		if cl, err := r.ClassOf(c); err == nil {
			class = string(cl)
		}
		label, err := r.CategoryLabel(opts.locale(), c)
		if err != nil {
			label = "?"
		}
		col := r.ColorOrFallback(c)
		hex, err := validate.ToHex(string(col))
		if err != nil {
			hex = "invalid"
		}
		rows = append(rows, []string{class, string(c), label, string(col), hex, Swatch(col, opts.NoColor)})
	}
	table := tablewriter.NewWriter(w)
	table.Header("Class", "Category", "Label", "Color", "Hex", "Swatch")
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

// PrintRegions writes the regions in display order with their labels.
func PrintRegions(w io.Writer, r *legend.Registry, opts PrintOptions) error {
	var rows [][]string
	for i, reg := range r.Regions() {
		label, err := r.RegionLabel(opts.locale(), reg)
		if err != nil {
			label = "?"
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), string(reg), label})
	}
	table := tablewriter.NewWriter(w)
	table.Header("#", "Region", "Label")
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

// PrintIssues lists consistency issues, one per line, followed by a count.
func PrintIssues(w io.Writer, issues []legend.Issue, opts PrintOptions) {
	if len(issues) == 0 {
		fmt.Fprintln(w, "Legend tables are consistent ✅")
		return
	}
	maxKind := 8
	for _, is := range issues {
		if l := len(is.Kind); l > maxKind {
			maxKind = l
		}
	}
	for _, is := range issues {
		kind := fmt.Sprintf("%-*s", maxKind, is.Kind)
		if !opts.NoColor {
			kind = colorKind(is.Kind, kind)
		}
		loc := ""
		if is.Locale != "" {
			loc = " [" + string(is.Locale) + "]"
		}
		fmt.Fprintf(w, "%s %s%s  %s\n", kind, is.Key, loc, is.Detail)
	}
	fmt.Fprintf(w, "\nIssues: %d\n", len(issues))
}

func colorKind(k legend.IssueKind, text string) string {
	switch k {
	case legend.IssueMissingColor, legend.IssueInvalidColor, legend.IssueLocaleKeyDrift:
		return "\x1b[31m" + text + "\x1b[0m" // red
	case legend.IssueDuplicateCategory, legend.IssueMissingLabel:
		return "\x1b[33m" + text + "\x1b[0m" // yellow
	default:
		return "\x1b[36m" + text + "\x1b[0m" // cyan
	}
}
