package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gridlegend/gridlegend/internal/legend"
	"github.com/gridlegend/gridlegend/internal/types"
	"github.com/gridlegend/gridlegend/internal/validate"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// Format is an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

// ParseFormat accepts json, yaml/yml and xlsx, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported format %q (json|yaml|xlsx)", s)
	}
}

// Export writes the registry snapshot in the given format.
func Export(w io.Writer, r *legend.Registry, f Format) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, r.Snapshot())
	case FormatYAML:
		return WriteYAML(w, r.Snapshot())
	case FormatXLSX:
		return WriteXLSX(w, r)
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
}

// WriteJSON pretty-prints a snapshot as JSON.
func WriteJSON(w io.Writer, s legend.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteYAML writes a snapshot as YAML with two-space indentation.
func WriteYAML(w io.Writer, s legend.Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

const (
	sheetCategories = "Categories"
	sheetRegions    = "Regions"
)

// WriteXLSX writes a two-sheet workbook: categories with their labels and a
// filled color cell, and regions in display order.
func WriteXLSX(w io.Writer, r *legend.Registry) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetCategories); err != nil {
		return err
	}
	locales := r.Locales()
	header := []any{"class", "category", "color"}
	for _, loc := range locales {
		header = append(header, "label_"+string(loc))
	}
	header = append(header, "swatch")
	if err := f.SetSheetRow(sheetCategories, "A1", &header); err != nil {
		return err
	}
	swatchCol := len(header)

	for i, c := range r.AllCategories() {
		row := i + 2
		cl, _ := r.ClassOf(c)
		col := r.ColorOrFallback(c)
		vals := []any{string(cl), string(c), string(col)}
		for _, loc := range locales {
			label, _ := r.CategoryLabel(loc, c)
			vals = append(vals, label)
		}
		start, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheetCategories, start, &vals); err != nil {
			return err
		}
		if err := fillCell(f, sheetCategories, swatchCol, row, col); err != nil {
			return fmt.Errorf("%s: %w", c, err)
		}
	}

	if _, err := f.NewSheet(sheetRegions); err != nil {
		return err
	}
	rheader := []any{"order", "region"}
	for _, loc := range locales {
		rheader = append(rheader, "label_"+string(loc))
	}
	if err := f.SetSheetRow(sheetRegions, "A1", &rheader); err != nil {
		return err
	}
	for i, reg := range r.Regions() {
		vals := []any{i + 1, string(reg)}
		for _, loc := range locales {
			label, _ := r.RegionLabel(loc, reg)
			vals = append(vals, label)
		}
		start, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetRegions, start, &vals); err != nil {
			return err
		}
	}
	_, err := f.WriteTo(w)
	return err
}

func fillCell(f *excelize.File, sheet string, col, row int, c types.Color) error {
	hex, err := validate.ToHex(string(c))
	if err != nil {
		return err
	}
	style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{strings.TrimPrefix(hex, "#")}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cell, cell, style)
}
