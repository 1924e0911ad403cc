package gridlegend

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gridlegend/gridlegend/internal/report"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagFormat string
	flagOutput string
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the legend as JSON, YAML or an XLSX workbook",
		Example: `  gridlegend export --format yaml
  gridlegend export --format xlsx --output legend.xlsx`,
		RunE: runExport,
	}
	cmd.Flags().StringVarP(&flagFormat, "format", "f", "json", "json | yaml | xlsx")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write to this file instead of stdout")
	rootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	f, err := report.ParseFormat(flagFormat)
	if err != nil {
		return err
	}

	if flagOutput != "" {
		var buf bytes.Buffer
		if err := report.Export(&buf, app.reg, f); err != nil {
			return err
		}
		if err := os.WriteFile(flagOutput, buf.Bytes(), 0644); err != nil {
			return err
		}
		log.WithFields(log.Fields{"format": f, "path": flagOutput}).Info("legend exported")
		fmt.Fprintln(cmd.ErrOrStderr(), "Wrote", flagOutput)
		return nil
	}

	tty := isTerminal(cmd)
	if f == report.FormatXLSX && tty {
		return errors.New("refusing to write an XLSX workbook to a terminal; use --output")
	}
	if !tty || app.noColor || f == report.FormatXLSX {
		return report.Export(cmd.OutOrStdout(), app.reg, f)
	}
	var buf bytes.Buffer
	if err := report.Export(&buf, app.reg, f); err != nil {
		return err
	}
	_, err = io.WriteString(cmd.OutOrStdout(), report.Highlight(buf.String(), f))
	return err
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
