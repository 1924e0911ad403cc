package gridlegend

import (
	"fmt"
	"os"

	"github.com/gridlegend/gridlegend/internal/config"
	"github.com/gridlegend/gridlegend/internal/legend"
	"github.com/gridlegend/gridlegend/internal/types"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	cfgOutput         string
	cfgFallbackLocale string
	cfgStrict         bool
	cfgNoColor        bool
	cfgListen         string
	cfgWithColors     bool
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .gridlegend.yml with the selected options",
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", ".gridlegend.yml", "output file path")
	initCmd.Flags().StringVar(&cfgFallbackLocale, "fallback-locale", "en", "locale consulted for missing labels")
	initCmd.Flags().BoolVar(&cfgStrict, "strict-labels", false, "treat labels missing from a locale as errors")
	initCmd.Flags().BoolVar(&cfgNoColor, "no-color-default", false, "disable color output by default")
	initCmd.Flags().StringVar(&cfgListen, "listen", "", "default listen address for serve")
	initCmd.Flags().BoolVar(&cfgWithColors, "with-colors", false, "include the current color table for editing")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if !app.reg.HasLocale(types.Locale(cfgFallbackLocale)) {
		return fmt.Errorf("fallback-locale: %w: %q", legend.ErrUnknownLocale, cfgFallbackLocale)
	}
	fc := config.FileConfig{
		SchemaVersion:  strPtr(legend.SchemaVersion),
		Locale:         strPtr(string(app.locale)),
		FallbackLocale: strPtr(cfgFallbackLocale),
		StrictLabels:   boolPtr(cfgStrict),
		NoColor:        boolPtr(cfgNoColor),
		Listen:         optStrPtr(cfgListen),
	}
	if cfgWithColors {
		fc.Colors = map[string]string{}
		for c, col := range app.reg.Colors() {
			fc.Colors[string(c)] = string(col)
		}
	}

	b, err := yaml.Marshal(&fc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgOutput, b, 0644); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", cfgOutput)
	return nil
}
