package gridlegend

import (
	"errors"
	"fmt"
	"os"

	"github.com/gridlegend/gridlegend/internal/config"
	"github.com/gridlegend/gridlegend/internal/legend"
	"github.com/gridlegend/gridlegend/internal/report"
	"github.com/gridlegend/gridlegend/internal/types"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	flagLocale  string
	flagNoColor bool
	flagVerbose bool
	flagConfig  string
	flagEnvFile string

	version = "0.1.0"
)

// state is resolved once per invocation by the root PersistentPreRunE.
type state struct {
	reg            *legend.Registry
	fc             config.FileConfig
	locale         types.Locale
	localeExplicit bool
	noColor        bool
}

var app state

// exitError carries a non-default exit code out of a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// rootCmd is the base Cobra command for the gridlegend CLI.
var rootCmd = &cobra.Command{
	Use:               "gridlegend",
	Short:             "Legend tables for the power-generation dashboard",
	Long:              "gridlegend lists the energy-source categories, their chart colors, the en/jp labels and the region list used by the dashboard, and serves them over HTTP.",
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the gridlegend CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "display locale: en | jp (env GRIDLEGEND_LOCALE)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: .gridlegend.yml, then $XDG_CONFIG_HOME/gridlegend/config.yml)")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "dotenv file loaded before reading the environment")
}

func setup(cmd *cobra.Command, _ []string) error {
	// a missing .env is normal
	if err := godotenv.Load(flagEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", flagEnvFile, err)
	}

	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if flagVerbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	fc, err := loadConfig()
	if err != nil {
		return err
	}
	lc := fc.LegendConfig()
	lc.Logger = log.StandardLogger()
	reg, err := legend.New(lc)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	loc := pickString(flagLocale, optStrPtr(os.Getenv("GRIDLEGEND_LOCALE")), fc.Locale)
	app = state{reg: reg, fc: fc, localeExplicit: loc != ""}
	if loc == "" {
		loc = string(types.LocaleEN)
	}
	app.locale = types.Locale(loc)
	if !reg.HasLocale(app.locale) {
		return fmt.Errorf("%w: %q (known: %v)", legend.ErrUnknownLocale, loc, reg.Locales())
	}

	var envNoColor *bool
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		envNoColor = boolPtr(true)
	}
	app.noColor = pickBool(flagNoColor, envNoColor, fc.NoColor) || !isTerminal(cmd)

	log.WithFields(log.Fields{
		"locale":      app.locale,
		"fingerprint": reg.Fingerprint(),
	}).Debug("registry ready")
	return nil
}

// loadConfig reads --config when given; otherwise the local file is layered
// over the global one, both optional.
func loadConfig() (config.FileConfig, error) {
	if flagConfig != "" {
		fc, err := config.LoadFile(flagConfig)
		if err != nil {
			return fc, fmt.Errorf("config: %w", err)
		}
		return fc, nil
	}
	local, lerr := config.LoadLocal(".")
	if lerr != nil && !config.IsNotFound(lerr) {
		return local, lerr
	}
	global, gerr := config.LoadGlobal()
	if gerr != nil && !config.IsNotFound(gerr) {
		return global, gerr
	}
	return config.Merge(local, global), nil
}

// isTerminal reports whether the command writes to an interactive terminal.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printOptions() report.PrintOptions {
	return report.PrintOptions{NoColor: app.noColor, Locale: app.locale}
}
