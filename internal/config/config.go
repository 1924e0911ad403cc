package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	semver "github.com/blang/semver/v4"
	"github.com/gridlegend/gridlegend/internal/legend"
	"github.com/gridlegend/gridlegend/internal/types"
	"gopkg.in/yaml.v3"
)

// ErrNotFound reports that no config file exists at the searched locations.
var ErrNotFound = errors.New("config not found")

// IsNotFound reports whether err means no config file was found.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// FileConfig is the on-disk YAML configuration shape for gridlegend.
type FileConfig struct {
	SchemaVersion  *string `yaml:"schema_version"`
	Locale         *string `yaml:"locale"`
	FallbackLocale *string `yaml:"fallback_locale"`
	StrictLabels   *bool   `yaml:"strict_labels"`
	NoColor        *bool   `yaml:"no_color"`
	Listen         *string `yaml:"listen"`

	// Colors maps category id to a named CSS color or hex string.
	Colors map[string]string `yaml:"colors,omitempty"`
	// Labels maps locale to label key to text.
	Labels map[string]map[string]string `yaml:"labels,omitempty"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := CheckSchema(cfg.SchemaVersion); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadLocal searches for a project-local config file in the given root.
// It supports .gridlegend.yml/.yaml and gridlegend.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".gridlegend.yml", ".gridlegend.yaml", "gridlegend.yml", "gridlegend.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, fmt.Errorf("no local config: %w", ErrNotFound)
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, fmt.Errorf("no config dir: %w", ErrNotFound)
	}
	p := filepath.Join(base, "gridlegend", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, fmt.Errorf("no global config: %w", ErrNotFound)
}

// CheckSchema accepts a missing version or any version sharing the major
// of legend.SchemaVersion.
func CheckSchema(v *string) error {
	if v == nil || *v == "" {
		return nil
	}
	got, err := semver.ParseTolerant(*v)
	if err != nil {
		return fmt.Errorf("schema_version %q: %w", *v, err)
	}
	want := semver.MustParse(legend.SchemaVersion)
	if got.Major != want.Major {
		return fmt.Errorf("schema_version %s is not compatible with %s", got, want)
	}
	return nil
}

// Merge layers local over global. Scalars from local win when set; color
// and label maps are merged key by key.
func Merge(local, global FileConfig) FileConfig {
	out := global
	if local.SchemaVersion != nil {
		out.SchemaVersion = local.SchemaVersion
	}
	if local.Locale != nil {
		out.Locale = local.Locale
	}
	if local.FallbackLocale != nil {
		out.FallbackLocale = local.FallbackLocale
	}
	if local.StrictLabels != nil {
		out.StrictLabels = local.StrictLabels
	}
	if local.NoColor != nil {
		out.NoColor = local.NoColor
	}
	if local.Listen != nil {
		out.Listen = local.Listen
	}
	out.Colors = mergeStrings(global.Colors, local.Colors)
	if len(global.Labels)+len(local.Labels) > 0 {
		out.Labels = map[string]map[string]string{}
		for loc, table := range global.Labels {
			out.Labels[loc] = mergeStrings(nil, table)
		}
		for loc, table := range local.Labels {
			out.Labels[loc] = mergeStrings(out.Labels[loc], table)
		}
	}
	return out
}

func mergeStrings(base, over map[string]string) map[string]string {
	if len(base)+len(over) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// LegendConfig converts the file shape into registry overrides.
func (fc FileConfig) LegendConfig() legend.Config {
	var lc legend.Config
	if len(fc.Colors) > 0 {
		lc.Colors = make(map[types.Category]types.Color, len(fc.Colors))
		for k, v := range fc.Colors {
			lc.Colors[types.Category(k)] = types.Color(v)
		}
	}
	if len(fc.Labels) > 0 {
		lc.Labels = make(map[types.Locale]map[string]string, len(fc.Labels))
		for loc, table := range fc.Labels {
			lc.Labels[types.Locale(loc)] = mergeStrings(nil, table)
		}
	}
	if fc.FallbackLocale != nil {
		lc.FallbackLocale = types.Locale(*fc.FallbackLocale)
	}
	if fc.StrictLabels != nil {
		lc.StrictLabels = *fc.StrictLabels
	}
	return lc
}

// GetLocale returns the configured display locale or "".
func (fc FileConfig) GetLocale() string {
	if fc.Locale == nil {
		return ""
	}
	return *fc.Locale
}

// GetListen returns the configured HTTP listen address or "".
func (fc FileConfig) GetListen() string {
	if fc.Listen == nil {
		return ""
	}
	return *fc.Listen
}

// IsNoColor returns true if color output is disabled (default: false).
func (fc FileConfig) IsNoColor() bool {
	if fc.NoColor == nil {
		return false
	}
	return *fc.NoColor
}
