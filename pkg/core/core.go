package core

import (
	"github.com/gridlegend/gridlegend/internal/legend"
	"github.com/gridlegend/gridlegend/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type (
	Category = types.Category
	Class    = types.Class
	Color    = types.Color
	Locale   = types.Locale
	Region   = types.Region

	Registry = legend.Registry
	Config   = legend.Config
	Snapshot = legend.Snapshot
	Issue    = legend.Issue
)

const (
	LocaleEN = types.LocaleEN
	LocaleJP = types.LocaleJP

	ClassRenewable    = types.ClassRenewable
	ClassNonRenewable = types.ClassNonRenewable
	ClassMisc         = types.ClassMisc
)

var (
	ErrUnknownCategory = legend.ErrUnknownCategory
	ErrUnknownLocale   = legend.ErrUnknownLocale
	ErrUnknownKey      = legend.ErrUnknownKey
)

// Default returns the shared built-in registry.
func Default() *Registry { return legend.Default() }

// New builds a registry with cfg applied over the built-in tables.
func New(cfg Config) (*Registry, error) { return legend.New(cfg) }

func RenewableCategories() []Category    { return legend.RenewableCategories() }
func NonRenewableCategories() []Category { return legend.NonRenewableCategories() }
func MiscCategories() []Category         { return legend.MiscCategories() }
func Regions() []Region                  { return legend.Regions() }

// ColorFor returns the chart color of c in the built-in registry.
func ColorFor(c Category) (Color, error) { return legend.ColorFor(c) }

// LabelFor returns the label for key in loc, falling back to English for
// keys a locale lacks.
func LabelFor(loc Locale, key string) (string, error) { return legend.LabelFor(loc, key) }
