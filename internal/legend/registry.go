package legend

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"sort"
	"sync"

	"github.com/gridlegend/gridlegend/internal/types"
	"github.com/gridlegend/gridlegend/internal/validate"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownLocale   = errors.New("unknown locale")
	ErrUnknownKey      = errors.New("unknown label key")
)

// Config adjusts the built-in tables. The zero value yields the built-in
// registry unchanged.
type Config struct {
	// Colors adds or replaces category colors.
	Colors map[types.Category]types.Color
	// Labels adds or replaces labels per locale. Only known locales may be
	// targeted.
	Labels map[types.Locale]map[string]string
	// FallbackLocale is consulted when a key is missing from the requested
	// locale. Defaults to "en".
	FallbackLocale types.Locale
	// StrictLabels disables the fallback: a missing key is always an error.
	StrictLabels bool
	// Logger receives debug records for label fallbacks. Defaults to a
	// discarding logger.
	Logger logrus.FieldLogger
}

// Registry is an immutable set of legend tables. It is safe for concurrent
// use; getters return copies.
type Registry struct {
	classes  map[types.Class][]types.Category
	classOf  map[types.Category]types.Class
	colors   map[types.Category]types.Color
	labels   map[types.Locale]map[string]string
	locales  []types.Locale
	regions  []types.Region
	fallback types.Locale
	strict   bool
	log      logrus.FieldLogger

	fingerprint string
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the registry built from the built-in tables. It is built
// on first use and shared afterwards.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = builtin(discardLogger())
		defaultReg.fingerprint = defaultReg.computeFingerprint()
	})
	return defaultReg
}

// New builds a registry from the built-in tables with cfg applied on top.
func New(cfg Config) (*Registry, error) {
	log := cfg.Logger
	if log == nil {
		log = discardLogger()
	}
	r := builtin(log)
	r.strict = cfg.StrictLabels
	if cfg.FallbackLocale != "" {
		if _, ok := r.labels[cfg.FallbackLocale]; !ok {
			return nil, fmt.Errorf("fallback locale: %w: %q", ErrUnknownLocale, cfg.FallbackLocale)
		}
		r.fallback = cfg.FallbackLocale
	}
	for c, col := range cfg.Colors {
		if !validate.IsIdentifier(string(c)) {
			return nil, fmt.Errorf("color override: invalid category id %q", c)
		}
		if !validate.IsColor(string(col)) {
			return nil, fmt.Errorf("color override for %s: invalid color %q", c, col)
		}
		r.colors[c] = col
	}
	for loc, table := range cfg.Labels {
		dst, ok := r.labels[loc]
		if !ok {
			return nil, fmt.Errorf("label override: %w: %q", ErrUnknownLocale, loc)
		}
		for k, v := range table {
			if !validate.IsIdentifier(k) {
				return nil, fmt.Errorf("label override for %s: invalid key %q", loc, k)
			}
			dst[k] = v
		}
	}
	r.fingerprint = r.computeFingerprint()
	return r, nil
}

func builtin(log logrus.FieldLogger) *Registry {
	r := &Registry{
		classes: map[types.Class][]types.Category{
			types.ClassRenewable:    slices.Clone(renewables),
			types.ClassNonRenewable: slices.Clone(nonRenewables),
			types.ClassMisc:         slices.Clone(misc),
		},
		classOf:  map[types.Category]types.Class{},
		colors:   maps.Clone(colors),
		labels:   map[types.Locale]map[string]string{},
		regions:  slices.Clone(regions),
		fallback: types.LocaleEN,
		log:      log,
	}
	for _, cl := range classOrder {
		for _, c := range r.classes[cl] {
			// first classification wins; Check reports the overlap
			if _, seen := r.classOf[c]; !seen {
				r.classOf[c] = cl
			}
		}
	}
	for loc, table := range labels {
		r.labels[loc] = maps.Clone(table)
		r.locales = append(r.locales, loc)
	}
	sort.Slice(r.locales, func(i, j int) bool { return r.locales[i] < r.locales[j] })
	return r
}

var classOrder = []types.Class{types.ClassRenewable, types.ClassNonRenewable, types.ClassMisc}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// RenewableCategories returns the renewable categories in display order.
func (r *Registry) RenewableCategories() []types.Category {
	return slices.Clone(r.classes[types.ClassRenewable])
}

// NonRenewableCategories returns the non-renewable categories in display order.
func (r *Registry) NonRenewableCategories() []types.Category {
	return slices.Clone(r.classes[types.ClassNonRenewable])
}

// MiscCategories returns the non-generation series (demand, spot price).
func (r *Registry) MiscCategories() []types.Category {
	return slices.Clone(r.classes[types.ClassMisc])
}

// AllCategories returns renewables, non-renewables and misc, in that order.
func (r *Registry) AllCategories() []types.Category {
	var out []types.Category
	for _, cl := range classOrder {
		out = append(out, r.classes[cl]...)
	}
	return out
}

// ClassOf reports which classification a category is listed under.
func (r *Registry) ClassOf(c types.Category) (types.Class, error) {
	cl, ok := r.classOf[c]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}
	return cl, nil
}

// ColorFor returns the series color for c.
func (r *Registry) ColorFor(c types.Category) (types.Color, error) {
	col, ok := r.colors[c]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}
	return col, nil
}

// ColorOrFallback returns the color for c, or FallbackColor when c has not
// been styled.
func (r *Registry) ColorOrFallback(c types.Category) types.Color {
	if col, ok := r.colors[c]; ok {
		return col
	}
	return FallbackColor
}

// Colors returns a copy of the color table.
func (r *Registry) Colors() map[types.Category]types.Color {
	return maps.Clone(r.colors)
}

// LabelFor returns the label for key in loc. A key missing from loc is
// looked up in the fallback locale unless the registry is strict.
func (r *Registry) LabelFor(loc types.Locale, key string) (string, error) {
	table, ok := r.labels[loc]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLocale, loc)
	}
	if s, ok := table[key]; ok {
		return s, nil
	}
	if !r.strict && loc != r.fallback {
		if s, ok := r.labels[r.fallback][key]; ok {
			r.log.WithFields(logrus.Fields{
				"locale":   loc,
				"key":      key,
				"fallback": r.fallback,
			}).Debug("label missing, using fallback locale")
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q in locale %s", ErrUnknownKey, key, loc)
}

// CategoryLabel is LabelFor keyed by a category.
func (r *Registry) CategoryLabel(loc types.Locale, c types.Category) (string, error) {
	return r.LabelFor(loc, string(c))
}

// RegionLabel is LabelFor keyed by a region.
func (r *Registry) RegionLabel(loc types.Locale, reg types.Region) (string, error) {
	return r.LabelFor(loc, string(reg))
}

// Labels returns a copy of one locale's label table.
func (r *Registry) Labels(loc types.Locale) (map[string]string, error) {
	table, ok := r.labels[loc]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, loc)
	}
	return maps.Clone(table), nil
}

// LabelKeys returns the sorted key set of one locale.
func (r *Registry) LabelKeys(loc types.Locale) ([]string, error) {
	table, ok := r.labels[loc]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, loc)
	}
	return slices.Sorted(maps.Keys(table)), nil
}

// Locales returns the known locales, sorted.
func (r *Registry) Locales() []types.Locale {
	return slices.Clone(r.locales)
}

// FallbackLocale returns the locale consulted for missing keys.
func (r *Registry) FallbackLocale() types.Locale { return r.fallback }

// HasLocale reports whether loc has a label table.
func (r *Registry) HasLocale(loc types.Locale) bool {
	_, ok := r.labels[loc]
	return ok
}

// Regions returns the region ids in display order.
func (r *Registry) Regions() []types.Region {
	return slices.Clone(r.regions)
}

// Package-level accessors bound to Default().

func RenewableCategories() []types.Category    { return Default().RenewableCategories() }
func NonRenewableCategories() []types.Category { return Default().NonRenewableCategories() }
func MiscCategories() []types.Category         { return Default().MiscCategories() }
func Regions() []types.Region                  { return Default().Regions() }

func ColorFor(c types.Category) (types.Color, error) { return Default().ColorFor(c) }

func LabelFor(loc types.Locale, key string) (string, error) {
	return Default().LabelFor(loc, key)
}
