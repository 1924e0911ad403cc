package legend

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/gridlegend/gridlegend/internal/types"
)

// SchemaVersion is the version of the Snapshot document layout.
const SchemaVersion = "1.0.0"

// Snapshot is the serializable form of a registry, consumed by the chart
// front-end and the export commands.
type Snapshot struct {
	SchemaVersion  string                             `json:"schema_version" yaml:"schema_version"`
	Fingerprint    string                             `json:"fingerprint" yaml:"fingerprint"`
	FallbackLocale types.Locale                       `json:"fallback_locale" yaml:"fallback_locale"`
	Renewables     []types.Category                   `json:"renewables" yaml:"renewables"`
	NonRenewables  []types.Category                   `json:"non_renewables" yaml:"non_renewables"`
	Misc           []types.Category                   `json:"misc" yaml:"misc"`
	Colors         map[types.Category]types.Color     `json:"colors" yaml:"colors"`
	Labels         map[types.Locale]map[string]string `json:"labels" yaml:"labels"`
	Regions        []types.Region                     `json:"regions" yaml:"regions"`
}

// Snapshot returns a deep copy of the registry tables.
func (r *Registry) Snapshot() Snapshot {
	lbl := make(map[types.Locale]map[string]string, len(r.labels))
	for loc, table := range r.labels {
		lbl[loc] = maps.Clone(table)
	}
	return Snapshot{
		SchemaVersion:  SchemaVersion,
		Fingerprint:    r.fingerprint,
		FallbackLocale: r.fallback,
		Renewables:     r.RenewableCategories(),
		NonRenewables:  r.NonRenewableCategories(),
		Misc:           r.MiscCategories(),
		Colors:         r.Colors(),
		Labels:         lbl,
		Regions:        r.Regions(),
	}
}

// Fingerprint is a 16 hex digit content hash of every table. Registries
// with equal contents share a fingerprint.
func (r *Registry) Fingerprint() string { return r.fingerprint }

func (r *Registry) computeFingerprint() string {
	var b strings.Builder
	for _, cl := range classOrder {
		fmt.Fprintf(&b, "class %s:", cl)
		for _, c := range r.classes[cl] {
			b.WriteString(string(c))
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	for _, c := range slices.Sorted(maps.Keys(r.colors)) {
		fmt.Fprintf(&b, "color %s=%s\n", c, r.colors[c])
	}
	for _, loc := range r.locales {
		table := r.labels[loc]
		for _, k := range slices.Sorted(maps.Keys(table)) {
			fmt.Fprintf(&b, "label %s %s=%s\n", loc, k, table[k])
		}
	}
	b.WriteString("regions:")
	for _, reg := range r.regions {
		b.WriteString(string(reg))
		b.WriteByte(',')
	}
	fmt.Fprintf(&b, "\nfallback %s strict %t\n", r.fallback, r.strict)
	return fmt.Sprintf("%016x", xxhash.Sum64String(b.String()))
}
