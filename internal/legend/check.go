package legend

import (
	"fmt"
	"sort"

	"github.com/gridlegend/gridlegend/internal/types"
	"github.com/gridlegend/gridlegend/internal/validate"
)

// IssueKind names a class of data-consistency problem.
type IssueKind string

const (
	IssueDuplicateCategory IssueKind = "duplicate_category"
	IssueMissingColor      IssueKind = "missing_color"
	IssueUnclassifiedColor IssueKind = "unclassified_color"
	IssueInvalidColor      IssueKind = "invalid_color"
	IssueLocaleKeyDrift    IssueKind = "locale_key_drift"
	IssueMissingLabel      IssueKind = "missing_label"
	IssueInvalidKey        IssueKind = "invalid_key"
)

// Issue is one finding of Check.
type Issue struct {
	Kind   IssueKind    `json:"kind" yaml:"kind"`
	Key    string       `json:"key" yaml:"key"`
	Locale types.Locale `json:"locale,omitempty" yaml:"locale,omitempty"`
	Detail string       `json:"detail" yaml:"detail"`
}

func (i Issue) String() string {
	if i.Locale != "" {
		return fmt.Sprintf("%s %s [%s]: %s", i.Kind, i.Key, i.Locale, i.Detail)
	}
	return fmt.Sprintf("%s %s: %s", i.Kind, i.Key, i.Detail)
}

// Check cross-validates the tables and returns every inconsistency found,
// sorted by kind then key. An empty result means the tables agree.
func (r *Registry) Check() []Issue {
	var out []Issue

	listed := map[types.Category][]types.Class{}
	for _, cl := range classOrder {
		for _, c := range r.classes[cl] {
			listed[c] = append(listed[c], cl)
		}
	}
	for c, cls := range listed {
		if len(cls) > 1 {
			out = append(out, Issue{Kind: IssueDuplicateCategory, Key: string(c), Detail: fmt.Sprintf("listed %d times (%v)", len(cls), cls)})
		}
		if _, ok := r.colors[c]; !ok {
			out = append(out, Issue{Kind: IssueMissingColor, Key: string(c), Detail: "classified category has no color"})
		}
	}
	for c, col := range r.colors {
		if _, ok := listed[c]; !ok {
			out = append(out, Issue{Kind: IssueUnclassifiedColor, Key: string(c), Detail: "color defined for a category outside every classification"})
		}
		if _, err := validate.ParseColor(string(col)); err != nil {
			out = append(out, Issue{Kind: IssueInvalidColor, Key: string(c), Detail: err.Error()})
		}
	}

	// every locale must cover the union of all locales' keys
	union := map[string]bool{}
	for _, table := range r.labels {
		for k := range table {
			union[k] = true
		}
	}
	for _, loc := range r.locales {
		table := r.labels[loc]
		for k := range union {
			if _, ok := table[k]; !ok {
				out = append(out, Issue{Kind: IssueLocaleKeyDrift, Key: k, Locale: loc, Detail: "key present in another locale"})
			}
		}
		for k, v := range table {
			if !validate.IsIdentifier(k) {
				out = append(out, Issue{Kind: IssueInvalidKey, Key: k, Locale: loc, Detail: "label key is not a snake_case id"})
			}
			if v == "" {
				out = append(out, Issue{Kind: IssueMissingLabel, Key: k, Locale: loc, Detail: "empty label"})
			}
		}
	}
	for c := range listed {
		if !union[string(c)] {
			out = append(out, Issue{Kind: IssueMissingLabel, Key: string(c), Detail: "category has no label in any locale"})
		}
	}
	for _, reg := range r.regions {
		if !union[string(reg)] {
			out = append(out, Issue{Kind: IssueMissingLabel, Key: string(reg), Detail: "region has no label in any locale"})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		if out[i].Key != out[j].Key {
			return out[i].Key < out[j].Key
		}
		return out[i].Locale < out[j].Locale
	})
	return out
}
