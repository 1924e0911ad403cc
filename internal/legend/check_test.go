package legend

import (
	"testing"

	"github.com/gridlegend/gridlegend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_BuiltinTablesAreConsistent(t *testing.T) {
	issues := Default().Check()
	assert.Empty(t, issues, "built-in tables drifted: %v", issues)
}

func TestCheck_ReportsLocaleDrift(t *testing.T) {
	r, err := New(Config{Labels: map[types.Locale]map[string]string{
		"en": {"axis_frequency": "Frequency (Hz)"},
	}})
	require.NoError(t, err)
	issues := r.Check()
	require.Len(t, issues, 1)
	assert.Equal(t, IssueLocaleKeyDrift, issues[0].Kind)
	assert.Equal(t, "axis_frequency", issues[0].Key)
	assert.Equal(t, types.LocaleJP, issues[0].Locale)
	assert.Contains(t, issues[0].String(), "axis_frequency")
}

func TestCheck_ReportsUnclassifiedColorAndEmptyLabel(t *testing.T) {
	r, err := New(Config{
		Colors: map[types.Category]types.Color{"tidal": "teal"},
		Labels: map[types.Locale]map[string]string{
			"en": {"solar": ""},
		},
	})
	require.NoError(t, err)
	issues := r.Check()
	kinds := map[IssueKind]string{}
	for _, is := range issues {
		kinds[is.Kind] = is.Key
	}
	assert.Equal(t, "tidal", kinds[IssueUnclassifiedColor])
	assert.Equal(t, "solar", kinds[IssueMissingLabel])
}

func TestCheck_ReportsDuplicatesAndMissingColors(t *testing.T) {
	r := builtin(discardLogger())
	r.classes[types.ClassMisc] = append(r.classes[types.ClassMisc], Solar)
	delete(r.colors, Wind)
	r.colors[Nuclear] = "reddish"

	issues := r.Check()
	var got []string
	for _, is := range issues {
		got = append(got, string(is.Kind)+":"+is.Key)
	}
	assert.Contains(t, got, "duplicate_category:solar")
	assert.Contains(t, got, "missing_color:wind")
	assert.Contains(t, got, "invalid_color:nuclear")
}
