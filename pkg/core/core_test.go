package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacade_DefaultOperations(t *testing.T) {
	col, err := ColorFor("solar")
	require.NoError(t, err)
	assert.Equal(t, Color("gold"), col)

	label, err := LabelFor(LocaleJP, "demand")
	require.NoError(t, err)
	assert.Equal(t, "需要", label)

	assert.Len(t, Regions(), 10)
	assert.Equal(t, Default().RenewableCategories(), RenewableCategories())
	assert.Equal(t, Default().NonRenewableCategories(), NonRenewableCategories())
	assert.Equal(t, []Category{"demand", "spot_price"}, MiscCategories())

	_, err = ColorFor("tidal")
	assert.ErrorIs(t, err, ErrUnknownCategory)
	_, err = LabelFor("de", "solar")
	assert.ErrorIs(t, err, ErrUnknownLocale)
	_, err = LabelFor(LocaleEN, "nope")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestNew_Overrides(t *testing.T) {
	reg, err := New(Config{Colors: map[Category]Color{"solar": "#FFFF00"}})
	require.NoError(t, err)
	col, _ := reg.ColorFor("solar")
	assert.Equal(t, Color("#FFFF00"), col)
	assert.NotEqual(t, Default().Fingerprint(), reg.Fingerprint())
}

func TestMarshalUnmarshalLegend(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MarshalLegend(&buf, Default()))

	snap, err := UnmarshalLegend(&buf)
	require.NoError(t, err)
	assert.Equal(t, Default().Snapshot(), snap)
}

func TestUnmarshalLegend_Rejects(t *testing.T) {
	_, err := UnmarshalLegend(strings.NewReader(`{"schema_version":"2.1.0"}`))
	assert.Error(t, err)

	_, err = UnmarshalLegend(strings.NewReader(`{"regions":["japan"]}`))
	assert.Error(t, err)

	_, err = UnmarshalLegend(strings.NewReader(`{`))
	assert.Error(t, err)
}
