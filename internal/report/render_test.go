package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gridlegend/gridlegend/internal/legend"
	"github.com/gridlegend/gridlegend/internal/types"
)

func TestPrintCategories_Table(t *testing.T) {
	var buf bytes.Buffer
	r := legend.Default()
	if err := PrintCategories(&buf, r, []types.Category{"solar", "nuclear"}, PrintOptions{NoColor: true}); err != nil {
		t.Fatalf("PrintCategories: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"solar", "Solar", "gold", "#FFD700", "nuclear", "#FF0000", "renewable", "non_renewable"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table; got: %q", want, out)
		}
	}
	if !strings.Contains(strings.ToUpper(out), "CATEGORY") {
		t.Fatalf("expected header; got: %q", out)
	}
}

func TestPrintCategories_JapaneseAndUnstyled(t *testing.T) {
	var buf bytes.Buffer
	r := legend.Default()
	err := PrintCategories(&buf, r, []types.Category{"demand", "tidal"}, PrintOptions{NoColor: true, Locale: types.LocaleJP})
	if err != nil {
		t.Fatalf("PrintCategories: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "需要") {
		t.Fatalf("expected japanese label; got: %q", out)
	}
	if !strings.Contains(out, string(legend.FallbackColor)) {
		t.Fatalf("expected fallback color for unstyled category; got: %q", out)
	}
}

func TestPrintCategories_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintCategories(&buf, legend.Default(), nil, PrintOptions{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No categories matched") {
		t.Fatalf("expected empty message; got: %q", buf.String())
	}
}

func TestPrintRegions_Order(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintRegions(&buf, legend.Default(), PrintOptions{Locale: types.LocaleJP}); err != nil {
		t.Fatalf("PrintRegions: %v", err)
	}
	out := buf.String()
	last := -1
	for _, label := range []string{"全国", "東京", "北海道", "東北", "中部", "北陸", "関西", "中国", "四国", "九州"} {
		i := strings.Index(out, label)
		if i < 0 {
			t.Fatalf("missing %q in output: %q", label, out)
		}
		if i < last {
			t.Fatalf("region %q out of order", label)
		}
		last = i
	}
}

func TestPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	PrintIssues(&buf, nil, PrintOptions{})
	if !strings.Contains(buf.String(), "consistent") {
		t.Fatalf("expected friendly no-issues message; got: %q", buf.String())
	}

	buf.Reset()
	issues := []legend.Issue{{Kind: legend.IssueLocaleKeyDrift, Key: "axis_frequency", Locale: "jp", Detail: "key present in another locale"}}
	PrintIssues(&buf, issues, PrintOptions{NoColor: true})
	out := buf.String()
	if !strings.Contains(out, "locale_key_drift axis_frequency [jp]") {
		t.Fatalf("expected issue line; got: %q", out)
	}
	if !strings.Contains(out, "Issues: 1") {
		t.Fatalf("expected issue count; got: %q", out)
	}
}

func TestSwatch_NoColor(t *testing.T) {
	if got := Swatch("gold", true); got != "  " {
		t.Fatalf("expected blank swatch, got %q", got)
	}
	if got := Swatch("not-a-color", false); got != "  " {
		t.Fatalf("expected blank swatch for invalid color, got %q", got)
	}
}
