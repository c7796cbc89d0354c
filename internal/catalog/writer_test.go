package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"

	"github.com/preston-bernstein/market-names/internal/domain/sportevents"
	"github.com/preston-bernstein/market-names/internal/providers/fixture"
)

func TestExportThenLoadServesSameCatalog(t *testing.T) {
	base := t.TempDir()
	locales := []language.Tag{language.English, language.German}
	if err := Export(context.Background(), fixture.New(), NewWriter(base), locales); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	src := NewFSSource(base)
	want, _ := fixture.New().FetchMarkets(context.Background(), language.German)
	got, err := src.FetchMarkets(context.Background(), language.German)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d markets, got %d", len(want), len(got))
	}
	for _, d := range got {
		if d.ID != 41 {
			continue
		}
		if !d.IsFlexScore() {
			t.Fatalf("expected flex attribute to survive export")
		}
		if o, _ := d.Outcome("122"); o.Names[language.German] != "andere" {
			t.Fatalf("unexpected outcome names %v", o.Names)
		}
	}

	comps, err := src.FetchProfiles(context.Background(), language.English)
	if err != nil || len(comps) != 2 {
		t.Fatalf("expected 2 competitors, got %d (%v)", len(comps), err)
	}
	if comps[0].Players[0].DisplayName() != "Jane Doe" {
		t.Fatalf("unexpected player %q", comps[0].Players[0].DisplayName())
	}

	events, err := src.FetchEvents(context.Background())
	if err != nil || len(events) != 3 {
		t.Fatalf("expected 3 events, got %d (%v)", len(events), err)
	}
	match := events[0].(*sportevents.Match)
	if match.Away.Name(language.German) != "Los Angeles Lakers" {
		t.Fatalf("unexpected away competitor %+v", match.Away)
	}
}

func TestWriterSkipsUnchangedContent(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base)
	descs, _ := fixture.New().FetchMarkets(context.Background(), language.English)

	if err := w.WriteMarkets(language.English, descs); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	first, _ := os.ReadFile(MarketsPath(base, language.English))
	if err := w.WriteMarkets(language.English, descs); err != nil {
		t.Fatalf("second write failed: %v", err)
	}
	second, _ := os.ReadFile(MarketsPath(base, language.English))
	if string(first) != string(second) {
		t.Fatalf("expected identical content")
	}
	if _, err := os.Stat(MarketsPath(base, language.English) + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected no temp file left behind")
	}
}

func TestNilWriter(t *testing.T) {
	var w *Writer
	if w.BasePath() != "" {
		t.Fatalf("expected empty base path")
	}
	if err := w.WriteEvents(nil); err == nil {
		t.Fatalf("expected error for nil writer")
	}
}

func TestShippedCatalogMatchesFixture(t *testing.T) {
	src := NewFSSource(filepath.Join("..", "..", "data", "catalog"))
	for _, locale := range []language.Tag{language.English, language.German} {
		want, _ := fixture.New().FetchMarkets(context.Background(), locale)
		got, err := src.FetchMarkets(context.Background(), locale)
		if err != nil {
			t.Fatalf("%s: load failed: %v", locale, err)
		}
		if len(got) != len(want) {
			t.Fatalf("%s: expected %d markets, got %d", locale, len(want), len(got))
		}
		byID := make(map[int]string, len(want))
		for _, d := range want {
			byID[d.ID] = d.Names[locale]
		}
		for _, d := range got {
			if byID[d.ID] != d.Names[locale] {
				t.Fatalf("%s: market %d name %q, fixture has %q", locale, d.ID, d.Names[locale], byID[d.ID])
			}
		}
	}

	events, err := src.FetchEvents(context.Background())
	if err != nil || len(events) != 3 {
		t.Fatalf("expected 3 shipped events, got %d (%v)", len(events), err)
	}
}
