package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"

	"github.com/preston-bernstein/market-names/internal/domain/sportevents"
	"github.com/preston-bernstein/market-names/internal/providers"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestFSSourceFetchMarkets(t *testing.T) {
	base := t.TempDir()
	writeFile(t, MarketsPath(base, language.English), `
markets:
  - id: 18
    name: Total
    outcomes:
      - id: "12"
        name: over {total}
      - id: "13"
        name: under {total}
  - id: 40
    name: Anytime goalscorer
  - id: 41
    name: Correct score
    outcomes: []
    attributes:
      - name: is_flex_score
`)

	descs, err := NewFSSource(base).FetchMarkets(context.Background(), language.English)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(descs) != 3 {
		t.Fatalf("expected 3 markets, got %d", len(descs))
	}
	total := descs[0]
	if name, _ := total.Name(language.English); name != "Total" {
		t.Fatalf("unexpected market name %q", name)
	}
	outcome, ok := total.Outcome("13")
	if !ok {
		t.Fatalf("expected outcome 13")
	}
	if name, _ := outcome.Name(language.English); name != "under {total}" {
		t.Fatalf("unexpected outcome name %q", name)
	}
	if descs[1].HasOutcomes() {
		t.Fatalf("expected market without outcome list")
	}
	if !descs[2].IsFlexScore() {
		t.Fatalf("expected flex score attribute")
	}
}

func TestFSSourceMissingFileIsNotFound(t *testing.T) {
	_, err := NewFSSource(t.TempDir()).FetchProfiles(context.Background(), language.German)
	nf, ok := providers.AsNotFoundError(err)
	if !ok {
		t.Fatalf("expected not found error, got %v", err)
	}
	if nf.Kind != "profiles" || nf.Key != "de" {
		t.Fatalf("unexpected not found details %+v", nf)
	}
}

func TestFSSourceRejectsInvalidYAML(t *testing.T) {
	base := t.TempDir()
	writeFile(t, MarketsPath(base, language.English), "markets: [\n")

	_, err := NewFSSource(base).FetchMarkets(context.Background(), language.English)
	if !errors.Is(err, ErrInvalidCatalog) {
		t.Fatalf("expected ErrInvalidCatalog, got %v", err)
	}
}

func TestFSSourceRejectsBadURN(t *testing.T) {
	base := t.TempDir()
	writeFile(t, ProfilesPath(base, language.English), `
competitors:
  - id: not-a-urn
    name: Nobody
`)
	_, err := NewFSSource(base).FetchProfiles(context.Background(), language.English)
	if !errors.Is(err, ErrInvalidCatalog) {
		t.Fatalf("expected ErrInvalidCatalog, got %v", err)
	}
}

func TestFSSourceFetchEvents(t *testing.T) {
	base := t.TempDir()
	writeFile(t, EventsPath(base), `
events:
  - id: sr:match:7
    kind: match
    competitors:
      - id: sr:competitor:2
        qualifier: away
        names: {en: Los Angeles Lakers}
      - id: sr:competitor:1
        qualifier: home
        names: {en: Boston Celtics}
  - id: sr:tournament:3
    kind: tournament
    names: {en: NBA Cup, de: NBA-Pokal}
  - id: sr:season:4
    kind: season
    competitors:
      - id: sr:competitor:1
`)

	events, err := NewFSSource(base).FetchEvents(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	match := events[0].(*sportevents.Match)
	if match.Home.Name(language.English) != "Boston Celtics" {
		t.Fatalf("expected home side by qualifier, got %+v", match.Home)
	}
	name, _ := events[1].Name(context.Background(), language.German)
	if name != "NBA-Pokal" {
		t.Fatalf("unexpected tournament name %q", name)
	}
	if events[2].Kind() != sportevents.KindSeason {
		t.Fatalf("unexpected kind %s", events[2].Kind())
	}
}

func TestFSSourceRejectsUnknownKind(t *testing.T) {
	base := t.TempDir()
	writeFile(t, EventsPath(base), `
events:
  - id: sr:race:1
    kind: race
`)
	if _, err := NewFSSource(base).FetchEvents(context.Background()); !errors.Is(err, ErrInvalidCatalog) {
		t.Fatalf("expected ErrInvalidCatalog, got %v", err)
	}
}

func TestFSSourceHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewFSSource(t.TempDir()).FetchEvents(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}
