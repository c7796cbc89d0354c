package sportevents

import (
	"context"
	"testing"

	"golang.org/x/text/language"

	"github.com/preston-bernstein/market-names/internal/domain/urn"
)

func TestMatchExposesHomeThenAway(t *testing.T) {
	m := &Match{
		EventID: urn.New(urn.TypeMatch, 1),
		Home:    Competitor{ID: urn.New(urn.TypeCompetitor, 10), Qualifier: QualifierHome, Names: map[language.Tag]string{language.English: "Boston"}},
		Away:    Competitor{ID: urn.New(urn.TypeCompetitor, 20), Qualifier: QualifierAway, Names: map[language.Tag]string{language.English: "Los Angeles"}},
	}

	ids, err := m.CompetitorIDs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 || ids[0].ID != 10 || ids[1].ID != 20 {
		t.Fatalf("unexpected ids %v", ids)
	}
	comps, _ := m.Competitors(context.Background(), language.English)
	if comps[1].Name(language.English) != "Los Angeles" {
		t.Fatalf("unexpected away name %q", comps[1].Name(language.English))
	}
	if m.Kind() != KindMatch {
		t.Fatalf("unexpected kind %s", m.Kind())
	}
	if name, _ := m.Name(context.Background(), language.English); name != "" {
		t.Fatalf("expected unnamed match, got %q", name)
	}
}

func TestStageKinds(t *testing.T) {
	season := NewSeason(urn.New(urn.TypeSeason, 1), map[language.Tag]string{language.English: "2024/25"}, []Competitor{{ID: urn.New(urn.TypeCompetitor, 3)}})
	basic := NewBasicTournament(urn.New(urn.TypeTournament, 2), nil, nil)

	if season.Kind() != KindSeason || basic.Kind() != KindBasicTournament {
		t.Fatalf("unexpected kinds %s %s", season.Kind(), basic.Kind())
	}
	ids, _ := season.CompetitorIDs(context.Background())
	if len(ids) != 1 || ids[0].ID != 3 {
		t.Fatalf("unexpected season ids %v", ids)
	}
	if name, _ := season.Name(context.Background(), language.English); name != "2024/25" {
		t.Fatalf("unexpected season name %q", name)
	}
	comps, _ := basic.Competitors(context.Background(), language.English)
	if len(comps) != 0 {
		t.Fatalf("expected no competitors, got %d", len(comps))
	}
}

func TestTournamentIsNotACompetition(t *testing.T) {
	var event SportEvent = &Tournament{EventID: urn.New(urn.TypeTournament, 7)}
	if _, ok := event.(Competition); ok {
		t.Fatalf("expected tournament not to list competitors")
	}
}
