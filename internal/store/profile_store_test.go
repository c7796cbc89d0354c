package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/preston-bernstein/market-names/internal/domain/profiles"
	"github.com/preston-bernstein/market-names/internal/domain/urn"
	"github.com/preston-bernstein/market-names/internal/teststubs"
)

var (
	celtics = urn.New(urn.TypeCompetitor, 1)
	jane    = urn.New(urn.TypePlayer, 1)
)

func profileSource() *teststubs.StubSource {
	return &teststubs.StubSource{Profiles: map[language.Tag][]profiles.Competitor{
		language.English: {{
			ID:      celtics,
			Name:    "Boston Celtics",
			Players: []profiles.Player{{ID: jane, FirstName: "Jane", LastName: "Doe"}},
		}},
	}}
}

func TestProfileStoreCachedLookupDoesNotFetch(t *testing.T) {
	src := profileSource()
	s := NewProfileStore(src)

	name, err := s.CompetitorName(context.Background(), celtics, language.English, false)
	if err != nil || name != "" {
		t.Fatalf("expected empty miss, got %q (%v)", name, err)
	}
	if src.Calls.Load() != 0 {
		t.Fatalf("expected no source calls, got %d", src.Calls.Load())
	}
}

func TestProfileStoreFetchOnMiss(t *testing.T) {
	src := profileSource()
	s := NewProfileStore(src)

	name, err := s.PlayerName(context.Background(), jane, language.English, true)
	if err != nil || name != "Jane Doe" {
		t.Fatalf("expected player name, got %q (%v)", name, err)
	}
	name, _ = s.CompetitorName(context.Background(), celtics, language.English, false)
	if name != "Boston Celtics" {
		t.Fatalf("expected competitor cached with its players, got %q", name)
	}
	if src.Calls.Load() != 1 {
		t.Fatalf("expected 1 source call, got %d", src.Calls.Load())
	}
}

func TestProfileStoreUnknownAfterFetch(t *testing.T) {
	s := NewProfileStore(profileSource())
	name, err := s.PlayerName(context.Background(), urn.New(urn.TypePlayer, 99), language.English, true)
	if err != nil || name != "" {
		t.Fatalf("expected empty name without error, got %q (%v)", name, err)
	}
}

func TestProfileStoreRepeatedMissFetchesOnce(t *testing.T) {
	src := profileSource()
	s := NewProfileStore(src)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	unknown := urn.New(urn.TypePlayer, 99)

	for i := 0; i < 3; i++ {
		if name, err := s.PlayerName(context.Background(), unknown, language.English, true); err != nil || name != "" {
			t.Fatalf("expected empty name without error, got %q (%v)", name, err)
		}
	}
	if src.Calls.Load() != 1 {
		t.Fatalf("expected 1 source call for repeated misses, got %d", src.Calls.Load())
	}

	now = now.Add(missRefetchInterval)
	if _, err := s.PlayerName(context.Background(), unknown, language.English, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.Calls.Load() != 2 {
		t.Fatalf("expected a reload once the interval passed, got %d calls", src.Calls.Load())
	}
}

func TestProfileStorePreloadSkipsHeldCompetitors(t *testing.T) {
	src := profileSource()
	s := NewProfileStore(src)
	ids := []urn.URN{celtics}

	if err := s.PreloadCompetitors(context.Background(), ids, language.English); err != nil {
		t.Fatalf("preload failed: %v", err)
	}
	if err := s.PreloadCompetitors(context.Background(), ids, language.English); err != nil {
		t.Fatalf("preload failed: %v", err)
	}
	if src.Calls.Load() != 1 {
		t.Fatalf("expected second preload to be skipped, got %d calls", src.Calls.Load())
	}
	if s.Len(language.English) != 1 {
		t.Fatalf("expected 1 competitor, got %d", s.Len(language.English))
	}
}

func TestProfileStoreFetchError(t *testing.T) {
	boom := errors.New("down")
	s := NewProfileStore(&teststubs.StubSource{Err: boom})
	if _, err := s.CompetitorName(context.Background(), celtics, language.English, true); !errors.Is(err, boom) {
		t.Fatalf("expected source error, got %v", err)
	}
	if err := s.PreloadCompetitors(context.Background(), []urn.URN{celtics}, language.English); !errors.Is(err, boom) {
		t.Fatalf("expected source error from preload, got %v", err)
	}
}
