package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/text/language"

	"github.com/preston-bernstein/market-names/internal/domain/profiles"
	"github.com/preston-bernstein/market-names/internal/domain/urn"
	"github.com/preston-bernstein/market-names/internal/providers"
)

// missRefetchInterval is how long after a locale was loaded a fetching miss
// answers "" instead of loading it again.
const missRefetchInterval = 30 * time.Second

// ProfileStore holds competitor and player names per locale.
type ProfileStore struct {
	source providers.ProfileSource
	group  singleflight.Group
	now    func() time.Time

	mu          sync.RWMutex
	competitors map[language.Tag]map[urn.URN]string
	players     map[language.Tag]map[urn.URN]string
	fetchedAt   map[language.Tag]time.Time
}

// NewProfileStore constructs an empty ProfileStore fed by source.
func NewProfileStore(source providers.ProfileSource) *ProfileStore {
	return &ProfileStore{
		source:      source,
		now:         time.Now,
		competitors: make(map[language.Tag]map[urn.URN]string),
		players:     make(map[language.Tag]map[urn.URN]string),
		fetchedAt:   make(map[language.Tag]time.Time),
	}
}

// CompetitorName returns the competitor name in locale, or "" when unknown.
// With fetch set, a miss loads the locale from the source before giving up,
// unless the locale was loaded within missRefetchInterval.
func (s *ProfileStore) CompetitorName(ctx context.Context, id urn.URN, locale language.Tag, fetch bool) (string, error) {
	return s.name(ctx, s.competitors, id, locale, fetch)
}

// PlayerName returns the player name in locale, or "" when unknown.
func (s *ProfileStore) PlayerName(ctx context.Context, id urn.URN, locale language.Tag, fetch bool) (string, error) {
	return s.name(ctx, s.players, id, locale, fetch)
}

// PreloadCompetitors loads the competitors of ids with their players. Nothing
// is fetched when every competitor is already held for locale.
func (s *ProfileStore) PreloadCompetitors(ctx context.Context, ids []urn.URN, locale language.Tag) error {
	if s.holdsAll(ids, locale) {
		return nil
	}
	return s.Refresh(ctx, locale)
}

// Refresh replaces the names held for locale with what the source serves now.
func (s *ProfileStore) Refresh(ctx context.Context, locale language.Tag) error {
	_, err, _ := s.group.Do(locale.String(), func() (interface{}, error) {
		comps, err := s.source.FetchProfiles(ctx, locale)
		if err != nil {
			return nil, fmt.Errorf("fetching %s profiles: %w", locale, err)
		}
		s.set(locale, comps)
		return len(comps), nil
	})
	return err
}

// Len returns the number of competitors held for locale.
func (s *ProfileStore) Len(locale language.Tag) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.competitors[locale])
}

func (s *ProfileStore) set(locale language.Tag, comps []profiles.Competitor) {
	competitors := make(map[urn.URN]string, len(comps))
	players := make(map[urn.URN]string)
	for _, c := range comps {
		competitors[c.ID] = c.Name
		for _, p := range c.Players {
			players[p.ID] = p.DisplayName()
		}
	}

	s.mu.Lock()
	s.competitors[locale] = competitors
	s.players[locale] = players
	s.fetchedAt[locale] = s.now()
	s.mu.Unlock()
}

func (s *ProfileStore) name(ctx context.Context, names map[language.Tag]map[urn.URN]string, id urn.URN, locale language.Tag, fetch bool) (string, error) {
	if name := s.lookup(names, id, locale); name != "" || !fetch {
		return name, nil
	}
	if s.fetchedRecently(locale) {
		return "", nil
	}
	if err := s.Refresh(ctx, locale); err != nil {
		return "", err
	}
	return s.lookup(names, id, locale), nil
}

func (s *ProfileStore) fetchedRecently(locale language.Tag) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	at, ok := s.fetchedAt[locale]
	return ok && s.now().Sub(at) < missRefetchInterval
}

// lookup reads names under the lock; the outer map itself is never replaced.
func (s *ProfileStore) lookup(names map[language.Tag]map[urn.URN]string, id urn.URN, locale language.Tag) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return names[locale][id]
}

func (s *ProfileStore) holdsAll(ids []urn.URN, locale language.Tag) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	held := s.competitors[locale]
	for _, id := range ids {
		if _, ok := held[id]; !ok {
			return false
		}
	}
	return len(ids) > 0
}
