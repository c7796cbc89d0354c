package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/text/language"

	"github.com/preston-bernstein/market-names/internal/domain/markets"
	"github.com/preston-bernstein/market-names/internal/domain/profiles"
	"github.com/preston-bernstein/market-names/internal/domain/sportevents"
	"github.com/preston-bernstein/market-names/internal/domain/urn"
)

// StubMarketCache serves a fixed description, switching to Reloaded once
// ReloadMarketDescription has been called.
type StubMarketCache struct {
	Description markets.Description
	Reloaded    *markets.Description
	Err         error
	ReloadErr   error
	Calls       atomic.Int32
	Reloads     atomic.Int32
}

func (s *StubMarketCache) MarketDescription(ctx context.Context, marketID int, specifiers map[string]string, locales []language.Tag, fetch bool) (markets.Description, error) {
	s.Calls.Add(1)
	if s.Err != nil {
		return markets.Description{}, s.Err
	}
	if s.Reloaded != nil && s.Reloads.Load() > 0 {
		return *s.Reloaded, nil
	}
	return s.Description, nil
}

func (s *StubMarketCache) ReloadMarketDescription(ctx context.Context, marketID int, specifiers map[string]string) error {
	s.Reloads.Add(1)
	return s.ReloadErr
}

// StubProfileCache answers non-fetching lookups from Cached and fetching ones
// from Fetched, then Cached. PreloadCompetitors copies Preloaded into Cached.
type StubProfileCache struct {
	mu         sync.Mutex
	Cached     map[urn.URN]string
	Fetched    map[urn.URN]string
	Preloaded  map[urn.URN]string
	Err        error
	PreloadErr error

	Lookups      atomic.Int32
	FetchLookups atomic.Int32
	Preloads     atomic.Int32
	PreloadedIDs []urn.URN
}

func (s *StubProfileCache) CompetitorName(ctx context.Context, id urn.URN, locale language.Tag, fetch bool) (string, error) {
	return s.lookup(id, fetch)
}

func (s *StubProfileCache) PlayerName(ctx context.Context, id urn.URN, locale language.Tag, fetch bool) (string, error) {
	return s.lookup(id, fetch)
}

func (s *StubProfileCache) PreloadCompetitors(ctx context.Context, ids []urn.URN, locale language.Tag) error {
	s.Preloads.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.PreloadedIDs = append(s.PreloadedIDs, ids...)
	if s.PreloadErr != nil {
		return s.PreloadErr
	}
	if len(s.Preloaded) > 0 && s.Cached == nil {
		s.Cached = make(map[urn.URN]string, len(s.Preloaded))
	}
	for id, name := range s.Preloaded {
		s.Cached[id] = name
	}
	return nil
}

func (s *StubProfileCache) lookup(id urn.URN, fetch bool) (string, error) {
	s.Lookups.Add(1)
	if fetch {
		s.FetchLookups.Add(1)
	}
	if s.Err != nil {
		return "", s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if fetch {
		if name, ok := s.Fetched[id]; ok {
			return name, nil
		}
	}
	return s.Cached[id], nil
}

// StubSource is a test double for providers.Source.
type StubSource struct {
	Markets  map[language.Tag][]markets.Description
	Profiles map[language.Tag][]profiles.Competitor
	Events   []sportevents.SportEvent
	Err      error
	Calls    atomic.Int32
	Notify   chan struct{}
	once     sync.Once
}

func (s *StubSource) FetchMarkets(ctx context.Context, locale language.Tag) ([]markets.Description, error) {
	s.called()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Markets[locale], nil
}

func (s *StubSource) FetchProfiles(ctx context.Context, locale language.Tag) ([]profiles.Competitor, error) {
	s.called()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Profiles[locale], nil
}

func (s *StubSource) FetchEvents(ctx context.Context) ([]sportevents.SportEvent, error) {
	s.called()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Events, nil
}

func (s *StubSource) called() {
	s.Calls.Add(1)
	if s.Notify != nil {
		s.once.Do(func() { close(s.Notify) })
	}
}

// StubRefresher is a test double for poller.Refresher.
type StubRefresher struct {
	mu     sync.Mutex
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
	once   sync.Once
}

func (r *StubRefresher) Refresh(ctx context.Context) error {
	r.Calls.Add(1)
	if r.Notify != nil {
		r.once.Do(func() { close(r.Notify) })
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Err
}

// SetErr changes the error returned by later refreshes.
func (r *StubRefresher) SetErr(err error) {
	r.mu.Lock()
	r.Err = err
	r.mu.Unlock()
}
