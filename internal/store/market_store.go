package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"
	"golang.org/x/text/language"

	"github.com/preston-bernstein/market-names/internal/domain/markets"
	"github.com/preston-bernstein/market-names/internal/logging"
	"github.com/preston-bernstein/market-names/internal/providers"
)

// ErrNotFound is returned when the store holds no entry for a key.
var ErrNotFound = errors.New("not found")

type marketKey struct {
	id      int
	variant string
}

func keyOf(d markets.Description) marketKey {
	return marketKey{id: d.ID, variant: d.Variant}
}

// MarketStore holds market descriptions keyed by id and variant, with the
// names of every locale fetched so far merged into one entry.
type MarketStore struct {
	source providers.MarketSource
	logger *slog.Logger
	group  singleflight.Group

	mu           sync.RWMutex
	descriptions map[marketKey]markets.Description
	locales      map[language.Tag]struct{}
}

// NewMarketStore constructs an empty MarketStore fed by source.
func NewMarketStore(source providers.MarketSource, logger *slog.Logger) *MarketStore {
	return &MarketStore{
		source:       source,
		logger:       logger,
		descriptions: make(map[marketKey]markets.Description),
		locales:      make(map[language.Tag]struct{}),
	}
}

// MarketDescription returns the description selected by marketID and the
// variant specifier, falling back to the plain market when the variant is
// unknown. With fetch set, locales not held yet are loaded first.
func (s *MarketStore) MarketDescription(ctx context.Context, marketID int, specifiers map[string]string, locales []language.Tag, fetch bool) (markets.Description, error) {
	if fetch {
		for _, locale := range locales {
			if s.hasLocale(locale) {
				continue
			}
			if err := s.Refresh(ctx, locale); err != nil {
				return markets.Description{}, err
			}
		}
	}

	variant := markets.Variant(specifiers)
	s.mu.RLock()
	desc, ok := s.descriptions[marketKey{id: marketID, variant: variant}]
	if !ok && variant != "" {
		desc, ok = s.descriptions[marketKey{id: marketID}]
	}
	s.mu.RUnlock()
	if !ok {
		return markets.Description{}, fmt.Errorf("market %d (variant %q): %w", marketID, variant, ErrNotFound)
	}
	return desc.Clone(), nil
}

// ReloadMarketDescription refetches every held locale and replaces all
// variants of marketID with what the source serves now.
func (s *MarketStore) ReloadMarketDescription(ctx context.Context, marketID int, specifiers map[string]string) error {
	fresh := make(map[marketKey]markets.Description)
	for _, locale := range s.Locales() {
		descs, err := s.source.FetchMarkets(ctx, locale)
		if err != nil {
			return fmt.Errorf("reloading market %d (%s): %w", marketID, locale, err)
		}
		for _, d := range descs {
			if d.ID != marketID {
				continue
			}
			fold(fresh, d)
		}
	}

	s.mu.Lock()
	for key := range s.descriptions {
		if key.id == marketID {
			delete(s.descriptions, key)
		}
	}
	for key, d := range fresh {
		s.descriptions[key] = d
	}
	s.mu.Unlock()

	logging.Info(s.logger, "market description reloaded",
		logging.FieldMarketID, marketID,
		logging.FieldSpecifiers, markets.FormatSpecifiers(specifiers),
		logging.FieldCount, len(fresh),
	)
	return nil
}

// Refresh fetches locale from the source and merges it into the held descriptions.
// Concurrent refreshes of the same locale share one fetch.
func (s *MarketStore) Refresh(ctx context.Context, locale language.Tag) error {
	_, err, _ := s.group.Do(locale.String(), func() (interface{}, error) {
		descs, err := s.source.FetchMarkets(ctx, locale)
		if err != nil {
			return nil, fmt.Errorf("fetching %s markets: %w", locale, err)
		}

		s.mu.Lock()
		for _, d := range descs {
			fold(s.descriptions, d)
		}
		s.locales[locale] = struct{}{}
		s.mu.Unlock()
		return len(descs), nil
	})
	return err
}

// Locales returns the locales loaded so far.
func (s *MarketStore) Locales() []language.Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]language.Tag, 0, len(s.locales))
	for locale := range s.locales {
		out = append(out, locale)
	}
	return out
}

// Len returns the number of held descriptions.
func (s *MarketStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.descriptions)
}

func (s *MarketStore) hasLocale(locale language.Tag) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.locales[locale]
	return ok
}

// fold merges d into dst without mutating values already stored there.
func fold(dst map[marketKey]markets.Description, d markets.Description) {
	key := keyOf(d)
	if cur, ok := dst[key]; ok {
		dst[key] = cur.Merge(d)
		return
	}
	dst[key] = d.Clone()
}
