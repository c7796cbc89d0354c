package providers

import (
	"context"

	"golang.org/x/text/language"

	"github.com/preston-bernstein/market-names/internal/domain/markets"
	"github.com/preston-bernstein/market-names/internal/domain/profiles"
	"github.com/preston-bernstein/market-names/internal/domain/sportevents"
)

// MarketSource loads every market description published for a locale.
type MarketSource interface {
	FetchMarkets(ctx context.Context, locale language.Tag) ([]markets.Description, error)
}

// ProfileSource loads competitor profiles, with their players, for a locale.
type ProfileSource interface {
	FetchProfiles(ctx context.Context, locale language.Tag) ([]profiles.Competitor, error)
}

// EventSource loads the sport events markets can be attached to.
type EventSource interface {
	FetchEvents(ctx context.Context) ([]sportevents.SportEvent, error)
}

// Source combines all catalog capabilities.
type Source interface {
	MarketSource
	ProfileSource
	EventSource
}
