package naming

import (
	"context"

	"golang.org/x/text/language"

	"github.com/preston-bernstein/market-names/internal/domain/markets"
	"github.com/preston-bernstein/market-names/internal/domain/urn"
)

// MarketCache serves market descriptions.
type MarketCache interface {
	// MarketDescription returns the description for a market and its variant.
	// With fetch set, locales not yet held are loaded first.
	MarketDescription(ctx context.Context, marketID int, specifiers map[string]string, locales []language.Tag, fetch bool) (markets.Description, error)
	// ReloadMarketDescription discards and refetches what is held for the market.
	ReloadMarketDescription(ctx context.Context, marketID int, specifiers map[string]string) error
}

// ProfileCache serves competitor and player names. A lookup that finds nothing
// returns "" and a nil error; fetch allows it to load from the source first.
type ProfileCache interface {
	CompetitorName(ctx context.Context, id urn.URN, locale language.Tag, fetch bool) (string, error)
	PlayerName(ctx context.Context, id urn.URN, locale language.Tag, fetch bool) (string, error)
	PreloadCompetitors(ctx context.Context, ids []urn.URN, locale language.Tag) error
}
