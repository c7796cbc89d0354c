package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/preston-bernstein/market-names/internal/logging"
	"github.com/preston-bernstein/market-names/internal/providers"
)

// Catalog groups the stores fed by one source and refreshes them together.
type Catalog struct {
	Markets  *MarketStore
	Profiles *ProfileStore
	Events   *EventStore

	locales []language.Tag
	logger  *slog.Logger
}

// NewCatalog builds the stores for source. Refresh loads locales eagerly.
func NewCatalog(source providers.Source, locales []language.Tag, logger *slog.Logger) *Catalog {
	return &Catalog{
		Markets:  NewMarketStore(source, logger),
		Profiles: NewProfileStore(source),
		Events:   NewEventStore(source),
		locales:  append([]language.Tag(nil), locales...),
		logger:   logger,
	}
}

// Refresh reloads events and every configured locale. It keeps going past
// failures and returns them joined.
func (c *Catalog) Refresh(ctx context.Context) error {
	var errs []error
	if err := c.Events.Refresh(ctx); err != nil {
		errs = append(errs, fmt.Errorf("events: %w", err))
	}
	for _, locale := range c.locales {
		if err := c.Markets.Refresh(ctx, locale); err != nil {
			errs = append(errs, err)
		}
		if err := c.Profiles.Refresh(ctx, locale); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	logging.Info(c.logger, "catalog refreshed",
		"events", len(c.Events.ListEvents()),
		"markets", c.Markets.Len(),
		logging.FieldCount, len(c.locales),
	)
	return nil
}
