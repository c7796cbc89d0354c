package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/market-names/internal/domain/markets"
	"github.com/preston-bernstein/market-names/internal/domain/profiles"
	"github.com/preston-bernstein/market-names/internal/domain/sportevents"
	"github.com/preston-bernstein/market-names/internal/providers"
)

// SourceName identifies the filesystem catalog in logs and metrics.
const SourceName = "catalog"

// FSSource loads the catalog from YAML files rooted at basePath.
type FSSource struct {
	basePath string
}

// NewFSSource constructs an FS-backed catalog source.
func NewFSSource(basePath string) *FSSource {
	return &FSSource{basePath: basePath}
}

// FetchMarkets reads {basePath}/markets/{locale}.yaml.
func (s *FSSource) FetchMarkets(ctx context.Context, locale language.Tag) ([]markets.Description, error) {
	var payload marketsFile
	if err := s.decode(ctx, MarketsPath(s.basePath, locale), "markets", locale.String(), &payload); err != nil {
		return nil, err
	}
	out := make([]markets.Description, 0, len(payload.Markets))
	for _, rec := range payload.Markets {
		desc, err := mapMarket(rec, locale)
		if err != nil {
			return nil, err
		}
		out = append(out, desc)
	}
	return out, nil
}

// FetchProfiles reads {basePath}/profiles/{locale}.yaml.
func (s *FSSource) FetchProfiles(ctx context.Context, locale language.Tag) ([]profiles.Competitor, error) {
	var payload profilesFile
	if err := s.decode(ctx, ProfilesPath(s.basePath, locale), "profiles", locale.String(), &payload); err != nil {
		return nil, err
	}
	out := make([]profiles.Competitor, 0, len(payload.Competitors))
	for _, rec := range payload.Competitors {
		comp, err := mapCompetitor(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, comp)
	}
	return out, nil
}

// FetchEvents reads {basePath}/events.yaml.
func (s *FSSource) FetchEvents(ctx context.Context) ([]sportevents.SportEvent, error) {
	var payload eventsFileRecord
	if err := s.decode(ctx, EventsPath(s.basePath), "events", "", &payload); err != nil {
		return nil, err
	}
	out := make([]sportevents.SportEvent, 0, len(payload.Events))
	for _, rec := range payload.Events {
		event, err := mapEvent(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, event)
	}
	return out, nil
}

func (s *FSSource) decode(ctx context.Context, path, kind, key string, payload any) error {
	if s == nil {
		return errors.New("catalog source not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &providers.NotFoundError{Source: SourceName, Kind: kind, Key: key}
		}
		return err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(payload); err != nil {
		return fmt.Errorf("%w: decoding %s: %w", ErrInvalidCatalog, path, err)
	}
	return nil
}

var _ providers.Source = (*FSSource)(nil)
