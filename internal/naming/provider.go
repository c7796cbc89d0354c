package naming

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/preston-bernstein/market-names/internal/domain/markets"
	"github.com/preston-bernstein/market-names/internal/domain/sportevents"
	"github.com/preston-bernstein/market-names/internal/domain/urn"
	"github.com/preston-bernstein/market-names/internal/logging"
	"github.com/preston-bernstein/market-names/internal/metrics"
)

const (
	compositeSeparator = ","
	// maxDescriptionReloads bounds the reloads spent looking for a missing outcome.
	maxDescriptionReloads = 1
)

var profileOutcomePrefixes = []string{
	urn.DefaultPrefix + ":" + urn.TypePlayer + ":",
	urn.DefaultPrefix + ":" + urn.TypeCompetitor + ":",
	urn.DefaultPrefix + ":" + urn.TypeSimpleTeam + ":",
}

// Provider produces localized names for one market of one sport event.
// It is safe for concurrent use.
type Provider struct {
	markets    MarketCache
	profiles   ProfileCache
	event      sportevents.SportEvent
	marketID   int
	specifiers map[string]string
	strategy   ExceptionHandlingStrategy
	flex       FlexScoreFormatter
	logger     *slog.Logger
	metrics    *metrics.Recorder
	preloaded  *localeSet
}

// MarketID returns the market the provider names.
func (p *Provider) MarketID() int {
	return p.marketID
}

// MarketName returns the market name in locale.
func (p *Provider) MarketName(ctx context.Context, locale language.Tag) (string, error) {
	start := time.Now()
	name, descriptor, err := p.marketName(ctx, locale)
	p.metrics.RecordNameGeneration(metrics.KindMarket, errorClass(err), time.Since(start))
	if err != nil {
		return p.report(ctx, "", locale, descriptor, err)
	}
	return name, nil
}

// OutcomeName returns the name of outcomeID in locale. Outcome ids that are
// player or competitor URNs, alone or comma-joined, are named from profiles.
func (p *Provider) OutcomeName(ctx context.Context, outcomeID string, locale language.Tag) (string, error) {
	start := time.Now()
	var (
		name, descriptor string
		err              error
	)
	if isProfileOutcome(outcomeID) {
		name, err = p.profileOutcomeName(ctx, outcomeID, locale)
	} else {
		name, descriptor, err = p.regularOutcomeName(ctx, outcomeID, locale)
	}
	p.metrics.RecordNameGeneration(metrics.KindOutcome, errorClass(err), time.Since(start))
	if err != nil {
		return p.report(ctx, outcomeID, locale, descriptor, err)
	}
	return name, nil
}

func (p *Provider) marketName(ctx context.Context, locale language.Tag) (string, string, error) {
	desc, err := p.description(ctx, locale)
	if err != nil {
		return "", "", err
	}
	descriptor, ok := desc.Name(locale)
	if !ok {
		return "", "", fmt.Errorf("%w: market %d has no %s name", ErrMissingData, p.marketID, locale)
	}
	name, err := p.render(ctx, descriptor, locale)
	return name, descriptor, err
}

func (p *Provider) regularOutcomeName(ctx context.Context, outcomeID string, locale language.Tag) (string, string, error) {
	desc, outcome, err := p.findOutcome(ctx, outcomeID, locale)
	if err != nil {
		return "", "", err
	}
	descriptor, ok := outcome.Name(locale)
	if !ok {
		return "", "", fmt.Errorf("%w: outcome %s has no %s name", ErrMissingData, outcomeID, locale)
	}
	if desc.IsFlexScore() {
		name, err := p.flex.FormatFlexScore(descriptor, p.specifiers)
		return name, descriptor, err
	}
	name, err := p.render(ctx, descriptor, locale)
	return name, descriptor, err
}

// findOutcome reloads the description once when the outcome is not in it.
func (p *Provider) findOutcome(ctx context.Context, outcomeID string, locale language.Tag) (markets.Description, markets.OutcomeDescription, error) {
	for attempt := 0; ; attempt++ {
		desc, err := p.description(ctx, locale)
		if err != nil {
			return markets.Description{}, markets.OutcomeDescription{}, err
		}
		if outcome, ok := desc.Outcome(outcomeID); ok {
			return desc, outcome, nil
		}

		var missing error
		if desc.HasOutcomes() {
			missing = fmt.Errorf("%w: market %d has no outcome %s", ErrMissingData, p.marketID, outcomeID)
		} else {
			missing = fmt.Errorf("%w: market %d has no outcome descriptions", ErrMissingData, p.marketID)
		}
		if attempt >= maxDescriptionReloads {
			return markets.Description{}, markets.OutcomeDescription{}, missing
		}

		logging.Info(p.logger, "reloading market description",
			logging.FieldMarketID, p.marketID,
			logging.FieldOutcomeID, outcomeID,
			logging.FieldLocale, locale.String(),
		)
		if err := p.markets.ReloadMarketDescription(ctx, p.marketID, p.specifiers); err != nil {
			return markets.Description{}, markets.OutcomeDescription{}, fmt.Errorf("%w: reloading market %d: %w", ErrUpstream, p.marketID, err)
		}
		p.metrics.RecordCacheReload(p.marketID)
	}
}

func (p *Provider) description(ctx context.Context, locale language.Tag) (markets.Description, error) {
	desc, err := p.markets.MarketDescription(ctx, p.marketID, p.specifiers, []language.Tag{locale}, true)
	if err != nil {
		return markets.Description{}, fmt.Errorf("%w: market %d description: %w", ErrUpstream, p.marketID, err)
	}
	return desc, nil
}

// render parses descriptor and evaluates its placeholders concurrently.
func (p *Provider) render(ctx context.Context, descriptor string, locale language.Tag) (string, error) {
	tmpl, err := ParseDescriptor(descriptor)
	if err != nil {
		return "", err
	}
	if len(tmpl.Placeholders) == 0 {
		return descriptor, nil
	}

	ec := expressionContext{specifiers: p.specifiers, event: p.event, profiles: p.profiles}
	exprs := make([]Expression, len(tmpl.Placeholders))
	for i, raw := range tmpl.Placeholders {
		op, operand, err := ParseExpression(raw)
		if err != nil {
			return "", err
		}
		if exprs[i], err = buildExpression(ec, op, operand); err != nil {
			return "", fmt.Errorf("placeholder %s: %w", raw, err)
		}
	}

	values := make([]string, len(exprs))
	var g errgroup.Group
	for i, expr := range exprs {
		g.Go(func() error {
			v, err := expr.evaluate(ctx, locale)
			if err != nil {
				return fmt.Errorf("placeholder %s: %w", tmpl.Placeholders[i], err)
			}
			values[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}
	return tmpl.Assemble(values), nil
}

func (p *Provider) profileOutcomeName(ctx context.Context, outcomeID string, locale language.Tag) (string, error) {
	segments := strings.Split(outcomeID, compositeSeparator)
	names := make([]string, 0, len(segments))
	for _, segment := range segments {
		id, err := urn.Parse(strings.TrimSpace(segment))
		if err != nil {
			return "", fmt.Errorf("%w: outcome segment %q: %w", ErrParsing, segment, err)
		}
		name, err := p.profileName(ctx, id, locale)
		if err != nil {
			return "", err
		}
		names = append(names, name)
	}
	return strings.Join(names, compositeSeparator), nil
}

type nameLookup func(ctx context.Context, id urn.URN, locale language.Tag, fetch bool) (string, error)

func (p *Provider) profileName(ctx context.Context, id urn.URN, locale language.Tag) (string, error) {
	if p.profiles == nil {
		return "", fmt.Errorf("%w: no profile cache to resolve %s", ErrMissingData, id)
	}
	var lookup nameLookup
	switch {
	case id.IsPlayer():
		lookup = p.profiles.PlayerName
	case id.IsCompetitor():
		lookup = p.profiles.CompetitorName
	default:
		return "", fmt.Errorf("%w: profile type %q of %s", ErrUnsupportedOperand, id.Type, id)
	}

	if name, err := lookup(ctx, id, locale, false); err == nil && name != "" {
		return name, nil
	}
	if p.preloaded.markIfAbsent(locale) {
		p.preloadCompetitors(ctx, locale)
	}

	name, err := lookup(ctx, id, locale, true)
	if err != nil {
		return "", fmt.Errorf("%w: resolving %s: %w", ErrUpstream, id, err)
	}
	if name == "" {
		return "", fmt.Errorf("%w: no %s name for %s", ErrMissingData, locale, id)
	}
	return name, nil
}

// preloadCompetitors warms the profile cache with the event's competitors and
// their players. Failures are logged; the caller still force-resolves.
func (p *Provider) preloadCompetitors(ctx context.Context, locale language.Tag) {
	comp, ok := p.event.(sportevents.Competition)
	if !ok {
		return
	}
	ids, err := comp.CompetitorIDs(ctx)
	if err == nil {
		err = p.profiles.PreloadCompetitors(ctx, ids, locale)
	}
	if err != nil {
		logging.Warn(p.logger, "competitor preload failed",
			logging.FieldEventID, p.event.ID().String(),
			logging.FieldLocale, locale.String(),
			"error", err,
		)
		return
	}
	p.metrics.RecordProfilePreload(locale.String())
}

// report logs a failure and applies the exception handling strategy.
func (p *Provider) report(ctx context.Context, outcomeID string, locale language.Tag, descriptor string, err error) (string, error) {
	var eventID string
	if p.event != nil {
		eventID = p.event.ID().String()
	}
	logging.Error(logging.FromContext(ctx, p.logger), "name generation failed", err,
		logging.FieldMarketID, p.marketID,
		logging.FieldSpecifiers, markets.FormatSpecifiers(p.specifiers),
		logging.FieldOutcomeID, outcomeID,
		logging.FieldLocale, locale.String(),
		logging.FieldDescriptor, descriptor,
		logging.FieldEventID, eventID,
		"class", errorClass(err),
	)
	if p.strategy != Throw {
		return "", nil
	}
	return "", &NameGenerationError{
		MarketID:   p.marketID,
		Specifiers: markets.CloneSpecifiers(p.specifiers),
		OutcomeID:  outcomeID,
		Descriptor: descriptor,
		Locale:     locale,
		Err:        err,
	}
}

func isProfileOutcome(outcomeID string) bool {
	for _, prefix := range profileOutcomePrefixes {
		if strings.HasPrefix(outcomeID, prefix) {
			return true
		}
	}
	return false
}
