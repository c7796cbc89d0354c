package naming

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/preston-bernstein/market-names/internal/domain/sportevents"
	"github.com/preston-bernstein/market-names/internal/domain/urn"
)

// Entity operands understood by the $ operator.
const (
	entityEvent       = "event"
	entityCompetitor1 = "competitor1"
	entityCompetitor2 = "competitor2"
)

// Expression is one evaluable placeholder. The set of implementations is closed.
type Expression interface {
	evaluate(ctx context.Context, locale language.Tag) (string, error)
}

// expressionContext is what a provider lends to the expressions it builds.
type expressionContext struct {
	specifiers map[string]string
	event      sportevents.SportEvent
	profiles   ProfileCache
}

func buildExpression(ec expressionContext, op Operator, operand string) (Expression, error) {
	switch op {
	case OperatorNone:
		o, err := BuildOperand(ec.specifiers, operand)
		if err != nil {
			return nil, err
		}
		return CardinalExpression{operand: o}, nil
	case OperatorPlus, OperatorMinus:
		o, err := BuildOperand(ec.specifiers, operand)
		if err != nil {
			return nil, err
		}
		return SignedExpression{operand: o, negate: op == OperatorMinus}, nil
	case OperatorEntity:
		return EntityExpression{property: operand, event: ec.event, profiles: ec.profiles}, nil
	case OperatorProfile:
		o, err := BuildOperand(ec.specifiers, operand)
		if err != nil {
			return nil, err
		}
		return ProfileExpression{operand: o, profiles: ec.profiles}, nil
	case OperatorOrdinal:
		return OrdinalExpression{operand: operand}, nil
	default:
		return nil, fmt.Errorf("%w: operator %s", ErrUnsupportedOperand, op)
	}
}

// CardinalExpression renders the operand verbatim.
type CardinalExpression struct {
	operand Operand
}

func (e CardinalExpression) evaluate(context.Context, language.Tag) (string, error) {
	return e.operand.StringValue()
}

// SignedExpression renders a number with an explicit sign, negating it first for the - operator.
type SignedExpression struct {
	operand Operand
	negate  bool
}

func (e SignedExpression) evaluate(context.Context, language.Tag) (string, error) {
	v, err := e.operand.DecimalValue()
	if err != nil {
		return "", err
	}
	if e.negate {
		v = v.Neg()
	}
	return withSign(v), nil
}

func withSign(v decimal.Decimal) string {
	if v.IsPositive() {
		return "+" + v.String()
	}
	return v.String()
}

// EntityExpression names the sport event or one of its competitors.
type EntityExpression struct {
	property string
	event    sportevents.SportEvent
	profiles ProfileCache
}

func (e EntityExpression) evaluate(ctx context.Context, locale language.Tag) (string, error) {
	if e.event == nil {
		return "", fmt.Errorf("%w: {$%s} needs a sport event", ErrMissingData, e.property)
	}
	switch e.property {
	case entityEvent:
		return e.eventName(ctx, locale)
	case entityCompetitor1:
		return e.competitorName(ctx, locale, 0)
	case entityCompetitor2:
		return e.competitorName(ctx, locale, 1)
	default:
		return "", fmt.Errorf("%w: entity %q", ErrUnsupportedOperand, e.property)
	}
}

func (e EntityExpression) eventName(ctx context.Context, locale language.Tag) (string, error) {
	if comp, ok := e.event.(sportevents.Competition); ok && e.event.Kind() == sportevents.KindMatch {
		ids, err := comp.CompetitorIDs(ctx)
		if err != nil {
			return "", fmt.Errorf("%w: competitors of %s: %w", ErrUpstream, e.event.ID(), err)
		}
		if len(ids) == 2 {
			home, err := e.competitorName(ctx, locale, 0)
			if err != nil {
				return "", err
			}
			away, err := e.competitorName(ctx, locale, 1)
			if err != nil {
				return "", err
			}
			return home + " vs " + away, nil
		}
	}

	name, err := e.event.Name(ctx, locale)
	if err != nil {
		return "", fmt.Errorf("%w: name of %s: %w", ErrUpstream, e.event.ID(), err)
	}
	if name == "" {
		return "", fmt.Errorf("%w: %s has no %s name", ErrMissingData, e.event.ID(), locale)
	}
	return name, nil
}

func (e EntityExpression) competitorName(ctx context.Context, locale language.Tag, idx int) (string, error) {
	comp, ok := e.event.(sportevents.Competition)
	if !ok {
		return "", fmt.Errorf("%w: %s %s has no competitors", ErrUnsupportedOperand, e.event.Kind(), e.event.ID())
	}
	ids, err := comp.CompetitorIDs(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: competitors of %s: %w", ErrUpstream, e.event.ID(), err)
	}
	if len(ids) <= idx {
		return "", fmt.Errorf("%w: competitor%d requires at least %d competitors, %s has %d",
			ErrUnsupportedOperand, idx+1, idx+1, e.event.ID(), len(ids))
	}

	if e.profiles != nil {
		// A cache miss or lookup failure falls through to the event's own data.
		if name, err := e.profiles.CompetitorName(ctx, ids[idx], locale, false); err == nil && name != "" {
			return name, nil
		}
	}

	competitors, err := comp.Competitors(ctx, locale)
	if err != nil {
		return "", fmt.Errorf("%w: competitors of %s: %w", ErrUpstream, e.event.ID(), err)
	}
	if idx < len(competitors) {
		if name := competitors[idx].Name(locale); name != "" {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: no %s name for competitor %s", ErrMissingData, locale, ids[idx])
}

// ProfileExpression resolves a player or competitor URN held in a specifier.
type ProfileExpression struct {
	operand  Operand
	profiles ProfileCache
}

func (e ProfileExpression) evaluate(ctx context.Context, locale language.Tag) (string, error) {
	raw, err := e.operand.StringValue()
	if err != nil {
		return "", err
	}
	id, err := urn.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrParsing, err)
	}
	if e.profiles == nil {
		return "", fmt.Errorf("%w: no profile cache to resolve %s", ErrMissingData, id)
	}

	var name string
	switch {
	case id.IsPlayer():
		name, err = e.profiles.PlayerName(ctx, id, locale, true)
	case id.IsCompetitor():
		name, err = e.profiles.CompetitorName(ctx, id, locale, true)
	default:
		return "", fmt.Errorf("%w: profile type %q of %s", ErrUnsupportedOperand, id.Type, id)
	}
	if err != nil {
		return "", fmt.Errorf("%w: resolving %s: %w", ErrUpstream, id, err)
	}
	if name == "" {
		return "", fmt.Errorf("%w: no %s name for %s", ErrMissingData, locale, id)
	}
	return name, nil
}

// OrdinalExpression stands for the % operator, which has no rendering.
type OrdinalExpression struct {
	operand string
}

func (e OrdinalExpression) evaluate(context.Context, language.Tag) (string, error) {
	return "", fmt.Errorf("%w: ordinal expression {%%%s}", ErrUnsupportedOperand, e.operand)
}
