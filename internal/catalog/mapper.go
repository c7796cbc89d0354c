package catalog

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/language"

	"github.com/preston-bernstein/market-names/internal/domain/markets"
	"github.com/preston-bernstein/market-names/internal/domain/profiles"
	"github.com/preston-bernstein/market-names/internal/domain/sportevents"
	"github.com/preston-bernstein/market-names/internal/domain/urn"
)

// ErrInvalidCatalog is returned when a catalog file decodes but holds unusable entries.
var ErrInvalidCatalog = errors.New("invalid catalog")

func mapMarket(rec marketRecord, locale language.Tag) (markets.Description, error) {
	if rec.ID <= 0 {
		return markets.Description{}, fmt.Errorf("%w: market id %d", ErrInvalidCatalog, rec.ID)
	}
	desc := markets.Description{
		ID:      rec.ID,
		Variant: rec.Variant,
		Names:   map[language.Tag]string{locale: rec.Name},
	}
	if rec.Outcomes != nil {
		desc.Outcomes = make([]markets.OutcomeDescription, 0, len(rec.Outcomes))
		for _, o := range rec.Outcomes {
			if o.ID == "" {
				return markets.Description{}, fmt.Errorf("%w: market %d has an outcome without id", ErrInvalidCatalog, rec.ID)
			}
			desc.Outcomes = append(desc.Outcomes, markets.OutcomeDescription{
				ID:    o.ID,
				Names: map[language.Tag]string{locale: o.Name},
			})
		}
	}
	for _, a := range rec.Attributes {
		desc.Attributes = append(desc.Attributes, markets.Attribute{Name: a.Name, Description: a.Description})
	}
	return desc, nil
}

func toMarketRecord(desc markets.Description, locale language.Tag) marketRecord {
	rec := marketRecord{ID: desc.ID, Variant: desc.Variant, Name: desc.Names[locale]}
	if desc.Outcomes != nil {
		rec.Outcomes = make([]outcomeRecord, 0, len(desc.Outcomes))
		for _, o := range desc.Outcomes {
			rec.Outcomes = append(rec.Outcomes, outcomeRecord{ID: o.ID, Name: o.Names[locale]})
		}
	}
	for _, a := range desc.Attributes {
		rec.Attributes = append(rec.Attributes, attributeRecord{Name: a.Name, Description: a.Description})
	}
	return rec
}

func mapCompetitor(rec competitorRecord) (profiles.Competitor, error) {
	id, err := urn.Parse(rec.ID)
	if err != nil {
		return profiles.Competitor{}, fmt.Errorf("%w: competitor: %w", ErrInvalidCatalog, err)
	}
	comp := profiles.Competitor{
		ID:           id,
		Name:         rec.Name,
		Abbreviation: rec.Abbreviation,
		Country:      rec.Country,
	}
	for _, p := range rec.Players {
		pid, err := urn.Parse(p.ID)
		if err != nil {
			return profiles.Competitor{}, fmt.Errorf("%w: player of %s: %w", ErrInvalidCatalog, rec.ID, err)
		}
		comp.Players = append(comp.Players, profiles.Player{
			ID:           pid,
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			Name:         p.Name,
			JerseyNumber: p.JerseyNumber,
		})
	}
	return comp, nil
}

func toCompetitorRecord(comp profiles.Competitor) competitorRecord {
	rec := competitorRecord{
		ID:           comp.ID.String(),
		Name:         comp.Name,
		Abbreviation: comp.Abbreviation,
		Country:      comp.Country,
	}
	for _, p := range comp.Players {
		rec.Players = append(rec.Players, playerRecord{
			ID:           p.ID.String(),
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			Name:         p.Name,
			JerseyNumber: p.JerseyNumber,
		})
	}
	return rec
}

func mapEvent(rec eventRecord) (sportevents.SportEvent, error) {
	id, err := urn.Parse(rec.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: event: %w", ErrInvalidCatalog, err)
	}
	names, err := mapNames(rec.Names)
	if err != nil {
		return nil, fmt.Errorf("%w: event %s: %w", ErrInvalidCatalog, rec.ID, err)
	}
	comps := make([]sportevents.Competitor, 0, len(rec.Competitors))
	for _, c := range rec.Competitors {
		cid, err := urn.Parse(c.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: competitor of %s: %w", ErrInvalidCatalog, rec.ID, err)
		}
		cnames, err := mapNames(c.Names)
		if err != nil {
			return nil, fmt.Errorf("%w: competitor %s: %w", ErrInvalidCatalog, c.ID, err)
		}
		comps = append(comps, sportevents.Competitor{ID: cid, Qualifier: c.Qualifier, Names: cnames})
	}

	switch sportevents.Kind(rec.Kind) {
	case sportevents.KindMatch:
		if len(comps) != 2 {
			return nil, fmt.Errorf("%w: match %s needs 2 competitors, has %d", ErrInvalidCatalog, rec.ID, len(comps))
		}
		home, away := comps[0], comps[1]
		if home.Qualifier == sportevents.QualifierAway || away.Qualifier == sportevents.QualifierHome {
			home, away = away, home
		}
		return &sportevents.Match{EventID: id, Names: names, Home: home, Away: away}, nil
	case sportevents.KindTournament:
		return &sportevents.Tournament{EventID: id, Names: names}, nil
	case sportevents.KindSeason:
		return sportevents.NewSeason(id, names, comps), nil
	case sportevents.KindBasicTournament:
		return sportevents.NewBasicTournament(id, names, comps), nil
	default:
		return nil, fmt.Errorf("%w: event %s has unknown kind %q", ErrInvalidCatalog, rec.ID, rec.Kind)
	}
}

func toEventRecord(event sportevents.SportEvent) (eventRecord, error) {
	rec := eventRecord{ID: event.ID().String(), Kind: string(event.Kind())}
	var comps []sportevents.Competitor
	switch e := event.(type) {
	case *sportevents.Match:
		rec.Names = nameRecords(e.Names)
		comps = []sportevents.Competitor{e.Home, e.Away}
	case *sportevents.Tournament:
		rec.Names = nameRecords(e.Names)
	case *sportevents.Stage:
		rec.Names = nameRecords(e.Names)
		comps = e.Participants
	default:
		return eventRecord{}, fmt.Errorf("%w: cannot export event type %T", ErrInvalidCatalog, event)
	}
	for _, c := range comps {
		rec.Competitors = append(rec.Competitors, participantRecord{
			ID:        c.ID.String(),
			Qualifier: c.Qualifier,
			Names:     nameRecords(c.Names),
		})
	}
	return rec, nil
}

func mapNames(in map[string]string) (map[language.Tag]string, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make(map[language.Tag]string, len(in))
	for raw, name := range in {
		tag, err := language.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", raw, err)
		}
		out[tag] = name
	}
	return out, nil
}

func nameRecords(in map[language.Tag]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for tag, name := range in {
		out[tag.String()] = name
	}
	return out
}

func sortMarkets(recs []marketRecord) {
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].ID != recs[j].ID {
			return recs[i].ID < recs[j].ID
		}
		return recs[i].Variant < recs[j].Variant
	})
}
