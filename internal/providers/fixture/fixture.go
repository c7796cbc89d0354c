package fixture

import (
	"context"

	"golang.org/x/text/language"

	"github.com/preston-bernstein/market-names/internal/domain/markets"
	"github.com/preston-bernstein/market-names/internal/domain/profiles"
	"github.com/preston-bernstein/market-names/internal/domain/sportevents"
	"github.com/preston-bernstein/market-names/internal/domain/urn"
	"github.com/preston-bernstein/market-names/internal/providers"
)

// Name identifies the fixture source in logs and metrics.
const Name = "fixture"

// Source returns a static catalog useful for local testing and bootstrapping.
type Source struct {
	markets  []markets.Description
	profiles map[language.Tag][]profiles.Competitor
	events   []sportevents.SportEvent
}

// New creates a fixture source with English and German entries.
func New() *Source {
	return &Source{
		markets:  sampleMarkets(),
		profiles: sampleProfiles(),
		events:   sampleEvents(),
	}
}

// FetchMarkets returns the descriptions that carry a name in locale, restricted to that locale.
func (s *Source) FetchMarkets(ctx context.Context, locale language.Tag) ([]markets.Description, error) {
	_ = ctx
	out := make([]markets.Description, 0, len(s.markets))
	for _, desc := range s.markets {
		if _, ok := desc.Names[locale]; !ok {
			continue
		}
		out = append(out, restrict(desc, locale))
	}
	if len(out) == 0 {
		return nil, &providers.NotFoundError{Source: Name, Kind: "markets", Key: locale.String()}
	}
	return out, nil
}

// FetchProfiles returns competitor profiles with their players.
func (s *Source) FetchProfiles(ctx context.Context, locale language.Tag) ([]profiles.Competitor, error) {
	_ = ctx
	comps, ok := s.profiles[locale]
	if !ok {
		return nil, &providers.NotFoundError{Source: Name, Kind: "profiles", Key: locale.String()}
	}
	return append([]profiles.Competitor(nil), comps...), nil
}

// FetchEvents returns the sample sport events.
func (s *Source) FetchEvents(ctx context.Context) ([]sportevents.SportEvent, error) {
	_ = ctx
	return append([]sportevents.SportEvent(nil), s.events...), nil
}

func restrict(desc markets.Description, locale language.Tag) markets.Description {
	out := desc.Clone()
	out.Names = map[language.Tag]string{locale: desc.Names[locale]}
	for i, outcome := range out.Outcomes {
		out.Outcomes[i].Names = map[language.Tag]string{locale: outcome.Names[locale]}
	}
	return out
}

func names(en, de string) map[language.Tag]string {
	return map[language.Tag]string{language.English: en, language.German: de}
}

func outcome(id, en, de string) markets.OutcomeDescription {
	return markets.OutcomeDescription{ID: id, Names: names(en, de)}
}

func sampleMarkets() []markets.Description {
	return []markets.Description{
		{
			ID:    1,
			Names: names("1x2", "1x2"),
			Outcomes: []markets.OutcomeDescription{
				outcome("1", "{$competitor1}", "{$competitor1}"),
				outcome("2", "draw", "unentschieden"),
				outcome("3", "{$competitor2}", "{$competitor2}"),
			},
		},
		{
			ID:    16,
			Names: names("Handicap {hcp}", "Handicap {hcp}"),
			Outcomes: []markets.OutcomeDescription{
				outcome("1714", "{$competitor1} ({+hcp})", "{$competitor1} ({+hcp})"),
				outcome("1715", "{$competitor2} ({-hcp})", "{$competitor2} ({-hcp})"),
			},
		},
		{
			ID:    18,
			Names: names("Total", "Total"),
			Outcomes: []markets.OutcomeDescription{
				outcome("12", "over {total}", "über {total}"),
				outcome("13", "under {total}", "unter {total}"),
			},
		},
		{
			ID:    41,
			Names: names("Correct score (flex scorer) {score}", "Genaues Ergebnis (flex) {score}"),
			Outcomes: []markets.OutcomeDescription{
				outcome("110", "0:0", "0:0"),
				outcome("114", "1:0", "1:0"),
				outcome("116", "0:1", "0:1"),
				outcome("122", "other", "andere"),
			},
			Attributes: []markets.Attribute{{Name: markets.AttributeFlexScore, Description: "outcome names are relative to the current score"}},
		},
		{
			ID:    40,
			Names: names("Anytime goalscorer", "Torschütze"),
		},
		{
			ID:    902,
			Names: names("{!player} total points", "{!player} Gesamtpunkte"),
			Outcomes: []markets.OutcomeDescription{
				outcome("12", "over {total}", "über {total}"),
				outcome("13", "under {total}", "unter {total}"),
			},
		},
		{
			ID:    60,
			Names: names("{$event} - 1st half winner", "{$event} - Sieger 1. Halbzeit"),
			Outcomes: []markets.OutcomeDescription{
				outcome("1", "{$competitor1}", "{$competitor1}"),
				outcome("3", "{$competitor2}", "{$competitor2}"),
			},
		},
	}
}

var (
	celtics = urn.New(urn.TypeCompetitor, 1)
	lakers  = urn.New(urn.TypeCompetitor, 2)
)

func sampleProfiles() map[language.Tag][]profiles.Competitor {
	players := func() ([]profiles.Player, []profiles.Player) {
		return []profiles.Player{
				{ID: urn.New(urn.TypePlayer, 1), FirstName: "Jane", LastName: "Doe", JerseyNumber: "7"},
			}, []profiles.Player{
				{ID: urn.New(urn.TypePlayer, 2), FirstName: "John", LastName: "Smith", JerseyNumber: "23"},
			}
	}
	bosEN, lalEN := players()
	bosDE, lalDE := players()
	return map[language.Tag][]profiles.Competitor{
		language.English: {
			{ID: celtics, Name: "Boston Celtics", Abbreviation: "BOS", Country: "USA", Players: bosEN},
			{ID: lakers, Name: "Los Angeles Lakers", Abbreviation: "LAL", Country: "USA", Players: lalEN},
		},
		language.German: {
			{ID: celtics, Name: "Boston Celtics", Abbreviation: "BOS", Country: "Vereinigte Staaten", Players: bosDE},
			{ID: lakers, Name: "Los Angeles Lakers", Abbreviation: "LAL", Country: "Vereinigte Staaten", Players: lalDE},
		},
	}
}

func sampleEvents() []sportevents.SportEvent {
	return []sportevents.SportEvent{
		&sportevents.Match{
			EventID: urn.New(urn.TypeMatch, 1),
			Home: sportevents.Competitor{
				ID:        celtics,
				Qualifier: sportevents.QualifierHome,
				Names:     names("Boston Celtics", "Boston Celtics"),
			},
			Away: sportevents.Competitor{
				ID:        lakers,
				Qualifier: sportevents.QualifierAway,
				Names:     names("Los Angeles Lakers", "Los Angeles Lakers"),
			},
		},
		&sportevents.Tournament{
			EventID: urn.New(urn.TypeTournament, 1),
			Names:   names("NBA Cup", "NBA-Pokal"),
		},
		sportevents.NewSeason(urn.New(urn.TypeSeason, 1), names("NBA 2024/25", "NBA 2024/25"), []sportevents.Competitor{
			{ID: celtics, Names: names("Boston Celtics", "Boston Celtics")},
			{ID: lakers, Names: names("Los Angeles Lakers", "Los Angeles Lakers")},
		}),
	}
}

var _ providers.Source = (*Source)(nil)
