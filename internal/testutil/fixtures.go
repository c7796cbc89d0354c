package testutil

import (
	"golang.org/x/text/language"

	"github.com/preston-bernstein/market-names/internal/domain/markets"
	"github.com/preston-bernstein/market-names/internal/domain/profiles"
	"github.com/preston-bernstein/market-names/internal/domain/sportevents"
	"github.com/preston-bernstein/market-names/internal/domain/urn"
)

// SampleMatch returns a two-competitor match with English names.
func SampleMatch(id int64) *sportevents.Match {
	return &sportevents.Match{
		EventID: urn.New(urn.TypeMatch, id),
		Home: sportevents.Competitor{
			ID:        urn.New(urn.TypeCompetitor, 1),
			Qualifier: sportevents.QualifierHome,
			Names:     map[language.Tag]string{language.English: "Home"},
		},
		Away: sportevents.Competitor{
			ID:        urn.New(urn.TypeCompetitor, 2),
			Qualifier: sportevents.QualifierAway,
			Names:     map[language.Tag]string{language.English: "Away"},
		},
	}
}

// SampleTotalDescription returns an over/under market description in one locale.
func SampleTotalDescription(locale language.Tag) markets.Description {
	return markets.Description{
		ID:    18,
		Names: map[language.Tag]string{locale: "Total {total}"},
		Outcomes: []markets.OutcomeDescription{
			{ID: "12", Names: map[language.Tag]string{locale: "over {total}"}},
			{ID: "13", Names: map[language.Tag]string{locale: "under {total}"}},
		},
	}
}

// SampleCompetitor returns a competitor profile with one player.
func SampleCompetitor(id int64, name string) profiles.Competitor {
	return profiles.Competitor{
		ID:   urn.New(urn.TypeCompetitor, id),
		Name: name,
		Players: []profiles.Player{
			{ID: urn.New(urn.TypePlayer, id*100), FirstName: "Jane", LastName: "Doe"},
		},
	}
}
