package naming

import (
	"golang.org/x/text/language"

	"github.com/preston-bernstein/market-names/internal/domain/sportevents"
	"github.com/preston-bernstein/market-names/internal/domain/urn"
)

var (
	homeID = urn.New(urn.TypeCompetitor, 10)
	awayID = urn.New(urn.TypeCompetitor, 20)
)

func sampleMatch() *sportevents.Match {
	return &sportevents.Match{
		EventID: urn.New(urn.TypeMatch, 1),
		Home: sportevents.Competitor{
			ID:        homeID,
			Qualifier: sportevents.QualifierHome,
			Names:     map[language.Tag]string{language.English: "Boston Celtics"},
		},
		Away: sportevents.Competitor{
			ID:        awayID,
			Qualifier: sportevents.QualifierAway,
			Names:     map[language.Tag]string{language.English: "Los Angeles Lakers"},
		},
	}
}

func (s *localeSet) contains(locale language.Tag) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.seen[locale]
	return ok
}
