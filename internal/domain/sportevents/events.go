package sportevents

import (
	"context"

	"golang.org/x/text/language"

	"github.com/preston-bernstein/market-names/internal/domain/urn"
)

// Kind identifies the shape of a sport event.
type Kind string

const (
	KindMatch           Kind = "match"
	KindTournament      Kind = "tournament"
	KindSeason          Kind = "season"
	KindBasicTournament Kind = "basic_tournament"
)

// Qualifiers for the two sides of a match.
const (
	QualifierHome = "home"
	QualifierAway = "away"
)

// SportEvent is the context a market belongs to.
type SportEvent interface {
	ID() urn.URN
	Kind() Kind
	Name(ctx context.Context, locale language.Tag) (string, error)
}

// Competition is a sport event with an ordered list of competitors.
type Competition interface {
	SportEvent
	CompetitorIDs(ctx context.Context) ([]urn.URN, error)
	Competitors(ctx context.Context, locale language.Tag) ([]Competitor, error)
}

// Competitor is a participant as seen from one event.
type Competitor struct {
	ID        urn.URN                 `json:"id"`
	Qualifier string                  `json:"qualifier,omitempty"`
	Names     map[language.Tag]string `json:"names"`
}

// Name returns the localized competitor name or "".
func (c Competitor) Name(locale language.Tag) string {
	return c.Names[locale]
}

// Match is a head-to-head event between a home and an away competitor.
type Match struct {
	EventID urn.URN
	Names   map[language.Tag]string
	Home    Competitor
	Away    Competitor
}

func (m *Match) ID() urn.URN { return m.EventID }
func (m *Match) Kind() Kind  { return KindMatch }

// Name returns the localized match name. Matches usually carry none and are
// named after their competitors instead.
func (m *Match) Name(_ context.Context, locale language.Tag) (string, error) {
	return m.Names[locale], nil
}

func (m *Match) CompetitorIDs(context.Context) ([]urn.URN, error) {
	return []urn.URN{m.Home.ID, m.Away.ID}, nil
}

func (m *Match) Competitors(context.Context, language.Tag) ([]Competitor, error) {
	return []Competitor{m.Home, m.Away}, nil
}

// Tournament is a named event without a fixed competitor list.
type Tournament struct {
	EventID urn.URN
	Names   map[language.Tag]string
}

func (t *Tournament) ID() urn.URN { return t.EventID }
func (t *Tournament) Kind() Kind  { return KindTournament }

func (t *Tournament) Name(_ context.Context, locale language.Tag) (string, error) {
	return t.Names[locale], nil
}

// Stage backs seasons and basic tournaments, both of which list their competitors.
type Stage struct {
	EventID      urn.URN
	StageKind    Kind
	Names        map[language.Tag]string
	Participants []Competitor
}

// NewSeason builds a season stage.
func NewSeason(id urn.URN, names map[language.Tag]string, competitors []Competitor) *Stage {
	return &Stage{EventID: id, StageKind: KindSeason, Names: names, Participants: competitors}
}

// NewBasicTournament builds a basic tournament stage.
func NewBasicTournament(id urn.URN, names map[language.Tag]string, competitors []Competitor) *Stage {
	return &Stage{EventID: id, StageKind: KindBasicTournament, Names: names, Participants: competitors}
}

func (s *Stage) ID() urn.URN { return s.EventID }
func (s *Stage) Kind() Kind  { return s.StageKind }

func (s *Stage) Name(_ context.Context, locale language.Tag) (string, error) {
	return s.Names[locale], nil
}

func (s *Stage) CompetitorIDs(context.Context) ([]urn.URN, error) {
	ids := make([]urn.URN, len(s.Participants))
	for i, c := range s.Participants {
		ids[i] = c.ID
	}
	return ids, nil
}

func (s *Stage) Competitors(context.Context, language.Tag) ([]Competitor, error) {
	return append([]Competitor(nil), s.Participants...), nil
}

var (
	_ Competition = (*Match)(nil)
	_ Competition = (*Stage)(nil)
	_ SportEvent  = (*Tournament)(nil)
)
