package urn

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Entity types referenced by name descriptors and outcome ids.
const (
	TypeMatch       = "match"
	TypeTournament  = "tournament"
	TypeSeason      = "season"
	TypeCompetitor  = "competitor"
	TypeSimpleTeam  = "simple_team"
	TypePlayer      = "player"
	DefaultPrefix   = "sr"
	separator       = ":"
	expectedSegment = 3
)

// ErrInvalid is returned when a string is not a prefix:type:id identifier.
var ErrInvalid = errors.New("invalid urn")

// URN identifies a feed entity, e.g. sr:player:1234.
type URN struct {
	Prefix string `json:"prefix"`
	Type   string `json:"type"`
	ID     int64  `json:"id"`
}

// New builds a URN with the default prefix.
func New(entityType string, id int64) URN {
	return URN{Prefix: DefaultPrefix, Type: entityType, ID: id}
}

// Parse reads a URN in the prefix:type:id form.
func Parse(raw string) (URN, error) {
	parts := strings.SplitN(raw, separator, expectedSegment)
	if len(parts) != expectedSegment {
		return URN{}, fmt.Errorf("%w: %q", ErrInvalid, raw)
	}
	if parts[0] == "" || parts[1] == "" {
		return URN{}, fmt.Errorf("%w: %q has an empty segment", ErrInvalid, raw)
	}
	id, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return URN{}, fmt.Errorf("%w: %q has a non-numeric id", ErrInvalid, raw)
	}
	return URN{Prefix: parts[0], Type: parts[1], ID: id}, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(raw string) URN {
	id, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return id
}

// IsZero reports whether the URN is unset.
func (u URN) IsZero() bool {
	return u == URN{}
}

func (u URN) String() string {
	if u.IsZero() {
		return ""
	}
	return u.Prefix + separator + u.Type + separator + strconv.FormatInt(u.ID, 10)
}

// IsCompetitor reports whether the URN names a team-like competitor.
func (u URN) IsCompetitor() bool {
	return u.Type == TypeCompetitor || u.Type == TypeSimpleTeam
}

// IsPlayer reports whether the URN names a player profile.
func (u URN) IsPlayer() bool {
	return u.Type == TypePlayer
}
