package profiles

import (
	"strings"

	"github.com/preston-bernstein/market-names/internal/domain/urn"
)

// Competitor is a team or individual competitor profile in a single locale.
type Competitor struct {
	ID           urn.URN  `json:"id"`
	Name         string   `json:"name"`
	Abbreviation string   `json:"abbreviation,omitempty"`
	Country      string   `json:"country,omitempty"`
	Players      []Player `json:"players,omitempty"`
}

// Player is a player profile in a single locale.
type Player struct {
	ID           urn.URN `json:"id"`
	FirstName    string  `json:"firstName,omitempty"`
	LastName     string  `json:"lastName,omitempty"`
	Name         string  `json:"name,omitempty"`
	JerseyNumber string  `json:"jerseyNumber,omitempty"`
}

// DisplayName prefers the full name and falls back to first and last name.
func (p Player) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
