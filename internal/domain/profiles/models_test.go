package profiles

import "testing"

func TestPlayerDisplayName(t *testing.T) {
	tests := []struct {
		player Player
		want   string
	}{
		{player: Player{Name: "Jayson Tatum", FirstName: "J", LastName: "T"}, want: "Jayson Tatum"},
		{player: Player{FirstName: "Jaylen", LastName: "Brown"}, want: "Jaylen Brown"},
		{player: Player{LastName: "Nance"}, want: "Nance"},
		{player: Player{}, want: ""},
	}

	for _, tt := range tests {
		if got := tt.player.DisplayName(); got != tt.want {
			t.Fatalf("DisplayName() = %q, want %q", got, tt.want)
		}
	}
}
