package urn

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want URN
	}{
		{in: "sr:player:1234", want: URN{Prefix: "sr", Type: TypePlayer, ID: 1234}},
		{in: "sr:simple_team:9", want: URN{Prefix: "sr", Type: TypeSimpleTeam, ID: 9}},
		{in: "vf:match:42", want: URN{Prefix: "vf", Type: TypeMatch, ID: 42}},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%s) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("Parse(%s) = %+v, want %+v", tt.in, got, tt.want)
		}
		if got.String() != tt.in {
			t.Fatalf("expected round trip to %s, got %s", tt.in, got.String())
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "sr:player", "sr:player:abc", ":player:1", "sr::1", "1234"} {
		if _, err := Parse(in); !errors.Is(err, ErrInvalid) {
			t.Fatalf("Parse(%q) expected ErrInvalid, got %v", in, err)
		}
	}
}

func TestKindHelpers(t *testing.T) {
	if !New(TypeCompetitor, 1).IsCompetitor() || !New(TypeSimpleTeam, 1).IsCompetitor() {
		t.Fatalf("expected competitor and simple_team to be competitors")
	}
	if New(TypePlayer, 1).IsCompetitor() {
		t.Fatalf("player is not a competitor")
	}
	if !New(TypePlayer, 1).IsPlayer() {
		t.Fatalf("expected player urn")
	}
	if !(URN{}).IsZero() || (URN{}).String() != "" {
		t.Fatalf("expected zero urn to render empty")
	}
}

func TestMustParsePanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	MustParse("nope")
}
