package naming

import (
	"errors"
	"testing"
)

func TestScoreFormatterShiftsByCurrentScore(t *testing.T) {
	f := ScoreFormatter{}
	tests := []struct {
		name  string
		score string
		want  string
	}{
		{name: "1:0", score: "2:2", want: "3:2"},
		{name: "0:0", score: "1:3", want: "1:3"},
		{name: " 2 : 1 ", score: "0:0", want: "2:1"},
		{name: "other", score: "1:1", want: "other"},
	}
	for _, tt := range tests {
		got, err := f.FormatFlexScore(tt.name, map[string]string{"score": tt.score})
		if err != nil {
			t.Fatalf("FormatFlexScore(%q, %s) unexpected error: %v", tt.name, tt.score, err)
		}
		if got != tt.want {
			t.Fatalf("FormatFlexScore(%q, %s) = %q, want %q", tt.name, tt.score, got, tt.want)
		}
	}
}

func TestScoreFormatterRequiresScoreSpecifier(t *testing.T) {
	f := ScoreFormatter{}
	if _, err := f.FormatFlexScore("1:0", map[string]string{}); !errors.Is(err, ErrMissingData) {
		t.Fatalf("expected ErrMissingData, got %v", err)
	}
	if _, err := f.FormatFlexScore("1:0", map[string]string{"score": "two-two"}); !errors.Is(err, ErrParsing) {
		t.Fatalf("expected ErrParsing, got %v", err)
	}
}
