package naming

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/preston-bernstein/market-names/internal/domain/markets"
)

// FlexScoreFormatter renders outcome names of markets flagged is_flex_score.
type FlexScoreFormatter interface {
	FormatFlexScore(outcomeName string, specifiers map[string]string) (string, error)
}

// ScoreFormatter shifts a relative "home:away" outcome name by the score specifier,
// so outcome "1:0" with score=2:2 becomes "3:2". Names that are not scores pass through.
type ScoreFormatter struct{}

func (ScoreFormatter) FormatFlexScore(outcomeName string, specifiers map[string]string) (string, error) {
	home, away, ok := parseScore(outcomeName)
	if !ok {
		return outcomeName, nil
	}
	raw, ok := specifiers[markets.SpecifierScore]
	if !ok {
		return "", fmt.Errorf("%w: flex score market without %s specifier", ErrMissingData, markets.SpecifierScore)
	}
	scoreHome, scoreAway, ok := parseScore(raw)
	if !ok {
		return "", fmt.Errorf("%w: %s specifier %q is not a score", ErrParsing, markets.SpecifierScore, raw)
	}
	return strconv.Itoa(home+scoreHome) + ":" + strconv.Itoa(away+scoreAway), nil
}

func parseScore(s string) (int, int, bool) {
	left, right, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, 0, false
	}
	home, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, false
	}
	away, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return 0, 0, false
	}
	return home, away, true
}
