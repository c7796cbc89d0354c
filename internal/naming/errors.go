package naming

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/preston-bernstein/market-names/internal/domain/markets"
)

// Failure classes. Every error produced while generating a name wraps exactly one of these.
var (
	ErrParsing            = errors.New("parsing error")
	ErrMissingData        = errors.New("missing data")
	ErrUpstream           = errors.New("upstream lookup failed")
	ErrUnsupportedOperand = errors.New("unsupported operand")
)

// NameGenerationError carries the context of a failed name request.
type NameGenerationError struct {
	MarketID   int
	Specifiers map[string]string
	OutcomeID  string
	Descriptor string
	Locale     language.Tag
	Err        error
}

func (e *NameGenerationError) Error() string {
	var b strings.Builder
	if e.OutcomeID != "" {
		fmt.Fprintf(&b, "generating name of outcome %q of market %d", e.OutcomeID, e.MarketID)
	} else {
		fmt.Fprintf(&b, "generating name of market %d", e.MarketID)
	}
	fmt.Fprintf(&b, " (specifiers=%q, locale=%s", markets.FormatSpecifiers(e.Specifiers), e.Locale)
	if e.Descriptor != "" {
		fmt.Fprintf(&b, ", descriptor=%q", e.Descriptor)
	}
	b.WriteString(")")
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *NameGenerationError) Unwrap() error {
	return e.Err
}

// errorClass names the failure class of err for logs and metrics.
func errorClass(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrParsing):
		return "parsing"
	case errors.Is(err, ErrMissingData):
		return "missing_data"
	case errors.Is(err, ErrUnsupportedOperand):
		return "unsupported_operand"
	case errors.Is(err, ErrUpstream):
		return "upstream"
	default:
		return "unknown"
	}
}

// ExceptionHandlingStrategy decides whether failures reach the caller.
type ExceptionHandlingStrategy int

const (
	// Catch logs failures and returns an empty name.
	Catch ExceptionHandlingStrategy = iota
	// Throw returns failures as *NameGenerationError.
	Throw
)

func (s ExceptionHandlingStrategy) String() string {
	switch s {
	case Catch:
		return "catch"
	case Throw:
		return "throw"
	default:
		return fmt.Sprintf("ExceptionHandlingStrategy(%d)", int(s))
	}
}

// ParseExceptionHandlingStrategy reads "catch" or "throw", case-insensitively.
func ParseExceptionHandlingStrategy(s string) (ExceptionHandlingStrategy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "catch":
		return Catch, true
	case "throw":
		return Throw, true
	default:
		return Catch, false
	}
}
