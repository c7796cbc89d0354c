package naming

import "fmt"

// Operator is the optional prefix character of a placeholder.
type Operator int

const (
	OperatorNone Operator = iota
	OperatorPlus
	OperatorMinus
	OperatorEntity
	OperatorProfile
	OperatorOrdinal
)

func (o Operator) String() string {
	switch o {
	case OperatorNone:
		return "none"
	case OperatorPlus:
		return "+"
	case OperatorMinus:
		return "-"
	case OperatorEntity:
		return "$"
	case OperatorProfile:
		return "!"
	case OperatorOrdinal:
		return "%"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

func operatorFor(c byte) (Operator, bool) {
	switch c {
	case '+':
		return OperatorPlus, true
	case '-':
		return OperatorMinus, true
	case '$':
		return OperatorEntity, true
	case '!':
		return OperatorProfile, true
	case '%':
		return OperatorOrdinal, true
	default:
		return OperatorNone, false
	}
}

// ParseExpression splits a braced placeholder into its operator and operand text.
func ParseExpression(raw string) (Operator, string, error) {
	if len(raw) < 3 || raw[0] != placeholderOpen || raw[len(raw)-1] != placeholderClose {
		return OperatorNone, "", fmt.Errorf("%w: malformed placeholder %q", ErrParsing, raw)
	}
	body := raw[1 : len(raw)-1]

	op, ok := operatorFor(body[0])
	if !ok {
		return OperatorNone, body, nil
	}
	if len(body) == 1 {
		return OperatorNone, "", fmt.Errorf("%w: operator %s without operand in %q", ErrParsing, op, raw)
	}
	return op, body[1:], nil
}
