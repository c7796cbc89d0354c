package naming

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Operand is a value drawn from the market specifiers.
type Operand interface {
	IntValue() (int, error)
	DecimalValue() (decimal.Decimal, error)
	StringValue() (string, error)
}

// BuildOperand reads operand text: a bare specifier name such as "total", or a
// parenthesized sum or difference of one specifier and one integer literal such
// as "(total-1)" or "(3+goals)".
func BuildOperand(specifiers map[string]string, text string) (Operand, error) {
	opens := strings.HasPrefix(text, "(")
	closes := strings.HasSuffix(text, ")")
	switch {
	case opens && closes && len(text) >= 2:
		return buildArithmeticOperand(specifiers, text[1:len(text)-1])
	case opens || closes:
		return nil, fmt.Errorf("%w: unbalanced parentheses in operand %q", ErrParsing, text)
	case text == "":
		return nil, fmt.Errorf("%w: empty operand", ErrParsing)
	}
	return simpleOperand{specifiers: specifiers, name: text}, nil
}

type simpleOperand struct {
	specifiers map[string]string
	name       string
}

func (o simpleOperand) StringValue() (string, error) {
	return lookupSpecifier(o.specifiers, o.name)
}

func (o simpleOperand) IntValue() (int, error) {
	raw, err := lookupSpecifier(o.specifiers, o.name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: specifier %s=%q is not an integer", ErrParsing, o.name, raw)
	}
	return v, nil
}

func (o simpleOperand) DecimalValue() (decimal.Decimal, error) {
	raw, err := lookupSpecifier(o.specifiers, o.name)
	if err != nil {
		return decimal.Zero, err
	}
	return parseDecimal(o.name, raw)
}

type arithmeticOp byte

const (
	opAdd      arithmeticOp = '+'
	opSubtract arithmeticOp = '-'
)

type arithmeticOperand struct {
	specifiers   map[string]string
	name         string
	literal      int64
	op           arithmeticOp
	literalFirst bool
}

func buildArithmeticOperand(specifiers map[string]string, inner string) (Operand, error) {
	var op arithmeticOp
	switch {
	case strings.Contains(inner, string(opAdd)):
		op = opAdd
	case strings.Contains(inner, string(opSubtract)):
		op = opSubtract
	default:
		return nil, fmt.Errorf("%w: operand (%s) has no + or - operator", ErrParsing, inner)
	}

	parts := strings.Split(inner, string(op))
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("%w: operand (%s) must have exactly two terms", ErrParsing, inner)
	}

	left, leftErr := strconv.ParseInt(parts[0], 10, 64)
	right, rightErr := strconv.ParseInt(parts[1], 10, 64)
	operand := arithmeticOperand{specifiers: specifiers, op: op}
	switch {
	case leftErr == nil && rightErr != nil:
		operand.literal, operand.name, operand.literalFirst = left, parts[1], true
	case leftErr != nil && rightErr == nil:
		operand.literal, operand.name = right, parts[0]
	default:
		return nil, fmt.Errorf("%w: operand (%s) must combine one specifier with one integer", ErrParsing, inner)
	}
	return operand, nil
}

func (o arithmeticOperand) DecimalValue() (decimal.Decimal, error) {
	raw, err := lookupSpecifier(o.specifiers, o.name)
	if err != nil {
		return decimal.Zero, err
	}
	value, err := parseDecimal(o.name, raw)
	if err != nil {
		return decimal.Zero, err
	}
	literal := decimal.NewFromInt(o.literal)
	switch {
	case o.op == opAdd:
		return value.Add(literal), nil
	case o.literalFirst:
		return literal.Sub(value), nil
	default:
		return value.Sub(literal), nil
	}
}

func (o arithmeticOperand) IntValue() (int, error) {
	v, err := o.DecimalValue()
	if err != nil {
		return 0, err
	}
	if !v.IsInteger() {
		return 0, fmt.Errorf("%w: operand value %s is not an integer", ErrParsing, v)
	}
	return int(v.IntPart()), nil
}

func (o arithmeticOperand) StringValue() (string, error) {
	v, err := o.DecimalValue()
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func lookupSpecifier(specifiers map[string]string, name string) (string, error) {
	raw, ok := specifiers[name]
	if !ok {
		return "", fmt.Errorf("%w: specifier %q not present", ErrMissingData, name)
	}
	return raw, nil
}

func parseDecimal(name, raw string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: specifier %s=%q is not a number", ErrParsing, name, raw)
	}
	return v, nil
}
