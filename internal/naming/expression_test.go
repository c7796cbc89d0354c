package naming

import (
	"errors"
	"testing"
)

func TestParseExpression(t *testing.T) {
	tests := []struct {
		in      string
		op      Operator
		operand string
	}{
		{in: "{total}", op: OperatorNone, operand: "total"},
		{in: "{+hcp}", op: OperatorPlus, operand: "hcp"},
		{in: "{-hcp}", op: OperatorMinus, operand: "hcp"},
		{in: "{$competitor1}", op: OperatorEntity, operand: "competitor1"},
		{in: "{!player}", op: OperatorProfile, operand: "player"},
		{in: "{%goalnr}", op: OperatorOrdinal, operand: "goalnr"},
		{in: "{(total-1)}", op: OperatorNone, operand: "(total-1)"},
		{in: "{x}", op: OperatorNone, operand: "x"},
	}

	for _, tt := range tests {
		op, operand, err := ParseExpression(tt.in)
		if err != nil {
			t.Fatalf("ParseExpression(%s) unexpected error: %v", tt.in, err)
		}
		if op != tt.op || operand != tt.operand {
			t.Fatalf("ParseExpression(%s) = %s %q, want %s %q", tt.in, op, operand, tt.op, tt.operand)
		}
	}
}

func TestParseExpressionRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "{}", "{a", "a}", "ab", "total", "{$}", "{!}"} {
		if _, _, err := ParseExpression(in); !errors.Is(err, ErrParsing) {
			t.Fatalf("ParseExpression(%q) expected ErrParsing, got %v", in, err)
		}
	}
}

func TestOperatorString(t *testing.T) {
	if OperatorEntity.String() != "$" || OperatorNone.String() != "none" || Operator(42).String() != "Operator(42)" {
		t.Fatalf("unexpected operator strings")
	}
}
