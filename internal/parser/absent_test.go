package parser

import (
	"testing"

	"github.com/cwbudde/go-regexast/internal/ast"
)

func TestParseAbsentFunction_Repeater(t *testing.T) {
	node := parse(t, "(?~a)")
	if got, want := ast.Dump(node), "(AbsentFunction(repeater(a)))"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseAbsentFunction_Clearer(t *testing.T) {
	node := parse(t, "(?~|)")
	if got, want := ast.Dump(node), "(AbsentFunction(clearer))"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseAbsentFunction_Stopper(t *testing.T) {
	node := parse(t, "(?~|a)")
	if got, want := ast.Dump(node), "(AbsentFunction(stopper(a)))"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseAbsentFunction_Expression(t *testing.T) {
	node := parse(t, "(?~|a|b)")
	if got, want := ast.Dump(node), "(AbsentFunction(expression(absentee=a, expr=b)))"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseAbsentFunction_TooManyBranchesIsError(t *testing.T) {
	p := New("(?~|a|b|c)", Syntax{})
	_, err := p.ParseRegex()
	if err == nil {
		t.Fatalf("expected TooManyAbsentExpressionChildren for a third branch")
	}
}

func TestParseAbsentFunction_MissingCloserIsError(t *testing.T) {
	p := New("(?~a", Syntax{})
	_, err := p.ParseRegex()
	if err == nil {
		t.Fatalf("expected an error for an unterminated absent repeater")
	}
}
