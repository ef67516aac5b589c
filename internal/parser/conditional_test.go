package parser

import (
	"testing"

	"github.com/cwbudde/go-regexast/internal/ast"
)

func TestParseConditional_GroupReference(t *testing.T) {
	node := parse(t, "(?(1)a|b)")
	if got, want := ast.Dump(node), "(if matched(1) then a else b)"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseConditional_NoFalseBranchIsEmpty(t *testing.T) {
	node := parse(t, "(?(1)a)")
	if got, want := ast.Dump(node), "(if matched(1) then a else empty)"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseConditional_Define(t *testing.T) {
	node := parse(t, "(?(DEFINE)a)")
	if got, want := ast.Dump(node), "(if define then a else empty)"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseConditional_RecursionCheck(t *testing.T) {
	node := parse(t, "(?(R)a|b)")
	if got, want := ast.Dump(node), "(if recursing then a else b)"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseConditional_AssertionTest(t *testing.T) {
	node := parse(t, "(?(?=a)x|y)")
	if got, want := ast.Dump(node), "(if group_lookahead(a) then x else y)"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseConditional_TooManyBranchesIsError(t *testing.T) {
	p := New("(?(1)a|b|c)", Syntax{})
	_, err := p.ParseRegex()
	if err == nil {
		t.Fatalf("expected TooManyBranchesInConditional for a third branch")
	}
}

func TestParseConditional_MissingCloserIsError(t *testing.T) {
	p := New("(?(1)a|b", Syntax{})
	_, err := p.ParseRegex()
	if err == nil {
		t.Fatalf("expected an error for a conditional missing its closing paren")
	}
}
