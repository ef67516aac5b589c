package parser

import (
	"testing"

	"github.com/cwbudde/go-regexast/internal/ast"
)

func TestParseCustomCharClass_PlainRun(t *testing.T) {
	node := parse(t, "[abc]")
	if got, want := ast.Dump(node), "(customCharacterClass(a,b,c))"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseCustomCharClass_Negated(t *testing.T) {
	node := parse(t, "[^abc]")
	if got, want := ast.Dump(node), "(customCharacterClass(^,a,b,c))"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseCustomCharClass_Range(t *testing.T) {
	node := parse(t, "[a-z]")
	if got, want := ast.Dump(node), "(customCharacterClass(a-z))"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseCustomCharClass_TrailingDashIsLiteral(t *testing.T) {
	node := parse(t, "[a-]")
	if got, want := ast.Dump(node), "(customCharacterClass(a,-))"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseCustomCharClass_LeadingCloseBracketIsLiteral(t *testing.T) {
	node := parse(t, "[]a]")
	if got, want := ast.Dump(node), "(customCharacterClass(],a))"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseCustomCharClass_Intersection(t *testing.T) {
	node := parse(t, "[a&&b]")
	if got, want := ast.Dump(node), "(customCharacterClass(op [a] intersection [b]))"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseCustomCharClass_Subtraction(t *testing.T) {
	node := parse(t, "[a-z--[aeiou]]")
	if got, want := ast.Dump(node), "(customCharacterClass(op [a-z] subtraction [customCharacterClass(a,e,i,o,u)]))"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseCustomCharClass_NestedClass(t *testing.T) {
	node := parse(t, "[[ab]cd]")
	if got, want := ast.Dump(node), "(customCharacterClass(customCharacterClass(a,b),c,d))"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseCustomCharClass_QuotedMember(t *testing.T) {
	node := parse(t, `[\Qa.b\E]`)
	if got, want := ast.Dump(node), `(customCharacterClass(quote("a.b")))`; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseCustomCharClass_MissingCloserIsError(t *testing.T) {
	p := New("[abc", Syntax{})
	_, err := p.ParseRegex()
	if err == nil {
		t.Fatalf("expected an error for an unterminated custom character class")
	}
}

func TestParseCustomCharClass_ShorthandIsNotALiteral(t *testing.T) {
	node := parse(t, `[\d]`)
	if got, want := ast.Dump(node), `(customCharacterClass(\d))`; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseCustomCharClass_ShorthandAsRangeOperandIsError(t *testing.T) {
	p := New(`[a-\d]`, Syntax{})
	_, err := p.ParseRegex()
	if err == nil {
		t.Fatalf("expected InvalidCharacterClassRangeOperand for a shorthand range endpoint")
	}
}
