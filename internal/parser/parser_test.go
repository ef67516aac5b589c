package parser

import (
	"testing"

	"github.com/cwbudde/go-regexast/internal/ast"
)

func parse(t *testing.T, input string) ast.Node {
	t.Helper()
	p := New(input, Syntax{})
	node, err := p.ParseRegex()
	if err != nil {
		t.Fatalf("ParseRegex(%q) returned unexpected error: %v", input, err)
	}
	return node
}

func TestParseRegex_SingleLiteral(t *testing.T) {
	node := parse(t, "a")
	if got, want := ast.Dump(node), "(a)"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseRegex_Concatenation(t *testing.T) {
	node := parse(t, "abc")
	if got, want := ast.Dump(node), "(a,b,c)"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseRegex_Alternation(t *testing.T) {
	node := parse(t, "a|b")
	if got, want := ast.Dump(node), "alternation(a,b)"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseRegex_EmptyAlternationBranch(t *testing.T) {
	node := parse(t, "a|")
	if got, want := ast.Dump(node), "alternation(a,())"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseRegex_QuantifiedAtom(t *testing.T) {
	node := parse(t, "a*")
	if got, want := ast.Dump(node), "(quant_zeroOrMore_eager(a))"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseRegex_ReluctantQuantifier(t *testing.T) {
	node := parse(t, "a*?")
	if got, want := ast.Dump(node), "(quant_zeroOrMore_reluctant(a))"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseRegex_Group(t *testing.T) {
	node := parse(t, "(a)")
	if got, want := ast.Dump(node), "(group_capture(a))"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseRegex_UnbalancedCloseParenIsError(t *testing.T) {
	p := New("a)", Syntax{})
	_, err := p.ParseRegex()
	if err == nil {
		t.Fatalf("expected UnbalancedEndOfGroup for a stray ')'")
	}
}

func TestParseRegex_UnbalancedOpenParenIsError(t *testing.T) {
	p := New("(a", Syntax{})
	_, err := p.ParseRegex()
	if err == nil {
		t.Fatalf("expected an error for an unterminated group")
	}
}

func TestParseRegex_InvalidQuantifierRangeIsError(t *testing.T) {
	p := New("a{5,2}", Syntax{})
	_, err := p.ParseRegex()
	if err == nil {
		t.Fatalf("expected InvalidQuantifierRange for {5,2}")
	}
}

func TestParseRegex_GlobalMatchingOptionsWrapsBody(t *testing.T) {
	node := parse(t, "(*UTF)abc")
	if got, want := ast.Dump(node), "globalOptions(UTF)((a,b,c))"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseRegex_IsolatedOptionChangeIsNotQuantifiable(t *testing.T) {
	p := New("(?i)*", Syntax{})
	_, err := p.ParseRegex()
	if err == nil {
		t.Fatalf("expected NotQuantifiable for an isolated option change followed by '*'")
	}
}

func TestParseRegex_BackreferenceDisambiguation(t *testing.T) {
	node := parse(t, "(a)\\1")
	if got, want := ast.Dump(node), "(group_capture(a),backreference(1))"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseRegex_EmptyInputProducesEmptyConcatenation(t *testing.T) {
	node := parse(t, "")
	if got, want := ast.Dump(node), "()"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseRegex_CustomCharacterClass(t *testing.T) {
	node := parse(t, "[a-z]")
	if got, want := ast.Dump(node), "(customCharacterClass(a-z))"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseRegex_QuotedLiteral(t *testing.T) {
	node := parse(t, `\Qa.b\E`)
	if got, want := ast.Dump(node), `(quote("a.b"))`; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}

func TestParseRegex_CalloutAtom(t *testing.T) {
	node := parse(t, "a(?C1)b")
	if got, want := ast.Dump(node), "(a,callout(1),b)"; got != want {
		t.Fatalf("Dump() = %q, want %q", got, want)
	}
}
