package parser

import "testing"

func TestSyntax_ToDialectCarriesAllFlags(t *testing.T) {
	s := Syntax{
		ExtendedSyntax:        true,
		NonSemanticWhitespace: true,
		PCRE:                  true,
		Oniguruma:             true,
		ICU:                   true,
		ECMAScript:            true,
	}
	d := s.toDialect()
	if !d.ExtendedSyntax || !d.NonSemanticWhitespace || !d.PCRE || !d.Oniguruma || !d.ICU || !d.ECMAScript {
		t.Fatalf("toDialect() dropped a flag: %+v", d)
	}
}

func TestParsingContext_LexerContextNarrowsLiveState(t *testing.T) {
	ctx := ParsingContext{Syntax: Syntax{PCRE: true}, PriorGroupCount: 3, InCCC: true}
	lc := ctx.lexerContext()
	if !lc.InCustomCharacterClass || lc.PriorGroupCount != 3 || !lc.Dialect.PCRE {
		t.Fatalf("lexerContext() did not reflect live state: %+v", lc)
	}

	ctx.PriorGroupCount = 5
	if got := ctx.lexerContext().PriorGroupCount; got != 5 {
		t.Fatalf("lexerContext() is stale: got PriorGroupCount %d, want 5", got)
	}
}

func TestParseRegex_ExtendedSyntaxSkipsWhitespaceAndComments(t *testing.T) {
	p := New("a b # trailing comment\nc", Syntax{ExtendedSyntax: true})
	node, err := p.ParseRegex()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node == nil {
		t.Fatalf("expected a non-nil node")
	}
}
