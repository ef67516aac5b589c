// Package parser implements a recursive-descent parser for regex
// syntax: each grammar production is one method, calling directly
// into internal/lexer at the points where the grammar is ambiguous
// without a character of lookahead, and building internal/ast nodes
// as it unwinds. There is no separate tokenization pass — the parser
// IS the driver that decides, at each position, which lexer scanner
// is grammatically possible.
package parser

import (
	"github.com/cwbudde/go-regexast/internal/lexer"
)

// Syntax selects how the parser lexes whitespace/comments. The
// dialect flags are carried through to the lexer but not consulted by
// any scanner. It is the public knob exposed by pkg/regexast's Parse.
type Syntax struct {
	ExtendedSyntax        bool
	NonSemanticWhitespace bool
	PCRE                  bool
	Oniguruma             bool
	ICU                   bool
	ECMAScript            bool
}

func (s Syntax) toDialect() lexer.Dialect {
	return lexer.Dialect{
		ExtendedSyntax:        s.ExtendedSyntax,
		NonSemanticWhitespace: s.NonSemanticWhitespace,
		PCRE:                  s.PCRE,
		Oniguruma:             s.Oniguruma,
		ICU:                   s.ICU,
		ECMAScript:            s.ECMAScript,
	}
}

// ParsingContext is the parser's mutable state threaded through every
// production: how many capturing groups have opened so far (resolves
// the back-reference/octal ambiguity), the names seen so far (for
// named back-reference/condition resolution by a later consumer —
// this front end records but does not validate them), and whether the
// cursor is presently inside a custom character class (gates the set
// operators and the reinterpretation of otherwise-special characters).
type ParsingContext struct {
	Syntax          Syntax
	PriorGroupCount int
	GroupNames      []string
	InCCC           bool
}

// lexerContext narrows ParsingContext down to the subset internal/lexer
// needs, at the specific call site that needs it — never stored, so
// the narrowed value can never drift from the parser's live state.
func (c *ParsingContext) lexerContext() lexer.Context {
	return lexer.Context{
		InCustomCharacterClass: c.InCCC,
		PriorGroupCount:        c.PriorGroupCount,
		Dialect:                c.Syntax.toDialect(),
	}
}
