// Package regexast is the public facade over this module's lexer,
// parser, and AST: a thin re-export so internal/lexer and
// internal/parser can keep changing shape without breaking callers.
package regexast

import (
	"github.com/cwbudde/go-regexast/internal/ast"
	"github.com/cwbudde/go-regexast/internal/diag"
	"github.com/cwbudde/go-regexast/internal/parser"
)

// Syntax holds the parse options. ExtendedSyntax and
// NonSemanticWhitespace control how whitespace and `#` comments are
// lexed. The dialect flags (PCRE, Oniguruma, ICU, ECMAScript) are
// passed through to the parser, but no scanner consults them: every
// construct is recognized regardless of dialect. Experimental is not
// passed to the parser and has no effect.
type Syntax struct {
	ExtendedSyntax        bool
	NonSemanticWhitespace bool
	Experimental          bool
	PCRE                  bool
	Oniguruma             bool
	ICU                   bool
	ECMAScript            bool
}

func (s Syntax) toParserSyntax() parser.Syntax {
	return parser.Syntax{
		ExtendedSyntax:        s.ExtendedSyntax,
		NonSemanticWhitespace: s.NonSemanticWhitespace,
		PCRE:                  s.PCRE,
		Oniguruma:             s.Oniguruma,
		ICU:                   s.ICU,
		ECMAScript:            s.ECMAScript,
	}
}

// Node re-exports internal/ast.Node so callers never import
// internal/ast directly.
type Node = ast.Node

// ParseError re-exports internal/diag.LocatedError, the sole error
// type this module's Parse functions ever return.
type ParseError = diag.LocatedError

// Parse lexes and parses input under syntax, returning the root AST
// node. The first error encountered is returned as a *ParseError; there
// is no partial result and no recovery.
func Parse(input string, syntax Syntax) (Node, error) {
	p := parser.New(input, syntax.toParserSyntax())
	node, err := p.ParseRegex()
	if err != nil {
		return nil, err
	}
	return node, nil
}

// ParseWithDelimiters strips one of the recognized delimiter pairs
// (see delimiters.go) from input, infers Syntax defaults from the
// matched form, and parses the remainder. Returns UnknownDelimiter
// when input is not wrapped in any recognized pair.
func ParseWithDelimiters(input string) (Node, error) {
	body, syntax, err := stripDelimiters(input)
	if err != nil {
		return nil, err
	}
	return Parse(body, syntax)
}

// Dump renders node's deterministic, trivia-omitting textual form.
func Dump(node Node) string {
	return ast.Dump(node)
}

// StripTrivia returns a copy of node's tree with comment and
// non-semantic-whitespace nodes removed.
func StripTrivia(node Node) Node {
	return ast.StripTrivia(node)
}
