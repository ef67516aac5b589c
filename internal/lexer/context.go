// Package lexer implements context-sensitive scanners for regex
// syntax. Unlike a conventional lexer that pre-tokenizes a whole
// input and exposes a single NextToken, this lexer has no notion of
// "the next token": the parser calls a specific scanner (lexAtom,
// lexGroupStart, lexCustomCCBinOp, …) because only the parser knows
// which constructs are grammatically possible at the current point.
// Every scanner follows one discipline: on failure, the cursor is
// restored to where it started (via cursor.Checkpoint); on success,
// it has consumed exactly the matched input.
package lexer

// Context is the subset of the parser's ParsingContext the lexer
// needs. It is duplicated here (rather than imported from
// internal/parser) to avoid a lexer<->parser import cycle; the parser
// narrows its own ParsingContext down to a lexer.Context at each call
// site.
type Context struct {
	// InCustomCharacterClass gates recognition of the set-operation
	// tokens (&&, --, ~~), which are only meaningful inside `[…]`.
	InCustomCharacterClass bool

	// PriorGroupCount is the number of capturing groups whose opening
	// delimiter has already been consumed. It resolves the
	// back-reference/octal-escape ambiguity: `\n` with a leading zero is
	// always octal; otherwise it is a back-reference when
	// n <= PriorGroupCount, else an octal escape when it has at most
	// three digits, all octal, else still a back-reference.
	PriorGroupCount int

	// Dialect flags, narrowed from parser.Syntax.
	Dialect Dialect
}

// Dialect mirrors the parser's syntax options. Only ExtendedSyntax and
// NonSemanticWhitespace are read (by LexNonSemanticWhitespace); the
// dialect flags are carried along but no scanner consults them, so
// every construct is recognized regardless of dialect.
type Dialect struct {
	ExtendedSyntax        bool
	NonSemanticWhitespace bool
	PCRE                  bool
	Oniguruma             bool
	ICU                   bool
	ECMAScript            bool
}
