package lexer

import (
	"strings"

	"github.com/cwbudde/go-regexast/internal/cursor"
	"github.com/cwbudde/go-regexast/internal/diag"
)

// LexComment recognizes `(?#…)`, terminated by the first ')'; a
// backslash does not escape it. Comments never nest and cannot contain
// a literal ')'.
func LexComment(cur *cursor.Cursor) (cursor.Located[string], bool, *diag.LocatedError) {
	start := cur.CurrentPosition()
	if !cur.TryEatString("(?#") {
		return cursor.Located[string]{}, false, nil
	}
	var body strings.Builder
	for {
		r, ok := cur.Peek()
		if !ok {
			return cursor.Located[string]{}, false, diag.New(diag.UnexpectedEndOfInput, toDiag(loc(cur, start)))
		}
		if r == ')' {
			break
		}
		body.WriteRune(r)
		cur.Advance()
	}
	cur.Advance() // ')'
	return cursor.NewLocated(body.String(), start, cur.CurrentPosition()), true, nil
}

// LexNonSemanticWhitespace recognizes, under the extended-syntax or
// non-semantic-whitespace option, a maximal run of whitespace and
// (when dialect.ExtendedSyntax) `#…` line comments. Returns the
// skipped text as trivia content.
func LexNonSemanticWhitespace(cur *cursor.Cursor, dialect Dialect) (cursor.Located[string], bool, *diag.LocatedError) {
	if !dialect.ExtendedSyntax && !dialect.NonSemanticWhitespace {
		return cursor.Located[string]{}, false, nil
	}
	start := cur.CurrentPosition()
	var skipped strings.Builder
	for {
		r, ok := cur.Peek()
		if !ok {
			break
		}
		if isPatternWhitespace(r) {
			skipped.WriteRune(r)
			cur.Advance()
			continue
		}
		if dialect.ExtendedSyntax && r == '#' {
			for {
				r, ok := cur.Peek()
				if !ok || r == '\n' {
					break
				}
				skipped.WriteRune(r)
				cur.Advance()
			}
			continue
		}
		break
	}
	if skipped.Len() == 0 {
		return cursor.Located[string]{}, false, nil
	}
	return cursor.NewLocated(skipped.String(), start, cur.CurrentPosition()), true, nil
}

func isPatternWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}
