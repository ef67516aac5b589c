package lexer

import (
	"strings"

	"github.com/cwbudde/go-regexast/internal/cursor"
	"github.com/cwbudde/go-regexast/internal/diag"
)

// LexQuote recognizes `\Q…\E` and PCRE's `\q{…}`: a run of characters
// matched literally regardless of what they would otherwise mean. It
// returns the quoted literal text located at the full construct's span
// (including the delimiters).
func LexQuote(cur *cursor.Cursor) (cursor.Located[string], bool, *diag.LocatedError) {
	start := cur.CurrentPosition()
	cp := cur.Mark()

	if cur.TryEatString(`\Q`) {
		var lit strings.Builder
		for {
			if cur.TryEatString(`\E`) {
				break
			}
			r, ok := cur.Advance()
			if !ok {
				break // unterminated \Q…\E is legal: runs to end of input
			}
			lit.WriteRune(r)
		}
		return cursor.NewLocated(lit.String(), start, cur.CurrentPosition()), true, nil
	}

	if cur.TryEatString(`\q{`) {
		var lit strings.Builder
		for {
			r, ok := cur.Peek()
			if !ok || r == '}' {
				break
			}
			lit.WriteRune(r)
			cur.Advance()
		}
		if !cur.TryEat('}') {
			cur.Reset(cp)
			return cursor.Located[string]{}, false, diag.New(diag.ExpectedBrace, toDiag(loc(cur, start)))
		}
		return cursor.NewLocated(lit.String(), start, cur.CurrentPosition()), true, nil
	}

	return cursor.Located[string]{}, false, nil
}
