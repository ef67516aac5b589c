package lexer

import (
	"github.com/cwbudde/go-regexast/internal/cursor"
)

// LexAbsentFunctionStart recognizes Oniguruma's `(?~` absent-function
// opener, reporting whether it was immediately followed by `|`. The
// four AbsentKind shapes are disambiguated by the parser from
// HasPipe together with how many `|`-separated branches follow:
// no pipe and one child is a repeater; a pipe with zero children is a
// clearer; one child after the pipe is a stopper; two is an
// expression; more than two is TooManyAbsentExpressionChildren.
func LexAbsentFunctionStart(cur *cursor.Cursor) (hasPipe bool, ok bool) {
	if !cur.TryEatString("(?~") {
		return false, false
	}
	return cur.TryEat('|'), true
}
