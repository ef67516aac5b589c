package lexer

import (
	"github.com/cwbudde/go-regexast/internal/ast"
	"github.com/cwbudde/go-regexast/internal/cursor"
	"github.com/cwbudde/go-regexast/internal/diag"
)

// LexCustomCCStart recognizes the opening delimiter of a custom
// character class: `[` or `[^`. A leading `]` right after the opening
// delimiter is a literal member, not the closer — that exception is
// the parser's concern, not the lexer's, since it depends on whether
// any member has been consumed yet.
func LexCustomCCStart(cur *cursor.Cursor) (cursor.Located[ast.CCCStart], bool, *diag.LocatedError) {
	start := cur.CurrentPosition()
	if !cur.TryEat('[') {
		return cursor.Located[ast.CCCStart]{}, false, nil
	}
	negated := cur.TryEat('^')
	return cursor.NewLocated(ast.CCCStart{Negated: negated}, start, cur.CurrentPosition()), true, nil
}

// LexCustomCCBinOp recognizes the three set operators legal between
// bracketed sets inside a custom character class: `&&`, `--`, `~~`.
// They are only attempted with ctx.InCustomCharacterClass set, since
// a bare `-` is otherwise a range dash or a literal.
func LexCustomCCBinOp(cur *cursor.Cursor) (cursor.Located[ast.SetOp], bool, *diag.LocatedError) {
	start := cur.CurrentPosition()
	switch {
	case cur.TryEatString("&&"):
		return cursor.NewLocated(ast.SetIntersection, start, cur.CurrentPosition()), true, nil
	case cur.TryEatString("--"):
		return cursor.NewLocated(ast.SetSubtraction, start, cur.CurrentPosition()), true, nil
	case cur.TryEatString("~~"):
		return cursor.NewLocated(ast.SetSymmetricDifference, start, cur.CurrentPosition()), true, nil
	default:
		return cursor.Located[ast.SetOp]{}, false, nil
	}
}

// LexCustomCharClassRangeEnd recognizes the `-` that separates a
// range's two endpoints. It is attempted only once the parser has
// already read a left-hand atom and confirmed the next two
// characters are not one of the set operators above and not the
// class-closing `]`.
func LexCustomCharClassRangeEnd(cur *cursor.Cursor) (cursor.SourceLocation, bool) {
	return cur.TryEatWithLoc('-')
}
