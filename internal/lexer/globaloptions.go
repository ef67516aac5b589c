package lexer

import (
	"strings"

	"github.com/cwbudde/go-regexast/internal/ast"
	"github.com/cwbudde/go-regexast/internal/cursor"
	"github.com/cwbudde/go-regexast/internal/diag"
)

var globalOptNames = map[string]ast.GlobalOptTag{
	"UTF":              ast.GlobalOptUTF,
	"UCP":              ast.GlobalOptUCP,
	"CRLF":             ast.GlobalOptCRLF,
	"CR":               ast.GlobalOptCR,
	"LF":               ast.GlobalOptLF,
	"ANYCRLF":          ast.GlobalOptAnyCRLF,
	"ANY":              ast.GlobalOptAny,
	"BSR_ANYCRLF":      ast.GlobalOptBSRAnyCRLF,
	"BSR_UNICODE":      ast.GlobalOptBSRUnicode,
	"NOTBOL":           ast.GlobalOptNotBOL,
	"NOTEOL":           ast.GlobalOptNotEOL,
	"NOTEMPTY":         ast.GlobalOptNotEmpty,
	"NOTEMPTY_ATSTART": ast.GlobalOptNotEmptyAtStart,
	"NO_AUTO_POSSESS":  ast.GlobalOptNoAutoPossess,
	"NO_DOTSTAR_ANCHOR": ast.GlobalOptNoDotstarAnchor,
	"NO_JIT":           ast.GlobalOptNoJIT,
	"NO_START_OPT":     ast.GlobalOptNoStartOpt,
}

var globalOptLimitNames = map[string]ast.GlobalOptTag{
	"LIMIT_MATCH":     ast.GlobalOptLimitMatch,
	"LIMIT_RECURSION": ast.GlobalOptLimitRecursion,
	"LIMIT_DEPTH":     ast.GlobalOptLimitDepth,
}

// LexGlobalMatchingOption recognizes one leading `(*NAME)` or
// `(*LIMIT_X=n)` directive. These may only appear before any other
// pattern content; the parser enforces that ordering, not the
// lexer. Unknown names are accepted as GlobalOptUnknown rather than
// rejected, consistent with this front end never judging semantic
// validity of dialect-specific directives.
func LexGlobalMatchingOption(cur *cursor.Cursor) (cursor.Located[ast.GlobalOpt], bool, *diag.LocatedError) {
	start := cur.CurrentPosition()
	cp := cur.Mark()
	if !cur.TryEatString("(*") {
		return cursor.Located[ast.GlobalOpt]{}, false, nil
	}

	var name strings.Builder
	for {
		r, ok := cur.Peek()
		if !ok || r == ')' || r == '=' {
			break
		}
		name.WriteRune(r)
		cur.Advance()
	}
	text := name.String()

	if tag, ok := globalOptLimitNames[text]; ok {
		if !cur.TryEat('=') {
			cur.Reset(cp)
			return cursor.Located[ast.GlobalOpt]{}, false, diag.New(diag.ExpectedEquals, toDiag(loc(cur, start)))
		}
		n, hasN := readDigits(cur)
		if !hasN || !cur.TryEat(')') {
			cur.Reset(cp)
			return cursor.Located[ast.GlobalOpt]{}, false, diag.New(diag.ExpectedNumber, toDiag(loc(cur, start)))
		}
		return cursor.NewLocated(ast.GlobalOpt{Tag: tag, Name: text, Value: n, HasValue: true}, start, cur.CurrentPosition()), true, nil
	}

	if !cur.TryEat(')') {
		cur.Reset(cp)
		return cursor.Located[ast.GlobalOpt]{}, false, nil
	}
	if tag, ok := globalOptNames[text]; ok {
		return cursor.NewLocated(ast.GlobalOpt{Tag: tag, Name: text}, start, cur.CurrentPosition()), true, nil
	}
	return cursor.NewLocated(ast.GlobalOpt{Tag: ast.GlobalOptUnknown, Name: text}, start, cur.CurrentPosition()), true, nil
}
