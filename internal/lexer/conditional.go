package lexer

import (
	"strings"

	"github.com/cwbudde/go-regexast/internal/ast"
	"github.com/cwbudde/go-regexast/internal/cursor"
	"github.com/cwbudde/go-regexast/internal/diag"
)

// LexConditionalStart recognizes the `(?(` that opens a conditional
// group, consuming through the open paren of the test itself. The
// parser then tries LexKnownConditionalStart; on failure it parses a
// `(?(?=…)yes|no)` assertion test itself (parser's parseCondition).
func LexConditionalStart(cur *cursor.Cursor) bool {
	cp := cur.Mark()
	if cur.TryEatString("(?(") {
		return true
	}
	cur.Reset(cp)
	return false
}

// LexKnownConditionalStart recognizes the non-assertion conditional
// tests: `VERSION>=m.n`, `VERSION=m.n`, `DEFINE`, `R`, `Rn`,
// `R&name`, `<name>`, `'name'`, `name`, and bare `n`. Called
// immediately after LexConditionalStart has consumed `(?(`. Returns
// ok=false (cursor reset to just after the consumed `(?(`) when the
// text is not one of these forms, so the parser can instead parse a
// nested group assertion.
func LexKnownConditionalStart(cur *cursor.Cursor) (cursor.Located[ast.Condition], bool, *diag.LocatedError) {
	start := cur.CurrentPosition()
	cp := cur.Mark()

	if cur.TryEatString("VERSION") {
		atLeast := cur.TryEatString(">=")
		if !atLeast {
			cur.TryEat('=')
		}
		major, okMajor := readDigits(cur)
		if !okMajor || !cur.TryEat('.') {
			cur.Reset(cp)
			return cursor.Located[ast.Condition]{}, false, diag.New(diag.ExpectedNumber, toDiag(loc(cur, start)))
		}
		minor, okMinor := readDigits(cur)
		if !okMinor || !cur.TryEat(')') {
			cur.Reset(cp)
			return cursor.Located[ast.Condition]{}, false, diag.New(diag.ExpectedNumber, toDiag(loc(cur, start)))
		}
		kind := ast.VersionEqual
		if atLeast {
			kind = ast.VersionAtLeast
		}
		cond := ast.Condition{Tag: ast.ConditionPCREVersionCheck, VersionKind: kind, VersionMajor: major, VersionMinor: minor}
		return cursor.NewLocated(cond, start, cur.CurrentPosition()), true, nil
	}

	if cur.TryEatString("DEFINE") {
		if !cur.TryEat(')') {
			cur.Reset(cp)
			return cursor.Located[ast.Condition]{}, false, diag.New(diag.ExpectedGroupCloser, toDiag(loc(cur, start)))
		}
		return cursor.NewLocated(ast.Condition{Tag: ast.ConditionDefineGroup}, start, cur.CurrentPosition()), true, nil
	}

	if cur.TryEat('R') {
		switch {
		case cur.TryEat('&'):
			name, err := readDelimitedName(cur, ')', start)
			if err != nil {
				cur.Reset(cp)
				return cursor.Located[ast.Condition]{}, false, err
			}
			cond := ast.Condition{Tag: ast.ConditionGroupRecursionCheck, Ref: ast.Reference{Tag: ast.RefNamed, Name: name}}
			return cursor.NewLocated(cond, start, cur.CurrentPosition()), true, nil
		default:
			n, hasN := readDigits(cur)
			if !cur.TryEat(')') {
				cur.Reset(cp)
				return cursor.Located[ast.Condition]{}, false, diag.New(diag.ExpectedGroupCloser, toDiag(loc(cur, start)))
			}
			ref := ast.Reference{Tag: ast.RefAbsolute, Absolute: 0}
			tag := ast.ConditionRecursionCheck
			if hasN {
				ref = ast.Reference{Tag: ast.RefAbsolute, Absolute: n}
				tag = ast.ConditionGroupRecursionCheck
			}
			return cursor.NewLocated(ast.Condition{Tag: tag, Ref: ref}, start, cur.CurrentPosition()), true, nil
		}
	}

	if cur.TryEat('<') {
		name, err := readDelimitedName(cur, '>', start)
		if err != nil {
			cur.Reset(cp)
			return cursor.Located[ast.Condition]{}, false, err
		}
		if !cur.TryEat(')') {
			cur.Reset(cp)
			return cursor.Located[ast.Condition]{}, false, diag.New(diag.ExpectedGroupCloser, toDiag(loc(cur, start)))
		}
		cond := ast.Condition{Tag: ast.ConditionGroupMatched, Ref: ast.Reference{Tag: ast.RefNamed, Name: name}}
		return cursor.NewLocated(cond, start, cur.CurrentPosition()), true, nil
	}
	if cur.TryEat('\'') {
		name, err := readDelimitedName(cur, '\'', start)
		if err != nil {
			cur.Reset(cp)
			return cursor.Located[ast.Condition]{}, false, err
		}
		if !cur.TryEat(')') {
			cur.Reset(cp)
			return cursor.Located[ast.Condition]{}, false, diag.New(diag.ExpectedGroupCloser, toDiag(loc(cur, start)))
		}
		cond := ast.Condition{Tag: ast.ConditionGroupMatched, Ref: ast.Reference{Tag: ast.RefNamed, Name: name}}
		return cursor.NewLocated(cond, start, cur.CurrentPosition()), true, nil
	}

	if n, ok := readDigits(cur); ok {
		if !cur.TryEat(')') {
			cur.Reset(cp)
			return cursor.Located[ast.Condition]{}, false, diag.New(diag.ExpectedGroupCloser, toDiag(loc(cur, start)))
		}
		cond := ast.Condition{Tag: ast.ConditionGroupMatched, Ref: ast.Reference{Tag: ast.RefAbsolute, Absolute: n}}
		return cursor.NewLocated(cond, start, cur.CurrentPosition()), true, nil
	}

	var name strings.Builder
	for {
		r, ok := cur.Peek()
		if !ok || !(r == '_' || isDigit(r) || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			break
		}
		name.WriteRune(r)
		cur.Advance()
	}
	if name.Len() > 0 && cur.TryEat(')') {
		cond := ast.Condition{Tag: ast.ConditionGroupMatched, Ref: ast.Reference{Tag: ast.RefNamed, Name: name.String()}}
		return cursor.NewLocated(cond, start, cur.CurrentPosition()), true, nil
	}

	cur.Reset(cp)
	return cursor.Located[ast.Condition]{}, false, nil
}
