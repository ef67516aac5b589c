package lexer

import (
	"strconv"
	"strings"

	"github.com/cwbudde/go-regexast/internal/ast"
	"github.com/cwbudde/go-regexast/internal/cursor"
	"github.com/cwbudde/go-regexast/internal/diag"
)

// LexGroupStart recognizes every `(…` opening form that introduces an
// ordinary Group node: captures, non-capturing variants, lookarounds,
// script runs, and the option-change forms. It does not recognize
// `(?(` conditionals, `(?~` absent functions, `(*…)` global options, or
// `(?C…)` callouts — the parser tries those dispatchers first since
// they share the `(?` prefix; by the time LexGroupStart runs, those
// have already failed to match.
func LexGroupStart(cur *cursor.Cursor, ctx Context) (cursor.Located[ast.GroupKind], bool, *diag.LocatedError) {
	start := cur.CurrentPosition()
	cp := cur.Mark()
	if !cur.TryEat('(') {
		return cursor.Located[ast.GroupKind]{}, false, nil
	}

	if !cur.TryEat('?') {
		return kindLocated(ast.GroupKind{Tag: ast.GroupCapture}, cur, start), true, nil
	}

	r, ok := cur.Peek()
	if !ok {
		cur.Reset(cp)
		return cursor.Located[ast.GroupKind]{}, false, diag.New(diag.UnexpectedEndOfInput, toDiag(loc(cur, start)))
	}

	switch r {
	case ':':
		cur.Advance()
		return kindLocated(ast.GroupKind{Tag: ast.GroupNonCapture}, cur, start), true, nil
	case '|':
		cur.Advance()
		return kindLocated(ast.GroupKind{Tag: ast.GroupNonCaptureReset}, cur, start), true, nil
	case '>':
		cur.Advance()
		return kindLocated(ast.GroupKind{Tag: ast.GroupAtomicNonCapturing}, cur, start), true, nil
	case '=':
		cur.Advance()
		return kindLocated(ast.GroupKind{Tag: ast.GroupLookahead}, cur, start), true, nil
	case '!':
		cur.Advance()
		return kindLocated(ast.GroupKind{Tag: ast.GroupNegativeLookahead}, cur, start), true, nil
	case '*':
		cur.Advance()
		return kindLocated(ast.GroupKind{Tag: ast.GroupNonAtomicLookahead}, cur, start), true, nil
	case '<':
		return lexAngleIntroducedGroup(cur, start, cp)
	case 'P':
		return lexPIntroducedGroup(cur, start, cp)
	case '\'':
		return lexQuoteNamedCapture(cur, start)
	case '^':
		cur.Advance()
		seq, _ := readOptionSequence(cur)
		return kindLocated(ast.GroupKind{Tag: ast.GroupAtomicScriptRun, OptionSequence: seq}, cur, start), true, nil
	default:
		if isLetterOrDash(r) {
			return lexOptionSequence(cur, start, cp)
		}
		cur.Reset(cp)
		return cursor.Located[ast.GroupKind]{}, false, nil
	}
}

func kindLocated(k ast.GroupKind, cur *cursor.Cursor, start cursor.Position) cursor.Located[ast.GroupKind] {
	return cursor.NewLocated(k, start, cur.CurrentPosition())
}

func isLetterOrDash(r rune) bool {
	return r == '-' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// lexAngleIntroducedGroup handles `(?<name>`, `(?<=`, `(?<!`.
func lexAngleIntroducedGroup(cur *cursor.Cursor, start cursor.Position, cp cursor.Checkpoint) (cursor.Located[ast.GroupKind], bool, *diag.LocatedError) {
	cur.Advance() // '<'
	switch r, ok := cur.Peek(); {
	case ok && r == '=':
		cur.Advance()
		return kindLocated(ast.GroupKind{Tag: ast.GroupLookbehind}, cur, start), true, nil
	case ok && r == '!':
		cur.Advance()
		return kindLocated(ast.GroupKind{Tag: ast.GroupNegativeLookbehind}, cur, start), true, nil
	default:
		name, err := readDelimitedName(cur, '>', start)
		if err != nil {
			cur.Reset(cp)
			return cursor.Located[ast.GroupKind]{}, false, err
		}
		return kindLocated(ast.GroupKind{Tag: ast.GroupNamedCapture, Name: name}, cur, start), true, nil
	}
}

// lexPIntroducedGroup handles `(?P<name>`. Any other `(?P` text,
// including the `(?P=name)` back-reference form, is not recognized:
// the cursor is reset and no match (and no error) is reported.
func lexPIntroducedGroup(cur *cursor.Cursor, start cursor.Position, cp cursor.Checkpoint) (cursor.Located[ast.GroupKind], bool, *diag.LocatedError) {
	cur.Advance() // 'P'
	if !cur.TryEat('<') {
		cur.Reset(cp)
		return cursor.Located[ast.GroupKind]{}, false, nil
	}
	name, err := readDelimitedName(cur, '>', start)
	if err != nil {
		cur.Reset(cp)
		return cursor.Located[ast.GroupKind]{}, false, err
	}
	return kindLocated(ast.GroupKind{Tag: ast.GroupNamedCapture, Name: name}, cur, start), true, nil
}

// lexQuoteNamedCapture handles Oniguruma's `(?'name'`.
func lexQuoteNamedCapture(cur *cursor.Cursor, start cursor.Position) (cursor.Located[ast.GroupKind], bool, *diag.LocatedError) {
	cur.Advance() // '\''
	name, err := readDelimitedName(cur, '\'', start)
	if err != nil {
		return cursor.Located[ast.GroupKind]{}, false, err
	}
	return kindLocated(ast.GroupKind{Tag: ast.GroupNamedCapture, Name: name}, cur, start), true, nil
}

// lexOptionSequence handles `(?ims-x:` and `(?ims-x)`.
func lexOptionSequence(cur *cursor.Cursor, start cursor.Position, cp cursor.Checkpoint) (cursor.Located[ast.GroupKind], bool, *diag.LocatedError) {
	seq, ok := readOptionSequence(cur)
	if !ok {
		cur.Reset(cp)
		return cursor.Located[ast.GroupKind]{}, false, nil
	}
	switch {
	case cur.TryEat(':'):
		return kindLocated(ast.GroupKind{Tag: ast.GroupChangeMatchingOptions, OptionSequence: seq, IsIsolated: false}, cur, start), true, nil
	case cur.TryEat(')'):
		return kindLocated(ast.GroupKind{Tag: ast.GroupChangeMatchingOptions, OptionSequence: seq, IsIsolated: true}, cur, start), true, nil
	default:
		cur.Reset(cp)
		return cursor.Located[ast.GroupKind]{}, false, diag.New(diag.ExpectedGroupCloser, toDiag(loc(cur, start)))
	}
}

func readOptionSequence(cur *cursor.Cursor) (string, bool) {
	var seq strings.Builder
	for {
		r, ok := cur.Peek()
		if !ok || !isLetterOrDash(r) {
			break
		}
		seq.WriteRune(r)
		cur.Advance()
	}
	return seq.String(), seq.Len() > 0
}

func readDelimitedName(cur *cursor.Cursor, closeCh rune, start cursor.Position) (string, *diag.LocatedError) {
	var name strings.Builder
	for {
		r, ok := cur.Peek()
		if !ok || r == closeCh {
			break
		}
		name.WriteRune(r)
		cur.Advance()
	}
	if !cur.TryEat(closeCh) {
		return "", diag.New(diag.Expected, toDiag(loc(cur, start)), string(closeCh))
	}
	return name.String(), nil
}

// LexBalancedCapture handles .NET's `(?<name1-name2>` and
// `(?'name1-name2'` balanced capture groups, where the dash separates
// the new name from the one being popped (name1 may be absent).
func LexBalancedCapture(cur *cursor.Cursor) (cursor.Located[ast.GroupKind], bool, *diag.LocatedError) {
	start := cur.CurrentPosition()
	cp := cur.Mark()
	if !cur.TryEatString("(?<") && !cur.TryEatString("(?'") {
		return cursor.Located[ast.GroupKind]{}, false, nil
	}
	closeCh := '>'
	if cur.Slice(start, cur.CurrentPosition())[2] == '\'' {
		closeCh = '\''
	}

	var body strings.Builder
	for {
		r, ok := cur.Peek()
		if !ok || r == closeCh {
			break
		}
		body.WriteRune(r)
		cur.Advance()
	}
	if !cur.TryEat(closeCh) {
		cur.Reset(cp)
		return cursor.Located[ast.GroupKind]{}, false, nil
	}
	text := body.String()
	dashIdx := strings.IndexByte(text, '-')
	if dashIdx < 0 {
		cur.Reset(cp)
		return cursor.Located[ast.GroupKind]{}, false, nil
	}
	name, prior := text[:dashIdx], text[dashIdx+1:]
	if prior == "" {
		cur.Reset(cp)
		return cursor.Located[ast.GroupKind]{}, false, nil
	}
	return kindLocated(ast.GroupKind{Tag: ast.GroupBalancedCapture, Name: name, PriorName: prior}, cur, start), true, nil
}

// LexCallout recognizes PCRE's `(?C)`, `(?Cn)`, and the named/string
// callout forms `(?C"text")` / `(?C'text')`.
func LexCallout(cur *cursor.Cursor) (cursor.Located[ast.AtomKind], bool, *diag.LocatedError) {
	start := cur.CurrentPosition()
	cp := cur.Mark()
	if !cur.TryEatString("(?C") {
		return cursor.Located[ast.AtomKind]{}, false, nil
	}

	var digits strings.Builder
	for {
		r, ok := cur.Peek()
		if !ok || !isDigit(r) {
			break
		}
		digits.WriteRune(r)
		cur.Advance()
	}
	if digits.Len() > 0 {
		if !cur.TryEat(')') {
			cur.Reset(cp)
			return cursor.Located[ast.AtomKind]{}, false, diag.New(diag.ExpectedGroupCloser, toDiag(loc(cur, start)))
		}
		n, _ := strconv.Atoi(digits.String())
		return located(ast.AtomKind{Tag: ast.AtomCallout, Callout: ast.CalloutKind{Number: &n}}, cur, start), true, nil
	}

	if r, ok := cur.Peek(); ok && (r == '"' || r == '\'') {
		closeCh := r
		cur.Advance()
		var text strings.Builder
		for {
			r, ok := cur.Peek()
			if !ok || r == closeCh {
				break
			}
			text.WriteRune(r)
			cur.Advance()
		}
		if !cur.TryEat(closeCh) || !cur.TryEat(')') {
			cur.Reset(cp)
			return cursor.Located[ast.AtomKind]{}, false, diag.New(diag.ExpectedGroupCloser, toDiag(loc(cur, start)))
		}
		return located(ast.AtomKind{Tag: ast.AtomCallout, Callout: ast.CalloutKind{Text: text.String()}}, cur, start), true, nil
	}

	if !cur.TryEat(')') {
		cur.Reset(cp)
		return cursor.Located[ast.AtomKind]{}, false, diag.New(diag.ExpectedGroupCloser, toDiag(loc(cur, start)))
	}
	return located(ast.AtomKind{Tag: ast.AtomCallout}, cur, start), true, nil
}

// LexSubpatternCall recognizes the `(?…)` recursion/subpattern-call
// forms that never wrap a nested alternation: `(?R)`, `(?0)`,
// `(?&name)`, `(?P>name)`, `(?n)`, `(?+n)`, `(?-n)`. The parser tries
// this before LexGroupStart and LexKnownConditionalStart, since all
// three share the `(?` prefix.
func LexSubpatternCall(cur *cursor.Cursor) (cursor.Located[ast.AtomKind], bool, *diag.LocatedError) {
	start := cur.CurrentPosition()
	cp := cur.Mark()
	if !cur.TryEatString("(?") {
		return cursor.Located[ast.AtomKind]{}, false, nil
	}

	if cur.TryEat('R') {
		if !cur.TryEat(')') {
			cur.Reset(cp)
			return cursor.Located[ast.AtomKind]{}, false, nil
		}
		ref := ast.Reference{Tag: ast.RefAbsolute, Absolute: 0}
		return located(ast.AtomKind{Tag: ast.AtomSubpattern, Reference: ref}, cur, start), true, nil
	}

	if cur.TryEatString("P>") {
		name, err := readDelimitedName(cur, ')', start)
		if err != nil {
			cur.Reset(cp)
			return cursor.Located[ast.AtomKind]{}, false, nil
		}
		return located(ast.AtomKind{Tag: ast.AtomSubpattern, Reference: ast.Reference{Tag: ast.RefNamed, Name: name}}, cur, start), true, nil
	}

	if cur.TryEat('&') {
		name, err := readDelimitedName(cur, ')', start)
		if err != nil {
			cur.Reset(cp)
			return cursor.Located[ast.AtomKind]{}, false, nil
		}
		return located(ast.AtomKind{Tag: ast.AtomSubpattern, Reference: ast.Reference{Tag: ast.RefNamed, Name: name}}, cur, start), true, nil
	}

	sign := 0
	if r, ok := cur.Peek(); ok && (r == '+' || r == '-') {
		if r == '+' {
			sign = 1
		} else {
			sign = -1
		}
		cur.Advance()
	}
	var digits strings.Builder
	for {
		r, ok := cur.Peek()
		if !ok || !isDigit(r) {
			break
		}
		digits.WriteRune(r)
		cur.Advance()
	}
	if digits.Len() == 0 || !cur.TryEat(')') {
		cur.Reset(cp)
		return cursor.Located[ast.AtomKind]{}, false, nil
	}
	n, _ := strconv.Atoi(digits.String())
	if sign != 0 {
		return located(ast.AtomKind{Tag: ast.AtomSubpattern, Reference: ast.Reference{Tag: ast.RefRelative, Relative: sign * n}}, cur, start), true, nil
	}
	return located(ast.AtomKind{Tag: ast.AtomSubpattern, Reference: ast.Reference{Tag: ast.RefAbsolute, Absolute: n}}, cur, start), true, nil
}
