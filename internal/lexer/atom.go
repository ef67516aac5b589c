package lexer

import (
	"strconv"
	"strings"

	"github.com/cwbudde/go-regexast/internal/ast"
	"github.com/cwbudde/go-regexast/internal/cursor"
	"github.com/cwbudde/go-regexast/internal/diag"
)

// LexAtom recognizes a single atom: an escape, an anchor, a
// backtracking directive, or a literal character. It is the
// lowest-priority scanner the parser tries for a QuantOperand — by
// the time it is called, the cursor is known not to be positioned at
// EOF, ')', '|', or ']' (those are handled by the parser's
// Concatenation/CustomCharClass loops).
func LexAtom(cur *cursor.Cursor, ctx Context) (cursor.Located[ast.AtomKind], bool, *diag.LocatedError) {
	start := cur.CurrentPosition()
	r, ok := cur.Peek()
	if !ok {
		return cursor.Located[ast.AtomKind]{}, false, nil
	}

	if r == '\\' {
		return lexEscape(cur, ctx, start)
	}

	if !ctx.InCustomCharacterClass {
		switch r {
		case '^':
			cur.Advance()
			return located(ast.AtomKind{Tag: ast.AtomStartOfLine}, cur, start), true, nil
		case '$':
			cur.Advance()
			return located(ast.AtomKind{Tag: ast.AtomEndOfLine}, cur, start), true, nil
		case '.':
			cur.Advance()
			return located(ast.AtomKind{Tag: ast.AtomAny}, cur, start), true, nil
		}
		if r == '(' {
			if btd, okBTD, err := lexBacktrackingDirective(cur, start); okBTD || err != nil {
				return btd, okBTD, err
			}
		}
	}

	cur.Advance()
	return located(ast.AtomKind{Tag: ast.AtomChar, Char: r}, cur, start), true, nil
}

func located(kind ast.AtomKind, cur *cursor.Cursor, start cursor.Position) cursor.Located[ast.AtomKind] {
	return cursor.NewLocated(kind, start, cur.CurrentPosition())
}

func loc(cur *cursor.Cursor, start cursor.Position) cursor.SourceLocation {
	return cursor.SourceLocation{Start: start, End: cur.CurrentPosition()}
}

// lexBacktrackingDirective recognizes `(*VERB)` / `(*VERB:NAME)`.
func lexBacktrackingDirective(cur *cursor.Cursor, start cursor.Position) (cursor.Located[ast.AtomKind], bool, *diag.LocatedError) {
	cp := cur.Mark()
	if !cur.TryEatString("(*") {
		return cursor.Located[ast.AtomKind]{}, false, nil
	}
	var verb strings.Builder
	for {
		r, ok := cur.Peek()
		if !ok || r == ')' || r == ':' {
			break
		}
		verb.WriteRune(r)
		cur.Advance()
	}
	if !isKnownVerb(verb.String()) {
		cur.Reset(cp)
		return cursor.Located[ast.AtomKind]{}, false, nil
	}
	var name string
	if cur.TryEat(':') {
		var nb strings.Builder
		for {
			r, ok := cur.Peek()
			if !ok || r == ')' {
				break
			}
			nb.WriteRune(r)
			cur.Advance()
		}
		name = nb.String()
	}
	if !cur.TryEat(')') {
		cur.Reset(cp)
		return cursor.Located[ast.AtomKind]{}, false, diag.New(diag.UnexpectedEndOfInput, toDiag(loc(cur, start)))
	}
	kind := ast.AtomKind{Tag: ast.AtomBacktrackingDirective, Verb: verb.String(), Name: name}
	return located(kind, cur, start), true, nil
}

var backtrackingVerbs = map[string]bool{
	"ACCEPT": true, "FAIL": true, "F": true, "MARK": true, "COMMIT": true,
	"PRUNE": true, "SKIP": true, "THEN": true,
}

func isKnownVerb(v string) bool { return backtrackingVerbs[v] }

// lexEscape dispatches on the character following a consumed '\'.
func lexEscape(cur *cursor.Cursor, ctx Context, start cursor.Position) (cursor.Located[ast.AtomKind], bool, *diag.LocatedError) {
	cur.Advance() // consume '\'
	r, ok := cur.Peek()
	if !ok {
		return cursor.Located[ast.AtomKind]{}, false, diag.New(diag.UnexpectedEndOfInput, toDiag(loc(cur, start)))
	}

	switch r {
	case 'a':
		cur.Advance()
		return located(ast.AtomKind{Tag: ast.AtomEscaped, Letter: 'a'}, cur, start), true, nil
	case 'e':
		cur.Advance()
		return located(ast.AtomKind{Tag: ast.AtomEscaped, Letter: 'e'}, cur, start), true, nil
	case 'f':
		cur.Advance()
		return located(ast.AtomKind{Tag: ast.AtomEscaped, Letter: 'f'}, cur, start), true, nil
	case 'n':
		cur.Advance()
		return located(ast.AtomKind{Tag: ast.AtomEscaped, Letter: 'n'}, cur, start), true, nil
	case 'r':
		cur.Advance()
		return located(ast.AtomKind{Tag: ast.AtomEscaped, Letter: 'r'}, cur, start), true, nil
	case 't':
		cur.Advance()
		return located(ast.AtomKind{Tag: ast.AtomEscaped, Letter: 't'}, cur, start), true, nil
	case 'A':
		cur.Advance()
		return located(ast.AtomKind{Tag: ast.AtomEscaped, Letter: 'A'}, cur, start), true, nil
	case 'Z':
		cur.Advance()
		return located(ast.AtomKind{Tag: ast.AtomEscaped, Letter: 'Z'}, cur, start), true, nil
	case 'z':
		cur.Advance()
		return located(ast.AtomKind{Tag: ast.AtomEscaped, Letter: 'z'}, cur, start), true, nil
	case 'b':
		cur.Advance()
		return located(ast.AtomKind{Tag: ast.AtomEscaped, Letter: 'b'}, cur, start), true, nil
	case 'B':
		cur.Advance()
		return located(ast.AtomKind{Tag: ast.AtomEscaped, Letter: 'B'}, cur, start), true, nil
	case 'G':
		cur.Advance()
		return located(ast.AtomKind{Tag: ast.AtomEscaped, Letter: 'G'}, cur, start), true, nil
	case 'K':
		cur.Advance()
		return located(ast.AtomKind{Tag: ast.AtomEscaped, Letter: 'K'}, cur, start), true, nil
	case 'd', 'D', 'w', 'W', 's', 'S', 'h', 'v', 'R':
		// Character class shorthands (\d \w \s \h \v \R and their
		// negations) are recorded distinctly from a literal letter so
		// later passes, and range-operand checks here, can tell them
		// apart.
		cur.Advance()
		return located(ast.AtomKind{Tag: ast.AtomEscaped, Letter: r}, cur, start), true, nil
	case 'x':
		return lexHexEscape(cur, start)
	case 'u':
		return lexUEscape(cur, start)
	case 'U':
		return lexUppercaseUEscape(cur, start)
	case 'N':
		return lexNamedCharacter(cur, start)
	case 'p', 'P':
		return lexPropertyEscape(cur, start)
	case 'c':
		return lexKeyboardControl(cur, start)
	case 'M':
		return lexKeyboardMeta(cur, start)
	case 'k', 'g':
		if ref, ok2, err := lexNamedOrNumberedReference(cur, start); ok2 || err != nil {
			return ref, ok2, err
		}
		fallthrough
	default:
		if isDigit(r) {
			return lexDigitEscape(cur, ctx, start)
		}
		// A literal escaped character, e.g. \. \* \\.
		cur.Advance()
		return located(ast.AtomKind{Tag: ast.AtomChar, Char: r}, cur, start), true, nil
	}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isOctalDigit(r rune) bool { return r >= '0' && r <= '7' }

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// lexHexEscape recognizes `\xhh` and `\x{h…}`.
func lexHexEscape(cur *cursor.Cursor, start cursor.Position) (cursor.Located[ast.AtomKind], bool, *diag.LocatedError) {
	cur.Advance() // 'x'
	if cur.TryEat('{') {
		var digits strings.Builder
		for {
			r, ok := cur.Peek()
			if !ok || r == '}' {
				break
			}
			if !isHexDigit(r) {
				return cursor.Located[ast.AtomKind]{}, false, diag.New(diag.InvalidUnicodeScalar, toDiag(loc(cur, start)))
			}
			digits.WriteRune(r)
			cur.Advance()
		}
		if !cur.TryEat('}') {
			return cursor.Located[ast.AtomKind]{}, false, diag.New(diag.ExpectedBrace, toDiag(loc(cur, start)))
		}
		if digits.Len() == 0 {
			return cursor.Located[ast.AtomKind]{}, false, diag.New(diag.InvalidUnicodeScalar, toDiag(loc(cur, start)))
		}
		v, err := strconv.ParseInt(digits.String(), 16, 32)
		if err != nil {
			return cursor.Located[ast.AtomKind]{}, false, diag.New(diag.InvalidUnicodeScalar, toDiag(loc(cur, start)))
		}
		return located(ast.AtomKind{Tag: ast.AtomScalar, Scalar: rune(v)}, cur, start), true, nil
	}
	var digits strings.Builder
	for i := 0; i < 2; i++ {
		r, ok := cur.Peek()
		if !ok || !isHexDigit(r) {
			break
		}
		digits.WriteRune(r)
		cur.Advance()
	}
	if digits.Len() == 0 {
		// \x with no digits denotes NUL in several dialects.
		return located(ast.AtomKind{Tag: ast.AtomScalar, Scalar: 0}, cur, start), true, nil
	}
	v, _ := strconv.ParseInt(digits.String(), 16, 32)
	return located(ast.AtomKind{Tag: ast.AtomScalar, Scalar: rune(v)}, cur, start), true, nil
}

// lexUEscape recognizes ICU/ECMAScript `\uhhhh` and `\u{h…}`, the
// former combined with a following `\uhhhh` low surrogate through the
// surrogate-pair helper in unicode.go.
func lexUEscape(cur *cursor.Cursor, start cursor.Position) (cursor.Located[ast.AtomKind], bool, *diag.LocatedError) {
	cur.Advance() // 'u'
	if cur.TryEat('{') {
		var digits strings.Builder
		for {
			r, ok := cur.Peek()
			if !ok || r == '}' {
				break
			}
			if !isHexDigit(r) {
				return cursor.Located[ast.AtomKind]{}, false, diag.New(diag.InvalidUnicodeScalar, toDiag(loc(cur, start)))
			}
			digits.WriteRune(r)
			cur.Advance()
		}
		if !cur.TryEat('}') {
			return cursor.Located[ast.AtomKind]{}, false, diag.New(diag.ExpectedBrace, toDiag(loc(cur, start)))
		}
		v, err := strconv.ParseInt(digits.String(), 16, 32)
		if err != nil || !isValidScalar(rune(v)) {
			return cursor.Located[ast.AtomKind]{}, false, diag.New(diag.InvalidUnicodeScalar, toDiag(loc(cur, start)))
		}
		return located(ast.AtomKind{Tag: ast.AtomScalar, Scalar: rune(v)}, cur, start), true, nil
	}
	var digits strings.Builder
	for i := 0; i < 4; i++ {
		r, ok := cur.Peek()
		if !ok || !isHexDigit(r) {
			return cursor.Located[ast.AtomKind]{}, false, diag.New(diag.InvalidUnicodeScalar, toDiag(loc(cur, start)))
		}
		digits.WriteRune(r)
		cur.Advance()
	}
	v, _ := strconv.ParseInt(digits.String(), 16, 32)
	high := rune(v)
	if isHighSurrogate(high) {
		// Attempt to combine with a trailing \uDCxx low surrogate,
		// mirroring UTF-16 surrogate-pair decoding.
		cp := cur.Mark()
		if cur.TryEatString(`\u`) {
			var low strings.Builder
			ok := true
			for i := 0; i < 4; i++ {
				r, okPeek := cur.Peek()
				if !okPeek || !isHexDigit(r) {
					ok = false
					break
				}
				low.WriteRune(r)
				cur.Advance()
			}
			if ok {
				lv, _ := strconv.ParseInt(low.String(), 16, 32)
				if isLowSurrogate(rune(lv)) {
					combined := combineSurrogates(high, rune(lv))
					return located(ast.AtomKind{Tag: ast.AtomScalar, Scalar: combined}, cur, start), true, nil
				}
			}
		}
		cur.Reset(cp)
	}
	return located(ast.AtomKind{Tag: ast.AtomScalar, Scalar: high}, cur, start), true, nil
}

// lexUppercaseUEscape recognizes PCRE's `\Uhhhhhhhh` (8 hex digits).
func lexUppercaseUEscape(cur *cursor.Cursor, start cursor.Position) (cursor.Located[ast.AtomKind], bool, *diag.LocatedError) {
	cur.Advance() // 'U'
	var digits strings.Builder
	for i := 0; i < 8; i++ {
		r, ok := cur.Peek()
		if !ok || !isHexDigit(r) {
			return cursor.Located[ast.AtomKind]{}, false, diag.New(diag.InvalidUnicodeScalar, toDiag(loc(cur, start)))
		}
		digits.WriteRune(r)
		cur.Advance()
	}
	v, err := strconv.ParseInt(digits.String(), 16, 64)
	if err != nil || !isValidScalar(rune(v)) {
		return cursor.Located[ast.AtomKind]{}, false, diag.New(diag.InvalidUnicodeScalar, toDiag(loc(cur, start)))
	}
	return located(ast.AtomKind{Tag: ast.AtomScalar, Scalar: rune(v)}, cur, start), true, nil
}

// lexNamedCharacter recognizes `\N{NAME}` and `\N{U+HEX}`.
func lexNamedCharacter(cur *cursor.Cursor, start cursor.Position) (cursor.Located[ast.AtomKind], bool, *diag.LocatedError) {
	cp := cur.Mark()
	cur.Advance() // 'N'
	if !cur.TryEat('{') {
		// Bare \N means "any character except newline" in several
		// dialects; record it as an escaped letter.
		cur.Reset(cp)
		cur.Advance()
		return located(ast.AtomKind{Tag: ast.AtomEscaped, Letter: 'N'}, cur, start), true, nil
	}
	var name strings.Builder
	for {
		r, ok := cur.Peek()
		if !ok || r == '}' {
			break
		}
		name.WriteRune(r)
		cur.Advance()
	}
	if !cur.TryEat('}') {
		return cursor.Located[ast.AtomKind]{}, false, diag.New(diag.ExpectedBrace, toDiag(loc(cur, start)))
	}
	nameText := name.String()
	if strings.HasPrefix(nameText, "U+") {
		v, err := strconv.ParseInt(nameText[2:], 16, 32)
		if err == nil && isValidScalar(rune(v)) {
			return located(ast.AtomKind{Tag: ast.AtomScalar, Scalar: rune(v)}, cur, start), true, nil
		}
		return cursor.Located[ast.AtomKind]{}, false, diag.New(diag.InvalidUnicodeScalar, toDiag(loc(cur, start)))
	}
	return located(ast.AtomKind{Tag: ast.AtomNamedCharacter, Name: normalizeUnicodeName(nameText)}, cur, start), true, nil
}

// lexKeyboardControl recognizes `\cX`.
func lexKeyboardControl(cur *cursor.Cursor, start cursor.Position) (cursor.Located[ast.AtomKind], bool, *diag.LocatedError) {
	cur.Advance() // 'c'
	r, ok := cur.Peek()
	if !ok {
		return cursor.Located[ast.AtomKind]{}, false, diag.New(diag.UnexpectedEndOfInput, toDiag(loc(cur, start)))
	}
	cur.Advance()
	return located(ast.AtomKind{Tag: ast.AtomKeyboardControl, Char: r}, cur, start), true, nil
}

// lexKeyboardMeta recognizes Oniguruma's `\M-X` and `\M-\C-X`.
func lexKeyboardMeta(cur *cursor.Cursor, start cursor.Position) (cursor.Located[ast.AtomKind], bool, *diag.LocatedError) {
	cp := cur.Mark()
	cur.Advance() // 'M'
	if !cur.TryEat('-') {
		cur.Reset(cp)
		cur.Advance()
		return located(ast.AtomKind{Tag: ast.AtomChar, Char: 'M'}, cur, start), true, nil
	}
	if cur.TryEatString(`\C-`) {
		r, ok := cur.Peek()
		if !ok {
			return cursor.Located[ast.AtomKind]{}, false, diag.New(diag.UnexpectedEndOfInput, toDiag(loc(cur, start)))
		}
		cur.Advance()
		return located(ast.AtomKind{Tag: ast.AtomKeyboardMetaControl, Char: r}, cur, start), true, nil
	}
	r, ok := cur.Peek()
	if !ok {
		return cursor.Located[ast.AtomKind]{}, false, diag.New(diag.UnexpectedEndOfInput, toDiag(loc(cur, start)))
	}
	cur.Advance()
	return located(ast.AtomKind{Tag: ast.AtomKeyboardMeta, Char: r}, cur, start), true, nil
}

// lexDigitEscape disambiguates a back-reference from an octal escape
// using ctx.PriorGroupCount.
func lexDigitEscape(cur *cursor.Cursor, ctx Context, start cursor.Position) (cursor.Located[ast.AtomKind], bool, *diag.LocatedError) {
	if first, _ := cur.Peek(); first == '0' {
		// Leading zero is always octal, up to 3 digits total.
		var digits strings.Builder
		for digits.Len() < 3 {
			r, ok := cur.Peek()
			if !ok || !isOctalDigit(r) {
				break
			}
			digits.WriteRune(r)
			cur.Advance()
		}
		v, _ := strconv.ParseInt(digits.String(), 8, 32)
		return located(ast.AtomKind{Tag: ast.AtomScalar, Scalar: rune(v)}, cur, start), true, nil
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
	n, _ := strconv.Atoi(digits.String())
	if n <= ctx.PriorGroupCount {
		return located(ast.AtomKind{
			Tag:       ast.AtomBackreference,
			Reference: ast.Reference{Tag: ast.RefAbsolute, Absolute: n},
		}, cur, start), true, nil
	}
	if digits.Len() <= 3 && isAllOctal(digits.String()) {
		v, _ := strconv.ParseInt(digits.String(), 8, 32)
		return located(ast.AtomKind{Tag: ast.AtomScalar, Scalar: rune(v)}, cur, start), true, nil
	}
	// Too large to be octal and exceeds prior group count: still a
	// back-reference (dialects resolve forward references at a later
	// phase that is out of scope here).
	return located(ast.AtomKind{
		Tag:       ast.AtomBackreference,
		Reference: ast.Reference{Tag: ast.RefAbsolute, Absolute: n},
	}, cur, start), true, nil
}

func isAllOctal(s string) bool {
	for _, r := range s {
		if !isOctalDigit(r) {
			return false
		}
	}
	return true
}

// lexNamedOrNumberedReference recognizes `\k<name>`, `\k'name'`,
// `\k{name}`, `\g{name}`, `\g{n}`, `\g<n>`, each optionally suffixed
// with a `±n` recursion level.
func lexNamedOrNumberedReference(cur *cursor.Cursor, start cursor.Position) (cursor.Located[ast.AtomKind], bool, *diag.LocatedError) {
	cp := cur.Mark()
	letter, _ := cur.Peek()
	cur.Advance() // 'k' or 'g'

	open, ok := cur.Peek()
	var closeCh rune
	switch open {
	case '<':
		closeCh = '>'
	case '\'':
		closeCh = '\''
	case '{':
		closeCh = '}'
	default:
		cur.Reset(cp)
		return cursor.Located[ast.AtomKind]{}, false, nil
	}
	if !ok {
		cur.Reset(cp)
		return cursor.Located[ast.AtomKind]{}, false, nil
	}
	cur.Advance()

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
		return cursor.Located[ast.AtomKind]{}, false, diag.New(diag.Expected, toDiag(loc(cur, start)), string(closeCh))
	}

	ref, err := parseReferenceBody(body.String())
	if err != nil {
		return cursor.Located[ast.AtomKind]{}, false, diag.New(diag.ExpectedNumber, toDiag(loc(cur, start)))
	}

	tag := ast.AtomBackreference
	if letter == 'g' && ref.Tag != ast.RefNamed {
		tag = ast.AtomSubpattern
	}
	return located(ast.AtomKind{Tag: tag, Reference: ref}, cur, start), true, nil
}

// parseReferenceBody parses the interior of \k<…>/\g{…}: a name, a
// signed/unsigned group number, optionally followed by a `±n`
// recursion-level suffix.
func parseReferenceBody(body string) (ast.Reference, error) {
	main, level, hasLevel := splitRecursionLevel(body)
	var ref ast.Reference
	switch {
	case main == "":
		return ast.Reference{}, strconv.ErrSyntax
	case main[0] == '+' || main[0] == '-':
		n, err := strconv.Atoi(main)
		if err != nil {
			return ast.Reference{}, err
		}
		ref = ast.Reference{Tag: ast.RefRelative, Relative: n}
	case isAllDigits(main):
		n, err := strconv.Atoi(main)
		if err != nil {
			return ast.Reference{}, err
		}
		ref = ast.Reference{Tag: ast.RefAbsolute, Absolute: n}
	default:
		ref = ast.Reference{Tag: ast.RefNamed, Name: main}
	}
	if hasLevel {
		ref.RecursionLevel = &level
	}
	return ref, nil
}

func splitRecursionLevel(body string) (main string, level int, ok bool) {
	idx := strings.LastIndexAny(body, "+-")
	if idx <= 0 {
		return body, 0, false
	}
	levelPart := body[idx:]
	n, err := strconv.Atoi(levelPart)
	if err != nil {
		return body, 0, false
	}
	return body[:idx], n, true
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isDigit(r) {
			return false
		}
	}
	return true
}

func toDiag(l cursor.SourceLocation) diag.SourceLocation {
	return diag.SourceLocation{
		StartOffset: l.Start.Offset, StartLine: l.Start.Line, StartColumn: l.Start.Column,
		EndOffset: l.End.Offset, EndLine: l.End.Line, EndColumn: l.End.Column,
	}
}
