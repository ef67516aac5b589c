package lexer

import (
	"strings"
	"unicode"

	"github.com/cwbudde/go-regexast/internal/ast"
	"github.com/cwbudde/go-regexast/internal/cursor"
	"github.com/cwbudde/go-regexast/internal/diag"
	"golang.org/x/text/unicode/rangetable"
)

// lexPropertyEscape recognizes `\p{…}` / `\P{…}` and the bare
// single-letter short forms `\pL`, `\PL`. Classification only: unknown
// names are preserved, not rejected. Semantic validation is a
// consumer's concern.
func lexPropertyEscape(cur *cursor.Cursor, start cursor.Position) (cursor.Located[ast.AtomKind], bool, *diag.LocatedError) {
	negatedForm, _ := cur.Peek()
	negated := negatedForm == 'P'
	cur.Advance() // 'p' or 'P'

	if !cur.TryEat('{') {
		// Short form: \pL, \Pn, … — a single category letter.
		r, ok := cur.Peek()
		if !ok {
			return cursor.Located[ast.AtomKind]{}, false, diag.New(diag.UnexpectedEndOfInput, toDiag(loc(cur, start)))
		}
		cur.Advance()
		spec := classifyProperty(string(r))
		spec.Negated = negated
		return located(ast.AtomKind{Tag: ast.AtomProperty, Property: spec}, cur, start), true, nil
	}

	var body strings.Builder
	for {
		r, ok := cur.Peek()
		if !ok || r == '}' {
			break
		}
		body.WriteRune(r)
		cur.Advance()
	}
	if !cur.TryEat('}') {
		return cursor.Located[ast.AtomKind]{}, false, diag.New(diag.ExpectedBrace, toDiag(loc(cur, start)))
	}

	text := strings.TrimSpace(body.String())
	innerNegated := strings.HasPrefix(text, "^")
	if innerNegated {
		text = text[1:]
	}
	spec := classifyProperty(text)
	spec.Negated = negated != innerNegated
	return located(ast.AtomKind{Tag: ast.AtomProperty, Property: spec}, cur, start), true, nil
}

// classifyProperty implements the `\p{…}` mini-grammar: bare boolean
// properties; general categories; script=/sc=/scx=/gc= prefixes;
// otherwise other(key?, value).
func classifyProperty(text string) ast.PropertySpec {
	if idx := strings.IndexByte(text, '='); idx >= 0 {
		key := strings.ToLower(strings.TrimSpace(text[:idx]))
		value := strings.TrimSpace(text[idx+1:])
		switch key {
		case "script", "sc":
			return ast.PropertySpec{Kind: ast.PropertyScript, Key: key, Value: value}
		case "scx":
			return ast.PropertySpec{Kind: ast.PropertyScriptExtension, Key: key, Value: value}
		case "gc", "general_category":
			if isKnownCategory(value) {
				return ast.PropertySpec{Kind: ast.PropertyGeneralCategory, Key: key, Value: value}
			}
			return ast.PropertySpec{Kind: ast.PropertyOther, Key: key, Value: value}
		default:
			return ast.PropertySpec{Kind: ast.PropertyOther, Key: key, Value: value}
		}
	}

	if isKnownCategory(text) {
		return ast.PropertySpec{Kind: ast.PropertyGeneralCategory, Value: text}
	}
	if isKnownBooleanProperty(text) {
		return ast.PropertySpec{Kind: ast.PropertyBoolean, Value: text}
	}
	if _, ok := unicode.Scripts[text]; ok {
		return ast.PropertySpec{Kind: ast.PropertyScript, Value: text}
	}
	return ast.PropertySpec{Kind: ast.PropertyOther, Value: text}
}

var booleanProperties = map[string]bool{
	"Alpha": true, "Alphabetic": true, "Upper": true, "Uppercase": true,
	"Lower": true, "Lowercase": true, "White_Space": true, "Space": true,
	"Digit": true, "Hex": true, "Hex_Digit": true, "ASCII": true,
	"Alnum": true, "Graph": true, "Print": true, "Punct": true,
	"Word": true, "Cntrl": true, "Blank": true,
}

func isKnownBooleanProperty(name string) bool { return booleanProperties[name] }

var generalCategories = map[string]bool{
	"L": true, "Lu": true, "Ll": true, "Lt": true, "Lm": true, "Lo": true,
	"M": true, "Mn": true, "Mc": true, "Me": true,
	"N": true, "Nd": true, "Nl": true, "No": true,
	"P": true, "Pc": true, "Pd": true, "Ps": true, "Pe": true, "Pi": true, "Pf": true, "Po": true,
	"S": true, "Sm": true, "Sc": true, "Sk": true, "So": true,
	"Z": true, "Zs": true, "Zl": true, "Zp": true,
	"C": true, "Cc": true, "Cf": true, "Cs": true, "Co": true, "Cn": true,
}

func isKnownCategory(name string) bool { return generalCategories[name] }

// mergedScriptExtension builds the combined range table for an `scx=`
// property that lists more than one script (`scx=Greek,Latin`),
// reusing golang.org/x/text/unicode/rangetable's Merge combinator in
// the same way the onflow/cadence example composes character sets.
// Returns nil when any named script is unknown. classifyProperty does
// not call it: an `scx=` property is recorded as
// PropertyScriptExtension with its value text as written.
func mergedScriptExtension(value string) *unicode.RangeTable {
	names := strings.Split(value, ",")
	tables := make([]*unicode.RangeTable, 0, len(names))
	for _, n := range names {
		t, ok := unicode.Scripts[strings.TrimSpace(n)]
		if !ok {
			return nil
		}
		tables = append(tables, t)
	}
	if len(tables) == 0 {
		return nil
	}
	return rangetable.Merge(tables...)
}
