package lexer

import (
	"strconv"
	"strings"

	"github.com/cwbudde/go-regexast/internal/ast"
	"github.com/cwbudde/go-regexast/internal/cursor"
	"github.com/cwbudde/go-regexast/internal/diag"
)

// LexQuantifier recognizes `* + ? {n} {n,} {n,m}` followed by an
// optional `?` (reluctant) or `+` (possessive) suffix. `{n,m}` with
// n > m is a hard error (InvalidQuantifierRange), not a non-match,
// since by the time the comma and both numbers are seen the construct
// is unambiguously a quantifier attempt.
func LexQuantifier(cur *cursor.Cursor) (cursor.Located[struct {
	Amount ast.Amount
	Kind   ast.QuantKind
}], bool, *diag.LocatedError) {
	type result = struct {
		Amount ast.Amount
		Kind   ast.QuantKind
	}
	start := cur.CurrentPosition()
	cp := cur.Mark()

	var amount ast.Amount
	switch r, _ := cur.Peek(); r {
	case '*':
		cur.Advance()
		amount = ast.Amount{Tag: ast.AmountZeroOrMore}
	case '+':
		cur.Advance()
		amount = ast.Amount{Tag: ast.AmountOneOrMore}
	case '?':
		cur.Advance()
		amount = ast.Amount{Tag: ast.AmountZeroOrOne}
	case '{':
		a, ok, err := lexBraceAmount(cur)
		if err != nil {
			return cursor.Located[result]{}, false, err
		}
		if !ok {
			cur.Reset(cp)
			return cursor.Located[result]{}, false, nil
		}
		amount = a
	default:
		return cursor.Located[result]{}, false, nil
	}

	kind := ast.QuantEager
	switch r, _ := cur.Peek(); r {
	case '?':
		cur.Advance()
		kind = ast.QuantReluctant
	case '+':
		cur.Advance()
		kind = ast.QuantPossessive
	}

	return cursor.NewLocated(result{Amount: amount, Kind: kind}, start, cur.CurrentPosition()), true, nil
}

// lexBraceAmount parses the body of `{…}` after the opening brace has
// been peeked but not consumed. Returns ok=false (cursor untouched)
// when the braces don't contain a number — e.g. `{foo}` is a literal
// '{', not a quantifier attempt — and a hard error only once the
// shape is unambiguously a malformed quantifier.
func lexBraceAmount(cur *cursor.Cursor) (ast.Amount, bool, *diag.LocatedError) {
	start := cur.CurrentPosition()
	cp := cur.Mark()
	cur.Advance() // '{'

	lo, hasLo := readDigits(cur)
	if cur.TryEat(',') {
		hi, hasHi := readDigits(cur)
		if !cur.TryEat('}') {
			cur.Reset(cp)
			return ast.Amount{}, false, nil
		}
		switch {
		case !hasLo && !hasHi:
			cur.Reset(cp)
			return ast.Amount{}, false, nil
		case hasLo && !hasHi:
			return ast.Amount{Tag: ast.AmountNOrMore, Lo: lo}, true, nil
		case !hasLo && hasHi:
			return ast.Amount{Tag: ast.AmountUpToN, Hi: hi}, true, nil
		default:
			if lo > hi {
				return ast.Amount{}, false, diag.Newf(diag.InvalidQuantifierRange, toDiag(loc(cur, start)), lo, hi)
			}
			return ast.Amount{Tag: ast.AmountRange, Lo: lo, Hi: hi}, true, nil
		}
	}

	if !hasLo || !cur.TryEat('}') {
		cur.Reset(cp)
		return ast.Amount{}, false, nil
	}
	return ast.Amount{Tag: ast.AmountExactly, Lo: lo}, true, nil
}

func readDigits(cur *cursor.Cursor) (int, bool) {
	var digits strings.Builder
	for {
		r, ok := cur.Peek()
		if !ok || !isDigit(r) {
			break
		}
		digits.WriteRune(r)
		cur.Advance()
	}
	if digits.Len() == 0 {
		return 0, false
	}
	n, _ := strconv.Atoi(digits.String())
	return n, true
}
