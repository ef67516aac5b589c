package parser

import (
	"github.com/cwbudde/go-regexast/internal/ast"
	"github.com/cwbudde/go-regexast/internal/cursor"
	"github.com/cwbudde/go-regexast/internal/diag"
	"github.com/cwbudde/go-regexast/internal/lexer"
)

// parseCustomCharClass recognizes a `[…]` construct, including nested
// classes joined by the `&&`/`--`/`~~` set operators.
func (p *Parser) parseCustomCharClass() (ast.Node, bool, *diag.LocatedError) {
	start := p.cur.CurrentPosition()
	startTok, ok, err := lexer.LexCustomCCStart(p.cur)
	if err != nil {
		return nil, true, err
	}
	if !ok {
		return nil, false, nil
	}

	saved := p.ctx.InCCC
	p.ctx.InCCC = true
	members, berr := p.parseSet()
	p.ctx.InCCC = saved
	if berr != nil {
		return nil, true, berr
	}
	if !p.cur.TryEat(']') {
		return nil, true, diag.New(diag.ExpectedCustomCharacterClassMembers, toDiagLoc(loc(p.cur, p.cur.CurrentPosition())))
	}

	return ast.NewCustomCharacterClass(start, p.cur.CurrentPosition(), startTok, members), true, nil
}

// parseSet implements the left-associative set-operation grammar:
// Set = Run (BinOp Run)*, folding left so `[a&&b--c]` groups as
// `(a&&b)--c`.
func (p *Parser) parseSet() ([]ast.Member, *diag.LocatedError) {
	lhsStart := p.cur.CurrentPosition()
	lhs, err := p.parseMemberRun()
	if err != nil {
		return nil, err
	}
	for {
		op, ok, operr := lexer.LexCustomCCBinOp(p.cur)
		if operr != nil {
			return nil, operr
		}
		if !ok {
			break
		}
		rhs, rerr := p.parseMemberRun()
		if rerr != nil {
			return nil, rerr
		}
		span := cursor.SourceLocation{Start: lhsStart, End: p.cur.CurrentPosition()}
		lhs = []ast.Member{{
			Tag:   ast.MemberSetOperation,
			Loc:   span,
			SetLhs: lhs,
			SetOp:  op,
			SetRhs: rhs,
		}}
	}
	return lhs, nil
}

// parseMemberRun parses a maximal run of simple members (atoms,
// ranges, quotes, nested classes) up to `]`, a set operator, or end of
// input. A leading `]` is a literal member, never the closer.
func (p *Parser) parseMemberRun() ([]ast.Member, *diag.LocatedError) {
	var out []ast.Member
	first := true
	for {
		r, ok := p.cur.Peek()
		if !ok {
			return out, diag.New(diag.UnexpectedEndOfInput, toDiagLoc(loc(p.cur, p.cur.CurrentPosition())))
		}
		if r == ']' && !first {
			break
		}
		if !first && isCCCBinOpAhead(p.cur) {
			break
		}
		first = false
		m, err := p.parseMember()
		if err != nil {
			return out, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (p *Parser) parseMember() (ast.Member, *diag.LocatedError) {
	if node, ok, err := p.parseCustomCharClass(); ok || err != nil {
		if err != nil {
			return ast.Member{}, err
		}
		nested := node.(*ast.CustomCharacterClass)
		return ast.Member{Tag: ast.MemberNested, Loc: nested.Span, Nested: nested}, nil
	}
	if lit, ok, err := lexer.LexQuote(p.cur); ok || err != nil {
		if err != nil {
			return ast.Member{}, err
		}
		return ast.Member{Tag: ast.MemberQuote, Loc: lit.Loc, Quote: ast.NewQuote(lit.Loc, lit.Value)}, nil
	}

	atom1, ok, err := lexer.LexAtom(p.cur, p.ctx.lexerContext())
	if err != nil {
		return ast.Member{}, err
	}
	if !ok {
		return ast.Member{}, diag.New(diag.UnexpectedEndOfInput, toDiagLoc(loc(p.cur, p.cur.CurrentPosition())))
	}
	lhsNode := ast.NewAtom(atom1.Loc, atom1.Value)

	if !canStartRange(p.cur) {
		return ast.Member{Tag: ast.MemberAtom, Loc: atom1.Loc, Atom: lhsNode}, nil
	}
	if !isRangeableAtom(atom1.Value) {
		return ast.Member{}, diag.New(diag.InvalidCharacterClassRangeOperand, toDiagLoc(atom1.Loc))
	}
	dashLoc, _ := lexer.LexCustomCharClassRangeEnd(p.cur)
	atom2, ok2, err2 := lexer.LexAtom(p.cur, p.ctx.lexerContext())
	if err2 != nil {
		return ast.Member{}, err2
	}
	if !ok2 {
		return ast.Member{}, diag.New(diag.InvalidCharacterClassRangeOperand, toDiagLoc(loc(p.cur, p.cur.CurrentPosition())))
	}
	if !isRangeableAtom(atom2.Value) {
		return ast.Member{}, diag.New(diag.InvalidCharacterClassRangeOperand, toDiagLoc(atom2.Loc))
	}
	rhsNode := ast.NewAtom(atom2.Loc, atom2.Value)
	return ast.Member{
		Tag:       ast.MemberRange,
		Loc:       cursor.SourceLocation{Start: atom1.Loc.Start, End: atom2.Loc.End},
		RangeLhs:  lhsNode,
		RangeDash: dashLoc,
		RangeRhs:  rhsNode,
	}, nil
}

// canStartRange reports whether a `-` at the cursor begins a range
// rather than being a literal trailing dash (`a-]`) or the first
// character of the `--` subtraction operator.
func canStartRange(cur *cursor.Cursor) bool {
	r0, ok0 := cur.Peek()
	if !ok0 || r0 != '-' {
		return false
	}
	r1, ok1 := cur.PeekN(1)
	if !ok1 || r1 == '-' || r1 == ']' {
		return false
	}
	return true
}

// literalEscapeLetters are the \x escapes that denote one specific
// codepoint (a literal control character), as opposed to an anchor or
// a character class shorthand like \d or \b.
var literalEscapeLetters = map[rune]bool{
	'a': true, 'e': true, 'f': true, 'n': true, 'r': true, 't': true,
}

// isRangeableAtom reports whether kind denotes a single codepoint, the
// only thing a `-` range endpoint can be. Class shorthands (\d \w \s
// \h \v \R and their negations), anchors, and anything else that
// denotes more than one character are rejected.
func isRangeableAtom(kind ast.AtomKind) bool {
	switch kind.Tag {
	case ast.AtomChar, ast.AtomScalar, ast.AtomNamedCharacter,
		ast.AtomKeyboardControl, ast.AtomKeyboardMeta, ast.AtomKeyboardMetaControl:
		return true
	case ast.AtomEscaped:
		return literalEscapeLetters[kind.Letter]
	default:
		return false
	}
}

func isCCCBinOpAhead(cur *cursor.Cursor) bool {
	r0, ok0 := cur.Peek()
	r1, ok1 := cur.PeekN(1)
	if !ok0 || !ok1 {
		return false
	}
	return (r0 == '&' && r1 == '&') || (r0 == '-' && r1 == '-') || (r0 == '~' && r1 == '~')
}
