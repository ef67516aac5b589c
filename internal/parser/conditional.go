package parser

import (
	"github.com/cwbudde/go-regexast/internal/ast"
	"github.com/cwbudde/go-regexast/internal/cursor"
	"github.com/cwbudde/go-regexast/internal/diag"
	"github.com/cwbudde/go-regexast/internal/lexer"
)

// parseConditional recognizes `(?(cond)true|false)`. cond is either
// one of the known non-assertion tests (VERSION, DEFINE, R…, a group
// reference) or a bare lookaround assertion `(?(?=…))`, the latter
// parsed inline here since it shares no opening paren of its own —
// the conditional's `(` and the assertion's delimiters are the same
// parens.
func (p *Parser) parseConditional() (ast.Node, bool, *diag.LocatedError) {
	start := p.cur.CurrentPosition()
	if !lexer.LexConditionalStart(p.cur) {
		return nil, false, nil
	}

	condition, err := p.parseCondition(start)
	if err != nil {
		return nil, true, err
	}

	trueBranch, err := p.parseConditionalBranch()
	if err != nil {
		return nil, true, err
	}

	falseBranch := ast.Node(ast.NewEmpty(cursor.SourceLocation{Start: p.cur.CurrentPosition(), End: p.cur.CurrentPosition()}))
	var pipeLocPtr *cursor.SourceLocation
	if pipeLoc, ok := p.cur.TryEatWithLoc('|'); ok {
		pipeLocPtr = &pipeLoc
		falseBranch, err = p.parseConditionalBranch()
		if err != nil {
			return nil, true, err
		}
		if extra, ok := p.cur.TryEatWithLoc('|'); ok {
			count := 3
			for {
				if _, err := p.parseConditionalBranch(); err != nil {
					return nil, true, err
				}
				if _, more := p.cur.TryEatWithLoc('|'); !more {
					break
				}
				count++
			}
			return nil, true, diag.Newf(diag.TooManyBranchesInConditional, toDiagLoc(extra), count)
		}
	}

	if !p.cur.TryEat(')') {
		return nil, true, diag.New(diag.ExpectedGroupCloser, toDiagLoc(loc(p.cur, p.cur.CurrentPosition())))
	}

	return ast.NewConditional(start, p.cur.CurrentPosition(), condition, trueBranch, pipeLocPtr, falseBranch), true, nil
}

// parseConditionalBranch parses one of the conditional's two branches.
// A conditional branch is a single ConcatComponent run with no
// alternation of its own — the '|' that would start one instead
// separates the true and false branches. A lone child is unwrapped
// from its Concatenation so `a` dumps as `a`, not `(a)`.
func (p *Parser) parseConditionalBranch() (ast.Node, *diag.LocatedError) {
	node, err := p.parseConcatenation(isBranchBoundary)
	if err != nil {
		return nil, err
	}
	return unwrapSingletonConcat(node), nil
}

func (p *Parser) parseCondition(conditionalStart cursor.Position) (ast.Condition, *diag.LocatedError) {
	known, ok, err := lexer.LexKnownConditionalStart(p.cur)
	if err != nil {
		return ast.Condition{}, err
	}
	if ok {
		return known.Value, nil
	}

	assertStart := p.cur.CurrentPosition()
	if !p.cur.TryEat('?') {
		return ast.Condition{}, diag.New(diag.UnknownConditionalStart, toDiagLoc(loc(p.cur, p.cur.CurrentPosition())))
	}
	var kindTag ast.GroupKindTag
	switch {
	case p.cur.TryEat('='):
		kindTag = ast.GroupLookahead
	case p.cur.TryEat('!'):
		kindTag = ast.GroupNegativeLookahead
	case p.cur.TryEatString("<="):
		kindTag = ast.GroupLookbehind
	case p.cur.TryEatString("<!"):
		kindTag = ast.GroupNegativeLookbehind
	default:
		return ast.Condition{}, diag.New(diag.UnknownConditionalStart, toDiagLoc(loc(p.cur, p.cur.CurrentPosition())))
	}

	child, cerr := p.parseAlternation(isGroupBoundary)
	if cerr != nil {
		return ast.Condition{}, cerr
	}
	if !p.cur.TryEat(')') {
		return ast.Condition{}, diag.New(diag.ExpectedConditionalCloser, toDiagLoc(loc(p.cur, p.cur.CurrentPosition())))
	}

	kindLoc := cursor.SourceLocation{Start: assertStart, End: p.cur.CurrentPosition()}
	kind := ast.Located[ast.GroupKind]{Value: ast.GroupKind{Tag: kindTag}, Loc: kindLoc}
	group := ast.NewGroup(assertStart, p.cur.CurrentPosition(), kind, unwrapSingletonConcat(child))
	return ast.Condition{Tag: ast.ConditionGroup, Group: group}, nil
}
