package parser

import (
	"github.com/cwbudde/go-regexast/internal/ast"
	"github.com/cwbudde/go-regexast/internal/cursor"
	"github.com/cwbudde/go-regexast/internal/diag"
	"github.com/cwbudde/go-regexast/internal/lexer"
)

// parseAbsentFunction recognizes Oniguruma's `(?~…)` family. Which of
// the four shapes it is depends on whether `|` followed the opener
// and how many `|`-separated branches follow: none is a repeater,
// a lone branch after `|` is a stopper, no branches after `|` is a
// clearer, and two branches is an expression — three or more is
// TooManyAbsentExpressionChildren.
func (p *Parser) parseAbsentFunction() (ast.Node, bool, *diag.LocatedError) {
	start := p.cur.CurrentPosition()
	hasPipe, ok := lexer.LexAbsentFunctionStart(p.cur)
	if !ok {
		return nil, false, nil
	}

	if !hasPipe {
		child, err := p.parseAlternation(isGroupBoundary)
		if err != nil {
			return nil, true, err
		}
		if !p.cur.TryEat(')') {
			return nil, true, diag.New(diag.ExpectedGroupCloser, toDiagLoc(loc(p.cur, p.cur.CurrentPosition())))
		}
		return p.finishAbsent(start, ast.AbsentKind{Tag: ast.AbsentRepeater, Child: unwrapSingletonConcat(child)}), true, nil
	}

	if p.cur.TryEat(')') {
		return p.finishAbsent(start, ast.AbsentKind{Tag: ast.AbsentClearer}), true, nil
	}

	first, err := p.parseConcatenation(isBranchBoundary)
	if err != nil {
		return nil, true, err
	}
	first = unwrapSingletonConcat(first)
	if p.cur.TryEat(')') {
		return p.finishAbsent(start, ast.AbsentKind{Tag: ast.AbsentStopper, Child: first}), true, nil
	}

	pipeLoc, _ := p.cur.TryEatWithLoc('|')
	second, err := p.parseConcatenation(isBranchBoundary)
	if err != nil {
		return nil, true, err
	}
	second = unwrapSingletonConcat(second)
	if extra, ok := p.cur.TryEatWithLoc('|'); ok {
		count := 3
		for {
			if _, err := p.parseConcatenation(isBranchBoundary); err != nil {
				return nil, true, err
			}
			if _, more := p.cur.TryEatWithLoc('|'); !more {
				break
			}
			count++
		}
		return nil, true, diag.Newf(diag.TooManyAbsentExpressionChildren, toDiagLoc(extra), count)
	}
	if !p.cur.TryEat(')') {
		return nil, true, diag.New(diag.ExpectedGroupCloser, toDiagLoc(loc(p.cur, p.cur.CurrentPosition())))
	}
	return p.finishAbsent(start, ast.AbsentKind{Tag: ast.AbsentExpression, Absentee: first, Pipe: pipeLoc, Expr: second}), true, nil
}

func (p *Parser) finishAbsent(start cursor.Position, kind ast.AbsentKind) ast.Node {
	startSpan := cursor.SourceLocation{Start: start, End: start}
	return ast.NewAbsentFunction(start, p.cur.CurrentPosition(), kind, startSpan)
}
