package parser

import (
	"github.com/cwbudde/go-regexast/internal/ast"
	"github.com/cwbudde/go-regexast/internal/cursor"
	"github.com/cwbudde/go-regexast/internal/diag"
	"github.com/cwbudde/go-regexast/internal/lexer"
)

// parseGroup recognizes any `(…` form that produces a Group node. It
// tries the balanced-capture form first since `(?<name-prior>` would
// otherwise be swallowed by the plain named-capture path.
func (p *Parser) parseGroup() (ast.Node, bool, *diag.LocatedError) {
	start := p.cur.CurrentPosition()

	kind, ok, err := lexer.LexBalancedCapture(p.cur)
	if !ok && err == nil {
		kind, ok, err = lexer.LexGroupStart(p.cur, p.ctx.lexerContext())
	}
	if err != nil {
		return nil, true, err
	}
	if !ok {
		return nil, false, nil
	}

	if kind.Value.HasImplicitScope() {
		empty := ast.NewEmpty(cursor.SourceLocation{Start: p.cur.CurrentPosition(), End: p.cur.CurrentPosition()})
		return ast.NewGroup(start, p.cur.CurrentPosition(), kind, empty), true, nil
	}

	if kind.Value.IsCapturing() {
		p.ctx.PriorGroupCount++
		if kind.Value.Name != "" {
			p.ctx.GroupNames = append(p.ctx.GroupNames, kind.Value.Name)
		}
	}

	child, cerr := p.parseAlternation(isGroupBoundary)
	if cerr != nil {
		return nil, true, cerr
	}
	if !p.cur.TryEat(')') {
		return nil, true, diag.New(diag.ExpectedGroupCloser, toDiagLoc(loc(p.cur, p.cur.CurrentPosition())))
	}

	return ast.NewGroup(start, p.cur.CurrentPosition(), kind, unwrapSingletonConcat(child)), true, nil
}
