package parser

import (
	"github.com/cwbudde/go-regexast/internal/ast"
	"github.com/cwbudde/go-regexast/internal/cursor"
	"github.com/cwbudde/go-regexast/internal/diag"
	"github.com/cwbudde/go-regexast/internal/lexer"
)

// Parser drives the recursive-descent grammar over a Cursor, threading
// a single ParsingContext through every production.
type Parser struct {
	cur    *cursor.Cursor
	ctx    ParsingContext
	source string
}

// New builds a Parser over source under the given Syntax.
func New(source string, syntax Syntax) *Parser {
	return &Parser{
		cur:    cursor.New(source),
		ctx:    ParsingContext{Syntax: syntax},
		source: source,
	}
}

// ParseRegex is the grammar's entry point: an optional leading run of
// `(*…)` global options, then the top-level alternation, which must
// consume the entire input — any leftover, almost always a stray
// ')', is UnbalancedEndOfGroup.
func (p *Parser) ParseRegex() (ast.Node, *diag.LocatedError) {
	start := p.cur.CurrentPosition()

	var opts []ast.Located[ast.GlobalOpt]
	for {
		opt, ok, err := lexer.LexGlobalMatchingOption(p.cur)
		if err != nil {
			return nil, p.withSource(err)
		}
		if !ok {
			break
		}
		opts = append(opts, opt)
	}

	body, err := p.parseAlternation(isTopLevelBoundary)
	if err != nil {
		return nil, p.withSource(err)
	}

	if !p.cur.IsEmpty() {
		return nil, p.withSource(diag.New(diag.UnbalancedEndOfGroup, toDiagLoc(loc(p.cur, p.cur.CurrentPosition()))))
	}

	if len(opts) == 0 {
		return body, nil
	}
	return ast.NewGlobalMatchingOptions(start, p.cur.CurrentPosition(), opts, body), nil
}

func (p *Parser) withSource(err *diag.LocatedError) *diag.LocatedError {
	if err == nil {
		return nil
	}
	return err.WithSource(p.source)
}

func isTopLevelBoundary(r rune, ok bool) bool {
	return !ok || r == ')'
}

func isGroupBoundary(r rune, ok bool) bool {
	return !ok || r == ')'
}

func isBranchBoundary(r rune, ok bool) bool {
	return !ok || r == ')' || r == '|'
}

// parseAlternation parses Concatenation ('|' Concatenation)*, returning
// the lone Concatenation when there was exactly one branch — an
// Alternation node is only constructed with >= 2 children, per
// ast.Alternation's invariant.
func (p *Parser) parseAlternation(boundary func(rune, bool) bool) (ast.Node, *diag.LocatedError) {
	start := p.cur.CurrentPosition()
	branchBoundary := func(r rune, ok bool) bool {
		return boundary(r, ok) || (ok && r == '|')
	}
	first, err := p.parseConcatenation(branchBoundary)
	if err != nil {
		return nil, err
	}
	children := []ast.Node{first}
	var pipes []cursor.SourceLocation
	for {
		pipeLoc, ok := p.cur.TryEatWithLoc('|')
		if !ok {
			break
		}
		pipes = append(pipes, pipeLoc)
		next, err := p.parseConcatenation(branchBoundary)
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}
	if len(children) == 1 {
		return first, nil
	}
	for i, c := range children {
		children[i] = unwrapSingletonConcat(c)
	}
	return ast.NewAlternation(start, p.cur.CurrentPosition(), children, pipes), nil
}

// unwrapSingletonConcat drops a one-child Concatenation wrapper so a
// branch holding a single component dumps as that component, not as a
// parenthesized run of one. Concatenations with zero or multiple
// children are left as-is: those shapes are meaningful on their own.
func unwrapSingletonConcat(node ast.Node) ast.Node {
	if concat, ok := node.(*ast.Concatenation); ok && len(concat.Children) == 1 {
		return concat.Children[0]
	}
	return node
}

// parseConcatenation parses a maximal run of trivia and quantified
// operands up to boundary. An empty concatenation (boundary reached
// immediately) is legal and produces a zero-width Concatenation.
func (p *Parser) parseConcatenation(boundary func(rune, bool) bool) (ast.Node, *diag.LocatedError) {
	start := p.cur.CurrentPosition()
	var children []ast.Node
	for {
		r, ok := p.cur.Peek()
		if boundary(r, ok) {
			break
		}
		if trivia, tok, err := p.tryTrivia(); err != nil {
			return nil, err
		} else if tok {
			children = append(children, trivia)
			continue
		}
		comp, err := p.parseConcatComponent()
		if err != nil {
			return nil, err
		}
		children = append(children, comp)
	}
	return ast.NewConcatenation(start, p.cur.CurrentPosition(), children), nil
}

func (p *Parser) tryTrivia() (ast.Node, bool, *diag.LocatedError) {
	if comment, ok, err := lexer.LexComment(p.cur); ok || err != nil {
		if err != nil {
			return nil, false, err
		}
		return ast.NewTrivia(comment.Loc, comment.Value), true, nil
	}
	if ws, ok, err := lexer.LexNonSemanticWhitespace(p.cur, p.ctx.Syntax.toDialect()); ok || err != nil {
		if err != nil {
			return nil, false, err
		}
		return ast.NewTrivia(ws.Loc, ws.Value), true, nil
	}
	return nil, false, nil
}

// parseConcatComponent parses one QuantOperand and, if a quantifier
// immediately follows, wraps it in a Quantification — rejecting
// quantifiers on operands that can't carry one (isolated option
// changes have no single node to attach to; they apply to the rest of
// the enclosing group instead).
func (p *Parser) parseConcatComponent() (ast.Node, *diag.LocatedError) {
	start := p.cur.CurrentPosition()
	operand, quantifiable, err := p.parseQuantOperand()
	if err != nil {
		return nil, err
	}

	q, ok, qerr := lexer.LexQuantifier(p.cur)
	if qerr != nil {
		return nil, qerr
	}
	if !ok {
		return operand, nil
	}
	if !quantifiable {
		return nil, diag.New(diag.NotQuantifiable, toDiagLoc(operand.Loc()))
	}
	amount := ast.Located[ast.Amount]{Value: q.Value.Amount, Loc: q.Loc}
	kind := ast.Located[ast.QuantKind]{Value: q.Value.Kind, Loc: q.Loc}
	return ast.NewQuantification(start, p.cur.CurrentPosition(), amount, kind, operand), nil
}

// parseQuantOperand parses one atomic building block of a
// concatenation: an absent function, a conditional, a group (in any
// of its forms), a custom character class, a quoted literal, or a
// plain atom. The bool result is false for the isolated option-change
// group form and for quoted literals — neither is a QuantOperand a
// quantifier can attach to.
func (p *Parser) parseQuantOperand() (ast.Node, bool, *diag.LocatedError) {
	if node, ok, err := p.parseCalloutOrSubpatternCall(); ok || err != nil {
		return node, true, err
	}
	if node, ok, err := p.parseAbsentFunction(); ok || err != nil {
		return node, true, err
	}
	if node, ok, err := p.parseConditional(); ok || err != nil {
		return node, true, err
	}
	if node, ok, err := p.parseGroup(); ok || err != nil {
		if node, isGroup := node.(*ast.Group); isGroup && err == nil {
			return node, !node.Kind.Value.HasImplicitScope(), nil
		}
		return node, true, err
	}
	if node, ok, err := p.parseCustomCharClass(); ok || err != nil {
		return node, true, err
	}
	if lit, ok, err := lexer.LexQuote(p.cur); ok || err != nil {
		if err != nil {
			return nil, true, err
		}
		return ast.NewQuote(lit.Loc, lit.Value), false, nil
	}

	atom, ok, err := lexer.LexAtom(p.cur, p.ctx.lexerContext())
	if err != nil {
		return nil, true, err
	}
	if !ok {
		r, hasR := p.cur.Peek()
		if hasR && r == ')' {
			return nil, true, diag.New(diag.UnbalancedEndOfGroup, toDiagLoc(loc(p.cur, p.cur.CurrentPosition())))
		}
		return nil, true, diag.New(diag.UnexpectedEndOfInput, toDiagLoc(loc(p.cur, p.cur.CurrentPosition())))
	}
	return ast.NewAtom(atom.Loc, atom.Value), true, nil
}

func (p *Parser) parseCalloutOrSubpatternCall() (ast.Node, bool, *diag.LocatedError) {
	if a, ok, err := lexer.LexCallout(p.cur); ok || err != nil {
		if err != nil {
			return nil, false, err
		}
		return ast.NewAtom(a.Loc, a.Value), true, nil
	}
	if a, ok, err := lexer.LexSubpatternCall(p.cur); ok || err != nil {
		if err != nil {
			return nil, false, err
		}
		return ast.NewAtom(a.Loc, a.Value), true, nil
	}
	return nil, false, nil
}

func loc(cur *cursor.Cursor, pos cursor.Position) cursor.SourceLocation {
	return cursor.SourceLocation{Start: pos, End: pos}
}

func toDiagLoc(l cursor.SourceLocation) diag.SourceLocation {
	return diag.SourceLocation{
		StartOffset: l.Start.Offset, StartLine: l.Start.Line, StartColumn: l.Start.Column,
		EndOffset: l.End.Offset, EndLine: l.End.Line, EndColumn: l.End.Column,
	}
}
