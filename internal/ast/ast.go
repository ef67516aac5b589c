// Package ast defines the abstract syntax tree produced by the regex
// parser: a discriminated union of node variants, each carrying the
// source span it was parsed from.
//
// Node generalizes a classic TokenLiteral/String/Pos AST interface
// from a single Position to a SourceLocation span and from an open
// interface set to a closed one: every node implements Loc, and
// HasChildren (walk.go) dispatches on an exhaustive type switch
// instead of runtime type assertions.
package ast

import "github.com/cwbudde/go-regexast/internal/cursor"

// SourceLocation and Position are re-exported from internal/cursor so
// callers of this package never need to import cursor directly.
type (
	SourceLocation = cursor.SourceLocation
	Position       = cursor.Position
)

// Located pairs a value with the span it was read from.
type Located[T any] = cursor.Located[T]

// Node is the base interface implemented by every AST variant.
// Nodes are immutable once constructed.
type Node interface {
	// Loc returns the node's source span.
	Loc() SourceLocation
	isNode()
}

// Alternation is children[0] '|' children[1] '|' … ; len(Children) >= 2
// and len(Pipes) == len(Children) - 1.
type Alternation struct {
	Span     SourceLocation
	Children []Node
	Pipes    []SourceLocation
}

func (n *Alternation) Loc() SourceLocation { return n.Span }
func (*Alternation) isNode()               {}

// Concatenation is a sequence of adjacent components with no operator
// between them. An empty concatenation is legal and has a zero-width
// span.
type Concatenation struct {
	Span     SourceLocation
	Children []Node
}

func (n *Concatenation) Loc() SourceLocation { return n.Span }
func (*Concatenation) isNode()               {}

// Group wraps a sub-pattern in one of the forms enumerated by
// GroupKind: capturing, named, non-capturing, lookaround, atomic,
// script run, or an inline/isolated option change.
type Group struct {
	Span  SourceLocation
	Kind  Located[GroupKind]
	Child Node
}

func (n *Group) Loc() SourceLocation { return n.Span }
func (*Group) isNode()               {}

// Conditional is `(?(cond)true|false)`. FalseBranch is Empty when the
// source supplied no alternative.
type Conditional struct {
	Span        SourceLocation
	Condition   Condition
	TrueBranch  Node
	Pipe        *SourceLocation
	FalseBranch Node
}

func (n *Conditional) Loc() SourceLocation { return n.Span }
func (*Conditional) isNode()               {}

// Quantification applies a repetition Amount and greediness Kind to a
// quantifiable Operand.
type Quantification struct {
	Span    SourceLocation
	Amount  Located[Amount]
	Kind    Located[QuantKind]
	Operand Node
}

func (n *Quantification) Loc() SourceLocation { return n.Span }
func (*Quantification) isNode()               {}

// Quote is a `\Q…\E` or `\q{…}` literal run: every character inside
// is matched literally regardless of what it would otherwise mean.
type Quote struct {
	Span    SourceLocation
	Literal string
}

func (n *Quote) Loc() SourceLocation { return n.Span }
func (*Quote) isNode()               {}

// Trivia is a comment or a run of non-semantic (extended-mode)
// whitespace. It is preserved in the tree but omitted from Dump.
type Trivia struct {
	Span     SourceLocation
	Contents string
}

func (n *Trivia) Loc() SourceLocation { return n.Span }
func (*Trivia) isNode()               {}

// Atom is a single indivisible token: a literal character, an escape,
// an anchor, a class shorthand, a back-reference, …
type Atom struct {
	Span SourceLocation
	Kind AtomKind
}

func (n *Atom) Loc() SourceLocation { return n.Span }
func (*Atom) isNode()               {}

// CustomCharacterClass is a `[…]` construct.
type CustomCharacterClass struct {
	Span    SourceLocation
	Start   Located[CCCStart]
	Members []Member
}

func (n *CustomCharacterClass) Loc() SourceLocation { return n.Span }
func (*CustomCharacterClass) isNode()               {}

// GlobalMatchingOptions wraps the whole pattern in one or more leading
// `(*UTF)`-style directives.
type GlobalMatchingOptions struct {
	Span    SourceLocation
	Options []Located[GlobalOpt]
	AST     Node
}

func (n *GlobalMatchingOptions) Loc() SourceLocation { return n.Span }
func (*GlobalMatchingOptions) isNode()               {}

// AbsentFunction is one of Oniguruma's `(?~…)` constructs.
type AbsentFunction struct {
	Span      SourceLocation
	Kind      AbsentKind
	StartSpan SourceLocation
}

func (n *AbsentFunction) Loc() SourceLocation { return n.Span }
func (*AbsentFunction) isNode()               {}

// Empty denotes a zero-width node. The parser produces it for a
// conditional with no false branch and as the child of an isolated
// option-change group; an empty pattern or an empty alternation branch
// is an empty Concatenation, not Empty.
type Empty struct {
	Span SourceLocation
}

func (n *Empty) Loc() SourceLocation { return n.Span }
func (*Empty) isNode()               {}
