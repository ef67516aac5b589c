package ast

// spanOf joins a start and end position into the span a freshly
// parsed node covers, so every constructor below builds its span the
// same way instead of each call site assembling the literal by hand.
func spanOf(start, end Position) SourceLocation {
	return SourceLocation{Start: start, End: end}
}

func NewAlternation(start, end Position, children []Node, pipes []SourceLocation) *Alternation {
	return &Alternation{Span: spanOf(start, end), Children: children, Pipes: pipes}
}

func NewConcatenation(start, end Position, children []Node) *Concatenation {
	return &Concatenation{Span: spanOf(start, end), Children: children}
}

func NewGroup(start, end Position, kind Located[GroupKind], child Node) *Group {
	return &Group{Span: spanOf(start, end), Kind: kind, Child: child}
}

func NewConditional(start, end Position, condition Condition, trueBranch Node, pipe *SourceLocation, falseBranch Node) *Conditional {
	return &Conditional{Span: spanOf(start, end), Condition: condition, TrueBranch: trueBranch, Pipe: pipe, FalseBranch: falseBranch}
}

func NewQuantification(start, end Position, amount Located[Amount], kind Located[QuantKind], operand Node) *Quantification {
	return &Quantification{Span: spanOf(start, end), Amount: amount, Kind: kind, Operand: operand}
}

func NewQuote(loc SourceLocation, literal string) *Quote {
	return &Quote{Span: loc, Literal: literal}
}

func NewTrivia(loc SourceLocation, contents string) *Trivia {
	return &Trivia{Span: loc, Contents: contents}
}

func NewAtom(loc SourceLocation, kind AtomKind) *Atom {
	return &Atom{Span: loc, Kind: kind}
}

func NewCustomCharacterClass(start, end Position, startTok Located[CCCStart], members []Member) *CustomCharacterClass {
	return &CustomCharacterClass{Span: spanOf(start, end), Start: startTok, Members: members}
}

func NewGlobalMatchingOptions(start, end Position, options []Located[GlobalOpt], body Node) *GlobalMatchingOptions {
	return &GlobalMatchingOptions{Span: spanOf(start, end), Options: options, AST: body}
}

func NewAbsentFunction(start, end Position, kind AbsentKind, startSpan SourceLocation) *AbsentFunction {
	return &AbsentFunction{Span: spanOf(start, end), Kind: kind, StartSpan: startSpan}
}

func NewEmpty(loc SourceLocation) *Empty {
	return &Empty{Span: loc}
}
