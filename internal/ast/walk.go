package ast

// HasChildren implements the "existential parent view" design note: a
// single exhaustive switch in place of runtime type tests. It returns
// the node's direct AST children and whether the node is a container
// at all (a leaf like Atom or Empty reports ok=false).
func HasChildren(n Node) (children []Node, ok bool) {
	switch v := n.(type) {
	case *Alternation:
		return v.Children, true
	case *Concatenation:
		return v.Children, true
	case *Group:
		return []Node{v.Child}, true
	case *Conditional:
		var out []Node
		if v.Condition.Tag == ConditionGroup && v.Condition.Group != nil {
			out = append(out, v.Condition.Group)
		}
		out = append(out, v.TrueBranch, v.FalseBranch)
		return out, true
	case *Quantification:
		return []Node{v.Operand}, true
	case *CustomCharacterClass:
		return flattenMembers(v.Members), true
	case *GlobalMatchingOptions:
		return []Node{v.AST}, true
	case *AbsentFunction:
		switch v.Kind.Tag {
		case AbsentRepeater, AbsentStopper:
			if v.Kind.Child != nil {
				return []Node{v.Kind.Child}, true
			}
			return nil, true
		case AbsentExpression:
			return []Node{v.Kind.Absentee, v.Kind.Expr}, true
		default:
			return nil, true
		}
	case *Quote, *Trivia, *Atom, *Empty:
		return nil, false
	default:
		return nil, false
	}
}

// flattenMembers collects the AST nodes embedded in a member list
// (atoms, quotes, nested classes, and recursively the two sides of a
// set operation) so trivia stripping and span-nesting checks see into
// custom character classes even though Member itself is not a Node.
func flattenMembers(members []Member) []Node {
	var out []Node
	for _, m := range members {
		switch m.Tag {
		case MemberAtom:
			out = append(out, m.Atom)
		case MemberRange:
			out = append(out, m.RangeLhs, m.RangeRhs)
		case MemberQuote:
			out = append(out, m.Quote)
		case MemberNested:
			out = append(out, m.Nested)
		case MemberSetOperation:
			out = append(out, flattenMembers(m.SetLhs)...)
			out = append(out, flattenMembers(m.SetRhs)...)
		}
	}
	return out
}

// StripTrivia returns a copy of the tree with every Trivia node
// removed from Concatenation and Alternation children lists. Group,
// Conditional, Quantification, GlobalMatchingOptions and
// AbsentFunction nodes are rebuilt around their stripped children;
// leaves and CustomCharacterClass nodes are returned as they are. The
// input tree is never mutated.
func StripTrivia(n Node) Node {
	switch v := n.(type) {
	case *Alternation:
		return &Alternation{Span: v.Span, Children: stripList(v.Children), Pipes: v.Pipes}
	case *Concatenation:
		return &Concatenation{Span: v.Span, Children: stripList(v.Children)}
	case *Group:
		return &Group{Span: v.Span, Kind: v.Kind, Child: StripTrivia(v.Child)}
	case *Conditional:
		cond := v.Condition
		if cond.Tag == ConditionGroup && cond.Group != nil {
			stripped := StripTrivia(cond.Group).(*Group)
			cond.Group = stripped
		}
		return &Conditional{
			Span:        v.Span,
			Condition:   cond,
			TrueBranch:  StripTrivia(v.TrueBranch),
			Pipe:        v.Pipe,
			FalseBranch: StripTrivia(v.FalseBranch),
		}
	case *Quantification:
		return &Quantification{Span: v.Span, Amount: v.Amount, Kind: v.Kind, Operand: StripTrivia(v.Operand)}
	case *GlobalMatchingOptions:
		return &GlobalMatchingOptions{Span: v.Span, Options: v.Options, AST: StripTrivia(v.AST)}
	case *AbsentFunction:
		kind := v.Kind
		switch kind.Tag {
		case AbsentRepeater, AbsentStopper:
			if kind.Child != nil {
				kind.Child = StripTrivia(kind.Child)
			}
		case AbsentExpression:
			kind.Absentee = StripTrivia(kind.Absentee)
			kind.Expr = StripTrivia(kind.Expr)
		}
		return &AbsentFunction{Span: v.Span, Kind: kind, StartSpan: v.StartSpan}
	default:
		return n
	}
}

func stripList(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if _, isTrivia := n.(*Trivia); isTrivia {
			continue
		}
		out = append(out, StripTrivia(n))
	}
	return out
}
