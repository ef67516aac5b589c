package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump renders a deterministic, trivia-omitting textual form of the
// tree, used by golden tests. This file is the single place that
// implements the output grammar.
func Dump(n Node) string {
	var b strings.Builder
	dump(&b, n)
	return b.String()
}

func dump(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case *Alternation:
		b.WriteString("alternation(")
		dumpList(b, v.Children)
		b.WriteByte(')')
	case *Concatenation:
		b.WriteByte('(')
		dumpList(b, v.Children)
		b.WriteByte(')')
	case *Group:
		b.WriteString("group_")
		b.WriteString(v.Kind.Value.DumpLabel())
		b.WriteByte('(')
		dump(b, v.Child)
		b.WriteByte(')')
	case *Conditional:
		b.WriteString("if ")
		dumpCondition(b, v.Condition)
		b.WriteString(" then ")
		dump(b, v.TrueBranch)
		b.WriteString(" else ")
		dump(b, v.FalseBranch)
	case *Quantification:
		b.WriteString("quant_")
		b.WriteString(v.Amount.Value.DumpLabel())
		b.WriteByte('_')
		b.WriteString(v.Kind.Value.DumpLabel())
		b.WriteByte('(')
		dump(b, v.Operand)
		b.WriteByte(')')
	case *Quote:
		b.WriteString("quote(")
		b.WriteString(strconv.Quote(v.Literal))
		b.WriteByte(')')
	case *Trivia:
		// omitted entirely; callers normally StripTrivia before Dump,
		// but dump degrades gracefully if they don't.
	case *Atom:
		b.WriteString(dumpAtom(v.Kind))
	case *CustomCharacterClass:
		b.WriteString("customCharacterClass(")
		if v.Start.Value.Negated {
			b.WriteString("^")
			if len(v.Members) > 0 {
				b.WriteByte(',')
			}
		}
		dumpMemberList(b, v.Members)
		b.WriteByte(')')
	case *GlobalMatchingOptions:
		b.WriteString("globalOptions(")
		for i, opt := range v.Options {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(dumpGlobalOpt(opt.Value))
		}
		b.WriteString(")(")
		dump(b, v.AST)
		b.WriteByte(')')
	case *AbsentFunction:
		dumpAbsent(b, v.Kind)
	case *Empty:
		b.WriteString("empty")
	case nil:
		b.WriteString("empty")
	default:
		b.WriteString(fmt.Sprintf("<unknown %T>", n))
	}
}

func dumpList(b *strings.Builder, nodes []Node) {
	first := true
	for _, c := range nodes {
		if _, isTrivia := c.(*Trivia); isTrivia {
			continue
		}
		if !first {
			b.WriteByte(',')
		}
		first = false
		dump(b, c)
	}
}

func dumpCondition(b *strings.Builder, c Condition) {
	switch c.Tag {
	case ConditionPCREVersionCheck:
		op := "="
		if c.VersionKind == VersionAtLeast {
			op = ">="
		}
		fmt.Fprintf(b, "version%s%d.%d", op, c.VersionMajor, c.VersionMinor)
	case ConditionGroup:
		dump(b, c.Group)
	case ConditionGroupMatched:
		fmt.Fprintf(b, "matched(%s)", c.Ref.String())
	case ConditionGroupRecursionCheck:
		fmt.Fprintf(b, "recursing(%s)", c.Ref.String())
	case ConditionRecursionCheck:
		b.WriteString("recursing")
	case ConditionDefineGroup:
		b.WriteString("define")
	}
}

func dumpMemberList(b *strings.Builder, members []Member) {
	for i, m := range members {
		if i > 0 {
			b.WriteByte(',')
		}
		dumpMember(b, m)
	}
}

func dumpMember(b *strings.Builder, m Member) {
	switch m.Tag {
	case MemberAtom:
		b.WriteString(dumpAtom(m.Atom.Kind))
	case MemberRange:
		b.WriteString(dumpAtom(m.RangeLhs.Kind))
		b.WriteByte('-')
		b.WriteString(dumpAtom(m.RangeRhs.Kind))
	case MemberQuote:
		b.WriteString("quote(")
		b.WriteString(strconv.Quote(m.Quote.Literal))
		b.WriteByte(')')
	case MemberNested:
		dump(b, m.Nested)
	case MemberSetOperation:
		b.WriteString("op [")
		dumpMemberList(b, m.SetLhs)
		b.WriteString("] ")
		b.WriteString(m.SetOp.Value.String())
		b.WriteString(" [")
		dumpMemberList(b, m.SetRhs)
		b.WriteByte(']')
	}
}

func dumpAtom(k AtomKind) string {
	if k.Literal != "" {
		return k.Literal
	}
	switch k.Tag {
	case AtomChar:
		return string(k.Char)
	case AtomScalar:
		return fmt.Sprintf("\\x{%x}", k.Scalar)
	case AtomEscaped:
		return "\\" + string(k.Letter)
	case AtomNamedCharacter:
		return "\\N{" + k.Name + "}"
	case AtomProperty:
		return "\\" + k.Property.String()
	case AtomKeyboardControl:
		return "\\c" + string(k.Char)
	case AtomKeyboardMeta:
		return "\\M-" + string(k.Char)
	case AtomKeyboardMetaControl:
		return "\\M-\\C-" + string(k.Char)
	case AtomAny:
		return "."
	case AtomStartOfLine:
		return "^"
	case AtomEndOfLine:
		return "$"
	case AtomBackreference:
		return "backreference(" + k.Reference.String() + ")"
	case AtomSubpattern:
		return "subpattern(" + k.Reference.String() + ")"
	case AtomCallout:
		if k.Callout.Number != nil {
			return fmt.Sprintf("callout(%d)", *k.Callout.Number)
		}
		return "callout(" + k.Callout.Text + ")"
	case AtomBacktrackingDirective:
		if k.Name != "" {
			return "(*" + k.Verb + ":" + k.Name + ")"
		}
		return "(*" + k.Verb + ")"
	default:
		return "<atom>"
	}
}

func dumpGlobalOpt(o GlobalOpt) string {
	if o.HasValue {
		return fmt.Sprintf("%s=%d", o.Name, o.Value)
	}
	return o.Name
}

func dumpAbsent(b *strings.Builder, k AbsentKind) {
	switch k.Tag {
	case AbsentRepeater:
		b.WriteString("AbsentFunction(repeater(")
		dump(b, k.Child)
		b.WriteString("))")
	case AbsentStopper:
		b.WriteString("AbsentFunction(stopper(")
		dump(b, k.Child)
		b.WriteString("))")
	case AbsentClearer:
		b.WriteString("AbsentFunction(clearer)")
	case AbsentExpression:
		b.WriteString("AbsentFunction(expression(absentee=")
		dump(b, k.Absentee)
		b.WriteString(", expr=")
		dump(b, k.Expr)
		b.WriteString("))")
	}
}
