package ast

import "fmt"

// AtomKindTag discriminates the AtomKind union.
type AtomKindTag int

const (
	AtomChar AtomKindTag = iota
	AtomScalar
	AtomEscaped
	AtomNamedCharacter
	AtomProperty
	AtomKeyboardControl
	AtomKeyboardMeta
	AtomKeyboardMetaControl
	AtomAny
	AtomStartOfLine
	AtomEndOfLine
	AtomBackreference
	AtomSubpattern
	AtomCallout
	AtomBacktrackingDirective
)

// AtomKind is the closed set of things a single Atom node can be.
// Only the fields relevant to Tag are populated by the parser.
type AtomKind struct {
	Tag AtomKindTag

	Char    rune   // AtomChar, AtomKeyboardControl/Meta/MetaControl
	Scalar  rune   // AtomScalar
	Letter  rune   // AtomEscaped (the escape letter, e.g. 'n' in \n)
	Name    string // AtomNamedCharacter, AtomBacktrackingDirective (verb name)
	Verb    string // AtomBacktrackingDirective (verb, e.g. "ACCEPT")
	Literal string // self-printing literal text, used by Dump when set

	Property   PropertySpec   // AtomProperty
	Reference  Reference      // AtomBackreference, AtomSubpattern
	Callout    CalloutKind    // AtomCallout
}

// PropertySpecKind discriminates the `\p{…}` mini-grammar.
type PropertySpecKind int

const (
	PropertyBoolean PropertySpecKind = iota
	PropertyGeneralCategory
	PropertyScript
	PropertyScriptExtension
	PropertyOther
)

// PropertySpec records what a `\p{…}`/`\P{…}` body names, without
// judging whether it is a recognized Unicode property: classification
// only, since semantic validation is a consumer's concern.
type PropertySpec struct {
	Kind     PropertySpecKind
	Key      string // e.g. "script", "" for bare/other-without-key
	Value    string // e.g. "Greek"
	Negated  bool   // \P{…} or \p{^…}
}

func (p PropertySpec) String() string {
	body := p.Value
	if p.Key != "" {
		body = p.Key + "=" + p.Value
	}
	if p.Negated {
		return "P{" + body + "}"
	}
	return "p{" + body + "}"
}

// ReferenceKindTag discriminates how a back-reference or subpattern call
// names its target group.
type ReferenceKindTag int

const (
	RefAbsolute ReferenceKindTag = iota
	RefRelative
	RefNamed
)

// Reference identifies the group a back-reference or `(?R…)`/`\g{…}`
// subpattern call targets. RecursionLevel is non-nil when the
// reference carries a `±n` recursion-level suffix.
type Reference struct {
	Tag ReferenceKindTag

	Absolute int    // RefAbsolute; 0 denotes whole-pattern recursion
	Relative int     // RefRelative; nonzero, sign encodes direction
	Name     string // RefNamed

	RecursionLevel *int
}

func (r Reference) String() string {
	var base string
	switch r.Tag {
	case RefAbsolute:
		base = fmt.Sprintf("%d", r.Absolute)
	case RefRelative:
		if r.Relative > 0 {
			base = fmt.Sprintf("+%d", r.Relative)
		} else {
			base = fmt.Sprintf("%d", r.Relative)
		}
	case RefNamed:
		base = r.Name
	}
	if r.RecursionLevel != nil {
		if *r.RecursionLevel >= 0 {
			base = fmt.Sprintf("%s+%d", base, *r.RecursionLevel)
		} else {
			base = fmt.Sprintf("%s%d", base, *r.RecursionLevel)
		}
	}
	return base
}

// CalloutKind describes a PCRE `(?C…)` callout: either a bare numeric
// id or a named/string callout body, recorded verbatim.
type CalloutKind struct {
	Number *int
	Text   string
}
