package ast

// GroupKind enumerates the distinct forms `(…)` can take. Dump's
// "group_<kindLabel>" token is produced by GroupKind.DumpLabel.
type GroupKindTag int

const (
	GroupCapture GroupKindTag = iota
	GroupNamedCapture
	GroupBalancedCapture
	GroupNonCapture
	GroupNonCaptureReset
	GroupAtomicNonCapturing
	GroupLookahead
	GroupNegativeLookahead
	GroupNonAtomicLookahead
	GroupLookbehind
	GroupNegativeLookbehind
	GroupNonAtomicLookbehind
	GroupScriptRun
	GroupAtomicScriptRun
	GroupChangeMatchingOptions
)

// GroupKind carries the tag plus the fields specific to a subset of
// tags (name, prior, option sequence). Exactly the fields relevant to
// Tag are meaningful; this mirrors a tagged union without requiring a
// type per tag, since the parser always knows which Tag it is
// constructing at a given call site.
type GroupKind struct {
	Tag GroupKindTag

	// GroupNamedCapture, GroupBalancedCapture
	Name string
	// GroupBalancedCapture: the prior group popped, if named.
	PriorName string
	// GroupChangeMatchingOptions
	OptionSequence string
	IsIsolated     bool
}

// HasImplicitScope is true only for the isolated option-change form
// `(?ims-x)` (no trailing ':'), which applies for the remainder of the
// enclosing group rather than wrapping an explicit child.
func (k GroupKind) HasImplicitScope() bool {
	return k.Tag == GroupChangeMatchingOptions && k.IsIsolated
}

// IsCapturing is true for the three group forms that introduce a
// numbered capture.
func (k GroupKind) IsCapturing() bool {
	switch k.Tag {
	case GroupCapture, GroupNamedCapture, GroupBalancedCapture:
		return true
	default:
		return false
	}
}

// DumpLabel returns the token Dump uses for this kind, e.g.
// "capture", "namedCapture<x>", "lookahead".
func (k GroupKind) DumpLabel() string {
	switch k.Tag {
	case GroupCapture:
		return "capture"
	case GroupNamedCapture:
		return "namedCapture<" + k.Name + ">"
	case GroupBalancedCapture:
		if k.Name == "" {
			return "balancedCapture<-" + k.PriorName + ">"
		}
		return "balancedCapture<" + k.Name + "-" + k.PriorName + ">"
	case GroupNonCapture:
		return "nonCapture"
	case GroupNonCaptureReset:
		return "nonCaptureReset"
	case GroupAtomicNonCapturing:
		return "atomicNonCapturing"
	case GroupLookahead:
		return "lookahead"
	case GroupNegativeLookahead:
		return "negativeLookahead"
	case GroupNonAtomicLookahead:
		return "nonAtomicLookahead"
	case GroupLookbehind:
		return "lookbehind"
	case GroupNegativeLookbehind:
		return "negativeLookbehind"
	case GroupNonAtomicLookbehind:
		return "nonAtomicLookbehind"
	case GroupScriptRun:
		return "scriptRun"
	case GroupAtomicScriptRun:
		return "atomicScriptRun"
	case GroupChangeMatchingOptions:
		if k.IsIsolated {
			return "changeMatchingOptions<" + k.OptionSequence + ">"
		}
		return "changeMatchingOptions<" + k.OptionSequence + ":>"
	default:
		return "unknown"
	}
}
