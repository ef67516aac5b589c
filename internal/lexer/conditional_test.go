package lexer

import (
	"testing"

	"github.com/cwbudde/go-regexast/internal/ast"
	"github.com/cwbudde/go-regexast/internal/cursor"
)

func TestLexConditionalStart(t *testing.T) {
	cur := cursor.New("(?(1)a|b)")
	if !LexConditionalStart(cur) {
		t.Fatalf("expected (?( to be recognized")
	}
	if r, _ := cur.Peek(); r != '1' {
		t.Fatalf("expected cursor positioned after (?(, got %q", r)
	}
}

func TestLexConditionalStart_NoMatch(t *testing.T) {
	cur := cursor.New("(?:a)")
	if LexConditionalStart(cur) {
		t.Fatalf("expected no match for (?:")
	}
	if r, _ := cur.Peek(); r != '(' {
		t.Fatalf("expected cursor untouched")
	}
}

func TestLexKnownConditionalStart_VersionAtLeast(t *testing.T) {
	cur := cursor.New("VERSION>=10.34)")
	got, ok, err := LexKnownConditionalStart(cur)
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	c := got.Value
	if c.Tag != ast.ConditionPCREVersionCheck || c.VersionKind != ast.VersionAtLeast || c.VersionMajor != 10 || c.VersionMinor != 34 {
		t.Fatalf("unexpected condition: %+v", c)
	}
}

func TestLexKnownConditionalStart_VersionEqual(t *testing.T) {
	cur := cursor.New("VERSION=8.44)")
	got, ok, err := LexKnownConditionalStart(cur)
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.VersionKind != ast.VersionEqual {
		t.Fatalf("unexpected version kind: %+v", got.Value)
	}
}

func TestLexKnownConditionalStart_Define(t *testing.T) {
	cur := cursor.New("DEFINE)")
	got, ok, err := LexKnownConditionalStart(cur)
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Tag != ast.ConditionDefineGroup {
		t.Fatalf("unexpected condition: %+v", got.Value)
	}
}

func TestLexKnownConditionalStart_RecursionBare(t *testing.T) {
	cur := cursor.New("R)")
	got, ok, err := LexKnownConditionalStart(cur)
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Tag != ast.ConditionRecursionCheck || got.Value.Ref.Absolute != 0 {
		t.Fatalf("unexpected condition: %+v", got.Value)
	}
}

func TestLexKnownConditionalStart_RecursionNumbered(t *testing.T) {
	cur := cursor.New("R2)")
	got, ok, err := LexKnownConditionalStart(cur)
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Ref.Absolute != 2 {
		t.Fatalf("unexpected condition: %+v", got.Value)
	}
}

func TestLexKnownConditionalStart_RecursionNamed(t *testing.T) {
	cur := cursor.New("R&foo)")
	got, ok, err := LexKnownConditionalStart(cur)
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Ref.Tag != ast.RefNamed || got.Value.Ref.Name != "foo" {
		t.Fatalf("unexpected condition: %+v", got.Value)
	}
}

func TestLexKnownConditionalStart_AngleName(t *testing.T) {
	cur := cursor.New("<foo>)")
	got, ok, err := LexKnownConditionalStart(cur)
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Tag != ast.ConditionGroupMatched || got.Value.Ref.Name != "foo" {
		t.Fatalf("unexpected condition: %+v", got.Value)
	}
}

func TestLexKnownConditionalStart_QuotedName(t *testing.T) {
	cur := cursor.New("'foo')")
	got, ok, err := LexKnownConditionalStart(cur)
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Ref.Name != "foo" {
		t.Fatalf("unexpected condition: %+v", got.Value)
	}
}

func TestLexKnownConditionalStart_BareNumber(t *testing.T) {
	cur := cursor.New("1)")
	got, ok, err := LexKnownConditionalStart(cur)
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Ref.Tag != ast.RefAbsolute || got.Value.Ref.Absolute != 1 {
		t.Fatalf("unexpected condition: %+v", got.Value)
	}
}

func TestLexKnownConditionalStart_BareName(t *testing.T) {
	cur := cursor.New("foo)")
	got, ok, err := LexKnownConditionalStart(cur)
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Ref.Tag != ast.RefNamed || got.Value.Ref.Name != "foo" {
		t.Fatalf("unexpected condition: %+v", got.Value)
	}
}

func TestLexKnownConditionalStart_AssertionFallsThrough(t *testing.T) {
	cur := cursor.New("?=a)yes|no)")
	_, ok, err := LexKnownConditionalStart(cur)
	if ok || err != nil {
		t.Fatalf("expected no match for a bare assertion test, got ok=%v err=%v", ok, err)
	}
	if r, _ := cur.Peek(); r != '?' {
		t.Fatalf("expected cursor reset to before '?'")
	}
}
