package lexer

import (
	"testing"

	"github.com/cwbudde/go-regexast/internal/ast"
	"github.com/cwbudde/go-regexast/internal/cursor"
)

func TestLexCustomCCStart_Plain(t *testing.T) {
	cur := cursor.New("[abc]")
	got, ok, err := LexCustomCCStart(cur)
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Negated {
		t.Fatalf("expected non-negated class")
	}
}

func TestLexCustomCCStart_Negated(t *testing.T) {
	cur := cursor.New("[^abc]")
	got, ok, err := LexCustomCCStart(cur)
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if !got.Value.Negated {
		t.Fatalf("expected negated class")
	}
}

func TestLexCustomCCStart_NoMatch(t *testing.T) {
	cur := cursor.New("abc")
	_, ok, err := LexCustomCCStart(cur)
	if ok || err != nil {
		t.Fatalf("expected no match, got ok=%v err=%v", ok, err)
	}
}

func TestLexCustomCCBinOp(t *testing.T) {
	tests := []struct {
		input string
		op    ast.SetOp
	}{
		{"&&", ast.SetIntersection},
		{"--", ast.SetSubtraction},
		{"~~", ast.SetSymmetricDifference},
	}
	for _, tt := range tests {
		cur := cursor.New(tt.input)
		got, ok, err := LexCustomCCBinOp(cur)
		if err != nil || !ok {
			t.Fatalf("%q: unexpected result %v %v", tt.input, ok, err)
		}
		if got.Value != tt.op {
			t.Fatalf("%q: expected op %v, got %v", tt.input, tt.op, got.Value)
		}
	}
}

func TestLexCustomCCBinOp_SingleDashIsNoMatch(t *testing.T) {
	cur := cursor.New("-a")
	_, ok, err := LexCustomCCBinOp(cur)
	if ok || err != nil {
		t.Fatalf("expected no match for a single dash, got ok=%v err=%v", ok, err)
	}
}

func TestLexCustomCharClassRangeEnd(t *testing.T) {
	cur := cursor.New("-z]")
	_, ok := LexCustomCharClassRangeEnd(cur)
	if !ok {
		t.Fatalf("expected the range dash to be recognized")
	}
	if r, _ := cur.Peek(); r != 'z' {
		t.Fatalf("expected cursor positioned after the dash, got %q", r)
	}
}

func TestLexCustomCharClassRangeEnd_NoMatch(t *testing.T) {
	cur := cursor.New("z]")
	_, ok := LexCustomCharClassRangeEnd(cur)
	if ok {
		t.Fatalf("expected no match without a leading dash")
	}
}
