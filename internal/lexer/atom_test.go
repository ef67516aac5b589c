package lexer

import (
	"testing"

	"github.com/cwbudde/go-regexast/internal/ast"
	"github.com/cwbudde/go-regexast/internal/cursor"
)

func TestLexAtom_PlainChar(t *testing.T) {
	cur := cursor.New("a")
	got, ok, err := LexAtom(cur, Context{})
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Tag != ast.AtomChar || got.Value.Char != 'a' {
		t.Fatalf("unexpected atom: %+v", got.Value)
	}
	if !cur.IsEmpty() {
		t.Fatalf("expected cursor to consume the rune")
	}
}

func TestLexAtom_Anchors(t *testing.T) {
	tests := []struct {
		input string
		tag   ast.AtomKindTag
	}{
		{"^", ast.AtomStartOfLine},
		{"$", ast.AtomEndOfLine},
		{".", ast.AtomAny},
	}
	for _, tt := range tests {
		cur := cursor.New(tt.input)
		got, ok, err := LexAtom(cur, Context{})
		if err != nil || !ok {
			t.Fatalf("%q: unexpected result %v %v", tt.input, ok, err)
		}
		if got.Value.Tag != tt.tag {
			t.Fatalf("%q: expected tag %v, got %v", tt.input, tt.tag, got.Value.Tag)
		}
	}
}

func TestLexAtom_AnchorsAreLiteralInsideCustomCharacterClass(t *testing.T) {
	cur := cursor.New("^")
	got, ok, err := LexAtom(cur, Context{InCustomCharacterClass: true})
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Tag != ast.AtomChar || got.Value.Char != '^' {
		t.Fatalf("expected literal '^' inside a character class, got %+v", got.Value)
	}
}

func TestLexAtom_SimpleEscapes(t *testing.T) {
	tests := []struct {
		input  string
		letter rune
	}{
		{`\n`, 'n'}, {`\t`, 't'}, {`\r`, 'r'}, {`\b`, 'b'}, {`\B`, 'B'}, {`\A`, 'A'}, {`\Z`, 'Z'},
	}
	for _, tt := range tests {
		cur := cursor.New(tt.input)
		got, ok, err := LexAtom(cur, Context{})
		if err != nil || !ok {
			t.Fatalf("%q: unexpected result %v %v", tt.input, ok, err)
		}
		if got.Value.Tag != ast.AtomEscaped || got.Value.Letter != tt.letter {
			t.Fatalf("%q: unexpected atom %+v", tt.input, got.Value)
		}
	}
}

func TestLexAtom_ClassShorthands(t *testing.T) {
	tests := []struct {
		input  string
		letter rune
	}{
		{`\d`, 'd'}, {`\D`, 'D'}, {`\w`, 'w'}, {`\W`, 'W'},
		{`\s`, 's'}, {`\S`, 'S'}, {`\h`, 'h'}, {`\v`, 'v'}, {`\R`, 'R'},
	}
	for _, tt := range tests {
		cur := cursor.New(tt.input)
		got, ok, err := LexAtom(cur, Context{})
		if err != nil || !ok {
			t.Fatalf("%q: unexpected result %v %v", tt.input, ok, err)
		}
		if got.Value.Tag != ast.AtomEscaped || got.Value.Letter != tt.letter {
			t.Fatalf("%q: unexpected atom %+v", tt.input, got.Value)
		}
	}
}

func TestLexAtom_LiteralEscape(t *testing.T) {
	cur := cursor.New(`\.`)
	got, ok, err := LexAtom(cur, Context{})
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Tag != ast.AtomChar || got.Value.Char != '.' {
		t.Fatalf("unexpected atom: %+v", got.Value)
	}
}

func TestLexAtom_HexEscape(t *testing.T) {
	cur := cursor.New(`\x41`)
	got, ok, err := LexAtom(cur, Context{})
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Tag != ast.AtomScalar || got.Value.Scalar != 'A' {
		t.Fatalf("unexpected atom: %+v", got.Value)
	}
}

func TestLexAtom_HexEscapeBraced(t *testing.T) {
	cur := cursor.New(`\x{1F600}`)
	got, ok, err := LexAtom(cur, Context{})
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Scalar != 0x1F600 {
		t.Fatalf("unexpected scalar: %x", got.Value.Scalar)
	}
}

func TestLexAtom_HexEscapeBraced_InvalidDigit(t *testing.T) {
	cur := cursor.New(`\x{zz}`)
	_, ok, err := LexAtom(cur, Context{})
	if ok || err == nil {
		t.Fatalf("expected a hard error for non-hex digits inside \\x{}")
	}
}

func TestLexAtom_UEscapeFourHex(t *testing.T) {
	cur := cursor.New("\\u0041")
	got, ok, err := LexAtom(cur, Context{})
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Tag != ast.AtomScalar || got.Value.Scalar != 'A' {
		t.Fatalf("unexpected atom: %+v", got.Value)
	}
}

func TestLexAtom_UEscapeSurrogatePair(t *testing.T) {
	cur := cursor.New("\\uD83D\\uDE00")
	got, ok, err := LexAtom(cur, Context{})
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Tag != ast.AtomScalar || got.Value.Scalar != 0x1F600 {
		t.Fatalf("expected combined surrogate pair 0x1F600, got %+v", got.Value)
	}
	if !cur.IsEmpty() {
		t.Fatalf("expected both surrogate halves consumed")
	}
}

func TestLexAtom_UEscapeBraced(t *testing.T) {
	cur := cursor.New(`\u{1F600}`)
	got, ok, err := LexAtom(cur, Context{})
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Tag != ast.AtomScalar || got.Value.Scalar != 0x1F600 {
		t.Fatalf("unexpected atom: %+v", got.Value)
	}
}

func TestLexAtom_LiteralAstralCharacter(t *testing.T) {
	cur := cursor.New("😀")
	got, ok, err := LexAtom(cur, Context{})
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Tag != ast.AtomChar || got.Value.Char != 0x1F600 {
		t.Fatalf("expected literal astral character, got %+v", got.Value)
	}
}

func TestLexAtom_UppercaseUEscape(t *testing.T) {
	cur := cursor.New(`\U0001F600`)
	got, ok, err := LexAtom(cur, Context{})
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Tag != ast.AtomScalar || got.Value.Scalar != 0x1F600 {
		t.Fatalf("unexpected atom: %+v", got.Value)
	}
}

func TestLexAtom_BackreferenceVsOctal(t *testing.T) {
	cur := cursor.New(`\1`)
	ctx := Context{PriorGroupCount: 1}
	got, ok, err := LexAtom(cur, ctx)
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Tag != ast.AtomBackreference || got.Value.Reference.Absolute != 1 {
		t.Fatalf("expected backreference to group 1, got %+v", got.Value)
	}

	cur2 := cursor.New(`\1`)
	got2, ok2, err2 := LexAtom(cur2, Context{PriorGroupCount: 0})
	if err2 != nil || !ok2 {
		t.Fatalf("unexpected result: %v %v", ok2, err2)
	}
	if got2.Value.Tag != ast.AtomScalar {
		t.Fatalf("expected octal escape when no prior groups exist, got %+v", got2.Value)
	}
}

func TestLexAtom_LeadingZeroAlwaysOctal(t *testing.T) {
	cur := cursor.New(`\012`)
	got, ok, err := LexAtom(cur, Context{PriorGroupCount: 99})
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Tag != ast.AtomScalar || got.Value.Scalar != 10 {
		t.Fatalf("expected octal 012 == 10, got %+v", got.Value)
	}
}

func TestLexAtom_KeyboardControl(t *testing.T) {
	cur := cursor.New(`\cA`)
	got, ok, err := LexAtom(cur, Context{})
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Tag != ast.AtomKeyboardControl || got.Value.Char != 'A' {
		t.Fatalf("unexpected atom: %+v", got.Value)
	}
}

func TestLexAtom_KeyboardMetaControl(t *testing.T) {
	cur := cursor.New(`\M-\C-A`)
	got, ok, err := LexAtom(cur, Context{})
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Tag != ast.AtomKeyboardMetaControl || got.Value.Char != 'A' {
		t.Fatalf("unexpected atom: %+v", got.Value)
	}
}

func TestLexAtom_NamedCharacter(t *testing.T) {
	cur := cursor.New(`\N{LATIN SMALL LETTER A}`)
	got, ok, err := LexAtom(cur, Context{})
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Tag != ast.AtomNamedCharacter {
		t.Fatalf("expected named character, got %+v", got.Value)
	}
}

func TestLexAtom_NamedCharacterCodepointForm(t *testing.T) {
	cur := cursor.New(`\N{U+0041}`)
	got, ok, err := LexAtom(cur, Context{})
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Tag != ast.AtomScalar || got.Value.Scalar != 'A' {
		t.Fatalf("unexpected atom: %+v", got.Value)
	}
}

func TestLexAtom_BareNMeansEscapedLetter(t *testing.T) {
	cur := cursor.New(`\N`)
	got, ok, err := LexAtom(cur, Context{})
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Tag != ast.AtomEscaped || got.Value.Letter != 'N' {
		t.Fatalf("unexpected atom: %+v", got.Value)
	}
}

func TestLexAtom_NamedBackreference(t *testing.T) {
	cur := cursor.New(`\k<foo>`)
	got, ok, err := LexAtom(cur, Context{})
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Tag != ast.AtomBackreference || got.Value.Reference.Tag != ast.RefNamed || got.Value.Reference.Name != "foo" {
		t.Fatalf("unexpected atom: %+v", got.Value)
	}
}

func TestLexAtom_SubpatternCallViaG(t *testing.T) {
	cur := cursor.New(`\g{2}`)
	got, ok, err := LexAtom(cur, Context{})
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Tag != ast.AtomSubpattern || got.Value.Reference.Absolute != 2 {
		t.Fatalf("unexpected atom: %+v", got.Value)
	}
}

func TestLexAtom_BacktrackingDirective(t *testing.T) {
	cur := cursor.New(`(*ACCEPT)`)
	got, ok, err := LexAtom(cur, Context{})
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Tag != ast.AtomBacktrackingDirective || got.Value.Verb != "ACCEPT" {
		t.Fatalf("unexpected atom: %+v", got.Value)
	}
}

func TestLexAtom_UnknownVerbIsNotABacktrackingDirective(t *testing.T) {
	cur := cursor.New(`(*FOO)`)
	got, ok, err := LexAtom(cur, Context{})
	if err != nil || !ok {
		t.Fatalf("unexpected result: %v %v", ok, err)
	}
	if got.Value.Tag != ast.AtomChar || got.Value.Char != '(' {
		t.Fatalf("expected literal '(' when verb is unknown, got %+v", got.Value)
	}
}

func TestLexAtom_EmptyInput(t *testing.T) {
	cur := cursor.New("")
	_, ok, err := LexAtom(cur, Context{})
	if ok || err != nil {
		t.Fatalf("expected no match at end of input, got ok=%v err=%v", ok, err)
	}
}
