package diag

import (
	"strings"
	"testing"
)

func TestErrorKind_String(t *testing.T) {
	if got := UnbalancedEndOfGroup.String(); got != "UnbalancedEndOfGroup" {
		t.Fatalf("unexpected String(): %q", got)
	}
	if got := ErrorKind(9999).String(); !strings.HasPrefix(got, "ErrorKind(") {
		t.Fatalf("expected fallback format for unknown kind, got %q", got)
	}
}

func TestLocatedError_ErrorWithoutSource(t *testing.T) {
	loc := SourceLocation{StartLine: 1, StartColumn: 5}
	err := New(UnexpectedEndOfInput, loc)

	got := err.Error()
	if !strings.Contains(got, "at 1:5") {
		t.Fatalf("expected position in error message, got %q", got)
	}
}

func TestLocatedError_Newf_InvalidQuantifierRange(t *testing.T) {
	err := Newf(InvalidQuantifierRange, SourceLocation{}, 5, 2)
	got := err.Error()
	if !strings.Contains(got, "{5,2}") {
		t.Fatalf("expected range in message, got %q", got)
	}
	if !strings.Contains(got, "lower bound exceeds upper bound") {
		t.Fatalf("expected explanation in message, got %q", got)
	}
}

func TestLocatedError_WithSource_CaretFormatting(t *testing.T) {
	source := "(a+b"
	loc := SourceLocation{StartLine: 1, StartColumn: 5, StartOffset: 4}
	err := New(UnbalancedEndOfGroup, loc).WithSource(source)

	got := err.Error()
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3-line caret output, got %d lines: %q", len(lines), got)
	}
	if !strings.Contains(lines[0], "1:5") {
		t.Fatalf("expected header to mention position, got %q", lines[0])
	}
	if !strings.HasSuffix(lines[2], "^") {
		t.Fatalf("expected caret line to end with '^', got %q", lines[2])
	}
}

func TestLocatedError_WithSource_DoesNotMutateOriginal(t *testing.T) {
	err := New(UnexpectedEndOfInput, SourceLocation{})
	withSrc := err.WithSource("abc")

	if err.Source != "" {
		t.Fatalf("expected original error to be untouched, got Source=%q", err.Source)
	}
	if withSrc.Source != "abc" {
		t.Fatalf("expected clone to carry source")
	}
}

func TestLocatedError_TooManyBranchesMessage(t *testing.T) {
	err := Newf(TooManyBranchesInConditional, SourceLocation{}, 3)
	got := err.Error()
	if !strings.Contains(got, "3 branches") {
		t.Fatalf("expected branch count in message, got %q", got)
	}
}

func TestLocatedError_DefaultMessageUsesKindName(t *testing.T) {
	err := New(NotQuantifiable, SourceLocation{})
	if err.Error() == "" {
		t.Fatalf("expected non-empty message")
	}
	if !strings.Contains(err.Error(), "NotQuantifiable") {
		t.Fatalf("expected default message to use kind name, got %q", err.Error())
	}
}
