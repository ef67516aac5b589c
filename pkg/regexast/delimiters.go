package regexast

import (
	"strings"

	"github.com/cwbudde/go-regexast/internal/diag"
)

// delimiterForm is one recognized wrapper a regex literal can come
// dressed in, and the Syntax defaults implied by choosing that form.
// This table is the single place the inference rule lives.
type delimiterForm struct {
	prefix, suffix string
	syntax         Syntax
}

var delimiterForms = []delimiterForm{
	{prefix: "re'", suffix: "'", syntax: Syntax{PCRE: true}},
	{prefix: "#/", suffix: "/#", syntax: Syntax{ExtendedSyntax: true, NonSemanticWhitespace: true}},
	{prefix: "/", suffix: "/", syntax: Syntax{ECMAScript: true}},
	{prefix: "'", suffix: "'", syntax: Syntax{Oniguruma: true}},
	{prefix: "|", suffix: "|", syntax: Syntax{}},
}

// stripDelimiters matches input against delimiterForms in order (most
// specific prefix first, so `re'…'` is tried before the bare `'…'`
// form) and returns the enclosed body plus the inferred Syntax.
func stripDelimiters(input string) (string, Syntax, *diag.LocatedError) {
	for _, form := range delimiterForms {
		if len(input) < len(form.prefix)+len(form.suffix) {
			continue
		}
		if !strings.HasPrefix(input, form.prefix) || !strings.HasSuffix(input, form.suffix) {
			continue
		}
		body := input[len(form.prefix) : len(input)-len(form.suffix)]
		return body, form.syntax, nil
	}
	return "", Syntax{}, diag.New(diag.UnknownDelimiter, diag.SourceLocation{})
}
