package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var evalExpr string

var rootCmd = &cobra.Command{
	Use:   "regexast",
	Short: "Regex front end: lex and parse regex patterns into an AST",
	Long: `regexast parses regex patterns (PCRE/Oniguruma/ICU/ECMAScript
flavored) into a located abstract syntax tree and prints it in a
deterministic textual form.

This tool builds an AST only — it never matches or executes a
pattern against input text.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&syntaxExtended, "extended", false, "enable extended syntax (free-spacing mode)")
	rootCmd.PersistentFlags().BoolVar(&syntaxPCRE, "pcre", false, "enable PCRE-specific constructs")
	rootCmd.PersistentFlags().BoolVar(&syntaxOniguruma, "oniguruma", false, "enable Oniguruma-specific constructs")
	rootCmd.PersistentFlags().BoolVar(&syntaxICU, "icu", false, "enable ICU-specific constructs")
	rootCmd.PersistentFlags().BoolVar(&syntaxECMAScript, "ecmascript", false, "enable ECMAScript-specific constructs")
}

var (
	syntaxExtended   bool
	syntaxPCRE       bool
	syntaxOniguruma  bool
	syntaxICU        bool
	syntaxECMAScript bool
)

func currentSyntax() regexastSyntax {
	return regexastSyntax{
		ExtendedSyntax: syntaxExtended,
		PCRE:           syntaxPCRE,
		Oniguruma:      syntaxOniguruma,
		ICU:            syntaxICU,
		ECMAScript:     syntaxECMAScript,
	}
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}

func readInput(args []string) (string, string, error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := readFile(args[0])
		if err != nil {
			return "", "", err
		}
		return content, args[0], nil
	}
	content, err := readStdin()
	return content, "<stdin>", err
}
