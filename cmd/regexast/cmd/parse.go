package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-regexast/pkg/regexast"
	"github.com/spf13/cobra"
)

var (
	parseDumpAST   bool
	parseWithDelim bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a regex pattern and print its AST",
	Long: `Parse a regex pattern into its abstract syntax tree.

If no file is provided, reads from stdin. Use -e to parse an inline
pattern instead. Use --delimited to treat the input as wrapped in one
of the recognized literal delimiters (/…/, '…', re'…', #/…/#, |…|)
and infer Syntax options from the matched form.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse an inline pattern instead of reading from file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", true, "print the dump() form of the parsed AST")
	parseCmd.Flags().BoolVar(&parseWithDelim, "delimited", false, "strip a recognized delimiter pair and infer syntax from it")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, _, err := readInput(args)
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	var node regexast.Node
	if parseWithDelim {
		node, err = regexast.ParseWithDelimiters(input)
	} else {
		node, err = regexast.Parse(input, currentSyntax())
	}
	if err != nil {
		if pe, ok := err.(*regexast.ParseError); ok {
			fmt.Fprintln(os.Stderr, pe.WithSource(input).Error())
		} else {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		return fmt.Errorf("parsing failed")
	}

	if parseDumpAST {
		fmt.Println(regexast.Dump(node))
	}
	return nil
}
