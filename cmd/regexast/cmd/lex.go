package cmd

import (
	"fmt"

	"github.com/cwbudde/go-regexast/internal/ast"
	"github.com/cwbudde/go-regexast/internal/cursor"
	"github.com/cwbudde/go-regexast/internal/lexer"
	"github.com/spf13/cobra"
)

var showPos bool

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Walk a regex pattern atom-by-atom and print what each scanner produced",
	Long: `This front end has no separate tokenization pass — the parser calls
a specific lexer scanner at each grammar point because only the parser
knows which construct is possible there. This command is a debugging
aid, not a real tokenizer: it repeatedly calls the atom scanner over
the raw input outside of any parsing context, which means group
openers, quantifiers, and conditional/absent-function prefixes are
not recognized here the way the parser would recognize them.

Examples:
  regexast lex -e '(foo|bar)+'
  regexast lex --show-pos pattern.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexPattern,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "lex an inline pattern instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show each atom's source span")
}

func lexPattern(cmd *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Lexing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	cur := cursor.New(input)
	ctx := lexer.Context{Dialect: lexer.Dialect{
		PCRE: syntaxPCRE, Oniguruma: syntaxOniguruma, ICU: syntaxICU, ECMAScript: syntaxECMAScript,
	}}
	count := 0
	for !cur.IsEmpty() {
		atom, ok, lerr := lexer.LexAtom(cur, ctx)
		if lerr != nil {
			return fmt.Errorf("%s", lerr.WithSource(input).Error())
		}
		if !ok {
			r, _ := cur.Advance()
			fmt.Printf("literal %q\n", r)
			count++
			continue
		}
		count++
		printAtom(atom)
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total atoms: %d\n", count)
	}
	return nil
}

func printAtom(atom cursor.Located[ast.AtomKind]) {
	node := ast.NewAtom(atom.Loc, atom.Value)
	if showPos {
		fmt.Printf("%s @%d:%d-%d:%d\n", ast.Dump(node),
			atom.Loc.Start.Line, atom.Loc.Start.Column, atom.Loc.End.Line, atom.Loc.End.Column)
		return
	}
	fmt.Println(ast.Dump(node))
}
