package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <expression>",
	Short: "Print the tokens of an expression",
	Long: `Splits an expression into tokens and prints kind, lexeme and byte
position of every token. Whitespace is not printed.

Example:
  arith tokens "1.5 * (2+3)"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTokens,
}

var treeCmd = &cobra.Command{
	Use:   "tree <expression>",
	Short: "Print the expression tree of an expression",
	Long: `Parses an expression and prints its tree as an S-expression.

Example:
  arith tree 1-2-3         # (- 1 (- 2 3))`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTree,
}

var checkCmd = &cobra.Command{
	Use:   "check <expression>",
	Short: "Check the syntax of an expression with an Earley parser",
	Long: `Checks an expression against the grammar, using a general Earley
parser instead of the recursive descent parser used for evaluation.
Prints "ok" for valid expressions.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(checkCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	tokens, err := fe.Tokenize(strings.Join(args, " "))
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, tok := range tokens {
		fmt.Fprintf(w, "%-7s %-10q %d\n", tok.Kind, tok.Lexeme, tok.Pos)
	}
	return nil
}

func runTree(cmd *cobra.Command, args []string) error {
	e, err := fe.Parse(strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), e)
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	expr := strings.Join(args, " ")
	ok, err := fe.Check(expr)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%q is not a valid expression", expr)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}
