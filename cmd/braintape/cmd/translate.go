package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agenthands/braintape/pkg/compiler/lexer"
	"github.com/agenthands/braintape/pkg/compiler/translate"
)

var translateTarget string

var translateCmd = &cobra.Command{
	Use:   "translate <file>",
	Short: "Generate Go or C source from a program",
	Long: `Renders the raw token stream of a program as source code for the
chosen target language, one fixed template per token kind. The
generated program is written to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := translate.ByName(translateTarget)
		if err != nil {
			return err
		}

		src, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), translate.Translate(target, lexer.Tokenize(src)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)
	translateCmd.Flags().StringVar(&translateTarget, "target", "go", "target language: go or c")
}
