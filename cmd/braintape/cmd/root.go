package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/agenthands/braintape/pkg/compiler/ast"
	"github.com/agenthands/braintape/pkg/compiler/lexer"
	"github.com/agenthands/braintape/pkg/compiler/parser"
	"github.com/agenthands/braintape/pkg/core/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "braintape",
	Short: "Brainfuck toolchain: interpreter, translator, program statistics",
	Long: `braintape runs Brainfuck programs on a virtual tape machine,
translates token streams into Go or C source, and reports
aggregate instruction statistics.

Commands:
  run        - execute a program
  stats      - print instruction counts
  translate  - generate Go or C source from a program
  debug      - step through a program in a terminal UI`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
}

// loadConfig returns the file config when --config is given, otherwise the
// built-in defaults.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.Load(cfgFile)
}

// parseFile reads a source file and builds its expression tree.
func parseFile(path string) ([]ast.Node, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parser.Parse(lexer.Tokenize(src))
}
