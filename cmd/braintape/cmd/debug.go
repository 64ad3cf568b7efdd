package cmd

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"github.com/agenthands/braintape/internal/tui"
	"github.com/agenthands/braintape/pkg/compiler/optimizer"
	"github.com/agenthands/braintape/pkg/vm"
)

var (
	debugInputFile  string
	debugNoOptimize bool
)

var debugCmd = &cobra.Command{
	Use:   "debug <file>",
	Short: "Step through a program in a terminal UI",
	Long: `Runs a program one operation at a time, showing the tape around
the pointer and the output produced so far.

Program input is read from --input; without it the input stream is
empty and ',' stores 0 into the current cell.

Keys:
  n / Space / Enter   execute the next operation
  r                   run to completion
  q / Ctrl+C          quit`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		program, err := parseFile(args[0])
		if err != nil {
			return err
		}
		if cfg.Run.Optimize && !debugNoOptimize {
			program = optimizer.Optimize(program)
		}

		var input []byte
		if debugInputFile != "" {
			input, err = os.ReadFile(debugInputFile)
			if err != nil {
				return err
			}
		}

		m := &vm.Machine{
			In:       bytes.NewReader(input),
			TapeSize: cfg.Tape.Size,
			EOF:      vm.EOFZero,
		}
		return tui.Run(program, m, cfg.Debug.Window)
	},
}

func init() {
	rootCmd.AddCommand(debugCmd)
	debugCmd.Flags().StringVar(&debugInputFile, "input", "", "read program input from a file")
	debugCmd.Flags().BoolVar(&debugNoOptimize, "no-optimize", false, "step unfolded unit operations")
}
