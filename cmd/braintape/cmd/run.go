package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/agenthands/braintape/pkg/compiler/optimizer"
	"github.com/agenthands/braintape/pkg/stats"
	"github.com/agenthands/braintape/pkg/vm"
)

var (
	runNoOptimize bool
	runTapeSize   int
	runEOF        string
	runInputFile  string
	runShowStats  bool
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Execute a program",
	Long: `Executes a Brainfuck program against a fresh tape, reading input
bytes from stdin (or --input) and writing output bytes to stdout,
one flushed byte at a time.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("tape-size") {
			cfg.Tape.Size = runTapeSize
		}
		if cmd.Flags().Changed("eof") {
			cfg.Run.EOF = runEOF
		}
		if runNoOptimize {
			cfg.Run.Optimize = false
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		program, err := parseFile(args[0])
		if err != nil {
			return err
		}
		if cfg.Run.Optimize {
			program = optimizer.Optimize(program)
		}

		in := os.Stdin
		if runInputFile != "" {
			f, err := os.Open(runInputFile)
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		policy, err := vm.ParseEOFPolicy(cfg.Run.EOF)
		if err != nil {
			return err
		}

		m := &vm.Machine{
			In:       in,
			Out:      os.Stdout,
			TapeSize: cfg.Tape.Size,
			EOF:      policy,
		}
		if err := m.Run(program); err != nil {
			return err
		}

		if runShowStats {
			printStats(cmd.OutOrStdout(), stats.Collect(program))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runNoOptimize, "no-optimize", false, "skip run-length folding")
	runCmd.Flags().IntVar(&runTapeSize, "tape-size", vm.DefaultTapeSize, "tape size in cells")
	runCmd.Flags().StringVar(&runEOF, "eof", "error", "end-of-input policy: error, zero or unchanged")
	runCmd.Flags().StringVar(&runInputFile, "input", "", "read program input from a file instead of stdin")
	runCmd.Flags().BoolVar(&runShowStats, "stats", false, "print instruction statistics after the run")
}
