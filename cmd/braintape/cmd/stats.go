package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/agenthands/braintape/pkg/compiler/optimizer"
	"github.com/agenthands/braintape/pkg/stats"
)

var statsRaw bool

var (
	statsTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	statsLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Width(10)

	statsValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))
)

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Print instruction counts",
	Long: `Parses and optimizes a program, then prints the seven aggregate
instruction counters collected from the expression tree.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		program, err := parseFile(args[0])
		if err != nil {
			return err
		}
		if !statsRaw {
			program = optimizer.Optimize(program)
		}
		printStats(cmd.OutOrStdout(), stats.Collect(program))
		return nil
	},
}

func printStats(w io.Writer, s stats.Stats) {
	rows := []struct {
		label string
		count int
	}{
		{"forward", s.Fwd},
		{"back", s.Bwd},
		{"inc", s.Inc},
		{"dec", s.Dec},
		{"output", s.Output},
		{"input", s.Input},
		{"loops", s.Loop},
	}

	fmt.Fprintln(w, statsTitleStyle.Render("instruction counts"))
	for _, row := range rows {
		fmt.Fprintf(w, "%s %s\n",
			statsLabelStyle.Render(row.label),
			statsValueStyle.Render(fmt.Sprintf("%d", row.count)))
	}
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsRaw, "raw", false, "count the unoptimized tree instead of the folded one")
}
