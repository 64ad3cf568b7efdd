package stats

import (
	"github.com/agenthands/braintape/pkg/compiler/ast"
)

// Stats aggregates instruction counts for one expression tree. It is a pure
// value; combining two Stats is pointwise addition, which is associative and
// commutative, so the Stats of a tree equals the merge of all sub-tree Stats.
type Stats struct {
	Fwd    int
	Bwd    int
	Inc    int
	Dec    int
	Output int
	Input  int
	Loop   int
}

// Merge returns the pointwise sum of a and b.
func Merge(a, b Stats) Stats {
	return Stats{
		Fwd:    a.Fwd + b.Fwd,
		Bwd:    a.Bwd + b.Bwd,
		Inc:    a.Inc + b.Inc,
		Dec:    a.Dec + b.Dec,
		Output: a.Output + b.Output,
		Input:  a.Input + b.Input,
		Loop:   a.Loop + b.Loop,
	}
}

// Collect folds the tree into aggregate counts. Each node increments the
// counter for its kind; a Loop counts itself and then contributes the Stats
// of its body. Collect has no side effects and never fails.
func Collect(nodes []ast.Node) Stats {
	var acc Stats
	for _, node := range nodes {
		switch n := node.(type) {
		case *ast.MoveForward:
			acc.Fwd++
		case *ast.MoveBack:
			acc.Bwd++
		case *ast.IncValue:
			acc.Inc++
		case *ast.DecValue:
			acc.Dec++
		case *ast.OutputValue:
			acc.Output++
		case *ast.InputValue:
			acc.Input++
		case *ast.Loop:
			acc.Loop++
			acc = Merge(acc, Collect(n.Body))
		}
	}
	return acc
}
