package optimizer

import (
	"github.com/agenthands/braintape/pkg/compiler/ast"
)

// Optimize folds runs of identical unit-step operations into single counted
// nodes. Input/output nodes never merge. Loop bodies are optimized
// independently of their siblings, including empty bodies. Applied to a
// freshly parsed tree (every count 1) one pass produces maximal folding;
// applying it again is a no-op because only count-1 nodes are absorbed.
func Optimize(nodes []ast.Node) []ast.Node {
	optimized := make([]ast.Node, 0, len(nodes))

	for _, node := range nodes {
		switch n := node.(type) {
		case *ast.Loop:
			optimized = append(optimized, &ast.Loop{Body: Optimize(n.Body)})

		case *ast.IncValue:
			if last, ok := tail(optimized).(*ast.IncValue); ok && n.Count == 1 {
				optimized[len(optimized)-1] = &ast.IncValue{Count: last.Count + 1}
				continue
			}
			optimized = append(optimized, &ast.IncValue{Count: n.Count})

		case *ast.DecValue:
			if last, ok := tail(optimized).(*ast.DecValue); ok && n.Count == 1 {
				optimized[len(optimized)-1] = &ast.DecValue{Count: last.Count + 1}
				continue
			}
			optimized = append(optimized, &ast.DecValue{Count: n.Count})

		case *ast.MoveForward:
			if last, ok := tail(optimized).(*ast.MoveForward); ok && n.Count == 1 {
				optimized[len(optimized)-1] = &ast.MoveForward{Count: last.Count + 1}
				continue
			}
			optimized = append(optimized, &ast.MoveForward{Count: n.Count})

		case *ast.MoveBack:
			if last, ok := tail(optimized).(*ast.MoveBack); ok && n.Count == 1 {
				optimized[len(optimized)-1] = &ast.MoveBack{Count: last.Count + 1}
				continue
			}
			optimized = append(optimized, &ast.MoveBack{Count: n.Count})

		default:
			optimized = append(optimized, node)
		}
	}

	return optimized
}

func tail(nodes []ast.Node) ast.Node {
	if len(nodes) == 0 {
		return nil
	}
	return nodes[len(nodes)-1]
}
