package vm

import (
	"fmt"

	"github.com/agenthands/braintape/pkg/compiler/ast"
)

// TraceEvent is a snapshot taken after one primitive operation executed.
// Window is a copy of the cells around the pointer; Start is the tape index
// of Window[0].
type TraceEvent struct {
	Op     string
	Ptr    int
	Cell   uint32
	Window []uint32
	Start  int
}

// Tracer observes execution one primitive operation at a time. A tracer may
// block; the machine does not proceed until Trace returns.
type Tracer interface {
	Trace(ev TraceEvent)
}

const defaultTraceWindow = 16

func (m *Machine) trace(node ast.Node) {
	if m.Tracer == nil {
		return
	}
	width := m.TraceWindow
	if width <= 0 {
		width = defaultTraceWindow
	}
	window, start := m.tape.Window(width)
	m.Tracer.Trace(TraceEvent{
		Op:     opLabel(node),
		Ptr:    m.tape.Ptr(),
		Cell:   m.tape.Read(),
		Window: window,
		Start:  start,
	})
}

func opLabel(node ast.Node) string {
	switch n := node.(type) {
	case *ast.IncValue:
		return fmt.Sprintf("+ x%d", n.Count)
	case *ast.DecValue:
		return fmt.Sprintf("- x%d", n.Count)
	case *ast.MoveForward:
		return fmt.Sprintf("> x%d", n.Count)
	case *ast.MoveBack:
		return fmt.Sprintf("< x%d", n.Count)
	case *ast.InputValue:
		return ","
	case *ast.OutputValue:
		return "."
	case *ast.Loop:
		return "loop"
	default:
		return "?"
	}
}
