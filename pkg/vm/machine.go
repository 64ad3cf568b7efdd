package vm

import (
	"errors"
	"fmt"
	"io"

	"github.com/agenthands/braintape/pkg/compiler/ast"
)

// EOFPolicy controls what an input instruction does when the input stream is
// exhausted.
type EOFPolicy uint8

const (
	// EOFError aborts execution with an I/O error. This is the default.
	EOFError EOFPolicy = iota
	// EOFZero writes 0 into the current cell.
	EOFZero
	// EOFUnchanged leaves the current cell as it is.
	EOFUnchanged
)

// ParseEOFPolicy maps a config/flag value to its policy.
func ParseEOFPolicy(s string) (EOFPolicy, error) {
	switch s {
	case "", "error":
		return EOFError, nil
	case "zero":
		return EOFZero, nil
	case "unchanged":
		return EOFUnchanged, nil
	default:
		return EOFError, fmt.Errorf("vm: unknown eof policy %q (available: error, zero, unchanged)", s)
	}
}

// Machine executes an expression tree against a fresh tape. Execution is
// single-threaded and synchronous; the only suspension points are the two
// byte I/O primitives.
type Machine struct {
	In  io.Reader
	Out io.Writer

	// TapeSize overrides DefaultTapeSize when positive.
	TapeSize int
	EOF      EOFPolicy

	// Tracer, when set, observes every executed primitive operation.
	Tracer Tracer
	// TraceWindow is the number of cells captured per trace event.
	TraceWindow int

	tape *Tape
}

// Run allocates a fresh tape and walks the tree depth-first. The first fault
// aborts execution immediately with no partial result; after a successful run
// the final tape state is available via Tape.
func (m *Machine) Run(nodes []ast.Node) error {
	size := m.TapeSize
	if size <= 0 {
		size = DefaultTapeSize
	}
	m.tape = NewTape(size)
	return m.exec(nodes)
}

// Tape returns the tape of the most recent Run.
func (m *Machine) Tape() *Tape {
	return m.tape
}

func (m *Machine) exec(nodes []ast.Node) error {
	for _, node := range nodes {
		switch n := node.(type) {
		case *ast.MoveForward:
			if err := m.tape.Forward(n.Count); err != nil {
				return err
			}
		case *ast.MoveBack:
			if err := m.tape.Back(n.Count); err != nil {
				return err
			}
		case *ast.IncValue:
			m.tape.Inc(n.Count)
		case *ast.DecValue:
			m.tape.Dec(n.Count)
		case *ast.OutputValue:
			if err := m.output(); err != nil {
				return err
			}
		case *ast.InputValue:
			if err := m.input(); err != nil {
				return err
			}
		case *ast.Loop:
			// Re-read the cell before every iteration. A cell that is
			// already zero skips the body entirely; the interpreter
			// imposes no iteration limit.
			for m.tape.Read() != 0 {
				if err := m.exec(n.Body); err != nil {
					return err
				}
			}
			continue
		}
		m.trace(node)
	}
	return nil
}

// output writes the low 8 bits of the current cell and flushes immediately so
// the byte is externally visible before execution proceeds.
func (m *Machine) output() error {
	b := [1]byte{byte(m.tape.Read())}
	if _, err := m.Out.Write(b[:]); err != nil {
		return fmt.Errorf("vm: output failed: %w", err)
	}
	if f, ok := m.Out.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("vm: output flush failed: %w", err)
		}
	}
	return nil
}

// input blocks until exactly one byte is available and stores it in the
// current cell. End of stream is handled per the configured policy.
func (m *Machine) input() error {
	var b [1]byte
	if _, err := io.ReadFull(m.In, b[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			switch m.EOF {
			case EOFZero:
				m.tape.Write(0)
				return nil
			case EOFUnchanged:
				return nil
			}
		}
		return fmt.Errorf("vm: input failed: %w", err)
	}
	m.tape.Write(uint32(b[0]))
	return nil
}
