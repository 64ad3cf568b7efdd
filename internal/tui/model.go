package tui

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agenthands/braintape/pkg/compiler/ast"
	"github.com/agenthands/braintape/pkg/vm"
)

type traceMsg vm.TraceEvent

type doneMsg struct {
	err error
}

// stepTracer forwards machine trace events to the UI and blocks the machine
// until the UI requests the next step.
type stepTracer struct {
	events chan vm.TraceEvent
	gate   chan struct{}
}

func (t *stepTracer) Trace(ev vm.TraceEvent) {
	t.events <- ev
	<-t.gate
}

// outputBuffer collects program output. The machine writes from its own
// goroutine while View reads from the UI goroutine.
type outputBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *outputBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *outputBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Model is the Bubbletea model for the step-through debugger. The machine
// runs in its own goroutine; every primitive operation is delivered as a
// traceMsg and held at a gate until the user steps.
type Model struct {
	program []ast.Node
	machine *vm.Machine
	tracer  *stepTracer
	done    chan error
	out     *outputBuffer

	op       string
	ptr      int
	window   []uint32
	start    int
	steps    int
	auto     bool
	finished bool
	err      error
}

// New wires a machine for stepping and returns the initial model. The
// machine's output and tracer are owned by the debugger from here on.
func New(program []ast.Node, machine *vm.Machine, window int) Model {
	tracer := &stepTracer{
		events: make(chan vm.TraceEvent),
		gate:   make(chan struct{}),
	}
	out := &outputBuffer{}
	machine.Tracer = tracer
	machine.TraceWindow = window
	machine.Out = out

	return Model{
		program: program,
		machine: machine,
		tracer:  tracer,
		done:    make(chan error, 1),
		out:     out,
	}
}

// Run starts the debugger and blocks until the user quits.
func Run(program []ast.Node, machine *vm.Machine, window int) error {
	p := tea.NewProgram(New(program, machine, window), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init starts the machine goroutine and waits for the first event.
func (m Model) Init() tea.Cmd {
	go func() {
		m.done <- m.machine.Run(m.program)
	}()
	return m.waitCmd()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "n", " ", "enter":
			if m.finished {
				return m, nil
			}
			m.auto = false
			return m, m.stepCmd()
		case "r":
			if m.finished {
				return m, nil
			}
			m.auto = true
			return m, m.stepCmd()
		}

	case traceMsg:
		m.op = msg.Op
		m.ptr = msg.Ptr
		m.window = msg.Window
		m.start = msg.Start
		m.steps++
		if m.auto {
			return m, m.stepCmd()
		}
		return m, nil

	case doneMsg:
		m.finished = true
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

// View renders the debugger screen.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("braintape debugger"))
	sb.WriteString("\n\n")

	status := fmt.Sprintf("step %d   ptr %d", m.steps, m.ptr)
	sb.WriteString(statusStyle.Render(status))
	sb.WriteString("   ")
	sb.WriteString(opStyle.Render(m.op))
	sb.WriteString("\n\n")

	sb.WriteString(tapeBoxStyle.Render(m.renderTape()))
	sb.WriteString("\n\n")

	sb.WriteString(outputBoxStyle.Render(m.renderOutput()))
	sb.WriteString("\n\n")

	switch {
	case m.finished && m.err != nil:
		sb.WriteString(errorStyle.Render(fmt.Sprintf("aborted: %v", m.err)))
		sb.WriteString("\n")
	case m.finished:
		sb.WriteString(doneStyle.Render("program finished"))
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render("n/space/enter step   r run   q quit"))
	sb.WriteString("\n")

	return sb.String()
}

func (m Model) renderTape() string {
	if len(m.window) == 0 {
		return statusStyle.Render("tape not started")
	}

	cells := make([]string, 0, len(m.window))
	for i, v := range m.window {
		label := fmt.Sprintf("%d", v)
		if m.start+i == m.ptr {
			cells = append(cells, pointerCellStyle.Render(label))
		} else {
			cells = append(cells, cellStyle.Render(label))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	span := fmt.Sprintf("cells %d..%d", m.start, m.start+len(m.window)-1)
	return row + "\n" + statusStyle.Render(span)
}

func (m Model) renderOutput() string {
	out := m.out.String()
	if out == "" {
		return statusStyle.Render("(no output yet)")
	}
	return out
}

func (m Model) stepCmd() tea.Cmd {
	return func() tea.Msg {
		m.tracer.gate <- struct{}{}
		return m.wait()
	}
}

func (m Model) waitCmd() tea.Cmd {
	return func() tea.Msg {
		return m.wait()
	}
}

func (m Model) wait() tea.Msg {
	select {
	case ev := <-m.tracer.events:
		return traceMsg(ev)
	case err := <-m.done:
		return doneMsg{err: err}
	}
}
