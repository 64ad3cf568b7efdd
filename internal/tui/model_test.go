package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agenthands/braintape/pkg/compiler/ast"
	"github.com/agenthands/braintape/pkg/vm"
)

func testModel() Model {
	program := []ast.Node{&ast.IncValue{Count: 3}}
	machine := &vm.Machine{TapeSize: 16, In: strings.NewReader("")}
	return New(program, machine, 8)
}

func TestUpdateTraceEvent(t *testing.T) {
	m := testModel()

	next, _ := m.Update(traceMsg(vm.TraceEvent{
		Op:     "+ x3",
		Ptr:    0,
		Cell:   3,
		Window: []uint32{3, 0, 0, 0},
		Start:  0,
	}))

	got := next.(Model)
	if got.steps != 1 {
		t.Errorf("expected 1 step, got %d", got.steps)
	}
	if got.op != "+ x3" {
		t.Errorf("expected op recorded, got %q", got.op)
	}

	view := got.View()
	if !strings.Contains(view, "+ x3") {
		t.Error("view does not show the current op")
	}
	if !strings.Contains(view, "cells 0..3") {
		t.Errorf("view does not show the window span:\n%s", view)
	}
}

func TestUpdateDone(t *testing.T) {
	m := testModel()

	next, _ := m.Update(doneMsg{})
	got := next.(Model)
	if !got.finished {
		t.Error("expected model marked finished")
	}
	if !strings.Contains(got.View(), "program finished") {
		t.Error("view does not report completion")
	}
}

func TestUpdateDoneWithError(t *testing.T) {
	m := testModel()

	next, _ := m.Update(doneMsg{err: &vm.OutOfRangeError{Ptr: -1}})
	got := next.(Model)
	if got.err == nil {
		t.Fatal("expected error recorded")
	}
	if !strings.Contains(got.View(), "aborted") {
		t.Error("view does not report the abort")
	}
}

func TestUpdateQuitKeys(t *testing.T) {
	m := testModel()

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd == nil {
		t.Error("q: expected quit command")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Error("ctrl+c: expected quit command")
	}
}

func TestStepIgnoredAfterFinish(t *testing.T) {
	m := testModel()
	next, _ := m.Update(doneMsg{})
	finished := next.(Model)

	_, cmd := finished.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if cmd != nil {
		t.Error("expected no command after program finished")
	}
}
