package vm_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/agenthands/braintape/pkg/compiler/ast"
	"github.com/agenthands/braintape/pkg/compiler/lexer"
	"github.com/agenthands/braintape/pkg/compiler/optimizer"
	"github.com/agenthands/braintape/pkg/compiler/parser"
	"github.com/agenthands/braintape/pkg/vm"
)

// helloWorld is the classic loop-initialized greeting program.
const helloWorld = "++++++++++[>+++++++>++++++++++>+++>+<<<<-]" +
	">++.>+.+++++++..+++.>++.<<+++++++++++++++.>.+++.------.--------.>+.>."

func compile(t *testing.T, src string) []ast.Node {
	t.Helper()
	nodes, err := parser.Parse(lexer.Tokenize([]byte(src)))
	if err != nil {
		t.Fatalf("parse %q: unexpected error: %v", src, err)
	}
	return optimizer.Optimize(nodes)
}

func run(t *testing.T, src, input string) (*vm.Machine, string, error) {
	t.Helper()
	var out bytes.Buffer
	m := &vm.Machine{
		In:       strings.NewReader(input),
		Out:      &out,
		TapeSize: 256,
	}
	err := m.Run(compile(t, src))
	return m, out.String(), err
}

func TestRunClearLoop(t *testing.T) {
	m, _, err := run(t, "+++[-]", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.Tape().Read(); got != 0 {
		t.Errorf("expected cell 0 after clear loop, got %d", got)
	}
}

func TestRunOutputByte(t *testing.T) {
	_, out, err := run(t, "+++.", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "\x03" {
		t.Errorf("expected single byte 3, got %q", out)
	}
}

func TestRunOutputTruncatesToLowByte(t *testing.T) {
	// 300 increments leave the 32-bit cell at 300; output is 300 mod 256.
	src := strings.Repeat("+", 300) + "."
	m, out, err := run(t, src, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != string(byte(44)) {
		t.Errorf("expected byte 44, got %q", out)
	}
	if got := m.Tape().Read(); got != 300 {
		t.Errorf("expected cell to keep full value 300, got %d", got)
	}
}

func TestRunInputEcho(t *testing.T) {
	_, out, err := run(t, ",.,.", "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hi" {
		t.Errorf("expected %q, got %q", "hi", out)
	}
}

func TestRunZeroIterationLoop(t *testing.T) {
	// The cell is zero on entry, so the loop body never executes.
	_, out, err := run(t, "[.]", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
}

func TestRunLoopMovesValue(t *testing.T) {
	m, _, err := run(t, "+++++[->+<]>", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.Tape().Read(); got != 5 {
		t.Errorf("expected value 5 moved into next cell, got %d", got)
	}
	if got := m.Tape().Ptr(); got != 1 {
		t.Errorf("expected pointer at 1, got %d", got)
	}
}

func TestRunEOFDefaultIsFatal(t *testing.T) {
	_, _, err := run(t, ",", "")
	if err == nil {
		t.Fatal("expected error reading past end of input")
	}
}

func TestRunEOFZeroPolicy(t *testing.T) {
	var out bytes.Buffer
	m := &vm.Machine{
		In:       strings.NewReader(""),
		Out:      &out,
		TapeSize: 16,
		EOF:      vm.EOFZero,
	}
	if err := m.Run(compile(t, "+++,")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.Tape().Read(); got != 0 {
		t.Errorf("expected cell zeroed on EOF, got %d", got)
	}
}

func TestRunEOFUnchangedPolicy(t *testing.T) {
	var out bytes.Buffer
	m := &vm.Machine{
		In:       strings.NewReader(""),
		Out:      &out,
		TapeSize: 16,
		EOF:      vm.EOFUnchanged,
	}
	if err := m.Run(compile(t, "+++,")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.Tape().Read(); got != 3 {
		t.Errorf("expected cell untouched on EOF, got %d", got)
	}
}

func TestRunPointerOutOfRange(t *testing.T) {
	_, _, err := run(t, "<", "")
	if err == nil {
		t.Fatal("expected out-of-range error")
	}
	var oor *vm.OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("expected *vm.OutOfRangeError, got %T", err)
	}
}

func TestRunAbortsWithoutPartialOutputAfterFault(t *testing.T) {
	_, out, err := run(t, ".<.", "")
	if err == nil {
		t.Fatal("expected error")
	}
	// The first output byte was already flushed; nothing after the fault.
	if out != "\x00" {
		t.Errorf("expected exactly one byte before abort, got %q", out)
	}
}

func TestRunDefaultTapeSize(t *testing.T) {
	m := &vm.Machine{In: strings.NewReader(""), Out: &bytes.Buffer{}}
	if err := m.Run(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.Tape().Len(); got != vm.DefaultTapeSize {
		t.Errorf("expected %d cells, got %d", vm.DefaultTapeSize, got)
	}
}

func TestRunUnoptimizedMatchesOptimized(t *testing.T) {
	src := "++++++[>++++++<-]>."

	raw, err := parser.Parse(lexer.Tokenize([]byte(src)))
	if err != nil {
		t.Fatal(err)
	}

	var rawOut, optOut bytes.Buffer
	m1 := &vm.Machine{In: strings.NewReader(""), Out: &rawOut, TapeSize: 64}
	if err := m1.Run(raw); err != nil {
		t.Fatal(err)
	}
	m2 := &vm.Machine{In: strings.NewReader(""), Out: &optOut, TapeSize: 64}
	if err := m2.Run(optimizer.Optimize(raw)); err != nil {
		t.Fatal(err)
	}

	if rawOut.String() != optOut.String() {
		t.Errorf("optimized output %q differs from unoptimized %q", optOut.String(), rawOut.String())
	}
}

func TestRunHelloWorldGolden(t *testing.T) {
	_, out, err := run(t, helloWorld, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Hello World!\n" {
		t.Errorf("expected %q, got %q", "Hello World!\n", out)
	}
}

func TestParseEOFPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    vm.EOFPolicy
		wantErr bool
	}{
		{"", vm.EOFError, false},
		{"error", vm.EOFError, false},
		{"zero", vm.EOFZero, false},
		{"unchanged", vm.EOFUnchanged, false},
		{"sentinel", vm.EOFError, true},
	}

	for _, tt := range tests {
		got, err := vm.ParseEOFPolicy(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("policy %q: expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("policy %q: unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("policy %q: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}
