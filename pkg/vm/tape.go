package vm

import "fmt"

// DefaultTapeSize is the cell count of a freshly allocated tape.
const DefaultTapeSize = 30000

// OutOfRangeError reports a pointer that moved past either end of the tape.
type OutOfRangeError struct {
	Ptr int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("vm: tape pointer out of range: %d", e.Ptr)
}

// Tape is the linear cell memory a program executes against: a fixed-length
// sequence of 32-bit unsigned cells plus a single movable pointer. A tape is
// created once per execution with all cells zeroed and the pointer at index
// 0, and is mutated exclusively by that execution's Machine.
type Tape struct {
	cells []uint32
	ptr   int
}

// NewTape allocates a zeroed tape of the given size with the pointer at 0.
func NewTape(size int) *Tape {
	return &Tape{cells: make([]uint32, size)}
}

// Forward moves the pointer n cells to the right.
func (t *Tape) Forward(n int) error {
	t.ptr += n
	if t.ptr >= len(t.cells) {
		return &OutOfRangeError{Ptr: t.ptr}
	}
	return nil
}

// Back moves the pointer n cells to the left.
func (t *Tape) Back(n int) error {
	t.ptr -= n
	if t.ptr < 0 {
		return &OutOfRangeError{Ptr: t.ptr}
	}
	return nil
}

// Inc adds n to the current cell, wrapping modulo 2^32.
func (t *Tape) Inc(n uint32) {
	t.cells[t.ptr] += n
}

// Dec subtracts n from the current cell, wrapping modulo 2^32.
func (t *Tape) Dec(n uint32) {
	t.cells[t.ptr] -= n
}

// Read returns the value of the current cell.
func (t *Tape) Read() uint32 {
	return t.cells[t.ptr]
}

// Write sets the current cell to v.
func (t *Tape) Write(v uint32) {
	t.cells[t.ptr] = v
}

// Ptr returns the current pointer index.
func (t *Tape) Ptr() int {
	return t.ptr
}

// Len returns the tape size in cells.
func (t *Tape) Len() int {
	return len(t.cells)
}

// Cells exposes the backing cell slice for inspection after a run.
func (t *Tape) Cells() []uint32 {
	return t.cells
}

// Window copies up to width cells around the pointer and returns them with
// the tape index of the first copied cell.
func (t *Tape) Window(width int) ([]uint32, int) {
	if width > len(t.cells) {
		width = len(t.cells)
	}
	start := t.ptr - width/2
	if start < 0 {
		start = 0
	}
	if start+width > len(t.cells) {
		start = len(t.cells) - width
	}
	window := make([]uint32, width)
	copy(window, t.cells[start:start+width])
	return window, start
}
