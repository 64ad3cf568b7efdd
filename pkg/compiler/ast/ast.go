package ast

// Node represents any node in the expression tree. A node either exclusively
// owns a body of child nodes (Loop) or carries no sub-structure.
type Node interface {
	node()
}

// IncValue adds Count to the current cell.
type IncValue struct {
	Count uint32
}

// DecValue subtracts Count from the current cell.
type DecValue struct {
	Count uint32
}

// MoveForward moves the pointer Count cells to the right.
type MoveForward struct {
	Count int
}

// MoveBack moves the pointer Count cells to the left.
type MoveBack struct {
	Count int
}

// InputValue reads one byte from the input stream into the current cell.
type InputValue struct{}

// OutputValue writes the current cell to the output stream as one byte.
type OutputValue struct{}

// Loop executes Body repeatedly while the current cell is nonzero.
type Loop struct {
	Body []Node
}

func (*IncValue) node()    {}
func (*DecValue) node()    {}
func (*MoveForward) node() {}
func (*MoveBack) node()    {}
func (*InputValue) node()  {}
func (*OutputValue) node() {}
func (*Loop) node()        {}
