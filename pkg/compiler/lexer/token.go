package lexer

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindProgramStart Kind = iota
	KindProgramEnd
	KindLoopStart   // [
	KindLoopEnd     // ]
	KindIncValue    // +
	KindDecValue    // -
	KindMoveForward // >
	KindMoveBack    // <
	KindInputValue  // ,
	KindOutputValue // .
)

// String returns a readable name for the token kind.
func (k Kind) String() string {
	switch k {
	case KindProgramStart:
		return "program-start"
	case KindProgramEnd:
		return "program-end"
	case KindLoopStart:
		return "loop-start"
	case KindLoopEnd:
		return "loop-end"
	case KindIncValue:
		return "inc"
	case KindDecValue:
		return "dec"
	case KindMoveForward:
		return "move-forward"
	case KindMoveBack:
		return "move-back"
	case KindInputValue:
		return "input"
	case KindOutputValue:
		return "output"
	default:
		return "unknown"
	}
}

// Token is a single positioned instruction. Pos is the byte offset of the
// instruction character in the source. The ProgramStart and ProgramEnd
// sentinels bound every token sequence and carry no source position.
type Token struct {
	Kind Kind
	Pos  int
}
