package lexer

// Scanner performs lexical analysis on Brainfuck source. Every byte outside
// the eight-character instruction set is a comment and produces no token.
type Scanner struct {
	source  []byte
	cursor  int
	started bool
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source []byte) *Scanner {
	return &Scanner{source: source}
}

// Reset re-initializes the scanner with new source for reuse.
func (s *Scanner) Reset(source []byte) {
	s.source = source
	s.cursor = 0
	s.started = false
}

// Next returns the next token. The first call yields the ProgramStart
// sentinel and the sequence always terminates with ProgramEnd, which is
// returned again on every call after the source is exhausted.
func (s *Scanner) Next() Token {
	if !s.started {
		s.started = true
		return Token{Kind: KindProgramStart}
	}

	for s.cursor < len(s.source) {
		pos := s.cursor
		ch := s.source[s.cursor]
		s.cursor++

		switch ch {
		case '[':
			return Token{Kind: KindLoopStart, Pos: pos}
		case ']':
			return Token{Kind: KindLoopEnd, Pos: pos}
		case '>':
			return Token{Kind: KindMoveForward, Pos: pos}
		case '<':
			return Token{Kind: KindMoveBack, Pos: pos}
		case '+':
			return Token{Kind: KindIncValue, Pos: pos}
		case '-':
			return Token{Kind: KindDecValue, Pos: pos}
		case '.':
			return Token{Kind: KindOutputValue, Pos: pos}
		case ',':
			return Token{Kind: KindInputValue, Pos: pos}
		}
	}

	return Token{Kind: KindProgramEnd}
}

// Tokenize scans the whole source at once. The result always begins with
// ProgramStart and ends with ProgramEnd, so its length is at most
// len(source)+2. Tokenizing never fails.
func Tokenize(source []byte) []Token {
	s := NewScanner(source)

	tokens := make([]Token, 0, len(source)+2)
	for {
		tok := s.Next()
		tokens = append(tokens, tok)
		if tok.Kind == KindProgramEnd {
			return tokens
		}
	}
}
