package parser

import (
	"fmt"

	"github.com/agenthands/braintape/pkg/compiler/ast"
	"github.com/agenthands/braintape/pkg/compiler/lexer"
)

// ErrorKind discriminates the two ways a program can be structurally invalid.
type ErrorKind uint8

const (
	// ExcessiveOpeningBrackets: a loop was opened but never closed before
	// the token stream ended.
	ExcessiveOpeningBrackets ErrorKind = iota
	// UnexpectedClosingBracket: a loop was closed with no enclosing open
	// loop.
	UnexpectedClosingBracket
)

// Error reports an invalid program. Pos is the source offset of the
// offending token. Unmatched opening brackets are detected only when the
// stream ends and are always reported at position 0.
type Error struct {
	Kind ErrorKind
	Pos  int
}

func (e *Error) Error() string {
	switch e.Kind {
	case ExcessiveOpeningBrackets:
		return fmt.Sprintf("parser: unmatched '[' at position %d", e.Pos)
	case UnexpectedClosingBracket:
		return fmt.Sprintf("parser: unexpected ']' at position %d", e.Pos)
	default:
		return fmt.Sprintf("parser: invalid program at position %d", e.Pos)
	}
}

// Parse builds the expression tree for a token sequence. Every primitive
// token becomes a count-1 node; loops nest recursively. The first structural
// error encountered during the left-to-right scan is returned and parsing
// stops immediately.
func Parse(tokens []lexer.Token) ([]ast.Node, error) {
	nodes, _, err := parseLevel(tokens, 0, 0)
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

// parseLevel consumes tokens for one nesting level starting at cur and
// returns the nodes it built together with the cursor position just past the
// tokens it consumed. A recursive call owns its matching loop-end token.
func parseLevel(tokens []lexer.Token, cur, level int) ([]ast.Node, int, error) {
	var nodes []ast.Node

	for cur < len(tokens) {
		tok := tokens[cur]
		cur++

		switch tok.Kind {
		case lexer.KindProgramStart:
			// sentinel, nothing to build

		case lexer.KindLoopStart:
			body, next, err := parseLevel(tokens, cur, level+1)
			if err != nil {
				return nil, cur, err
			}
			nodes = append(nodes, &ast.Loop{Body: body})
			cur = next

		case lexer.KindLoopEnd:
			if level == 0 {
				return nil, cur, &Error{Kind: UnexpectedClosingBracket, Pos: tok.Pos}
			}
			return nodes, cur, nil

		case lexer.KindIncValue:
			nodes = append(nodes, &ast.IncValue{Count: 1})
		case lexer.KindDecValue:
			nodes = append(nodes, &ast.DecValue{Count: 1})
		case lexer.KindMoveForward:
			nodes = append(nodes, &ast.MoveForward{Count: 1})
		case lexer.KindMoveBack:
			nodes = append(nodes, &ast.MoveBack{Count: 1})
		case lexer.KindInputValue:
			nodes = append(nodes, &ast.InputValue{})
		case lexer.KindOutputValue:
			nodes = append(nodes, &ast.OutputValue{})

		case lexer.KindProgramEnd:
			if level > 0 {
				return nil, cur, &Error{Kind: ExcessiveOpeningBrackets, Pos: 0}
			}
			return nodes, cur, nil
		}
	}

	return nodes, cur, nil
}
