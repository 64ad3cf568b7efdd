package translate

import (
	"fmt"
	"strings"

	"github.com/agenthands/braintape/pkg/compiler/lexer"
)

// Target renders one token as a fixed source fragment of the generated
// program. Token positions are ignored; the translator works on the raw
// token stream, sentinels included, without building a tree.
type Target interface {
	// Name identifies the target on the command line.
	Name() string
	// Render returns the source fragment for the token kind.
	Render(tok lexer.Token) string
}

// ByName returns the target registered under name.
func ByName(name string) (Target, error) {
	switch name {
	case "go":
		return GoTarget{}, nil
	case "c":
		return CTarget{}, nil
	default:
		return nil, fmt.Errorf("translate: unknown target %q (available: go, c)", name)
	}
}

// Translate concatenates the target's fragment for every token in order.
func Translate(t Target, tokens []lexer.Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(t.Render(tok))
	}
	return sb.String()
}

// GoTarget generates a standalone Go program.
type GoTarget struct{}

func (GoTarget) Name() string { return "go" }

func (GoTarget) Render(tok lexer.Token) string {
	switch tok.Kind {
	case lexer.KindProgramStart:
		return `package main

import "os"

var (
	mem [30000]byte
	ptr int
)

func main() {
`
	case lexer.KindMoveForward:
		return "\tptr++\n"
	case lexer.KindMoveBack:
		return "\tptr--\n"
	case lexer.KindIncValue:
		return "\tmem[ptr]++\n"
	case lexer.KindDecValue:
		return "\tmem[ptr]--\n"
	case lexer.KindOutputValue:
		return "\tos.Stdout.Write(mem[ptr : ptr+1])\n"
	case lexer.KindInputValue:
		return "\tif _, err := os.Stdin.Read(mem[ptr : ptr+1]); err != nil {\n\t\tos.Exit(0)\n\t}\n"
	case lexer.KindLoopStart:
		return "\tfor mem[ptr] != 0 {\n"
	case lexer.KindLoopEnd:
		return "\t}\n"
	case lexer.KindProgramEnd:
		return "}\n"
	default:
		return ""
	}
}

// CTarget generates a standalone C program.
type CTarget struct{}

func (CTarget) Name() string { return "c" }

func (CTarget) Render(tok lexer.Token) string {
	switch tok.Kind {
	case lexer.KindProgramStart:
		return `#include <stdio.h>
#include <stdlib.h>

int main() {
	char mem[30000] = {0};
	char *ptr = mem;
`
	case lexer.KindMoveForward:
		return "\t++ptr;\n"
	case lexer.KindMoveBack:
		return "\t--ptr;\n"
	case lexer.KindIncValue:
		return "\t++(*ptr);\n"
	case lexer.KindDecValue:
		return "\t--(*ptr);\n"
	case lexer.KindOutputValue:
		return "\tputchar(*ptr);\n"
	case lexer.KindInputValue:
		return "\t{ int c = getchar(); if (c == EOF) exit(0); *ptr = c; }\n"
	case lexer.KindLoopStart:
		return "\twhile (*ptr) {\n"
	case lexer.KindLoopEnd:
		return "\t}\n"
	case lexer.KindProgramEnd:
		return "\treturn 0;\n}\n"
	default:
		return ""
	}
}
