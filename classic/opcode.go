package classic

import (
	"strings"
)

// Op is an instruction operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_SET        = Op(0)  // set
	OP_READ       = Op(1)  // read
	OP_RANDOM     = Op(2)  // random
	OP_PRINT      = Op(3)  // print
	OP_ADD        = Op(4)  // add
	OP_SUB        = Op(5)  // sub
	OP_MUL        = Op(6)  // mul
	OP_DIV        = Op(7)  // div
	OP_MOD        = Op(8)  // mod
	OP_IF_EQ      = Op(9)  // if-eq
	OP_LOOP_COUNT = Op(10) // loop-count
	OP_LOOP_NE    = Op(11) // loop-ne
	OP_END        = Op(12) // end
)

// Symbol returns the opcode symbol.
func (op Op) Symbol() string {
	return Opcodes.Display(int(op))
}

// Opens reports whether the op opens a block.
func (op Op) Opens() bool {
	switch op {
	case OP_IF_EQ, OP_LOOP_COUNT, OP_LOOP_NE:
		return true
	}
	return false
}

// Loops reports whether the end of the op's block jumps back to it.
func (op Op) Loops() bool {
	return op == OP_LOOP_COUNT || op == OP_LOOP_NE
}

// Registers returns the number of register operands.
func (op Op) Registers() int {
	switch op {
	case OP_SET, OP_READ, OP_PRINT, OP_LOOP_COUNT:
		return 1
	case OP_RANDOM:
		return 3
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_MOD, OP_IF_EQ, OP_LOOP_NE:
		return 2
	}
	return 0
}

// Shape describes the operand form of the op, for messages.
func (op Op) Shape() string {
	words := []string{op.Symbol()}
	for range op.Registers() {
		words = append(words, f("<register>"))
	}
	if op == OP_SET {
		words = append(words, f("<digit>..."))
	}
	return strings.Join(words, " ")
}

// opcodeOf decodes a leading symbol.
func opcodeOf(sym string) (op Op, ok bool) {
	index, ok := Opcodes.Index(sym)
	op = Op(index)
	return
}
