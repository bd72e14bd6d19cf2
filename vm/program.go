package vm

import (
	"iter"
	"slices"
)

// Instruction is implemented by the instruction types of each interpreter.
type Instruction interface {
	// Line returns the 1-indexed source line of the instruction.
	Line() int
}

// Program is an immutable, assembled instruction list.
// It is safe to share between sequential executions.
type Program[T Instruction] struct {
	ops  []T
	jump []int // Resolved jump target per instruction, or NO_JUMP.
}

// NO_JUMP marks an instruction that does not open a block.
const NO_JUMP = -1

// Len returns the number of instructions.
func (prog *Program[T]) Len() int {
	if prog == nil {
		return 0
	}
	return len(prog.ops)
}

// Op returns the instruction at pc.
func (prog *Program[T]) Op(pc int) T {
	return prog.ops[pc]
}

// JumpTo returns the resolved jump target of the block opener at pc:
// the index just past its matching closer.
func (prog *Program[T]) JumpTo(pc int) (target int, ok bool) {
	if pc < 0 || pc >= len(prog.jump) {
		return NO_JUMP, false
	}
	target = prog.jump[pc]
	ok = target != NO_JUMP
	return
}

// LineNo returns the source line of the instruction at pc, or 0.
func (prog *Program[T]) LineNo(pc int) int {
	if pc < 0 || pc >= prog.Len() {
		return 0
	}
	return prog.ops[pc].Line()
}

// All iterates over the instructions in order.
func (prog *Program[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if prog == nil {
			return
		}
		for pc, op := range prog.ops {
			if !yield(pc, op) {
				return
			}
		}
	}
}

// Instructions returns a copy of the instruction list.
func (prog *Program[T]) Instructions() []T {
	if prog == nil {
		return nil
	}
	return slices.Clone(prog.ops)
}

// Jumps returns a copy of the jump table.
func (prog *Program[T]) Jumps() []int {
	if prog == nil {
		return nil
	}
	return slices.Clone(prog.jump)
}
