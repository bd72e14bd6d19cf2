package vm

import (
	"slices"
)

// Builder assembles a Program in a single pass.
//
// Openers get an unresolved jump that is filled exactly once, when the
// matching closer is emitted. Jumps can only be read from the Program that
// Build returns, after every opener has been matched.
type Builder[T Instruction] struct {
	ops    []T
	jump   []int
	blocks Stack
}

// Len returns the number of instructions emitted so far.
func (b *Builder[T]) Len() int {
	return len(b.ops)
}

// Emit appends a plain instruction.
func (b *Builder[T]) Emit(op T) (index int) {
	index = len(b.ops)
	b.ops = append(b.ops, op)
	b.jump = append(b.jump, NO_JUMP)
	return
}

// Open appends a block opener and pushes it on the block stack.
func (b *Builder[T]) Open(op T) (index int) {
	index = b.Emit(op)
	b.blocks.Push(Block{Index: index, LineNo: op.Line()})
	return
}

// Close matches the innermost pending opener. The closing instruction is
// made by end from the opener's index and instruction, then appended; the
// opener's jump target becomes the index after it.
func (b *Builder[T]) Close(end func(opener int, op T) T) (index int, err error) {
	block, ok := b.blocks.Pop()
	if !ok {
		err = ErrBlockStray
		return
	}

	index = b.Emit(end(block.Index, b.ops[block.Index]))
	b.jump[block.Index] = index + 1

	return
}

// Pending returns the outermost opener still waiting for its closer.
func (b *Builder[T]) Pending() (block Block, ok bool) {
	return b.blocks.Bottom()
}

// Build finishes assembly. It fails with an *ErrSyntax at the line of the
// outermost unclosed opener.
func (b *Builder[T]) Build() (prog *Program[T], err error) {
	if block, ok := b.Pending(); ok {
		err = &ErrSyntax{LineNo: block.LineNo, Err: ErrBlockOpen}
		return
	}

	prog = &Program[T]{
		ops:  slices.Clone(b.ops),
		jump: slices.Clone(b.jump),
	}

	return
}

// Reset discards everything emitted so far.
func (b *Builder[T]) Reset() {
	b.ops = b.ops[:0]
	b.jump = b.jump[:0]
	b.blocks.Reset()
}
