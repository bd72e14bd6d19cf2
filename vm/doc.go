// Package vm implements the machinery shared by the pictographic interpreters.
//
// Source is assembled in a single pass. Block openers (conditionals and loops)
// are pushed on a Stack as they are emitted; the universal block closer pops
// the Stack and back-patches the opener's jump target to the instruction just
// past the closer. A Builder owns the jump table until Build, so no jump can be
// read before every block has been matched.
//
// Execution is a program counter loop (Run) with a hard step budget and a
// cooperative yield every few steps. The loop is domain agnostic: each
// interpreter supplies a StepFunc that executes one instruction and returns
// the next program counter.
package vm
