package classic

import (
	"strings"

	"github.com/ezrec/lovelace/vm"
)

// Instruction is one parsed command.
type Instruction struct {
	LineNo int    // Source line.
	Op     Op     // Operation.
	Reg    [3]int // Register operands, in source order.
	Value  int64  // Literal of OP_SET.
	Opener int    // Index of the matching opener, for OP_END.
}

// Program is a parsed classic program.
type Program = vm.Program[Instruction]

// Line implements vm.Instruction.
func (ins Instruction) Line() int {
	return ins.LineNo
}

// String renders the instruction in canonical symbols.
func (ins Instruction) String() string {
	var sb strings.Builder

	sb.WriteString(ins.Op.Symbol())
	for n := range ins.Op.Registers() {
		sb.WriteString(Registers.Display(ins.Reg[n]))
	}
	if ins.Op == OP_SET {
		sb.WriteString(Digits.Format(int(ins.Value)))
	}

	return sb.String()
}
