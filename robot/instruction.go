package robot

import (
	"fmt"
	"strconv"

	"github.com/ezrec/lovelace/vm"
)

// Instruction is one parsed command.
type Instruction struct {
	LineNo int       // Source line.
	Op     Op        // Operation.
	Dir    Direction // OP_MOVE
	Color  Color     // OP_PAINT
	Pred   Predicate // OP_IF, OP_WHILE
	Count  int64     // OP_LOOP_COUNT
	Opener int       // Index of the matching opener, for OP_END.
}

// Program is a parsed robot program.
type Program = vm.Program[Instruction]

// Line implements vm.Instruction.
func (ins Instruction) Line() int {
	return ins.LineNo
}

// String renders the instruction in canonical symbols.
func (ins Instruction) String() string {
	text := ins.Op.Symbol()
	switch ins.Op {
	case OP_MOVE:
		text += ins.Dir.Symbol()
	case OP_PAINT:
		text += ins.Color.Symbol()
	case OP_IF, OP_WHILE:
		text += ins.Pred.String()
	case OP_LOOP_COUNT:
		text += formatKeycaps(ins.Count)
	}
	return text
}

// parseKeycaps decodes a run of keycap digits.
func parseKeycaps(symbols []string) (value int64, err error) {
	if len(symbols) == 0 {
		err = &vm.ErrOperand{Class: f("keycap digit")}
		return
	}
	for _, sym := range symbols {
		if !Keycaps.Has(sym) {
			err = &vm.ErrOperand{Symbol: sym, Class: f("keycap digit")}
			return
		}
	}

	text, _ := Keycaps.Decode(symbols)
	value, err = strconv.ParseInt(text, 10, 64)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrNumber, text)
		value = 0
	}

	return
}

func formatKeycaps(value int64) string {
	return Keycaps.Format(int(value))
}
