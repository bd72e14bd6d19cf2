package robot

import (
	"errors"
	"log"
	"strings"

	"github.com/ezrec/lovelace/symbol"
	"github.com/ezrec/lovelace/vm"
)

// Assembler is a single pass parser of robot source text.
type Assembler struct {
	Verbose bool // If set, verbosely logs the parsed instructions.

	builder vm.Builder[Instruction]
}

// Parse parses source text with a default Assembler.
func Parse(source string) (prog *Program, err error) {
	asm := &Assembler{}
	return asm.Parse(source)
}

// Parse parses source text into a Program.
// The first malformed line fails the parse with a *vm.ErrSyntax.
func (asm *Assembler) Parse(source string) (prog *Program, err error) {
	lines := symbol.Lines(source)

	var line string
	var lineno int

	defer func() {
		if err == nil {
			return
		}
		var syn *vm.ErrSyntax
		if errors.As(err, &syn) {
			if len(syn.Line) == 0 && syn.LineNo > 0 && syn.LineNo <= len(lines) {
				syn.Line = strings.TrimSpace(lines[syn.LineNo-1])
			}
			return
		}
		err = &vm.ErrSyntax{LineNo: lineno, Line: line, Err: err}
	}()

	asm.builder.Reset()

	for n, text := range lines {
		lineno = n + 1
		line = strings.TrimSpace(text)

		symbols := symbol.Normalize(text)
		if len(symbols) == 0 {
			continue
		}

		var ins Instruction
		ins, err = asm.parseSymbols(symbols, lineno)
		if err != nil {
			return
		}

		if asm.Verbose {
			log.Printf("robot: %v: %v %v", lineno, ins.Op, ins)
		}
	}

	prog, err = asm.builder.Build()

	return
}

func (asm *Assembler) parseSymbols(symbols []string, lineno int) (ins Instruction, err error) {
	op, ok := opcodeOf(symbols[0])
	if !ok {
		err = vm.ErrUnknown(symbols[0])
		return
	}

	args := symbols[1:]
	ins = Instruction{LineNo: lineno, Op: op}

	switch op {
	case OP_MOVE:
		if len(args) != 1 {
			err = &vm.ErrShape{Opcode: op.Symbol(), Shape: op.Shape()}
			return
		}
		ins.Dir, err = parseDirection(args[0])
	case OP_PAINT:
		if len(args) != 1 {
			err = &vm.ErrShape{Opcode: op.Symbol(), Shape: op.Shape()}
			return
		}
		ins.Color, err = parseColor(args[0])
	case OP_IF, OP_WHILE:
		ins.Pred, err = parsePredicate(args)
	case OP_LOOP_COUNT:
		ins.Count, err = parseKeycaps(args)
	case OP_END:
		if len(args) != 0 {
			err = &vm.ErrShape{Opcode: op.Symbol(), Shape: op.Shape()}
			return
		}
		_, err = asm.builder.Close(func(opener int, _ Instruction) Instruction {
			ins.Opener = opener
			return ins
		})
		return
	}
	if err != nil {
		return
	}

	if op.Opens() {
		asm.builder.Open(ins)
	} else {
		asm.builder.Emit(ins)
	}

	return
}
