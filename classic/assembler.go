package classic

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/ezrec/lovelace/symbol"
	"github.com/ezrec/lovelace/vm"
)

// Assembler is a single pass parser of classic source text.
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
			log.Printf("classic: %v: %v %v", lineno, ins.Op, ins)
		}
	}

	prog, err = asm.builder.Build()

	return
}

// parseSymbols appends the instruction of one line.
func (asm *Assembler) parseSymbols(symbols []string, lineno int) (ins Instruction, err error) {
	op, ok := opcodeOf(symbols[0])
	if !ok {
		err = vm.ErrUnknown(symbols[0])
		return
	}

	args := symbols[1:]
	ins = Instruction{LineNo: lineno, Op: op}

	switch op {
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
	case OP_SET:
		if len(args) < 2 {
			err = &vm.ErrShape{Opcode: op.Symbol(), Shape: op.Shape()}
			return
		}
	default:
		if len(args) != op.Registers() {
			err = &vm.ErrShape{Opcode: op.Symbol(), Shape: op.Shape()}
			return
		}
	}

	for n := range op.Registers() {
		index, ok := Registers.Index(args[n])
		if !ok {
			err = &vm.ErrOperand{Symbol: args[n], Class: f("register")}
			return
		}
		ins.Reg[n] = index
	}

	if op == OP_SET {
		ins.Value, err = parseLiteral(args[1:])
		if err != nil {
			return
		}
	}

	if op.Opens() {
		asm.builder.Open(ins)
	} else {
		asm.builder.Emit(ins)
	}

	return
}

// parseLiteral decodes a run of digit symbols.
func parseLiteral(digits []string) (value int64, err error) {
	for _, sym := range digits {
		if !Digits.Has(sym) {
			err = &vm.ErrOperand{Symbol: sym, Class: f("digit")}
			return
		}
	}

	text, _ := Digits.Decode(digits)
	value, err = strconv.ParseInt(text, 10, 64)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrNumber, text)
		value = 0
	}

	return
}
