package classic

import (
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/ezrec/lovelace/io"
	"github.com/ezrec/lovelace/vm"
)

// Machine is the runtime state of one execution.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Register [REGISTER_COUNT]int64 // Register bank.
	Tape     *io.Tape              // Numeric input and printed output.
	Rand     *rand.Rand            // Random source; nil uses the global source.

	program *Program
	output  strings.Builder
	loops   map[int]int64 // Remaining iterations of active counted loops, by pc.
}

// NewMachine creates a machine with zeroed registers, reading input.
func NewMachine(prog *Program, input string) (m *Machine) {
	m = &Machine{
		program: prog,
		loops:   make(map[int]int64),
	}
	m.Tape = io.NewTape(input, &m.output)

	return
}

// Output returns everything printed so far.
func (m *Machine) Output() string {
	return m.output.String()
}

// Vars returns the registers by symbol.
func (m *Machine) Vars() (vars map[string]int64) {
	vars = make(map[string]int64, REGISTER_COUNT)
	for n, value := range m.Register {
		vars[Registers.Symbol(n)] = value
	}
	return
}

// Run executes the program to completion, error or the step limit.
func (m *Machine) Run(cfg vm.Config) (res vm.Result) {
	out := vm.Run(m.program.Len(), cfg, m.Step)

	res.Status = out.Status
	res.Steps = out.Steps
	res.Output = m.Output()

	switch out.Status {
	case vm.STATUS_OK:
		res.Vars = m.Vars()
	case vm.STATUS_LIMIT:
		res.LineNo = m.program.LineNo(out.Pc)
	case vm.STATUS_ERROR:
		res.Fail(vm.NewError(vm.KIND_RUNTIME, m.program.LineNo(out.Pc), out.Err))
	}

	return
}

// Step executes the instruction at pc.
func (m *Machine) Step(pc int) (next int, err error) {
	ins := m.program.Op(pc)
	reg := &m.Register
	next = pc + 1

	if m.Verbose {
		log.Printf("classic: %03d: %v", pc, ins)
	}

	switch ins.Op {
	case OP_SET:
		reg[ins.Reg[0]] = ins.Value
	case OP_READ:
		var value int64
		value, err = m.Tape.ReadNumber()
		if err != nil {
			return
		}
		reg[ins.Reg[0]] = value
	case OP_RANDOM:
		low, high := reg[ins.Reg[1]], reg[ins.Reg[2]]
		if low > high {
			err = fmt.Errorf("%w: %d > %d", ErrRandomRange, low, high)
			return
		}
		reg[ins.Reg[0]] = m.random(low, high)
	case OP_PRINT:
		err = m.Tape.SendNumber(reg[ins.Reg[0]])
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_MOD:
		var value int64
		value, err = arithmetic(ins.Op, reg[ins.Reg[0]], reg[ins.Reg[1]])
		if err != nil {
			err = fmt.Errorf("%v %w", ins.Op.Symbol(), err)
			return
		}
		reg[ins.Reg[0]] = value
	case OP_IF_EQ:
		if reg[ins.Reg[0]] != reg[ins.Reg[1]] {
			next, _ = m.program.JumpTo(pc)
		}
	case OP_LOOP_COUNT:
		remaining, ok := m.loops[pc]
		if !ok {
			remaining = reg[ins.Reg[0]]
		}
		if remaining > 0 {
			m.loops[pc] = remaining - 1
		} else {
			delete(m.loops, pc)
			next, _ = m.program.JumpTo(pc)
		}
	case OP_LOOP_NE:
		if reg[ins.Reg[0]] == reg[ins.Reg[1]] {
			next, _ = m.program.JumpTo(pc)
		}
	case OP_END:
		if m.program.Op(ins.Opener).Op.Loops() {
			next = ins.Opener
		}
	default:
		err = fmt.Errorf("%w: %v", vm.ErrOpcodeUnknown, ins.Op)
	}

	return
}

// random draws uniformly from [low, high].
func (m *Machine) random(low, high int64) int64 {
	span := uint64(high) - uint64(low)

	var offset uint64
	switch {
	case span == math.MaxUint64 && m.Rand != nil:
		offset = m.Rand.Uint64()
	case span == math.MaxUint64:
		offset = rand.Uint64()
	case m.Rand != nil:
		offset = m.Rand.Uint64N(span + 1)
	default:
		offset = rand.Uint64N(span + 1)
	}

	return low + int64(offset)
}

// arithmetic applies a binary op, failing where the exact result does not
// fit a register.
func arithmetic(op Op, a, b int64) (value int64, err error) {
	switch op {
	case OP_ADD:
		value = a + b
		if (b > 0 && value < a) || (b < 0 && value > a) {
			err = ErrOverflow
		}
	case OP_SUB:
		value = a - b
		if (b > 0 && value > a) || (b < 0 && value < a) {
			err = ErrOverflow
		}
	case OP_MUL:
		value = a * b
		if a != 0 && (value/a != b || (a == -1 && b == math.MinInt64)) {
			err = ErrOverflow
		}
	case OP_DIV:
		switch {
		case b == 0:
			err = ErrDivideByZero
		case a == math.MinInt64 && b == -1:
			err = ErrOverflow
		default:
			value = a / b
		}
	case OP_MOD:
		if b == 0 {
			err = ErrDivideByZero
		} else {
			value = a % b
		}
	}

	if err != nil {
		value = 0
	}

	return
}

// Execute runs a program once against a numeric input.
func Execute(prog *Program, input string, cfg vm.Config) vm.Result {
	return NewMachine(prog, input).Run(cfg)
}
