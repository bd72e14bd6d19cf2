package robot

import (
	"fmt"
	"log"
	"strings"

	"github.com/ezrec/lovelace/vm"
)

// Machine is the runtime state of one execution.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Grid   *Grid        // World; mutated by paint.
	Pos    Point        // Robot position.
	Expect *Expectation // Checks after a normal finish.

	program *Program
	loops   map[int]int64 // Remaining iterations of active counted loops, by pc.
}

// NewMachine places a robot on the scenario's grid.
func NewMachine(prog *Program, scn *Scenario) (m *Machine) {
	m = &Machine{
		Grid:    scn.Grid,
		Pos:     scn.Start,
		Expect:  scn.Expect,
		program: prog,
		loops:   make(map[int]int64),
	}

	return
}

// AtFinish reports whether the robot stands on the finish cell.
func (m *Machine) AtFinish() bool {
	return m.Pos == m.Grid.Finish
}

// Report renders the robot state; the first issue, if any, is appended.
func (m *Machine) Report(issues []string) string {
	cell := m.Grid.Cell(m.Pos)

	reached := f("no")
	if m.AtFinish() {
		reached = f("yes")
	}

	color := cell.Color.Symbol()
	if cell.Color == COLOR_NONE {
		color = f("empty")
	}

	lines := []string{
		f("Position: [%d, %d]", m.Pos.X, m.Pos.Y),
		f("Finish reached: %v", reached),
		f("Cell color: %v", color),
		f("Cell temperature: %d", cell.Temp),
	}
	if len(issues) > 0 {
		lines = append(lines, f("Check: mismatch (%v).", issues[0]))
	}

	return strings.Join(lines, "\n")
}

// Run executes the program, then checks the expectations.
func (m *Machine) Run(cfg vm.Config) (res vm.Result) {
	out := vm.Run(m.program.Len(), cfg, m.Step)

	res.Status = out.Status
	res.Steps = out.Steps

	switch out.Status {
	case vm.STATUS_OK:
		res.Warn(m.Expect.Evaluate(m.Grid, m.Pos)...)
	case vm.STATUS_LIMIT:
		res.LineNo = m.program.LineNo(out.Pc)
		res.Warn(ISSUE_LIMIT)
	case vm.STATUS_ERROR:
		res.Fail(vm.NewError(vm.KIND_RUNTIME, m.program.LineNo(out.Pc), out.Err))
		res.Output = res.Error
		return
	}

	res.Output = m.Report(res.Issues)

	return
}

// Step executes the instruction at pc.
func (m *Machine) Step(pc int) (next int, err error) {
	ins := m.program.Op(pc)
	next = pc + 1

	if m.Verbose {
		log.Printf("robot: %03d: %v at %v", pc, ins, m.Pos)
	}

	switch ins.Op {
	case OP_MOVE:
		to := m.Pos.Add(ins.Dir.Delta())
		if m.Grid.Blocked(to) {
			err = fmt.Errorf("%w: %v %v", ErrMoveBlocked, ins.Dir.Symbol(), to)
			return
		}
		m.Pos = to
	case OP_PAINT:
		m.Grid.Paint(m.Pos, ins.Color)
	case OP_IF, OP_WHILE:
		if !ins.Pred.Eval(m.Grid, m.Pos) {
			next, _ = m.program.JumpTo(pc)
		}
	case OP_LOOP_COUNT:
		remaining, ok := m.loops[pc]
		if !ok {
			remaining = ins.Count
		}
		if remaining > 0 {
			m.loops[pc] = remaining - 1
		} else {
			delete(m.loops, pc)
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

// Execute runs a program once against a JSON scenario.
// A scenario that does not decode is an error result with no steps.
func Execute(prog *Program, input string, cfg vm.Config) vm.Result {
	return execute(prog, input, cfg, false)
}

func execute(prog *Program, input string, cfg vm.Config, verbose bool) (res vm.Result) {
	scn, err := ParseScenario(input)
	if err != nil {
		res.Fail(vm.NewError(vm.KIND_RUNTIME, 0, err))
		res.Output = res.Error
		return
	}

	m := NewMachine(prog, scn)
	m.Verbose = verbose

	return m.Run(cfg)
}
