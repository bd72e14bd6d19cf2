package vm

// StepFunc executes the instruction at pc and returns the next pc.
type StepFunc func(pc int) (next int, err error)

// Outcome of the program counter loop.
type Outcome struct {
	Status Status // STATUS_OK, STATUS_LIMIT or STATUS_ERROR.
	Steps  int    // Instructions dispatched, including a failing one.
	Pc     int    // Program counter at exit.
	Err    error  // Error returned by the failing step.
}

// Run drives step from pc 0 until pc moves past the last of length
// instructions.
//
// When the step count reaches the hard limit the loop stops before executing
// the instruction at pc, with STATUS_LIMIT. Every YieldEvery steps the loop
// calls Yield and then resumes at the same pc.
func Run(length int, cfg Config, step StepFunc) (out Outcome) {
	cfg = cfg.Normalized()

	pc := 0
	for pc < length {
		if out.Steps >= cfg.HardStepLimit {
			out.Status = STATUS_LIMIT
			out.Pc = pc
			return
		}

		out.Steps++
		next, err := step(pc)
		if err == nil && (next < 0 || next > length) {
			err = ErrJumpInvalid
		}
		if err != nil {
			out.Status = STATUS_ERROR
			out.Pc = pc
			out.Err = err
			return
		}
		pc = next

		if out.Steps%cfg.YieldEvery == 0 {
			cfg.Yield()
		}
	}

	out.Status = STATUS_OK
	out.Pc = pc

	return
}
