package lab

import (
	"log/slog"

	"github.com/ezrec/lovelace/emulator"
	"github.com/ezrec/lovelace/vm"
)

const (
	ISSUE_OUTPUT = "output" // Output differs from the expected output.
	ISSUE_CHECK  = "check"  // Check expression is false, or failed.
)

// Run the lab program against every test.
// A seed in opts overrides the seed of the lab.
func (lab *Lab) Run(opts emulator.Options, logger *slog.Logger) (report *emulator.Report, err error) {
	if opts.Seed == 0 {
		opts.Seed = lab.Seed
	}

	dom, err := emulator.NewDomain(lab.Domain, opts)
	if err != nil {
		return
	}

	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("lab", lab.Filename)

	emu := emulator.NewEmulator(dom)
	emu.Config = lab.Config
	emu.Logger = logger
	emu.Judge = func(index int, test *emulator.Test) {
		lab.judge(logger, index, test)
	}

	report = emu.Run(lab.Program, lab.Inputs())
	return
}

// judge applies the expectations of a lab test to its result.
func (lab *Lab) judge(logger *slog.Logger, index int, test *emulator.Test) {
	if index >= len(lab.Tests) {
		return
	}
	lt := &lab.Tests[index]
	test.Name = lt.Name

	if test.Status == vm.STATUS_ERROR {
		return
	}

	if lt.Expect != nil && !sameOutput(*lt.Expect, test.Output) {
		test.Diff = patch(*lt.Expect, test.Output)
		test.Warn(ISSUE_OUTPUT)
	}

	if len(lt.Check) == 0 {
		return
	}

	ok, err := evalCheck(lt.Check, test)
	switch {
	case err != nil:
		err = &ErrCheck{Test: lt.Name, Err: err}
		logger.Warn("check failed", "test", lt.Name, "error", err)
		test.Warn(ISSUE_CHECK + ": " + err.Error())
	case !ok:
		test.Warn(ISSUE_CHECK)
	}
}
