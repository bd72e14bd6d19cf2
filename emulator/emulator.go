// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log/slog"

	"github.com/ezrec/lovelace/vm"
)

// Emulator runs a program of one domain against many tests.
type Emulator struct {
	Domain Domain       // Domain of every program.
	Config vm.Config    // Bounds of every test.
	Logger *slog.Logger // Progress log; nil uses slog.Default().

	// Judge, if set, is called on every test before it is counted.
	// It may name the test and downgrade its result.
	Judge func(index int, test *Test)
}

// NewEmulator creates an emulator for a domain with the default bounds.
func NewEmulator(dom Domain) (emu *Emulator) {
	emu = &Emulator{
		Domain: dom,
		Config: vm.DefaultConfig(),
	}

	return
}

func (emu *Emulator) logger() *slog.Logger {
	if emu.Logger == nil {
		return slog.Default()
	}
	return emu.Logger
}

// Compile source once for a later RunCode.
func (emu *Emulator) Compile(source string) (code vm.Code, err error) {
	code, err = emu.Domain.Compile(source)
	if err != nil {
		emu.logger().Debug("compile failed", "domain", emu.Domain.Name(), "error", err)
		return
	}

	emu.logger().Debug("compiled", "domain", emu.Domain.Name(), "instructions", code.Len())
	return
}

// Run compiles source and runs it against every test input.
// A parse error fails every test with the same error.
// With no tests, a single empty input is run.
func (emu *Emulator) Run(source string, tests []string) (report *Report) {
	code, err := emu.Compile(source)
	if err != nil {
		report = emu.fail(err, tests)
		return
	}

	report = emu.RunCode(code, tests)
	return
}

// RunCode runs compiled code against every test input, sequentially.
func (emu *Emulator) RunCode(code vm.Code, tests []string) (report *Report) {
	log := emu.logger()
	report = &Report{Domain: emu.Domain.Name()}

	for n, input := range inputsOf(tests) {
		test := Test{Input: input}
		test.Result = emu.Domain.Execute(code, input, emu.Config)
		if emu.Judge != nil {
			emu.Judge(n, &test)
		}
		log.Debug("test", "index", n, "name", test.Name, "status", test.Status, "steps", test.Steps)
		report.AddTest(test)
	}

	log.Info("run", "domain", report.Domain,
		"ok", report.Ok, "warn", report.Warn, "error", report.Error,
		"steps", report.TotalSteps)

	return
}

func (emu *Emulator) fail(err error, tests []string) (report *Report) {
	report = &Report{Domain: emu.Domain.Name(), Err: err}

	for _, input := range inputsOf(tests) {
		var res vm.Result
		res.Fail(err)
		res.Output = res.Error
		report.Add(input, res)
	}

	emu.logger().Info("run", "domain", report.Domain, "error", err)

	return
}

func inputsOf(tests []string) []string {
	if len(tests) == 0 {
		return []string{""}
	}
	return tests
}
