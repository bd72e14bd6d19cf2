package emulator

import (
	"github.com/ezrec/lovelace/vm"
)

// Test is the result of one test input.
type Test struct {
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	Input     string `json:"input" yaml:"input"`
	vm.Result `yaml:",inline"`
	Diff      string `json:"diff,omitempty" yaml:"diff,omitempty"` // Patch from the expected to the actual output.
}

// Report is the result of one program against all of its tests.
type Report struct {
	Domain     string `json:"domain" yaml:"domain"`
	Ok         int    `json:"ok" yaml:"ok"`
	Warn       int    `json:"warn" yaml:"warn"` // Warn and limit results.
	Error      int    `json:"error" yaml:"error"`
	TotalSteps int    `json:"total_steps" yaml:"total_steps"` // Steps of every result that is not an error.
	Tests      []Test `json:"tests" yaml:"tests"`

	Err error `json:"-" yaml:"-"` // Parse error shared by every test.
}

// Add a test result to the report.
func (report *Report) Add(input string, res vm.Result) {
	report.AddTest(Test{Input: input, Result: res})
}

// AddTest adds a test to the report.
func (report *Report) AddTest(test Test) {
	res := test.Result

	switch res.Status {
	case vm.STATUS_OK:
		report.Ok++
	case vm.STATUS_WARN, vm.STATUS_LIMIT:
		report.Warn++
	default:
		report.Error++
	}

	if res.Status != vm.STATUS_ERROR {
		report.TotalSteps += res.Steps
	}

	report.Tests = append(report.Tests, test)
}

// Status summarizes the report: error if any test failed, else warn if any
// test warned, else ok.
func (report *Report) Status() vm.Status {
	switch {
	case report.Error > 0:
		return vm.STATUS_ERROR
	case report.Warn > 0:
		return vm.STATUS_WARN
	}
	return vm.STATUS_OK
}

// Summary is the translated one line summary of the report.
func (report *Report) Summary() string {
	switch report.Status() {
	case vm.STATUS_ERROR:
		return f("Done: ok %d, warnings %d, errors %d.", report.Ok, report.Warn, report.Error)
	case vm.STATUS_WARN:
		return f("Done: ok %d, warnings %d.", report.Ok, report.Warn)
	}
	return f("Done: all %d tests passed.", report.Ok)
}
