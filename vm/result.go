package vm

// Result of executing a program against one test input.
type Result struct {
	Status Status           `json:"status" yaml:"status"`
	Steps  int              `json:"steps" yaml:"steps"`
	Output string           `json:"output" yaml:"output"`
	LineNo int              `json:"line,omitempty" yaml:"line,omitempty"`     // Source line of an error or of the unexecuted instruction at limit.
	Error  string           `json:"error,omitempty" yaml:"error,omitempty"`   // Text of Err.
	Issues []string         `json:"issues,omitempty" yaml:"issues,omitempty"` // Mismatched expectations of a warn result.
	Vars   map[string]int64 `json:"vars,omitempty" yaml:"vars,omitempty"`     // Final registers, when the domain has them.

	Err error `json:"-" yaml:"-"`
}

// Fail turns the result into an error result.
func (res *Result) Fail(err error) {
	res.Status = STATUS_ERROR
	res.Err = err
	res.Error = err.Error()
	if line := LineOf(err); line > 0 {
		res.LineNo = line
	}
}

// Warn records mismatched expectations, downgrading an ok result.
// Any other status is kept.
func (res *Result) Warn(issues ...string) {
	if len(issues) == 0 {
		return
	}
	res.Issues = append(res.Issues, issues...)
	if res.Status == STATUS_OK {
		res.Status = STATUS_WARN
	}
}
