package lab

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/lovelace/emulator"
)

// checkGlobals exposes a test result to a check expression.
func checkGlobals(test *emulator.Test) (globals starlark.StringDict) {
	vars := starlark.NewDict(len(test.Vars))
	for name, value := range test.Vars {
		_ = vars.SetKey(starlark.String(name), starlark.MakeInt64(value))
	}

	issues := make([]starlark.Value, 0, len(test.Issues))
	for _, issue := range test.Issues {
		issues = append(issues, starlark.String(issue))
	}

	globals = starlark.StringDict{
		"input":  starlark.String(test.Input),
		"output": starlark.String(test.Output),
		"steps":  starlark.MakeInt(test.Steps),
		"status": starlark.String(test.Status.String()),
		"line":   starlark.MakeInt(test.LineNo),
		"issues": starlark.NewList(issues),
		"vars":   vars,
	}

	return
}

// evalCheck evaluates a check expression against a test result.
func evalCheck(expr string, test *emulator.Test) (ok bool, err error) {
	thread := starlark.Thread{Name: test.Name}
	opts := syntax.FileOptions{}

	prog := "rc = (" + expr + "\n)\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "check", prog, checkGlobals(test))
	if err != nil {
		return
	}

	ok = bool(dict["rc"].Truth())
	return
}
