package lab

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lovelace/emulator"
	"github.com/ezrec/lovelace/vm"
)

func TestEvalCheck(t *testing.T) {
	assert := assert.New(t)

	test := &emulator.Test{
		Name:  "sample",
		Input: "3",
		Result: vm.Result{
			Status: vm.STATUS_WARN,
			Steps:  12,
			Output: "Position: [1, 2]",
			LineNo: 4,
			Issues: []string{"position"},
			Vars:   map[string]int64{"🐶": -5},
		},
	}

	table := [...]struct {
		expr string
		ok   bool
	}{
		{"True", true},
		{"steps == 12", true},
		{"status == 'warn'", true},
		{"input == '3' and line == 4", true},
		{"'position' in issues", true},
		{"vars['🐶'] < 0", true},
		{"'[1, 2]' in output", true},
		{"len(issues)", true},
		{"steps > 100", false},
		{"vars.get('🐱', 0)", false},
		{"[]", false},
	}

	for _, entry := range table {
		ok, err := evalCheck(entry.expr, test)
		assert.NoError(err, entry.expr)
		assert.Equal(entry.ok, ok, entry.expr)
	}

	for _, expr := range []string{"1 +", "nope", "steps +", "vars['🐱']"} {
		_, err := evalCheck(expr, test)
		assert.Error(err, expr)
	}
}
