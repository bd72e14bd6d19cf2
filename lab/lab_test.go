package lab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"

	"github.com/ezrec/lovelace/emulator"
	"github.com/ezrec/lovelace/vm"
)

const squaresLab = `
domain  = "classic"
program = <<EOT
⭐🐶
✖🐶🐶
😀🐶
EOT

limits {
  steps = 100
  yield = 10
}

test "three" {
  input  = "3"
  expect = "9"
  check  = "vars['🐶'] == 9 and status == 'ok'"
}

test "wrong" {
  input  = "4"
  expect = "15"
}

test "checked" {
  input = "5"
  check = "steps > 3"
}

test "broken" {
  input = "6"
  check = "nope +"
}

test "empty" {
  expect = "0"
}
`

func TestParse(t *testing.T) {
	assert := assert.New(t)

	lab, err := Parse([]byte(squaresLab), "squares.hcl")
	assert.NoError(err)
	if err != nil {
		return
	}

	assert.Equal("squares.hcl", lab.Filename)
	assert.Equal("classic", lab.Domain)
	assert.Equal("⭐🐶\n✖🐶🐶\n😀🐶\n", lab.Program)
	assert.Equal(100, lab.Config.HardStepLimit)
	assert.Equal(10, lab.Config.YieldEvery)
	assert.NotNil(lab.Config.Yield)
	assert.Equal(uint64(0), lab.Seed)

	assert.Len(lab.Tests, 5)
	assert.Equal([]string{"3", "4", "5", "6", ""}, lab.Inputs())
	assert.Equal("three", lab.Tests[0].Name)
	assert.Equal("9", *lab.Tests[0].Expect)
	assert.Nil(lab.Tests[2].Expect)
	assert.Equal("steps > 3", lab.Tests[2].Check)
}

func TestParse_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		name string
		src  string
	}{
		{"syntax", `domain = `},
		{"missing program", `domain = "classic"`},
		{"unknown domain", "domain = \"turtle\"\nprogram = \"\""},
		{"unknown attribute", "domain = \"classic\"\nprogram = \"\"\ncolor = 1"},
		{"bad limit", "domain = \"classic\"\nprogram = \"\"\nlimits {\n steps = \"many\"\n}"},
		{"missing file", "domain = \"classic\"\nprogram = file(\"nowhere.txt\")"},
	}

	for _, entry := range table {
		lab, err := Parse([]byte(entry.src), "bad.hcl")
		assert.Nil(lab, entry.name)
		assert.ErrorIs(err, ErrLabInvalid, entry.name)
	}

	_, err := Parse([]byte("domain = \"turtle\"\nprogram = \"\""), "bad.hcl")
	assert.ErrorIs(err, emulator.ErrDomainUnknown)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	program := "🔁🛤️🚠\n🚶🚠\n😐\n"
	assert.NoError(os.WriteFile(filepath.Join(dir, "east.txt"), []byte(program), 0o644))

	src := `
domain  = "robot"
program = file("east.txt")

test "corridor" {
  input  = jsonencode({ size = [3, 1], expect = { finishReached = true } })
  expect = <<EOT
Position: [2, 0]
Finish reached: yes
Cell color: empty
Cell temperature: 0
EOT
}

test "painted" {
  input = jsonencode({ size = [2, 1], cells = [{ x = 1, y = 0, color = "red" }] })
  check = "'${symbol["robot"]["red"]}' in output"
}
`
	path := filepath.Join(dir, "east.hcl")
	assert.NoError(os.WriteFile(path, []byte(src), 0o644))

	lab, err := Load(path)
	assert.NoError(err)
	if err != nil {
		return
	}
	assert.Equal(program, lab.Program)
	assert.Equal(vm.DEFAULT_HARD_STEP_LIMIT, lab.Config.HardStepLimit)

	report, err := lab.Run(emulator.Options{}, nil)
	assert.NoError(err)
	assert.Equal("robot", report.Domain)
	assert.Equal(2, report.Ok, report.Tests)
	assert.Equal(0, report.Warn)
	assert.Equal("corridor", report.Tests[0].Name)
	assert.Empty(report.Tests[0].Diff)

	_, err = Load(filepath.Join(dir, "missing.hcl"))
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestLab_Run(t *testing.T) {
	assert := assert.New(t)

	lab, err := Parse([]byte(squaresLab), "squares.hcl")
	assert.NoError(err)
	if err != nil {
		return
	}

	report, err := lab.Run(emulator.Options{}, nil)
	assert.NoError(err)

	assert.Equal(1, report.Ok)
	assert.Equal(3, report.Warn)
	assert.Equal(1, report.Error)

	three := report.Tests[0]
	assert.Equal(vm.STATUS_OK, three.Status)
	assert.Empty(three.Issues)

	wrong := report.Tests[1]
	assert.Equal(vm.STATUS_WARN, wrong.Status)
	assert.Equal([]string{ISSUE_OUTPUT}, wrong.Issues)
	assert.Contains(wrong.Diff, "[-5-]")
	assert.Contains(wrong.Diff, "{+6+}")

	checked := report.Tests[2]
	assert.Equal(vm.STATUS_WARN, checked.Status)
	assert.Equal([]string{ISSUE_CHECK}, checked.Issues)

	broken := report.Tests[3]
	assert.Equal(vm.STATUS_WARN, broken.Status)
	if assert.Len(broken.Issues, 1) {
		assert.Contains(broken.Issues[0], ISSUE_CHECK+": ")
		assert.Contains(broken.Issues[0], "broken")
	}

	empty := report.Tests[4]
	assert.Equal(vm.STATUS_ERROR, empty.Status)
	kind, ok := vm.KindOf(empty.Err)
	assert.True(ok)
	assert.Equal(vm.KIND_RUNTIME, kind)
}

func TestLab_Seed(t *testing.T) {
	assert := assert.New(t)

	src := `
domain  = "classic"
seed    = 7
program = "🌞🐭📌🆚🆚🆚\n🎲🐶🐱🐭\n😀🐶\n🎲🐶🐱🐭\n😀🐶"
test "a" {}
test "b" {}
`
	lab, err := Parse([]byte(src), "dice.hcl")
	assert.NoError(err)
	if err != nil {
		return
	}
	assert.Equal(uint64(7), lab.Seed)

	first, err := lab.Run(emulator.Options{}, nil)
	assert.NoError(err)
	second, err := lab.Run(emulator.Options{}, nil)
	assert.NoError(err)

	assert.Equal(2, first.Ok)
	assert.NotEmpty(first.Tests[0].Output)
	assert.Equal(first.Tests[0].Output, second.Tests[0].Output)
	assert.Equal(first.Tests[1].Output, second.Tests[1].Output)
}

func TestSymbolTable(t *testing.T) {
	assert := assert.New(t)

	table := symbolTable()
	assert.Equal("🌹", table.GetAttr("robot").Index(cty.StringVal("red")).AsString())
	assert.Equal("🌞", table.GetAttr("classic").Index(cty.StringVal("set")).AsString())
}
