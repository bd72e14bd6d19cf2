package classic

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lovelace/vm"
)

func source(lines ...string) string {
	return strings.Join(lines, "\n")
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse(source(
		"🌞🐶🤟",
		"",
		"  🔂 🐶  ",
		"😀🐶",
		"😐",
	))
	assert.NoError(err)

	expected := []Instruction{
		{LineNo: 1, Op: OP_SET, Value: 3},
		{LineNo: 3, Op: OP_LOOP_COUNT},
		{LineNo: 4, Op: OP_PRINT},
		{LineNo: 5, Op: OP_END, Opener: 1},
	}
	if diff := cmp.Diff(expected, prog.Instructions()); diff != "" {
		t.Errorf("instructions (-want +got):\n%s", diff)
	}
	assert.Equal([]int{vm.NO_JUMP, 4, vm.NO_JUMP, vm.NO_JUMP}, prog.Jumps())
}

func TestParse_Operands(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse(source(
		"🎲🚨🕐🕛",
		"✖️🦁🐮",
		"🌞🐹📌🆚🆚",
		"🤔🐰🦊",
		"🔁🐻🐼",
		"😐",
		"😐",
	))
	assert.NoError(err)
	assert.Equal(7, prog.Len())

	assert.Equal([3]int{24, 12, 23}, prog.Op(0).Reg)
	assert.Equal(OP_MUL, prog.Op(1).Op)
	assert.Equal([3]int{10, 11, 0}, prog.Op(1).Reg)
	assert.Equal(int64(100), prog.Op(2).Value)
	assert.Equal(3, prog.Op(2).Reg[0])

	// Inner block closes first.
	assert.Equal(4, prog.Op(5).Opener)
	assert.Equal(3, prog.Op(6).Opener)
	target, _ := prog.JumpTo(3)
	assert.Equal(7, target)
	target, _ = prog.JumpTo(4)
	assert.Equal(6, target)
}

func TestParse_Empty(t *testing.T) {
	assert := assert.New(t)

	for _, text := range []string{"", "\n\n", " \t\r\n\u3000"} {
		prog, err := Parse(text)
		assert.NoError(err)
		assert.Equal(0, prog.Len())
	}
}

func TestParse_Errors(t *testing.T) {
	table := [...]struct {
		name   string
		source string
		lineno int
		err    error
	}{
		{"unknown", "🌞🐶📌\n🍕🐶", 2, vm.ErrOpcodeUnknown},
		{"set-short", "🌞🐶", 1, vm.ErrOpcodeShape},
		{"read-long", "⭐🐶🐱", 1, vm.ErrOpcodeShape},
		{"end-args", "🤔🐶🐱\n😐🐶", 2, vm.ErrOpcodeShape},
		{"register", "\n\n⭐🍕", 3, vm.ErrOperandClass},
		{"digit", "🌞🐶📌🐱", 1, vm.ErrOperandClass},
		{"math-register", "➕🐶📌", 1, vm.ErrOperandClass},
		{"stray", "😀🐶\n😐", 2, vm.ErrBlockStray},
		{"unclosed", "🌞🐶📌\n🤔🐶🐱\n🔂🐶\n😐", 2, vm.ErrBlockOpen},
		{"number", "🌞🐶👊👊👊👊👊👊👊👊👊👊👊👊👊👊👊👊👊👊👊👊", 1, ErrNumber},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			assert := assert.New(t)

			prog, err := Parse(entry.source)
			assert.Nil(prog)
			assert.ErrorIs(err, entry.err)

			var syn *vm.ErrSyntax
			if assert.True(errors.As(err, &syn)) {
				assert.Equal(entry.lineno, syn.LineNo)
				assert.NotEmpty(syn.Line)
			}

			kind, ok := vm.KindOf(err)
			assert.True(ok)
			assert.Equal(vm.KIND_PARSE, kind)
		})
	}
}

func TestParse_Reuse(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	_, err := asm.Parse("🤔🐶🐱")
	assert.ErrorIs(err, vm.ErrBlockOpen)

	prog, err := asm.Parse("😀🐶")
	assert.NoError(err)
	assert.Equal(1, prog.Len())
}

func TestParse_ByteOrderMark(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse("\uFEFF🌞🐶📌\n😀🐶")
	assert.NoError(err)
	assert.Equal(2, prog.Len())
	assert.Equal(OP_SET, prog.Op(0).Op)
	assert.Equal(int64(1), prog.Op(0).Value)
	assert.Equal(1, prog.Op(0).LineNo)
}

func TestInstruction_String(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse(source("🌞🐶✌🤞", "➕🐶🐱", "😐"))
	assert.ErrorIs(err, vm.ErrBlockStray)
	assert.Nil(prog)

	prog, err = Parse(source("🌞 🐶 ✌️ 🤞", "➗🐶🐱"))
	assert.NoError(err)

	var lines []string
	for _, ins := range prog.All() {
		lines = append(lines, ins.String())
	}

	again, err := Parse(strings.Join(lines, "\n"))
	assert.NoError(err)
	assert.Equal(prog.Instructions(), again.Instructions())
}

func TestOp_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("set", OP_SET.String())
	assert.Equal("if-eq", OP_IF_EQ.String())
	assert.Equal("loop-ne", OP_LOOP_NE.String())
	assert.Equal("end", OP_END.String())
	assert.Equal("Op(13)", Op(13).String())
	assert.Equal("Op(-1)", Op(-1).String())
}
