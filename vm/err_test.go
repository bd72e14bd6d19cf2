package vm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	assert := assert.New(t)

	base := errors.New("bad thing")

	err := NewError(KIND_PARSE, 4, base)
	kind, ok := KindOf(err)
	assert.True(ok)
	assert.Equal(KIND_PARSE, kind)
	assert.Equal(4, LineOf(err))
	assert.ErrorIs(err, base)

	err = fmt.Errorf("test 2: %w", NewError(KIND_RUNTIME, 9, base))
	kind, ok = KindOf(err)
	assert.True(ok)
	assert.Equal(KIND_RUNTIME, kind)
	assert.Equal(9, LineOf(err))
	assert.ErrorIs(err, base)

	_, ok = KindOf(base)
	assert.False(ok)
	assert.Equal(0, LineOf(base))

	assert.Equal("parse", KIND_PARSE.String())
	assert.Equal("runtime", KIND_RUNTIME.String())
}

func TestStatus(t *testing.T) {
	assert := assert.New(t)

	for _, st := range []Status{STATUS_OK, STATUS_WARN, STATUS_LIMIT, STATUS_ERROR} {
		text, err := st.MarshalText()
		assert.NoError(err)

		var back Status
		assert.NoError(back.UnmarshalText(text))
		assert.Equal(st, back)
	}

	st, err := ParseStatus("done")
	assert.ErrorIs(err, ErrStatusInvalid)
	assert.Equal(STATUS_OK, st)
	assert.Equal("limit", STATUS_LIMIT.String())
	assert.Equal("Status(9)", Status(9).String())
}

func TestResult(t *testing.T) {
	assert := assert.New(t)

	res := Result{Status: STATUS_OK, Steps: 3}
	res.Warn()
	assert.Equal(STATUS_OK, res.Status)

	res.Warn("position", "finishReached")
	assert.Equal(STATUS_WARN, res.Status)
	assert.Equal([]string{"position", "finishReached"}, res.Issues)

	limited := Result{Status: STATUS_LIMIT}
	limited.Warn("limit")
	assert.Equal(STATUS_LIMIT, limited.Status)

	res.Fail(NewError(KIND_RUNTIME, 12, errors.New("nope")))
	assert.Equal(STATUS_ERROR, res.Status)
	assert.Equal(12, res.LineNo)
	assert.NotEmpty(res.Error)
}

func TestErrors_Parse(t *testing.T) {
	assert := assert.New(t)

	var err error = ErrUnknown("🍕")
	assert.ErrorIs(err, ErrOpcodeUnknown)
	assert.Contains(err.Error(), "🍕")

	err = &ErrShape{Opcode: "⭐", Shape: "⭐ register"}
	assert.ErrorIs(err, ErrOpcodeShape)
	assert.NotErrorIs(err, ErrOperandClass)

	err = &ErrOperand{Symbol: "🍕", Class: "register"}
	assert.ErrorIs(err, ErrOperandClass)
	assert.Contains(err.Error(), "🍕")

	err = &ErrSyntax{LineNo: 3, Line: "⭐🍕", Err: err}
	assert.ErrorIs(err, ErrOperandClass)
	assert.Equal(3, LineOf(err))
}
