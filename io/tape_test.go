package io

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_ReadNumber(t *testing.T) {
	assert := assert.New(t)

	tape := NewTape("  12\n\t7 0042", nil)

	value, err := tape.ReadNumber()
	assert.NoError(err)
	assert.Equal(int64(12), value)

	value, err = tape.ReadNumber()
	assert.NoError(err)
	assert.Equal(int64(7), value)

	value, err = tape.ReadNumber()
	assert.NoError(err)
	assert.Equal(int64(42), value)

	_, err = tape.ReadNumber()
	assert.ErrorIs(err, ErrInputEmpty)
}

func TestTape_ReadNumber_Adjacent(t *testing.T) {
	assert := assert.New(t)

	// A digit run stops at the first non-digit, which stays unread.
	tape := NewTape("5x", nil)

	value, err := tape.ReadNumber()
	assert.NoError(err)
	assert.Equal(int64(5), value)

	_, err = tape.ReadNumber()
	assert.ErrorIs(err, ErrInputNumber)
	_, err = tape.ReadNumber()
	assert.ErrorIs(err, ErrInputNumber)
}

func TestTape_ReadNumber_Empty(t *testing.T) {
	assert := assert.New(t)

	for _, input := range []string{"", "   ", "\n\r\n"} {
		tape := NewTape(input, nil)
		_, err := tape.ReadNumber()
		assert.ErrorIs(err, ErrInputEmpty, "%q", input)
	}

	tape := &Tape{}
	_, err := tape.ReadNumber()
	assert.ErrorIs(err, ErrInputEmpty)
}

func TestTape_ReadNumber_Range(t *testing.T) {
	assert := assert.New(t)

	tape := NewTape("9223372036854775807 9223372036854775808", nil)

	value, err := tape.ReadNumber()
	assert.NoError(err)
	assert.Equal(int64(9223372036854775807), value)

	_, err = tape.ReadNumber()
	assert.ErrorIs(err, ErrInputRange)
}

func TestTape_ReadNumber_Signed(t *testing.T) {
	assert := assert.New(t)

	tape := NewTape("-3", nil)
	_, err := tape.ReadNumber()
	assert.ErrorIs(err, ErrInputNumber)
}

func TestTape_ReadNumber_Stuck(t *testing.T) {
	assert := assert.New(t)

	tape := NewTape("3 ? 4", nil)

	value, err := tape.ReadNumber()
	assert.NoError(err)
	assert.Equal(int64(3), value)

	_, err = tape.ReadNumber()
	assert.ErrorIs(err, ErrInputNumber)
}

type errorWriter struct{}

func (errorWriter) Write(p []byte) (int, error) {
	return 0, errors.New("write error")
}

func TestTape_Send(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output}

	assert.NoError(tape.SendNumber(24))
	assert.NoError(tape.SendNumber(-7))
	assert.NoError(tape.Send(""))
	assert.Equal("24-7", output.String())

	tape = &Tape{}
	assert.NoError(tape.SendNumber(1))

	tape = &Tape{Output: errorWriter{}}
	assert.Error(tape.SendNumber(1))
}
