package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Tape provides sequential numeric I/O.
// Input is read as white space separated runs of ASCII digits; Output
// receives printed values verbatim, with no separators.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	reader *bufio.Reader
	source io.Reader
}

// NewTape returns a tape reading from the input text.
func NewTape(input string, output io.Writer) *Tape {
	return &Tape{
		Input:  strings.NewReader(input),
		Output: output,
	}
}

func (tc *Tape) buffered() *bufio.Reader {
	if tc.reader == nil || tc.source != tc.Input {
		if tc.Input == nil {
			tc.Input = strings.NewReader("")
		}
		tc.reader = bufio.NewReader(tc.Input)
		tc.source = tc.Input
	}
	return tc.reader
}

// ReadNumber consumes leading white space, then the longest run of ASCII
// digits, and returns its value.
//
// An exhausted input is ErrInputEmpty. A non-digit is ErrInputNumber and is
// left unread.
func (tc *Tape) ReadNumber() (value int64, err error) {
	rd := tc.buffered()

	var r rune
	for {
		r, _, err = rd.ReadRune()
		if err == io.EOF {
			err = ErrInputEmpty
			return
		}
		if err != nil {
			return
		}
		if !unicode.IsSpace(r) && r != '\uFEFF' {
			break
		}
	}

	var digits strings.Builder
	for '0' <= r && r <= '9' {
		digits.WriteRune(r)
		r, _, err = rd.ReadRune()
		if err != nil {
			break
		}
	}
	if err == nil {
		_ = rd.UnreadRune()
	} else if err != io.EOF {
		return
	}
	err = nil

	if digits.Len() == 0 {
		err = fmt.Errorf("%w: %q", ErrInputNumber, r)
		return
	}

	value, err = strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrInputRange, digits.String())
		value = 0
	}

	return
}

// Send writes text to the output.
func (tc *Tape) Send(text string) (err error) {
	if tc.Output == nil {
		return
	}

	n, err := io.WriteString(tc.Output, text)
	if err == nil && n != len(text) {
		err = ErrOutputShort
	}

	return
}

// SendNumber writes a base 10 integer to the output.
func (tc *Tape) SendNumber(value int64) error {
	return tc.Send(strconv.FormatInt(value, 10))
}
