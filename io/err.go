package io

import (
	"errors"

	"github.com/ezrec/lovelace/translate"
)

var f = translate.From

var (
	// Tape errors
	ErrInputEmpty  = errors.New(f("input is empty"))
	ErrInputNumber = errors.New(f("input is not a number"))
	ErrInputRange  = errors.New(f("input number out of range"))
	ErrOutputShort = errors.New(f("output short write"))
)
