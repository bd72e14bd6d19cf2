package lab

import (
	"errors"

	"github.com/ezrec/lovelace/translate"
)

var f = translate.From

var (
	ErrLabInvalid = errors.New(f("lab file is not valid"))
	ErrFormat     = errors.New(f("unknown report format"))
)

// ErrCheck is a check expression that could not be evaluated.
type ErrCheck struct {
	Test string // Name of the test.
	Err  error
}

func (err *ErrCheck) Error() string {
	return f("test %v check: %v", err.Test, err.Err)
}

func (err *ErrCheck) Unwrap() error {
	return err.Err
}
