package classic

import (
	"errors"

	"github.com/ezrec/lovelace/translate"
)

var f = translate.From

var (
	// Parse errors
	ErrNumber = errors.New(f("number too large"))

	// Runtime errors
	ErrRandomRange  = errors.New(f("low bound above high bound"))
	ErrDivideByZero = errors.New(f("division by zero"))
	ErrOverflow     = errors.New(f("value out of range"))
)
