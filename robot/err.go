package robot

import (
	"errors"

	"github.com/ezrec/lovelace/translate"
)

var f = translate.From

var (
	// Parse errors
	ErrNumber = errors.New(f("number too large"))

	// Runtime errors
	ErrMoveBlocked = errors.New(f("move into a blocked cell"))
	ErrScenario    = errors.New(f("scenario is not valid JSON"))
)
