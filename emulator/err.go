package emulator

import (
	"errors"

	"github.com/ezrec/lovelace/translate"
)

var f = translate.From

var (
	ErrDomainUnknown = errors.New(f("unknown domain"))
)

// ErrDomain is a domain name with no registered domain.
type ErrDomain string

func (err ErrDomain) Error() string {
	return f("unknown domain %q", string(err))
}

func (err ErrDomain) Is(target error) bool {
	return target == ErrDomainUnknown
}
