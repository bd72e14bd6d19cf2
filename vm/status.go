package vm

import (
	"fmt"
)

// Status is the terminal state of an execution.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	STATUS_OK    = Status(0) // ok
	STATUS_WARN  = Status(1) // warn
	STATUS_LIMIT = Status(2) // limit
	STATUS_ERROR = Status(3) // error
)

// ParseStatus is the inverse of Status.String.
func ParseStatus(text string) (st Status, err error) {
	for st = STATUS_OK; st <= STATUS_ERROR; st++ {
		if st.String() == text {
			return
		}
	}
	st = STATUS_OK
	err = fmt.Errorf("%w: %q", ErrStatusInvalid, text)
	return
}

func (st Status) MarshalText() ([]byte, error) {
	return []byte(st.String()), nil
}

func (st *Status) UnmarshalText(text []byte) (err error) {
	*st, err = ParseStatus(string(text))
	return
}
