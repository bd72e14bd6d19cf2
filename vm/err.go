package vm

import (
	"errors"

	"github.com/ezrec/lovelace/translate"
)

var f = translate.From

// Kind classifies interpreter errors.
type Kind int

const (
	KIND_PARSE   = Kind(0) // parse
	KIND_RUNTIME = Kind(1) // runtime
)

func (kind Kind) String() string {
	switch kind {
	case KIND_PARSE:
		return "parse"
	case KIND_RUNTIME:
		return "runtime"
	}
	return "unknown"
}

var (
	ErrBlockStray    = errors.New(f("block end without an open block"))
	ErrBlockOpen     = errors.New(f("block is not closed"))
	ErrJumpInvalid   = errors.New(f("jump outside the program"))
	ErrStatusInvalid = errors.New(f("status invalid"))

	// Parse errors shared by every domain.
	ErrOpcodeUnknown = errors.New(f("unknown command"))
	ErrOpcodeShape   = errors.New(f("wrong number of operands"))
	ErrOperandClass  = errors.New(f("operand of the wrong kind"))
	ErrCodeDomain    = errors.New(f("program compiled for another domain"))
)

// ErrUnknown is an unknown leading symbol.
type ErrUnknown string

func (err ErrUnknown) Error() string {
	return f("unknown command %v", string(err))
}

func (err ErrUnknown) Is(target error) bool {
	return target == ErrOpcodeUnknown
}

// ErrShape is an opcode with the wrong number of operands.
type ErrShape struct {
	Opcode string // Opcode symbol.
	Shape  string // Expected form, opcode first.
}

func (err *ErrShape) Error() string {
	return f("%v expects the form %v", err.Opcode, err.Shape)
}

func (err *ErrShape) Is(target error) bool {
	return target == ErrOpcodeShape
}

// ErrOperand is an operand outside its symbol class.
type ErrOperand struct {
	Symbol string // Offending symbol, empty when missing.
	Class  string // Expected class, already translated.
}

func (err *ErrOperand) Error() string {
	if len(err.Symbol) == 0 {
		return f("expected %v, got nothing", err.Class)
	}
	return f("expected %v, got %v", err.Class, err.Symbol)
}

func (err *ErrOperand) Is(target error) bool {
	return target == ErrOperandClass
}

// ErrSyntax is a parse error at a source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	if len(err.Line) == 0 {
		return f("line %d %v", err.LineNo, err.Err)
	}
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrRuntime is an execution error at a source line.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo <= 0 {
		return err.Err.Error()
	}
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// NewError wraps err as an error of the given kind at a source line.
func NewError(kind Kind, lineno int, err error) error {
	if kind == KIND_PARSE {
		return &ErrSyntax{LineNo: lineno, Err: err}
	}
	return &ErrRuntime{LineNo: lineno, Err: err}
}

// KindOf reports the kind of an interpreter error.
func KindOf(err error) (kind Kind, ok bool) {
	var syn *ErrSyntax
	if errors.As(err, &syn) {
		return KIND_PARSE, true
	}
	var run *ErrRuntime
	if errors.As(err, &run) {
		return KIND_RUNTIME, true
	}
	return
}

// LineOf returns the source line of an interpreter error, or 0.
func LineOf(err error) int {
	var syn *ErrSyntax
	if errors.As(err, &syn) {
		return syn.LineNo
	}
	var run *ErrRuntime
	if errors.As(err, &run) {
		return run.LineNo
	}
	return 0
}
