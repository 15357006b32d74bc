package cpu

import (
	"errors"

	"github.com/ezrec/armsim/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrPcRange         = errors.New(f("program counter out of range"))
	ErrMnemonicUnknown = errors.New(f("mnemonic unknown"))

	// Instruction decode errors
	ErrOperandMissing = errors.New(f("operand missing"))
	ErrOperandExtra   = errors.New(f("excessive operands"))

	// Program load errors
	ErrLabelDuplicate = errors.New(f("label duplicated"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrRegisterRange int

func (err ErrRegisterRange) Error() string {
	return f("register R%d out of range", int(err))
}

type ErrAddressRange int

func (err ErrAddressRange) Error() string {
	return f("memory address %d out of range", int(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not an immediate or register", string(err))
}

type ErrCommaMissing string

func (err ErrCommaMissing) Error() string {
	return f("'%v' is missing a trailing comma", string(err))
}

// ErrInstruction attaches the failing instruction text to an error.
type ErrInstruction struct {
	Pc   int
	Line string
	Err  error
}

func (err *ErrInstruction) Error() string {
	return f("pc %d '%v' %v", err.Pc, err.Line, err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}

// ErrSyntax locates a program load error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
