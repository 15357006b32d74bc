package emulator

import (
	"errors"

	"github.com/ezrec/armsim/translate"
)

var f = translate.From

var (
	ErrTickLimit = errors.New(f("tick limit reached"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int    // 1-based source line number.
	Line   string // Source text of the line, if any.
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrPresetType indicates a preset global of the wrong type.
type ErrPresetType struct {
	Name string
	Type string
}

func (err *ErrPresetType) Error() string {
	return f("preset %v: unexpected %v", err.Name, err.Type)
}

// ErrPresetValue indicates a preset value that does not fit in a register.
type ErrPresetValue struct {
	Name  string
	Value string
}

func (err *ErrPresetValue) Error() string {
	return f("preset %v: %v is not a 32-bit value", err.Name, err.Value)
}
