package emulator

import (
	"errors"

	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	ErrStepLimit = errors.New(f("step limit reached"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Position int // Program text index.
	Step     int // Instructions executed before the error.
	Err      error
}

func (err *ErrRuntime) Error() string {
	return f("index %d step %d %v", err.Position, err.Step, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
