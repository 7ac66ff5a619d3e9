package source

import (
	"errors"

	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	ErrDefineInvalid = errors.New(f("define name invalid"))
)

// ErrSyntax locates an error in the program source.
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

// ErrParseExpression is a $(...) expression that did not produce a string.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a string expression", string(err))
}
