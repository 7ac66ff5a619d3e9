package io

import (
	"io"
)

// Tape provides sequential byte input from an io.Reader.
type Tape struct {
	Input io.Reader

	count int
}

var _ Input = (*Tape)(nil)

// ReadCell reads a single byte from the input stream.
// A read of zero bytes with no error is retried, as io.Reader permits it.
func (tc *Tape) ReadCell() (value byte, err error) {
	if tc.Input == nil {
		err = ErrNoInput
		return
	}

	var one [1]byte
	for {
		var n int
		n, err = tc.Input.Read(one[:])
		if n == 1 {
			tc.count++
			value = one[0]
			err = nil
			return
		}
		if err != nil {
			return
		}
	}
}

// Count returns the number of bytes read so far.
func (tc *Tape) Count() int {
	return tc.count
}

// Null is an Input that is always at end of stream.
type Null struct{}

var _ Input = Null{}

// ReadCell always returns io.EOF.
func (Null) ReadCell() (value byte, err error) {
	err = io.EOF
	return
}
