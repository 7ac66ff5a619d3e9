// Package io provides the byte sinks attached to the interpreter.
// An Input feeds the ',' instruction one byte at a time, and an Output
// receives the cell emitted by each '.' instruction.
package io

import (
	"io"
)

// Input defines a source of bytes for the ',' instruction.
type Input interface {
	// ReadCell returns the next byte, or io.EOF at end of stream.
	ReadCell() (value byte, err error)
}

// Output defines a sink for bytes emitted by the '.' instruction.
type Output interface {
	// Emit writes a single cell value using the sink's display policy.
	Emit(value byte) error
}

// EOF is returned by Input.ReadCell when no more input is available.
var EOF = io.EOF
