package io

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Display writes each emitted cell as a 3 column decimal value followed by
// its character in brackets, one per line. ie " 65[A]"
type Display struct {
	Output io.Writer
}

var _ Output = (*Display)(nil)

// Format returns the display rendering of a cell value, without a newline.
func Format(value byte) string {
	ch := rune(value)
	if !unicode.IsPrint(ch) {
		ch = '.'
	}
	return fmt.Sprintf("%3d[%c]", value, ch)
}

// Emit writes the display rendering of value.
func (dc *Display) Emit(value byte) (err error) {
	if dc.Output == nil {
		err = ErrNoOutput
		return
	}

	_, err = io.WriteString(dc.Output, Format(value)+"\n")
	return
}

// Raw writes each emitted cell unchanged.
type Raw struct {
	Output io.Writer
}

var _ Output = (*Raw)(nil)

// Emit writes value as a single byte.
func (rc *Raw) Emit(value byte) (err error) {
	if rc.Output == nil {
		err = ErrNoOutput
		return
	}

	_, err = rc.Output.Write([]byte{value})
	return
}

// Text collects emitted cells in memory.
type Text struct {
	builder strings.Builder
}

var _ Output = (*Text)(nil)

// Emit appends value to the collected text.
func (tc *Text) Emit(value byte) (err error) {
	return tc.builder.WriteByte(value)
}

// String returns the collected text.
func (tc *Text) String() string {
	return tc.builder.String()
}

// Bytes returns a copy of the collected bytes.
func (tc *Text) Bytes() []byte {
	return []byte(tc.builder.String())
}
