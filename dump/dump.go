// Package dump renders interpreter state for human inspection.
package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/bfvm/engine"
)

// State writes three aligned rows: the cell indices from 0 through the
// high-water mark, the cell values, and a caret under the data pointer.
//
//	index    = |  0|  1|
//	data     = |  0|  5|
//	pointer  =    ^
func State(w io.Writer, res engine.Result) (err error) {
	var text strings.Builder

	text.WriteString("index    = ")
	for n := range res.Tape {
		fmt.Fprintf(&text, "|%3d", n)
	}
	text.WriteString("|\n")

	text.WriteString("data     = ")
	for _, cell := range res.Tape {
		fmt.Fprintf(&text, "|%3d", cell)
	}
	text.WriteString("|\n")

	text.WriteString("pointer  = ")
	text.WriteString(strings.Repeat(" ", columnOffset(res.Pointer)))
	text.WriteString("^\n")

	_, err = io.WriteString(w, text.String())
	return
}

// columnOffset is the distance from the start of the row to the last
// character of the pointer's column.
func columnOffset(pointer int) (offset int) {
	for n := range pointer {
		offset += len(fmt.Sprintf("|%3d", n))
	}
	offset += len(fmt.Sprintf("|%3d", pointer)) - 1
	return
}

// Cursor writes the program text and a caret under position.
//
//	program  = +a+
//	position =  ^
func Cursor(w io.Writer, text string, position int) (err error) {
	var out strings.Builder

	out.WriteString("program  = ")
	out.WriteString(text)
	out.WriteString("\n")

	out.WriteString("position = ")
	out.WriteString(strings.Repeat(" ", max(position, 0)))
	out.WriteString("^\n")

	_, err = io.WriteString(w, out.String())
	return
}
