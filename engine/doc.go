// Package engine implements a direct interpreter for the eight opcode
// byte-tape language ('>', '<', '+', '-', '.', ',', '[' and ']').
//
// The interpreter consists of a Cursor over the program text, which pulls
// one instruction character at a time and relocates itself to matching
// brackets, and an Engine owning the data tape, the data pointer and its
// high-water mark. The Engine classifies each character into an Opcode as it
// is pulled, and rejects any character outside the instruction set.
//
// Every run is independent: Interpret builds a fresh tape and cursor, so
// concurrent runs on different programs share no state.
package engine
