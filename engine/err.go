// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package engine

import (
	"errors"

	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	// Runtime errors
	ErrInvalidInstruction = errors.New(f("invalid instruction"))
	ErrPointerOutOfRange  = errors.New(f("pointer out of range"))
	ErrExhaustedSequence  = errors.New(f("exhausted sequence"))
	ErrUnmatchedBracket   = errors.New(f("unmatched bracket"))

	// Configuration errors
	ErrTapeSize = errors.New(f("tape size must be positive"))
	ErrEOFMode  = errors.New(f("unknown eof mode"))
)

// ErrInvalid is a character outside of the instruction set.
type ErrInvalid struct {
	Char     rune
	Position int
	Text     string
}

func (err ErrInvalid) Error() string {
	return f("invalid char '%c' at index %v in '%v'", err.Char, err.Position, err.Text)
}

func (err ErrInvalid) Is(target error) bool {
	return target == ErrInvalidInstruction
}

// ErrPointer is an attempted data pointer move outside of the tape.
type ErrPointer struct {
	Pointer int // Attempted data pointer.
	Size    int // Tape size.
}

func (err ErrPointer) Error() string {
	return f("pointer out of range(%v) on tape of %v cells", err.Pointer, err.Size)
}

func (err ErrPointer) Is(target error) bool {
	return target == ErrPointerOutOfRange
}

// ErrUnmatched is a bracket with no partner in the scan direction.
type ErrUnmatched struct {
	Char     rune
	Position int
}

func (err ErrUnmatched) Error() string {
	return f("cannot find match for '%c' at index %v", err.Char, err.Position)
}

func (err ErrUnmatched) Is(target error) bool {
	return target == ErrUnmatchedBracket
}
