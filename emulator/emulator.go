// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator drives the engine one instruction at a time, with an
// optional step limit and cancellation between instructions.
package emulator

import (
	"context"
	"log/slog"

	"github.com/ezrec/bfvm/engine"
	"github.com/ezrec/bfvm/io"
)

// Emulator state. Engine + IO sinks + limits.
type Emulator struct {
	Verbose        bool // If set, enables verbose logging.
	*engine.Engine      // Reference to the engine for the program.

	MaxSteps int // If positive, the number of instructions allowed.

	Program string // Program text being executed.
}

// NewEmulator creates a new emulator for a program.
func NewEmulator(program string, cfg engine.Config) (emu *Emulator, err error) {
	eng, err := engine.NewEngine(program, cfg)
	if err != nil {
		return
	}

	emu = &Emulator{
		Engine:  eng,
		Program: program,
	}

	return
}

// Attach connects the input and output sinks.
func (emu *Emulator) Attach(input io.Input, output io.Output) {
	emu.Engine.Input = input
	emu.Engine.Output = output
}

// SetLogger sets the logger used by the engine.
func (emu *Emulator) SetLogger(logger *slog.Logger) {
	emu.Engine.Logger = logger
}

// Ip returns the current program text index.
func (emu *Emulator) Ip() int {
	return emu.Engine.Cursor().Position()
}

// Ticks returns the instructions executed so far.
func (emu *Emulator) Ticks() int {
	return emu.Engine.Steps
}

// Tick performs a single instruction of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Engine.Verbose = emu.Verbose

	defer func() {
		if err != nil {
			err = &ErrRuntime{Position: emu.Ip(), Step: emu.Ticks(), Err: err}
		}
	}()

	if emu.MaxSteps > 0 && emu.Engine.Steps >= emu.MaxSteps && emu.Engine.Cursor().HasNext() {
		err = ErrStepLimit
		return
	}

	done, err = emu.Engine.Step()

	return
}

// Run ticks until the program completes, fails, or ctx is done.
// Cancellation is observed between instructions only.
func (emu *Emulator) Run(ctx context.Context) (res engine.Result, err error) {
	for {
		err = ctx.Err()
		if err != nil {
			break
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			break
		}
	}

	res = emu.Engine.Result()
	return
}
