// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package engine

import (
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/ezrec/bfvm/io"
)

const (
	DEFAULT_TAPE_SIZE = 30000 // Default number of tape cells.
)

// Cell is a single tape cell. Arithmetic wraps modulo 256.
type Cell uint8

// Int8 returns the two's complement signed view of the cell.
func (c Cell) Int8() int8 {
	return int8(c)
}

// Config is the per-run engine configuration.
type Config struct {
	TapeSize int     // Number of tape cells. Zero selects DEFAULT_TAPE_SIZE.
	EOF      EOFMode // Value stored by ',' at end of input.
}

// normalize applies defaults and checks the configuration.
func (cfg Config) normalize() (out Config, err error) {
	out = cfg
	if out.TapeSize == 0 {
		out.TapeSize = DEFAULT_TAPE_SIZE
	}
	if out.TapeSize < 0 {
		err = ErrTapeSize
		return
	}
	if out.EOF < EOF_NEG_ONE || out.EOF > EOF_UNCHANGED {
		err = ErrEOFMode
		return
	}

	return
}

// Result is the final state of a run.
type Result struct {
	Tape      []Cell // Cells 0 through HighWater.
	Pointer   int    // Final data pointer.
	HighWater int    // Largest data pointer reached.
	Steps     int    // Instructions executed.
}

// Cell returns the value of a cell in the live portion of the tape, or 0.
func (res Result) Cell(index int) Cell {
	if index < 0 || index >= len(res.Tape) {
		return 0
	}
	return res.Tape[index]
}

// Engine is the interpreter state for a single program run.
type Engine struct {
	Verbose bool         // If set, logs every executed instruction.
	Logger  *slog.Logger // Logger for diagnostics; nil uses slog.Default().

	Input  io.Input  // Source for ','; nil is always at end of input.
	Output io.Output // Sink for '.'; nil discards.

	Config    Config // Run configuration.
	Tape      []Cell // Data tape.
	Pointer   int    // Data pointer.
	HighWater int    // Largest data pointer reached.
	Steps     int    // Instructions executed.

	cursor *Cursor
}

// NewEngine creates an engine with a zeroed tape over the program text.
func NewEngine(program string, cfg Config) (eng *Engine, err error) {
	cfg, err = cfg.normalize()
	if err != nil {
		return
	}

	eng = &Engine{
		Config: cfg,
		Tape:   make([]Cell, cfg.TapeSize),
		cursor: NewCursor(program),
	}

	return
}

// Cursor returns the program cursor.
func (eng *Engine) Cursor() *Cursor {
	return eng.cursor
}

// Peek returns the cell at the data pointer.
func (eng *Engine) Peek() Cell {
	return eng.Tape[eng.Pointer]
}

func (eng *Engine) logger() *slog.Logger {
	if eng.Logger == nil {
		return slog.Default()
	}
	return eng.Logger
}

// Result returns a snapshot of the current state.
func (eng *Engine) Result() Result {
	return Result{
		Tape:      slices.Clone(eng.Tape[:eng.HighWater+1]),
		Pointer:   eng.Pointer,
		HighWater: eng.HighWater,
		Steps:     eng.Steps,
	}
}

// Step pulls and executes a single instruction.
// done is set when the program text is exhausted.
func (eng *Engine) Step() (done bool, err error) {
	cur := eng.cursor

	if !cur.HasNext() {
		done = true
		return
	}

	ch, err := cur.Advance()
	if err != nil {
		return
	}

	op, ok := Classify(ch)
	if !ok {
		err = ErrInvalid{Char: ch, Position: cur.Position(), Text: cur.Text()}
		return
	}

	if eng.Verbose {
		eng.logger().Debug("step",
			"ip", cur.Position(),
			"op", op.String(),
			"pointer", eng.Pointer,
			"cell", int(eng.Peek()),
		)
	}

	err = eng.Execute(op)
	if err != nil {
		return
	}

	eng.Steps++

	return
}

// Run executes the program to completion or failure.
// On failure the result holds the last valid state.
func (eng *Engine) Run() (res Result, err error) {
	for {
		var done bool
		done, err = eng.Step()
		if err != nil || done {
			break
		}
	}

	res = eng.Result()
	return
}

// Execute executes a single opcode against the tape.
func (eng *Engine) Execute(op Opcode) (err error) {
	switch op {
	case OP_RIGHT:
		next := eng.Pointer + 1
		if next >= len(eng.Tape) {
			err = ErrPointer{Pointer: next, Size: len(eng.Tape)}
			return
		}
		eng.Pointer = next
		if next > eng.HighWater {
			eng.HighWater = next
		}
	case OP_LEFT:
		next := eng.Pointer - 1
		if next < 0 {
			err = ErrPointer{Pointer: next, Size: len(eng.Tape)}
			return
		}
		eng.Pointer = next
	case OP_INC:
		eng.Tape[eng.Pointer]++
	case OP_DEC:
		eng.Tape[eng.Pointer]--
	case OP_OUTPUT:
		eng.output()
	case OP_INPUT:
		eng.input()
	case OP_LOOP:
		if eng.Peek() == 0 {
			err = eng.cursor.JumpForwardTo(OP_END.Char())
		}
	case OP_END:
		if eng.Peek() != 0 {
			err = eng.cursor.JumpBackTo(OP_LOOP.Char())
		}
	default:
		err = ErrInvalidInstruction
	}

	return
}

// output emits the current cell. Sink failures are logged, not fatal.
func (eng *Engine) output() {
	if eng.Output == nil {
		return
	}

	err := eng.Output.Emit(byte(eng.Peek()))
	if err != nil {
		eng.logger().Warn("output failed",
			"ip", eng.cursor.Position(),
			"pointer", eng.Pointer,
			"error", err,
		)
	}
}

// input reads one byte into the current cell. Read failures are logged and
// leave the cell unmodified.
func (eng *Engine) input() {
	in := eng.Input
	if in == nil {
		in = io.Null{}
	}

	value, err := in.ReadCell()
	switch {
	case err == nil:
		eng.Tape[eng.Pointer] = Cell(value)
	case errors.Is(err, io.EOF):
		switch eng.Config.EOF {
		case EOF_NEG_ONE:
			eng.Tape[eng.Pointer] = Cell(0xff)
		case EOF_ZERO:
			eng.Tape[eng.Pointer] = 0
		case EOF_UNCHANGED:
		}
	default:
		eng.logger().Warn("input failed",
			"ip", eng.cursor.Position(),
			"pointer", eng.Pointer,
			"error", err,
		)
	}
}

// Interpret runs a program on a fresh default tape, with no input or output
// attached.
func Interpret(program string) (res Result, err error) {
	eng, err := NewEngine(program, Config{})
	if err != nil {
		return
	}

	return eng.Run()
}

// RunString runs a program with input supplied from a string, and returns
// the emitted bytes as a string.
func RunString(program string, input string) (output string, err error) {
	eng, err := NewEngine(program, Config{})
	if err != nil {
		return
	}

	text := &io.Text{}
	eng.Input = &io.Tape{Input: strings.NewReader(input)}
	eng.Output = text

	_, err = eng.Run()
	output = text.String()

	return
}
