// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/ezrec/bfvm/config"
	"github.com/ezrec/bfvm/dump"
	"github.com/ezrec/bfvm/emulator"
	"github.com/ezrec/bfvm/engine"
	bfio "github.com/ezrec/bfvm/io"
	"github.com/ezrec/bfvm/source"
	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	ErrNoProgram    = errors.New(f("one of -c or -e is required"))
	ErrTwoPrograms  = errors.New(f("-c and -e are exclusive"))
	ErrDefineSyntax = errors.New(f("define must be NAME=VALUE"))
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()

	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", os.Args[0], err)
		os.Exit(1)
	}
}

// openInput opens a named input, where "-" is stdin.
func openInput(name string, stdin io.Reader) (input io.Reader, closer func(), err error) {
	closer = func() {}
	if name == "-" {
		input = stdin
		return
	}

	inf, err := os.Open(name)
	if err != nil {
		return
	}

	input = inf
	closer = func() { inf.Close() }
	return
}

// openOutput creates a named output, where "-" is stdout.
func openOutput(name string, stdout io.Writer) (output io.Writer, closer func(), err error) {
	closer = func() {}
	if name == "-" {
		output = stdout
		return
	}

	ouf, err := os.Create(name)
	if err != nil {
		return
	}

	output = ouf
	closer = func() { ouf.Close() }
	return
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	var compile string
	var eval string
	var cfgPath string
	var input string
	var output string
	var raw bool
	var tapeSize int
	var maxSteps int
	var eofMode string
	var check bool
	var showDump bool
	var verbose bool
	var trace string

	ld := &source.Loader{}

	fs := flag.NewFlagSet("bf", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&compile, "c", "", "program source file to run (- for stdin)")
	fs.StringVar(&eval, "e", "", "program text to run")
	fs.StringVar(&cfgPath, "config", "", ".cue configuration file")
	fs.StringVar(&input, "i", "-", "Tape input")
	fs.StringVar(&output, "o", "-", "Tape output")
	fs.BoolVar(&raw, "raw", false, "Write output bytes unchanged")
	fs.IntVar(&tapeSize, "n", engine.DEFAULT_TAPE_SIZE, "Tape size in cells")
	fs.IntVar(&maxSteps, "steps", 0, "Maximum instructions to execute (0 is unlimited)")
	fs.StringVar(&eofMode, "eof", engine.EOF_NEG_ONE.String(), "End of input value: neg_one, zero or unchanged")
	fs.BoolVar(&check, "check", false, "Validate the program, do not execute")
	fs.BoolVar(&showDump, "dump", false, "Dump the tape after the run")
	fs.BoolVar(&verbose, "v", false, "Verbose mode")
	fs.StringVar(&trace, "trace", "", "JSON trace log file")
	fs.Func("D", "Define NAME=VALUE for $(...) expressions", func(text string) error {
		name, value, ok := strings.Cut(text, "=")
		if !ok {
			return ErrDefineSyntax
		}
		return ld.Define(name, value)
	})

	err = fs.Parse(args)
	if err != nil {
		return
	}

	if fs.NArg() != 0 {
		err = errors.New(f("unknown arguments: %v", fs.Args()))
		return
	}

	cfg := config.Default()
	if len(cfgPath) != 0 {
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return
		}
	}

	// Explicit flags override the configuration file.
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "raw":
			if raw {
				cfg.Output = config.OUTPUT_RAW
			} else {
				cfg.Output = config.OUTPUT_DISPLAY
			}
		case "n":
			cfg.TapeSize = tapeSize
		case "steps":
			cfg.MaxSteps = maxSteps
		case "eof":
			cfg.EOF = eofMode
		case "v":
			cfg.Verbose = verbose
		}
	})

	var traceOut io.Writer
	if len(trace) != 0 {
		var closer func()
		traceOut, closer, err = openOutput(trace, stdout)
		if err != nil {
			return
		}
		defer closer()
	}

	logger := newLogger(stderr, traceOut, cfg.Verbose)
	slog.SetDefault(logger)

	ld.Verbose = cfg.Verbose

	var program string
	switch {
	case len(compile) != 0 && len(eval) != 0:
		err = ErrTwoPrograms
		return
	case len(compile) != 0:
		var inf io.Reader
		var closer func()
		inf, closer, err = openInput(compile, stdin)
		if err != nil {
			return
		}
		defer closer()

		program, err = ld.Load(inf)
		if err != nil {
			err = fmt.Errorf("%v: %w", compile, err)
			return
		}
	case len(eval) != 0:
		program, err = ld.LoadString(eval)
		if err != nil {
			return
		}
	default:
		err = ErrNoProgram
		return
	}

	if check {
		err = engine.Validate(program)
		if err != nil {
			return
		}
		logger.Info("program ok", "length", len([]rune(program)))
		return
	}

	ecfg, err := cfg.Engine()
	if err != nil {
		return
	}

	useRaw, err := cfg.Raw()
	if err != nil {
		return
	}

	emu, err := emulator.NewEmulator(program, ecfg)
	if err != nil {
		return
	}
	emu.MaxSteps = cfg.MaxSteps
	emu.Verbose = cfg.Verbose || traceOut != nil
	emu.SetLogger(logger)

	inf, closeIn, err := openInput(input, stdin)
	if err != nil {
		return
	}
	defer closeIn()

	ouf, closeOut, err := openOutput(output, stdout)
	if err != nil {
		return
	}
	defer closeOut()

	var sink bfio.Output = &bfio.Display{Output: ouf}
	if useRaw {
		sink = &bfio.Raw{Output: ouf}
	}
	emu.Attach(&bfio.Tape{Input: inf}, sink)

	res, err := emu.Run(ctx)
	if err != nil {
		logger.Error("run failed", "steps", res.Steps, "error", err)
		dump.Cursor(stderr, program, emu.Ip())
		dump.State(stderr, res)
		return
	}

	logger.Debug("run complete", "steps", res.Steps, "pointer", res.Pointer, "high_water", res.HighWater)

	if showDump {
		err = dump.State(stderr, res)
	}

	return
}
