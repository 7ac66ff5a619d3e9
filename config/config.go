// Package config loads run configuration from CUE files.
//
// A configuration file is validated against a closed schema, so unknown
// fields are rejected:
//
//	tape_size: 30000
//	eof:       "zero"
//	max_steps: 1000000
//	output:    "raw"
package config

import (
	"errors"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/ezrec/bfvm/engine"
	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	ErrOutputMode = errors.New(f("unknown output mode"))
)

const (
	OUTPUT_DISPLAY = "display" // One " 65[A]" line per emitted cell.
	OUTPUT_RAW     = "raw"     // Emitted cells written unchanged.
)

const schemaSrc = `
tape_size?: int & >0
eof?:       "neg_one" | "zero" | "unchanged"
max_steps?: int & >=0
output?:    "display" | "raw"
verbose?:   bool
`

// Config is a run configuration.
type Config struct {
	TapeSize int    `json:"tape_size"`
	EOF      string `json:"eof"`
	MaxSteps int    `json:"max_steps"`
	Output   string `json:"output"`
	Verbose  bool   `json:"verbose"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		TapeSize: engine.DEFAULT_TAPE_SIZE,
		EOF:      engine.EOF_NEG_ONE.String(),
		Output:   OUTPUT_DISPLAY,
	}
}

// Load reads and validates a configuration file.
func Load(path string) (cfg Config, err error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return
	}

	return Parse(path, content)
}

// Parse validates CUE source and decodes it over the defaults.
func Parse(name string, content []byte) (cfg Config, err error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString("close({" + schemaSrc + "})")
	if err = schema.Err(); err != nil {
		return
	}

	value := ctx.CompileBytes(content, cue.Filename(name))
	if err = value.Err(); err != nil {
		return
	}

	unified := schema.Unify(value)
	if err = unified.Validate(cue.Concrete(true)); err != nil {
		return
	}

	cfg = Default()
	if err = unified.Decode(&cfg); err != nil {
		return
	}

	return
}

// Engine returns the engine configuration.
func (cfg Config) Engine() (out engine.Config, err error) {
	out.TapeSize = cfg.TapeSize

	if len(cfg.EOF) != 0 {
		out.EOF, err = engine.ParseEOFMode(cfg.EOF)
		if err != nil {
			return
		}
	}

	return
}

// Raw returns true if emitted cells are written unchanged.
func (cfg Config) Raw() (raw bool, err error) {
	switch cfg.Output {
	case OUTPUT_RAW:
		raw = true
	case OUTPUT_DISPLAY, "":
	default:
		err = ErrOutputMode
	}

	return
}
