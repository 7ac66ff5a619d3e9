// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package source loads program text from annotated source files.
//
// Source files are read line by line. Text following a ';' or '#' is a
// comment, and whitespace is removed. A $(...) expression is evaluated as
// Starlark and must produce a string, which is spliced into the program:
//
//	$("+" * 65) .  ; print 'A'
//
// The loader only prepares text. Any character left over that is not an
// instruction is still rejected by the engine.
package source

import (
	"bufio"
	"io"
	"log"
	"regexp"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// commentMarks start a comment that runs to the end of the line.
const commentMarks = ";#"

var (
	exprPattern   = regexp.MustCompile(`\$\([^\$]*\)`)
	definePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Loader is a line oriented program source loader.
type Loader struct {
	Verbose bool // If set, logs each source line and its expansion.

	define map[string]string
}

// Define makes a named string available to $(...) expressions.
func (ld *Loader) Define(name string, value string) (err error) {
	if !definePattern.MatchString(name) || name == "LINENO" {
		err = ErrDefineInvalid
		return
	}

	if ld.define == nil {
		ld.define = map[string]string{}
	}
	ld.define[name] = value

	return
}

// eval does a single $(...) evaluation.
func (ld *Loader) eval(expr string, lineno int) (value string, err error) {
	thread := &starlark.Thread{Name: "source"}
	opts := syntax.FileOptions{}

	pred := starlark.StringDict{
		"LINENO": starlark.MakeInt(lineno),
	}
	for name, text := range ld.define {
		pred[name] = starlark.String(text)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, thread, "expr", prog, pred)
	if err != nil {
		return
	}

	rc, ok := dict["rc"].(starlark.String)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	value = rc.GoString()
	return
}

// parseLine returns the program text contributed by a single line.
func (ld *Loader) parseLine(line string, lineno int) (text string, err error) {
	line = exprPattern.ReplaceAllStringFunc(line, func(str string) string {
		if err != nil {
			return ""
		}
		value, _err := ld.eval(str[2:len(str)-1], lineno)
		if _err != nil {
			err = _err
		}
		return value
	})
	if err != nil {
		return
	}

	text = strings.Join(strings.Fields(line), "")
	return
}

// Load reads program source and returns the program text.
func (ld *Loader) Load(input io.Reader) (program string, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	var out strings.Builder
	for scanner.Scan() {
		lineno++
		line = scanner.Text()

		code := line
		if n := strings.IndexAny(code, commentMarks); n >= 0 {
			code = code[:n]
		}

		var text string
		text, err = ld.parseLine(code, lineno)
		if err != nil {
			return
		}

		if ld.Verbose {
			log.Printf("%v: %v => %v", lineno, line, text)
		}

		out.WriteString(text)
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	program = out.String()
	return
}

// LoadString loads program source from a string.
func (ld *Loader) LoadString(text string) (program string, err error) {
	return ld.Load(strings.NewReader(text))
}
