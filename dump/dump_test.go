package dump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/bfvm/engine"
)

func TestState(t *testing.T) {
	assert := assert.New(t)

	res, err := engine.Interpret("+++>++<[->+<]")
	assert.NoError(err)

	buff := &bytes.Buffer{}
	assert.NoError(State(buff, res))

	expect := strings.Join([]string{
		"index    = |  0|  1|",
		"data     = |  0|  5|",
		"pointer  =    ^",
		"",
	}, "\n")
	assert.Equal(expect, buff.String())
}

func TestState_Pointer(t *testing.T) {
	assert := assert.New(t)

	res := engine.Result{
		Tape:      []engine.Cell{1, 200, 3},
		Pointer:   2,
		HighWater: 2,
	}

	buff := &bytes.Buffer{}
	assert.NoError(State(buff, res))

	lines := strings.Split(buff.String(), "\n")
	assert.Equal("index    = |  0|  1|  2|", lines[0])
	assert.Equal("data     = |  1|200|  3|", lines[1])
	assert.Equal("pointer  =            ^", lines[2])

	// The caret sits under the last digit of the pointer column.
	caret := strings.Index(lines[2], "^")
	assert.Equal(byte('2'), lines[0][caret])
}

func TestState_WideIndex(t *testing.T) {
	assert := assert.New(t)

	res, err := engine.Interpret(strings.Repeat(">", 1001))
	assert.NoError(err)

	buff := &bytes.Buffer{}
	assert.NoError(State(buff, res))

	lines := strings.Split(buff.String(), "\n")
	caret := strings.Index(lines[2], "^")
	assert.Equal(len(lines[0])-2, caret)
	assert.True(strings.HasSuffix(lines[0], "|1001|"))
}

func TestCursor(t *testing.T) {
	assert := assert.New(t)

	buff := &bytes.Buffer{}
	assert.NoError(Cursor(buff, "+a+", 1))
	assert.Equal("program  = +a+\nposition =  ^\n", buff.String())

	buff.Reset()
	assert.NoError(Cursor(buff, "+", -1))
	assert.Equal("program  = +\nposition = ^\n", buff.String())
}
