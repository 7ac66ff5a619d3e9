package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursor_Advance(t *testing.T) {
	assert := assert.New(t)

	cur := NewCursor("+-")
	assert.Equal(-1, cur.Position())
	assert.Equal(2, cur.Len())
	assert.Equal("+-", cur.Text())

	assert.True(cur.HasNext())
	ch, err := cur.Advance()
	assert.NoError(err)
	assert.Equal('+', ch)
	assert.Equal(0, cur.Position())

	ch, err = cur.Advance()
	assert.NoError(err)
	assert.Equal('-', ch)
	assert.Equal(1, cur.Position())

	assert.False(cur.HasNext())
	_, err = cur.Advance()
	assert.ErrorIs(err, ErrExhaustedSequence)
	assert.Equal(1, cur.Position())
}

func TestCursor_Empty(t *testing.T) {
	assert := assert.New(t)

	cur := NewCursor("")
	assert.False(cur.HasNext())
	_, err := cur.Advance()
	assert.ErrorIs(err, ErrExhaustedSequence)
}

func TestCursor_Runes(t *testing.T) {
	assert := assert.New(t)

	cur := NewCursor("+é+")
	assert.Equal(3, cur.Len())
	cur.Advance()
	ch, _ := cur.Advance()
	assert.Equal('é', ch)
	assert.Equal(1, cur.Position())
}

// seek advances the cursor to index.
func seek(cur *Cursor, index int) {
	for cur.Position() < index {
		cur.Advance()
	}
}

func TestCursor_JumpForwardTo(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		text   string
		from   int
		target rune
		expect int
	}){
		{"simple", "+[-]+", 1, ']', 3},
		{"nested", "[[-]+]", 0, ']', 5},
		{"inner", "[[-]+]", 1, ']', 3},
		{"deep", "[[[]][]]", 0, ']', 7},
		{"plain", "+-+-", 0, '-', 1},
		{"plain_inclusive", "+-+-", 1, '-', 1},
		{"from_bracket_side", "+]", 0, ']', 1},
	}

	for _, entry := range table {
		cur := NewCursor(entry.text)
		seek(cur, entry.from)
		err := cur.JumpForwardTo(entry.target)
		assert.NoError(err, entry.name)
		assert.Equal(entry.expect, cur.Position(), entry.name)
	}
}

func TestCursor_JumpBackTo(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		text   string
		from   int
		target rune
		expect int
	}){
		{"simple", "+[-]+", 3, '[', 1},
		{"nested", "[[-]+]", 5, '[', 0},
		{"inner", "[[-]+]", 3, '[', 1},
		{"deep", "[[[]][]]", 7, '[', 0},
		{"sibling", "[][]", 3, '[', 2},
		{"plain", "+-+-", 3, '+', 2},
	}

	for _, entry := range table {
		cur := NewCursor(entry.text)
		seek(cur, entry.from)
		err := cur.JumpBackTo(entry.target)
		assert.NoError(err, entry.name)
		assert.Equal(entry.expect, cur.Position(), entry.name)
	}
}

func TestCursor_JumpUnmatched(t *testing.T) {
	assert := assert.New(t)

	cur := NewCursor("+[+")
	seek(cur, 1)
	err := cur.JumpForwardTo(']')
	assert.ErrorIs(err, ErrUnmatchedBracket)
	assert.Equal(ErrUnmatched{Char: '[', Position: 1}, err)
	assert.Equal(1, cur.Position())

	cur = NewCursor("+]+")
	seek(cur, 1)
	err = cur.JumpBackTo('[')
	assert.ErrorIs(err, ErrUnmatchedBracket)
	assert.Equal(ErrUnmatched{Char: ']', Position: 1}, err)
	assert.Equal(1, cur.Position())

	cur = NewCursor("[[]")
	seek(cur, 0)
	err = cur.JumpForwardTo(']')
	assert.ErrorIs(err, ErrUnmatchedBracket)
	assert.Equal(0, cur.Position())
}

func TestCursor_JumpCached(t *testing.T) {
	assert := assert.New(t)

	cur := NewCursor("[-]")
	cur.Advance()
	assert.NoError(cur.JumpForwardTo(']'))
	assert.Equal(2, cur.Position())
	assert.Len(cur.jumps, 1)

	assert.NoError(cur.JumpBackTo('['))
	assert.Equal(0, cur.Position())
	assert.NoError(cur.JumpForwardTo(']'))
	assert.Equal(2, cur.Position())
	assert.Len(cur.jumps, 2)
}
