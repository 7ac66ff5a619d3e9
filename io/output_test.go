package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		value  byte
		expect string
	}){
		{65, " 65[A]"},
		{0, "  0[.]"},
		{10, " 10[.]"},
		{' ', " 32[ ]"},
		{'~', "126[~]"},
	}

	for _, entry := range table {
		assert.Equal(entry.expect, Format(entry.value))
	}
}

func TestDisplay(t *testing.T) {
	assert := assert.New(t)

	buff := &bytes.Buffer{}
	out := &Display{Output: buff}

	assert.NoError(out.Emit('H'))
	assert.NoError(out.Emit('i'))
	assert.Equal(" 72[H]\n105[i]\n", buff.String())

	assert.ErrorIs((&Display{}).Emit(0), ErrNoOutput)
}

func TestRaw(t *testing.T) {
	assert := assert.New(t)

	buff := &bytes.Buffer{}
	out := &Raw{Output: buff}

	for _, value := range []byte("ok\n") {
		assert.NoError(out.Emit(value))
	}
	assert.Equal([]byte("ok\n"), buff.Bytes())

	assert.ErrorIs((&Raw{}).Emit(0), ErrNoOutput)
}

func TestText(t *testing.T) {
	assert := assert.New(t)

	out := &Text{}
	assert.Equal("", out.String())

	out.Emit('a')
	out.Emit(0xff)
	assert.Equal("a\xff", out.String())
	assert.Equal([]byte{'a', 0xff}, out.Bytes())
}
