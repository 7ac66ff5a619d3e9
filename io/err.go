package io

import (
	"errors"

	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	// Sink errors
	ErrNoInput  = errors.New(f("input not attached"))
	ErrNoOutput = errors.New(f("output not attached"))
)
