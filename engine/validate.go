package engine

// Validate checks a program without running it. It reports the first
// character outside the instruction set, or the first bracket without a
// partner.
func Validate(program string) (err error) {
	text := []rune(program)

	var open []int
	for n, ch := range text {
		op, ok := Classify(ch)
		if !ok {
			err = ErrInvalid{Char: ch, Position: n, Text: program}
			return
		}
		switch op {
		case OP_LOOP:
			open = append(open, n)
		case OP_END:
			if len(open) == 0 {
				err = ErrUnmatched{Char: ch, Position: n}
				return
			}
			open = open[:len(open)-1]
		}
	}

	if len(open) != 0 {
		err = ErrUnmatched{Char: OP_LOOP.Char(), Position: open[0]}
	}

	return
}
