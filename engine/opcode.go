package engine

// Opcode is one of the eight instructions.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_RIGHT  = Opcode(0) // >
	OP_LEFT   = Opcode(1) // <
	OP_INC    = Opcode(2) // +
	OP_DEC    = Opcode(3) // -
	OP_OUTPUT = Opcode(4) // .
	OP_INPUT  = Opcode(5) // ,
	OP_LOOP   = Opcode(6) // [
	OP_END    = Opcode(7) // ]
)

// opcodeMap maps instruction characters to opcodes.
var opcodeMap = map[rune]Opcode{
	'>': OP_RIGHT,
	'<': OP_LEFT,
	'+': OP_INC,
	'-': OP_DEC,
	'.': OP_OUTPUT,
	',': OP_INPUT,
	'[': OP_LOOP,
	']': OP_END,
}

// Classify returns the opcode for an instruction character.
func Classify(ch rune) (op Opcode, ok bool) {
	op, ok = opcodeMap[ch]
	return
}

// Char returns the instruction character of the opcode.
func (op Opcode) Char() rune {
	return rune(op.String()[0])
}

// EOFMode selects what the ',' instruction stores at end of input.
type EOFMode int

//go:generate go tool stringer -linecomment -type=EOFMode
const (
	EOF_NEG_ONE   = EOFMode(0) // neg_one
	EOF_ZERO      = EOFMode(1) // zero
	EOF_UNCHANGED = EOFMode(2) // unchanged
)

// ParseEOFMode parses the name of an EOFMode.
func ParseEOFMode(name string) (mode EOFMode, err error) {
	for mode = EOF_NEG_ONE; mode <= EOF_UNCHANGED; mode++ {
		if mode.String() == name {
			return
		}
	}

	mode = EOF_NEG_ONE
	err = ErrEOFMode
	return
}
