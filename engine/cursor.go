package engine

// bracketPair maps a bracket to the bracket that opens a nested level when
// scanning towards it.
var bracketPair = map[rune]rune{
	']': '[',
	'[': ']',
}

type jumpKey struct {
	from   int
	target rune
}

// Cursor is a pull based reader over program text, with bracket directed
// relocation.
type Cursor struct {
	text     []rune
	position int

	jumps map[jumpKey]int // Resolved jump targets.
}

// NewCursor creates a cursor positioned before the first character of text.
func NewCursor(text string) *Cursor {
	return &Cursor{
		text:     []rune(text),
		position: -1,
		jumps:    map[jumpKey]int{},
	}
}

// HasNext returns true if a character remains after the current position.
func (cur *Cursor) HasNext() bool {
	return cur.position+1 < len(cur.text)
}

// Advance moves to the next character and returns it.
func (cur *Cursor) Advance() (ch rune, err error) {
	if !cur.HasNext() {
		err = ErrExhaustedSequence
		return
	}

	cur.position++
	ch = cur.text[cur.position]
	return
}

// Position returns the index of the most recently pulled character, or -1.
func (cur *Cursor) Position() int {
	return cur.position
}

// Len returns the number of characters in the program text.
func (cur *Cursor) Len() int {
	return len(cur.text)
}

// Text returns the program text.
func (cur *Cursor) Text() string {
	return string(cur.text)
}

// JumpForwardTo moves the position forward, inclusive of the current
// position, to the matching target.
func (cur *Cursor) JumpForwardTo(target rune) error {
	return cur.jump(target, 1)
}

// JumpBackTo moves the position backwards, inclusive of the current
// position, to the matching target.
func (cur *Cursor) JumpBackTo(target rune) error {
	return cur.jump(target, -1)
}

func (cur *Cursor) jump(target rune, dir int) (err error) {
	key := jumpKey{from: cur.position, target: target}

	to, ok := cur.jumps[key]
	if !ok {
		to, ok = cur.scan(cur.position, target, dir)
		if !ok {
			ch := target
			if cur.position >= 0 && cur.position < len(cur.text) {
				ch = cur.text[cur.position]
			}
			err = ErrUnmatched{Char: ch, Position: cur.position}
			return
		}
		cur.jumps[key] = to
	}

	cur.position = to
	return
}

// scan finds target starting at from, moving by dir. For brackets, each
// partner bracket seen along the way must be balanced first.
func (cur *Cursor) scan(from int, target rune, dir int) (index int, ok bool) {
	partner, paired := bracketPair[target]

	if from < 0 && dir > 0 {
		from = 0
	}

	depth := 0
	for index = from; index >= 0 && index < len(cur.text); index += dir {
		switch cur.text[index] {
		case target:
			depth--
			if depth <= 0 {
				ok = true
				return
			}
		case partner:
			if paired {
				depth++
			}
		}
	}

	return
}
