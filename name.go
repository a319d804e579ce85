package reader

// charRange is an inclusive span of code points.
type charRange struct {
	lo, hi rune
}

// Characters that may open a Name, as sorted disjoint ranges per
// https://www.w3.org/TR/xml/#NT-NameStartChar. Keeping the classes as plain
// data makes them easy to audit against the grammar.
var nameStartRanges = []charRange{
	{':', ':'},
	{'A', 'Z'},
	{'_', '_'},
	{'a', 'z'},
	{0xC0, 0xD6},
	{0xD8, 0xF6},
	{0xF8, 0x2FF},
	{0x370, 0x37D},
	{0x37F, 0x1FFF},
	{0x200C, 0x200D},
	{0x2070, 0x218F},
	{0x2C00, 0x2FEF},
	{0x3001, 0xD7FF},
	{0xF900, 0xFDCF},
	{0xFDF0, 0xFFFD},
	{0x10000, 0xEFFFF},
}

// Characters that may only continue a Name, per
// https://www.w3.org/TR/xml/#NT-NameChar.
var nameExtraRanges = []charRange{
	{'-', '-'},
	{'.', '.'},
	{'0', '9'},
	{0xB7, 0xB7},
	{0x300, 0x36F},
	{0x203F, 0x2040},
}

// inRanges relies on ranges being sorted to bail out early.
func inRanges(c rune, ranges []charRange) bool {
	for _, rr := range ranges {
		if c < rr.lo {
			return false
		}

		if c <= rr.hi {
			return true
		}
	}

	return false
}

// IsNameStartChar reports whether c may open a Name.
func IsNameStartChar(c rune) bool {
	return inRanges(c, nameStartRanges)
}

// IsNameChar reports whether c may appear in a Name after the first
// character.
func IsNameChar(c rune) bool {
	return IsNameStartChar(c) || inRanges(c, nameExtraRanges)
}

// ReadNameStartChar consumes and returns the next rune if it may open a
// Name. Otherwise it reports false and consumes nothing.
func (r *Reader) ReadNameStartChar() (rune, bool) {
	c, ok := r.Peek()
	if !ok || !IsNameStartChar(c) {
		return 0, false
	}

	r.Next()

	return c, true
}

// ReadNameChar consumes and returns the next rune if it may continue a
// Name. Otherwise it reports false and consumes nothing.
func (r *Reader) ReadNameChar() (rune, bool) {
	c, ok := r.Peek()
	if !ok || !IsNameChar(c) {
		return 0, false
	}

	r.Next()

	return c, true
}

// ReadName consumes one Name per https://www.w3.org/TR/xml/#NT-Name: a
// start character followed by any number of continuation characters. It
// reports false, consuming nothing, when the first rune already fails the
// start class.
func (r *Reader) ReadName() (string, bool) {
	return r.Capture(func(r *Reader) {
		if _, ok := r.ReadNameStartChar(); !ok {
			return
		}

		for {
			if _, ok := r.ReadNameChar(); !ok {
				break
			}
		}
	})
}

// IsValidName reports whether s consists of exactly one Name.
func IsValidName(s string) bool {
	r := NewReader(s)

	name, ok := r.ReadName()

	return ok && name == s
}
