// Package reader provides a forward-only scanner over an in-memory text
// span: one-rune lookahead, line/column/offset tracking, predicate-driven
// consumption, substring capture, and XML Name scanning.
//
// Every operation reports "no match" as a comma-ok false result and leaves
// the position untouched when it fails; there are no error values. A Reader
// is a single mutable cursor and is not safe for concurrent use.
package reader

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// Reader scans text from start to end, one rune at a time. It never rewinds:
// each operation either consumes a well-defined run of runes or consumes
// nothing.
type Reader struct {
	text string

	line   int
	column int
	offset int // bytes into text, so captures can slice it directly
}

// NewReader returns a Reader positioned at the start of text. The text must
// already be decoded; no encoding detection is performed.
func NewReader(text string) *Reader {
	return &Reader{
		text:   text,
		line:   1,
		column: 1,
		offset: 0,
	}
}

// Next consumes and returns the next rune, or reports false once the input
// is exhausted. Consuming a newline moves the position to the start of the
// next line; any other rune advances the column by one. The offset always
// advances by the encoded size of the rune.
func (r *Reader) Next() (rune, bool) {
	if r.offset >= len(r.text) {
		return 0, false
	}

	c, size := utf8.DecodeRuneInString(r.text[r.offset:])
	r.offset += size

	if c == '\n' {
		r.line++
		r.column = 1
	} else {
		r.column++
	}

	return c, true
}

// Peek returns the next rune without consuming it. It has no side effects.
func (r *Reader) Peek() (rune, bool) {
	if r.offset >= len(r.text) {
		return 0, false
	}

	c, _ := utf8.DecodeRuneInString(r.text[r.offset:])

	return c, true
}

// Position returns the line and column immediately after the most recently
// consumed rune, or 1:1 before anything was consumed.
func (r *Reader) Position() Position {
	return Position{Line: r.line, Column: r.column}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.offset
}

// Runes returns a consuming iterator over the remaining text. Breaking out
// of the loop leaves the Reader just after the last rune it yielded, so
// scanning can continue with any other operation.
func (r *Reader) Runes() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for {
			c, ok := r.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// ConsumeWhile advances past every rune for which check returns true,
// stopping at the first rune that fails or at the end of the input. The
// callback only sees the rune itself, never the Reader, so it cannot move
// the cursor mid-scan.
func (r *Reader) ConsumeWhile(check func(rune) bool) {
	for {
		c, ok := r.Peek()
		if !ok || !check(c) {
			break
		}

		r.Next()
	}
}

// ConsumeAny advances past every rune that occurs in chars.
func (r *Reader) ConsumeAny(chars string) {
	r.ConsumeWhile(func(c rune) bool { return strings.ContainsRune(chars, c) })
}

// ConsumeUntilChar advances up to, but not including, the next occurrence of
// target. Without one it consumes the rest of the input.
func (r *Reader) ConsumeUntilChar(target rune) {
	r.ConsumeWhile(func(c rune) bool { return c != target })
}

// ConsumeDigits advances past ASCII digits.
func (r *Reader) ConsumeDigits() {
	r.ConsumeWhile(func(c rune) bool { return c >= '0' && c <= '9' })
}

// ConsumeWhitespace advances past spaces, tabs and newlines.
func (r *Reader) ConsumeWhitespace() {
	r.ConsumeAny(" \t\n")
}

// ReadChar consumes and returns the next rune if it equals target.
// Otherwise it reports false and consumes nothing.
func (r *Reader) ReadChar(target rune) (rune, bool) {
	c, ok := r.Peek()
	if !ok || c != target {
		return 0, false
	}

	r.Next()

	return c, true
}

// Capture runs block and returns the substring it consumed as a direct
// slice of the original text, without copying. If block did not advance the
// Reader, Capture reports false. The block has full access to the Reader
// and may nest any scanning operation, including another Capture.
func (r *Reader) Capture(block func(*Reader)) (string, bool) {
	start := r.offset
	block(r)
	end := r.offset

	if end > start {
		return r.text[start:end], true
	}

	return "", false
}
