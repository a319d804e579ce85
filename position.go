package reader

import "fmt"

// Position is a human-readable location in the scanned text. Both coordinates
// are 1-based; Column counts characters since the last newline, not bytes, so
// it stays meaningful for multi-byte input.
type Position struct {
	Line, Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
