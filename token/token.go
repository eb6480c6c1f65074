// Package token provides the value produced by Parser.Token(): a parsed
// value paired with the source slice it came from, plus a line/column
// lookup for error reporting.
package token

import (
	"fmt"
	"strings"

	"github.com/ianlewis/runeio"
)

// Token wraps a parsed value together with the region of the input
// buffer it was parsed from. Start and Stop are rune offsets into
// Buffer, with 0 <= Start <= Stop <= len([]rune(Buffer)).
type Token struct {
	Value  any
	Buffer string
	Start  int
	Stop   int
}

// New builds a Token. It does not validate Start/Stop against Buffer;
// callers (the Parser.Token() combinator) are expected to supply
// consistent values.
func New(value any, buffer string, start, stop int) Token {
	return Token{Value: value, Buffer: buffer, Start: start, Stop: stop}
}

// Input returns the slice of the buffer the token was parsed from.
func (t Token) Input() string {
	runes := []rune(t.Buffer)
	if t.Start < 0 || t.Stop > len(runes) || t.Start > t.Stop {
		return ""
	}
	return string(runes[t.Start:t.Stop])
}

// Equal reports structural equality over (Value, Start, Stop), per the
// spec: token identity does not depend on which buffer string instance
// backs it, only its content and span.
func (t Token) Equal(other Token) bool {
	return t.Value == other.Value && t.Start == other.Start && t.Stop == other.Stop
}

func (t Token) String() string {
	return fmt.Sprintf("%v[%d:%d]=%q", t.Value, t.Start, t.Stop, t.Input())
}

// LineAndColumnOf returns the 1-based (line, column) of the given rune
// position within buffer. A line feed (`\n`), a carriage return not
// followed by a line feed, and a carriage-return-line-feed pair
// (`\r\n`) are each counted as exactly one line terminator.
//
// The scan is built on github.com/ianlewis/runeio's rune reader rather
// than raw string indexing, so LineAndColumnOf composes the same way a
// streaming lexer would compute position, even though Token itself
// works over an in-memory buffer (the spec's Non-goal on incremental
// parsing only rules out streaming evaluation, not streaming position
// bookkeeping).
func LineAndColumnOf(buffer string, position int) (line, column int) {
	line, column = 1, 1
	if position <= 0 {
		return line, column
	}

	r := runeio.NewReader(strings.NewReader(buffer))

	// Read one rune of lookahead past position so a \r sitting exactly
	// at the boundary can still be told apart from a following \n.
	runes := make([]rune, 0, position+1)
	for i := 0; i <= position; i++ {
		c, _, err := r.ReadRune()
		if err != nil {
			break
		}
		runes = append(runes, c)
	}

	i := 0
	for i < position && i < len(runes) {
		switch runes[i] {
		case '\n':
			line++
			column = 1
			i++
		case '\r':
			line++
			column = 1
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i += 2
			} else {
				i++
			}
		default:
			column++
			i++
		}
	}

	return line, column
}
