package lexer

import (
	"errors"
	"fmt"

	"kslang/internal/diag"
	"kslang/internal/source"
)

// Done is returned by Next after the source is exhausted. Clean exhaustion,
// not a failure: calling Next again keeps returning Done without moving the
// cursor.
var Done = errors.New("lexer: no more tokens")

// LexError is a recoverable tokenization failure tied to one span.
// The lexer's position has already advanced past the offending bytes, so
// the caller may keep calling Next (skip-and-continue) or stop.
type LexError struct {
	Code diag.Code
	Span source.Span
	Line uint32
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at %d:%s: %s", e.Code, e.Line, e.Span, e.Msg)
}
