package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"kslang/internal/source"
)

// Cursor представляет собой позицию в буфере источника.
// Off monotonically advances; Line is 1-based and counts every consumed '\n'.
type Cursor struct {
	Src *source.Source
	Off uint32
	// Limit is the exclusive upper bound for Off; set to len(Src.Content).
	Limit uint32
	Line  uint32
}

// NewCursor creates a cursor positioned at the start of the source.
func NewCursor(src *source.Source) Cursor {
	limit, err := safecast.Conv[uint32](len(src.Content))
	if err != nil {
		panic(fmt.Errorf("len source content overflow: %w", err))
	}
	return Cursor{
		Src:   src,
		Off:   0,
		Limit: limit,
		Line:  1,
	}
}

// EOF проверяет, достигнут ли конец буфера.
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek читает текущий байт, если есть, иначе возвращает 0.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Src.Content[c.Off]
}

// Peek2 читает текущий и следующий байт, если есть, иначе возвращает 0, 0, false.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.Limit {
		return 0, 0, false
	}
	return c.Src.Content[c.Off], c.Src.Content[c.Off+1], true
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт.
// Считает строки: '\n' инкрементирует Line.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Src.Content[c.Off]
	c.Off++
	if b == '\n' {
		c.Line++
	}
	return b
}

// Eat consumes the next byte if it matches the provided byte.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.Src.Content[c.Off] == b {
		c.Bump()
		return true
	}
	return false
}

// Mark это метка, чтобы быстро получать Span читаемого фрагмента
// и откатываться при спекулятивном сканировании.
type Mark struct {
	off  uint32
	line uint32
}

// Mark сохраняет текущую позицию курсора.
func (c *Cursor) Mark() Mark {
	return Mark{off: c.Off, line: c.Line}
}

// SpanFrom получает Span для фрагмента, начиная с метки.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{Start: m.off, End: c.Off}
}

// Reset возвращает курсор назад к метке.
func (c *Cursor) Reset(m Mark) {
	c.Off = m.off
	c.Line = m.line
}
