package lexer

import (
	"kslang/internal/token"
)

// scanWhitespace съедает максимальную серию ' ', '\t', '\n', '\r'.
// Переводы строк считает Cursor.Bump.
func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' && b != '\n' && b != '\r' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Whitespace, Span: sp, Text: lx.text(sp)}
}

// scanComment съедает '#' и всё до конца строки, не включая '\n'.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Comment, Span: sp, Text: lx.text(sp)}
}
