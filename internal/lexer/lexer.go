package lexer

import (
	"kslang/internal/source"
	"kslang/internal/token"
)

// Lexer is the state machine turning one Source into a token stream.
// Ровно один Source на Lexer; буфер источника только читается.
type Lexer struct {
	src     *source.Source
	cursor  Cursor
	opts    Options
	symbols map[string][]source.Span // все вхождения идентификаторов
}

// New создаёт лексер, привязанный к src.
func New(src *source.Source, opts Options) *Lexer {
	if opts.Interner == nil {
		opts.Interner = source.NewInterner()
	}
	return &Lexer{
		src:     src,
		cursor:  NewCursor(src),
		opts:    opts,
		symbols: make(map[string][]source.Span),
	}
}

// Next returns the next token: skip nothing, classify, consume the maximal
// lexeme, emit the span. Whitespace and Comment are ordinary tokens;
// filtering is the caller's policy.
//
// After exhaustion Next returns Done, repeatably. A *LexError reports a
// recoverable failure; the cursor has already moved past the bad bytes.
func (lx *Lexer) Next() (token.Token, error) {
	if lx.cursor.EOF() {
		return token.Token{}, Done
	}

	// Строка, на которой токен начинается: переводы строк внутри
	// whitespace/comment двигают счётчик, а токену нужен старт.
	startLine := lx.cursor.Line

	var tok token.Token
	var lexErr *LexError

	ch := lx.cursor.Peek()
	switch {
	case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
		tok = lx.scanWhitespace()

	case ch == '#':
		tok = lx.scanComment()

	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		tok, lexErr = lx.scanIdentOrKeyword()

	case isDec(ch) || (ch == '.' && lx.isNumberAfterDot()):
		tok, lexErr = lx.scanNumber()

	default:
		tok, lexErr = lx.scanOperatorOrPunct()
	}

	if lexErr != nil {
		lexErr.Line = startLine
		return token.Token{}, lexErr
	}
	tok.Line = startLine
	return tok, nil
}

// Interner returns the identifier table the lexer interns into.
func (lx *Lexer) Interner() *source.Interner {
	return lx.opts.Interner
}

// Symbols returns every identifier seen so far with all its spans.
// Карта живёт внутри лексера; вызывающий не должен её мутировать.
func (lx *Lexer) Symbols() map[string][]source.Span {
	return lx.symbols
}

// Offset reports the current byte offset; monotone across Next calls.
func (lx *Lexer) Offset() uint32 {
	return lx.cursor.Off
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.src.Content[sp.Start:sp.End])
}
