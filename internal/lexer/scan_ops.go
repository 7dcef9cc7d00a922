package lexer

import (
	"strconv"

	"kslang/internal/diag"
	"kslang/internal/token"
)

// Жадность: сначала 2-символьные (==, !=, >=, <=, &&, ||), затем
// 1-символьные. Одиночные '&' и '|' не являются операторами — ошибка.
func (lx *Lexer) scanOperatorOrPunct() (token.Token, *LexError) {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) (token.Token, *LexError) {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}, nil
	}

	// сравнения и логика И/ИЛИ
	switch {
	case lx.try2('=', '='):
		return emit(token.Eq)
	case lx.try2('!', '='):
		return emit(token.Ne)
	case lx.try2('>', '='):
		return emit(token.Ge)
	case lx.try2('<', '='):
		return emit(token.Le)
	case lx.try2('&', '&'):
		return emit(token.And)
	case lx.try2('|', '|'):
		return emit(token.Or)
	}

	// неизвестная не-ASCII руна — съедаем целиком, span на всю руну
	if lx.cursor.Peek() >= utf8RuneSelf {
		lx.bumpRune()
		return token.Token{}, lx.unknownChar(start)
	}

	// односимвольные
	switch lx.cursor.Bump() {
	case '=':
		return emit(token.Assign)
	case '!':
		return emit(token.Not)
	case '>':
		return emit(token.Gt)
	case '<':
		return emit(token.Lt)
	case '+':
		return emit(token.Add)
	case '-':
		return emit(token.Sub)
	case '*':
		return emit(token.Mul)
	case '/':
		return emit(token.Div)
	case '%':
		return emit(token.Mod)
	case '(':
		return emit(token.OpenParen)
	case ')':
		return emit(token.CloseParen)
	case ';':
		return emit(token.Semicolon)
	default:
		return token.Token{}, lx.unknownChar(start)
	}
}

func (lx *Lexer) unknownChar(start Mark) *LexError {
	sp := lx.cursor.SpanFrom(start)
	return &LexError{
		Code: diag.LexUnknownChar,
		Span: sp,
		Msg:  "unexpected character " + strconv.Quote(lx.text(sp)),
	}
}
