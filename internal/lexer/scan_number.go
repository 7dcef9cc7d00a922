package lexer

import (
	"errors"
	"strconv"

	"kslang/internal/diag"
	"kslang/internal/token"
)

// Поддержка: 123, 1_000, 1.0, .5, 1e-3, 1.0e+10 (всё — float64).
// Лексема жадная: вторая десятичная точка с цифрой после неё втягивается в
// ту же лексему, так что "1.2.3" — одна лексема и одна ошибка InvalidNumber.
// Неполная экспонента не съедается: "1e" — это Number(1) + Ident(e).
func (lx *Lexer) scanNumber() (token.Token, *LexError) {
	start := lx.cursor.Mark()

digits:
	for {
		b := lx.cursor.Peek()
		switch {
		case isDec(b) || b == '_':
			lx.cursor.Bump()
		case b == '.':
			// точка входит в лексему только если дальше _*цифра
			m := lx.cursor.Mark()
			lx.cursor.Bump()
			for lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
			if !isDec(lx.cursor.Peek()) {
				lx.cursor.Reset(m)
				break digits
			}
		default:
			break digits
		}
	}

	// экспонента — только целиком: e[_]*[+-]?[_]*цифра...
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		m := lx.cursor.Mark()
		lx.cursor.Bump()
		for lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
		if s := lx.cursor.Peek(); s == '+' || s == '-' {
			lx.cursor.Bump()
		}
		for lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			lx.cursor.Reset(m)
		} else {
			for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	val, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// лексема съедена, позиция уже за ней — вызывающий может продолжать
		return token.Token{}, &LexError{
			Code: diag.LexBadNumber,
			Span: sp,
			Msg:  "invalid number literal " + strconv.Quote(text),
		}
	}
	return token.Token{Kind: token.Number, Span: sp, Text: text, Val: val}, nil
}
