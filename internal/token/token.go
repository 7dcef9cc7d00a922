package token

import (
	"fmt"

	"kslang/internal/source"
)

// Token is one classified lexeme: kind, payload, byte span, and the
// 1-based line where the lexeme starts. Tokens are independent values with
// no back-reference into the lexer.
type Token struct {
	Kind Kind
	Span source.Span
	Line uint32
	Text string          // ровно исходный срез лексемы
	Val  float64         // только для Number
	Sym  source.StringID // только для Ident
}

// Number returns the parsed numeric payload. Zero for non-Number kinds.
func (t Token) Number() float64 {
	if t.Kind != Number {
		return 0
	}
	return t.Val
}

// IdentID returns the interned identifier payload, or NoStringID.
func (t Token) IdentID() source.StringID {
	if t.Kind != Ident {
		return source.NoStringID
	}
	return t.Sym
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsOperator reports whether the token is an operator.
func (t Token) IsOperator() bool { return t.Kind.IsOperator() }

// IsPunctuation reports whether the token is punctuation.
func (t Token) IsPunctuation() bool { return t.Kind.IsPunctuation() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsTrivia reports whether the token is whitespace or a comment.
func (t Token) IsTrivia() bool { return t.Kind.IsTrivia() }

func (t Token) String() string {
	switch t.Kind {
	case Whitespace, Comment:
		return fmt.Sprintf("(%s)", t.Kind)
	case Number:
		return fmt.Sprintf("(%s, %v)", t.Kind, t.Val)
	default:
		return fmt.Sprintf("(%s, `%s`)", t.Kind, t.Text)
	}
}
