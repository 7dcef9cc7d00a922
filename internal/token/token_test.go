package token_test

import (
	"testing"

	"kslang/internal/source"
	"kslang/internal/token"
)

func TestTokenPayloads(t *testing.T) {
	num := token.Token{Kind: token.Number, Text: "1.5", Val: 1.5}
	if num.Number() != 1.5 {
		t.Errorf("Number() = %v", num.Number())
	}
	if num.IdentID() != source.NoStringID {
		t.Error("Number must carry NoStringID")
	}

	id := token.Token{Kind: token.Ident, Text: "fib", Sym: source.StringID(3)}
	if id.IdentID() != source.StringID(3) {
		t.Errorf("IdentID() = %v", id.IdentID())
	}
	if id.Number() != 0 {
		t.Error("Ident must have zero numeric payload")
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  token.Token
		want string
	}{
		{token.Token{Kind: token.Whitespace, Text: "  "}, "(Whitespace)"},
		{token.Token{Kind: token.Comment, Text: "# hi"}, "(Comment)"},
		{token.Token{Kind: token.Number, Text: "1.5", Val: 1.5}, "(Number, 1.5)"},
		{token.Token{Kind: token.Ident, Text: "fib"}, "(Ident, `fib`)"},
		{token.Token{Kind: token.Def, Text: "def"}, "(Keyword, `def`)"},
		{token.Token{Kind: token.Le, Text: "<="}, "(Operator, `<=`)"},
		{token.Token{Kind: token.Semicolon, Text: ";"}, "(Punctuation, `;`)"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
