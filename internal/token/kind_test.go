package token_test

import (
	"testing"

	"kslang/internal/token"
)

// Числовые коды видов — контракт совместимости: они видны внешним
// потребителям (binary-формат, дисковый кэш) и не должны дрейфовать.
func TestKindCodesAreStable(t *testing.T) {
	want := map[token.Kind]uint8{
		token.Whitespace: 0,
		token.Comment:    1,
		token.Ident:      2,
		token.Number:     3,
		token.Def:        4,
		token.Else:       5,
		token.Extern:     6,
		token.For:        7,
		token.If:         8,
		token.Then:       9,
		token.Assign:     10,
		token.Eq:         11,
		token.Ne:         12,
		token.Gt:         13,
		token.Ge:         14,
		token.Lt:         15,
		token.Le:         16,
		token.Add:        17,
		token.Sub:        18,
		token.Mul:        19,
		token.Div:        20,
		token.Mod:        21,
		token.And:        22,
		token.Or:         23,
		token.Not:        24,
		token.OpenParen:  25,
		token.CloseParen: 26,
		token.Semicolon:  27,
	}
	for kind, code := range want {
		if uint8(kind) != code {
			t.Errorf("%v: code = %d, want %d", kind.String(), uint8(kind), code)
		}
	}
	if len(want) != 28 {
		t.Fatalf("expected 28 kinds, table has %d", len(want))
	}
}

func TestKindClassification(t *testing.T) {
	for k := token.Whitespace; k <= token.Semicolon; k++ {
		kw := k >= token.Def && k <= token.Then
		op := k >= token.Assign && k <= token.Not
		punct := k >= token.OpenParen && k <= token.Semicolon
		trivia := k == token.Whitespace || k == token.Comment

		if k.IsKeyword() != kw {
			t.Errorf("kind %d: IsKeyword = %v, want %v", uint8(k), k.IsKeyword(), kw)
		}
		if k.IsOperator() != op {
			t.Errorf("kind %d: IsOperator = %v, want %v", uint8(k), k.IsOperator(), op)
		}
		if k.IsPunctuation() != punct {
			t.Errorf("kind %d: IsPunctuation = %v, want %v", uint8(k), k.IsPunctuation(), punct)
		}
		if k.IsTrivia() != trivia {
			t.Errorf("kind %d: IsTrivia = %v, want %v", uint8(k), k.IsTrivia(), trivia)
		}
		// категории не пересекаются
		count := 0
		for _, b := range []bool{kw, op, punct} {
			if b {
				count++
			}
		}
		if count > 1 {
			t.Errorf("kind %d is in more than one category", uint8(k))
		}
	}
}

func TestKindIsValid(t *testing.T) {
	if !token.Semicolon.IsValid() {
		t.Error("Semicolon must be valid")
	}
	if token.Kind(28).IsValid() {
		t.Error("code 28 must be invalid")
	}
	if token.Kind(255).IsValid() {
		t.Error("code 255 must be invalid")
	}
}

func TestKindLexeme(t *testing.T) {
	tests := []struct {
		kind token.Kind
		want string
	}{
		{token.Def, "def"},
		{token.Then, "then"},
		{token.Eq, "=="},
		{token.Le, "<="},
		{token.Or, "||"},
		{token.Semicolon, ";"},
		{token.Ident, ""},
		{token.Number, ""},
		{token.Whitespace, ""},
	}
	for _, tt := range tests {
		if got := tt.kind.Lexeme(); got != tt.want {
			t.Errorf("%v.Lexeme() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	positive := map[string]token.Kind{
		"def":    token.Def,
		"else":   token.Else,
		"extern": token.Extern,
		"for":    token.For,
		"if":     token.If,
		"then":   token.Then,
	}
	for lexeme, want := range positive {
		got, ok := token.LookupKeyword(lexeme)
		if !ok || got != want {
			t.Errorf("LookupKeyword(%q) = %v, %v; want %v, true", lexeme, got, ok, want)
		}
	}
	for _, lexeme := range []string{"", "deff", "De", "IF", "while", "ifx"} {
		if _, ok := token.LookupKeyword(lexeme); ok {
			t.Errorf("LookupKeyword(%q) matched, want miss", lexeme)
		}
	}
}
