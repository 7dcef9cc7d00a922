package driver_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"kslang/internal/diag"
	"kslang/internal/driver"
	"kslang/internal/source"
	"kslang/internal/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestLexAll_Ordered(t *testing.T) {
	res, err := driver.LexAll([]byte("def f(x) x + 1;"), 0)
	if err != nil {
		t.Fatalf("LexAll: %v", err)
	}
	if !res.Ok() {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	want := []token.Kind{
		token.Def, token.Whitespace, token.Ident, token.OpenParen, token.Ident,
		token.CloseParen, token.Whitespace, token.Ident, token.Whitespace,
		token.Add, token.Whitespace, token.Number, token.Semicolon,
	}
	if diff := cmp.Diff(want, kinds(res.Tokens)); diff != "" {
		t.Fatalf("kinds (-want +got):\n%s", diff)
	}
	// спаны строго возрастают
	var off uint32
	for _, tok := range res.Tokens {
		if tok.Span.Start != off {
			t.Fatalf("non-contiguous span at %d: %v", off, tok.Span)
		}
		off = tok.Span.End
	}
}

func TestLexAll_NeverStopsOnError(t *testing.T) {
	res, err := driver.LexAll([]byte("a @ b $ c"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.ErrorCount(); got != 2 {
		t.Fatalf("ErrorCount = %d, want 2", got)
	}
	if res.Ok() {
		t.Error("Ok must be false with errors present")
	}
	// валидные токены вокруг ошибок сохранены
	var idents int
	for _, tok := range res.Tokens {
		if tok.Kind == token.Ident {
			idents++
		}
	}
	if idents != 3 {
		t.Errorf("idents = %d, want 3", idents)
	}
	// ошибки отражены и в Bag
	if got := res.Bag.ErrorCount(); got != 2 {
		t.Errorf("Bag.ErrorCount = %d, want 2", got)
	}
}

func TestLexAll_EmptyInput(t *testing.T) {
	if _, err := driver.LexAll(nil, 0); !errors.Is(err, source.ErrEmptyInput) {
		t.Errorf("err = %v, want ErrEmptyInput", err)
	}
}

func TestTokenizeString_Symbols(t *testing.T) {
	res, err := driver.TokenizeString("fib(fib(n))", 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(res.Symbols["fib"]); got != 2 {
		t.Errorf("fib spans = %d, want 2", got)
	}
	if got := res.Interner.Len(); got != 3 { // "" + fib + n
		t.Errorf("interner Len = %d, want 3", got)
	}
}

func TestTokenizeStdin(t *testing.T) {
	res, err := driver.TokenizeStdin(strings.NewReader("1 + 2"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Source.Kind != source.KindStdin {
		t.Errorf("Kind = %v, want KindStdin", res.Source.Kind)
	}
	want := []token.Kind{token.Number, token.Whitespace, token.Add, token.Whitespace, token.Number}
	if diff := cmp.Diff(want, kinds(res.Tokens)); diff != "" {
		t.Fatalf("kinds (-want +got):\n%s", diff)
	}
}

func TestTokenizeFile_Normalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.ks")
	// CRLF и отсутствие финального перевода строки
	if err := os.WriteFile(path, []byte("def a;\r\nextern b;"), 0o644); err != nil {
		t.Fatal(err)
	}
	res, err := driver.TokenizeFile(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(res.Text()); got != "def a;\nextern b;\n" {
		t.Errorf("normalized text = %q", got)
	}
	if !res.Ok() {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	last := res.Tokens[len(res.Tokens)-1]
	if last.Kind != token.Whitespace {
		t.Errorf("final token = %v, want trailing Whitespace from the added terminator", last.Kind)
	}
}

func TestMaxDiagnosticsBoundsBag(t *testing.T) {
	// 5 недопустимых символов, лимит 3 — ошибки считаются все, Bag усечён
	res, err := driver.TokenizeString("@ @ @ @ @", 3)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.ErrorCount(); got != 5 {
		t.Errorf("ErrorCount = %d, want 5", got)
	}
	if got := res.Bag.Len(); got != 3 {
		t.Errorf("Bag.Len = %d, want 3 (capped)", got)
	}
	if res.Bag.Cap() != 3 {
		t.Errorf("Bag.Cap = %d", res.Bag.Cap())
	}
}

func TestErrorCodesInBag(t *testing.T) {
	res, err := driver.TokenizeString("1.2.3", 0)
	if err != nil {
		t.Fatal(err)
	}
	items := res.Bag.Items()
	if len(items) != 1 {
		t.Fatalf("bag items = %d, want 1", len(items))
	}
	if items[0].Code != diag.LexBadNumber {
		t.Errorf("code = %v, want LexBadNumber", items[0].Code)
	}
	if items[0].Severity != diag.SevError {
		t.Errorf("severity = %v, want SevError", items[0].Severity)
	}
}
