package driver

import (
	"errors"
	"io"

	"kslang/internal/diag"
	"kslang/internal/lexer"
	"kslang/internal/source"
	"kslang/internal/token"
)

// DefaultMaxDiagnostics bounds the Bag when the caller passes 0.
const DefaultMaxDiagnostics = 100

// Result is one finished tokenization: the normalized buffer the spans
// index into, every token in order (Whitespace/Comment included), and every
// lexical error. Ошибки не останавливают проход — всё накапливается.
type Result struct {
	Source   *source.Source
	Interner *source.Interner
	Symbols  map[string][]source.Span
	Tokens   []token.Token
	Errors   []lexer.LexError
	Bag      *diag.Bag
}

// Text returns the buffer token spans refer to.
func (r *Result) Text() []byte {
	return r.Source.Text()
}

// ErrorCount returns the number of lexical errors encountered.
func (r *Result) ErrorCount() int {
	return len(r.Errors)
}

// Ok reports whether the whole input tokenized without lexical errors.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

// drain прогоняет лексер до Done, собирая токены и ошибки.
func drain(src *source.Source, maxDiagnostics int) *Result {
	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}
	bag := diag.NewBag(maxDiagnostics)
	interner := source.NewInterner()
	lx := lexer.New(src, lexer.Options{Interner: interner})

	res := &Result{
		Source:   src,
		Interner: interner,
		Bag:      bag,
	}
	for {
		tok, err := lx.Next()
		if err != nil {
			if errors.Is(err, lexer.Done) {
				break
			}
			var lexErr *lexer.LexError
			if errors.As(err, &lexErr) {
				res.Errors = append(res.Errors, *lexErr)
				diag.ReportError(diag.BagReporter{Bag: bag}, lexErr.Code, lexErr.Span, lexErr.Msg)
				continue
			}
			// лексер не возвращает других ошибок
			break
		}
		res.Tokens = append(res.Tokens, tok)
	}
	res.Symbols = lx.Symbols()
	return res
}

// Tokenize drains a lexer over an already-constructed Source.
func Tokenize(src *source.Source, maxDiagnostics int) *Result {
	return drain(src, maxDiagnostics)
}

// LexAll tokenizes raw bytes as a String-kind source and materializes the
// full ordered sequence. It never stops early on a lexical error.
func LexAll(text []byte, maxDiagnostics int) (*Result, error) {
	src, err := source.New(source.KindString, text)
	if err != nil {
		return nil, err
	}
	return drain(src, maxDiagnostics), nil
}

// TokenizeString tokenizes s as a String-kind source.
func TokenizeString(s string, maxDiagnostics int) (*Result, error) {
	return LexAll([]byte(s), maxDiagnostics)
}

// TokenizeStdin drains r as a Stdin-kind source and tokenizes it.
func TokenizeStdin(r io.Reader, maxDiagnostics int) (*Result, error) {
	src, err := source.FromStdin(r)
	if err != nil {
		return nil, err
	}
	return drain(src, maxDiagnostics), nil
}

// TokenizeFile loads path as a File-kind source (line-join normalized) and
// tokenizes it.
func TokenizeFile(path string, maxDiagnostics int) (*Result, error) {
	src, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	return drain(src, maxDiagnostics), nil
}
