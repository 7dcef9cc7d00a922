package lexer

import (
	"kslang/internal/source"
)

// Options configure a Lexer.
type Options struct {
	// Interner receives identifier lexemes; Ident tokens carry the
	// resulting StringID. Если nil — лексер заведёт собственный.
	Interner *source.Interner
}
