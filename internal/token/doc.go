// Package token defines lexical token kinds for the kslang frontend.
// Invariants:
//   - Token.Text is exactly the lexeme sliced from the source buffer.
//   - Token.Span matches Text (Start..End), Token.Line is where it starts.
//   - Kind codes are stable integers; consumers across a process boundary
//     must validate incoming codes with Kind.IsValid.
//   - Whitespace and Comment are ordinary tokens, never silently dropped.
package token
