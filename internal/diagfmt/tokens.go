package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"kslang/internal/source"
	"kslang/internal/token"
)

// TokenOutput is the serialized view of one token.
type TokenOutput struct {
	Kind  string  `json:"kind" msgpack:"kind"`
	Code  uint8   `json:"code" msgpack:"code"`
	Text  string  `json:"text,omitempty" msgpack:"text"`
	Value float64 `json:"value,omitempty" msgpack:"value"`
	Line  uint32  `json:"line" msgpack:"line"`
	Start uint32  `json:"start" msgpack:"start"`
	End   uint32  `json:"end" msgpack:"end"`
}

func tokenOutput(tok token.Token) TokenOutput {
	out := TokenOutput{
		Kind:  tok.Kind.String(),
		Code:  uint8(tok.Kind),
		Text:  tok.Text,
		Line:  tok.Line,
		Start: tok.Span.Start,
		End:   tok.Span.End,
	}
	if tok.Kind == token.Number {
		out.Value = tok.Val
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате.
func FormatTokensPretty(w io.Writer, tokens []token.Token, src *source.Source) error {
	for i, tok := range tokens {
		startPos, endPos := src.Resolve(tok.Span)

		if _, err := fmt.Fprintf(w, "%3d: %-12s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if !tok.IsTrivia() {
			if _, err := fmt.Fprintf(w, " %q", tok.Text); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, " at %d:%d-%d:%d\n",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensText выводит токены построчно в компактной скобочной форме:
// (Keyword, `def`), (Whitespace), (Number, 1.5), ...
func FormatTokensText(w io.Writer, tokens []token.Token) error {
	for _, tok := range tokens {
		if _, err := fmt.Fprintln(w, tok.String()); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, tokenOutput(tok))
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// FormatTokensBinary пишет токены одним msgpack-массивом — компактная форма
// для машинных потребителей. Коды Kind стабильны, см. token.Kind.
func FormatTokensBinary(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, tokenOutput(tok))
	}
	return msgpack.NewEncoder(w).Encode(output)
}
