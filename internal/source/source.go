package source

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

var (
	// ErrEmptyInput is returned when a Source would own zero bytes of text.
	ErrEmptyInput = errors.New("source: empty input")
	// ErrInvalidUTF8 is returned when the input is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("source: invalid UTF-8")
)

// Source owns one validated input buffer plus its provenance.
// Content всегда валидный UTF-8 и никогда не пустой; после конструктора
// буфер не мутируется.
type Source struct {
	Kind    Kind
	Path    string // только для KindFile
	Content []byte
	LineIdx []uint32 // байтовые позиции '\n' в Content
	Hash    [32]byte
}

// New validates raw text and constructs a Source of the given kind.
// Emptiness is judged on the raw input: a zero-length buffer is an error,
// whitespace-only input is fine.
func New(kind Kind, text []byte) (*Source, error) {
	if len(text) == 0 {
		return nil, ErrEmptyInput
	}
	if !utf8.Valid(text) {
		return nil, ErrInvalidUTF8
	}
	// собственная копия, чтобы не зависеть от буфера вызывающего
	content := bytes.Clone(text)
	return &Source{
		Kind:    kind,
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
	}, nil
}

// FromString constructs a String-kind source from s.
func FromString(s string) (*Source, error) {
	return New(KindString, []byte(s))
}

// FromStdin drains r (standard input) and constructs a Stdin-kind source.
func FromStdin(r io.Reader) (*Source, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("source: read stdin: %w", err)
	}
	return New(KindStdin, text)
}

// Load reads a file and constructs a File-kind source.
// The buffer is rebuilt line by line with '\n' separators: CRLF collapses to
// '\n' and the last line always gains a terminator. Byte offsets therefore
// refer to this normalized buffer, not to the raw file.
func Load(path string) (*Source, error) {
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw, _ = removeBOM(raw)

	src, err := New(KindFile, joinLines(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	src.Path = path
	return src, nil
}

// Text returns the owned buffer. Read-only; stable for the Source's lifetime.
func (s *Source) Text() []byte {
	return s.Content
}

// Origin returns a diagnostic label for the source: the path for files,
// the kind name otherwise.
func (s *Source) Origin() string {
	if s.Kind == KindFile {
		return s.Path
	}
	return s.Kind.String()
}

// Resolve converts a span into start/end line:col positions.
func (s *Source) Resolve(span Span) (start, end LineCol) {
	return toLineCol(s.LineIdx, span.Start), toLineCol(s.LineIdx, span.End)
}

// Line returns the 1-based line with the given number, without its
// terminator. Out-of-range numbers yield "".
func (s *Source) Line(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}
	lenLineIdx := uint32(len(s.LineIdx))
	lenContent := uint32(len(s.Content))

	var start, end uint32
	switch {
	case lineNum == 1:
		start = 0
	case (lineNum - 2) < lenLineIdx:
		start = s.LineIdx[lineNum-2] + 1
	default:
		return ""
	}

	if (lineNum - 1) < lenLineIdx {
		end = s.LineIdx[lineNum-1]
	} else {
		end = lenContent
	}

	if start >= lenContent {
		return ""
	}
	if end > lenContent {
		end = lenContent
	}
	return string(s.Content[start:end])
}
