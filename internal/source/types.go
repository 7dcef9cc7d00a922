package source

// Kind tells where the source text came from.
type Kind uint8

const (
	// KindStdin marks text read from standard input.
	KindStdin Kind = iota
	// KindString marks text supplied verbatim by the caller.
	KindString
	// KindFile marks text loaded from a file on disk.
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindStdin:
		return "stdin"
	case KindString:
		return "string"
	case KindFile:
		return "file"
	}
	return "unknown"
}

// LineCol represents a human-readable position in a source buffer.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
