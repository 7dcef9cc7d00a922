package diag

import (
	"errors"
	"fmt"

	"kslang/internal/source"
)

// Code is a stable diagnostic identifier. Коды не переиспользуются.
type Code uint16

const (
	// UnknownCode - на первое время
	UnknownCode Code = 0

	// Ошибки конструирования Source
	SrcEmptyInput  Code = 100
	SrcInvalidUTF8 Code = 101
	SrcIoError     Code = 102

	// Лексические
	LexInfo        Code = 1000
	LexUnknownChar Code = 1001
	LexBadNumber   Code = 1002
)

// ID returns the machine-readable form of the code, e.g. "KS1001".
func (c Code) ID() string {
	return fmt.Sprintf("KS%04d", uint16(c))
}

// CodeForSourceError maps a Source construction failure to its stable code.
// Всё, что не EmptyInput/InvalidUtf8, считается ошибкой ввода-вывода.
func CodeForSourceError(err error) Code {
	switch {
	case errors.Is(err, source.ErrEmptyInput):
		return SrcEmptyInput
	case errors.Is(err, source.ErrInvalidUTF8):
		return SrcInvalidUTF8
	default:
		return SrcIoError
	}
}

func (c Code) String() string {
	switch c {
	case SrcEmptyInput:
		return "EmptyInput"
	case SrcInvalidUTF8:
		return "InvalidUtf8"
	case SrcIoError:
		return "IoError"
	case LexInfo:
		return "LexInfo"
	case LexUnknownChar:
		return "UnexpectedCharacter"
	case LexBadNumber:
		return "InvalidNumber"
	default:
		return "Unknown"
	}
}
