package lexer_test

import (
	"testing"

	"kslang/internal/lexer"
	"kslang/internal/source"
)

func makeCursor(t *testing.T, input string) lexer.Cursor {
	t.Helper()
	src, err := source.FromString(input)
	if err != nil {
		t.Fatalf("FromString(%q): %v", input, err)
	}
	return lexer.NewCursor(src)
}

func TestCursorPeekBump(t *testing.T) {
	c := makeCursor(t, "ab")
	if c.Peek() != 'a' {
		t.Errorf("Peek = %q", c.Peek())
	}
	if b0, b1, ok := c.Peek2(); !ok || b0 != 'a' || b1 != 'b' {
		t.Errorf("Peek2 = %q %q %v", b0, b1, ok)
	}
	if c.Bump() != 'a' {
		t.Error("Bump must return the consumed byte")
	}
	if _, _, ok := c.Peek2(); ok {
		t.Error("Peek2 at last byte must report false")
	}
	if c.Bump() != 'b' {
		t.Error("second Bump")
	}
	if !c.EOF() {
		t.Error("cursor must be at EOF")
	}
	if c.Peek() != 0 || c.Bump() != 0 {
		t.Error("Peek/Bump at EOF must return 0")
	}
}

func TestCursorEat(t *testing.T) {
	c := makeCursor(t, "=!")
	if !c.Eat('=') {
		t.Error("Eat('=') must consume")
	}
	if c.Eat('=') {
		t.Error("Eat('=') must not match '!'")
	}
	if c.Off != 1 {
		t.Errorf("Off = %d, want 1", c.Off)
	}
}

func TestCursorLineCounting(t *testing.T) {
	c := makeCursor(t, "a\nb\nc")
	if c.Line != 1 {
		t.Fatalf("initial Line = %d", c.Line)
	}
	c.Bump() // a
	c.Bump() // \n
	if c.Line != 2 {
		t.Errorf("after first newline Line = %d, want 2", c.Line)
	}
	c.Bump() // b
	c.Bump() // \n
	c.Bump() // c
	if c.Line != 3 {
		t.Errorf("final Line = %d, want 3", c.Line)
	}
}

func TestCursorMarkReset(t *testing.T) {
	c := makeCursor(t, "x\ny")
	m := c.Mark()
	c.Bump() // x
	c.Bump() // \n — инкремент строки
	c.Bump() // y
	if sp := c.SpanFrom(m); sp.Start != 0 || sp.End != 3 {
		t.Errorf("SpanFrom = %v, want 0..3", sp)
	}
	c.Reset(m)
	if c.Off != 0 {
		t.Errorf("Reset Off = %d, want 0", c.Off)
	}
	if c.Line != 1 {
		t.Errorf("Reset must restore Line, got %d", c.Line)
	}
}
