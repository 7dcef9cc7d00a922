package diagfmt_test

import (
	"bytes"
	"strings"
	"testing"

	"kslang/internal/diagfmt"
	"kslang/internal/driver"
)

func TestPretty(t *testing.T) {
	res := lexed(t, "def f(x)\n  x @ 1;\n")
	if res.Ok() {
		t.Fatal("input must produce a lexical error")
	}
	res.Bag.Sort()

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, res.Bag, res.Source, diagfmt.PrettyOpts{Color: false, Context: 1})
	out := buf.String()

	if !strings.Contains(out, "string:2:5: ERROR KS1001:") {
		t.Errorf("header missing or wrong:\n%s", out)
	}
	if !strings.Contains(out, "    2 |   x @ 1;") {
		t.Errorf("context line missing:\n%s", out)
	}
	// подчёркивание под колонкой 5
	if !strings.Contains(out, "      |     ^") {
		t.Errorf("underline missing:\n%s", out)
	}
}

func TestPrettyEmptyBag(t *testing.T) {
	res, err := driver.TokenizeString("x", 0)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, res.Bag, res.Source, diagfmt.PrettyOpts{})
	if buf.Len() != 0 {
		t.Errorf("clean result must print nothing, got %q", buf.String())
	}
}
