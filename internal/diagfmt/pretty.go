package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"kslang/internal/diag"
	"kslang/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	markColor = color.New(color.FgRed)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <origin>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span.
func Pretty(w io.Writer, bag *diag.Bag, src *source.Source, opts PrettyOpts) {
	for _, d := range bag.Items() {
		start, _ := src.Resolve(d.Primary)

		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			src.Origin(), start.Line, start.Col,
			severityLabel(d.Severity, opts.Color), d.Code.ID(), d.Message)

		printContext(w, src, d.Primary, opts)

		for _, n := range d.Notes {
			nStart, _ := src.Resolve(n.Span)
			fmt.Fprintf(w, "  note: %d:%d: %s\n", nStart.Line, nStart.Col, n.Msg)
		}
	}
}

func severityLabel(s diag.Severity, colorize bool) string {
	if !colorize {
		return s.String()
	}
	switch s {
	case diag.SevError:
		return errColor.Sprint(s.String())
	case diag.SevWarning:
		return warnColor.Sprint(s.String())
	default:
		return infoColor.Sprint(s.String())
	}
}

// printContext печатает строку с ошибкой (и Context строк вокруг)
// с подчёркиванием ^~~~ под span.
func printContext(w io.Writer, src *source.Source, sp source.Span, opts PrettyOpts) {
	start, end := src.Resolve(sp)

	first := start.Line
	if uint32(opts.Context) < first {
		first -= uint32(opts.Context)
	} else {
		first = 1
	}

	for ln := first; ln <= start.Line; ln++ {
		text := src.Line(ln)
		fmt.Fprintf(w, "%5d | %s\n", ln, text)
	}

	// подчёркивание только для однострочных span
	if start.Line == end.Line {
		width := int(end.Col) - int(start.Col)
		if width < 1 {
			width = 1
		}
		underline := "^" + strings.Repeat("~", width-1)
		if opts.Color {
			underline = markColor.Sprint(underline)
		}
		fmt.Fprintf(w, "      | %s%s\n", strings.Repeat(" ", int(start.Col)-1), underline)
	}
}
