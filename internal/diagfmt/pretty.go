package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"sns/internal/diag"
	"sns/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Для каждой печатает
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем строки контекста с подчёркиванием ^~~~ по Span и, по опции, заметки.
func Pretty(w io.Writer, bag *diag.Bag, file *source.File, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		start, _ := file.Resolve(d.Primary)
		sev := p.sev(d.Severity).Sprint(d.Severity.String())
		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			p.path.Sprint(file.Path), start.Line, start.Col, sev, d.Code.ID(), p.bold.Sprint(d.Message)); err != nil {
			return err
		}
		if err := writeContext(w, file, d.Primary, opts.Context, p); err != nil {
			return err
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			at, _ := file.Resolve(n.Span)
			if _, err := fmt.Fprintf(w, "  %s %d:%d: %s\n", p.note.Sprint("note:"), at.Line, at.Col, n.Msg); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeContext(w io.Writer, file *source.File, sp source.Span, ctx int8, p palette) error {
	start, end := file.Resolve(sp)
	c := uint32(max(ctx, 0))
	first := start.Line - min(c, start.Line-1)
	last := min(start.Line+c, uint32(len(file.LineIdx))+1)
	gutter := len(fmt.Sprint(last))

	for n := first; n <= last; n++ {
		text := file.GetLine(n)
		if _, err := fmt.Fprintf(w, " %*d | %s\n", gutter, n, text); err != nil {
			return err
		}
		if n != start.Line {
			continue
		}
		width := 1
		if end.Line == start.Line && end.Col > start.Col {
			width = int(end.Col - start.Col)
		}
		marker := "^" + strings.Repeat("~", width-1)
		if _, err := fmt.Fprintf(w, " %*s | %s%s\n", gutter, "", strings.Repeat(" ", int(start.Col)-1), p.caret.Sprint(marker)); err != nil {
			return err
		}
	}
	return nil
}

type palette struct {
	path, bold, note, caret *color.Color
	errc, warn, info        *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		path:  color.New(color.Bold),
		bold:  color.New(color.Bold),
		note:  color.New(color.FgCyan),
		caret: color.New(color.FgGreen, color.Bold),
		errc:  color.New(color.FgRed, color.Bold),
		warn:  color.New(color.FgYellow, color.Bold),
		info:  color.New(color.FgBlue),
	}
	for _, c := range []*color.Color{p.path, p.bold, p.note, p.caret, p.errc, p.warn, p.info} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) sev(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.errc
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}
