package diagfmt

import (
	"encoding/json"
	"io"

	"sns/internal/diag"
	"sns/internal/source"
)

// Report is the document printed by `sns parse --format json`.
type Report struct {
	File        string  `json:"file"`
	OK          bool    `json:"ok"`    // ни одной ошибки
	Total       int     `json:"total"` // сколько всего в Bag, до обрезки Max
	Diagnostics []Entry `json:"diagnostics"`
}

// Entry is one diagnostic.
type Entry struct {
	Severity string      `json:"severity"`
	Code     string      `json:"code"`
	Title    string      `json:"title"`
	Message  string      `json:"message"`
	Span     Range       `json:"span"`
	Notes    []NoteEntry `json:"notes,omitempty"`
}

type NoteEntry struct {
	Message string `json:"message"`
	Span    Range  `json:"span"`
}

// Range is a byte span, with 1-based positions when requested.
type Range struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
	From  *Pos   `json:"from,omitempty"`
	To    *Pos   `json:"to,omitempty"`
}

type Pos struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

// NewReport builds the JSON document without encoding it.
func NewReport(bag *diag.Bag, file *source.File, opts JSONOpts) Report {
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}
	rng := func(sp source.Span) Range {
		r := Range{Start: sp.Start, End: sp.End}
		if opts.IncludePositions {
			from, to := file.Resolve(sp)
			r.From, r.To = &Pos{from.Line, from.Col}, &Pos{to.Line, to.Col}
		}
		return r
	}

	rep := Report{
		File:        file.Path,
		OK:          !bag.HasErrors(),
		Total:       bag.Len(),
		Diagnostics: make([]Entry, len(items)),
	}
	for i, d := range items {
		e := Entry{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Title:    d.Code.Title(),
			Message:  d.Message,
			Span:     rng(d.Primary),
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				e.Notes = append(e.Notes, NoteEntry{Message: n.Msg, Span: rng(n.Span)})
			}
		}
		rep.Diagnostics[i] = e
	}
	return rep
}

// JSON writes NewReport as indented JSON.
func JSON(w io.Writer, bag *diag.Bag, file *source.File, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewReport(bag, file, opts))
}
