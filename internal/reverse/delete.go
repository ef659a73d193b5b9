package reverse

import (
	"fmt"

	"sns/internal/scene"
	"sns/internal/textedit"
)

// DeleteEdit removes the statement owning cp together with the separator
// that follows it: a line break, or one space or tab when the next statement
// shares the line. A doubled line break left at the junction is collapsed,
// and a line break left at the very start is dropped. When the statement is
// the last one, the line break before it goes instead.
func DeleteEdit(prog string, cp scene.ControlPoint) textedit.Edit {
	h := cp.Owner().Head()
	e := textedit.Edit{Span: h.Stmt, OldText: h.Source}
	start, end, n := int(h.Stmt.Start), int(h.Stmt.End), len(prog)
	if end > n {
		return e // Apply отвергнет span
	}

	switch {
	case end < n && prog[end] == '\n':
		e.Span.End++
		e.OldText += "\n"
		if (start == 0 || prog[start-1] == '\n') && end+1 < n && prog[end+1] == '\n' {
			e.Span.End++
			e.OldText += "\n"
		}
	case end < n && (prog[end] == ' ' || prog[end] == '\t'):
		e.Span.End++
		e.OldText += prog[end : end+1]
	case end == n && start > 0 && prog[start-1] == '\n':
		e.Span.Start--
		e.OldText = "\n" + e.OldText
	}
	return e
}

// Delete applies DeleteEdit to prog.
func Delete(prog string, cp scene.ControlPoint) (string, error) {
	out, err := textedit.Apply(prog, DeleteEdit(prog, cp))
	if err != nil {
		return prog, fmt.Errorf("delete %s: %w", cp.Owner().Head().Name, err)
	}
	return out, nil
}
