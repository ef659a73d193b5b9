package reverse

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"sns/internal/scene"
	"sns/internal/textedit"
)

// RecolorEdit rewrites the color literal of the shape owning cp.
func RecolorEdit(cp scene.ControlPoint, color string) textedit.Edit {
	h := cp.Owner().Head()
	return textedit.Edit{
		Span:    h.Color.Span,
		NewText: textedit.Quote(color),
		OldText: h.Slice(h.Color.Span),
	}
}

// Recolor applies RecolorEdit to prog.
func Recolor(prog string, cp scene.ControlPoint, color string) (string, error) {
	out, err := textedit.Apply(prog, RecolorEdit(cp, color))
	if err != nil {
		return prog, fmt.Errorf("recolor %s: %w", cp.Owner().Head().Name, err)
	}
	return out, nil
}

// CleanName strips all whitespace from name and brings it to NFC.
func CleanName(name string) string {
	name = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)
	return norm.NFC.String(name)
}

// RenameEdit rewrites the name of the shape owning cp.
// ok is false when the cleaned name is empty; nothing should change then.
func RenameEdit(cp scene.ControlPoint, name string) (e textedit.Edit, ok bool) {
	name = CleanName(name)
	if name == "" {
		return textedit.Edit{}, false
	}
	h := cp.Owner().Head()
	return textedit.Edit{
		Span:    h.NameSpan,
		NewText: name,
		OldText: h.Slice(h.NameSpan),
	}, true
}

// Rename applies RenameEdit to prog; an empty name leaves prog as is.
func Rename(prog string, cp scene.ControlPoint, name string) (string, error) {
	e, ok := RenameEdit(cp, name)
	if !ok {
		return prog, nil
	}
	out, err := textedit.Apply(prog, e)
	if err != nil {
		return prog, fmt.Errorf("rename %s: %w", cp.Owner().Head().Name, err)
	}
	return out, nil
}
