package reverse

import (
	"fmt"
	"strconv"

	"sns/internal/shape"
	"sns/internal/textedit"
)

// Statement renders one shape statement in the canonical written form.
func Statement(kind shape.Kind, name string, p shape.Point, a, b int, color string) string {
	return name + " = " + kind.String() + "(" + textedit.FormatPoint(p.X, p.Y) + ", " +
		textedit.Pad3(a) + ", " + textedit.Pad3(b) + ", " + textedit.Quote(color) + ");"
}

// LineStatement renders a line statement.
func LineStatement(name string, p1, p2 shape.Point, color string) string {
	return name + " = line(" + textedit.FormatPoint(p1.X, p1.Y) + ", " +
		textedit.FormatPoint(p2.X, p2.Y) + ", " + textedit.Quote(color) + ");"
}

// Name returns the synthetic name `<kind><counter>`.
func Name(kind shape.Kind, counter int) string {
	return kind.String() + strconv.Itoa(counter)
}

// CreateStatement builds the statement drawn from press to release.
//
//	line    → [press], [release]
//	rect    → начало = покомпонентный min, размеры = |разность|
//	ellipse → центр = floor((press+release)/2), радиусы = max − центр
func CreateStatement(kind shape.Kind, from, to shape.Point, color string, counter int) string {
	name := Name(kind, counter)
	switch kind {
	case shape.KindRect:
		origin := shape.Point{X: min(from.X, to.X), Y: min(from.Y, to.Y)}
		return Statement(kind, name, origin, max(from.X, to.X)-origin.X, max(from.Y, to.Y)-origin.Y, color)
	case shape.KindEllipse:
		c := shape.Point{X: floorDiv(from.X+to.X, 2), Y: floorDiv(from.Y+to.Y, 2)}
		return Statement(kind, name, c, max(from.X, to.X)-c.X, max(from.Y, to.Y)-c.Y, color)
	default:
		return LineStatement(name, from, to, color)
	}
}

// CreateEdit appends the new statement to prog, on its own line unless prog is empty.
func CreateEdit(prog string, kind shape.Kind, from, to shape.Point, color string, counter int) textedit.Edit {
	return textedit.Append(prog, lineSep(prog)+CreateStatement(kind, from, to, color, counter))
}

// Create applies CreateEdit to prog. The caller advances its counter by one.
func Create(prog string, kind shape.Kind, from, to shape.Point, color string, counter int) (string, error) {
	out, err := textedit.Apply(prog, CreateEdit(prog, kind, from, to, color, counter))
	if err != nil {
		return prog, fmt.Errorf("create %s: %w", Name(kind, counter), err)
	}
	return out, nil
}

func lineSep(prog string) string {
	if prog == "" {
		return ""
	}
	return "\n"
}
