package scene

import (
	"fmt"

	"sns/internal/shape"
)

type PrimKind uint8

const (
	PrimLine PrimKind = iota
	PrimRect
	PrimEllipse
	PrimLabel
	PrimHandle
)

var primNames = [...]string{
	PrimLine:    "line",
	PrimRect:    "rect",
	PrimEllipse: "ellipse",
	PrimLabel:   "label",
	PrimHandle:  "handle",
}

func (k PrimKind) String() string {
	if int(k) < len(primNames) {
		return primNames[k]
	}
	return fmt.Sprintf("PrimKind(%d)", k)
}

// Primitive: одна фигура для отрисовки. Смысл A и B зависит от Kind:
//
//	PrimLine    A, B: концы
//	PrimRect    A: левый верхний угол, B: (ширина, высота)
//	PrimEllipse A: центр, B: (rx, ry)
//	PrimLabel   A: позиция текста
//	PrimHandle  A: центр, B: (r, r)
type Primitive struct {
	Kind        PrimKind
	Name        string // имя фигуры-владельца
	A, B        shape.Point
	Text        string
	Stroke      string
	Fill        string // "" = без заливки
	StrokeWidth int
	Dashed      bool
	RoundCap    bool
}

const (
	ShapeStrokeWidth  = 5
	HandleRadius      = 7
	HandleStrokeWidth = 2
	PreviewStroke     = 2
	labelOffset       = 20
)

func handle(name string, p shape.Point) Primitive {
	return Primitive{
		Kind:        PrimHandle,
		Name:        name,
		A:           p,
		B:           shape.Point{X: HandleRadius, Y: HandleRadius},
		Stroke:      "black",
		Fill:        "#fff",
		StrokeWidth: HandleStrokeWidth,
	}
}

func label(name string, at shape.Point) Primitive {
	return Primitive{
		Kind: PrimLabel,
		Name: name,
		A:    shape.Point{X: at.X - labelOffset, Y: at.Y - labelOffset},
		Text: name,
	}
}

// Preview returns the transient dashed bounding box shown while drawing
// from press to the current pointer position. It never touches the program.
func Preview(from, to shape.Point) Primitive {
	origin := shape.Point{X: min(from.X, to.X), Y: min(from.Y, to.Y)}
	return Primitive{
		Kind:        PrimRect,
		A:           origin,
		B:           shape.Point{X: max(from.X, to.X) - origin.X, Y: max(from.Y, to.Y) - origin.Y},
		Stroke:      "black",
		StrokeWidth: PreviewStroke,
		Dashed:      true,
		RoundCap:    true,
	}
}
