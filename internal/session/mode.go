package session

import (
	"strings"

	"sns/internal/shape"
)

// Mode selects what a pointer gesture does.
type Mode uint8

const (
	ModeDraw Mode = iota
	ModeMove
	ModeDelete
	ModeRecolor
	ModeRename
)

var modeNames = [...]string{
	ModeDraw:    "draw",
	ModeMove:    "move",
	ModeDelete:  "delete",
	ModeRecolor: "recolor",
	ModeRename:  "rename",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// ParseMode is case-insensitive.
func ParseMode(s string) (Mode, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range modeNames {
		if n == s {
			return Mode(i), true
		}
	}
	return ModeDraw, false
}

// DrawMode is the sub-mode of ModeDraw.
type DrawMode uint8

const (
	DrawLine DrawMode = iota
	DrawRect
	DrawEllipse
	DrawGroup
)

var drawNames = [...]string{
	DrawLine:    "line",
	DrawRect:    "rect",
	DrawEllipse: "ellipse",
	DrawGroup:   "group",
}

func (d DrawMode) String() string {
	if int(d) < len(drawNames) {
		return drawNames[d]
	}
	return "unknown"
}

// ParseDrawMode is case-insensitive.
func ParseDrawMode(s string) (DrawMode, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range drawNames {
		if n == s {
			return DrawMode(i), true
		}
	}
	return DrawLine, false
}

// Kind returns the shape drawn by d; group draws no single shape.
func (d DrawMode) Kind() (shape.Kind, bool) {
	switch d {
	case DrawLine:
		return shape.KindLine, true
	case DrawRect:
		return shape.KindRect, true
	case DrawEllipse:
		return shape.KindEllipse, true
	}
	return 0, false
}
