package session

import (
	"strconv"

	"sns/internal/reverse"
	"sns/internal/scene"
	"sns/internal/shape"
	"sns/internal/trace"
)

// Press starts a gesture at p (canvas coordinates); points outside the canvas are ignored.
func (e *Editor) Press(p shape.Point) {
	if !scene.InCanvas(p) {
		return
	}
	e.pressed = true
	e.press, e.last = p, p
}

// Move continues a gesture. In move mode every call picks the control point
// nearest to p in the current Scene, rewrites the program and rebuilds.
// Nothing is remembered between calls: after a rebuild the point indices
// may belong to other corners.
func (e *Editor) Move(p shape.Point) error {
	if !e.pressed || !scene.InCanvas(p) {
		return nil
	}
	e.last = p
	if e.mode != ModeMove {
		return nil
	}
	i, ok := e.scene.NearestIndex(p)
	if !ok {
		return nil
	}
	cp := e.scene.Points[i]
	sp := trace.Begin(e.tracer, trace.ScopeInteraction, "move", 0).
		WithExtra("owner", cp.Owner().Head().Name).
		WithExtra("role", cp.Role().String()).
		WithExtra("at", pointExtra(p))
	err := e.commit("move", reverse.MoveEdit(cp, p), sp.ID())
	sp.End(e.outcome())
	return err
}

// Release ends a gesture at p. Delete, recolor, rename and draw act here.
func (e *Editor) Release(p shape.Point) error {
	if !e.pressed {
		return nil
	}
	e.pressed = false
	if !scene.InCanvas(p) {
		return nil
	}
	e.last = p

	switch e.mode {
	case ModeDelete, ModeRecolor, ModeRename:
		return e.editAt(p)
	case ModeDraw:
		return e.drawAt(e.press, p)
	}
	return nil
}

func (e *Editor) editAt(p shape.Point) error {
	i, ok := e.scene.NearestIndex(p)
	if !ok {
		return nil
	}
	cp := e.scene.Points[i]
	op := e.mode.String()
	sp := trace.Begin(e.tracer, trace.ScopeInteraction, op, 0).
		WithExtra("owner", cp.Owner().Head().Name).
		WithExtra("at", pointExtra(p))
	defer func() { sp.End(e.outcome()) }()

	switch e.mode {
	case ModeDelete:
		return e.commit(op, reverse.DeleteEdit(e.text, cp), sp.ID())
	case ModeRecolor:
		return e.commit(op, reverse.RecolorEdit(cp, e.color), sp.ID())
	default:
		ed, ok := reverse.RenameEdit(cp, e.name)
		if !ok {
			return nil
		}
		return e.commit(op, ed, sp.ID())
	}
}

// drawAt appends a new statement, or a scaled copy of the group snapshot.
// Without a valid Scene nothing is drawn.
func (e *Editor) drawAt(from, to shape.Point) error {
	if e.scene == nil {
		return nil
	}
	sp := trace.Begin(e.tracer, trace.ScopeInteraction, "draw", 0).
		WithExtra("kind", e.draw.String()).
		WithExtra("from", pointExtra(from)).
		WithExtra("to", pointExtra(to))
	defer func() { sp.End(e.outcome()) }()

	if kind, ok := e.draw.Kind(); ok {
		ed := reverse.CreateEdit(e.text, kind, from, to, e.color, e.counter)
		if err := e.commit("create", ed, sp.ID()); err != nil {
			return err
		}
		e.counter++
		return nil
	}

	ed, n := reverse.GroupEdit(e.text, e.snapshot, from, to, e.counter)
	if n == 0 {
		return nil
	}
	if err := e.commit("group", ed, sp.ID()); err != nil {
		return err
	}
	e.counter += n
	return nil
}

func pointExtra(p shape.Point) string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}
