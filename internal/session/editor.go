package session

import (
	"fmt"
	"strconv"

	"sns/internal/observ"
	"sns/internal/parser"
	"sns/internal/scene"
	"sns/internal/shape"
	"sns/internal/source"
	"sns/internal/textedit"
	"sns/internal/trace"
)

// DefaultColor is the active color of a fresh editor.
const DefaultColor = "#000000"

// Options configures a new Editor.
type Options struct {
	Widgets bool
	Color   string
	Mode    Mode
	Draw    DrawMode
	Tracer  trace.Tracer
	Timer   *observ.Timer
	// OnChange получает новый текст после каждой обратной правки.
	OnChange func(text string)
}

// Editor holds the program, its current Scene and the interaction state.
type Editor struct {
	text    string
	widgets bool
	scene   *scene.Scene
	err     error

	mode    Mode
	draw    DrawMode
	color   string
	name    string
	counter int

	pressed  bool
	press    shape.Point
	last     shape.Point
	snapshot []shape.Shape

	tracer   trace.Tracer
	timer    *observ.Timer
	onChange func(string)
}

// New creates an editor over text and builds its first Scene.
func New(text string, opts Options) *Editor {
	e := &Editor{
		text:     text,
		widgets:  opts.Widgets,
		mode:     opts.Mode,
		draw:     opts.Draw,
		color:    opts.Color,
		counter:  1,
		tracer:   opts.Tracer,
		timer:    opts.Timer,
		onChange: opts.OnChange,
	}
	if e.color == "" {
		e.color = DefaultColor
	}
	if e.tracer == nil {
		e.tracer = trace.Nop
	}
	e.rebuild(0)
	if e.mode == ModeDraw && e.draw == DrawGroup {
		e.EnterGroup()
	}
	return e
}

func (e *Editor) Text() string            { return e.text }
func (e *Editor) Scene() *scene.Scene     { return e.scene }
func (e *Editor) Err() error              { return e.err }
func (e *Editor) Mode() Mode              { return e.mode }
func (e *Editor) DrawMode() DrawMode      { return e.draw }
func (e *Editor) Color() string           { return e.color }
func (e *Editor) RenameText() string      { return e.name }
func (e *Editor) Counter() int            { return e.counter }
func (e *Editor) Widgets() bool           { return e.widgets }
func (e *Editor) Pressed() bool           { return e.pressed }
func (e *Editor) Snapshot() []shape.Shape { return e.snapshot }

// DisplayText is the program with cosmetic zero padding stripped.
func (e *Editor) DisplayText() string { return textedit.StripZeroPadding(e.text) }

// SetText replaces the whole program, as typed by the user, and rebuilds.
func (e *Editor) SetText(text string) {
	sp := trace.Begin(e.tracer, trace.ScopeInteraction, "set_text", 0)
	e.text = text
	e.cancelGesture()
	e.rebuild(sp.ID())
	sp.End(e.outcome())
}

// SetWidgets toggles labels and handles; the Scene is rebuilt.
func (e *Editor) SetWidgets(on bool) {
	if e.widgets == on {
		return
	}
	e.widgets = on
	e.rebuild(0)
}

// SetMode switches the gesture mode. Leaving draw mode drops the group snapshot.
func (e *Editor) SetMode(m Mode) {
	e.cancelGesture()
	e.mode = m
	if m != ModeDraw {
		e.snapshot = nil
	}
}

// SetDrawMode switches the draw sub-mode. Entering group freezes a snapshot.
func (e *Editor) SetDrawMode(d DrawMode) {
	e.cancelGesture()
	e.mode = ModeDraw
	e.draw = d
	if d == DrawGroup {
		e.EnterGroup()
		return
	}
	e.snapshot = nil
}

// EnterGroup freezes the currently parsed shapes as the group snapshot.
// It is a no-op while the program does not parse.
func (e *Editor) EnterGroup() {
	e.mode = ModeDraw
	e.draw = DrawGroup
	if e.scene == nil {
		e.snapshot = nil
		return
	}
	e.snapshot = append([]shape.Shape(nil), e.scene.Shapes...)
	trace.Point(e.tracer, trace.ScopeInteraction, "group_snapshot", strconv.Itoa(len(e.snapshot)), 0)
}

func (e *Editor) SetColor(c string)      { e.color = c }
func (e *Editor) SetRenameText(s string) { e.name = s }

// SetCounter overrides the creation counter; values below 1 are ignored.
func (e *Editor) SetCounter(n int) {
	if n >= 1 {
		e.counter = n
	}
}

// Preview returns the dashed bounding box of an in-progress draw gesture.
func (e *Editor) Preview() (scene.Primitive, bool) {
	if !e.pressed || e.mode != ModeDraw {
		return scene.Primitive{}, false
	}
	return scene.Preview(e.press, e.last), true
}

func (e *Editor) cancelGesture() {
	e.pressed = false
}

// rebuild is the only place that derives a Scene from text.
func (e *Editor) rebuild(parent uint64) {
	sp := trace.Begin(e.tracer, trace.ScopePass, "rebuild", parent)
	defer func() { sp.End(e.outcome()) }()

	src := source.Virtual(e.text)

	idx := e.timer.Begin("parse")
	ps := trace.Begin(e.tracer, trace.ScopePass, "parse", sp.ID())
	f, err := parser.Parse(src)
	ps.End("")
	e.timer.End(idx, "")
	if err != nil {
		e.scene = nil
		e.err = err
		trace.Error(e.tracer, "rebuild", err, sp.ID())
		return
	}

	idx = e.timer.Begin("extract")
	shapes := shape.Extract(src, f)
	e.timer.End(idx, "")

	idx = e.timer.Begin("build")
	e.scene = scene.Build(shapes, scene.Options{Widgets: e.widgets})
	e.timer.End(idx, "")
	e.err = nil
	sp.WithExtra("shapes", strconv.Itoa(len(shapes))).
		WithExtra("points", strconv.Itoa(len(e.scene.Points)))
}

func (e *Editor) outcome() string {
	if e.err != nil {
		return "error"
	}
	return "ok"
}

// commit splices one edit into the program, notifies the sink and rebuilds.
func (e *Editor) commit(op string, ed textedit.Edit, parent uint64) error {
	idx := e.timer.Begin("splice")
	out, err := textedit.Apply(e.text, ed)
	e.timer.End(idx, op)
	if err != nil {
		err = fmt.Errorf("%s: %w", op, err)
		trace.Error(e.tracer, op, err, parent)
		return err
	}
	trace.Point(e.tracer, trace.ScopePass, "splice", ed.Span.String()+" "+strconv.Quote(ed.NewText), parent)
	e.text = out
	e.rebuild(parent)
	if e.onChange != nil {
		e.onChange(out)
	}
	return nil
}
