package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"sns/internal/raster"
	"sns/internal/scene"
	"sns/internal/session"
	"sns/internal/source"
	"sns/internal/textedit"
	"sns/internal/trace"
	"sns/internal/watch"
)

// EditorOptions configures the interactive editor.
type EditorOptions struct {
	Session    session.Options
	Background string
	Watch      bool
	// Ring, если задан, показывается в панели трассировки (t).
	Ring *trace.Recorder
}

type inputKind uint8

const (
	inputNone inputKind = iota
	inputColor
	inputName
	inputText
)

type fileChangedMsg string
type watchErrMsg struct{ err error }

type editorModel struct {
	path    string
	ed      *session.Editor
	bg      string
	watcher *watch.Watcher
	ring    *trace.Recorder

	keys   keyMap
	help   help.Model
	input  textinput.Model
	area   textarea.Model
	active inputKind

	width, height int
	canvas        canvasRect
	textWidth     int
	showTrace     bool
	dirty         bool
	status        string
	copy          func(string) error
}

// RunEditor opens path in the terminal editor and blocks until the user quits.
func RunEditor(ctx context.Context, path string, opts EditorOptions) error {
	m, err := newEditorModel(path, opts)
	if err != nil {
		return err
	}
	if opts.Watch {
		w, err := watch.New(path, m.ed.Text())
		if err != nil {
			return err
		}
		defer w.Close()
		m.watcher = w
	}
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func newEditorModel(path string, opts EditorOptions) (*editorModel, error) {
	file, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	m := &editorModel{
		path:  path,
		bg:    opts.Background,
		ring:  opts.Ring,
		keys:  defaultKeys(),
		help:  help.New(),
		input: textinput.New(),
		area:  textarea.New(),
		copy:  clipboard.WriteAll,
	}
	so := opts.Session
	so.OnChange = func(string) { m.dirty = true }
	m.ed = session.New(string(file.Content), so)
	m.input.CharLimit = 64
	m.area.ShowLineNumbers = true
	m.resize(100, 40)
	return m, nil
}

func (m *editorModel) Init() tea.Cmd {
	return m.listenForChange()
}

func (m *editorModel) listenForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case text, ok := <-m.watcher.Changes():
			if !ok {
				return nil
			}
			return fileChangedMsg(text)
		case err := <-m.watcher.Errors():
			return watchErrMsg{err: err}
		}
	}
}

func (m *editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case fileChangedMsg:
		m.watcher.Known(string(msg))
		m.ed.SetText(string(msg))
		m.dirty = false
		m.status = "reloaded: file changed on disk"
		return m, m.listenForChange()
	case watchErrMsg:
		m.status = "watch: " + msg.err.Error()
		return m, m.listenForChange()
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.KeyMsg:
		if m.active != inputNone {
			return m, m.updateInput(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *editorModel) handleMouse(msg tea.MouseMsg) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return
	}
	p, inside := m.canvas.toCanvas(msg.X, msg.Y)
	var err error
	switch msg.Action {
	case tea.MouseActionPress:
		if inside {
			m.ed.Press(p)
		}
	case tea.MouseActionMotion:
		err = m.ed.Move(p)
	case tea.MouseActionRelease:
		err = m.ed.Release(p)
	}
	if err != nil {
		m.status = err.Error()
	}
}

func (m *editorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Draw):
		m.ed.SetMode(session.ModeDraw)
	case key.Matches(msg, k.Move):
		m.ed.SetMode(session.ModeMove)
	case key.Matches(msg, k.Delete):
		m.ed.SetMode(session.ModeDelete)
	case key.Matches(msg, k.Recolor):
		m.ed.SetMode(session.ModeRecolor)
	case key.Matches(msg, k.Rename):
		m.ed.SetMode(session.ModeRename)
	case key.Matches(msg, k.Line):
		m.ed.SetDrawMode(session.DrawLine)
	case key.Matches(msg, k.Rect):
		m.ed.SetDrawMode(session.DrawRect)
	case key.Matches(msg, k.Ellipse):
		m.ed.SetDrawMode(session.DrawEllipse)
	case key.Matches(msg, k.Group):
		m.ed.SetDrawMode(session.DrawGroup)
	case key.Matches(msg, k.Snapshot):
		m.ed.EnterGroup()
		m.status = fmt.Sprintf("group snapshot: %d shapes", len(m.ed.Snapshot()))
	case key.Matches(msg, k.Widgets):
		m.ed.SetWidgets(!m.ed.Widgets())
	case key.Matches(msg, k.Color):
		return m, m.openInput(inputColor, "color> ", m.ed.Color())
	case key.Matches(msg, k.Name):
		return m, m.openInput(inputName, "name> ", m.ed.RenameText())
	case key.Matches(msg, k.EditText):
		m.active = inputText
		m.area.SetValue(m.ed.Text())
		return m, m.area.Focus()
	case key.Matches(msg, k.Copy):
		if err := m.copy(m.ed.Text()); err != nil {
			m.status = "copy: " + err.Error()
		} else {
			m.status = "program copied to clipboard"
		}
	case key.Matches(msg, k.Save):
		m.save()
	case key.Matches(msg, k.Reload):
		m.reload()
	case key.Matches(msg, k.Trace):
		m.showTrace = !m.showTrace
		m.resize(m.width, m.height)
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
	}
	return m, nil
}

func (m *editorModel) openInput(kind inputKind, prompt, value string) tea.Cmd {
	m.active = kind
	m.input.Prompt = prompt
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *editorModel) updateInput(msg tea.KeyMsg) tea.Cmd {
	if m.active == inputText {
		switch msg.Type {
		case tea.KeyEsc:
			m.closeInput()
			return nil
		case tea.KeyCtrlS:
			m.ed.SetText(m.area.Value())
			m.dirty = true
			m.closeInput()
			return nil
		}
		var cmd tea.Cmd
		m.area, cmd = m.area.Update(msg)
		return cmd
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.closeInput()
		return nil
	case tea.KeyEnter:
		v := strings.TrimSpace(m.input.Value())
		if m.active == inputColor {
			m.ed.SetColor(v)
		} else {
			m.ed.SetRenameText(v)
		}
		m.closeInput()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *editorModel) closeInput() {
	m.active = inputNone
	m.input.Blur()
	m.area.Blur()
}

func (m *editorModel) save() {
	text := m.ed.Text()
	if m.watcher != nil {
		m.watcher.Known(text)
	}
	if err := textedit.WriteFile(m.path, text); err != nil {
		m.status = "save: " + err.Error()
		return
	}
	m.dirty = false
	m.status = "saved " + m.path
}

func (m *editorModel) reload() {
	file, err := source.Load(m.path)
	if err != nil {
		m.status = "reload: " + err.Error()
		return
	}
	m.ed.SetText(string(file.Content))
	m.dirty = false
	m.status = "reloaded " + m.path
}

// resize lays out the text pane, the canvas and the footer.
func (m *editorModel) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w

	footer := 3
	if m.help.ShowAll {
		footer += 4
	}
	if m.showTrace {
		footer += traceLines
	}
	bodyRows := max(h-1-footer, 4)

	m.textWidth = max(w/3, 24)
	cols := max(min(w-m.textWidth-3, bodyRows*2), 8)
	m.canvas = canvasRect{X: m.textWidth + 3, Y: 1, Cols: cols, Rows: cols / 2}
	m.area.SetWidth(m.textWidth)
	m.area.SetHeight(bodyRows)
}

const traceLines = 8

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	paneStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).PaddingRight(1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (m *editorModel) View() string {
	var b strings.Builder

	title := "sns " + m.path
	if m.dirty {
		title += " [+]"
	}
	b.WriteString(titleStyle.Render(truncate(title, m.width)))
	b.WriteString("\n")

	left := m.textPane()
	if m.active == inputText {
		left = m.area.View()
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, paneStyle.Width(m.textWidth+1).Render(left), " ", m.canvasView()))
	b.WriteString("\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n")
	if m.active == inputColor || m.active == inputName {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(dimStyle.Render(truncate(m.status, m.width)))
	}
	b.WriteString("\n")
	if m.showTrace {
		b.WriteString(m.traceView())
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *editorModel) textPane() string {
	lines := strings.Split(m.ed.DisplayText(), "\n")
	if len(lines) > m.canvas.Rows {
		lines = lines[:m.canvas.Rows]
	}
	for i, l := range lines {
		lines[i] = truncate(l, m.textWidth)
	}
	return strings.Join(lines, "\n")
}

func (m *editorModel) canvasView() string {
	opts := raster.Options{
		Scale:      float64(m.canvas.Cols) / scene.CanvasSize,
		Background: m.bg,
	}
	if prev, ok := m.ed.Preview(); ok {
		opts.Preview = &prev
	}
	img, err := raster.Render(m.ed.Scene(), opts)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	return halfBlocks(img, m.canvas.Cols, m.canvas.Rows)
}

func (m *editorModel) statusLine() string {
	mode := m.ed.Mode().String()
	if m.ed.Mode() == session.ModeDraw {
		mode += "/" + m.ed.DrawMode().String()
	}
	swatch := "  "
	if c := m.ed.Color(); c != "" {
		swatch = lipgloss.NewStyle().Background(lipgloss.Color(c)).Render("  ")
	}
	line := fmt.Sprintf("mode %s  color %s %s  name %q  next #%d",
		mode, swatch, m.ed.Color(), m.ed.RenameText(), m.ed.Counter())
	if err := m.ed.Err(); err != nil {
		return line + "  " + errorStyle.Render(err.Error())
	}
	return statusStyle.Render(line)
}

func (m *editorModel) traceView() string {
	if m.ring == nil {
		return dimStyle.Render("tracing is off (--trace-level)") + "\n"
	}
	var b strings.Builder
	for _, ev := range m.ring.Tail(traceLines) {
		line := strings.TrimRight(string(trace.FormatEvent(&ev, trace.FormatText)), "\n")
		b.WriteString(dimStyle.Render(runewidth.Truncate(line, m.width, "…")))
		b.WriteString("\n")
	}
	return b.String()
}
