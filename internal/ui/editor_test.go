package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"sns/internal/session"
)

const program = `lineTop = line([062, 045], [549, 176], "#c13030");`

func newTestModel(t *testing.T, text string) (*editorModel, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.sns")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := newEditorModel(path, EditorOptions{Session: session.Options{Widgets: true}})
	if err != nil {
		t.Fatalf("newEditorModel: %v", err)
	}
	m.copy = func(string) error { return nil }
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	return m, path
}

func press(m *editorModel, r string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)})
}

// cellFor возвращает ячейку экрана, центр которой ближе всего к точке холста.
func cellFor(m *editorModel, x, y int) (int, int) {
	c := m.canvas
	return c.X + x*c.Cols/600, c.Y + y*c.Rows/600
}

func mouse(m *editorModel, action tea.MouseAction, x, y int) {
	cx, cy := cellFor(m, x, y)
	m.Update(tea.MouseMsg{X: cx, Y: cy, Action: action, Button: tea.MouseButtonLeft})
}

func TestEditorModel_ModeKeys(t *testing.T) {
	m, _ := newTestModel(t, program)
	steps := []struct {
		key  string
		mode session.Mode
		draw session.DrawMode
	}{
		{"m", session.ModeMove, session.DrawLine},
		{"x", session.ModeDelete, session.DrawLine},
		{"c", session.ModeRecolor, session.DrawLine},
		{"n", session.ModeRename, session.DrawLine},
		{"2", session.ModeDraw, session.DrawRect},
		{"3", session.ModeDraw, session.DrawEllipse},
		{"4", session.ModeDraw, session.DrawGroup},
	}
	for _, s := range steps {
		press(m, s.key)
		if m.ed.Mode() != s.mode || m.ed.DrawMode() != s.draw {
			t.Fatalf("after %q: mode=%v draw=%v", s.key, m.ed.Mode(), m.ed.DrawMode())
		}
	}
	if len(m.ed.Snapshot()) != 1 {
		t.Fatalf("group key must snapshot the program")
	}
}

func TestEditorModel_DrawWithMouse(t *testing.T) {
	m, _ := newTestModel(t, program)
	press(m, "2")
	mouse(m, tea.MouseActionPress, 100, 100)
	mouse(m, tea.MouseActionMotion, 300, 200)
	if _, ok := m.ed.Preview(); !ok {
		t.Fatalf("expected a preview while dragging")
	}
	mouse(m, tea.MouseActionRelease, 300, 200)
	if !strings.Contains(m.ed.Text(), "\nrect1 = rect(") {
		t.Fatalf("rect not created: %q", m.ed.Text())
	}
	if !m.dirty {
		t.Fatalf("reverse edit must mark the buffer dirty")
	}
	if !strings.Contains(m.View(), "[+]") {
		t.Fatalf("title must show the dirty marker")
	}
}

func TestEditorModel_ColorInputAndSave(t *testing.T) {
	m, path := newTestModel(t, program)
	press(m, "k")
	if m.active != inputColor {
		t.Fatalf("color input not opened")
	}
	m.input.SetValue("#00ff00")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.ed.Color() != "#00ff00" || m.active != inputNone {
		t.Fatalf("color = %q active = %v", m.ed.Color(), m.active)
	}

	press(m, "c")
	mouse(m, tea.MouseActionPress, 62, 45)
	mouse(m, tea.MouseActionRelease, 62, 45)
	if !strings.Contains(m.ed.Text(), `"#00ff00"`) {
		t.Fatalf("recolor failed: %q", m.ed.Text())
	}

	press(m, "s")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != m.ed.Text() || m.dirty {
		t.Fatalf("save: file %q dirty=%v", data, m.dirty)
	}
}

func TestEditorModel_EditTextArea(t *testing.T) {
	m, _ := newTestModel(t, program)
	press(m, "i")
	if m.active != inputText {
		t.Fatalf("text area not opened")
	}
	m.area.SetValue("broken = line(")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.ed.Err() == nil || m.ed.Scene() != nil {
		t.Fatalf("invalid text must clear the scene")
	}
	if !strings.Contains(m.View(), "Unexpected token") {
		t.Fatalf("syntax error must be visible")
	}

	press(m, "r")
	if m.ed.Err() != nil || m.ed.Text() != program {
		t.Fatalf("reload must restore the file: %q %v", m.ed.Text(), m.ed.Err())
	}
}

func TestEditorModel_WidgetsAndQuit(t *testing.T) {
	m, _ := newTestModel(t, program)
	before := len(m.ed.Scene().Primitives)
	press(m, "w")
	if len(m.ed.Scene().Primitives) >= before {
		t.Fatalf("widgets toggle must drop labels and handles")
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("q must quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q must produce QuitMsg")
	}
}
