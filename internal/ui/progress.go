package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"sns/internal/batch"
)

// renderRow is one program of a render batch; last is its latest event.
type renderRow struct {
	path string
	last batch.Event
}

var (
	stageVerb   = map[batch.Stage]string{batch.StageParse: "parsing", batch.StageRender: "rendering", batch.StageWrite: "writing"}
	stageWeight = map[batch.Stage]float64{batch.StageParse: 0.2, batch.StageRender: 0.5, batch.StageWrite: 0.9}

	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	busyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	idleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

func (r renderRow) finished() bool {
	return r.last.Status == batch.StatusDone || r.last.Status == batch.StatusError
}

func (r renderRow) label() string {
	if r.last.Status == batch.StatusWorking {
		return stageVerb[r.last.Stage]
	}
	return string(r.last.Status)
}

// share of the file's work already done, for the overall bar
func (r renderRow) share() float64 {
	if r.finished() {
		return 1
	}
	return stageWeight[r.last.Stage]
}

func (r renderRow) style() lipgloss.Style {
	switch r.last.Status {
	case batch.StatusDone:
		return okStyle
	case batch.StatusError:
		return errorStyle
	case batch.StatusWorking:
		return busyStyle
	}
	return idleStyle
}

type progressModel struct {
	title   string
	events  <-chan batch.Event
	spinner spinner.Model
	bar     progress.Model
	rows    []renderRow
	byPath  map[string]int
	width   int
	done    bool
}

type eventMsg batch.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that follows a render batch
// program by program. It quits once events is closed.
func NewProgressModel(title string, files []string, events <-chan batch.Event) tea.Model {
	m := &progressModel{
		title:   title,
		events:  events,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(busyStyle)),
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(76)),
		rows:    make([]renderRow, len(files)),
		byPath:  make(map[string]int, len(files)),
		width:   80,
	}
	for i, f := range files {
		m.rows[i] = renderRow{path: f, last: batch.Event{File: f, Status: batch.StatusQueued}}
		m.byPath[f] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.next)
}

// next ждёт следующее событие пакета
func (m *progressModel) next() tea.Msg {
	ev, ok := <-m.events
	if !ok {
		return doneMsg{}
	}
	return eventMsg(ev)
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(batch.Event(msg)), m.next)
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

// apply records ev for its file; events for unknown files or without a
// status are dropped.
func (m *progressModel) apply(ev batch.Event) tea.Cmd {
	i, ok := m.byPath[ev.File]
	if !ok || ev.Status == "" {
		return nil
	}
	m.rows[i].last = ev
	return m.bar.SetPercent(m.percent())
}

func (m *progressModel) percent() float64 {
	if len(m.rows) == 0 {
		return 0
	}
	var sum float64
	for _, r := range m.rows {
		sum += r.share()
	}
	return sum / float64(len(m.rows))
}

func (m *progressModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	var b strings.Builder
	header := m.spinner.View() + " " + m.title
	if m.done {
		header = "done: " + m.title
	}
	b.WriteString(titleStyle.Render(header) + "\n\n")

	var ok, failed int
	nameWidth := max(m.width-16, 20)
	for _, r := range m.rows {
		line := truncate(r.path, nameWidth)
		switch r.last.Status {
		case batch.StatusDone:
			ok++
			line += dimStyle.Render(fmt.Sprintf("  %.1f ms", float64(r.last.Elapsed.Microseconds())/1000))
		case batch.StatusError:
			failed++
			if r.last.Err != nil {
				line += "\n" + strings.Repeat(" ", 15) + errorStyle.Render(truncate(r.last.Err.Error(), nameWidth))
			}
		}
		fmt.Fprintf(&b, "  %s %s\n", r.style().Render(fmt.Sprintf("%12s", r.label())), line)
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	fmt.Fprintf(&b, "\n%d/%d rendered, %d failed\n", ok, len(m.rows), failed)
	return b.String()
}

func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
