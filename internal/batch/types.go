package batch

import "time"

// Stage is the step a file is in: parse, then render, then write the PNG.
type Stage string

const (
	StageParse  Stage = "parse"
	StageRender Stage = "render"
	StageWrite  Stage = "write"
)

// Status: queued -> working (per stage) -> done | error
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event is a progress report for one file.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration // для done и error
}

// ProgressSink receives events from every worker at once, so it must be
// safe for concurrent use.
type ProgressSink interface {
	OnEvent(Event)
}

// SinkFunc adapts a function to ProgressSink.
type SinkFunc func(Event)

func (f SinkFunc) OnEvent(ev Event) { f(ev) }

// Result is the outcome for one input file.
type Result struct {
	Path    string
	Out     string // путь PNG
	Err     error
	Elapsed time.Duration
}
