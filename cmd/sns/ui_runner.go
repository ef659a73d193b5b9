package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"sns/internal/batch"
	"sns/internal/ui"
)

type renderOutcome struct {
	results []batch.Result
	err     error
}

func runRenderWithUI(ctx context.Context, title string, req *batch.Request) ([]batch.Result, error) {
	if req == nil {
		return nil, fmt.Errorf("missing render request")
	}
	events := make(chan batch.Event, 256)
	outcomeCh := make(chan renderOutcome, 1)

	go func() {
		reqCopy := *req
		reqCopy.Progress = batch.SinkFunc(func(ev batch.Event) { events <- ev })
		res, err := batch.Render(ctx, &reqCopy)
		outcomeCh <- renderOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, req.Files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
