// Package batch renders many program files to PNG concurrently.
// Files share nothing: each one gets its own Editor and Scene.
package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"sns/internal/raster"
	"sns/internal/session"
	"sns/internal/source"
	"sns/internal/trace"
)

// Request describes one batch.
type Request struct {
	Files    []string
	OutDir   string // "" = рядом с исходником
	Widgets  bool
	Raster   raster.Options
	Jobs     int
	Progress ProgressSink
	Tracer   trace.Tracer
}

// OutputPath maps prog.sns to prog.png, inside outDir when it is set.
func OutputPath(file, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)) + ".png"
	if outDir == "" {
		return filepath.Join(filepath.Dir(file), base)
	}
	return filepath.Join(outDir, base)
}

// Render processes every file. A failing file does not stop the others; its
// error is kept in the matching Result. The returned error joins all of them.
func Render(ctx context.Context, req *Request) ([]Result, error) {
	if req == nil {
		return nil, fmt.Errorf("missing render request")
	}
	results := make([]Result, len(req.Files))
	if len(req.Files) == 0 {
		return results, nil
	}
	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	tracer := req.Tracer
	if tracer == nil {
		tracer = trace.Nop
	}
	sp := trace.Begin(tracer, trace.ScopeCommand, "render", trace.ParentID(ctx))
	defer sp.End(fmt.Sprintf("%d files", len(req.Files)))

	for _, f := range req.Files {
		emit(req.Progress, Event{File: f, Status: StatusQueued})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(req.Files)))
	for i, path := range req.Files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			// индекс i уникален для горутины, мьютекс не нужен
			results[i] = renderOne(req, path, tracer, sp.ID())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Path, r.Err))
		}
	}
	return results, errors.Join(errs...)
}

func renderOne(req *Request, path string, tracer trace.Tracer, parent uint64) Result {
	start := time.Now()
	res := Result{Path: path, Out: OutputPath(path, req.OutDir)}
	fail := func(stage Stage, err error) Result {
		res.Err = err
		res.Elapsed = time.Since(start)
		trace.Error(tracer, string(stage), fmt.Errorf("%s: %w", path, err), parent)
		emit(req.Progress, Event{File: path, Stage: stage, Status: StatusError, Err: err, Elapsed: res.Elapsed})
		return res
	}

	emit(req.Progress, Event{File: path, Stage: StageParse, Status: StatusWorking})
	file, err := source.Load(path)
	if err != nil {
		return fail(StageParse, err)
	}
	ed := session.New(string(file.Content), session.Options{Widgets: req.Widgets, Tracer: tracer})
	if ed.Err() != nil {
		return fail(StageParse, ed.Err())
	}

	emit(req.Progress, Event{File: path, Stage: StageRender, Status: StatusWorking})
	img, err := raster.Render(ed.Scene(), req.Raster)
	if err != nil {
		return fail(StageRender, err)
	}

	emit(req.Progress, Event{File: path, Stage: StageWrite, Status: StatusWorking})
	if err := raster.WritePNG(res.Out, img); err != nil {
		return fail(StageWrite, err)
	}
	res.Elapsed = time.Since(start)
	emit(req.Progress, Event{File: path, Stage: StageWrite, Status: StatusDone, Elapsed: res.Elapsed})
	return res
}

func emit(sink ProgressSink, ev Event) {
	if sink != nil {
		sink.OnEvent(ev)
	}
}
