// Package trace provides structured event tracing for the sns editor loop.
//
// Every rebuild cycle and every canvas interaction can be traced, which helps
// to see which control point a gesture picked and which span an edit rewrote.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	sns edit prog.sns move --at 62,45 --to 100,100 --trace-level=detail --trace-output=-
//
// # Architecture
//
//   - Nop: zero-overhead tracer when disabled
//   - Recorder: writes events to a stream (file/stderr), keeps the last N in
//     memory for the terminal UI, or both
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: only failed cycles
//   - LevelPhase: commands and interactions
//   - LevelDetail: passes (parse, extract, build, splice)
//   - LevelDebug: everything
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "parse", parentID)
//	defer span.End("")
package trace
