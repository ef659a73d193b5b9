package trace

import "time"

// Kind is what happened: a span opened or closed, an instant, a failure.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
	KindError // проходит на любом уровне, кроме off
)

// Scope is how coarse an event is; smaller is coarser.
type Scope uint8

const (
	ScopeCommand     Scope = iota + 1 // CLI command or UI session
	ScopeInteraction                  // one press/move/release or text replacement
	ScopePass                         // parse, extract, build, splice
)

var (
	kindNames  = [...]string{KindSpanBegin: "begin", KindSpanEnd: "end", KindPoint: "point", KindError: "error"}
	scopeNames = [...]string{ScopeCommand: "command", ScopeInteraction: "interaction", ScopePass: "pass"}
)

func (k Kind) String() string { return name(kindNames[:], int(k)) }

func (s Scope) String() string { return name(scopeNames[:], int(s)) }

func name(names []string, i int) string {
	if i > 0 && i < len(names) {
		return names[i]
	}
	return "unknown"
}

// Event is one trace record.
type Event struct {
	Time     time.Time
	Seq      uint64 // assigned by the first Recorder that sees the event
	Kind     Kind
	Scope    Scope
	SpanID   uint64 // 0 for points and errors
	ParentID uint64 // 0 at the root
	Name     string // "rebuild", "parse", "move", ...
	Detail   string
	Extra    map[string]string
}
