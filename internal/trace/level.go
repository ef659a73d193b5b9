package trace

import (
	"fmt"
	"slices"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota // no tracing
	LevelError               // only failed cycles
	LevelPhase               // commands and interactions
	LevelDetail              // passes
	LevelDebug               // everything
)

var levelNames = []string{"off", "error", "phase", "detail", "debug"}

// finest scope each level lets through; ошибки идут мимо, см. Allows
var levelScope = [...]Scope{LevelPhase: ScopeInteraction, LevelDetail: ScopePass, LevelDebug: ScopePass}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel accepts the names printed by Level.String; "" means off.
func ParseLevel(s string) (Level, error) {
	if s == "" {
		return LevelOff, nil
	}
	i := slices.Index(levelNames, strings.ToLower(s))
	if i < 0 {
		return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames, "|"))
	}
	return Level(i), nil
}

// ShouldEmit reports whether spans and points of scope pass at level l.
func (l Level) ShouldEmit(scope Scope) bool {
	return int(l) < len(levelScope) && scope != 0 && scope <= levelScope[l]
}

// Allows reports whether ev passes the level filter.
func (l Level) Allows(ev *Event) bool {
	if ev.Kind == KindError {
		return l > LevelOff
	}
	return l.ShouldEmit(ev.Scope)
}
