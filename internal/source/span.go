package source

import (
	"fmt"
)

// Span is a half-open byte range into program text.
type Span struct {
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Contains reports whether other lies entirely inside s.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Rel re-bases s onto the start of outer, so it can index a slice cut at outer.Start.
// Вызывающий обязан гарантировать outer.Contains(s).
func (s Span) Rel(outer Span) Span {
	return Span{Start: s.Start - outer.Start, End: s.End - outer.Start}
}

// In returns the text covered by the span, or "" if the span is out of range.
func (s Span) In(text string) string {
	if s.Start > s.End || int(s.End) > len(text) {
		return ""
	}
	return text[s.Start:s.End]
}
