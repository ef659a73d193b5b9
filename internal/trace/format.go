package trace

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Format is how a Recorder serializes events to its stream.
type Format uint8

const (
	FormatAuto   Format = iota // by output path, see Config
	FormatText                 // one readable line per event
	FormatNDJSON               // one JSON object per line
)

// FormatEvent renders ev as a single newline-terminated line.
func FormatEvent(ev *Event, format Format) []byte {
	if format == FormatNDJSON {
		data, _ := json.Marshal(jsonEvent{
			Time:     ev.Time.Format("2006-01-02T15:04:05.000000Z07:00"),
			Seq:      ev.Seq,
			Kind:     ev.Kind.String(),
			Scope:    ev.Scope.String(),
			SpanID:   ev.SpanID,
			ParentID: ev.ParentID,
			Name:     ev.Name,
			Detail:   ev.Detail,
			Extra:    ev.Extra,
		})
		return append(data, '\n')
	}
	return []byte(textLine(ev))
}

type jsonEvent struct {
	Time     string            `json:"time"`
	Seq      uint64            `json:"seq"`
	Kind     string            `json:"kind"`
	Scope    string            `json:"scope"`
	SpanID   uint64            `json:"span_id,omitempty"`
	ParentID uint64            `json:"parent_id,omitempty"`
	Name     string            `json:"name"`
	Detail   string            `json:"detail,omitempty"`
	Extra    map[string]string `json:"extra,omitempty"`
}

var glyphs = [...]string{KindSpanBegin: "→ ", KindSpanEnd: "← ", KindPoint: "• ", KindError: "! "}

// textLine: "[seq] [отступ]глиф имя (detail) {k=v, ...}"
func textLine(ev *Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%6d] ", ev.Seq)
	if ev.ParentID > 0 {
		b.WriteString("  ")
	}
	if int(ev.Kind) < len(glyphs) {
		b.WriteString(glyphs[ev.Kind])
	}
	b.WriteString(ev.Name)
	if ev.Detail != "" {
		fmt.Fprintf(&b, " (%s)", ev.Detail)
	}
	if len(ev.Extra) > 0 {
		pairs := make([]string, 0, len(ev.Extra))
		for _, k := range slices.Sorted(maps.Keys(ev.Extra)) {
			pairs = append(pairs, k+"="+ev.Extra[k])
		}
		fmt.Fprintf(&b, " {%s}", strings.Join(pairs, ", "))
	}
	b.WriteByte('\n')
	return b.String()
}
