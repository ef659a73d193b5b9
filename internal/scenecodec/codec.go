// Package scenecodec exports a Scene for external canvases, as JSON or msgpack.
package scenecodec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"sns/internal/scene"
)

// SchemaVersion is bumped whenever Document changes shape.
const SchemaVersion uint16 = 1

type Format uint8

const (
	FormatJSON Format = iota
	FormatMsgpack
)

var ErrFormat = errors.New("unknown scene format")

// ParseFormat accepts "json" and "msgpack" (or "mp").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "msgpack", "mp":
		return FormatMsgpack, nil
	}
	return FormatJSON, fmt.Errorf("%w: %q", ErrFormat, s)
}

// Primitive mirrors scene.Primitive with the kind spelled out.
type Primitive struct {
	Kind        string `json:"kind" msgpack:"kind"`
	Name        string `json:"name,omitempty" msgpack:"name,omitempty"`
	A           [2]int `json:"a" msgpack:"a"`
	B           [2]int `json:"b" msgpack:"b"`
	Text        string `json:"text,omitempty" msgpack:"text,omitempty"`
	Stroke      string `json:"stroke,omitempty" msgpack:"stroke,omitempty"`
	Fill        string `json:"fill,omitempty" msgpack:"fill,omitempty"`
	StrokeWidth int    `json:"stroke_width,omitempty" msgpack:"stroke_width,omitempty"`
	Dashed      bool   `json:"dashed,omitempty" msgpack:"dashed,omitempty"`
	RoundCap    bool   `json:"round_cap,omitempty" msgpack:"round_cap,omitempty"`
}

// Point is one control point with the byte range it rewrites.
type Point struct {
	Owner string    `json:"owner" msgpack:"owner"`
	Role  int       `json:"role" msgpack:"role"`
	At    [2]int    `json:"at" msgpack:"at"`
	Span  [2]uint32 `json:"span" msgpack:"span"`
}

// Document is the exported form of one rebuild.
type Document struct {
	Schema     uint16      `json:"schema" msgpack:"schema"`
	Primitives []Primitive `json:"primitives" msgpack:"primitives"`
	Preview    *Primitive  `json:"preview,omitempty" msgpack:"preview,omitempty"`
	Points     []Point     `json:"points,omitempty" msgpack:"points,omitempty"`
	Error      string      `json:"error,omitempty" msgpack:"error,omitempty"`
}

// FromScene converts s. A nil scene with err set describes a failed rebuild.
func FromScene(s *scene.Scene, preview *scene.Primitive, err error) Document {
	doc := Document{Schema: SchemaVersion, Primitives: []Primitive{}}
	if err != nil {
		doc.Error = err.Error()
	}
	if s != nil {
		doc.Primitives = make([]Primitive, 0, len(s.Primitives))
		for i := range s.Primitives {
			doc.Primitives = append(doc.Primitives, fromPrimitive(&s.Primitives[i]))
		}
		doc.Points = make([]Point, 0, len(s.Points))
		for _, cp := range s.Points {
			pos, sp := cp.Pos(), cp.Span()
			doc.Points = append(doc.Points, Point{
				Owner: cp.Owner().Head().Name,
				Role:  int(cp.Role()),
				At:    [2]int{pos.X, pos.Y},
				Span:  [2]uint32{sp.Start, sp.End},
			})
		}
	}
	if preview != nil {
		p := fromPrimitive(preview)
		doc.Preview = &p
	}
	return doc
}

func fromPrimitive(p *scene.Primitive) Primitive {
	return Primitive{
		Kind:        p.Kind.String(),
		Name:        p.Name,
		A:           [2]int{p.A.X, p.A.Y},
		B:           [2]int{p.B.X, p.B.Y},
		Text:        p.Text,
		Stroke:      p.Stroke,
		Fill:        p.Fill,
		StrokeWidth: p.StrokeWidth,
		Dashed:      p.Dashed,
		RoundCap:    p.RoundCap,
	}
}

// Encode writes doc to w.
func Encode(w io.Writer, doc *Document, format Format) error {
	switch format {
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(doc)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}
	return ErrFormat
}

// Decode reads a document and rejects schema versions it does not know.
func Decode(r io.Reader, format Format) (Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatMsgpack:
		err = msgpack.NewDecoder(r).Decode(&doc)
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&doc)
	default:
		return doc, ErrFormat
	}
	if err != nil {
		return Document{}, fmt.Errorf("decode scene: %w", err)
	}
	if doc.Schema != SchemaVersion {
		return Document{}, fmt.Errorf("decode scene: schema %d, want %d", doc.Schema, SchemaVersion)
	}
	return doc, nil
}
