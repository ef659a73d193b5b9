package lexer

import (
	"unicode/utf8"

	"fortio.org/safecast"

	"sns/internal/source"
)

// cursor walks the program bytes; offsets are uint32 like source.Span.
type cursor struct {
	src []byte
	off uint32
}

func newCursor(f *source.File) cursor { return cursor{src: f.Content} }

func (c *cursor) EOF() bool   { return int(c.off) >= len(c.src) }
func (c *cursor) Pos() uint32 { return c.off }

// Peek returns 0 at the end.
func (c *cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.src[c.off]
}

// Peek2 returns the current and the next byte; ok is false when fewer than two remain.
func (c *cursor) Peek2() (b0, b1 byte, ok bool) {
	if int(c.off)+1 >= len(c.src) {
		return 0, 0, false
	}
	return c.src[c.off], c.src[c.off+1], true
}

func (c *cursor) Bump() byte {
	b := c.Peek()
	if !c.EOF() {
		c.off++
	}
	return b
}

// PeekRune decodes the rune under the cursor; size is 0 at the end.
func (c *cursor) PeekRune() (r rune, size int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	if b := c.src[c.off]; b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(c.src[c.off:])
}

func (c *cursor) BumpRune() {
	_, n := c.PeekRune()
	c.off += safecast.MustConv[uint32](n)
}

// mark запоминает начало токена для SpanFrom
type mark uint32

func (c *cursor) Mark() mark { return mark(c.off) }

func (c *cursor) SpanFrom(m mark) source.Span {
	return source.Span{Start: uint32(m), End: c.off}
}
