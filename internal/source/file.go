package source

import (
	"fmt"
	"os"

	"fortio.org/safecast"
)

// NewFile wraps program text, computing its line index.
func NewFile(path string, content []byte, flags FileFlags) *File {
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		panic(fmt.Errorf("program too large: %w", err))
	}
	return &File{
		Path:    normalizePath(path),
		Content: content,
		LineIdx: buildLineIndex(content),
		Flags:   flags,
	}
}

// Virtual wraps in-memory program text (editor buffer, stdin, tests).
func Virtual(text string) *File {
	return NewFile("<buffer>", []byte(text), FileVirtual)
}

// Load reads a program from disk, normalizes CRLF/BOM and wraps it.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return NewFile(path, content, flags), nil
}

// Len returns the content length as a span offset.
func (f *File) Len() uint32 {
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return n
}

// Text returns the bytes covered by sp as a string.
func (f *File) Text(sp Span) string {
	if sp.Start > sp.End || sp.End > f.Len() {
		return ""
	}
	return string(f.Content[sp.Start:sp.End])
}

// Resolve converts a span into line and column positions.
func (f *File) Resolve(sp Span) (start, end LineCol) {
	return toLineCol(f.LineIdx, sp.Start), toLineCol(f.LineIdx, sp.End)
}

// GetLine возвращает строку с заданным номером (1-based) без перевода строки.
// Если строка не существует, возвращает пустую строку.
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}
	lenLineIdx := uint32(len(f.LineIdx))
	lenContent := f.Len()

	var start, end uint32
	switch {
	case lineNum == 1:
		start = 0
	case (lineNum - 2) < lenLineIdx:
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}

	if (lineNum - 1) < lenLineIdx {
		end = f.LineIdx[lineNum-1]
	} else {
		end = lenContent
	}
	if start > lenContent {
		return ""
	}
	return string(f.Content[start:end])
}

// EOFSpan returns the empty span at the end of the content.
func (f *File) EOFSpan() Span {
	n := f.Len()
	return Span{Start: n, End: n}
}
