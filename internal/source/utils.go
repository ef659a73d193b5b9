package source

import (
	"bytes"
	"path/filepath"
	"sort"

	"fortio.org/safecast"
)

var (
	bom  = []byte{0xEF, 0xBB, 0xBF}
	crlf = []byte("\r\n")
)

// normalizeCRLF сводит \r\n к \n; одиночный \r остаётся как есть.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !bytes.Contains(content, crlf) {
		return content, false
	}
	return bytes.ReplaceAll(content, crlf, []byte{'\n'}), true
}

func removeBOM(content []byte) ([]byte, bool) {
	rest, ok := bytes.CutPrefix(content, bom)
	return rest, ok
}

// buildLineIndex: смещения всех '\n' по возрастанию
func buildLineIndex(content []byte) []uint32 {
	idx := make([]uint32, 0, bytes.Count(content, []byte{'\n'}))
	for off := 0; ; off++ {
		i := bytes.IndexByte(content[off:], '\n')
		if i < 0 {
			return idx
		}
		off += i
		idx = append(idx, safecast.MustConv[uint32](off))
	}
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// строк до off ровно столько, сколько переводов строки строго левее
	line := sort.Search(len(lineIdx), func(i int) bool { return lineIdx[i] >= off })
	lineStart := uint32(0)
	if line > 0 {
		lineStart = lineIdx[line-1] + 1
	}
	return LineCol{Line: safecast.MustConv[uint32](line + 1), Col: off - lineStart + 1}
}

func normalizePath(p string) string {
	if p == "" || p[0] == '<' {
		return p // "<virtual>" и подобные
	}
	return filepath.ToSlash(filepath.Clean(p))
}
