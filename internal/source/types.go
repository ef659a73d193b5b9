package source

// FileFlags encodes metadata about a program file.
type FileFlags uint8 // метаданные

const (
	// FileVirtual indicates the program was added from memory (test, stdin, editor buffer).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска
	FileHadBOM
	FileNormalizedCRLF
)

// File captures one revision of program text.
// A File is immutable: every edit produces new text and therefore a new File.
type File struct {
	Path    string
	Content []byte
	LineIdx []uint32
	Flags   FileFlags
}

// LineCol represents a human-readable position in a program.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
