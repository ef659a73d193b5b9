package textedit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"

	"sns/internal/source"
)

var (
	// ErrStaleEdit: текст под span уже не тот, из которого строилась сцена.
	ErrStaleEdit = errors.New("existing text does not match expected content")
	// ErrSpanRange: span выходит за границы программы.
	ErrSpanRange = errors.New("edit span out of range")
)

// Edit replaces exactly one contiguous byte range.
// OldText, when non-empty, must equal the current text under Span.
type Edit struct {
	Span    source.Span
	NewText string
	OldText string
}

// Insert builds an edit that inserts text at off.
func Insert(off uint32, text string) Edit {
	return Edit{Span: source.Span{Start: off, End: off}, NewText: text}
}

// Append builds an edit that appends text to the end of prog.
func Append(prog, text string) Edit {
	n, err := safecast.Conv[uint32](len(prog))
	if err != nil {
		panic(fmt.Errorf("program too large: %w", err))
	}
	return Insert(n, text)
}

// Apply splices e into text. Other spans are never adjusted: any scene built
// from the old text must be discarded after a successful Apply.
func Apply(text string, e Edit) (string, error) {
	start, end := int(e.Span.Start), int(e.Span.End)
	if end < start || end > len(text) {
		return text, fmt.Errorf("%w: %s (len %d)", ErrSpanRange, e.Span, len(text))
	}
	if e.OldText != "" && text[start:end] != e.OldText {
		return text, fmt.Errorf("%w at %s", ErrStaleEdit, e.Span)
	}
	return text[:start] + e.NewText + text[end:], nil
}

// WriteFile заменяет файл программы атомарно: текст пишется во временный файл
// рядом и переименовывается поверх, так что читатель никогда не видит
// усечённый файл. Права доступа прежнего файла сохраняются.
func WriteFile(path, text string) (err error) {
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if _, err = f.WriteString(text); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = f.Chmod(mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	// Атомарная замена
	if err = os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
