// Package watch reports external edits of a program file.
package watch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher follows one file. The parent directory is watched, so editors that
// save by rename-over still produce events.
type Watcher struct {
	w       *fsnotify.Watcher
	path    string
	changes chan string
	errs    chan error
	done    chan struct{}

	mu    sync.Mutex
	known []string // недавние сохранения владельца, старые в начале
	last  string   // последнее отправленное в Changes
}

// knownDepth bounds how many recent self-saves are remembered. An event may
// be delivered after later saves already happened, so the file can briefly
// hold an older save than the newest Known text.
const knownDepth = 8

// New starts watching path. known is the content the caller already has.
func New(path, known string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	w := &Watcher{
		w:       fw,
		path:    abs,
		changes: make(chan string, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
		known:   []string{known},
		last:    known,
	}
	go w.eventLoop()
	return w, nil
}

// Changes delivers the new file content after each external modification.
func (w *Watcher) Changes() <-chan string { return w.changes }

// Errors delivers watcher and read failures.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Known records text as already seen, e.g. right before the editor saves it.
func (w *Watcher) Known(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i := slices.Index(w.known, text); i >= 0 {
		w.known = slices.Delete(w.known, i, i+1)
	}
	w.known = append(w.known, text)
	if len(w.known) > knownDepth {
		w.known = slices.Delete(w.known, 0, len(w.known)-knownDepth)
	}
}

// Close stops the watcher; Changes is closed afterwards.
func (w *Watcher) Close() error {
	err := w.w.Close()
	<-w.done
	return err
}

func (w *Watcher) eventLoop() {
	defer close(w.done)
	defer close(w.changes)
	for {
		select {
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		// файл мог исчезнуть между событием и чтением (rename-over)
		if !errors.Is(err, os.ErrNotExist) {
			w.sendErr(err)
		}
		return
	}
	text := string(data)

	w.mu.Lock()
	same := text == w.last || slices.Contains(w.known, text)
	if !same {
		w.last = text
		// после внешней правки прежние сохранения уже не наши
		w.known = w.known[:0]
	}
	w.mu.Unlock()
	if same {
		return
	}
	// старое непрочитанное значение заменяется новым
	select {
	case <-w.changes:
	default:
	}
	w.changes <- text
}

func (w *Watcher) sendErr(err error) {
	select {
	case w.errs <- err:
	default:
	}
}
