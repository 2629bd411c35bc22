// Package feed tails the JSONL lifecycle files written by the external
// bundler and turns their records into compiler hooks and validation
// reports.
package feed

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceInterval is the time to wait for rapid file changes to settle.
const debounceInterval = 50 * time.Millisecond

// Tail follows a JSONL file and invokes onLine for every complete line
// appended to it. The file may not exist yet when Start is called; lines
// are picked up once it appears. A truncated or recreated file is read
// again from the beginning.
type Tail struct {
	path   string
	onLine func(line []byte)
	logger *slog.Logger

	running atomic.Bool
	done    chan struct{}
	ctx     context.Context
	cancel  context.CancelFunc

	mu     sync.Mutex
	offset int64
}

// NewTail creates a Tail for path. onLine is called from the watch
// goroutine, one complete line at a time, without the trailing newline.
func NewTail(path string, onLine func([]byte), logger *slog.Logger) *Tail {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tail{
		path:   path,
		onLine: onLine,
		logger: logger.With("component", "feed", "path", path),
	}
}

// Start begins following the file in a background goroutine.
// Returns immediately. Use Stop() to terminate.
func (t *Tail) Start(ctx context.Context) error {
	if t.running.Load() {
		return fmt.Errorf("tail already running")
	}

	t.ctx, t.cancel = context.WithCancel(ctx)
	t.done = make(chan struct{})
	t.running.Store(true)
	t.offset = 0

	go t.runLoop()

	return nil
}

// Stop terminates the tail and waits for the watch goroutine to exit.
func (t *Tail) Stop() error {
	if !t.running.Load() {
		return nil
	}
	t.cancel()
	<-t.done
	return nil
}

// Running reports whether the tail is active.
func (t *Tail) Running() bool {
	return t.running.Load()
}

// runLoop is the main file watching loop.
func (t *Tail) runLoop() {
	defer func() {
		t.running.Store(false)
		close(t.done)
	}()

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		t.logger.Warn("failed to create file watcher", "error", err)
		return
	}
	defer func() { _ = fsWatcher.Close() }()

	// Watch the parent directory since the file may not exist yet.
	dir := filepath.Dir(t.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.logger.Warn("failed to create feed directory", "error", err)
	}
	if err := fsWatcher.Add(dir); err != nil {
		t.logger.Warn("failed to watch feed directory", "error", err)
		return
	}

	t.logger.Debug("tailing feed file")

	// Pick up anything already present.
	if err := t.consume(); err != nil && !errors.Is(err, os.ErrNotExist) {
		t.logger.Warn("initial read failed", "error", err)
	}

	var debounceTimer *time.Timer
	var debounceMu sync.Mutex
	var pending sync.WaitGroup

	// Stop leaves no read in flight: the exiting loop cancels a pending
	// timer and waits for a fired callback to finish before done closes.
	defer func() {
		debounceMu.Lock()
		if debounceTimer != nil && debounceTimer.Stop() {
			pending.Done()
		}
		debounceMu.Unlock()
		pending.Wait()
	}()

	triggerRead := func() {
		debounceMu.Lock()
		if debounceTimer != nil && debounceTimer.Stop() {
			pending.Done()
		}
		pending.Add(1)
		debounceTimer = time.AfterFunc(debounceInterval, func() {
			defer pending.Done()
			if err := t.consume(); err != nil && !errors.Is(err, os.ErrNotExist) {
				t.logger.Warn("feed read failed", "error", err)
			}
		})
		debounceMu.Unlock()
	}

	targetFile := filepath.Base(t.path)

	for {
		select {
		case <-t.ctx.Done():
			return

		case event, ok := <-fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != targetFile {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				triggerRead()
			}

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return
			}
			t.logger.Warn("file watcher error", "error", err)
		}
	}
}

// consume reads complete lines appended since the last read and dispatches
// them. A partial trailing line (no newline yet) is left for the next read.
func (t *Tail) consume() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	f, err := os.Open(t.path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.Size() < t.offset {
		// File was truncated or replaced; start over.
		t.offset = 0
	}

	if _, err := f.Seek(t.offset, io.SeekStart); err != nil {
		return err
	}

	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			if err == io.EOF {
				// Incomplete line: wait for the writer to finish it.
				return nil
			}
			return err
		}

		t.offset += int64(len(line))
		line = line[:len(line)-1]
		if len(line) > 0 {
			t.onLine(line)
		}
	}
}
