// Package watch rebuilds the portfolio when its sources change.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/site"
)

// DefaultDebounce is how long the watcher waits for a burst of saves to
// settle before calling back.
const DefaultDebounce = 300 * time.Millisecond

// ChangeFunc is called once per settled burst with the paths that changed.
type ChangeFunc func(ctx context.Context, changed []string) error

// Watcher watches individual files (the content file, the config file) and
// directory trees (the static directory) and calls back after changes.
type Watcher struct {
	Files    []string
	Dirs     []string
	Exclude  []string
	// Ignore lists directories whose changes never trigger a rebuild,
	// typically the output directory.
	Ignore   []string
	Debounce time.Duration
	OnChange ChangeFunc

	logger *zap.Logger
	fw     *fsnotify.Watcher
	files  map[string]bool
	roots  []string
	ignore []string
	done   chan struct{}
}

// New creates a Watcher. A nil logger discards logs.
func New(logger *zap.Logger, onChange ChangeFunc) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		Debounce: DefaultDebounce,
		OnChange: onChange,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Start registers the watches and runs the event loop in a goroutine until
// ctx is cancelled. Missing files and directories are skipped.
func (w *Watcher) Start(ctx context.Context) error {
	if w.OnChange == nil {
		return fmt.Errorf("watch: no change callback")
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	w.fw = fw
	w.files = make(map[string]bool)
	for _, d := range w.Ignore {
		if d == "" {
			continue
		}
		abs, err := filepath.Abs(d)
		if err != nil {
			fw.Close()
			return err
		}
		w.ignore = append(w.ignore, abs)
	}

	// Files are watched through their parent directory so that editors
	// which save by renaming a temp file over the original are still seen.
	parents := make(map[string]bool)
	for _, f := range w.Files {
		if f == "" {
			continue
		}
		abs, err := filepath.Abs(f)
		if err != nil {
			fw.Close()
			return err
		}
		w.files[abs] = true
		parents[filepath.Dir(abs)] = true
	}
	for dir := range parents {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	for _, d := range w.Dirs {
		if d == "" {
			continue
		}
		abs, err := filepath.Abs(d)
		if err != nil {
			fw.Close()
			return err
		}
		if info, err := os.Stat(abs); err != nil || !info.IsDir() {
			w.logger.Debug("watch: skipping missing directory", zap.String("dir", d))
			continue
		}
		if err := w.addTree(abs); err != nil {
			fw.Close()
			return err
		}
		w.roots = append(w.roots, abs)
	}

	go w.run(ctx)
	return nil
}

// Done is closed once the event loop has stopped.
func (w *Watcher) Done() <-chan struct{} { return w.done }

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)
	defer w.fw.Close()

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending = make(map[string]bool)
	)
	stop := func() {
		if timer != nil {
			timer.Stop()
		}
	}
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) && w.underRoot(event.Name) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						w.logger.Warn("watch: adding directory", zap.String("dir", event.Name), zap.Error(err))
					}
				}
			}
			if event.Has(fsnotify.Chmod) || !w.relevant(event.Name) {
				continue
			}
			w.logger.Debug("watch: change", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			pending[event.Name] = true
			stop()
			timer = time.NewTimer(debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			sort.Strings(changed)
			clear(pending)
			if err := w.OnChange(ctx, changed); err != nil {
				w.logger.Error("watch: rebuild failed", zap.Error(err))
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch: watcher error", zap.Error(err))
		}
	}
}

// addTree watches dir and every directory below it.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && d.Name() == ".git" {
			return filepath.SkipDir
		}
		if w.ignored(path) {
			return filepath.SkipDir
		}
		if err := w.fw.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}

// relevant reports whether a change to path should trigger a rebuild.
func (w *Watcher) relevant(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	if w.files[abs] {
		return true
	}
	if w.ignored(abs) {
		return false
	}
	for _, root := range w.roots {
		rel, err := filepath.Rel(root, abs)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			continue
		}
		return !site.MatchesExclude(rel, w.Exclude)
	}
	return false
}

func (w *Watcher) underRoot(path string) bool {
	return under(path, w.roots)
}

func (w *Watcher) ignored(path string) bool {
	return under(path, w.ignore)
}

// under reports whether path is one of dirs or lies below one of them.
func under(path string, dirs []string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	for _, dir := range dirs {
		if abs == dir || strings.HasPrefix(abs, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
