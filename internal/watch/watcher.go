package watch

import (
	"context"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 500 * time.Millisecond

// FileWatcher signals when any of a set of files is written, created or
// replaced. Parent directories are watched so editors that save through a
// rename are still noticed.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	dirs     map[string]bool
	onChange chan struct{}
	debounce time.Duration
	mu       sync.Mutex
	timer    *time.Timer
	done     chan struct{}
	once     sync.Once
}

func NewFileWatcher() (*FileWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &FileWatcher{
		watcher:  fsw,
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
		onChange: make(chan struct{}, 1),
		debounce: DefaultDebounce,
		done:     make(chan struct{}),
	}, nil
}

func (w *FileWatcher) Add(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if w.files[absPath] {
		return nil
	}

	dir := filepath.Dir(absPath)
	if !w.dirs[dir] {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
		w.dirs[dir] = true
	}
	w.files[absPath] = true
	return nil
}

func (w *FileWatcher) Start() <-chan struct{} {
	go w.run()
	return w.onChange
}

func (w *FileWatcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.mu.Lock()
			watched := w.files[filepath.Clean(event.Name)]
			w.mu.Unlock()
			if watched {
				w.trigger()
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *FileWatcher) trigger() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case w.onChange <- struct{}{}:
		default:
		}
	})
}

func (w *FileWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
		err = w.watcher.Close()
	})
	return err
}

// Files returns the watched files, sorted.
func (w *FileWatcher) Files() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	files := make([]string, 0, len(w.files))
	for f := range w.files {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// Watch calls onChange after every debounced change to one of paths until
// ctx is done or onChange returns an error.
func Watch(ctx context.Context, paths []string, onChange func() error) error {
	w, err := NewFileWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	for _, p := range paths {
		if err := w.Add(p); err != nil {
			return err
		}
	}

	changes := w.Start()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			if err := onChange(); err != nil {
				return err
			}
		}
	}
}
