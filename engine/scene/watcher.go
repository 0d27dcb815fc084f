package scene

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/c3d/engine/core"
)

// Watcher re-evaluates a scene file every time it is written.
type Watcher struct {
	path     string
	onChange func(*Output, error)

	fsnotify *fsnotify.Watcher
	done     chan struct{}
	wg       sync.WaitGroup

	mutex    sync.Mutex
	isClosed bool
}

func NewWatcher(path string, onChange func(*Output, error)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		path:     abs,
		onChange: onChange,
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}, nil
}

// Start evaluates the scene once and then keeps watching it until Close is called.
// The parent directory is watched rather than the file itself, since editors
// commonly replace files by renaming over them.
// onChange runs without the watcher lock held and may call Close.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.isClosed {
		w.mutex.Unlock()
		return errors.New("scene watcher already closed")
	}
	if err := w.fsnotify.Add(filepath.Dir(w.path)); err != nil {
		w.mutex.Unlock()
		return err
	}
	w.mutex.Unlock()

	w.reload()

	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.isClosed {
		return nil
	}
	w.wg.Add(1)
	go w.start()
	return nil
}

func (w *Watcher) Close() error {
	w.mutex.Lock()
	if w.isClosed {
		w.mutex.Unlock()
		return nil
	}
	w.isClosed = true
	w.mutex.Unlock()

	close(w.done)
	w.wg.Wait()
	return w.fsnotify.Close()
}

func (w *Watcher) start() {
	defer w.wg.Done()
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.reload()
			}
			if e.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				core.LogWarn("scene file %s was removed, waiting for it to come back", w.path)
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(err.Error())

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload() {
	s, err := Load(w.path)
	if err != nil {
		core.LogError("failed to load scene %s: %s", w.path, err)
		w.onChange(nil, err)
		return
	}
	w.onChange(s.Evaluate(), nil)
}
