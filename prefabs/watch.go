package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Watcher reports edits to prefab and script files. Events carry the base
// file name so callers can match it against the names they loaded.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Pending drains the events received so far without blocking.
func (w *Watcher) Pending() []string {
	var names []string
	for {
		select {
		case name := <-w.Events:
			names = append(names, name)
		default:
			return names
		}
	}
}

func (w *Watcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isSpecFile(event.Name) && !isScriptFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- filepath.Base(event.Name):
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".tengo"
}

// ModTimePoller is the fallback for platforms where fsnotify cannot start.
// It compares on-disk modification times each time Pending is called.
type ModTimePoller struct {
	names []string
	seen  map[string]time.Time
}

func NewModTimePoller(names ...string) *ModTimePoller {
	p := &ModTimePoller{names: names, seen: make(map[string]time.Time, len(names))}
	for _, name := range names {
		if t, ok := ModTime(name); ok {
			p.seen[name] = t
		}
	}
	return p
}

// Pending returns the base names of files written since the last call.
func (p *ModTimePoller) Pending() []string {
	var changed []string
	for _, name := range p.names {
		t, ok := ModTime(name)
		if !ok {
			continue
		}
		if prev, seen := p.seen[name]; seen && !t.After(prev) {
			continue
		}
		p.seen[name] = t
		changed = append(changed, filepath.Base(name))
	}
	return changed
}
