package portfolio

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("folio/portfolio")

// Library serves the current Site and rebuilds it when the pages
// directory changes.
type Library struct {
	dir      string
	onChange func(*Site)

	mu   sync.RWMutex
	site *Site
}

// NewLibrary renders the embedded pages, overlaid with the markdown files
// in dir when dir is not empty. A missing dir is not an error; broken
// pages in it are logged and skipped.
func NewLibrary(dir string) (*Library, error) {
	l := &Library{dir: dir}
	if err := l.Reload(); err != nil {
		if l.Site() == nil {
			return nil, err
		}
		log.Warnf("pages: %v", err)
	}
	return l, nil
}

// OnChange registers fn to be called after every reload triggered by the
// watcher. It must be set before Watch.
func (l *Library) OnChange(fn func(*Site)) {
	l.onChange = fn
}

func (l *Library) Dir() string { return l.dir }

func (l *Library) Site() *Site {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.site
}

// Reload rebuilds the site. Pages that fail to render are left out and
// reported in the error; the site is swapped in regardless.
func (l *Library) Reload() error {
	var overlays []fs.FS
	if l.dir != "" {
		if st, err := os.Stat(l.dir); err == nil && st.IsDir() {
			overlays = append(overlays, os.DirFS(l.dir))
		} else if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("pages dir: %w", err)
		}
	}
	site, err := Build(overlays...)
	if site == nil {
		return err
	}
	l.mu.Lock()
	l.site = site
	l.mu.Unlock()
	return err
}

// Watch reloads the site whenever a markdown file in the pages directory
// is written, created, removed or renamed. It blocks until ctx is done.
func (l *Library) Watch(ctx context.Context) error {
	if l.dir == "" {
		<-ctx.Done()
		return nil
	}
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return fmt.Errorf("create pages dir: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(l.dir); err != nil {
		return fmt.Errorf("watch %s: %w", l.dir, err)
	}
	log.Infof("watching %s for page changes", l.dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".md") {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if err := l.Reload(); err != nil {
				log.Warnf("hot reload after %s: %v", filepath.Base(event.Name), err)
			} else {
				log.Debugf("reloaded pages after %s", filepath.Base(event.Name))
			}
			if l.onChange != nil {
				l.onChange(l.Site())
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnf("watcher error: %v", err)
		}
	}
}
