package domains

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher re-reads the dynamic domains when the execution database changes
// on disk, debouncing bursts of writes into a single reload.
type Watcher struct {
	path     string
	provider *Provider
	debounce time.Duration
	onChange func(workflows, folders []string)
	log      *zap.SugaredLogger
	fsw      *fsnotify.Watcher
}

// NewWatcher watches the database file backing provider. onChange receives
// the fresh name lists after every reload.
func NewWatcher(path string, provider *Provider, debounce time.Duration, log *zap.SugaredLogger, onChange func(workflows, folders []string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	// Watch the directory: sqlite swaps the -wal and -shm sidecars, and
	// watching the file inode directly misses those replacements.
	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, errors.Wrapf(err, "failed to watch directory %s", dir)
	}

	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Watcher{
		path:     path,
		provider: provider,
		debounce: debounce,
		onChange: onChange,
		log:      log,
		fsw:      fsw,
	}, nil
}

// Run blocks, dispatching reloads until the context is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			w.reload(ctx)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warnw("Domain watcher error", "error", err)
		}
	}
}

// relevant filters directory events down to writes touching the database
// file or its sqlite sidecars.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	return strings.HasPrefix(event.Name, w.path)
}

func (w *Watcher) reload(ctx context.Context) {
	workflows, err := w.provider.WorkflowNames(ctx)
	if err != nil {
		w.log.Warnw("Failed to reload workflow names", "error", err)
		return
	}
	folders, err := w.provider.FolderNames(ctx)
	if err != nil {
		w.log.Warnw("Failed to reload folder names", "error", err)
		return
	}

	w.log.Infow("Dynamic domains reloaded",
		"workflows", len(workflows),
		"folders", len(folders),
	)
	w.onChange(workflows, folders)
}
