package cmd

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dmitrymomot/namegen/pkg/logger"
)

const reloadDebounce = 200 * time.Millisecond

// watchCorpus calls reload after any of files changes, until ctx is done.
// Parent directories are watched so editors that save by rename are seen.
// Bursts of events within reloadDebounce trigger a single reload.
func watchCorpus(ctx context.Context, files []string, log *slog.Logger, reload func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	wanted := make(map[string]bool, len(files))
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			w.Close()
			return err
		}
		wanted[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			w.Close()
			return err
		}
	}

	go func() {
		defer w.Close()

		timer := time.NewTimer(reloadDebounce)
		timer.Stop()
		for {
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !wanted[filepath.Clean(ev.Name)] || (ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write)) {
					continue
				}
				log.DebugContext(ctx, "corpus changed", logger.Path(ev.Name), slog.String("op", ev.Op.String()))
				timer.Reset(reloadDebounce)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.WarnContext(ctx, "corpus watcher error", logger.Error(err))
			case <-timer.C:
				reload()
			}
		}
	}()
	return nil
}
