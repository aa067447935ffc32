package glossa

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Watch subscribes to filesystem events for the given directories and
// re-ingests translation files as they are written or created, replacing
// the need to poll CheckForChanges. The watch goroutine runs until ctx is
// canceled.
//
// Only files with a recognized extension are ingested; other events in the
// watched directories are ignored. Watcher errors are logged and do not
// stop the watch.
func (s *Store) Watch(ctx context.Context, dirs ...string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return fmt.Errorf("watching %q: %w", dir, err)
		}
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if !supportedFile(event.Name) {
					continue
				}
				s.log.Info("detected change in translation file", "path", event.Name)
				if err := s.LoadFile(event.Name); err != nil {
					s.report("failed to reload "+event.Name+": "+err.Error(), ReportReloadFailure)
					s.log.Warn("failed to reload translation file", "path", event.Name, "error", err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.log.Warn("translation watcher error", "error", err)
			}
		}
	}()

	return nil
}
