package preview

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watch rebuilds the template when the watched file changes. Editors often
// emit bursts of events per save, so rebuilds are debounced.
func (s *Server) watch(ctx context.Context) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(s.cfg.WatchPath); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		const debounce = 100 * time.Millisecond
		var timer *time.Timer
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
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounce, func() {
					if err := s.reload(ctx); err != nil {
						s.log.Error("rebuild failed", "path", s.cfg.WatchPath, "error", err)
					}
				})
			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.log.Warn("watcher error", "error", watchErr)
			}
		}
	}()

	return func() { watcher.Close() }, nil
}
