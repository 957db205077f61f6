package theme

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"deckforge/internal/logging"
)

// Watch hot-reloads the user theme file into the catalog whenever it
// changes, invoking onReload after each successful merge. It watches the
// containing directory so editors that replace the file (write temp +
// rename) are still caught. The returned stop function releases the
// watcher.
func (c *Catalog) Watch(userPath string, onReload func()) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(userPath)); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != userPath {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if err := c.Reload(userPath); err != nil {
					logging.ThemeError("Theme reload failed: %v", err)
					continue
				}
				logging.Theme("User themes reloaded from %s", userPath)
				if onReload != nil {
					onReload()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.ThemeError("Theme watcher error: %v", err)
			}
		}
	}()

	return func() {
		watcher.Close()
		<-done
	}, nil
}
