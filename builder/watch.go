package builder

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/obstools/headerdoc/config"
)

// Watch runs every build once, then reruns them all whenever a spec file in
// dir changes. It blocks until the context is cancelled. Build failures
// while watching are logged, not fatal, so a half-saved spec file does not
// kill the loop.
func (b *Builder) Watch(ctx context.Context, dir string, builds []config.BuildConfig) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	b.logger.Info("watching spec directory", "dir", dir)
	if err := b.RunAll(ctx, builds); err != nil {
		b.logger.Error("initial build failed", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, ".spec") {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			b.logger.Info("spec file changed", "file", event.Name, "op", event.Op.String())
			if err := b.RunAll(ctx, builds); err != nil {
				b.logger.Error("rebuild failed", "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			b.logger.Error("watch error", "error", err)
		}
	}
}
