package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// settle is how long the matrix must stay quiet before regenerating.
// Editors often save through several write and rename events.
const settle = 100 * time.Millisecond

// watch calls run each time the file at path changes, until ctx is done.
// The parent directory is watched so that files replaced by rename are
// still seen. Failures of run are logged and do not stop the watch.
func watch(ctx context.Context, path string, log *zap.Logger, run func(context.Context) error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer w.Close()

	target, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, "resolve %s", path)
	}
	if err := w.Add(filepath.Dir(target)); err != nil {
		return errors.Wrapf(err, "watch %s", filepath.Dir(target))
	}
	log.Info("watching matrix", zap.String("path", target))

	timer := time.NewTimer(settle)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			timer.Reset(settle)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", zap.Error(err))
		case <-timer.C:
			log.Info("matrix changed, regenerating")
			if err := run(ctx); err != nil {
				log.Error("generation failed", zap.Error(err))
			}
		}
	}
}
