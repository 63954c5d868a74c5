package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// settleDelay lets a writer finish before a changed file is rescored.
const settleDelay = 200 * time.Millisecond

// Watch runs the processor once, then rescores files as they are created or
// modified under dir until the context is cancelled. Score outputs land in
// the same output directory as a one-shot run, so the output directory is
// excluded from watching to avoid rescoring our own writes.
func (p *Processor) Watch(ctx context.Context, dir string) error {
	if err := p.Run(ctx, dir); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	contextGraph, err := p.loadContext()
	if err != nil {
		return err
	}

	outputDir := p.outputDir
	if outputDir == "" {
		outputDir = filepath.Join(dir, "scores")
	}

	p.logger.Info("watching for catalogue changes", "dir", dir, "pattern", p.pattern)

	// Coalesce bursts of events per path.
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(settleDelay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if p.watchable(dir, outputDir, event.Name) {
				pending[event.Name] = time.Now()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			p.logger.Error("watch error", "error", err)

		case now := <-ticker.C:
			for path, stamp := range pending {
				if now.Sub(stamp) < settleDelay {
					continue
				}
				delete(pending, path)

				if err := p.ProcessFile(ctx, path, outputDir, contextGraph); err != nil {
					p.metrics.FileError()
					p.logger.Error("rescoring changed file", "path", path, "error", err)
					continue
				}
				p.metrics.FileProcessed()
				p.logger.Info("rescored changed file", "path", path)
			}
		}
	}
}

// watchable reports whether a changed path is an input the processor's
// pattern matches, outside the output directory.
func (p *Processor) watchable(dir, outputDir, path string) bool {
	if strings.HasPrefix(path, outputDir+string(filepath.Separator)) {
		return false
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	ok, err := doublestar.Match(p.pattern, filepath.ToSlash(rel))
	return err == nil && ok
}
