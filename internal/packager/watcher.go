package packager

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/plugforge/plugpack/internal/domain"
	"github.com/plugforge/plugpack/internal/ports"
)

// DefaultWatchDebounce coalesces bursts of filesystem events into one repack.
const DefaultWatchDebounce = 300 * time.Millisecond

// Watch packages the requested targets once, then monitors each resolved
// source directory and repackages a target whenever its top-level contents
// change. Every batch outcome, the initial pass included, is delivered to
// notify. Watch blocks until ctx is cancelled.
//
// Repacks are serialized so console output from concurrent archiver
// subprocesses cannot interleave.
func (p *Packager) Watch(ctx context.Context, req domain.BatchRequest, debounce time.Duration, notify func(domain.BatchResult)) error {
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	targets, err := p.Expand(req)
	if err != nil {
		return err
	}

	w := &watchSession{
		packager: p,
		debounce: debounce,
		notify:   notify,
		timers:   make(map[string]*time.Timer),
	}

	// Initial pass before watching so every target has a current artifact.
	batch, err := p.Run(ctx, domain.BatchRequest{Targets: targets})
	if err != nil {
		return err
	}
	w.deliver(batch)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	inputByDir := make(map[string]string, len(targets))
	for _, input := range targets {
		target, err := p.resolver.Resolve(input)
		if err != nil {
			p.logger.Warn("not watching unresolvable target",
				ports.String("target", input), ports.Err(err))
			continue
		}
		if err := watcher.Add(target.AbsolutePath); err != nil {
			p.logger.Warn("failed to watch target",
				ports.String("target", input), ports.Err(err))
			continue
		}
		inputByDir[target.AbsolutePath] = input
		p.logger.Info("watching", ports.String("target", input),
			ports.String("dir", target.AbsolutePath))
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			input, ok := inputByDir[filepath.Dir(event.Name)]
			if !ok {
				if input, ok = inputByDir[event.Name]; !ok {
					continue
				}
			}
			w.schedule(ctx, input)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			p.logger.Warn("watch error", ports.Err(err))
		}
	}
}

// watchSession tracks per-target debounce timers for one Watch invocation.
type watchSession struct {
	packager *Packager
	debounce time.Duration
	notify   func(domain.BatchResult)

	mu     sync.Mutex
	runMu  sync.Mutex
	timers map[string]*time.Timer
}

// schedule arms (or re-arms) the debounce timer for a target.
func (w *watchSession) schedule(ctx context.Context, input string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[input]; ok {
		t.Stop()
	}
	w.timers[input] = time.AfterFunc(w.debounce, func() {
		w.repack(ctx, input)
	})
}

func (w *watchSession) repack(ctx context.Context, input string) {
	w.runMu.Lock()
	defer w.runMu.Unlock()

	if ctx.Err() != nil {
		return
	}
	batch, err := w.packager.Run(ctx, domain.BatchRequest{Targets: []string{input}})
	if err != nil {
		w.packager.logger.Error("repack aborted", ports.String("target", input), ports.Err(err))
		return
	}
	w.deliver(batch)
}

func (w *watchSession) deliver(batch domain.BatchResult) {
	if w.notify != nil {
		w.notify(batch)
	}
}
