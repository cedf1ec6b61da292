// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/stage-assets/pkg/constants"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reports changes to a fixed set of files in one directory.
// Bursts of events are collapsed: the callback runs once the files have been
// quiet for the debounce duration.
type Watcher struct {
	watcher  *fsnotify.Watcher
	dir      string
	files    map[string]struct{}
	debounce time.Duration
	log      logging.Logger
}

// New watches [dir], creating it first when missing. Only [dir] itself is
// watched: writes to the target of a symlinked file go unnoticed.
func New(dir string, files []string, debounce time.Duration, log logging.Logger) (*Watcher, error) {
	if err := os.MkdirAll(dir, constants.DefaultPerms755); err != nil {
		return nil, fmt.Errorf("failed creating %s: %w", dir, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// files replaced by rename lose per-file watches, so watch the directory
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed watching %s: %w", dir, err)
	}
	w := &Watcher{
		watcher:  watcher,
		dir:      dir,
		files:    make(map[string]struct{}, len(files)),
		debounce: debounce,
		log:      log,
	}
	for _, file := range files {
		w.files[filepath.Clean(file)] = struct{}{}
	}
	return w, nil
}

func (w *Watcher) isRelevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	rel, err := filepath.Rel(w.dir, event.Name)
	if err != nil {
		return false
	}
	_, ok := w.files[rel]
	return ok
}

// Run calls [onChange] after every debounced change until [ctx] is done.
// Errors returned by [onChange] are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context, onChange func() error) error {
	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.isRelevant(event) {
				continue
			}
			w.log.Debug("source change", zap.String("file", event.Name), zap.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C
		case <-timerC:
			timerC = nil
			if err := onChange(); err != nil {
				w.log.Warn("restaging failed", zap.Error(err))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watch error", zap.String("dir", w.dir), zap.Error(err))
		}
	}
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}
