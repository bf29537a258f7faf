// File: watch.go
// Title: Catalog File Watching
// Description: Implements hot reloading of locale files through file
//              system notifications so running applications pick up
//              message changes without a restart.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-05
// Modified: 2025-02-05
//
// Change History:
// - 2025-02-05 v0.1.0: Initial watcher implementation

package i18n

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/text/language"

	"github.com/msto63/corekit/core/errorx"
	"github.com/msto63/corekit/core/log"
)

// Watcher reloads a catalog's locale files when they change on disk.
// Registered OnReload handlers fire after each successful reload.
type Watcher struct {
	catalog *Catalog
	fw      *fsnotify.Watcher
	logger  *log.Logger
	done    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// Watch starts watching the catalog directory. Close the watcher to
// stop. Only one watcher per catalog is needed.
func (c *Catalog) Watch() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errorx.Wrap(err, "cannot create file watcher").
			WithCode(errorx.CodeInternal).
			WithOperation("Catalog.Watch")
	}

	if err := fw.Add(c.dir); err != nil {
		fw.Close()
		return nil, errorx.Wrap(err, "cannot watch catalog directory").
			WithCode(errorx.CodeNotFound).
			WithOperation("Catalog.Watch").
			WithDetail("directory", c.dir)
	}

	w := &Watcher{
		catalog: c,
		fw:      fw,
		logger:  c.logger,
		done:    make(chan struct{}),
	}

	w.wg.Add(1)
	go w.run()

	w.logger.Debug("watching catalog directory", log.Field("directory", c.dir))
	return w, nil
}

// Close stops the watcher and waits for the event loop to drain
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fw.Close()
		w.wg.Wait()
	})
	return err
}

// run is the watcher event loop
func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Error("catalog watcher error", err)
		}
	}
}

// handleEvent reacts to a single file system event
func (w *Watcher) handleEvent(event fsnotify.Event) {
	ext := strings.ToLower(filepath.Ext(event.Name))
	supported := false
	for _, e := range w.catalog.format.extensions() {
		if ext == e {
			supported = true
			break
		}
	}
	if !supported {
		return
	}

	switch {
	case event.Op.Has(fsnotify.Write), event.Op.Has(fsnotify.Create):
		if err := w.catalog.reloadLocale(event.Name); err != nil {
			if errorx.HasCode(err, errorx.CodeInvalidInput) {
				return
			}
			// Editors write in several steps; a half-written file is
			// retried on the next event
			w.logger.Warn("locale reload failed",
				log.Field("file", filepath.Base(event.Name)),
				log.Err(err))
		}

	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		name := strings.TrimSuffix(filepath.Base(event.Name), ext)
		tag, err := language.Parse(name)
		if err != nil {
			return
		}
		w.catalog.removeLocale(tag)
	}
}
