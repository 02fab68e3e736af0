// Copyright 2026 The authgate Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/authgate/authgate/internal/authgate"
	"github.com/authgate/authgate/internal/x/errorchain"
)

type listenerEntry struct {
	listeners    []ChangeListener
	resolvedPath string
}

type watcher struct {
	w *fsnotify.Watcher
	m map[string]*listenerEntry
	l zerolog.Logger

	mut sync.Mutex
}

func newWatcher(logger zerolog.Logger) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errorchain.NewWithMessage(authgate.ErrInternal,
			"failed to instantiate file watcher").CausedBy(err)
	}

	return &watcher{w: fsw, m: make(map[string]*listenerEntry), l: logger}, nil
}

func (w *watcher) Add(path string, cl ChangeListener) error {
	w.mut.Lock()
	defer w.mut.Unlock()

	if entry := w.m[path]; entry != nil {
		entry.listeners = append(entry.listeners, cl)

		return nil
	}

	resolvedPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return errorchain.NewWithMessagef(authgate.ErrInternal,
			"listener registration for file %s failed", path).CausedBy(err)
	}

	if err = w.w.Add(path); err != nil {
		return errorchain.NewWithMessagef(authgate.ErrInternal,
			"listener registration for file %s failed", path).CausedBy(err)
	}

	w.m[path] = &listenerEntry{listeners: []ChangeListener{cl}, resolvedPath: resolvedPath}

	return nil
}

func (w *watcher) Start(_ context.Context) error {
	w.l.Debug().Msg("Starting watching config files for changes")

	go w.watch()

	return nil
}

func (w *watcher) Stop(_ context.Context) error {
	w.l.Debug().Msg("Stopping watching config files for changes")

	return w.w.Close()
}

func (w *watcher) watch() {
	for {
		select {
		case evt, ok := <-w.w.Events:
			if !ok {
				w.l.Debug().Msg("Config watcher closed")

				return
			}

			var relinked bool

			// kubernetes style config maps are updated by swapping a symlink
			if evt.Has(fsnotify.Chmod) {
				relinked = w.checkSymlinkChanged(evt.Name)
			}

			if evt.Has(fsnotify.Write) || relinked {
				w.fireOnChange(evt.Name)
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				w.l.Debug().Msg("Config watcher error channel closed")

				return
			}

			w.l.Warn().Err(err).Msg("Config watcher error received")
		}
	}
}

func (w *watcher) checkSymlinkChanged(path string) bool {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			_ = w.w.Remove(path)
		}

		return false
	}

	resolvedPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		w.l.Warn().Err(err).Msgf("Handling modification for %s failed", path)

		return false
	}

	w.mut.Lock()
	defer w.mut.Unlock()

	entry := w.m[path]
	if entry == nil || entry.resolvedPath == resolvedPath {
		return false
	}

	_ = w.w.Remove(path)
	entry.resolvedPath = resolvedPath
	_ = w.w.Add(path)

	return true
}

func (w *watcher) fireOnChange(path string) {
	w.mut.Lock()

	entry, ok := w.m[path]
	if !ok {
		w.mut.Unlock()

		return
	}

	listeners := make([]ChangeListener, len(entry.listeners))
	copy(listeners, entry.listeners)
	w.mut.Unlock()

	for _, listener := range listeners {
		go listener.OnChanged(w.l)
	}
}
