// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glx

import (
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// ShaderWatcher watches a directory of shader sources and reports the
// names of files that were written or created. The watching happens on
// its own goroutine; the render thread collects the names with Changed
// and does the recompiling itself.
type ShaderWatcher struct {
	watcher *fsnotify.Watcher
	changed chan string
	done    chan struct{}
}

// NewShaderWatcher starts watching dir.
func NewShaderWatcher(dir string) (*ShaderWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	sw := &ShaderWatcher{
		watcher: w,
		changed: make(chan string, 64),
		done:    make(chan struct{}),
	}
	go sw.watch()
	return sw, nil
}

func (sw *ShaderWatcher) watch() {
	for {
		select {
		case <-sw.done:
			return
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !isShaderFile(event.Name) {
				continue
			}
			select {
			case sw.changed <- filepath.Base(event.Name):
			default:
				slog.Warn("shader watcher: dropping change event", "file", event.Name)
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("shader watcher error: " + err.Error())
		}
	}
}

func isShaderFile(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".vert" || ext == ".frag"
}

// Changed returns the sorted, distinct names of the programs (file
// names without extension) whose sources changed since the last call.
// It does not block.
func (sw *ShaderWatcher) Changed() []string {
	var names []string
	for {
		select {
		case fn := <-sw.changed:
			name := strings.TrimSuffix(fn, filepath.Ext(fn))
			if !slices.Contains(names, name) {
				names = append(names, name)
			}
		default:
			slices.Sort(names)
			return names
		}
	}
}

// Close stops watching.
func (sw *ShaderWatcher) Close() error {
	close(sw.done)
	return sw.watcher.Close()
}
