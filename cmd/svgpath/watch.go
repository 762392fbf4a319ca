// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch converts the input file and writes the result to w, and then does
// so again each time the file is written or replaced, until ctx is done.
// Parse errors are logged and do not stop watching.
func Watch(ctx context.Context, c *Config, w io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// editors often replace files, so the directory is watched
	fn := filepath.Clean(c.Input)
	if err := watcher.Add(filepath.Dir(fn)); err != nil {
		return err
	}
	slog.Info("watching", "file", fn)
	errors.Log(Convert(c, w))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != fn {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create {
				slog.Info("changed", "file", fn, "op", event.Op)
				errors.Log(Convert(c, w))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
