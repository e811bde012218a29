// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ResolvePath returns the absolute form of a configuration file path. A
// leading "~/" is expanded to the user's home directory and relative paths
// are joined to the current working directory. The file need not exist.
func ResolvePath(path string) (string, error) {

	if path == "" {
		return "", os.ErrInvalid
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	// Relative paths are anchored at the cwd once, so a later chdir does not
	// move the file.
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		path = filepath.Join(cwd, path)
	}

	return filepath.Clean(path), nil
}

// EnsureParentDir creates the directory that will hold path. It returns an
// error if an entry in the way is not a directory.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if r, err := os.Stat(dir); err == nil {
		if !r.IsDir() {
			return &fs.PathError{Op: "mkdir", Path: dir, Err: os.ErrExist}
		}
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// RemoveIfExists deletes path. A missing file is not an error.
func RemoveIfExists(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// ReadIfExists returns the file contents, or nil with found unset when the
// file does not exist. Other errors are returned as is.
func ReadIfExists(path string) (data []byte, found bool, err error) {
	data, err = os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}
