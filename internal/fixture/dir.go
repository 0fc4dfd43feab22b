// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package fixture

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DirSource reads the documents as files from a directory.
type DirSource struct {
	fsys fs.FS
	dir  string
}

// NewDirSource reads documents from dir on the local filesystem.
func NewDirSource(dir string) *DirSource {
	return &DirSource{fsys: os.DirFS(dir), dir: dir}
}

// NewFSSource reads documents from the root of fsys.
func NewFSSource(fsys fs.FS, label string) *DirSource {
	return &DirSource{fsys: fsys, dir: label}
}

// Read returns the content of the named file.
func (source *DirSource) Read(_ context.Context, name string) ([]byte, error) {
	data, err := fs.ReadFile(source.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", filepath.Join(source.dir, name), err)
	}
	return data, nil
}

// Describe implements [Source].
func (source *DirSource) Describe() string {
	return "dir:" + source.dir
}
