// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import (
	"context"
	"os"
	"path/filepath"
)

// Store is an interface for persisting rendered reports
type Store interface {
	// WriteReport persists a rendered report under key, replacing any report already stored there
	WriteReport(ctx context.Context, key string, data []byte) error
	// Join builds a key from its elements
	Join(keyElements ...string) string
}

// ensure *FilesysStore implements Store
var _ Store = (*FilesysStore)(nil)

// FilesysStore is a Store implementation that writes to the local file system
type FilesysStore struct {
	rootDir string
}

// NewFilesysStore returns a new FilesysStore object. Relative keys are resolved against rootDir.
func NewFilesysStore(rootDir string) (*FilesysStore, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, err
	}

	return &FilesysStore{
		rootDir: absRoot,
	}, nil
}

// WriteReport writes data to the file at key, creating parent directories as needed
func (f *FilesysStore) WriteReport(ctx context.Context, key string, data []byte) error {
	absPath := f.Join(key)

	dir := filepath.Dir(absPath)
	err := os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		return err
	}

	return os.WriteFile(absPath, data, 0644)
}

// Join joins key elements with the os path separator. A relative result is placed under the store's root directory.
func (f *FilesysStore) Join(keyElements ...string) string {
	path := filepath.Join(keyElements...)

	if !filepath.IsAbs(path) {
		return filepath.Join(f.rootDir, path)
	}

	return path
}
