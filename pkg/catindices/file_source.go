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

package catindices

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ensure *FileSource implements Source
var _ Source = (*FileSource)(nil)

// FileSource is a Source which reads a saved _cat/indices json response from the local file system
type FileSource struct {
	logger *zap.Logger
	path   string
}

// NewFileSource returns a new FileSource reading from path
func NewFileSource(logger *zap.Logger, path string) *FileSource {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &FileSource{logger: logger, path: path}
}

// Load reads the file and parses its rows
func (s *FileSource) Load(ctx context.Context) ([]IndexRecord, error) {
	s.logger.Info("reading index stats", zap.String("path", s.path))

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, withKind(ErrRead, err)
	}

	records, err := ParseRows(s.logger, data)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to parse '%s'", s.path)
	}

	return records, nil
}
