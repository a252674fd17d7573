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

	"github.com/pkg/errors"
)

var (
	// ErrRead is the kind of error returned when the input file can't be read
	ErrRead = errors.New("read error")
	// ErrNetwork is the kind of error returned when the index stats can't be retrieved from the server
	ErrNetwork = errors.New("network error")
	// ErrParse is the kind of error returned when the payload is not a JSON array of rows
	ErrParse = errors.New("parse error")
)

// Source is an interface for loading index statistics
type Source interface {
	// Load retrieves the rows and converts them to IndexRecords. Malformed rows are skipped.
	Load(ctx context.Context) ([]IndexRecord, error)
}

// kindError tags a cause with one of ErrRead, ErrNetwork or ErrParse so that callers can check it with errors.Is
type kindError struct {
	kind  error
	cause error
}

func withKind(kind, cause error) error {
	return errors.WithStack(&kindError{kind: kind, cause: cause})
}

func (e *kindError) Error() string {
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *kindError) Is(target error) bool {
	return target == e.kind
}

func (e *kindError) Unwrap() error {
	return e.cause
}
