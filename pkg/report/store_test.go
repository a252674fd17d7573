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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/indexstats/pkg/catindices"
)

func TestFilesysStoreJoin(t *testing.T) {
	root := t.TempDir()
	store, err := NewFilesysStore(root)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "reports", DefaultOutputFile), store.Join("reports", DefaultOutputFile))

	abs := filepath.Join(t.TempDir(), DefaultOutputFile)
	assert.Equal(t, abs, store.Join(abs))
}

func TestFilesysStoreOverwrites(t *testing.T) {
	ctx := context.Background()
	store, err := NewFilesysStore(t.TempDir())
	require.NoError(t, err)

	key := store.Join("nested", "dir", DefaultOutputFile)
	require.NoError(t, store.WriteReport(ctx, key, []byte("first report, longer than the second\n")))
	require.NoError(t, store.WriteReport(ctx, key, []byte("second\n")))

	data, err := os.ReadFile(key)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))
}

func TestFilesysStoreWriteFailure(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store, err := NewFilesysStore(root)
	require.NoError(t, err)

	// a directory occupies the report's path
	require.NoError(t, os.Mkdir(filepath.Join(root, DefaultOutputFile), os.ModePerm))
	require.Error(t, store.WriteReport(ctx, DefaultOutputFile, []byte("report")))
}

func TestFileToReport(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	input := filepath.Join(dir, "example-in.json")
	err := os.WriteFile(input, []byte(`[
		{"index": "a", "pri.store.size": "3000000000", "pri": "1"},
		{"index": "skipped", "pri.store.size": "not-a-number", "pri": "1"},
		{"index": "b", "pri.store.size": "1000000000", "pri": "5"}
	]`), 0644)
	require.NoError(t, err)

	records, err := catindices.NewFileSource(nil, input).Load(ctx)
	require.NoError(t, err)

	store, err := NewFilesysStore(dir)
	require.NoError(t, err)

	key := store.Join(DefaultOutputFile)
	require.NoError(t, store.WriteReport(ctx, key, Render(records)))

	data, err := os.ReadFile(filepath.Join(dir, DefaultOutputFile))
	require.NoError(t, err)

	out := string(data)
	assert.NotContains(t, out, "skipped")
	assert.Contains(t, out, LargestBySizeHeader+"\nIndex: a\nSize: 3.00 GB\nIndex: b\nSize: 1.00 GB\n\n")
	assert.Contains(t, out, LargestByShardsHeader+"\nIndex: b\nShards: 5\nIndex: a\nShards: 1\n\n")
	assert.Contains(t, out, LeastBalancedHeader+"\nIndex: a\n")
}
