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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIndexRecord(t *testing.T) {
	tests := []struct {
		name              string
		sizeBytes         uint64
		shards            int
		sizeGB            float64
		balanceRatio      float64
		recommendedShards int
	}{
		{"rounds down", 1_234_500_000, 1, 1.23, 1.23, 1},
		{"rounds up", 1_236_000_000, 1, 1.24, 1.24, 1},
		{"empty", 0, 1, 0, 0, 1},
		{"per shard", 3_000_000_000, 2, 3, 1.5, 1},
		{"recommends by 30 gb", 95_000_000_000, 1, 95, 95, 3},
		{"recommends at least one", 10_000_000_000, 4, 10, 2.5, 1},
		{"exactly 60 gb", 60_000_000_000, 1, 60, 60, 2},
		{"no shards", 7_000_000_000, 0, 7, math.Inf(1), 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := NewIndexRecord("idx", test.sizeBytes, test.shards)
			require.Equal(t, "idx", rec.Name())
			require.Equal(t, test.sizeBytes, rec.SizeBytes())
			require.Equal(t, test.shards, rec.Shards())
			assert.InDelta(t, test.sizeGB, rec.SizeGB(), 1e-9)
			assert.Equal(t, test.recommendedShards, rec.RecommendedShards())

			if math.IsInf(test.balanceRatio, 1) {
				assert.True(t, math.IsInf(rec.BalanceRatio(), 1))
			} else {
				assert.InDelta(t, test.balanceRatio, rec.BalanceRatio(), 1e-9)
			}
		})
	}
}

func TestBalanceRatioUsesRoundedSize(t *testing.T) {
	rec := NewIndexRecord("idx", 1_004_000_000, 3)
	require.Equal(t, 1.0, rec.SizeGB())
	require.InDelta(t, 1.0/3, rec.BalanceRatio(), 1e-12)
}
