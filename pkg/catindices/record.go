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

import "math"

const (
	bytesPerGB = 1_000_000_000.0

	// GBPerRecommendedShard is the primary shard size that shard count recommendations aim for
	GBPerRecommendedShard = 30
)

// IndexRecord holds the statistics of a single index along with the metrics derived from them. All values are computed
// by NewIndexRecord and never change afterwards.
type IndexRecord struct {
	name              string
	sizeBytes         uint64
	shards            int
	sizeGB            float64
	balanceRatio      float64
	recommendedShards int
}

// NewIndexRecord returns an IndexRecord for an index of sizeBytes bytes spread across shards primary shards. shards must
// not be negative.
func NewIndexRecord(name string, sizeBytes uint64, shards int) IndexRecord {
	sizeGB := roundGB(sizeBytes)

	ratio := math.Inf(1)
	if shards > 0 {
		ratio = sizeGB / float64(shards)
	}

	return IndexRecord{
		name:              name,
		sizeBytes:         sizeBytes,
		shards:            shards,
		sizeGB:            sizeGB,
		balanceRatio:      ratio,
		recommendedShards: max(1, int(math.Floor(sizeGB/GBPerRecommendedShard))),
	}
}

func roundGB(sizeBytes uint64) float64 {
	gb := float64(sizeBytes) / bytesPerGB
	return math.Round(gb*100) / 100
}

// Name returns the name of the index
func (r IndexRecord) Name() string {
	return r.name
}

// SizeBytes returns the size of the index's primary store in bytes
func (r IndexRecord) SizeBytes() uint64 {
	return r.sizeBytes
}

// Shards returns the number of primary shards
func (r IndexRecord) Shards() int {
	return r.shards
}

// SizeGB returns the primary store size in gigabytes (10^9 bytes) rounded to two decimal places
func (r IndexRecord) SizeGB() float64 {
	return r.sizeGB
}

// BalanceRatio returns the gigabytes stored per primary shard. An index without shards has a ratio of +Inf.
func (r IndexRecord) BalanceRatio() float64 {
	return r.balanceRatio
}

// RecommendedShards returns the shard count that would put roughly GBPerRecommendedShard gigabytes on each shard, never
// less than one.
func (r IndexRecord) RecommendedShards() int {
	return r.recommendedShards
}
