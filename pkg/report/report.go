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
	"bytes"
	"fmt"
	"math"
	"sort"

	"github.com/dolthub/indexstats/pkg/catindices"
)

// DefaultOutputFile is the name of the file the report is written to
const DefaultOutputFile = "analysis-output.txt"

// TopN is the number of indices listed in each section
const TopN = 5

// Section headers
const (
	LargestBySizeHeader   = "Printing largest indexes by storage size"
	LargestByShardsHeader = "Printing largest indexes by shard count"
	LeastBalancedHeader   = "Printing least balanced indexes"
)

// Render builds the complete report. Nothing is written anywhere until the whole report has been rendered.
func Render(records []catindices.IndexRecord) []byte {
	buf := &bytes.Buffer{}
	WriteLargestBySize(buf, records)
	WriteLargestByShards(buf, records)
	WriteLeastBalanced(buf, records)

	return buf.Bytes()
}

// WriteLargestBySize appends the TopN indices with the largest primary store
func WriteLargestBySize(buf *bytes.Buffer, records []catindices.IndexRecord) {
	buf.WriteString(LargestBySizeHeader + "\n")

	top := topBy(records, func(a, b catindices.IndexRecord) bool {
		return a.SizeGB() > b.SizeGB()
	})

	for _, rec := range top {
		fmt.Fprintf(buf, "Index: %s\n", rec.Name())
		fmt.Fprintf(buf, "Size: %.2f GB\n", rec.SizeGB())
	}

	buf.WriteString("\n")
}

// WriteLargestByShards appends the TopN indices with the most primary shards
func WriteLargestByShards(buf *bytes.Buffer, records []catindices.IndexRecord) {
	buf.WriteString(LargestByShardsHeader + "\n")

	top := topBy(records, func(a, b catindices.IndexRecord) bool {
		return a.Shards() > b.Shards()
	})

	for _, rec := range top {
		fmt.Fprintf(buf, "Index: %s\n", rec.Name())
		fmt.Fprintf(buf, "Shards: %d\n", rec.Shards())
	}

	buf.WriteString("\n")
}

// WriteLeastBalanced appends the TopN indices storing the most data per primary shard. Indices without shards come
// first.
func WriteLeastBalanced(buf *bytes.Buffer, records []catindices.IndexRecord) {
	buf.WriteString(LeastBalancedHeader + "\n")

	top := topBy(records, func(a, b catindices.IndexRecord) bool {
		return a.BalanceRatio() > b.BalanceRatio()
	})

	for _, rec := range top {
		fmt.Fprintf(buf, "Index: %s\n", rec.Name())
		fmt.Fprintf(buf, "Size: %.2f GB\n", rec.SizeGB())
		fmt.Fprintf(buf, "Shards: %d\n", rec.Shards())
		fmt.Fprintf(buf, "Balance Ratio: %d\n", DisplayRatio(rec))
		fmt.Fprintf(buf, "Recommended shard count is %d\n", rec.RecommendedShards())
	}
}

// DisplayRatio returns the balance ratio as printed in the report. Ratios of indices with two shards or fewer are
// truncated, larger ones are rounded. The result saturates at math.MaxInt32, so an index without shards shows
// 2147483647.
func DisplayRatio(rec catindices.IndexRecord) int64 {
	ratio := rec.BalanceRatio()
	if rec.Shards() <= 2 {
		ratio = math.Floor(ratio)
	} else {
		ratio = math.Round(ratio)
	}

	if ratio >= math.MaxInt32 {
		return math.MaxInt32
	}

	return int64(ratio)
}

// topBy returns the first TopN records ordered by less. Records which compare equal keep their input order. records is
// not modified.
func topBy(records []catindices.IndexRecord, less func(a, b catindices.IndexRecord) bool) []catindices.IndexRecord {
	sorted := make([]catindices.IndexRecord, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	if len(sorted) > TopN {
		sorted = sorted[:TopN]
	}

	return sorted
}
