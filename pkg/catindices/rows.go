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
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Column names requested from the _cat/indices api
const (
	FieldIndex         = "index"
	FieldStoreSize     = "pri.store.size"
	FieldPrimaryShards = "pri"
)

// RawRow is a single element of a _cat/indices json response. The api returns every column as a string, numbers
// included.
type RawRow map[string]string

// ToIndexRecord coerces the string columns of a row to their numeric types and builds the IndexRecord. The error names
// the column that could not be converted.
func ToIndexRecord(row RawRow) (IndexRecord, error) {
	name := row[FieldIndex]
	if len(name) == 0 {
		return IndexRecord{}, errors.Errorf("missing '%s'", FieldIndex)
	}

	sizeBytes, err := strconv.ParseUint(row[FieldStoreSize], 10, 64)
	if err != nil {
		return IndexRecord{}, errors.Wrapf(err, "invalid '%s'", FieldStoreSize)
	}

	shards, err := strconv.ParseUint(row[FieldPrimaryShards], 10, 31)
	if err != nil {
		return IndexRecord{}, errors.Wrapf(err, "invalid '%s'", FieldPrimaryShards)
	}

	return NewIndexRecord(name, sizeBytes, int(shards)), nil
}

// ParseRows decodes a json array of rows and converts each of them to an IndexRecord. A payload that isn't a json array
// is an ErrParse. Elements which can't be converted are logged and skipped.
func ParseRows(logger *zap.Logger, data []byte) ([]IndexRecord, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var elements []json.RawMessage
	err := json.Unmarshal(data, &elements)
	if err != nil {
		return nil, withKind(ErrParse, err)
	} else if elements == nil {
		return nil, withKind(ErrParse, errors.New("payload is not a json array"))
	}

	records := make([]IndexRecord, 0, len(elements))
	for _, element := range elements {
		row, err := decodeRow(element)
		if err == nil {
			var rec IndexRecord
			rec, err = ToIndexRecord(row)
			if err == nil {
				records = append(records, rec)
				continue
			}
		}

		logger.Warn("Skipping malformed entry", zap.String("row", string(element)), zap.Error(err))
	}

	logger.Debug("parsed index rows", zap.Int("rows", len(elements)), zap.Int("skipped", len(elements)-len(records)))

	return records, nil
}

// decodeRow decodes a single json object into a RawRow. Numbers and booleans are kept in their textual form and null
// columns are dropped.
func decodeRow(element json.RawMessage) (RawRow, error) {
	dec := json.NewDecoder(bytes.NewReader(element))
	dec.UseNumber()

	var columns map[string]interface{}
	err := dec.Decode(&columns)
	if err != nil {
		return nil, err
	} else if columns == nil {
		return nil, errors.New("row is not an object")
	}

	row := make(RawRow, len(columns))
	for k, v := range columns {
		switch v := v.(type) {
		case nil:
		case string:
			row[k] = v
		case json.Number:
			row[k] = v.String()
		case bool:
			row[k] = strconv.FormatBool(v)
		default:
			return nil, errors.Errorf("column '%s' is not a scalar", k)
		}
	}

	return row, nil
}
