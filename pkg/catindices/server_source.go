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
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CatIndicesQuery selects the columns ParseRows needs, with sizes in bytes
const CatIndicesQuery = "v&h=index,pri.store.size,pri&format=json&bytes=b"

// maxErrBodyLen caps how much of an error response is included in the returned error
const maxErrBodyLen = 512

// ensure *ServerSource implements Source
var _ Source = (*ServerSource)(nil)

// ServerSource is a Source which queries the _cat/indices api of a cluster for the indices of a single day
type ServerSource struct {
	logger   *zap.Logger
	client   *http.Client
	endpoint string
	daysAgo  int
	now      func() time.Time
}

// NewServerSource returns a new ServerSource which will request the indices whose names contain the date daysAgo days
// before today. If client is nil http.DefaultClient is used.
func NewServerSource(logger *zap.Logger, client *http.Client, endpoint string, daysAgo int) *ServerSource {
	if logger == nil {
		logger = zap.NewNop()
	}

	if client == nil {
		client = http.DefaultClient
	}

	return &ServerSource{
		logger:   logger,
		client:   client,
		endpoint: endpoint,
		daysAgo:  daysAgo,
		now:      time.Now,
	}
}

// CatIndicesURL returns the _cat/indices url for the indices whose names contain the year, month and day of date in
// that order, e.g. logs-2026.10.14
func CatIndicesURL(endpoint string, date time.Time) string {
	return fmt.Sprintf("%s/_cat/indices/*%d*%02d*%02d?%s",
		strings.TrimRight(endpoint, "/"),
		date.Year(), int(date.Month()), date.Day(),
		CatIndicesQuery)
}

// TargetDate returns the day whose indices will be requested
func (s *ServerSource) TargetDate() time.Time {
	return s.now().AddDate(0, 0, -s.daysAgo)
}

// Load requests the index stats and parses the response
func (s *ServerSource) Load(ctx context.Context) ([]IndexRecord, error) {
	url := CatIndicesURL(s.endpoint, s.TargetDate())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, withKind(ErrNetwork, err)
	}

	req.Header.Set("Accept", "application/json")

	start := time.Now()
	s.logger.Info("requesting index stats", zap.String("url", url))

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, withKind(ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, withKind(ErrNetwork, errors.Wrap(err, "failed to read response body"))
	}

	s.logger.Info("received index stats", zap.Int("status", resp.StatusCode), zap.Int("bytes", len(body)), zap.Duration("took", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, withKind(ErrNetwork, errors.Errorf("unexpected status '%s': %s", resp.Status, truncate(body, maxErrBodyLen)))
	}

	records, err := ParseRows(s.logger, body)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to parse response from '%s'", url)
	}

	return records, nil
}

func truncate(body []byte, n int) string {
	s := strings.TrimSpace(string(body))
	if len(s) > n {
		return s[:n] + "..."
	}

	return s
}
