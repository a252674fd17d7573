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

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/dolthub/indexstats/pkg/catindices"
	"github.com/dolthub/indexstats/pkg/config"
	"github.com/dolthub/indexstats/pkg/report"
)

// Exit codes
const (
	exitFailure = 1
	exitConfig  = 2
	exitRead    = 3
	exitNetwork = 4
	exitParse   = 5
	exitWrite   = 6
)

// startProfiling starts the requested profile and returns the function that stops it
func startProfiling(profileType string) (func(), error) {
	var mode func(*profile.Profile)
	switch profileType {
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	case "blocking":
		mode = profile.BlockProfile
	case "trace":
		mode = profile.TraceProfile
	default:
		return nil, errors.Errorf("unexpected profile '%s'", profileType)
	}

	fmt.Println(profileType, "profiling enabled.")
	return profile.Start(mode).Stop, nil
}

func errExit(code int, message string) {
	fmt.Fprintln(os.Stderr, message)
	os.Exit(code)
}

// loadExitCode maps the kind of a load failure to the process exit code
func loadExitCode(err error) int {
	switch {
	case errors.Is(err, catindices.ErrRead):
		return exitRead
	case errors.Is(err, catindices.ErrNetwork):
		return exitNetwork
	case errors.Is(err, catindices.ErrParse):
		return exitParse
	default:
		return exitFailure
	}
}

func newSource(logger *zap.Logger, opts *config.Options) catindices.Source {
	if opts.Source == config.SourceFile {
		return catindices.NewFileSource(logger, opts.InputPath)
	}

	client := &http.Client{Timeout: opts.HTTPTimeout}
	return catindices.NewServerSource(logger, client, opts.Endpoint, opts.Days)
}

func main() {
	ctx := context.Background()

	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	opts, err := config.Load(*flags.ConfigPath, *flags.EnvFile)
	if err != nil {
		errExit(exitConfig, fmt.Sprintf("Failed to load configuration: %v", err))
	}

	opts.ApplyFlags(flag.CommandLine)

	err = opts.Validate()
	if err != nil {
		errExit(exitConfig, err.Error())
	}

	logger, err := opts.NewLogger()
	if err != nil {
		errExit(exitConfig, fmt.Sprintf("Failed to create logger: %s", err.Error()))
	}

	code := run(ctx, logger, opts)
	_ = logger.Sync()

	if code != 0 {
		os.Exit(code)
	}
}

// run loads the index stats, renders the report and writes it. The report is only written once it has been rendered
// completely. Failures are printed to stderr and returned as an exit code.
func run(ctx context.Context, logger *zap.Logger, opts *config.Options) int {
	if opts.Profile != "" {
		stopProfFunc, err := startProfiling(opts.Profile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			return exitConfig
		}
		defer stopProfFunc()
	}

	records, err := newSource(logger, opts).Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load index stats: %v\n", err)
		return loadExitCode(err)
	}

	logger.Info("loaded index stats", zap.Int("indices", len(records)))

	out := report.Render(records)

	store, err := report.NewFilesysStore(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open report store: %v\n", err)
		return exitWrite
	}

	key := store.Join(opts.OutputPath)
	err = store.WriteReport(ctx, key, out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write '%s': %v\n", key, err)
		return exitWrite
	}

	fmt.Println("Analysis written to", opts.OutputPath)

	return 0
}
