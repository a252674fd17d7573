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

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/dolthub/indexstats/pkg/report"
)

// Supported values for Options.Source
const (
	SourceFile   = "file"
	SourceServer = "server"
)

// DefaultEnvFile is read when no env file is given explicitly. It is fine for it not to exist.
const DefaultEnvFile = ".env"

// Environment variables
const (
	EnvEndpoint    = "INDEXSTATS_ENDPOINT"
	EnvSource      = "INDEXSTATS_SOURCE"
	EnvDays        = "INDEXSTATS_DAYS"
	EnvInputPath   = "INDEXSTATS_INPUT_PATH"
	EnvOutputPath  = "INDEXSTATS_OUTPUT_PATH"
	EnvHTTPTimeout = "INDEXSTATS_HTTP_TIMEOUT"
	EnvLogLevel    = "INDEXSTATS_LOG_LEVEL"
)

// ErrInvalidConfig is the error returned for options that can't be used
var ErrInvalidConfig = errors.New("invalid configuration")

// Options configures a report run
type Options struct {
	// Endpoint is the base url of the cluster queried when Source is SourceServer
	Endpoint string `yaml:"endpoint"`
	// Source selects where index stats are loaded from, SourceFile or SourceServer
	Source string `yaml:"source"`
	// Days is how many days before today the queried indices were created
	Days int `yaml:"days"`
	// InputPath is the saved _cat/indices response read when Source is SourceFile
	InputPath string `yaml:"input_path"`
	// OutputPath is where the report is written
	OutputPath string `yaml:"output_path"`
	// HTTPTimeout bounds the request to Endpoint. Zero means no timeout.
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	// LogLevel is one of debug, info, warn or error
	LogLevel string `yaml:"log_level"`
	// Profile enables profiling, one of cpu, mem, blocking or trace
	Profile string `yaml:"-"`
}

// Defaults returns the options used when nothing overrides them
func Defaults() *Options {
	return &Options{
		Endpoint:   "http://localhost:9200",
		Source:     SourceServer,
		Days:       1,
		OutputPath: report.DefaultOutputFile,
		LogLevel:   "info",
	}
}

// Load returns the Defaults overridden by the yaml file at configPath, then by the environment. Variables found in
// envFile are added to the environment first, without replacing variables that are already set. Empty paths are
// skipped, except that DefaultEnvFile is read if it exists.
func Load(configPath, envFile string) (*Options, error) {
	opts := Defaults()

	if configPath != "" {
		err := opts.loadYAML(configPath)
		if err != nil {
			return nil, err
		}
	}

	if envFile == "" {
		if _, err := os.Stat(DefaultEnvFile); err == nil {
			envFile = DefaultEnvFile
		}
	}

	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load env file '%s'", envFile)
		}
	}

	err := opts.applyEnv(os.LookupEnv)
	if err != nil {
		return nil, err
	}

	return opts, nil
}

func (o *Options) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read config file '%s'", path)
	}

	err = yaml.Unmarshal(data, o)
	if err != nil {
		return errors.Wrapf(err, "failed to parse config file '%s'", path)
	}

	return nil
}

func (o *Options) applyEnv(lookup func(string) (string, bool)) error {
	strVars := map[string]*string{
		EnvEndpoint:   &o.Endpoint,
		EnvSource:     &o.Source,
		EnvInputPath:  &o.InputPath,
		EnvOutputPath: &o.OutputPath,
		EnvLogLevel:   &o.LogLevel,
	}

	for key, dest := range strVars {
		if val, ok := lookup(key); ok && val != "" {
			*dest = val
		}
	}

	if val, ok := lookup(EnvDays); ok && val != "" {
		days, err := strconv.Atoi(val)
		if err != nil {
			return errors.Wrapf(ErrInvalidConfig, "%s: expected an integer, got '%s'", EnvDays, val)
		}

		o.Days = days
	}

	if val, ok := lookup(EnvHTTPTimeout); ok && val != "" {
		timeout, err := time.ParseDuration(val)
		if err != nil {
			return errors.Wrapf(ErrInvalidConfig, "%s: expected a duration, got '%s'", EnvHTTPTimeout, val)
		}

		o.HTTPTimeout = timeout
	}

	return nil
}

// Validate checks that the options describe a run that can be attempted
func (o *Options) Validate() error {
	switch o.Source {
	case SourceFile:
		if o.InputPath == "" {
			return errors.Wrap(ErrInvalidConfig, "an input path is required when reading from a file")
		}
	case SourceServer:
		if o.Endpoint == "" {
			return errors.Wrap(ErrInvalidConfig, "an endpoint is required when reading from a server")
		}
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown source '%s'. Supported options: '%s', '%s'", o.Source, SourceFile, SourceServer)
	}

	if o.Days < 0 {
		return errors.Wrapf(ErrInvalidConfig, "days must not be negative, got %d", o.Days)
	}

	if o.HTTPTimeout < 0 {
		return errors.Wrapf(ErrInvalidConfig, "http timeout must not be negative, got %s", o.HTTPTimeout)
	}

	if o.OutputPath == "" {
		return errors.Wrap(ErrInvalidConfig, "an output path is required")
	}

	switch o.Profile {
	case "", "cpu", "mem", "blocking", "trace":
	default:
		return errors.Wrapf(ErrInvalidConfig, "unexpected profile '%s'. Supported options: cpu, mem, blocking, trace", o.Profile)
	}

	_, err := parseLevel(o.LogLevel)
	return err
}
