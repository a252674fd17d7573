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
	"flag"
	"time"
)

// Flags holds the flags which decide where the rest of the options are loaded from
type Flags struct {
	ConfigPath *string
	EnvFile    *string
}

// RegisterFlags defines the command line flags on fs. Values are only copied to Options by ApplyFlags, and only for the
// flags that were set on the command line.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	defaults := Defaults()

	f := &Flags{
		ConfigPath: fs.String("config", "", "Optional yaml file to read options from."),
		EnvFile:    fs.String("env-file", "", "Optional file of environment variables to load. Defaults to '"+DefaultEnvFile+"' when it exists."),
	}

	fs.String("endpoint", defaults.Endpoint, "Base url of the cluster to query.")
	fs.String("source", defaults.Source, "Where to load index stats from.  Supported options: 'file', 'server'.")
	fs.Bool("debug", false, "Read index stats from -input instead of the server. Same as -source=file.")
	fs.Int("days", defaults.Days, "Query the indices created this many days ago.")
	fs.String("input", defaults.InputPath, "Saved _cat/indices json response to read when reading from a file.")
	fs.String("output", defaults.OutputPath, "File the report is written to.")
	fs.Duration("http-timeout", defaults.HTTPTimeout, "Timeout for the request to the cluster. 0 disables the timeout.")
	fs.String("log-level", defaults.LogLevel, "Log level.  Supported options: debug, info, warn, error. Warnings about skipped rows are logged at every level.")
	fs.String("profile", defaults.Profile, "options are (cpu,mem,blocking,trace).")

	return f
}

// ApplyFlags overrides options with the flags that were explicitly set on fs
func (o *Options) ApplyFlags(fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		val := f.Value.(flag.Getter).Get()

		switch f.Name {
		case "endpoint":
			o.Endpoint = val.(string)
		case "source":
			o.Source = val.(string)
		case "days":
			o.Days = val.(int)
		case "input":
			o.InputPath = val.(string)
		case "output":
			o.OutputPath = val.(string)
		case "http-timeout":
			o.HTTPTimeout = val.(time.Duration)
		case "log-level":
			o.LogLevel = val.(string)
		case "profile":
			o.Profile = val.(string)
		}
	})

	// -debug wins over -source so that it can be combined with a config file naming the server
	if debug := fs.Lookup("debug"); debug != nil && debug.Value.(flag.Getter).Get().(bool) {
		o.Source = SourceFile
	}
}
