// Copyright (C) 2026 The JniSignatureGenerator Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package app performs the common startup work for command line tools:
// flag parsing, usage text and logger construction.
package app

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Azureussimu/JniSignatureGenerator/core/fault"
	"github.com/Azureussimu/JniSignatureGenerator/core/log"
)

var (
	// Name is the full name of the application.
	Name string
	// ShortHelp should be set to add a help message to the usage text.
	ShortHelp = ""
	// ShortUsage is usage text for the additional non-flag arguments.
	ShortUsage = ""
	// UsageFooter is printed at the bottom of the usage text.
	UsageFooter = ""
	// ExitFuncForTesting can be set to change the behaviour on exit.
	// It defaults to os.Exit.
	ExitFuncForTesting = os.Exit

	logLevel = flag.String("log-level", "info", "minimum severity of log messages to emit")
)

// ErrUsage is the cause of errors produced by UsageError.
const ErrUsage = fault.Const("incorrect command line usage")

// UsageError prints the usage text and returns an error describing the
// incorrect invocation.
func UsageError(format string, args ...interface{}) error {
	flag.Usage()
	return fmt.Errorf("%v: %v", ErrUsage, fmt.Sprintf(format, args...))
}

// Run performs all the work needed to start up an application: it parses the
// command line arguments, builds a context carrying the configured logger,
// runs main, and exits the process with a code reflecting the returned error.
func Run(main func(ctx context.Context) error) {
	if Name == "" {
		Name = filepath.Base(os.Args[0])
	}
	flag.Usage = usage
	flag.Parse()

	sev, err := log.ParseSeverity(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		ExitFuncForTesting(2)
		return
	}
	ctx := log.PutLogger(context.Background(), log.New(os.Stderr, sev))

	if err := main(ctx); err != nil {
		log.E(ctx, "%v failed: %v", Name, err)
		ExitFuncForTesting(1)
	}
}

func usage() {
	w := os.Stderr
	if ShortHelp != "" {
		fmt.Fprintln(w, ShortHelp)
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Usage: %v [flags] %v\n", Name, ShortUsage)
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
	if UsageFooter != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, UsageFooter)
	}
}
