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

package log_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Azureussimu/JniSignatureGenerator/core/log"
)

func TestSeverityFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	l := log.New(buf, log.Warning)
	l.D("dropped %d", 1)
	l.I("dropped %d", 2)
	l.W("kept %d", 3)
	l.E("kept %d", 4)
	got := buf.String()
	for _, want := range []string{"Warning: kept 3\n", "Error: kept 4\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("log output missing %q, got %q", want, got)
		}
	}
	if strings.Contains(got, "dropped") {
		t.Errorf("log output contains filtered messages: %q", got)
	}
}

func TestContextLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := log.PutLogger(context.Background(), log.New(buf, log.Debug))
	log.D(ctx, "hello %v", "world")
	if got, want := buf.String(), "Debug: hello world\n"; got != want {
		t.Errorf("log.D via context - Got: %q, Want: %q", got, want)
	}
	if log.From(context.Background()) != log.Std() {
		t.Errorf("log.From without a bound logger did not return the default")
	}
}

func TestParseSeverity(t *testing.T) {
	for name, want := range map[string]log.Severity{
		"debug":   log.Debug,
		"Info":    log.Info,
		"WARNING": log.Warning,
		"error":   log.Error,
		"fatal":   log.Fatal,
	} {
		got, err := log.ParseSeverity(name)
		if err != nil {
			t.Errorf("ParseSeverity(%q) failed: %v", name, err)
		}
		if got != want {
			t.Errorf("ParseSeverity(%q) - Got: %v, Want: %v", name, got, want)
		}
	}
	if _, err := log.ParseSeverity("loud"); err == nil {
		t.Errorf("ParseSeverity of an unknown name did not fail")
	}
}
