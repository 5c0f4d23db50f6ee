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

// Package log provides a context-based leveled logger.
//
// The logger to use is carried on the context; code that wants to log simply
// calls one of the single-letter helpers with the context it was given.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
)

// Logger writes formatted log messages at or above a minimum severity to an
// output writer. A nil Logger silently discards all messages.
type Logger struct {
	mu  sync.Mutex
	out io.Writer
	min Severity
}

// New returns a Logger that writes messages of severity min or higher to out.
func New(out io.Writer, min Severity) *Logger {
	return &Logger{out: out, min: min}
}

var std = New(os.Stderr, Info)

// Std returns the default logger, writing Info and above to stderr.
func Std() *Logger { return std }

// Logf writes a formatted message at severity s.
func (l *Logger) Logf(s Severity, format string, args ...interface{}) {
	if l == nil || s < l.min {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%v: %v\n", s, fmt.Sprintf(format, args...))
}

// D logs a debug message.
func (l *Logger) D(format string, args ...interface{}) { l.Logf(Debug, format, args...) }

// I logs an informational message.
func (l *Logger) I(format string, args ...interface{}) { l.Logf(Info, format, args...) }

// W logs a warning message.
func (l *Logger) W(format string, args ...interface{}) { l.Logf(Warning, format, args...) }

// E logs an error message.
func (l *Logger) E(format string, args ...interface{}) { l.Logf(Error, format, args...) }

// F logs a fatal message, stopping the process if stopProcess is true.
func (l *Logger) F(stopProcess bool, format string, args ...interface{}) {
	l.Logf(Fatal, format, args...)
	if stopProcess {
		os.Exit(1)
	}
}

type loggerKeyTy struct{}

var loggerKey loggerKeyTy

// PutLogger returns a new context with the given logger attached.
func PutLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// From returns the logger attached to ctx, or the default logger if there is
// none.
func From(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerKey).(*Logger); ok {
		return l
	}
	return std
}

// D logs a debug message to the logger bound to ctx.
func D(ctx context.Context, format string, args ...interface{}) { From(ctx).D(format, args...) }

// I logs an informational message to the logger bound to ctx.
func I(ctx context.Context, format string, args ...interface{}) { From(ctx).I(format, args...) }

// W logs a warning message to the logger bound to ctx.
func W(ctx context.Context, format string, args ...interface{}) { From(ctx).W(format, args...) }

// E logs an error message to the logger bound to ctx.
func E(ctx context.Context, format string, args ...interface{}) { From(ctx).E(format, args...) }

// F logs a fatal message to the logger bound to ctx, stopping the process if
// stopProcess is true.
func F(ctx context.Context, stopProcess bool, format string, args ...interface{}) {
	From(ctx).F(stopProcess, format, args...)
}
