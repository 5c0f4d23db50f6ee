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

package log

import (
	"strings"

	"github.com/Azureussimu/JniSignatureGenerator/core/fault"
	"github.com/pkg/errors"
)

// Severity defines the importance of a log message.
type Severity int

const (
	// Debug is the severity for messages only of use when diagnosing problems.
	Debug Severity = iota
	// Info is the severity for general notification messages.
	Info
	// Warning is the severity for messages about possible problems.
	Warning
	// Error is the severity for messages about things that went wrong.
	Error
	// Fatal is the severity for messages about things that went so wrong that
	// the process cannot continue.
	Fatal
)

// ErrUnknownSeverity is returned by ParseSeverity for unrecognized names.
const ErrUnknownSeverity = fault.Const("unknown log severity")

func (s Severity) String() string {
	switch s {
	case Debug:
		return "Debug"
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	case Fatal:
		return "Fatal"
	default:
		return "Unknown"
	}
}

// ParseSeverity returns the severity with the given case-insensitive name.
func ParseSeverity(name string) (Severity, error) {
	for _, s := range []Severity{Debug, Info, Warning, Error, Fatal} {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return Info, errors.Wrap(ErrUnknownSeverity, name)
}
