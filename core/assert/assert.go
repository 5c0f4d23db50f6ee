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

// Package assert provides a fluent assertion interface for tests.
//
// Assertions are built from an output target, normally a *testing.T:
//
//	assert := assert.To(t)
//	assert.For("result").That(got).Equals(want)
package assert

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/Azureussimu/JniSignatureGenerator/core/log"
)

type (
	// Output matches the logging methods of the test host types.
	// The output object is normally a *testing.T.
	Output interface {
		Fatal(...interface{})
		Error(...interface{})
		Log(...interface{})
	}

	// Manager is the root of the fluent interface.
	// It wraps an assertion output target in something that can construct
	// assertion objects.
	Manager struct {
		out Output
	}

	// Assertion is the type for the start of an assertion line.
	// You construct an assertion from an Output using assert.For.
	Assertion struct {
		fatal bool
		out   *bytes.Buffer
		to    Output
	}

	ctxOutput struct{ ctx context.Context }
	stdOutput struct{}
)

// To creates an assertion manager using the target t for reporting.
// t can be an Output, a context.Context to report through the bound logger,
// or nil to report to stdout.
func To(t interface{}) Manager {
	switch t := t.(type) {
	case nil:
		return Manager{stdOutput{}}
	case context.Context:
		return Manager{ctxOutput{t}}
	case Output:
		return Manager{t}
	default:
		panic(fmt.Errorf("Unsupported assertion target type %T", t))
	}
}

// For is shorthand for assert.To(t).For(msg, args...).
func For(t interface{}, msg string, args ...interface{}) *Assertion {
	return To(t).For(msg, args...)
}

// For starts a new assertion with the supplied title.
func (m Manager) For(msg string, args ...interface{}) *Assertion {
	a := &Assertion{to: m.out, out: &bytes.Buffer{}}
	fmt.Fprintf(a.out, msg, args...)
	a.out.WriteString("\n")
	return a
}

// Critical switches this assertion from erroring to fatal on failure.
func (a *Assertion) Critical() *Assertion {
	a.fatal = true
	return a
}

func (a *Assertion) printPretty(value interface{}) {
	switch value := value.(type) {
	case error, string:
		fmt.Fprintf(a.out, "`%v`", value)
	default:
		fmt.Fprint(a.out, value)
	}
}

// Got adds the standard "Got" entry to the output buffer.
func (a *Assertion) Got(value interface{}) *Assertion {
	a.out.WriteString("    Got    ")
	a.printPretty(value)
	a.out.WriteString("\n")
	return a
}

// Expect adds the standard "Expect" entry to the output buffer.
func (a *Assertion) Expect(op string, value interface{}) *Assertion {
	a.out.WriteString("    Expect " + op + " ")
	a.printPretty(value)
	a.out.WriteString("\n")
	return a
}

// Compare adds both the "Got" and "Expect" entries to the output buffer.
func (a *Assertion) Compare(value interface{}, op string, expect interface{}) *Assertion {
	return a.Got(value).Expect(op, expect)
}

// Test commits the pending output if the condition is not true.
func (a *Assertion) Test(condition bool) bool {
	if !condition {
		a.commit()
	}
	return condition
}

func (a *Assertion) commit() {
	message := a.out.String()
	if a.fatal {
		a.to.Fatal(message)
	} else {
		a.to.Error(message)
	}
}

func (o ctxOutput) Fatal(args ...interface{}) {
	log.F(o.ctx, true, "%v", fmt.Sprint(args...))
}

func (o ctxOutput) Error(args ...interface{}) {
	log.E(o.ctx, "%v", fmt.Sprint(args...))
}

func (o ctxOutput) Log(args ...interface{}) {
	log.I(o.ctx, "%v", fmt.Sprint(args...))
}

func (stdOutput) Fatal(args ...interface{}) {
	fmt.Fprintln(os.Stdout, args...)
	panic("Fatal error without test context")
}

func (stdOutput) Error(args ...interface{}) {
	fmt.Fprintln(os.Stdout, args...)
}

func (stdOutput) Log(args ...interface{}) {
	fmt.Fprintln(os.Stdout, args...)
}
