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

package assert_test

import (
	"testing"

	"github.com/Azureussimu/JniSignatureGenerator/core/assert"
	"github.com/Azureussimu/JniSignatureGenerator/core/fault"
	"github.com/pkg/errors"
)

// recorder is an assert.Output that counts failures instead of failing the
// real test.
type recorder struct {
	errors int
	fatals int
	logs   int
}

func (r *recorder) Fatal(...interface{}) { r.fatals++ }
func (r *recorder) Error(...interface{}) { r.errors++ }
func (r *recorder) Log(...interface{})   { r.logs++ }

func check(t *testing.T, name string, got bool, r *recorder, wantErrors int) {
	if got != (wantErrors == 0) {
		t.Errorf("%v returned %v", name, got)
	}
	if r.errors != wantErrors {
		t.Errorf("%v reported %v errors, want %v", name, r.errors, wantErrors)
	}
	r.errors = 0
}

func TestValueAssertions(t *testing.T) {
	r := &recorder{}
	assert := assert.To(r)
	check(t, "Equals same", assert.For("a").That(1).Equals(1), r, 0)
	check(t, "Equals different", assert.For("a").That(1).Equals(2), r, 1)
	check(t, "NotEquals", assert.For("a").That(1).NotEquals(2), r, 0)
	check(t, "IsNil of nil", assert.For("a").That(nil).IsNil(), r, 0)
	check(t, "IsNil of typed nil", assert.For("a").That((*int)(nil)).IsNil(), r, 0)
	check(t, "IsNotNil of value", assert.For("a").That(3).IsNotNil(), r, 0)
	check(t, "DeepEquals", assert.For("a").That([]int{1, 2}).DeepEquals([]int{1, 2}), r, 0)
	check(t, "DeepNotEquals", assert.For("a").That([]int{1}).DeepNotEquals([]int{2}), r, 0)
}

func TestErrorAssertions(t *testing.T) {
	const sentinel = fault.Const("boom")
	r := &recorder{}
	assert := assert.To(r)
	check(t, "Succeeded of nil", assert.For("e").ThatError(nil).Succeeded(), r, 0)
	check(t, "Failed of error", assert.For("e").ThatError(sentinel).Failed(), r, 0)
	check(t, "Failed of nil", assert.For("e").ThatError(nil).Failed(), r, 1)
	check(t, "HasMessage", assert.For("e").ThatError(sentinel).HasMessage("boom"), r, 0)
	wrapped := errors.Wrap(sentinel, "context")
	check(t, "HasCause", assert.For("e").ThatError(wrapped).HasCause(sentinel), r, 0)
}

func TestStringAssertions(t *testing.T) {
	r := &recorder{}
	assert := assert.To(r)
	check(t, "Equals", assert.For("s").ThatString("abc").Equals("abc"), r, 0)
	check(t, "Contains", assert.For("s").ThatString("abc").Contains("b"), r, 0)
	check(t, "HasPrefix", assert.For("s").ThatString("abc").HasPrefix("a"), r, 0)
	check(t, "HasSuffix", assert.For("s").ThatString("abc").HasSuffix("c"), r, 0)
	check(t, "DoesNotContain", assert.For("s").ThatString("abc").DoesNotContain("z"), r, 0)
}

func TestSliceAssertions(t *testing.T) {
	r := &recorder{}
	assert := assert.To(r)
	check(t, "IsEmpty", assert.For("l").ThatSlice([]int{}).IsEmpty(), r, 0)
	check(t, "IsNotEmpty", assert.For("l").ThatSlice([]int{1}).IsNotEmpty(), r, 0)
	check(t, "IsLength", assert.For("l").ThatSlice([]int{1, 2}).IsLength(2), r, 0)
	check(t, "DeepEquals", assert.For("l").ThatSlice([]string{"x"}).DeepEquals([]string{"x"}), r, 0)
}
