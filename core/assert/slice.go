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

package assert

import "reflect"

// OnSlice is the result of calling ThatSlice on an Assertion.
// It provides assertion tests that are specific to slice types.
type OnSlice struct {
	*Assertion
	slice interface{}
}

// ThatSlice returns an OnSlice for slice based assertions.
func (a *Assertion) ThatSlice(slice interface{}) OnSlice {
	return OnSlice{Assertion: a, slice: slice}
}

// IsEmpty asserts that the slice was of length 0.
func (o OnSlice) IsEmpty() bool {
	v := reflect.ValueOf(o.slice)
	return o.Compare(v.Len(), "==", 0).Test(v.Len() == 0)
}

// IsNotEmpty asserts that the slice has elements.
func (o OnSlice) IsNotEmpty() bool {
	v := reflect.ValueOf(o.slice)
	return o.Compare(v.Len(), ">", 0).Test(v.Len() > 0)
}

// IsLength asserts that the slice has exactly the specified number of
// elements.
func (o OnSlice) IsLength(length int) bool {
	v := reflect.ValueOf(o.slice)
	return o.Compare(v.Len(), "==", length).Test(v.Len() == length)
}

// DeepEquals asserts the slice matches the expected slice using
// reflect.DeepEqual.
func (o OnSlice) DeepEquals(expected interface{}) bool {
	return o.Compare(o.slice, "deep ==", expected).Test(reflect.DeepEqual(o.slice, expected))
}
