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

package fault_test

import (
	"fmt"
	"testing"

	"github.com/Azureussimu/JniSignatureGenerator/core/fault"
)

const (
	errorMessage = "Some message"
	anError      = fault.Const(errorMessage)
)

func TestConst(t *testing.T) {
	if anError.Error() != errorMessage {
		t.Errorf("Const has the wrong string form, expected %q got %q", errorMessage, anError)
	}
}

func TestFrom(t *testing.T) {
	var err error
	err = fault.From(nil)
	if err != nil {
		t.Errorf("fault.From(nil) incorrectly returned a valid error")
	}
	err = fault.From(anError)
	if err != anError {
		t.Errorf("fault.From(anError) returned a different object")
	}
	err = fault.From(fmt.Errorf("Format %s", "error"))
	if err.Error() != "Format error" {
		t.Errorf("fault.From modified a formatted error type")
	}
	err = fault.From(0)
	if err != fault.InvalidErrorType {
		t.Errorf("fault.From of a non error type did not return InvalidErrorType")
	}
}
