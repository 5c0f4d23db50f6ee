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

// Package jni builds and parses JNI type and method signature strings.
//
// A JNI signature is the compact encoding of a Java type used by native code
// to look up methods, fields and constructors. Primitives encode as single
// characters ('I' for int, 'Z' for boolean, ...), arrays prefix their
// component with '[', and reference types encode as 'L' followed by the
// slash-separated qualified name and a terminating ';'. A method signature is
// the parenthesized parameter list followed by the return type:
//
//	main([Ljava/lang/String;I)V
package jni

import "github.com/Azureussimu/JniSignatureGenerator/core/fault"

const (
	// ErrNilReturnType is the cause of errors for a nil return type.
	ErrNilReturnType = fault.Const("return type cannot be nil")
	// ErrNilParameter is the cause of errors for a nil parameter type.
	ErrNilParameter = fault.Const("parameter type cannot be nil")
	// ErrEmptyName is the cause of errors for a missing method name.
	ErrEmptyName = fault.Const("method name cannot be empty")
	// ErrNilType is the cause of errors for a nil type.
	ErrNilType = fault.Const("type cannot be nil")
	// ErrNilComponent is the cause of errors for an array with no component
	// type.
	ErrNilComponent = fault.Const("array component type cannot be nil")
	// ErrUnnamedClass is the cause of errors for a class type with no
	// qualified name.
	ErrUnnamedClass = fault.Const("class type has no qualified name")
	// ErrUnknownKind is the cause of errors for a type of unrecognized kind.
	ErrUnknownKind = fault.Const("unknown type kind")
	// ErrEmptyTypeName is returned by TypeOf for an empty type name.
	ErrEmptyTypeName = fault.Const("empty type name")
	// ErrVoidArray is returned by TypeOf for an array of void.
	ErrVoidArray = fault.Const("void cannot be an array component")
)
