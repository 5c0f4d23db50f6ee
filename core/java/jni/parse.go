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

package jni

import (
	"strings"

	"github.com/Azureussimu/JniSignatureGenerator/core/fault"
	"github.com/pkg/errors"
)

const (
	// ErrTruncated is the cause of errors for a signature that ends before
	// its type is complete.
	ErrTruncated = fault.Const("truncated signature")
	// ErrUnterminatedClass is the cause of errors for a class signature
	// missing its terminating ';'.
	ErrUnterminatedClass = fault.Const("fully qualified class missing terminating ';'")
	// ErrUnknownTypeTag is the cause of errors for an unrecognized signature
	// type tag.
	ErrUnknownTypeTag = fault.Const("unknown signature type tag")
	// ErrMissingOpenParen is the cause of errors for a method signature that
	// does not start with '('.
	ErrMissingOpenParen = fault.Const("method signature doesn't start with '('")
	// ErrMissingCloseParen is the cause of errors for a method signature with
	// no ')'.
	ErrMissingCloseParen = fault.Const("method signature missing ')'")
	// ErrTrailingText is the cause of errors for text left over after a
	// complete signature.
	ErrTrailingText = fault.Const("trailing text after signature")
)

// MethodSignature is the parsed form of a JNI method signature.
type MethodSignature struct {
	Parameters []Type
	Return     Type
}

// ParseType returns the type described by the signature string sig.
// The whole string must be consumed.
func ParseType(sig string) (Type, error) {
	offset := 0
	ty, err := parseSignature(sig, &offset)
	if err != nil {
		return nil, err
	}
	if offset != len(sig) {
		return nil, errors.Wrapf(ErrTrailingText, "at offset %d", offset)
	}
	return ty, nil
}

// ParseMethod returns the method signature described by the string str, of
// the form "(<params>)<return>".
func ParseMethod(str string) (MethodSignature, error) {
	if len(str) == 0 || str[0] != '(' {
		return MethodSignature{}, ErrMissingOpenParen
	}
	s := MethodSignature{}
	i := 1
	for i < len(str) && str[i] != ')' {
		ty, err := parseSignature(str, &i)
		if err != nil {
			return MethodSignature{}, errors.Wrapf(err, "parameter %d", len(s.Parameters))
		}
		s.Parameters = append(s.Parameters, ty)
	}
	if i >= len(str) {
		return MethodSignature{}, ErrMissingCloseParen
	}
	i++
	ty, err := parseSignature(str, &i)
	if err != nil {
		return MethodSignature{}, errors.Wrap(err, "return type")
	}
	s.Return = ty
	if i != len(str) {
		return MethodSignature{}, errors.Wrapf(ErrTrailingText, "at offset %d", i)
	}
	return s, nil
}

// parseSignature returns the type for the signature string starting at
// offset. offset will be modified so that it is one byte beyond the end of
// the parsed string.
func parseSignature(sig string, offset *int) (Type, error) {
	if *offset >= len(sig) {
		return nil, errors.Wrapf(ErrTruncated, "at offset %d", *offset)
	}
	r := sig[*offset]
	*offset++
	switch r {
	case 'V':
		return Void, nil
	case 'Z':
		return Boolean, nil
	case 'B':
		return Byte, nil
	case 'C':
		return Char, nil
	case 'S':
		return Short, nil
	case 'I':
		return Int, nil
	case 'J':
		return Long, nil
	case 'F':
		return Float, nil
	case 'D':
		return Double, nil
	case 'L':
		// fully-qualified-class
		start := *offset
		for *offset < len(sig) {
			r := sig[*offset]
			*offset++
			if r == ';' {
				name := strings.ReplaceAll(sig[start:*offset-1], "/", ".")
				return ClassOf(name), nil
			}
		}
		return nil, ErrUnterminatedClass
	case '[':
		el, err := parseSignature(sig, offset)
		if err != nil {
			return nil, err
		}
		return ArrayOf(el), nil
	default:
		return nil, errors.Wrapf(ErrUnknownTypeTag, "'%c' at offset %d", r, *offset-1)
	}
}
