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

package jni_test

import (
	"testing"

	"github.com/Azureussimu/JniSignatureGenerator/core/assert"
	"github.com/Azureussimu/JniSignatureGenerator/core/java/jni"
)

func TestParseType(t *testing.T) {
	assert := assert.To(t)
	for sig, want := range map[string]string{
		"V":                    "void",
		"Z":                    "boolean",
		"B":                    "byte",
		"C":                    "char",
		"S":                    "short",
		"I":                    "int",
		"J":                    "long",
		"F":                    "float",
		"D":                    "double",
		"[I":                   "int[]",
		"[[I":                  "int[][]",
		"Ljava/lang/String;":   "java.lang.String",
		"[[Ljava/lang/String;": "java.lang.String[][]",
	} {
		ty, err := jni.ParseType(sig)
		assert.For("parse(%v) error", sig).ThatError(err).Succeeded()
		assert.For("parse(%v)", sig).ThatString(ty).Equals(want)
	}
}

func TestParseTypeRoundTrip(t *testing.T) {
	assert := assert.To(t)
	for _, sig := range []string{
		"I", "V", "[J", "[[Z", "Ljava/lang/Object;", "[[[Lcom/example/Widget;",
	} {
		ty, err := jni.ParseType(sig)
		assert.For("parse(%v) error", sig).ThatError(err).Succeeded()
		back, err := jni.TypeSignature(ty)
		assert.For("regenerate(%v) error", sig).ThatError(err).Succeeded()
		assert.For("round trip %v", sig).That(back).Equals(sig)
	}
}

func TestParseTypeErrors(t *testing.T) {
	assert := assert.To(t)
	for sig, cause := range map[string]error{
		"":                  jni.ErrTruncated,
		"[":                 jni.ErrTruncated,
		"Ljava/lang/String": jni.ErrUnterminatedClass,
		"Q":                 jni.ErrUnknownTypeTag,
		"II":                jni.ErrTrailingText,
		"[[":                jni.ErrTruncated,
	} {
		ty, err := jni.ParseType(sig)
		assert.For("parse(%q) err", sig).ThatError(err).HasCause(cause)
		assert.For("parse(%q) type", sig).That(ty).IsNil()
	}
}

func TestParseMethod(t *testing.T) {
	assert := assert.To(t)
	sig, err := jni.ParseMethod("([Ljava/lang/String;I)V")
	assert.For("err").ThatError(err).Succeeded()
	assert.For("params").ThatSlice(sig.Parameters).IsLength(2)
	assert.For("param 0").ThatString(sig.Parameters[0]).Equals("java.lang.String[]")
	assert.For("param 1").That(sig.Parameters[1]).Equals(jni.Int)
	assert.For("return").That(sig.Return).Equals(jni.Void)
}

func TestParseMethodNoParams(t *testing.T) {
	assert := assert.To(t)
	sig, err := jni.ParseMethod("()Ljava/lang/String;")
	assert.For("err").ThatError(err).Succeeded()
	assert.For("params").ThatSlice(sig.Parameters).IsEmpty()
	assert.For("return").ThatString(sig.Return).Equals("java.lang.String")
}

func TestParseMethodErrors(t *testing.T) {
	assert := assert.To(t)
	for sig, cause := range map[string]error{
		"":        jni.ErrMissingOpenParen,
		"IV":      jni.ErrMissingOpenParen,
		"(I":      jni.ErrMissingCloseParen,
		"(I)":     jni.ErrTruncated,
		"(Q)V":    jni.ErrUnknownTypeTag,
		"(I)VV":   jni.ErrTrailingText,
		"(L;I)V ": jni.ErrTrailingText,
	} {
		_, err := jni.ParseMethod(sig)
		assert.For("parse(%q)", sig).ThatError(err).HasCause(cause)
	}
}

func TestParseMethodRoundTrip(t *testing.T) {
	assert := assert.To(t)
	for _, want := range []string{
		"()V",
		"(IJ)I",
		"(Ljava/lang/String;I)Ljava/lang/String;",
		"([Ljava/lang/String;[[D)Lcom/example/Widget;",
	} {
		sig, err := jni.ParseMethod(want)
		assert.For("parse(%v) error", want).ThatError(err).Succeeded()
		back, err := jni.Signature(sig.Return, sig.Parameters...)
		assert.For("regenerate(%v) error", want).ThatError(err).Succeeded()
		assert.For("round trip %v", want).That(back).Equals(want)
	}
}
