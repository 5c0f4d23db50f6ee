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
	"sync"

	"github.com/pkg/errors"
)

// primitiveCodes maps the nine primitive kinds to their one-character
// signature codes.
var primitiveCodes = map[Kind]string{
	KindVoid:    "V",
	KindBoolean: "Z",
	KindByte:    "B",
	KindChar:    "C",
	KindShort:   "S",
	KindInt:     "I",
	KindLong:    "J",
	KindFloat:   "F",
	KindDouble:  "D",
}

// Generator builds JNI signature strings, memoizing the signature fragment of
// each class name it sees.
//
// A Generator is safe for concurrent use. The zero value is ready to use; the
// cache only ever affects timing, never results.
type Generator struct {
	classes sync.Map // qualified class name -> "L<name-with-slashes>;"
}

// NewGenerator returns a Generator with an empty signature cache.
func NewGenerator() *Generator { return &Generator{} }

// TypeSignature returns the JNI signature for the single type ty.
func (g *Generator) TypeSignature(ty Type) (string, error) {
	if ty == nil {
		return "", ErrNilType
	}
	return g.typeSignature(ty)
}

func (g *Generator) typeSignature(ty Type) (string, error) {
	switch k := ty.Kind(); {
	case k.IsPrimitive():
		return primitiveCodes[k], nil
	case k == KindArray:
		el := ty.Component()
		if el == nil {
			return "", ErrNilComponent
		}
		sig, err := g.typeSignature(el)
		if err != nil {
			return "", err
		}
		return "[" + sig, nil
	case k == KindClass:
		return g.classSignature(ty.QualifiedName())
	default:
		return "", errors.Wrapf(ErrUnknownKind, "kind %d", ty.Kind())
	}
}

func (g *Generator) classSignature(name string) (string, error) {
	if name == "" {
		return "", ErrUnnamedClass
	}
	if sig, ok := g.classes.Load(name); ok {
		return sig.(string), nil
	}
	sig := "L" + strings.ReplaceAll(name, ".", "/") + ";"
	// Concurrent misses race to store the same pure value, so whichever
	// write wins the result is identical.
	actual, _ := g.classes.LoadOrStore(name, sig)
	return actual.(string), nil
}

func (g *Generator) validate(ret Type, params []Type) error {
	if ret == nil {
		return ErrNilReturnType
	}
	for i, p := range params {
		if p == nil {
			return errors.Wrapf(ErrNilParameter, "parameter %d", i)
		}
	}
	return nil
}

// Signature returns the JNI method signature with the given return type and
// parameter types, in the form "(<params>)<return>".
func (g *Generator) Signature(ret Type, params ...Type) (string, error) {
	if err := g.validate(ret, params); err != nil {
		return "", err
	}
	buf := strings.Builder{}
	buf.WriteByte('(')
	for i, p := range params {
		sig, err := g.typeSignature(p)
		if err != nil {
			return "", errors.Wrapf(err, "parameter %d", i)
		}
		buf.WriteString(sig)
	}
	buf.WriteByte(')')
	sig, err := g.typeSignature(ret)
	if err != nil {
		return "", errors.Wrap(err, "return type")
	}
	buf.WriteString(sig)
	return buf.String(), nil
}

// SignatureWithName returns the method signature prefixed with the method
// name, in the form "name(<params>)<return>".
func (g *Generator) SignatureWithName(name string, ret Type, params ...Type) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}
	sig, err := g.Signature(ret, params...)
	if err != nil {
		return "", err
	}
	return name + sig, nil
}

// ConstructorSignature returns the signature of a constructor with the given
// parameter types. Constructors always return void.
func (g *Generator) ConstructorSignature(params ...Type) (string, error) {
	return g.Signature(Void, params...)
}

// StaticMethodSignature returns the named signature of a static method.
// It behaves exactly like SignatureWithName and exists to make call sites
// that resolve static members read correctly.
func (g *Generator) StaticMethodSignature(name string, ret Type, params ...Type) (string, error) {
	return g.SignatureWithName(name, ret, params...)
}

// ClearCache empties the class signature cache.
// Intended for test isolation between runs that reload type universes; it
// makes no atomicity promises under concurrent load.
func (g *Generator) ClearCache() {
	g.classes.Range(func(key, _ interface{}) bool {
		g.classes.Delete(key)
		return true
	})
}

// def is the generator behind the package-level functions.
var def = NewGenerator()

// TypeSignature returns the JNI signature for the single type ty using the
// default generator.
func TypeSignature(ty Type) (string, error) { return def.TypeSignature(ty) }

// Signature returns the JNI method signature with the given return type and
// parameter types using the default generator.
func Signature(ret Type, params ...Type) (string, error) {
	return def.Signature(ret, params...)
}

// SignatureWithName returns the named method signature using the default
// generator.
func SignatureWithName(name string, ret Type, params ...Type) (string, error) {
	return def.SignatureWithName(name, ret, params...)
}

// ConstructorSignature returns the constructor signature using the default
// generator.
func ConstructorSignature(params ...Type) (string, error) {
	return def.ConstructorSignature(params...)
}

// StaticMethodSignature returns the named static method signature using the
// default generator.
func StaticMethodSignature(name string, ret Type, params ...Type) (string, error) {
	return def.StaticMethodSignature(name, ret, params...)
}

// ClearCache empties the default generator's class signature cache.
func ClearCache() { def.ClearCache() }
