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

import "strings"

// Kind identifies the shape of a Java type.
type Kind int

const (
	// KindVoid is the primitive void type.
	KindVoid Kind = iota
	// KindBoolean is the primitive boolean type.
	KindBoolean
	// KindByte is the primitive byte type.
	KindByte
	// KindChar is the primitive char type.
	KindChar
	// KindShort is the primitive short type.
	KindShort
	// KindInt is the primitive int type.
	KindInt
	// KindLong is the primitive long type.
	KindLong
	// KindFloat is the primitive float type.
	KindFloat
	// KindDouble is the primitive double type.
	KindDouble
	// KindArray is an array of a component type.
	KindArray
	// KindClass is a reference type with a fully-qualified name.
	KindClass
)

var kindNames = map[Kind]string{
	KindVoid:    "void",
	KindBoolean: "boolean",
	KindByte:    "byte",
	KindChar:    "char",
	KindShort:   "short",
	KindInt:     "int",
	KindLong:    "long",
	KindFloat:   "float",
	KindDouble:  "double",
	KindArray:   "array",
	KindClass:   "class",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsPrimitive reports whether k is one of the nine primitive kinds.
func (k Kind) IsPrimitive() bool {
	return k >= KindVoid && k <= KindDouble
}

// Type describes a Java type to the signature generator.
//
// It deliberately only exposes what the generator needs, so implementations
// can wrap a live reflection facility just as easily as a plain descriptor.
type Type interface {
	// Kind reports the shape of the type.
	Kind() Kind
	// Component returns the element type of an array, or nil for any other
	// kind.
	Component() Type
	// QualifiedName returns the fully-qualified '.'-separated class name for
	// reference types, and "" for any other kind.
	QualifiedName() string
	// String returns the type in Java source notation.
	String() string
}

// Primitive is one of the nine built-in Java value types.
//
// The predeclared singletons (Void, Boolean, ...) are the only values of this
// type; comparing against them gives an exact primitive match, so wrapper
// classes like java.lang.Integer never pass for their unboxed counterparts.
type Primitive struct {
	kind Kind
}

var (
	// Void is the primitive void type.
	Void = &Primitive{KindVoid}
	// Boolean is the primitive boolean type.
	Boolean = &Primitive{KindBoolean}
	// Byte is the primitive byte type.
	Byte = &Primitive{KindByte}
	// Char is the primitive char type.
	Char = &Primitive{KindChar}
	// Short is the primitive short type.
	Short = &Primitive{KindShort}
	// Int is the primitive int type.
	Int = &Primitive{KindInt}
	// Long is the primitive long type.
	Long = &Primitive{KindLong}
	// Float is the primitive float type.
	Float = &Primitive{KindFloat}
	// Double is the primitive double type.
	Double = &Primitive{KindDouble}
)

// Kind reports the primitive kind.
func (p *Primitive) Kind() Kind { return p.kind }

// Component returns nil as primitives have no component type.
func (p *Primitive) Component() Type { return nil }

// QualifiedName returns "" as primitives have no class name.
func (p *Primitive) QualifiedName() string { return "" }

func (p *Primitive) String() string { return p.kind.String() }

// Array is the type of a Java array.
type Array struct {
	elem Type
}

// ArrayOf returns the array type with the given element type.
// Multi-dimensional arrays are built by nesting.
func ArrayOf(elem Type) *Array { return &Array{elem} }

// Kind returns KindArray.
func (a *Array) Kind() Kind { return KindArray }

// Component returns the element type of the array.
func (a *Array) Component() Type { return a.elem }

// QualifiedName returns "" as arrays are described by their component.
func (a *Array) QualifiedName() string { return "" }

func (a *Array) String() string {
	if a.elem == nil {
		return "?[]"
	}
	return a.elem.String() + "[]"
}

// Class is a Java reference type identified by its fully-qualified
// '.'-separated name.
type Class struct {
	name string
}

// ClassOf returns the class type with the given fully-qualified name.
func ClassOf(name string) *Class { return &Class{name} }

var (
	// ObjectClass is java.lang.Object.
	ObjectClass = ClassOf("java.lang.Object")
	// StringClass is java.lang.String.
	StringClass = ClassOf("java.lang.String")
)

// Kind returns KindClass.
func (c *Class) Kind() Kind { return KindClass }

// Component returns nil as classes have no component type.
func (c *Class) Component() Type { return nil }

// QualifiedName returns the fully-qualified '.'-separated class name.
func (c *Class) QualifiedName() string { return c.name }

func (c *Class) String() string { return c.name }

var primitivesByName = map[string]*Primitive{
	"void":    Void,
	"boolean": Boolean,
	"byte":    Byte,
	"char":    Char,
	"short":   Short,
	"int":     Int,
	"long":    Long,
	"float":   Float,
	"double":  Double,
}

// TypeOf returns the type described in Java source notation: a primitive
// keyword or a fully-qualified class name, followed by one pair of square
// brackets per array dimension. For example "int", "java.lang.String[]" or
// "byte[][]".
func TypeOf(name string) (Type, error) {
	name = strings.TrimSpace(name)
	dims := 0
	for strings.HasSuffix(name, "[]") {
		name = strings.TrimSpace(name[:len(name)-2])
		dims++
	}
	if name == "" {
		return nil, ErrEmptyTypeName
	}
	var ty Type
	if p, ok := primitivesByName[name]; ok {
		if p == Void && dims > 0 {
			return nil, ErrVoidArray
		}
		ty = p
	} else {
		ty = ClassOf(name)
	}
	for i := 0; i < dims; i++ {
		ty = ArrayOf(ty)
	}
	return ty, nil
}
