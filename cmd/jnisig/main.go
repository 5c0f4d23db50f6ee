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

package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/Azureussimu/JniSignatureGenerator/core/app"
	"github.com/Azureussimu/JniSignatureGenerator/core/java/jni"
	"github.com/Azureussimu/JniSignatureGenerator/core/log"
)

var (
	name        = flag.String("name", "", "method name to prefix the signature with")
	constructor = flag.Bool("constructor", false, "emit a constructor signature (all arguments are parameter types)")
	static      = flag.Bool("static", false, "treat the named method as static (requires -name)")
)

func main() {
	app.ShortHelp = "jnisig prints the JNI signature for a Java method shape"
	app.Name = "jnisig"
	app.ShortUsage = "<return-type> [<param-type>...]"
	app.UsageFooter = "Types use Java source notation, e.g. int, java.lang.String[], byte[][]"
	app.Run(run)
}

func run(ctx context.Context) error {
	args := flag.Args()
	types := make([]jni.Type, len(args))
	for i, arg := range args {
		ty, err := jni.TypeOf(arg)
		if err != nil {
			return err
		}
		log.D(ctx, "argument %d: %v", i, ty)
		types[i] = ty
	}

	gen := jni.NewGenerator()
	var sig string
	var err error
	switch {
	case *constructor:
		if *name != "" || *static {
			return app.UsageError("-constructor cannot be combined with -name or -static")
		}
		sig, err = gen.ConstructorSignature(types...)
	case len(types) == 0:
		return app.UsageError("a return type is required")
	case *static:
		if *name == "" {
			return app.UsageError("-static requires -name")
		}
		sig, err = gen.StaticMethodSignature(*name, types[0], types[1:]...)
	case *name != "":
		sig, err = gen.SignatureWithName(*name, types[0], types[1:]...)
	default:
		sig, err = gen.Signature(types[0], types[1:]...)
	}
	if err != nil {
		return err
	}
	fmt.Println(sig)
	return nil
}
