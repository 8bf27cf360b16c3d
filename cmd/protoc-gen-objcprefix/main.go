// Command protoc-gen-objcprefix is a protoc plugin enforcing Objective-C
// class prefix policy over proto files. It validates objc_class_prefix
// options against an expected prefixes registry and can dump the
// Objective-C name of every schema element for inspection.
//
// Wire it up like any protoc plugin:
//
//	protoc --objcprefix_out=. --objcprefix_opt=expected_prefixes_path=prefixes.txt foo.proto
package main

import (
	"flag"
	"fmt"
	"os"

	"google.golang.org/protobuf/compiler/protogen"

	objcgen "github.com/DeputyApp/protoc-gen-objc"
)

func main() {
	gen, err := objcgen.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "protoc-gen-objcprefix:", err)
		os.Exit(1)
	}
	var flags flag.FlagSet
	gen.BindFlags(&flags)
	protogen.Options{ParamFunc: flags.Set}.Run(gen.Generate)
}
