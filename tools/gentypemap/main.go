// gentypemap regenerates the builtin type table from typemap.yaml.
//
// Usage: go run ./tools/gentypemap -in pkg/types/typemap.yaml -out pkg/types/table_gen.go
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dave/jennifer/jen"
	"gopkg.in/yaml.v3"
)

func main() {
	in := flag.String("in", "typemap.yaml", "input YAML mapping file")
	out := flag.String("out", "table_gen.go", "output Go source file")
	flag.Parse()

	data, err := os.ReadFile(*in)
	if err != nil {
		fatal("read %s: %v", *in, err)
	}

	var mapping map[string]string
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		fatal("parse %s: %v", *in, err)
	}
	if len(mapping) == 0 {
		fatal("%s: empty mapping", *in)
	}

	f := jen.NewFile("types")
	f.HeaderComment("Code generated by gentypemap. DO NOT EDIT.")
	f.Comment("builtinTypes maps Objective-C builtin type spellings to Swift names.")

	dict := jen.Dict{}
	for k, v := range mapping {
		dict[jen.Lit(k)] = jen.Lit(v)
	}
	f.Var().Id("builtinTypes").Op("=").Map(jen.String()).String().Values(dict)

	if err := f.Save(*out); err != nil {
		fatal("write %s: %v", *out, err)
	}
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "gentypemap: "+format+"\n", args...)
	os.Exit(1)
}
