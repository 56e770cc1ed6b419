// Package types maps Objective-C type names to their Swift equivalents.
//
// The builtin table lives in table_gen.go, generated from typemap.yaml.
// Unknown names pass through unchanged: class names like NSString keep
// their spelling and the converter strips pointer decoration instead.
package types

//go:generate go run ../../tools/gentypemap -in typemap.yaml -out table_gen.go

import "strings"

// Table resolves Objective-C type names. The zero value uses only the
// builtin table.
type Table struct {
	overrides map[string]string
}

// NewTable returns a Table extended with the given overrides. Override
// entries win over builtins.
func NewTable(overrides map[string]string) *Table {
	return &Table{overrides: overrides}
}

// Lookup resolves one type name. The second result reports whether the
// name was found in either table.
func (t *Table) Lookup(name string) (string, bool) {
	if t != nil && t.overrides != nil {
		if mapped, ok := t.overrides[name]; ok {
			return mapped, true
		}
	}
	mapped, ok := builtinTypes[name]
	return mapped, ok
}

// Map resolves one type name, passing unknown names through unchanged.
func (t *Table) Map(name string) string {
	if mapped, ok := t.Lookup(name); ok {
		return mapped
	}
	return name
}

// Join collapses an ordered type-specifier list into a single target
// type token. Multi-word builtins resolve longest-match-first, so
// "unsigned long long" finds its own entry before "unsigned long" would.
// Leftover words map individually and concatenate.
func (t *Table) Join(specs []string) string {
	var sb strings.Builder
	i := 0
	for i < len(specs) {
		matched := false
		max := len(specs) - i
		if max > 3 {
			max = 3
		}
		for l := max; l >= 2; l-- {
			key := strings.Join(specs[i:i+l], " ")
			if mapped, ok := t.Lookup(key); ok {
				sb.WriteString(mapped)
				i += l
				matched = true
				break
			}
		}
		if !matched {
			sb.WriteString(t.Map(specs[i]))
			i++
		}
	}
	return sb.String()
}

// IsVoid reports whether a resolved or raw type name denotes no value.
func IsVoid(name string) bool {
	return name == "void" || name == "Void"
}

// IsIBAction reports whether a type name is the Interface Builder
// action annotation.
func IsIBAction(name string) bool {
	return name == "IBAction"
}
