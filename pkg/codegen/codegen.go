// Package codegen generates Swift source from the Objective-C parse tree.
//
// The generator is a pure tree-to-text transform: nodes are never
// mutated, and all per-translation state (the owner index and the
// rendered-definition table) lives on the Generator. The rendered
// table and warnings reset at the start of every Generate call, so
// repeated passes over the same unit produce identical output. A
// Generator is bound to the unit it was created for.
package codegen

import (
	"fmt"
	"strings"

	"github.com/swiftpen/objc2swift/pkg/ast"
	"github.com/swiftpen/objc2swift/pkg/types"
)

// Options controls code generation.
type Options struct {
	// IndentWidth is the number of spaces per indentation level.
	IndentWidth int
	// Types resolves Objective-C type names. nil uses the builtin table.
	Types *types.Table
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{IndentWidth: 4}
}

// Result contains the generated code and any dropped constructs.
type Result struct {
	Code     string
	Warnings []string
}

// Generate produces Swift source for a whole translation unit.
func Generate(unit *ast.TranslationUnit, opts Options) *Result {
	g := New(unit, opts)
	return g.Generate()
}

// Generator holds the state of one translation pass.
type Generator struct {
	unit     *ast.TranslationUnit
	owners   ast.OwnerIndex
	opts     Options
	warnings []string

	// rendered marks method definitions already emitted in this pass,
	// so a later independent visit emits nothing. Keyed by node
	// identity; fresh per Generate call.
	rendered map[*ast.MethodDefinition]bool
}

// New creates a Generator for one translation unit.
func New(unit *ast.TranslationUnit, opts Options) *Generator {
	if opts.IndentWidth <= 0 {
		opts.IndentWidth = 4
	}
	if opts.Types == nil {
		opts.Types = types.NewTable(nil)
	}
	return &Generator{
		unit:     unit,
		owners:   ast.BuildOwnerIndex(unit),
		opts:     opts,
		rendered: map[*ast.MethodDefinition]bool{},
	}
}

// Generate renders every top-level construct and assembles the output
// file, blocks separated by blank lines. Each call is a full pass: the
// rendered table and warnings start empty, so markers from an earlier
// pass cannot swallow definitions in this one.
func (g *Generator) Generate() *Result {
	g.rendered = map[*ast.MethodDefinition]bool{}
	g.warnings = nil

	var blocks []string
	if g.unit != nil {
		for _, decl := range g.unit.Decls {
			if s := g.visit(decl); strings.TrimSpace(s) != "" {
				blocks = append(blocks, strings.TrimRight(s, "\n"))
			}
		}
	}
	code := ""
	if len(blocks) > 0 {
		code = strings.Join(blocks, "\n\n") + "\n"
	}
	return &Result{Code: code, Warnings: g.warnings}
}

// visit dispatches on the concrete node kind and returns its rendering.
// Unsupported kinds render to the empty string.
func (g *Generator) visit(node ast.Node) string {
	switch n := node.(type) {
	case *ast.ClassInterface:
		return g.visitClassInterface(n)
	case *ast.CategoryInterface:
		return g.visitCategoryInterface(n)
	case *ast.ClassImplementation:
		return g.visitClassImplementation(n)
	case *ast.CategoryImplementation:
		return g.visitCategoryImplementation(n)
	case *ast.ProtocolDeclaration:
		return g.visitProtocolDeclaration(n)
	case *ast.PropertyDeclaration:
		return g.visitPropertyDeclaration(n)
	case *ast.MethodDeclaration:
		return g.visitMethodDeclaration(n)
	case *ast.MethodDefinition:
		return g.visitMethodDefinition(n)
	case *ast.Declaration:
		return g.visitDeclaration(n)
	case *ast.EnumSpecifier:
		return g.visitEnumSpecifier(n)
	case *ast.CompoundStatement:
		return g.visitCompoundStatement(n)
	case ast.Stmt:
		return g.visitStatement(n)
	case ast.Expr:
		return g.visitExpr(n)
	}
	return ""
}

// indent prefixes every non-empty line of text with one indentation
// unit.
func (g *Generator) indent(text string) string {
	unit := strings.Repeat(" ", g.opts.IndentWidth)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = unit + line
		}
	}
	return strings.Join(lines, "\n")
}

func (g *Generator) warnf(format string, args ...interface{}) {
	g.warnings = append(g.warnings, fmt.Sprintf(format, args...))
}

// joinTypeSpecs collapses a type-specifier list into one Swift type
// token. Enum specifiers contribute their name.
func (g *Generator) joinTypeSpecs(specs []*ast.TypeSpecifier) string {
	names := make([]string, 0, len(specs))
	for _, s := range specs {
		if s.IsEnum() {
			names = append(names, s.Enum.Name)
			continue
		}
		if s.Name != "" {
			names = append(names, s.Name)
		}
	}
	return g.opts.Types.Join(names)
}
