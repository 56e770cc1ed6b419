package codegen

import (
	"strings"

	"github.com/swiftpen/objc2swift/pkg/ast"
)

// Class, category and protocol translation. Interfaces drive the
// output: method declarations pull their definitions in from the
// implementation, so a class renders as one Swift class block.

func (g *Generator) visitClassInterface(c *ast.ClassInterface) string {
	header := "class " + c.Name
	inherits := make([]string, 0, 1+len(c.Protocols))
	if c.SuperClass != "" {
		inherits = append(inherits, c.SuperClass)
	}
	inherits = append(inherits, c.Protocols...)
	if len(inherits) > 0 {
		header += ": " + strings.Join(inherits, ", ")
	}

	var blocks []string
	var vars []string
	for _, iv := range c.IVars {
		if s := g.visitDeclaration(iv); s != "" {
			vars = append(vars, strings.TrimRight(s, "\n"))
		}
	}
	for _, p := range c.Properties {
		if s := g.visitPropertyDeclaration(p); s != "" {
			vars = append(vars, s)
		}
	}
	if len(vars) > 0 {
		blocks = append(blocks, strings.Join(vars, "\n"))
	}
	for _, m := range c.Methods {
		if s := g.visitMethodDeclaration(m); s != "" {
			blocks = append(blocks, s)
		}
	}
	return renderBlock(header, blocks, g)
}

func (g *Generator) visitCategoryInterface(c *ast.CategoryInterface) string {
	header := "extension " + c.ClassName
	if len(c.Protocols) > 0 {
		header += ": " + strings.Join(c.Protocols, ", ")
	}

	var blocks []string
	var vars []string
	for _, p := range c.Properties {
		if s := g.visitPropertyDeclaration(p); s != "" {
			vars = append(vars, s)
		}
	}
	if len(vars) > 0 {
		blocks = append(blocks, strings.Join(vars, "\n"))
	}
	for _, m := range c.Methods {
		if s := g.visitMethodDeclaration(m); s != "" {
			blocks = append(blocks, s)
		}
	}
	return renderBlock(header, blocks, g)
}

func (g *Generator) visitProtocolDeclaration(p *ast.ProtocolDeclaration) string {
	header := "protocol " + p.Name
	if len(p.Protocols) > 0 {
		header += ": " + strings.Join(p.Protocols, ", ")
	}
	var blocks []string
	for _, m := range p.Methods {
		if s := g.visitMethodDeclaration(m); s != "" {
			blocks = append(blocks, s)
		}
	}
	return renderBlock(header, blocks, g)
}

// visitClassImplementation renders only the definitions that no
// interface declaration claimed. With a preceding interface this is
// normally empty; private methods land in an extension, and an
// implementation without any interface renders as the class itself.
func (g *Generator) visitClassImplementation(impl *ast.ClassImplementation) string {
	var blocks []string
	for _, def := range impl.Definitions {
		if s := g.visitMethodDefinition(def); s != "" {
			blocks = append(blocks, s)
		}
	}
	if len(blocks) == 0 {
		return ""
	}
	keyword := "extension"
	if g.interfaceFor(impl.Name) == nil {
		keyword = "class"
	}
	return renderBlock(keyword+" "+impl.Name, blocks, g)
}

func (g *Generator) visitCategoryImplementation(impl *ast.CategoryImplementation) string {
	var blocks []string
	for _, def := range impl.Definitions {
		if s := g.visitMethodDefinition(def); s != "" {
			blocks = append(blocks, s)
		}
	}
	if len(blocks) == 0 {
		return ""
	}
	return renderBlock("extension "+impl.ClassName, blocks, g)
}

func (g *Generator) visitPropertyDeclaration(p *ast.PropertyDeclaration) string {
	if p.Name == "" || len(p.TypeSpecs) == 0 {
		return ""
	}
	return "var " + p.Name + ": " + g.joinTypeSpecs(p.TypeSpecs)
}

func (g *Generator) interfaceFor(name string) *ast.ClassInterface {
	if g.unit == nil {
		return nil
	}
	for _, decl := range g.unit.Decls {
		if c, ok := decl.(*ast.ClassInterface); ok && c.Name == name {
			return c
		}
	}
	return nil
}

// renderBlock assembles a braced block with blank lines between member
// groups.
func renderBlock(header string, blocks []string, g *Generator) string {
	if len(blocks) == 0 {
		return header + " {\n}"
	}
	body := strings.Join(blocks, "\n\n") + "\n"
	return header + " {\n" + g.indent(body) + "}"
}
