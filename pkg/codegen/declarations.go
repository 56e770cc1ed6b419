package codegen

import (
	"strings"

	"github.com/swiftpen/objc2swift/pkg/ast"
)

// Declaration translation: specifier mapping, declarator rendering and
// the assembly of complete declaration statements.

// mapSpecifier maps one storage/qualifier token to its Swift keyword.
// Unrecognized qualifiers map to the empty string and are filtered out
// by the caller; the narrowing is deliberate.
func mapSpecifier(name string) string {
	switch name {
	case "const":
		return "let"
	case "static":
		return "static"
	}
	return ""
}

// cTypeWords are the reserved words that can only spell a builtin type.
// A trailing specifier outside this set is a class-name token and names
// the declared variable in the short declaration form.
var cTypeWords = map[string]bool{
	"void": true, "char": true, "short": true, "int": true,
	"long": true, "float": true, "double": true,
	"signed": true, "unsigned": true,
}

// declClass classifies a declarator shape once, before rendering.
type declClass int

const (
	declBinding     declClass = iota // plain identifier: a variable binding
	declCallExpr                     // declarator wrapping another declarator: a call in disguise
	declUnsupported                  // anything else
)

func classifyDeclarator(d *ast.Declarator) declClass {
	if d == nil || d.Direct == nil {
		return declUnsupported
	}
	if d.Direct.Name != "" {
		return declBinding
	}
	if d.Direct.Inner != nil {
		return declCallExpr
	}
	return declUnsupported
}

// visitDeclarator renders a declarator. Pointer decoration carries no
// Swift meaning and contributes nothing; the direct declarator supplies
// the text.
func (g *Generator) visitDeclarator(d *ast.Declarator) string {
	if d == nil {
		return ""
	}
	text := g.visitDirectDeclarator(d.Direct)
	if d.Pointer {
		return g.visitPointer(d) + text
	}
	return text
}

// visitPointer renders pointer decoration. Swift has no declarator
// stars, so the rendering is empty; the hook exists so reference-type
// annotations have a single place to grow.
func (g *Generator) visitPointer(d *ast.Declarator) string {
	return ""
}

// visitDirectDeclarator renders a direct declarator. Explicit grouping
// parentheses are preserved literally; every other terminal token
// (array brackets and the like) is elided because the target language
// rendering does not support it.
func (g *Generator) visitDirectDeclarator(dd *ast.DirectDeclarator) string {
	if dd == nil {
		return ""
	}
	if dd.Name != "" {
		return dd.Name
	}
	if dd.Inner != nil {
		return "(" + g.visitDeclarator(dd.Inner) + ")"
	}
	return ""
}

// visitDeclaration assembles a full declaration statement. The result
// may span zero, one or several lines and always carries exactly one
// trailing newline when non-empty.
func (g *Generator) visitDeclaration(d *ast.Declaration) string {
	if d == nil {
		return ""
	}

	var prefixes []string
	for _, s := range d.Specifiers {
		if mapped := mapSpecifier(s.Name); mapped != "" {
			prefixes = append(prefixes, mapped)
		}
	}

	if len(d.TypeSpecs) == 0 {
		return ""
	}

	// An enum specifier in last position emits the whole enum; trailing
	// declarators are not separately supported.
	last := d.TypeSpecs[len(d.TypeSpecs)-1]
	if last.IsEnum() {
		if text := g.visitEnumSpecifier(last.Enum); text != "" {
			return text + "\n"
		}
		return ""
	}

	if len(d.InitDecls) > 0 {
		typeName := g.joinTypeSpecs(d.TypeSpecs)
		var lines []string
		for _, id := range d.InitDecls {
			if line := g.renderInitDeclarator(prefixes, typeName, id); line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) == 0 {
			return ""
		}
		return strings.Join(lines, "\n") + "\n"
	}

	// Short form: Type name; — the trailing specifier is the declared
	// name when it is a class-name token preceded by the actual type.
	if len(d.TypeSpecs) >= 2 && last.Name != "" && !cTypeWords[last.Name] {
		typeName := g.joinTypeSpecs(d.TypeSpecs[:len(d.TypeSpecs)-1])
		parts := append([]string{}, prefixes...)
		if !containsToken(prefixes, "let") {
			parts = append(parts, "var")
		}
		parts = append(parts, last.Name+": "+typeName)
		return strings.Join(parts, " ") + "\n"
	}

	// A bare type with no bindable name has no translation.
	g.warnf("declaration dropped: no bindable name")
	return ""
}

// renderInitDeclarator renders one declarator of an init-declarator
// list to a single output line, or "" when the shape is unsupported.
func (g *Generator) renderInitDeclarator(prefixes []string, typeName string, id *ast.InitDeclarator) string {
	if id == nil {
		return ""
	}
	switch classifyDeclarator(id.Decl) {
	case declBinding:
		declText := g.visitDeclarator(id.Decl)
		parts := append([]string{}, prefixes...)
		if !containsToken(prefixes, "let") && !containsToken(strings.Fields(declText), "let") {
			parts = append(parts, "var")
		}
		parts = append(parts, declText+": "+typeName)
		line := strings.Join(parts, " ")
		if id.Init != nil {
			line += " = " + g.visitExpr(id.Init)
		}
		return line

	case declCallExpr:
		// Syntactically a declaration, semantically a call: rewrite
		// Type (inner) to Type(inner). Prefixes and var/let do not
		// apply; this is not a binding.
		inner := g.visitDeclarator(id.Decl.Direct.Inner)
		return typeName + "(" + inner + ")"
	}
	return ""
}

func containsToken(tokens []string, want string) bool {
	for _, t := range tokens {
		if t == want {
			return true
		}
	}
	return false
}

// visitEnumSpecifier renders an enum with its constants. Objective-C
// enums are integer backed. An anonymous enum has no Swift rendering.
func (g *Generator) visitEnumSpecifier(e *ast.EnumSpecifier) string {
	if e == nil || e.Name == "" {
		return ""
	}
	var body strings.Builder
	for _, en := range e.Enumerators {
		body.WriteString("case " + en.Name)
		if en.Value != nil {
			body.WriteString(" = " + g.visitExpr(en.Value))
		}
		body.WriteString("\n")
	}
	return "enum " + e.Name + ": Int {\n" + g.indent(body.String()) + "}"
}
