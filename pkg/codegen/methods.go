package codegen

import (
	"strings"

	"github.com/swiftpen/objc2swift/pkg/ast"
	"github.com/swiftpen/objc2swift/pkg/types"
)

// Method translation: selector/signature building and the resolution of
// interface declarations against their implementation definitions.

// signatureKind records which special-case rename applied to a method
// signature, because the surrounding keywords differ per kind.
type signatureKind int

const (
	sigFunc   signatureKind = iota // plain function: func name(args) [-> T]
	sigInit                        // constructor: init(args)
	sigDeinit                      // destructor: deinit
	sigAction                      // UI action: @IBAction func name(args)
)

// methodTypeName resolves a parenthesized method-type annotation to a
// Swift type token. Pointer decoration is dropped.
func (g *Generator) methodTypeName(mt *ast.MethodType) string {
	if mt == nil {
		return ""
	}
	return g.joinTypeSpecs(mt.Specs)
}

// visitKeywordDeclarator renders one labeled parameter slot. The head
// slot always elides its selector label; a tail slot elides the label
// only when it is absent or equal to the parameter name.
func (g *Generator) visitKeywordDeclarator(kd *ast.KeywordDeclarator, isHead bool) string {
	var typeText strings.Builder
	for _, mt := range kd.Types {
		typeText.WriteString(g.methodTypeName(mt))
	}
	if isHead || kd.Selector == "" || kd.Selector == kd.Param {
		return kd.Param + ": " + typeText.String()
	}
	return kd.Selector + " " + kd.Param + ": " + typeText.String()
}

// selectorArgs renders the argument list of a keyword selector,
// applying the head/tail labeling rule.
func (g *Generator) selectorArgs(keywords []*ast.KeywordDeclarator) string {
	parts := make([]string, 0, len(keywords))
	for i, kd := range keywords {
		parts = append(parts, g.visitKeywordDeclarator(kd, i == 0))
	}
	return strings.Join(parts, ", ")
}

// methodSignature builds a full Swift signature for a selector and an
// optional return-type annotation, excluding the leading func/class
// markers. The special-case renames apply in priority order: bare init,
// initWith constructors, dealloc, then plain functions with a
// return-type suffix.
func (g *Generator) methodSignature(sel *ast.MethodSelector, ret *ast.MethodType) (string, signatureKind) {
	name := sel.SelectorName()

	if name == "init" && len(sel.Keywords) == 0 {
		return "init()", sigInit
	}
	if strings.HasPrefix(name, "initWith") && len(sel.Keywords) > 0 {
		return "init(" + g.selectorArgs(sel.Keywords) + ")", sigInit
	}
	if name == "dealloc" && len(sel.Keywords) == 0 {
		// Destructors never carry parameters or a return type,
		// whatever the annotation says.
		return "deinit", sigDeinit
	}

	sig := name + "(" + g.selectorArgs(sel.Keywords) + ")"

	if ret == nil {
		return sig + " -> AnyObject", sigFunc
	}
	retName := g.methodTypeName(ret)
	switch {
	case types.IsVoid(retName):
		return sig, sigFunc
	case types.IsIBAction(retName):
		return sig, sigAction
	default:
		return sig + " -> " + retName, sigFunc
	}
}

// methodHead renders the signature with its leading markers: func for
// instance methods, class func for class methods, @IBAction for UI
// actions. Constructors and destructors take no func keyword.
func (g *Generator) methodHead(classMethod bool, sel *ast.MethodSelector, ret *ast.MethodType) string {
	sig, kind := g.methodSignature(sel, ret)
	switch kind {
	case sigInit, sigDeinit:
		return sig
	case sigAction:
		return "@IBAction func " + sig
	}
	if classMethod {
		return "class func " + sig
	}
	return "func " + sig
}

// resolveDefinition locates the implementation definition matching a
// method declaration, or nil. The owner interface comes from the
// per-tree owner index; class and category interfaces resolve to their
// implementation counterpart by name. Matching is by selector text and
// instance/class kind; the first match wins. Every failure mode
// degrades to "no match".
func (g *Generator) resolveDefinition(decl *ast.MethodDeclaration) *ast.MethodDefinition {
	var defs []*ast.MethodDefinition
	switch owner := g.owners[decl].(type) {
	case *ast.ClassInterface:
		if impl := ast.FindClassImplementation(g.unit, owner.Name); impl != nil {
			defs = impl.Definitions
		}
	case *ast.CategoryInterface:
		if impl := ast.FindCategoryImplementation(g.unit, owner.ClassName, owner.CategoryName); impl != nil {
			defs = impl.Definitions
		}
	default:
		// Protocol members and unknown owners have no definitions.
		return nil
	}

	want := decl.Selector.SelectorName()
	for _, def := range defs {
		if def.Selector.SelectorName() == want && def.ClassMethod == decl.ClassMethod {
			return def
		}
	}
	return nil
}

// visitMethodDeclaration renders a declaration found in an interface,
// category or protocol. When a matching definition exists it renders in
// the declaration's place, exactly once per pass; otherwise the
// fallback depends on the owner: protocols carry bare signatures,
// classes get an empty stub body because the target language requires
// every function to have one.
func (g *Generator) visitMethodDeclaration(decl *ast.MethodDeclaration) string {
	if def := g.resolveDefinition(decl); def != nil {
		if g.rendered[def] {
			return ""
		}
		return g.renderMethodDefinition(def)
	}

	head := g.methodHead(decl.ClassMethod, decl.Selector, decl.ReturnType)
	if _, inProtocol := g.owners[decl].(*ast.ProtocolDeclaration); inProtocol {
		return head
	}
	return head + " {\n}"
}

// visitMethodDefinition renders a definition reached directly during
// the tree walk. A definition already emitted at its declaration site
// renders nothing.
func (g *Generator) visitMethodDefinition(def *ast.MethodDefinition) string {
	if g.rendered[def] {
		return ""
	}
	return g.renderMethodDefinition(def)
}

func (g *Generator) renderMethodDefinition(def *ast.MethodDefinition) string {
	g.rendered[def] = true
	head := g.methodHead(def.ClassMethod, def.Selector, def.ReturnType)
	return head + " {\n" + g.indent(g.visitCompoundStatement(def.Body)) + "}"
}
