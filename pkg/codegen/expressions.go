package codegen

import (
	"strings"

	"github.com/swiftpen/objc2swift/pkg/ast"
)

// Expression translation. Renders are single-line; message sends become
// dot-syntax calls with the head argument label elided, matching the
// method signature convention.

// identMap rewrites the literal-like identifiers that have direct Swift
// spellings.
var identMap = map[string]string{
	"YES":  "true",
	"NO":   "false",
	"NULL": "nil",
}

func (g *Generator) visitExpr(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		if mapped, ok := identMap[e.Name]; ok {
			return mapped
		}
		return e.Name

	case *ast.NumberLit:
		return e.Value

	case *ast.StringLit:
		return `"` + e.Value + `"`

	case *ast.CharLit:
		return `"` + e.Value + `"`

	case *ast.SelectorLit:
		return `"` + e.Name + `"`

	case *ast.MessageExpr:
		return g.visitMessageExpr(e)

	case *ast.BinaryExpr:
		return g.visitExpr(e.Left) + " " + e.Op + " " + g.visitExpr(e.Right)

	case *ast.UnaryExpr:
		// Swift dropped ++ and --; rewrite to compound assignment.
		switch e.Op {
		case "++":
			return g.visitExpr(e.X) + " += 1"
		case "--":
			return g.visitExpr(e.X) + " -= 1"
		}
		if e.Postfix {
			return g.visitExpr(e.X) + e.Op
		}
		return e.Op + g.visitExpr(e.X)

	case *ast.AssignExpr:
		return g.visitExpr(e.Target) + " " + e.Op + " " + g.visitExpr(e.Value)

	case *ast.CallExpr:
		args := make([]string, 0, len(e.Args))
		for _, a := range e.Args {
			args = append(args, g.visitExpr(a))
		}
		return g.visitExpr(e.Fun) + "(" + strings.Join(args, ", ") + ")"

	case *ast.ParenExpr:
		return "(" + g.visitExpr(e.X) + ")"

	case *ast.MemberExpr:
		// Arrow access flattens to dot syntax.
		return g.visitExpr(e.X) + "." + e.Name

	case *ast.IndexExpr:
		return g.visitExpr(e.X) + "[" + g.visitExpr(e.Index) + "]"

	case *ast.TernaryExpr:
		return g.visitExpr(e.Cond) + " ? " + g.visitExpr(e.Then) + " : " + g.visitExpr(e.Else)
	}
	return ""
}

// visitMessageExpr renders a message send. Alloc-init chains collapse
// to Swift initializer calls; everything else becomes a dot-syntax
// method call.
func (g *Generator) visitMessageExpr(e *ast.MessageExpr) string {
	// [[Class alloc] init] and [[Class alloc] initWith...:...]
	if class, ok := allocReceiver(e.Receiver); ok {
		if e.Selector == "init" {
			return class + "()"
		}
		if len(e.Args) > 0 && strings.HasPrefix(e.Args[0].Selector, "initWith") {
			return class + "(" + g.messageArgs(e.Args) + ")"
		}
	}

	recv := g.visitExpr(e.Receiver)

	if e.Selector != "" {
		return recv + "." + e.Selector + "()"
	}
	if len(e.Args) == 0 {
		return recv
	}
	name := e.Args[0].Selector
	if name == "" {
		name = "call"
	}
	return recv + "." + name + "(" + g.messageArgs(e.Args) + ")"
}

// messageArgs renders keyword arguments: the head label is elided, tail
// labels keep their selector text.
func (g *Generator) messageArgs(args []*ast.MessageArg) string {
	parts := make([]string, 0, len(args))
	for i, arg := range args {
		value := g.visitExpr(arg.Value)
		if i == 0 || arg.Selector == "" {
			parts = append(parts, value)
			continue
		}
		parts = append(parts, arg.Selector+": "+value)
	}
	return strings.Join(parts, ", ")
}

// allocReceiver recognizes the [Class alloc] receiver shape.
func allocReceiver(recv ast.Expr) (string, bool) {
	msg, ok := recv.(*ast.MessageExpr)
	if !ok || msg.Selector != "alloc" {
		return "", false
	}
	class, ok := msg.Receiver.(*ast.Ident)
	if !ok {
		return "", false
	}
	return class.Name, true
}
