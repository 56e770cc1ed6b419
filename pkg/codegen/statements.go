package codegen

import (
	"strings"

	"github.com/swiftpen/objc2swift/pkg/ast"
)

// Statement translation. Every statement render ends with a newline;
// compound bodies are the concatenation of their items.

func (g *Generator) visitCompoundStatement(block *ast.CompoundStatement) string {
	if block == nil {
		return ""
	}
	var sb strings.Builder
	for _, item := range block.Items {
		sb.WriteString(g.visitStatement(item))
	}
	return sb.String()
}

func (g *Generator) visitStatement(stmt ast.Stmt) string {
	switch s := stmt.(type) {
	case *ast.CompoundStatement:
		return g.visitCompoundStatement(s)

	case *ast.DeclarationStmt:
		return g.visitDeclaration(s.Decl)

	case *ast.ExprStmt:
		if text := g.visitExpr(s.X); text != "" {
			return text + "\n"
		}
		return ""

	case *ast.ReturnStmt:
		if s.X == nil {
			return "return\n"
		}
		return "return " + g.visitExpr(s.X) + "\n"

	case *ast.IfStmt:
		out := "if " + g.visitExpr(s.Cond) + " {\n" + g.indent(g.blockBody(s.Then)) + "}"
		if s.Else != nil {
			if elseIf, ok := s.Else.(*ast.IfStmt); ok {
				out += " else " + strings.TrimSuffix(g.visitStatement(elseIf), "\n")
			} else {
				out += " else {\n" + g.indent(g.blockBody(s.Else)) + "}"
			}
		}
		return out + "\n"

	case *ast.WhileStmt:
		return "while " + g.visitExpr(s.Cond) + " {\n" + g.indent(g.blockBody(s.Body)) + "}\n"

	case *ast.ForStmt:
		// Swift has no three-clause for; desugar to a while loop.
		var sb strings.Builder
		if s.Init != nil {
			sb.WriteString(g.visitStatement(s.Init))
		}
		cond := "true"
		if s.Cond != nil {
			cond = g.visitExpr(s.Cond)
		}
		body := g.blockBody(s.Body)
		if s.Post != nil {
			body += g.visitExpr(s.Post) + "\n"
		}
		sb.WriteString("while " + cond + " {\n" + g.indent(body) + "}\n")
		return sb.String()

	case *ast.ForInStmt:
		name := forInVarName(s.Var)
		if name == "" {
			return ""
		}
		return "for " + name + " in " + g.visitExpr(s.Collection) + " {\n" +
			g.indent(g.blockBody(s.Body)) + "}\n"

	case *ast.BreakStmt:
		return "break\n"

	case *ast.ContinueStmt:
		return "continue\n"
	}
	return ""
}

// blockBody renders a statement that is the body of a control
// construct: compound bodies flatten, single statements render as one
// line.
func (g *Generator) blockBody(stmt ast.Stmt) string {
	if stmt == nil {
		return ""
	}
	if block, ok := stmt.(*ast.CompoundStatement); ok {
		return g.visitCompoundStatement(block)
	}
	return g.visitStatement(stmt)
}

func forInVarName(decl *ast.Declaration) string {
	if decl == nil || len(decl.InitDecls) == 0 {
		return ""
	}
	d := decl.InitDecls[0].Decl
	if d == nil || d.Direct == nil {
		return ""
	}
	return d.Direct.Name
}
