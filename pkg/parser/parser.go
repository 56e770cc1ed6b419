// Package parser converts token streams into the typed parse tree.
//
// It is a hand-written recursive-descent parser over the Objective-C
// subset the converter translates: class/category interfaces and
// implementations, protocols, C-style declarations, method declarations
// and definitions, and a statement/expression subset rich enough for
// method bodies.
package parser

import (
	"fmt"

	"github.com/swiftpen/objc2swift/pkg/ast"
	"github.com/swiftpen/objc2swift/pkg/lexer"
)

// typeKeywords are the reserved words that open or extend a builtin type.
var typeKeywords = map[string]bool{
	"void": true, "char": true, "short": true, "int": true,
	"long": true, "float": true, "double": true,
	"signed": true, "unsigned": true,
}

// qualifierKeywords are storage-class and type-qualifier tokens. They
// become Specifier nodes; the generator decides which survive.
var qualifierKeywords = map[string]bool{
	"const": true, "static": true, "extern": true,
	"volatile": true, "register": true, "auto": true,
	"typedef": true,
}

// Parser converts a token stream into a translation unit.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// Parse tokenizes nothing itself; it consumes an already-lexed token
// slice and returns the parse tree.
func Parse(tokens []lexer.Token) (*ast.TranslationUnit, error) {
	p := &Parser{tokens: tokens, pos: 0}
	return p.parseTranslationUnit()
}

// ParseSource lexes and parses source text in one step.
func ParseSource(source string) (*ast.TranslationUnit, error) {
	tokens, err := lexer.New(source).Tokenize()
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

func (p *Parser) parseTranslationUnit() (*ast.TranslationUnit, error) {
	unit := &ast.TranslationUnit{}
	for !p.atEnd() {
		tok := p.peek()
		switch {
		case tok.Type == lexer.AT_KEYWORD && tok.Value == "@interface":
			decl, err := p.parseInterface()
			if err != nil {
				return nil, err
			}
			unit.Decls = append(unit.Decls, decl)
		case tok.Type == lexer.AT_KEYWORD && tok.Value == "@implementation":
			decl, err := p.parseImplementation()
			if err != nil {
				return nil, err
			}
			unit.Decls = append(unit.Decls, decl)
		case tok.Type == lexer.AT_KEYWORD && tok.Value == "@protocol":
			decl, err := p.parseProtocol()
			if err != nil {
				return nil, err
			}
			if decl != nil {
				unit.Decls = append(unit.Decls, decl)
			}
		case tok.Type == lexer.AT_KEYWORD && tok.Value == "@class":
			// Forward declaration, nothing to translate.
			p.skipToSemi()
		default:
			decl, err := p.parseDeclaration()
			if err != nil {
				return nil, err
			}
			unit.Decls = append(unit.Decls, decl)
		}
	}
	return unit, nil
}

// === Declarations ===

// parseDeclaration parses a C-style declaration statement up to and
// including the terminating semicolon.
//
// Consecutive type-name identifiers are collected as type specifiers,
// matching the grammar the converter was written against: in
// "NSString s;" both identifiers land in the specifier list and the
// generator resolves the trailing one as the declared name. An
// identifier followed by = or , is the first init declarator instead.
func (p *Parser) parseDeclaration() (*ast.Declaration, error) {
	decl := &ast.Declaration{}

	for !p.atEnd() && p.peek().Type == lexer.KEYWORD && qualifierKeywords[p.peek().Value] {
		decl.Specifiers = append(decl.Specifiers, &ast.Specifier{Name: p.advance().Value})
	}

	// Type specifiers.
	if p.peek().Is(lexer.KEYWORD, "enum") {
		enum, err := p.parseEnumSpecifier()
		if err != nil {
			return nil, err
		}
		decl.TypeSpecs = append(decl.TypeSpecs, &ast.TypeSpecifier{Enum: enum})
	} else {
		for !p.atEnd() {
			tok := p.peek()
			if tok.Type == lexer.KEYWORD && typeKeywords[tok.Value] {
				decl.TypeSpecs = append(decl.TypeSpecs, &ast.TypeSpecifier{Name: p.advance().Value})
				continue
			}
			if tok.Type == lexer.IDENTIFIER {
				// An identifier followed by = or , is the start of the
				// init declarator list, not another type specifier.
				next := p.peekAhead(1)
				if next.Type == lexer.ASSIGN || next.Type == lexer.COMMA {
					break
				}
				decl.TypeSpecs = append(decl.TypeSpecs, &ast.TypeSpecifier{Name: p.advance().Value})
				continue
			}
			break
		}
	}

	// Init declarator list.
	if !p.peekIs(lexer.SEMI) && !p.atEnd() {
		for {
			initDecl, err := p.parseInitDeclarator()
			if err != nil {
				return nil, err
			}
			decl.InitDecls = append(decl.InitDecls, initDecl)
			if !p.peekIs(lexer.COMMA) {
				break
			}
			p.advance() // skip ,
		}
	}

	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return decl, nil
}

func (p *Parser) parseInitDeclarator() (*ast.InitDeclarator, error) {
	d, err := p.parseDeclarator()
	if err != nil {
		return nil, err
	}
	initDecl := &ast.InitDeclarator{Decl: d}
	if p.peekIs(lexer.ASSIGN) {
		p.advance()
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		initDecl.Init = value
	}
	return initDecl, nil
}

func (p *Parser) parseDeclarator() (*ast.Declarator, error) {
	d := &ast.Declarator{}
	for p.peekIs(lexer.STAR) {
		p.advance()
		d.Pointer = true
	}
	direct, err := p.parseDirectDeclarator()
	if err != nil {
		return nil, err
	}
	d.Direct = direct
	return d, nil
}

func (p *Parser) parseDirectDeclarator() (*ast.DirectDeclarator, error) {
	dd := &ast.DirectDeclarator{}
	switch {
	case p.peekIs(lexer.IDENTIFIER):
		dd.Name = p.advance().Value
	case p.peekIs(lexer.LPAREN):
		p.advance()
		inner, err := p.parseDeclarator()
		if err != nil {
			return nil, err
		}
		dd.Inner = inner
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
	default:
		return nil, p.errorf("expected declarator, got %s", p.peek().Type)
	}

	// Array suffixes parse but do not translate.
	for p.peekIs(lexer.LBRACKET) {
		p.advance()
		if !p.peekIs(lexer.RBRACKET) {
			if _, err := p.parseExpr(); err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(lexer.RBRACKET); err != nil {
			return nil, err
		}
		dd.IsArray = true
	}
	return dd, nil
}

func (p *Parser) parseEnumSpecifier() (*ast.EnumSpecifier, error) {
	p.advance() // skip enum
	enum := &ast.EnumSpecifier{}
	if p.peekIs(lexer.IDENTIFIER) {
		enum.Name = p.advance().Value
	}
	if !p.peekIs(lexer.LBRACE) {
		return enum, nil // bare reference: enum Direction d
	}
	p.advance() // skip {
	for !p.peekIs(lexer.RBRACE) && !p.atEnd() {
		name, err := p.expect(lexer.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		e := &ast.Enumerator{Name: name.Value}
		if p.peekIs(lexer.ASSIGN) {
			p.advance()
			value, err := p.parseTernary()
			if err != nil {
				return nil, err
			}
			e.Value = value
		}
		enum.Enumerators = append(enum.Enumerators, e)
		if p.peekIs(lexer.COMMA) {
			p.advance()
		}
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return enum, nil
}

// === Statements ===

func (p *Parser) parseCompoundStatement() (*ast.CompoundStatement, error) {
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	block := &ast.CompoundStatement{}
	for !p.peekIs(lexer.RBRACE) && !p.atEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Items = append(block.Items, stmt)
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return block, nil
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	tok := p.peek()

	if tok.Type == lexer.LBRACE {
		return p.parseCompoundStatement()
	}

	if tok.Type == lexer.KEYWORD {
		switch tok.Value {
		case "return":
			p.advance()
			stmt := &ast.ReturnStmt{}
			if !p.peekIs(lexer.SEMI) {
				value, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				stmt.X = value
			}
			if _, err := p.expect(lexer.SEMI); err != nil {
				return nil, err
			}
			return stmt, nil
		case "if":
			return p.parseIfStatement()
		case "while":
			return p.parseWhileStatement()
		case "for":
			return p.parseForStatement()
		case "break":
			p.advance()
			if _, err := p.expect(lexer.SEMI); err != nil {
				return nil, err
			}
			return &ast.BreakStmt{}, nil
		case "continue":
			p.advance()
			if _, err := p.expect(lexer.SEMI); err != nil {
				return nil, err
			}
			return &ast.ContinueStmt{}, nil
		}
	}

	if p.atDeclaration() {
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		return &ast.DeclarationStmt{Decl: decl}, nil
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{X: expr}, nil
}

// atDeclaration reports whether the upcoming tokens look like the start
// of a local declaration rather than an expression.
func (p *Parser) atDeclaration() bool {
	tok := p.peek()
	if tok.Type == lexer.KEYWORD {
		return typeKeywords[tok.Value] || qualifierKeywords[tok.Value] || tok.Value == "enum"
	}
	if tok.Type != lexer.IDENTIFIER {
		return false
	}
	next := p.peekAhead(1)
	if next.Type == lexer.IDENTIFIER {
		return true
	}
	// Type *name
	if next.Type == lexer.STAR && p.peekAhead(2).Type == lexer.IDENTIFIER {
		return true
	}
	return false
}

func (p *Parser) parseIfStatement() (ast.Stmt, error) {
	p.advance() // skip if
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStmt{Cond: cond, Then: then}
	if p.peek().Is(lexer.KEYWORD, "else") {
		p.advance()
		alt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmt.Else = alt
	}
	return stmt, nil
}

func (p *Parser) parseWhileStatement() (ast.Stmt, error) {
	p.advance() // skip while
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Cond: cond, Body: body}, nil
}

func (p *Parser) parseForStatement() (ast.Stmt, error) {
	p.advance() // skip for
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}

	// Fast enumeration: for (Type x in collection)
	if p.isForIn() {
		varDecl := &ast.Declaration{}
		for p.peekIs(lexer.IDENTIFIER) || (p.peekIs(lexer.KEYWORD) && typeKeywords[p.peek().Value]) {
			if p.peekAhead(1).Is(lexer.KEYWORD, "in") {
				name := p.advance().Value
				varDecl.InitDecls = append(varDecl.InitDecls, &ast.InitDeclarator{
					Decl: &ast.Declarator{Direct: &ast.DirectDeclarator{Name: name}},
				})
				break
			}
			varDecl.TypeSpecs = append(varDecl.TypeSpecs, &ast.TypeSpecifier{Name: p.advance().Value})
			if p.peekIs(lexer.STAR) {
				p.advance()
			}
		}
		p.advance() // skip in
		coll, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		body, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		return &ast.ForInStmt{Var: varDecl, Collection: coll, Body: body}, nil
	}

	stmt := &ast.ForStmt{}
	if !p.peekIs(lexer.SEMI) {
		if p.atDeclaration() {
			decl, err := p.parseDeclaration()
			if err != nil {
				return nil, err
			}
			stmt.Init = &ast.DeclarationStmt{Decl: decl}
		} else {
			expr, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.SEMI); err != nil {
				return nil, err
			}
			stmt.Init = &ast.ExprStmt{X: expr}
		}
	} else {
		p.advance() // skip ;
	}
	if !p.peekIs(lexer.SEMI) {
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Cond = cond
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	if !p.peekIs(lexer.RPAREN) {
		post, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Post = post
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt.Body = body
	return stmt, nil
}

// isForIn looks ahead for the "in" keyword before the closing paren of a
// for header, without consuming anything.
func (p *Parser) isForIn() bool {
	depth := 1
	for i := 0; ; i++ {
		tok := p.peekAhead(i)
		switch tok.Type {
		case lexer.EOF, lexer.SEMI:
			return false
		case lexer.LPAREN:
			depth++
		case lexer.RPAREN:
			depth--
			if depth == 0 {
				return false
			}
		case lexer.KEYWORD:
			if tok.Value == "in" && depth == 1 {
				return true
			}
		}
	}
}

// === Helpers ===

func (p *Parser) peek() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Type: lexer.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekAhead(n int) lexer.Token {
	pos := p.pos + n
	if pos >= len(p.tokens) {
		return lexer.Token{Type: lexer.EOF}
	}
	return p.tokens[pos]
}

func (p *Parser) peekIs(typ lexer.TokenType) bool {
	return p.peek().Type == typ
}

func (p *Parser) advance() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Type: lexer.EOF}
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

func (p *Parser) expect(typ lexer.TokenType) (lexer.Token, error) {
	tok := p.peek()
	if tok.Type != typ {
		return tok, p.errorf("expected %s, got %s (%q)", typ, tok.Type, tok.Value)
	}
	return p.advance(), nil
}

func (p *Parser) skipToSemi() {
	for !p.atEnd() && !p.peekIs(lexer.SEMI) {
		p.advance()
	}
	if p.peekIs(lexer.SEMI) {
		p.advance()
	}
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	tok := p.peek()
	prefix := fmt.Sprintf("line %d:%d: ", tok.Line, tok.Column)
	return fmt.Errorf(prefix+format, args...)
}
