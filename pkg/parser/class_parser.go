package parser

import (
	"github.com/swiftpen/objc2swift/pkg/ast"
	"github.com/swiftpen/objc2swift/pkg/lexer"
)

// Class, category, protocol and method parsing.

// parseInterface parses @interface ... @end, producing either a
// ClassInterface or a CategoryInterface depending on the header shape.
func (p *Parser) parseInterface() (ast.Node, error) {
	p.advance() // skip @interface
	name, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}

	// Category: @interface Name (Category)
	if p.peekIs(lexer.LPAREN) {
		p.advance()
		category, err := p.expect(lexer.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		cat := &ast.CategoryInterface{ClassName: name.Value, CategoryName: category.Value}
		if p.peekIs(lexer.LT) {
			protos, err := p.parseProtocolRefs()
			if err != nil {
				return nil, err
			}
			cat.Protocols = protos
		}
		props, methods, err := p.parseInterfaceBody()
		if err != nil {
			return nil, err
		}
		cat.Properties = props
		cat.Methods = methods
		return cat, nil
	}

	cls := &ast.ClassInterface{Name: name.Value}
	if p.peekIs(lexer.COLON) {
		p.advance()
		super, err := p.expect(lexer.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		cls.SuperClass = super.Value
	}
	if p.peekIs(lexer.LT) {
		protos, err := p.parseProtocolRefs()
		if err != nil {
			return nil, err
		}
		cls.Protocols = protos
	}

	// Instance variable block.
	if p.peekIs(lexer.LBRACE) {
		p.advance()
		for !p.peekIs(lexer.RBRACE) && !p.atEnd() {
			if p.peekIs(lexer.AT_KEYWORD) {
				// Visibility directives carry no target meaning.
				p.advance()
				continue
			}
			ivar, err := p.parseDeclaration()
			if err != nil {
				return nil, err
			}
			cls.IVars = append(cls.IVars, ivar)
		}
		if _, err := p.expect(lexer.RBRACE); err != nil {
			return nil, err
		}
	}

	props, methods, err := p.parseInterfaceBody()
	if err != nil {
		return nil, err
	}
	cls.Properties = props
	cls.Methods = methods
	return cls, nil
}

// parseInterfaceBody parses properties and method declarations until
// @end, which it consumes.
func (p *Parser) parseInterfaceBody() ([]*ast.PropertyDeclaration, []*ast.MethodDeclaration, error) {
	var props []*ast.PropertyDeclaration
	var methods []*ast.MethodDeclaration
	for !p.atEnd() {
		tok := p.peek()
		switch {
		case tok.Is(lexer.AT_KEYWORD, "@end"):
			p.advance()
			return props, methods, nil
		case tok.Is(lexer.AT_KEYWORD, "@property"):
			prop, err := p.parseProperty()
			if err != nil {
				return nil, nil, err
			}
			props = append(props, prop)
		case tok.Is(lexer.AT_KEYWORD, "@optional") || tok.Is(lexer.AT_KEYWORD, "@required"):
			p.advance()
		case tok.Type == lexer.MINUS || tok.Type == lexer.PLUS:
			m, err := p.parseMethodDeclaration()
			if err != nil {
				return nil, nil, err
			}
			methods = append(methods, m)
		default:
			// Stray declarations inside an interface body translate
			// nowhere; skip the statement.
			p.skipToSemi()
		}
	}
	return nil, nil, p.errorf("missing @end")
}

// parseImplementation parses @implementation ... @end.
func (p *Parser) parseImplementation() (ast.Node, error) {
	p.advance() // skip @implementation
	name, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}

	var categoryName string
	if p.peekIs(lexer.LPAREN) {
		p.advance()
		category, err := p.expect(lexer.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		categoryName = category.Value
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
	}

	var defs []*ast.MethodDefinition
	for !p.atEnd() {
		tok := p.peek()
		switch {
		case tok.Is(lexer.AT_KEYWORD, "@end"):
			p.advance()
			if categoryName != "" {
				return &ast.CategoryImplementation{
					ClassName:    name.Value,
					CategoryName: categoryName,
					Definitions:  defs,
				}, nil
			}
			return &ast.ClassImplementation{Name: name.Value, Definitions: defs}, nil
		case tok.Is(lexer.AT_KEYWORD, "@synthesize") || tok.Is(lexer.AT_KEYWORD, "@dynamic"):
			p.skipToSemi()
		case tok.Type == lexer.MINUS || tok.Type == lexer.PLUS:
			def, err := p.parseMethodDefinition()
			if err != nil {
				return nil, err
			}
			defs = append(defs, def)
		default:
			p.skipToSemi()
		}
	}
	return nil, p.errorf("missing @end")
}

// parseProtocol parses @protocol ... @end, or a forward declaration
// @protocol Name; which yields nil.
func (p *Parser) parseProtocol() (ast.Node, error) {
	p.advance() // skip @protocol
	name, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if p.peekIs(lexer.SEMI) {
		p.advance()
		return nil, nil
	}

	proto := &ast.ProtocolDeclaration{Name: name.Value}
	if p.peekIs(lexer.LT) {
		protos, err := p.parseProtocolRefs()
		if err != nil {
			return nil, err
		}
		proto.Protocols = protos
	}
	_, methods, err := p.parseInterfaceBody()
	if err != nil {
		return nil, err
	}
	proto.Methods = methods
	return proto, nil
}

// parseProtocolRefs parses <A, B, C>.
func (p *Parser) parseProtocolRefs() ([]string, error) {
	p.advance() // skip <
	var refs []string
	for !p.peekIs(lexer.GT) && !p.atEnd() {
		name, err := p.expect(lexer.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		refs = append(refs, name.Value)
		if p.peekIs(lexer.COMMA) {
			p.advance()
		}
	}
	if _, err := p.expect(lexer.GT); err != nil {
		return nil, err
	}
	return refs, nil
}

// parseProperty parses @property (attrs) Type *name;.
func (p *Parser) parseProperty() (*ast.PropertyDeclaration, error) {
	p.advance() // skip @property
	prop := &ast.PropertyDeclaration{}

	if p.peekIs(lexer.LPAREN) {
		p.advance()
		for !p.peekIs(lexer.RPAREN) && !p.atEnd() {
			if p.peekIs(lexer.IDENTIFIER) || p.peekIs(lexer.KEYWORD) {
				prop.Attributes = append(prop.Attributes, p.advance().Value)
			} else {
				p.advance()
			}
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
	}

	for !p.atEnd() {
		tok := p.peek()
		if tok.Type == lexer.KEYWORD && typeKeywords[tok.Value] {
			prop.TypeSpecs = append(prop.TypeSpecs, &ast.TypeSpecifier{Name: p.advance().Value})
			continue
		}
		if tok.Type == lexer.IDENTIFIER {
			next := p.peekAhead(1)
			if next.Type == lexer.SEMI {
				prop.Name = p.advance().Value
				break
			}
			prop.TypeSpecs = append(prop.TypeSpecs, &ast.TypeSpecifier{Name: p.advance().Value})
			continue
		}
		if tok.Type == lexer.STAR {
			p.advance()
			prop.Pointer = true
			continue
		}
		break
	}

	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return prop, nil
}

// parseMethodHeader parses the shared prefix of method declarations and
// definitions: (-|+) (returnType)? selector.
func (p *Parser) parseMethodHeader() (bool, *ast.MethodType, *ast.MethodSelector, error) {
	classMethod := p.advance().Type == lexer.PLUS

	var returnType *ast.MethodType
	if p.peekIs(lexer.LPAREN) {
		mt, err := p.parseMethodType()
		if err != nil {
			return false, nil, nil, err
		}
		returnType = mt
	}

	selector, err := p.parseMethodSelector()
	if err != nil {
		return false, nil, nil, err
	}
	return classMethod, returnType, selector, nil
}

func (p *Parser) parseMethodDeclaration() (*ast.MethodDeclaration, error) {
	classMethod, returnType, selector, err := p.parseMethodHeader()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return &ast.MethodDeclaration{
		ClassMethod: classMethod,
		ReturnType:  returnType,
		Selector:    selector,
	}, nil
}

func (p *Parser) parseMethodDefinition() (*ast.MethodDefinition, error) {
	classMethod, returnType, selector, err := p.parseMethodHeader()
	if err != nil {
		return nil, err
	}
	// A stray semicolon between header and body is legal.
	if p.peekIs(lexer.SEMI) {
		p.advance()
	}
	body, err := p.parseCompoundStatement()
	if err != nil {
		return nil, err
	}
	return &ast.MethodDefinition{
		ClassMethod: classMethod,
		ReturnType:  returnType,
		Selector:    selector,
		Body:        body,
	}, nil
}

// parseMethodType parses a parenthesized type annotation: (void),
// (NSString *), (id). Protocol qualifiers like id<Foo> parse and drop.
func (p *Parser) parseMethodType() (*ast.MethodType, error) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	mt := &ast.MethodType{}
	for !p.peekIs(lexer.RPAREN) && !p.atEnd() {
		tok := p.peek()
		switch {
		case tok.Type == lexer.KEYWORD && typeKeywords[tok.Value]:
			mt.Specs = append(mt.Specs, &ast.TypeSpecifier{Name: p.advance().Value})
		case tok.Type == lexer.IDENTIFIER:
			mt.Specs = append(mt.Specs, &ast.TypeSpecifier{Name: p.advance().Value})
		case tok.Type == lexer.STAR:
			p.advance()
			mt.Pointer = true
		case tok.Type == lexer.LT:
			if _, err := p.parseProtocolRefs(); err != nil {
				return nil, err
			}
		default:
			return nil, p.errorf("unexpected token in method type: %s", tok.Type)
		}
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return mt, nil
}

// parseMethodSelector parses a bare selector or a keyword declarator
// sequence.
func (p *Parser) parseMethodSelector() (*ast.MethodSelector, error) {
	name, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if !p.peekIs(lexer.COLON) {
		return &ast.MethodSelector{Name: name.Value}, nil
	}

	sel := &ast.MethodSelector{}
	label := name.Value
	for {
		if _, err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		kd := &ast.KeywordDeclarator{Selector: label}
		for p.peekIs(lexer.LPAREN) {
			mt, err := p.parseMethodType()
			if err != nil {
				return nil, err
			}
			kd.Types = append(kd.Types, mt)
		}
		if len(kd.Types) == 0 {
			// A parameter without a type annotation defaults to id.
			kd.Types = []*ast.MethodType{{Specs: []*ast.TypeSpecifier{{Name: "id"}}}}
		}
		param, err := p.expect(lexer.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		kd.Param = param.Value
		sel.Keywords = append(sel.Keywords, kd)

		// Another keyword part: label: or bare :
		if p.peekIs(lexer.IDENTIFIER) && p.peekAhead(1).Type == lexer.COLON {
			label = p.advance().Value
			continue
		}
		if p.peekIs(lexer.COLON) {
			label = ""
			continue
		}
		break
	}
	return sel, nil
}
