package parser

import (
	"github.com/swiftpen/objc2swift/pkg/ast"
	"github.com/swiftpen/objc2swift/pkg/lexer"
)

// Expression parsing, precedence climbing. Assignment is lowest, then
// ternary, logical, equality, relational, additive, multiplicative,
// unary, postfix, primary.

func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() (ast.Expr, error) {
	left, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	switch p.peek().Type {
	case lexer.ASSIGN, lexer.PLUS_ASSIGN, lexer.MINUS_ASSIGN:
		op := p.advance().Value
		value, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		return &ast.AssignExpr{Target: left, Op: op, Value: value}, nil
	}
	return left, nil
}

func (p *Parser) parseTernary() (ast.Expr, error) {
	cond, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}
	if !p.peekIs(lexer.QUESTION) {
		return cond, nil
	}
	p.advance() // skip ?
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	alt, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	return &ast.TernaryExpr{Cond: cond, Then: then, Else: alt}, nil
}

func (p *Parser) parseLogicalOr() (ast.Expr, error) {
	return p.parseBinary(p.parseLogicalAnd, lexer.OR)
}

func (p *Parser) parseLogicalAnd() (ast.Expr, error) {
	return p.parseBinary(p.parseEquality, lexer.AND)
}

func (p *Parser) parseEquality() (ast.Expr, error) {
	return p.parseBinary(p.parseRelational, lexer.EQ, lexer.NE)
}

func (p *Parser) parseRelational() (ast.Expr, error) {
	return p.parseBinary(p.parseAdditive, lexer.LT, lexer.GT, lexer.LE, lexer.GE)
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	return p.parseBinary(p.parseMultiplicative, lexer.PLUS, lexer.MINUS)
}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	return p.parseBinary(p.parseUnary, lexer.STAR, lexer.SLASH, lexer.PERCENT)
}

func (p *Parser) parseBinary(next func() (ast.Expr, error), ops ...lexer.TokenType) (ast.Expr, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for {
		matched := false
		for _, op := range ops {
			if p.peekIs(op) {
				matched = true
				break
			}
		}
		if !matched {
			break
		}
		op := p.advance().Value
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	switch p.peek().Type {
	case lexer.BANG, lexer.MINUS, lexer.TILDE, lexer.AMP, lexer.STAR:
		op := p.advance().Value
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: op, X: x}, nil
	case lexer.INCREMENT, lexer.DECREMENT:
		op := p.advance().Value
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: op, X: x}, nil
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() (ast.Expr, error) {
	x, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().Type {
		case lexer.LPAREN:
			p.advance()
			call := &ast.CallExpr{Fun: x}
			for !p.peekIs(lexer.RPAREN) && !p.atEnd() {
				arg, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				call.Args = append(call.Args, arg)
				if p.peekIs(lexer.COMMA) {
					p.advance()
				}
			}
			if _, err := p.expect(lexer.RPAREN); err != nil {
				return nil, err
			}
			x = call
		case lexer.LBRACKET:
			p.advance()
			index, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RBRACKET); err != nil {
				return nil, err
			}
			x = &ast.IndexExpr{X: x, Index: index}
		case lexer.DOT, lexer.ARROW:
			arrow := p.advance().Type == lexer.ARROW
			name, err := p.expect(lexer.IDENTIFIER)
			if err != nil {
				return nil, err
			}
			x = &ast.MemberExpr{X: x, Name: name.Value, Arrow: arrow}
		case lexer.INCREMENT, lexer.DECREMENT:
			op := p.advance().Value
			x = &ast.UnaryExpr{Op: op, X: x, Postfix: true}
		default:
			return x, nil
		}
	}
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.peek()
	switch tok.Type {
	case lexer.NUMBER:
		p.advance()
		return &ast.NumberLit{Value: tok.Value}, nil

	case lexer.STRING:
		p.advance()
		return &ast.StringLit{Value: tok.Value}, nil

	case lexer.OBJC_STRING:
		p.advance()
		return &ast.StringLit{Value: tok.Value, ObjC: true}, nil

	case lexer.CHAR:
		p.advance()
		return &ast.CharLit{Value: tok.Value}, nil

	case lexer.IDENTIFIER:
		p.advance()
		return &ast.Ident{Name: tok.Value}, nil

	case lexer.LPAREN:
		p.advance()
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return &ast.ParenExpr{X: x}, nil

	case lexer.LBRACKET:
		return p.parseMessageExpr()

	case lexer.AT_KEYWORD:
		if tok.Value == "@selector" {
			p.advance()
			if _, err := p.expect(lexer.LPAREN); err != nil {
				return nil, err
			}
			name, err := p.parseSelectorName()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RPAREN); err != nil {
				return nil, err
			}
			return &ast.SelectorLit{Name: name}, nil
		}
	}
	return nil, p.errorf("unexpected token in expression: %s (%q)", tok.Type, tok.Value)
}

// parseSelectorName reads the identifier-and-colon form inside
// @selector(...), e.g. setValue:forKey:.
func (p *Parser) parseSelectorName() (string, error) {
	name, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return "", err
	}
	text := name.Value
	for p.peekIs(lexer.COLON) {
		p.advance()
		text += ":"
		if p.peekIs(lexer.IDENTIFIER) {
			text += p.advance().Value
		}
	}
	return text, nil
}

// parseMessageExpr parses [receiver selector] or
// [receiver sel: arg with: arg2].
func (p *Parser) parseMessageExpr() (ast.Expr, error) {
	p.advance() // skip [
	receiver, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	msg := &ast.MessageExpr{Receiver: receiver}

	if p.peekIs(lexer.IDENTIFIER) && p.peekAhead(1).Type != lexer.COLON {
		msg.Selector = p.advance().Value
	} else {
		for p.peekIs(lexer.IDENTIFIER) || p.peekIs(lexer.COLON) {
			arg := &ast.MessageArg{}
			if p.peekIs(lexer.IDENTIFIER) {
				arg.Selector = p.advance().Value
			}
			if _, err := p.expect(lexer.COLON); err != nil {
				return nil, err
			}
			value, err := p.parseTernary()
			if err != nil {
				return nil, err
			}
			arg.Value = value
			msg.Args = append(msg.Args, arg)
		}
	}

	if _, err := p.expect(lexer.RBRACKET); err != nil {
		return nil, err
	}
	return msg, nil
}
