// Package lexer provides tokenization for the Objective-C subset the
// converter understands. It performs character-by-character processing
// to produce tokens for the parser.
//
// Whitespace and comments are consumed and never appear in the output;
// line and column positions are tracked per token for error reporting.
package lexer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Lexer tokenizes Objective-C source code.
type Lexer struct {
	input  string // The source code being tokenized
	pos    int    // Current position in input
	line   int    // Current line number (1-indexed)
	col    int    // Current column number (0-indexed)
	tokens []Token
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{
		input:  input,
		pos:    0,
		line:   1,
		col:    0,
		tokens: make([]Token, 0),
	}
}

// NewFromReader creates a new Lexer from an io.Reader.
func NewFromReader(r io.Reader) (*Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return New(string(data)), nil
}

// Tokenize processes the entire input and returns all tokens.
func (l *Lexer) Tokenize() ([]Token, error) {
	for !l.isAtEnd() {
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}
	return l.tokens, nil
}

// TokenizeJSON processes the input and returns tokens as a JSON array.
func (l *Lexer) TokenizeJSON() (string, error) {
	tokens, err := l.Tokenize()
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(tokens)
	if err != nil {
		return "", fmt.Errorf("failed to marshal tokens: %w", err)
	}
	return string(data), nil
}

// Helper methods for character access and movement

func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekNext() byte {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

func (l *Lexer) peekAhead(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	ch := l.input[l.pos]
	l.pos++
	l.col++
	return ch
}

func (l *Lexer) addTokenAt(typ TokenType, value string, line, col int) {
	l.tokens = append(l.tokens, NewToken(typ, value, line, col))
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// single maps unambiguous one-character tokens to their types.
var single = map[byte]TokenType{
	'(': LPAREN, ')': RPAREN,
	'{': LBRACE, '}': RBRACE,
	'[': LBRACKET, ']': RBRACKET,
	';': SEMI, ',': COMMA, ':': COLON,
	'%': PERCENT, '~': TILDE, '^': CARET, '?': QUESTION,
}

// scanToken scans a single token from the current position.
func (l *Lexer) scanToken() error {
	char := l.peek()
	next := l.peekNext()

	if typ, ok := single[char]; ok {
		startCol := l.col
		l.advance()
		l.addTokenAt(typ, string(char), l.line, startCol)
		return nil
	}

	switch char {
	// Whitespace - skip but track position
	case ' ', '\t', '\r':
		l.advance()
		return nil

	case '\n':
		l.advance()
		l.line++
		l.col = 0
		return nil

	// At sign - @directive or @"string"
	case '@':
		return l.scanAt()

	// Slash - comment or division
	case '/':
		switch next {
		case '/':
			return l.scanLineComment()
		case '*':
			return l.scanBlockComment()
		}
		l.emitOp(SLASH, "/")
		return nil

	case '"':
		return l.scanString(false)

	case '\'':
		return l.scanCharLiteral()

	case '=':
		if next == '=' {
			l.emitOp2(EQ, "==")
		} else {
			l.emitOp(ASSIGN, "=")
		}
		return nil

	case '!':
		if next == '=' {
			l.emitOp2(NE, "!=")
		} else {
			l.emitOp(BANG, "!")
		}
		return nil

	case '<':
		if next == '=' {
			l.emitOp2(LE, "<=")
		} else {
			l.emitOp(LT, "<")
		}
		return nil

	case '>':
		if next == '=' {
			l.emitOp2(GE, ">=")
		} else {
			l.emitOp(GT, ">")
		}
		return nil

	case '+':
		switch next {
		case '+':
			l.emitOp2(INCREMENT, "++")
		case '=':
			l.emitOp2(PLUS_ASSIGN, "+=")
		default:
			l.emitOp(PLUS, "+")
		}
		return nil

	case '-':
		switch next {
		case '-':
			l.emitOp2(DECREMENT, "--")
		case '=':
			l.emitOp2(MINUS_ASSIGN, "-=")
		case '>':
			l.emitOp2(ARROW, "->")
		default:
			l.emitOp(MINUS, "-")
		}
		return nil

	case '&':
		if next == '&' {
			l.emitOp2(AND, "&&")
		} else {
			l.emitOp(AMP, "&")
		}
		return nil

	case '|':
		if next == '|' {
			l.emitOp2(OR, "||")
		} else {
			l.emitOp(PIPE, "|")
		}
		return nil

	case '*':
		l.emitOp(STAR, "*")
		return nil

	case '.':
		if next == '.' && l.peekAhead(2) == '.' {
			startCol := l.col
			l.advance()
			l.advance()
			l.advance()
			l.addTokenAt(ELLIPSIS, "...", l.line, startCol)
		} else if isDigit(next) {
			return l.scanNumber()
		} else {
			l.emitOp(DOT, ".")
		}
		return nil

	case '#':
		// Preprocessor lines are not translated; swallow to end of line.
		for !l.isAtEnd() && l.peek() != '\n' {
			l.advance()
		}
		return nil
	}

	if isDigit(char) {
		return l.scanNumber()
	}
	if isAlpha(char) {
		return l.scanIdentifier()
	}

	return fmt.Errorf("line %d:%d: unexpected character %q", l.line, l.col, string(char))
}

func (l *Lexer) emitOp(typ TokenType, value string) {
	startCol := l.col
	l.advance()
	l.addTokenAt(typ, value, l.line, startCol)
}

func (l *Lexer) emitOp2(typ TokenType, value string) {
	startCol := l.col
	l.advance()
	l.advance()
	l.addTokenAt(typ, value, l.line, startCol)
}

// scanAt handles @directives (@interface, @end, ...) and @"string"
// literals. An @ followed by anything else is an error.
func (l *Lexer) scanAt() error {
	startLine, startCol := l.line, l.col
	l.advance() // skip @

	if l.peek() == '"' {
		return l.scanStringFrom(startLine, startCol, true)
	}

	if !isAlpha(l.peek()) {
		return fmt.Errorf("line %d:%d: stray @", startLine, startCol)
	}

	var sb strings.Builder
	sb.WriteByte('@')
	for !l.isAtEnd() && isAlphaNumeric(l.peek()) {
		sb.WriteByte(l.advance())
	}
	word := sb.String()
	if !atKeywords[word] {
		return fmt.Errorf("line %d:%d: unknown directive %s", startLine, startCol, word)
	}
	l.addTokenAt(AT_KEYWORD, word, startLine, startCol)
	return nil
}

func (l *Lexer) scanString(objc bool) error {
	return l.scanStringFrom(l.line, l.col, objc)
}

// scanStringFrom scans a double-quoted string literal. For Objective-C
// literals the token value excludes the leading @; the token type records
// the distinction.
func (l *Lexer) scanStringFrom(startLine, startCol int, objc bool) error {
	l.advance() // skip opening quote
	var sb strings.Builder
	for !l.isAtEnd() && l.peek() != '"' {
		ch := l.advance()
		if ch == '\\' && !l.isAtEnd() {
			sb.WriteByte(ch)
			sb.WriteByte(l.advance())
			continue
		}
		if ch == '\n' {
			return fmt.Errorf("line %d:%d: unterminated string literal", startLine, startCol)
		}
		sb.WriteByte(ch)
	}
	if l.isAtEnd() {
		return fmt.Errorf("line %d:%d: unterminated string literal", startLine, startCol)
	}
	l.advance() // skip closing quote

	typ := STRING
	if objc {
		typ = OBJC_STRING
	}
	l.addTokenAt(typ, sb.String(), startLine, startCol)
	return nil
}

func (l *Lexer) scanCharLiteral() error {
	startLine, startCol := l.line, l.col
	l.advance() // skip opening quote
	var sb strings.Builder
	for !l.isAtEnd() && l.peek() != '\'' {
		ch := l.advance()
		if ch == '\\' && !l.isAtEnd() {
			sb.WriteByte(ch)
			sb.WriteByte(l.advance())
			continue
		}
		sb.WriteByte(ch)
	}
	if l.isAtEnd() {
		return fmt.Errorf("line %d:%d: unterminated character literal", startLine, startCol)
	}
	l.advance() // skip closing quote
	l.addTokenAt(CHAR, sb.String(), startLine, startCol)
	return nil
}

func (l *Lexer) scanNumber() error {
	startLine, startCol := l.line, l.col
	var sb strings.Builder

	// Hex literals
	if l.peek() == '0' && (l.peekNext() == 'x' || l.peekNext() == 'X') {
		sb.WriteByte(l.advance())
		sb.WriteByte(l.advance())
		for !l.isAtEnd() && (isDigit(l.peek()) ||
			(l.peek() >= 'a' && l.peek() <= 'f') ||
			(l.peek() >= 'A' && l.peek() <= 'F')) {
			sb.WriteByte(l.advance())
		}
		l.addTokenAt(NUMBER, sb.String(), startLine, startCol)
		return nil
	}

	for !l.isAtEnd() && isDigit(l.peek()) {
		sb.WriteByte(l.advance())
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		sb.WriteByte(l.advance())
		for !l.isAtEnd() && isDigit(l.peek()) {
			sb.WriteByte(l.advance())
		}
	}
	// Suffixes (42L, 1.5f) carry no meaning in the target language.
	for !l.isAtEnd() && (l.peek() == 'f' || l.peek() == 'F' ||
		l.peek() == 'l' || l.peek() == 'L' ||
		l.peek() == 'u' || l.peek() == 'U') {
		l.advance()
	}
	l.addTokenAt(NUMBER, sb.String(), startLine, startCol)
	return nil
}

func (l *Lexer) scanIdentifier() error {
	startLine, startCol := l.line, l.col
	var sb strings.Builder
	for !l.isAtEnd() && isAlphaNumeric(l.peek()) {
		sb.WriteByte(l.advance())
	}
	word := sb.String()
	if keywords[word] {
		l.addTokenAt(KEYWORD, word, startLine, startCol)
	} else {
		l.addTokenAt(IDENTIFIER, word, startLine, startCol)
	}
	return nil
}

func (l *Lexer) scanLineComment() error {
	for !l.isAtEnd() && l.peek() != '\n' {
		l.advance()
	}
	return nil
}

func (l *Lexer) scanBlockComment() error {
	startLine, startCol := l.line, l.col
	l.advance() // skip /
	l.advance() // skip *
	for !l.isAtEnd() {
		if l.peek() == '*' && l.peekNext() == '/' {
			l.advance()
			l.advance()
			return nil
		}
		if l.peek() == '\n' {
			l.advance()
			l.line++
			l.col = 0
			continue
		}
		l.advance()
	}
	return fmt.Errorf("line %d:%d: unterminated block comment", startLine, startCol)
}
