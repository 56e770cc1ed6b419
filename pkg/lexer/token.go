// Package lexer provides tokenization for the Objective-C subset the
// converter understands.
package lexer

// TokenType represents the type of a token.
type TokenType string

// Token types produced by the scanner.
const (
	// Basic tokens
	IDENTIFIER  TokenType = "IDENTIFIER"  // Names (e.g., NSString, myVar, _private)
	KEYWORD     TokenType = "KEYWORD"     // Reserved C words (e.g., const, static, return)
	AT_KEYWORD  TokenType = "AT_KEYWORD"  // @-directives (e.g., @interface, @end, @property)
	NUMBER      TokenType = "NUMBER"      // Numeric literals (e.g., 42, -1, 3.14, 0xFF)
	STRING      TokenType = "STRING"      // C string literals (e.g., "hello")
	OBJC_STRING TokenType = "OBJC_STRING" // Objective-C string literals (e.g., @"hello")
	CHAR        TokenType = "CHAR"        // Character literals (e.g., 'a')

	// Brackets and delimiters
	LPAREN   TokenType = "LPAREN"   // (
	RPAREN   TokenType = "RPAREN"   // )
	LBRACE   TokenType = "LBRACE"   // {
	RBRACE   TokenType = "RBRACE"   // }
	LBRACKET TokenType = "LBRACKET" // [
	RBRACKET TokenType = "RBRACKET" // ]

	// Operators
	ASSIGN       TokenType = "ASSIGN"       // =
	EQ           TokenType = "EQ"           // ==
	NE           TokenType = "NE"           // !=
	LT           TokenType = "LT"           // <
	GT           TokenType = "GT"           // >
	LE           TokenType = "LE"           // <=
	GE           TokenType = "GE"           // >=
	PLUS         TokenType = "PLUS"         // +
	MINUS        TokenType = "MINUS"        // -
	STAR         TokenType = "STAR"         // *
	SLASH        TokenType = "SLASH"        // /
	PERCENT      TokenType = "PERCENT"      // %
	AND          TokenType = "AND"          // &&
	OR           TokenType = "OR"           // ||
	AMP          TokenType = "AMP"          // &
	PIPE         TokenType = "PIPE"         // |
	BANG         TokenType = "BANG"         // !
	TILDE        TokenType = "TILDE"        // ~
	CARET        TokenType = "CARET"        // ^
	INCREMENT    TokenType = "INCREMENT"    // ++
	DECREMENT    TokenType = "DECREMENT"    // --
	PLUS_ASSIGN  TokenType = "PLUS_ASSIGN"  // +=
	MINUS_ASSIGN TokenType = "MINUS_ASSIGN" // -=
	ARROW        TokenType = "ARROW"        // ->
	QUESTION     TokenType = "QUESTION"     // ?

	// Punctuation
	SEMI     TokenType = "SEMI"     // ;
	COMMA    TokenType = "COMMA"    // ,
	COLON    TokenType = "COLON"    // :
	DOT      TokenType = "DOT"      // .
	ELLIPSIS TokenType = "ELLIPSIS" // ...

	// Special tokens
	ERROR TokenType = "ERROR" // Error token
	EOF   TokenType = "EOF"   // End of file
)

// Token represents a single token from the lexer.
type Token struct {
	Type   TokenType `json:"type"`
	Value  string    `json:"value"`
	Line   int       `json:"line"`
	Column int       `json:"col"`
}

// NewToken creates a new token with the given properties.
func NewToken(typ TokenType, value string, line, col int) Token {
	return Token{
		Type:   typ,
		Value:  value,
		Line:   line,
		Column: col,
	}
}

// keywords holds the reserved C words recognized as KEYWORD tokens.
// Everything else alphabetic lexes as IDENTIFIER, including typedef
// names like BOOL, id and NSInteger.
var keywords = map[string]bool{
	"auto": true, "break": true, "case": true, "char": true,
	"const": true, "continue": true, "default": true, "do": true,
	"double": true, "else": true, "enum": true, "extern": true,
	"float": true, "for": true, "goto": true, "if": true,
	"in": true, "int": true, "long": true, "register": true,
	"return": true, "short": true, "signed": true, "sizeof": true,
	"static": true, "struct": true, "switch": true, "typedef": true,
	"union": true, "unsigned": true, "void": true, "volatile": true,
	"while": true,
}

// atKeywords holds the @-directives recognized as AT_KEYWORD tokens.
// The token value includes the leading @.
var atKeywords = map[string]bool{
	"@interface": true, "@implementation": true, "@protocol": true,
	"@end": true, "@property": true, "@synthesize": true,
	"@dynamic": true, "@class": true, "@selector": true,
	"@optional": true, "@required": true, "@public": true,
	"@private": true, "@protected": true,
}

// IsKeyword returns true if the token is a reserved word.
func (t Token) IsKeyword() bool {
	return t.Type == KEYWORD
}

// IsIdentifier returns true if the token is an identifier.
func (t Token) IsIdentifier() bool {
	return t.Type == IDENTIFIER
}

// Is returns true if the token has the given type and value.
func (t Token) Is(typ TokenType, value string) bool {
	return t.Type == typ && t.Value == value
}

// IsLiteral returns true if the token represents a literal value.
func (t Token) IsLiteral() bool {
	switch t.Type {
	case STRING, OBJC_STRING, NUMBER, CHAR:
		return true
	}
	return false
}
