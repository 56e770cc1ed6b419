// Package ast defines the typed parse tree for the Objective-C subset.
//
// The node set is a closed union: every production the converter touches
// has exactly one struct here, and each struct implements one of the
// marker interfaces below. Code generation dispatches on the concrete
// type, so an unhandled kind is a compile-time hole rather than a silent
// runtime fallthrough.
//
// Nodes are immutable after parsing. The converter never writes to them;
// all per-translation state lives in the generator.
package ast

// Node is implemented by every parse tree node.
type Node interface {
	node()
}

// Expr is implemented by expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// TranslationUnit is the root of a parsed source file.
type TranslationUnit struct {
	Decls []Node // interfaces, implementations, protocols, declarations
}

func (*TranslationUnit) node() {}

// === Classes, categories, protocols ===

// ClassInterface represents an @interface block.
type ClassInterface struct {
	Name       string
	SuperClass string   // empty when no superclass clause
	Protocols  []string // adopted protocols, <A, B>
	IVars      []*Declaration
	Properties []*PropertyDeclaration
	Methods    []*MethodDeclaration
}

func (*ClassInterface) node() {}

// CategoryInterface represents an @interface Class (Category) block.
type CategoryInterface struct {
	ClassName    string
	CategoryName string
	Protocols    []string
	Properties   []*PropertyDeclaration
	Methods      []*MethodDeclaration
}

func (*CategoryInterface) node() {}

// ClassImplementation represents an @implementation block.
type ClassImplementation struct {
	Name        string
	Definitions []*MethodDefinition
}

func (*ClassImplementation) node() {}

// CategoryImplementation represents an @implementation Class (Category) block.
type CategoryImplementation struct {
	ClassName    string
	CategoryName string
	Definitions  []*MethodDefinition
}

func (*CategoryImplementation) node() {}

// ProtocolDeclaration represents an @protocol block.
type ProtocolDeclaration struct {
	Name      string
	Protocols []string
	Methods   []*MethodDeclaration
}

func (*ProtocolDeclaration) node() {}

// PropertyDeclaration represents an @property line inside an interface.
type PropertyDeclaration struct {
	Attributes []string // (nonatomic, strong, ...) — informational
	TypeSpecs  []*TypeSpecifier
	Pointer    bool
	Name       string
}

func (*PropertyDeclaration) node() {}

// === Methods ===

// MethodDeclaration is a bodyless method inside an interface, category
// or protocol.
type MethodDeclaration struct {
	ClassMethod bool // + methods
	ReturnType  *MethodType
	Selector    *MethodSelector
}

func (*MethodDeclaration) node() {}

// MethodDefinition is a method with a body inside an implementation.
type MethodDefinition struct {
	ClassMethod bool
	ReturnType  *MethodType
	Selector    *MethodSelector
	Body        *CompoundStatement
}

func (*MethodDefinition) node() {}

// MethodType is a parenthesized type annotation, e.g. (void) or
// (NSString *).
type MethodType struct {
	Specs   []*TypeSpecifier
	Pointer bool
}

func (*MethodType) node() {}

// MethodSelector is either a bare selector name (Name set, Keywords nil)
// or an ordered list of keyword declarators (Name empty).
type MethodSelector struct {
	Name     string
	Keywords []*KeywordDeclarator
}

func (*MethodSelector) node() {}

// KeywordDeclarator is one labeled parameter slot within a selector.
// Selector may be empty, in which case the label equals the parameter
// name. Types is non-empty.
type KeywordDeclarator struct {
	Selector string
	Types    []*MethodType
	Param    string
}

func (*KeywordDeclarator) node() {}

// === Declarations ===

// Declaration represents a C-style declaration statement. All three
// children are optional; TypeSpecs is ordered and non-empty when present.
type Declaration struct {
	Specifiers []*Specifier
	TypeSpecs  []*TypeSpecifier
	InitDecls  []*InitDeclarator
}

func (*Declaration) node() {}

// Specifier is a storage-class or type-qualifier token (const, static,
// extern, volatile, ...).
type Specifier struct {
	Name string
}

func (*Specifier) node() {}

// TypeSpecifier is either a plain type token (Name set) or an enum
// specifier (Enum set).
type TypeSpecifier struct {
	Name string
	Enum *EnumSpecifier
}

func (*TypeSpecifier) node() {}

// IsEnum returns true when the specifier denotes an enum.
func (t *TypeSpecifier) IsEnum() bool {
	return t.Enum != nil
}

// EnumSpecifier represents enum Name { a, b = 2, ... }.
type EnumSpecifier struct {
	Name        string
	Enumerators []*Enumerator
}

func (*EnumSpecifier) node() {}

// Enumerator is one enum constant with an optional explicit value.
type Enumerator struct {
	Name  string
	Value Expr
}

func (*Enumerator) node() {}

// InitDeclarator pairs a declarator with an optional initializer.
type InitDeclarator struct {
	Decl *Declarator
	Init Expr
}

func (*InitDeclarator) node() {}

// Declarator wraps a direct declarator with optional pointer decoration.
type Declarator struct {
	Pointer bool
	Direct  *DirectDeclarator
}

func (*Declarator) node() {}

// DirectDeclarator is either a plain identifier (Name set) or a
// parenthesized nested declarator (Inner set). IsArray records trailing
// array brackets, which the target language rendering elides.
type DirectDeclarator struct {
	Name    string
	Inner   *Declarator
	IsArray bool
}

func (*DirectDeclarator) node() {}

// === Statements ===

// CompoundStatement is a brace-delimited block.
type CompoundStatement struct {
	Items []Stmt
}

func (*CompoundStatement) node()     {}
func (*CompoundStatement) stmtNode() {}

// DeclarationStmt is a local declaration used in statement position.
type DeclarationStmt struct {
	Decl *Declaration
}

func (*DeclarationStmt) node()     {}
func (*DeclarationStmt) stmtNode() {}

// ExprStmt wraps an expression used as a statement.
type ExprStmt struct {
	X Expr
}

func (*ExprStmt) node()     {}
func (*ExprStmt) stmtNode() {}

// ReturnStmt is a return with an optional value.
type ReturnStmt struct {
	X Expr // nil for bare return
}

func (*ReturnStmt) node()     {}
func (*ReturnStmt) stmtNode() {}

// IfStmt is an if with an optional else branch.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil when absent
}

func (*IfStmt) node()     {}
func (*IfStmt) stmtNode() {}

// WhileStmt is a while loop.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

func (*WhileStmt) node()     {}
func (*WhileStmt) stmtNode() {}

// ForStmt is a C-style three-clause for loop. Init may be a declaration
// or an expression statement; any clause may be nil.
type ForStmt struct {
	Init Stmt
	Cond Expr
	Post Expr
	Body Stmt
}

func (*ForStmt) node()     {}
func (*ForStmt) stmtNode() {}

// ForInStmt is fast enumeration: for (Type x in collection).
type ForInStmt struct {
	Var        *Declaration
	Collection Expr
	Body       Stmt
}

func (*ForInStmt) node()     {}
func (*ForInStmt) stmtNode() {}

// BreakStmt is a break.
type BreakStmt struct{}

func (*BreakStmt) node()     {}
func (*BreakStmt) stmtNode() {}

// ContinueStmt is a continue.
type ContinueStmt struct{}

func (*ContinueStmt) node()     {}
func (*ContinueStmt) stmtNode() {}

// === Expressions ===

// Ident is a name reference. YES, NO, nil and self are Idents; the
// generator maps them to target keywords.
type Ident struct {
	Name string
}

func (*Ident) node()     {}
func (*Ident) exprNode() {}

// NumberLit is a numeric literal, kept verbatim.
type NumberLit struct {
	Value string
}

func (*NumberLit) node()     {}
func (*NumberLit) exprNode() {}

// StringLit is a string literal. ObjC records whether the source form
// carried the @ prefix; both render identically.
type StringLit struct {
	Value string
	ObjC  bool
}

func (*StringLit) node()     {}
func (*StringLit) exprNode() {}

// CharLit is a character literal.
type CharLit struct {
	Value string
}

func (*CharLit) node()     {}
func (*CharLit) exprNode() {}

// SelectorLit is @selector(name).
type SelectorLit struct {
	Name string
}

func (*SelectorLit) node()     {}
func (*SelectorLit) exprNode() {}

// MessageArg is one keyword argument of a message send.
type MessageArg struct {
	Selector string
	Value    Expr
}

func (*MessageArg) node() {}

// MessageExpr is a message send [receiver selector] or
// [receiver sel: a with: b].
type MessageExpr struct {
	Receiver Expr
	Selector string        // bare selector; empty when Args is set
	Args     []*MessageArg // keyword form
}

func (*MessageExpr) node()     {}
func (*MessageExpr) exprNode() {}

// BinaryExpr is left op right.
type BinaryExpr struct {
	Left  Expr
	Op    string
	Right Expr
}

func (*BinaryExpr) node()     {}
func (*BinaryExpr) exprNode() {}

// UnaryExpr is a prefix or postfix unary operation.
type UnaryExpr struct {
	Op      string
	X       Expr
	Postfix bool // i++ vs ++i
}

func (*UnaryExpr) node()     {}
func (*UnaryExpr) exprNode() {}

// AssignExpr is target op value, where op is =, += or -=.
type AssignExpr struct {
	Target Expr
	Op     string
	Value  Expr
}

func (*AssignExpr) node()     {}
func (*AssignExpr) exprNode() {}

// CallExpr is a C function call.
type CallExpr struct {
	Fun  Expr
	Args []Expr
}

func (*CallExpr) node()     {}
func (*CallExpr) exprNode() {}

// ParenExpr is a parenthesized expression.
type ParenExpr struct {
	X Expr
}

func (*ParenExpr) node()     {}
func (*ParenExpr) exprNode() {}

// MemberExpr is x.name or x->name.
type MemberExpr struct {
	X     Expr
	Name  string
	Arrow bool
}

func (*MemberExpr) node()     {}
func (*MemberExpr) exprNode() {}

// IndexExpr is x[i].
type IndexExpr struct {
	X     Expr
	Index Expr
}

func (*IndexExpr) node()     {}
func (*IndexExpr) exprNode() {}

// TernaryExpr is cond ? then : else.
type TernaryExpr struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (*TernaryExpr) node()     {}
func (*TernaryExpr) exprNode() {}
