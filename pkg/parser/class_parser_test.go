package parser

import (
	"testing"

	"github.com/swiftpen/objc2swift/pkg/ast"
)

func TestParseClassInterface(t *testing.T) {
	source := `
@interface Dog : Animal <Walker, Barker> {
    int age;
    NSString name;
}

@property (nonatomic, strong) NSString *nickname;

- (void)bark;
+ (Dog *)dogWithAge:(int)age;

@end
`
	unit := parseUnit(t, source)
	if len(unit.Decls) != 1 {
		t.Fatalf("got %d decls, want 1", len(unit.Decls))
	}
	cls, ok := unit.Decls[0].(*ast.ClassInterface)
	if !ok {
		t.Fatalf("got %T, want *ast.ClassInterface", unit.Decls[0])
	}

	if cls.Name != "Dog" || cls.SuperClass != "Animal" {
		t.Errorf("header = %s : %s, want Dog : Animal", cls.Name, cls.SuperClass)
	}
	if len(cls.Protocols) != 2 || cls.Protocols[0] != "Walker" || cls.Protocols[1] != "Barker" {
		t.Errorf("protocols = %v, want [Walker Barker]", cls.Protocols)
	}
	if len(cls.IVars) != 2 {
		t.Errorf("got %d ivars, want 2", len(cls.IVars))
	}
	if len(cls.Properties) != 1 {
		t.Fatalf("got %d properties, want 1", len(cls.Properties))
	}
	prop := cls.Properties[0]
	if prop.Name != "nickname" || !prop.Pointer {
		t.Errorf("property = %+v, want pointer nickname", prop)
	}
	if len(prop.Attributes) != 2 || prop.Attributes[0] != "nonatomic" {
		t.Errorf("attributes = %v, want [nonatomic strong]", prop.Attributes)
	}

	if len(cls.Methods) != 2 {
		t.Fatalf("got %d methods, want 2", len(cls.Methods))
	}
	if cls.Methods[0].ClassMethod {
		t.Error("bark parsed as a class method")
	}
	if !cls.Methods[1].ClassMethod {
		t.Error("dogWithAge: not parsed as a class method")
	}
	if cls.Methods[1].Selector.SelectorName() != "dogWithAge" {
		t.Errorf("selector = %q, want dogWithAge", cls.Methods[1].Selector.SelectorName())
	}
}

func TestParseIVarVisibilityDirectives(t *testing.T) {
	source := `
@interface Point {
@private
    int x;
@public
    int y;
}
@end
`
	unit := parseUnit(t, source)
	cls := unit.Decls[0].(*ast.ClassInterface)
	if len(cls.IVars) != 2 {
		t.Errorf("got %d ivars, want 2 (visibility directives skipped)", len(cls.IVars))
	}
}

func TestParseCategoryInterface(t *testing.T) {
	source := `
@interface NSString (Trimming)
- (NSString *)trimmed;
@end
`
	unit := parseUnit(t, source)
	cat, ok := unit.Decls[0].(*ast.CategoryInterface)
	if !ok {
		t.Fatalf("got %T, want *ast.CategoryInterface", unit.Decls[0])
	}
	if cat.ClassName != "NSString" || cat.CategoryName != "Trimming" {
		t.Errorf("header = %s (%s), want NSString (Trimming)", cat.ClassName, cat.CategoryName)
	}
	if len(cat.Methods) != 1 {
		t.Errorf("got %d methods, want 1", len(cat.Methods))
	}
}

func TestParseImplementation(t *testing.T) {
	source := `
@implementation Dog

@synthesize nickname;

- (void)bark {
    sound = 1;
}

+ (Dog *)dogWithAge:(int)age {
    return nil;
}

@end
`
	unit := parseUnit(t, source)
	impl, ok := unit.Decls[0].(*ast.ClassImplementation)
	if !ok {
		t.Fatalf("got %T, want *ast.ClassImplementation", unit.Decls[0])
	}
	if impl.Name != "Dog" {
		t.Errorf("name = %q, want Dog", impl.Name)
	}
	if len(impl.Definitions) != 2 {
		t.Fatalf("got %d definitions, want 2 (@synthesize skipped)", len(impl.Definitions))
	}
	if len(impl.Definitions[0].Body.Items) != 1 {
		t.Errorf("bark body has %d statements, want 1", len(impl.Definitions[0].Body.Items))
	}
	if !impl.Definitions[1].ClassMethod {
		t.Error("dogWithAge: not parsed as a class method")
	}
}

func TestParseCategoryImplementation(t *testing.T) {
	source := `
@implementation NSString (Trimming)
- (NSString *)trimmed {
    return self;
}
@end
`
	unit := parseUnit(t, source)
	impl, ok := unit.Decls[0].(*ast.CategoryImplementation)
	if !ok {
		t.Fatalf("got %T, want *ast.CategoryImplementation", unit.Decls[0])
	}
	if impl.ClassName != "NSString" || impl.CategoryName != "Trimming" {
		t.Errorf("header = %s (%s), want NSString (Trimming)", impl.ClassName, impl.CategoryName)
	}
	if len(impl.Definitions) != 1 {
		t.Errorf("got %d definitions, want 1", len(impl.Definitions))
	}
}

func TestParseProtocol(t *testing.T) {
	source := `
@protocol Greeter <NSObject>
- (NSString *)greet;
@optional
- (void)wave;
@end
`
	unit := parseUnit(t, source)
	proto, ok := unit.Decls[0].(*ast.ProtocolDeclaration)
	if !ok {
		t.Fatalf("got %T, want *ast.ProtocolDeclaration", unit.Decls[0])
	}
	if proto.Name != "Greeter" {
		t.Errorf("name = %q, want Greeter", proto.Name)
	}
	if len(proto.Protocols) != 1 || proto.Protocols[0] != "NSObject" {
		t.Errorf("protocols = %v, want [NSObject]", proto.Protocols)
	}
	if len(proto.Methods) != 2 {
		t.Errorf("got %d methods, want 2", len(proto.Methods))
	}
}

func TestParseProtocolForwardDeclaration(t *testing.T) {
	unit := parseUnit(t, "@protocol Greeter;\nint x = 1;")
	if len(unit.Decls) != 1 {
		t.Fatalf("got %d decls, want 1 (forward declaration yields nothing)", len(unit.Decls))
	}
	if _, ok := unit.Decls[0].(*ast.Declaration); !ok {
		t.Errorf("got %T, want *ast.Declaration", unit.Decls[0])
	}
}

func TestParseMethodSelectorShapes(t *testing.T) {
	source := `
@interface Shapes
- (void)reset;
- (void)setValue:(int)value forKey:(NSString *)key;
- (void)moveTo:(int)x :(int)y;
- bareReturn;
@end
`
	unit := parseUnit(t, source)
	cls := unit.Decls[0].(*ast.ClassInterface)
	if len(cls.Methods) != 4 {
		t.Fatalf("got %d methods, want 4", len(cls.Methods))
	}

	bare := cls.Methods[0].Selector
	if bare.Name != "reset" || len(bare.Keywords) != 0 {
		t.Errorf("bare selector = %+v, want reset", bare)
	}

	keyed := cls.Methods[1].Selector
	if len(keyed.Keywords) != 2 {
		t.Fatalf("got %d keywords, want 2", len(keyed.Keywords))
	}
	if keyed.Keywords[0].Selector != "setValue" || keyed.Keywords[0].Param != "value" {
		t.Errorf("head keyword = %+v, want setValue value", keyed.Keywords[0])
	}
	if keyed.Keywords[1].Selector != "forKey" || keyed.Keywords[1].Param != "key" {
		t.Errorf("tail keyword = %+v, want forKey key", keyed.Keywords[1])
	}

	unlabeled := cls.Methods[2].Selector
	if len(unlabeled.Keywords) != 2 {
		t.Fatalf("got %d keywords, want 2", len(unlabeled.Keywords))
	}
	if unlabeled.Keywords[1].Selector != "" || unlabeled.Keywords[1].Param != "y" {
		t.Errorf("unlabeled keyword = %+v, want empty label with param y", unlabeled.Keywords[1])
	}

	if cls.Methods[3].ReturnType != nil {
		t.Errorf("bareReturn has return type %+v, want nil", cls.Methods[3].ReturnType)
	}
}

// An unannotated keyword parameter is implicitly id.
func TestParseKeywordParamWithoutTypeDefaultsToID(t *testing.T) {
	source := `
@interface A
- (void)foo:x;
@end
`
	unit := parseUnit(t, source)
	cls := unit.Decls[0].(*ast.ClassInterface)
	if len(cls.Methods) != 1 {
		t.Fatalf("got %d methods, want 1", len(cls.Methods))
	}

	kw := cls.Methods[0].Selector.Keywords
	if len(kw) != 1 {
		t.Fatalf("got %d keywords, want 1", len(kw))
	}
	if kw[0].Param != "x" {
		t.Errorf("param = %q, want x", kw[0].Param)
	}
	if len(kw[0].Types) != 1 || len(kw[0].Types[0].Specs) != 1 {
		t.Fatalf("types = %+v, want a single id specifier", kw[0].Types)
	}
	if got := kw[0].Types[0].Specs[0].Name; got != "id" {
		t.Errorf("param type = %q, want id", got)
	}
}

func TestParseMethodTypeProtocolRefs(t *testing.T) {
	source := `
@interface Box
- (id<Packable>)contents;
@end
`
	unit := parseUnit(t, source)
	cls := unit.Decls[0].(*ast.ClassInterface)
	ret := cls.Methods[0].ReturnType
	if ret == nil || len(ret.Specs) != 1 || ret.Specs[0].Name != "id" {
		t.Errorf("return type = %+v, want id with protocol refs dropped", ret)
	}
}

func TestBuildOwnerIndex(t *testing.T) {
	source := `
@interface A
- (void)one;
@end

@protocol P
- (void)two;
@end
`
	unit := parseUnit(t, source)
	idx := ast.BuildOwnerIndex(unit)

	cls := unit.Decls[0].(*ast.ClassInterface)
	proto := unit.Decls[1].(*ast.ProtocolDeclaration)

	if idx[cls.Methods[0]] != ast.Node(cls) {
		t.Errorf("owner of one = %T, want the class interface", idx[cls.Methods[0]])
	}
	if idx[proto.Methods[0]] != ast.Node(proto) {
		t.Errorf("owner of two = %T, want the protocol", idx[proto.Methods[0]])
	}
}
