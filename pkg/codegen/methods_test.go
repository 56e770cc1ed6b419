package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftpen/objc2swift/pkg/parser"
)

func TestUndefinedMethodGetsStubBody(t *testing.T) {
	result := gen(t, `
@interface A
- (void)reset;
@end
`)
	want := "class A {\n" +
		"    func reset() {\n" +
		"    }\n" +
		"}\n"
	assert.Equal(t, want, result.Code)
}

func TestProtocolMethodsStayBodyless(t *testing.T) {
	result := gen(t, `
@protocol Greeter
- (NSString *)greet;
@end
`)
	want := "protocol Greeter {\n" +
		"    func greet() -> NSString\n" +
		"}\n"
	assert.Equal(t, want, result.Code)
}

func TestDefinitionRendersAtDeclarationSite(t *testing.T) {
	result := gen(t, `
@interface A
- (void)foo;
@end

@implementation A
- (void)foo {
    return;
}
@end
`)
	want := "class A {\n" +
		"    func foo() {\n" +
		"        return\n" +
		"    }\n" +
		"}\n"
	assert.Equal(t, want, result.Code)
}

func TestDefinitionRenderedExactlyOnce(t *testing.T) {
	result := gen(t, `
@interface Counter
- (void)increment;
@end

@implementation Counter
- (void)increment {
    count += 1;
}
@end
`)
	assert.Equal(t, 1, strings.Count(result.Code, "func increment()"))
	assert.NotContains(t, result.Code, "extension Counter")
}

// TestImplementationBeforeInterface checks that the marker table guards
// against double emission regardless of block order: the definition
// renders wherever the walk reaches it first.
func TestImplementationBeforeInterface(t *testing.T) {
	result := gen(t, `
@implementation A
- (void)foo {
    x = 1;
}
@end

@interface A
- (void)foo;
@end
`)
	assert.Equal(t, 1, strings.Count(result.Code, "func foo()"))
}

// TestGenerateIsRepeatable checks that a second pass over the same tree
// produces identical output; the rendered table is per pass, not stored
// on the nodes.
func TestGenerateIsRepeatable(t *testing.T) {
	unit, err := parser.ParseSource(`
@interface A
- (void)foo;
@end

@implementation A
- (void)foo {
    x = 1;
}
@end
`)
	require.NoError(t, err)

	first := Generate(unit, DefaultOptions())
	second := Generate(unit, DefaultOptions())
	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, 1, strings.Count(second.Code, "func foo()"))
}

// TestGeneratorReuseResetsMarkers drives one Generator through two
// passes: markers set by the first pass must not swallow definitions
// in the second.
func TestGeneratorReuseResetsMarkers(t *testing.T) {
	unit, err := parser.ParseSource(`
@interface A
- (void)foo;
@end

@implementation A
- (void)foo {
    x = 1;
}
@end
`)
	require.NoError(t, err)

	g := New(unit, DefaultOptions())
	first := g.Generate()
	second := g.Generate()

	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, 1, strings.Count(second.Code, "func foo()"))
	assert.Contains(t, second.Code, "x = 1")
}

// TestGeneratorReuseResetsWarnings: warnings belong to a pass, not to
// the Generator's lifetime.
func TestGeneratorReuseResetsWarnings(t *testing.T) {
	unit, err := parser.ParseSource("int;")
	require.NoError(t, err)

	g := New(unit, DefaultOptions())
	g.Generate()
	second := g.Generate()

	assert.Len(t, second.Warnings, 1)
}

func TestDeallocBecomesDeinit(t *testing.T) {
	result := gen(t, `
@interface A
- (void)dealloc;
@end

@implementation A
- (void)dealloc {
    count = 0;
}
@end
`)
	assert.Contains(t, result.Code, "deinit {\n")
	assert.NotContains(t, result.Code, "func dealloc")
	assert.NotContains(t, result.Code, "deinit()")
}

// TestDeallocIgnoresAnnotation: the destructor rename applies whatever
// the return annotation says.
func TestDeallocIgnoresAnnotation(t *testing.T) {
	result := gen(t, `
@interface A
- (int)dealloc;
@end
`)
	assert.Contains(t, result.Code, "deinit {")
	assert.NotContains(t, result.Code, "-> Int")
}

func TestBareInitRename(t *testing.T) {
	result := gen(t, `
@interface A
- (id)init;
@end
`)
	assert.Contains(t, result.Code, "init() {")
	assert.NotContains(t, result.Code, "func init")
	assert.NotContains(t, result.Code, "-> AnyObject")
}

func TestInitWithRename(t *testing.T) {
	result := gen(t, `
@interface A
- (id)initWithName:(NSString *)name age:(int)age;
@end
`)
	assert.Contains(t, result.Code, "init(name: NSString, age: Int) {")
	assert.NotContains(t, result.Code, "initWith")
}

// TestInitWithoutKeywordsKeepsName: a bare selector that merely starts
// with initWith is not a constructor form.
func TestInitWithoutKeywordsKeepsName(t *testing.T) {
	result := gen(t, `
@interface A
- (id)initWithDefaults;
@end
`)
	assert.Contains(t, result.Code, "func initWithDefaults() -> AnyObject")
}

func TestMissingReturnTypeDefaultsToAnyObject(t *testing.T) {
	result := gen(t, `
@interface A
- foo;
@end
`)
	assert.Contains(t, result.Code, "func foo() -> AnyObject {")
}

func TestVoidReturnOmitsArrow(t *testing.T) {
	result := gen(t, `
@interface A
- (void)run;
@end
`)
	assert.Contains(t, result.Code, "func run() {")
	assert.NotContains(t, result.Code, "->")
}

func TestIBActionAnnotation(t *testing.T) {
	result := gen(t, `
@interface Controller
- (IBAction)tapped:(id)sender;
@end
`)
	assert.Contains(t, result.Code, "@IBAction func tapped(sender: AnyObject) {")
	assert.NotContains(t, result.Code, "-> IBAction")
}

func TestHeadLabelElision(t *testing.T) {
	result := gen(t, `
@interface A
- (void)setValue:(int)value forKey:(NSString *)key;
@end
`)
	assert.Contains(t, result.Code, "func setValue(value: Int, forKey key: NSString)")
}

func TestTailLabelMatchingParamElided(t *testing.T) {
	result := gen(t, `
@interface A
- (void)resizeTo:(int)width height:(int)height;
@end
`)
	assert.Contains(t, result.Code, "func resizeTo(width: Int, height: Int)")
}

func TestUnlabeledTailSlot(t *testing.T) {
	result := gen(t, `
@interface A
- (void)moveTo:(int)x :(int)y;
@end
`)
	assert.Contains(t, result.Code, "func moveTo(x: Int, y: Int)")
}

// TestUntypedKeywordParam: a keyword parameter with no parenthesized
// annotation renders as AnyObject, never with an empty type slot.
func TestUntypedKeywordParam(t *testing.T) {
	result := gen(t, `
@interface A
- (void)foo:x;
@end
`)
	assert.Contains(t, result.Code, "func foo(x: AnyObject) {")
	assert.NotContains(t, result.Code, ": )")
}

func TestClassMethodMarker(t *testing.T) {
	result := gen(t, `
@interface A
+ (void)reset;
@end
`)
	assert.Contains(t, result.Code, "class func reset() {")
}

// TestDefinitionMatchRespectsKind: an instance declaration never claims
// a class-method body and vice versa.
func TestDefinitionMatchRespectsKind(t *testing.T) {
	result := gen(t, `
@interface A
- (void)reset;
+ (void)reset;
@end

@implementation A
- (void)reset {
    x = 2;
}
+ (void)reset {
    x = 1;
}
@end
`)
	assert.Contains(t, result.Code, "func reset() {\n        x = 2\n    }")
	assert.Contains(t, result.Code, "class func reset() {\n        x = 1\n    }")
	assert.Equal(t, 1, strings.Count(result.Code, "class func reset()"))
}

func TestReturnTypeMapsThroughTable(t *testing.T) {
	result := gen(t, `
@interface A
- (NSInteger)count;
- (BOOL)isEmpty;
@end
`)
	assert.Contains(t, result.Code, "func count() -> Int {")
	assert.Contains(t, result.Code, "func isEmpty() -> Bool {")
}
