package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassHeaderInheritance(t *testing.T) {
	result := gen(t, `
@interface Dog : Animal <Walker, Barker>
@end
`)
	assert.Equal(t, "class Dog: Animal, Walker, Barker {\n}\n", result.Code)
}

func TestClassWithoutSuperclass(t *testing.T) {
	result := gen(t, `
@interface Dog
@end
`)
	assert.Equal(t, "class Dog {\n}\n", result.Code)
}

func TestIVarsAndPropertiesGroupBeforeMethods(t *testing.T) {
	result := gen(t, `
@interface Counter : NSObject {
    NSInteger count;
}
@property (nonatomic) NSInteger step;
- (void)reset;
@end
`)
	want := "class Counter: NSObject {\n" +
		"    var count: Int\n" +
		"    var step: Int\n" +
		"\n" +
		"    func reset() {\n" +
		"    }\n" +
		"}\n"
	assert.Equal(t, want, result.Code)
}

func TestPropertyPointerTypeElided(t *testing.T) {
	result := gen(t, `
@interface A
@property (nonatomic, strong) NSString *name;
@end
`)
	assert.Contains(t, result.Code, "var name: NSString\n")
	assert.NotContains(t, result.Code, "*")
}

func TestCategoryBecomesExtension(t *testing.T) {
	result := gen(t, `
@interface NSString (Shouting)
- (NSString *)shouted;
@end

@implementation NSString (Shouting)
- (NSString *)shouted {
    return self;
}
@end
`)
	want := "extension NSString {\n" +
		"    func shouted() -> NSString {\n" +
		"        return self\n" +
		"    }\n" +
		"}\n"
	assert.Equal(t, want, result.Code)
}

func TestCategoryWithProtocols(t *testing.T) {
	result := gen(t, `
@interface NSString (Printing) <Printable>
- (void)print;
@end
`)
	assert.Contains(t, result.Code, "extension NSString: Printable {")
}

func TestImplementationWithoutInterfaceIsClass(t *testing.T) {
	result := gen(t, `
@implementation Looper
- (void)run {
    x = 1;
}
@end
`)
	assert.True(t, strings.HasPrefix(result.Code, "class Looper {"), result.Code)
}

// TestUnclaimedDefinitionsLandInExtension: methods defined but never
// declared in the interface render as an extension after the class.
func TestUnclaimedDefinitionsLandInExtension(t *testing.T) {
	result := gen(t, `
@interface A
- (void)declared;
@end

@implementation A
- (void)declared {
    x = 1;
}
- (void)helper {
    x = 2;
}
@end
`)
	assert.Contains(t, result.Code, "extension A {\n    func helper() {")
	assert.Equal(t, 1, strings.Count(result.Code, "func declared()"))
	assert.Equal(t, 1, strings.Count(result.Code, "func helper()"))
}

func TestFullyClaimedImplementationRendersNothing(t *testing.T) {
	result := gen(t, `
@interface A
- (void)foo;
@end

@implementation A
- (void)foo {
    x = 1;
}
@end
`)
	assert.NotContains(t, result.Code, "extension")
}

func TestProtocolInheritanceHeader(t *testing.T) {
	result := gen(t, `
@protocol Greeter <NSObject, Printable>
- (void)greet;
@end
`)
	assert.Contains(t, result.Code, "protocol Greeter: NSObject, Printable {")
}

func TestBlocksSeparatedByBlankLines(t *testing.T) {
	result := gen(t, `
@interface A
@end

@interface B
@end
`)
	assert.Equal(t, "class A {\n}\n\nclass B {\n}\n", result.Code)
}
