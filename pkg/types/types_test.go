package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		name  string
		specs []string
		want  string
	}{
		{"single builtin", []string{"int"}, "Int"},
		{"void", []string{"void"}, "Void"},
		{"class name passes through", []string{"NSString"}, "NSString"},
		{"typedef", []string{"NSInteger"}, "Int"},
		{"two word composite", []string{"long", "long"}, "Int64"},
		{"three word composite", []string{"unsigned", "long", "long"}, "UInt64"},
		{"composite beats word-by-word", []string{"unsigned", "char"}, "UInt8"},
		{"bare unsigned", []string{"unsigned"}, "UInt"},
		{"empty", nil, ""},
	}

	table := NewTable(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Join(tt.specs))
		})
	}
}

func TestOverrides(t *testing.T) {
	table := NewTable(map[string]string{
		"NSString": "String",
		"int":      "Int32",
	})

	assert.Equal(t, "String", table.Map("NSString"), "override applies")
	assert.Equal(t, "Int32", table.Map("int"), "override wins over builtin")
	assert.Equal(t, "Bool", table.Map("BOOL"), "builtins still resolve")
	assert.Equal(t, "MyClass", table.Map("MyClass"), "unknown names pass through")

	_, ok := table.Lookup("MyClass")
	assert.False(t, ok)
}

func TestZeroTable(t *testing.T) {
	var table Table
	assert.Equal(t, "Int", table.Map("int"))
}

func TestIsVoid(t *testing.T) {
	assert.True(t, IsVoid("void"))
	assert.True(t, IsVoid("Void"))
	assert.False(t, IsVoid("Int"))
	assert.False(t, IsVoid(""))
}

func TestIsIBAction(t *testing.T) {
	assert.True(t, IsIBAction("IBAction"))
	assert.False(t, IsIBAction("Void"))
}
