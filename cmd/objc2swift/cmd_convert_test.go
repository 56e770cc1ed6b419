package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftpen/objc2swift/pkg/codegen"
)

// TestConvertOneStdoutCarriesOnlyCode: with no output directory the
// generated Swift goes to stdout while the status report stays off it,
// so `convert x.m > x.swift` captures clean Swift.
func TestConvertOneStdoutCarriesOnlyCode(t *testing.T) {
	src := filepath.Join(t.TempDir(), "thing.m")
	require.NoError(t, os.WriteFile(src, []byte("int x = 1;\n"), 0644))

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	convErr := convertOne(src, "", codegen.DefaultOptions())
	w.Close()
	os.Stdout = old
	require.NoError(t, convErr)

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "var x: Int = 1\n", string(out))
}

func TestConvertOneWritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "thing.m")
	require.NoError(t, os.WriteFile(src, []byte("int x = 1;\n"), 0644))

	outDir := filepath.Join(dir, "out")
	require.NoError(t, convertOne(src, outDir, codegen.DefaultOptions()))

	data, err := os.ReadFile(filepath.Join(outDir, "thing.swift"))
	require.NoError(t, err)
	assert.Equal(t, "var x: Int = 1\n", string(data))
}

func TestConvertFileRejectsUnknownExtension(t *testing.T) {
	_, err := convertFile("notes.txt", codegen.DefaultOptions())
	assert.Error(t, err)
}
