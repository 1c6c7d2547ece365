package fusion

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csfuse/fusion/csharp"
)

func writeSource(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestFuser_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "Class1.cs", "namespace Foo { class A {} }")
	writeSource(t, dir, "Class2.cs", "namespace Foo { class B {} }")
	writeSource(t, dir, "Sub/Feature.cs", "namespace Foo.Sub { class C {} }")

	output := filepath.Join(dir, "Fused.cs")
	result, err := New().Fuse(context.Background(), Options{
		InputDir:   dir,
		OutputPath: output,
		Recursive:  true,
		Annotate:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Foo", result.RootNamespace)
	assert.Equal(t, 3, result.Files)
	assert.Equal(t, 3, result.Declarations)
	assert.Equal(t, output, result.OutputPath)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	text := string(content)

	// exactly one namespace block remains
	assert.Equal(t, 1, strings.Count(text, "namespace "))
	assert.Contains(t, text, "namespace Foo")

	posA := strings.Index(text, "class A")
	posB := strings.Index(text, "class B")
	posC := strings.Index(text, "class C")
	require.True(t, posA >= 0 && posB >= 0 && posC >= 0)
	assert.True(t, posA < posB && posB < posC, "declarations keep discovery order")

	assert.Contains(t, text, "// Class1.cs")
	assert.Contains(t, text, "// Class2.cs")
	assert.Contains(t, text, "// Feature.cs")
	assert.True(t, strings.Index(text, "// Class1.cs") < posA)
}

func TestFuser_IdempotentModuloTimestamp(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "Class1.cs", "namespace Foo { class A {} }")

	options := Options{
		InputDir:   dir,
		OutputPath: filepath.Join(dir, "Fused.cs"),
		Recursive:  true,
		Annotate:   true,
		Banner:     Banner{GeneratedAt: time.Unix(1700000000, 0)},
	}

	fuser := New()
	first, err := fuser.Fuse(context.Background(), options)
	require.NoError(t, err)
	firstContent, err := os.ReadFile(first.OutputPath)
	require.NoError(t, err)

	// second run must not pick up the previous output as an input
	second, err := fuser.Fuse(context.Background(), options)
	require.NoError(t, err)
	secondContent, err := os.ReadFile(second.OutputPath)
	require.NoError(t, err)

	assert.Equal(t, firstContent, secondContent)
	assert.Equal(t, first.Fingerprint, second.Fingerprint)
	assert.Equal(t, first.Files, second.Files)
}

func TestFuser_GeneratedFilesExcluded(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "Class1.cs", "namespace Foo { class A {} }")
	writeSource(t, dir, "Form1.Designer.cs", "namespace Foo { class Designed {} }")

	result, err := New().Fuse(context.Background(), Options{
		InputDir:   dir,
		OutputPath: filepath.Join(dir, "Fused.cs"),
		Recursive:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Files)

	content, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "class Designed")
}

func TestFuser_ImportsMergedAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "One.cs", "using System;\nusing Xunit;\nnamespace Foo { class A {} }")
	writeSource(t, dir, "Two.cs", "using System;\nusing System.Text;\nnamespace Foo { class B {} }")

	result, err := New().Fuse(context.Background(), Options{
		InputDir:   dir,
		OutputPath: filepath.Join(dir, "Fused.cs"),
		Recursive:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Imports)

	content, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	text := string(content)

	posSystem := strings.Index(text, "using System;")
	posText := strings.Index(text, "using System.Text;")
	posXunit := strings.Index(text, "using Xunit;")
	require.True(t, posSystem >= 0 && posText >= 0 && posXunit >= 0)
	assert.True(t, posText < posSystem, "ordinal order within the System partition")
	assert.True(t, posSystem < posXunit, "System partition precedes the rest")
}

func TestFuser_DerivesOutputFromRoot(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "Class1.cs", "namespace Foo { class A {} }")

	result, err := New().Fuse(context.Background(), Options{
		InputDir:  dir,
		Root:      "Combined",
		Recursive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Combined", result.RootNamespace)
	assert.Equal(t, filepath.Join(dir, "Combined.cs"), result.OutputPath)

	_, err = os.Stat(result.OutputPath)
	assert.NoError(t, err)
}

func TestFuser_InputDirMissing(t *testing.T) {
	_, err := New().Fuse(context.Background(), Options{
		InputDir:   filepath.Join(t.TempDir(), "absent"),
		OutputPath: "out.cs",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInputNotFound))
}

func TestFuser_UsageErrorWithoutOutputTarget(t *testing.T) {
	dir := t.TempDir()
	_, err := New().Fuse(context.Background(), Options{InputDir: dir})
	require.Error(t, err)

	var usage *UsageError
	assert.True(t, errors.As(err, &usage))
}

func TestFuser_SyntaxErrorWritesNothing(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "Broken.cs", "class A {")

	output := filepath.Join(dir, "Fused.cs")
	_, err := New().Fuse(context.Background(), Options{
		InputDir:   dir,
		OutputPath: output,
		Recursive:  true,
	})
	require.Error(t, err)

	var syntaxErr *csharp.SyntaxError
	assert.True(t, errors.As(err, &syntaxErr))

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "no partial output on parse failure")
}
