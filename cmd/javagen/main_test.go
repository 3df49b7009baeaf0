package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderWritesFiles(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "render", "testdata/geo.yaml", "-o", dir, "--verify")
	require.NoError(t, err, out)

	pkgDir := filepath.Join(dir, "src", "main", "java", "com", "example", "geo")
	for _, name := range []string{"Point.java", "Shape.java", "Axis.java"} {
		path := filepath.Join(pkgDir, name)
		assert.FileExists(t, path)
		assert.Contains(t, out, path)
	}

	data, err := os.ReadFile(filepath.Join(pkgDir, "Point.java"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "public int getX() {\n\treturn this.x;\n}\n")

	out, err = run(t, "check", "--root", dir)
	assert.NoError(t, err, out)
}

func TestRenderStdout(t *testing.T) {
	out, err := run(t, "render", "testdata/geo.yaml", "--stdout")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "package com.example.geo;"))
	assert.Contains(t, out, "public interface Shape {\n\tdouble area();\n}\n")
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := run(t, "render", "testdata/geo.yaml", "--stdout", "--format", "xml")
	assert.Error(t, err)
}

func TestOutline(t *testing.T) {
	out, err := run(t, "outline", "testdata/geo.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "class\tcom.example.geo.Point\tpublic\n")
	assert.Contains(t, out, "method\tsetY\tvoid\t(int y)\tpublic\t\n")
	assert.Contains(t, out, "enum\tcom.example.geo.Axis\tpublic\nconstant\tX\t\n")
}

func TestCheckReportsErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "Bad.java")
	require.NoError(t, os.WriteFile(bad, []byte("package a;\nclass Bad {\n    int x\n}\n"), 0o644))

	out, err := run(t, "check", bad)
	require.Error(t, err)
	assert.Contains(t, out, "Bad.java:")
}
