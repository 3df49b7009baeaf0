package lsp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDiagnoseJava(t *testing.T) {
	ctx := context.Background()

	ok := Diagnose(ctx, "A.java", []byte("package a;\npublic class A {}\n"))
	assert.NotNil(t, ok)
	assert.Empty(t, ok)

	bad := Diagnose(ctx, "A.java", []byte("package a;\npublic class A {\n    int x\n}\n"))
	require.NotEmpty(t, bad)
	for _, d := range bad {
		assert.Equal(t, protocol.DiagnosticSeverityError, *d.Severity)
		assert.Equal(t, "javagen", *d.Source)
	}
}

func TestDiagnoseDeclarations(t *testing.T) {
	ctx := context.Background()

	clean := Diagnose(ctx, "shop.yaml", []byte("package: p\nclasses:\n  - name: A\n    modifiers: [public]\n    imports: [java.util.List]\n"))
	assert.Empty(t, clean)

	advisory := Diagnose(ctx, "shop.yml", []byte("package: p\nclasses: [{name: A}]\n"))
	require.Len(t, advisory, 2)
	assert.Equal(t, protocol.DiagnosticSeverityWarning, *advisory[0].Severity)

	conflict := Diagnose(ctx, "shop.yaml", []byte("package: p\nclasses: [{name: A, modifiers: [public, private], imports: [x.Y]}]\n"))
	require.Len(t, conflict, 1)
	assert.Contains(t, conflict[0].Message, "conflicting")

	broken := Diagnose(ctx, "shop.yaml", []byte("package: p\nclasses:\n  - name: [\n"))
	require.Len(t, broken, 1)
	assert.Equal(t, protocol.DiagnosticSeverityError, *broken[0].Severity)
}

func TestDiagnoseOtherFiles(t *testing.T) {
	d := Diagnose(context.Background(), "README.md", []byte("# hi"))
	assert.NotNil(t, d)
	assert.Empty(t, d)
}

func TestURIToPath(t *testing.T) {
	path, err := uriToPath("file:///tmp/a%20b/A.java")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/a b/A.java", path)

	path, err = uriToPath("A.java")
	require.NoError(t, err)
	assert.Equal(t, "A.java", path)
}
