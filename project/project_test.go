package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/javagen/java"
)

func TestPathFor(t *testing.T) {
	l := NewLayout("/work/demo")
	c := java.NewClass("Customer", "org.javacodegen.rvtool")
	assert.Equal(t, filepath.FromSlash("/work/demo/src/main/java/org/javacodegen/rvtool/Customer.java"), l.PathFor(c))

	l.SourceDir = "src"
	e := java.NewEnum("Color", "")
	assert.Equal(t, filepath.FromSlash("/work/demo/src/Color.java"), l.PathFor(e))
}

func shop() []java.Declaration {
	return []java.Declaration{
		java.NewClass("Customer", "com.example.shop").Public().
			Import(java.ImportOf("java.util.List")).
			Field(java.NewField("name", java.T("String"))),
		java.NewInterface("CustomerRepository", "com.example.shop.repo").
			Method(java.NewMethod(java.T("Customer"), "findById").Param(java.Param(java.T("long"), "id"))),
		java.NewEnum("Status", "com.example.shop").Public().Constant("ACTIVE", ""),
	}
}

func TestWriteAll(t *testing.T) {
	root := t.TempDir()
	l := NewLayout(root)
	w := NewWriter(l).WithWorkers(2).WithVerify(true)

	paths, err := w.WriteAll(context.Background(), shop())
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Equal(t, filepath.Join(root, "src", "main", "java", "com", "example", "shop", "repo", "CustomerRepository.java"), paths[1])

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, java.MustGenerateCode(shop()[0]), string(data))

	files, err := l.JavaFiles()
	require.NoError(t, err)
	assert.ElementsMatch(t, paths, files)

	m := w.Metrics()
	assert.Equal(t, 3, m.FilesWritten)
	assert.Positive(t, m.TotalBytes)
}

func TestWriteAllIsAllOrNothing(t *testing.T) {
	root := t.TempDir()
	l := NewLayout(root)
	decls := append(shop(), java.NewClass("Broken", "com.example.shop").Public().Private())

	_, err := NewWriter(l).WriteAll(context.Background(), decls)
	require.ErrorIs(t, err, java.ErrConflictingModifiers)

	_, statErr := os.Stat(l.SourceRoot())
	assert.True(t, os.IsNotExist(statErr), "nothing should be written")
}

func TestWriteAllFormats(t *testing.T) {
	root := t.TempDir()
	paths, err := NewWriter(NewLayout(root)).WithFormat("json").WriteAll(context.Background(), shop()[:1])
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, ".json", filepath.Ext(paths[0]))

	_, err = NewWriter(NewLayout(root)).WithFormat("xml").WriteAll(context.Background(), shop())
	assert.Error(t, err)
}

func TestWriteAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewWriter(NewLayout(t.TempDir())).WriteAll(ctx, shop())
	assert.ErrorIs(t, err, context.Canceled)
}

func bulkDeclarations(n int) []java.Declaration {
	decls := make([]java.Declaration, 0, n)
	for i := 0; i < n; i++ {
		pkg := fmt.Sprintf("com.example.bulk.p%d", i%10)
		c := java.NewClass(fmt.Sprintf("Entity%d", i), pkg).Public().
			Import(java.ImportOf("java.util.List")).
			Annotation(java.NewAnnotation("Entity")).
			Field(java.NewField("id", java.T("long"))).
			Field(java.NewField("tags", java.T("List", "String"))).
			Method(java.NewMethod(java.T("long"), "getId").Code("return this.id;"))
		decls = append(decls, c)
	}
	return decls
}

func BenchmarkWriteAll(b *testing.B) {
	decls := bulkDeclarations(200)
	root := b.TempDir()
	w := NewWriter(NewLayout(root))
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := w.WriteAll(ctx, decls); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerateCode(b *testing.B) {
	decls := bulkDeclarations(200)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, d := range decls {
			if _, err := d.GenerateCode(); err != nil {
				b.Fatal(err)
			}
		}
	}
}
