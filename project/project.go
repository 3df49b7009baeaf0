package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/javagen/java"
)

var log = commonlog.GetLogger("javagen.project")

// DefaultSourceDir is the Maven source root.
const DefaultSourceDir = "src/main/java"

// Layout maps declarations to files below a project root.
type Layout struct {
	Root      string
	SourceDir string
}

// NewLayout returns a layout rooted at root using the Maven source directory.
func NewLayout(root string) Layout {
	return Layout{Root: root, SourceDir: DefaultSourceDir}
}

// SourceRoot is the directory that holds the package folders.
func (l Layout) SourceRoot() string {
	return filepath.Join(l.Root, filepath.FromSlash(l.SourceDir))
}

// PackageDir returns the folder for a dotted package name.
func (l Layout) PackageDir(pkg string) string {
	if pkg == "" {
		return l.SourceRoot()
	}
	return filepath.Join(l.SourceRoot(), filepath.Join(strings.Split(pkg, ".")...))
}

// PathFor returns Root/SourceDir/<package folders>/<SimpleName>.java.
func (l Layout) PathFor(decl java.Declaration) string {
	return l.pathWithExt(decl, ".java")
}

func (l Layout) pathWithExt(decl java.Declaration, ext string) string {
	return filepath.Join(l.PackageDir(decl.PackageName()), decl.SimpleName()+ext)
}

// JavaFiles returns all .java files below the source root, recursively.
func (l Layout) JavaFiles() ([]string, error) {
	var files []string

	root := l.SourceRoot()
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".java") {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan java files in %s: %w", root, err)
	}

	return files, nil
}

// EnsureDir creates the directory for a package if it doesn't exist.
func (l Layout) EnsureDir(pkg string) error {
	dir := l.PackageDir(pkg)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	return nil
}
