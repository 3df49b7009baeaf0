package java

import (
	"strings"
)

type Import struct {
	Package  string
	Class    string
	IsStatic bool
}

func NewImport(pkg, class string) Import {
	return Import{Package: pkg, Class: class}
}

// ImportOf splits a qualified name such as "java.util.List" at its last dot.
func ImportOf(qualified string) Import {
	i := strings.LastIndexByte(qualified, '.')
	if i < 0 {
		return Import{Class: qualified}
	}
	return Import{Package: qualified[:i], Class: qualified[i+1:]}
}

func (i Import) Static() Import {
	i.IsStatic = true
	return i
}

func (i Import) Render() string {
	target := i.Class
	if i.Package != "" {
		target = i.Package + "." + i.Class
	}
	if i.IsStatic {
		return "import static " + target + ";\n"
	}
	return "import " + target + ";\n"
}

// Imports are rendered in the order given. Duplicates are kept.
type Imports []Import

func (is Imports) Render() string {
	var sb strings.Builder
	sb.WriteString("\n")
	for _, i := range is {
		sb.WriteString(i.Render())
	}
	return sb.String()
}
