package java

import (
	"fmt"
	"strings"
)

// EnumConstant is rendered as Name(Args).
type EnumConstant struct {
	Name string
	Args string
}

// Enum holds constants with constructor arguments only; enum bodies with
// fields or methods are not modeled.
type Enum struct {
	name        string
	pkg         string
	constants   []EnumConstant
	modifiers   Modifiers
	imports     Imports
	annotations Annotations
}

func NewEnum(name, pkg string) *Enum {
	if name == "" {
		panic("java: NewEnum called with an empty enum name")
	}
	return &Enum{name: name, pkg: pkg}
}

func (e *Enum) Kind() ClassKind     { return ClassKindEnum }
func (e *Enum) SimpleName() string  { return e.name }
func (e *Enum) PackageName() string { return e.pkg }

func (e *Enum) Advisories() []string {
	if len(e.modifiers) == 0 {
		return []string{fmt.Sprintf("enum %s has no modifiers, you might want to make it public", e.name)}
	}
	return nil
}

func (e *Enum) Constant(name, args string) *Enum {
	e.constants = append(e.constants, EnumConstant{Name: name, Args: args})
	return e
}

func (e *Enum) Constants(cs ...EnumConstant) *Enum {
	e.constants = append(e.constants, cs...)
	return e
}

func (e *Enum) Modifier(m Modifier) *Enum {
	e.modifiers = append(e.modifiers, m)
	return e
}

func (e *Enum) Modifiers(ms ...Modifier) *Enum {
	e.modifiers = append(e.modifiers, ms...)
	return e
}

func (e *Enum) Public() *Enum    { return e.Modifier(Public) }
func (e *Enum) Private() *Enum   { return e.Modifier(Private) }
func (e *Enum) Protected() *Enum { return e.Modifier(Protected) }
func (e *Enum) Static() *Enum    { return e.Modifier(Static) }
func (e *Enum) Final() *Enum     { return e.Modifier(Final) }
func (e *Enum) Abstract() *Enum  { return e.Modifier(Abstract) }

func (e *Enum) Import(i Import) *Enum {
	e.imports = append(e.imports, i)
	return e
}

func (e *Enum) Imports(is ...Import) *Enum {
	e.imports = append(e.imports, is...)
	return e
}

func (e *Enum) Annotation(a Annotation) *Enum {
	e.annotations = append(e.annotations, a)
	return e
}

func (e *Enum) Package(pkg string) *Enum {
	e.pkg = pkg
	return e
}

func (e *Enum) SetPackage(pkg string) {
	e.pkg = pkg
}

func (e *Enum) GenerateCode() (string, error) {
	if e.pkg == "" {
		return "", fmt.Errorf("%w: enum %s", ErrMissingPackage, e.name)
	}
	for _, advisory := range e.Advisories() {
		log.Warning(advisory, "enum", e.name)
	}
	mods, err := e.modifiers.Render()
	if err != nil {
		return "", fmt.Errorf("enum %s: %w", e.name, err)
	}

	var sb strings.Builder
	sb.WriteString("package ")
	sb.WriteString(e.pkg)
	sb.WriteString(";\n")
	sb.WriteString(e.imports.Render())
	sb.WriteString("\n")
	sb.WriteString(e.annotations.Render())
	sb.WriteString(joinWords(mods, "enum", e.name))
	sb.WriteString(" { \n")
	for i, c := range e.constants {
		sb.WriteString("\t")
		sb.WriteString(c.Name)
		sb.WriteString("(")
		sb.WriteString(c.Args)
		sb.WriteString(")")
		if i < len(e.constants)-1 {
			sb.WriteString(",")
		} else {
			sb.WriteString(";")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n}\n")
	return sb.String(), nil
}
