package java

import (
	"fmt"
	"slices"
	"strings"
)

// Interface declares method signatures only. It carries a single modifier
// and at most one extended interface.
type Interface struct {
	name        string
	pkg         string
	imports     Imports
	annotations Annotations
	superclass  *TypeName
	methods     []*Method
	modifier    Modifier
	generics    GenericParams
}

// NewInterface panics when name is empty. The modifier defaults to public.
func NewInterface(name, pkg string) *Interface {
	if name == "" {
		panic("java: NewInterface called with an empty interface name")
	}
	return &Interface{name: name, pkg: pkg, modifier: Public}
}

func (i *Interface) Kind() ClassKind      { return ClassKindInterface }
func (i *Interface) SimpleName() string   { return i.name }
func (i *Interface) PackageName() string  { return i.pkg }
func (i *Interface) Advisories() []string { return nil }

// Modifier replaces the interface modifier.
func (i *Interface) Modifier(m Modifier) *Interface {
	i.modifier = m
	return i
}

func (i *Interface) Public() *Interface    { return i.Modifier(Public) }
func (i *Interface) Private() *Interface   { return i.Modifier(Private) }
func (i *Interface) Protected() *Interface { return i.Modifier(Protected) }
func (i *Interface) Abstract() *Interface  { return i.Modifier(Abstract) }
func (i *Interface) Static() *Interface    { return i.Modifier(Static) }
func (i *Interface) Final() *Interface     { return i.Modifier(Final) }

func (i *Interface) Extends(t TypeName) *Interface {
	i.superclass = &t
	return i
}

func (i *Interface) Method(m *Method) *Interface {
	i.methods = append(i.methods, m)
	return i
}

func (i *Interface) Methods(ms ...*Method) *Interface {
	i.methods = append(i.methods, ms...)
	return i
}

func (i *Interface) Import(imp Import) *Interface {
	i.imports = append(i.imports, imp)
	return i
}

func (i *Interface) Imports(is ...Import) *Interface {
	i.imports = append(i.imports, is...)
	return i
}

func (i *Interface) Annotation(a Annotation) *Interface {
	i.annotations = append(i.annotations, a)
	return i
}

func (i *Interface) GenericParam(g string) *Interface {
	if g == "" {
		panic("java: empty generic parameter")
	}
	i.generics = append(i.generics, g)
	return i
}

func (i *Interface) Package(pkg string) *Interface {
	i.pkg = pkg
	return i
}

func (i *Interface) SetPackage(pkg string) {
	i.pkg = pkg
}

func (i *Interface) GenerateCode() (string, error) {
	if i.pkg == "" {
		return "", fmt.Errorf("%w: interface %s", ErrMissingPackage, i.name)
	}
	for _, m := range i.methods {
		if m.body != "" {
			return "", fmt.Errorf("%w: %s.%s", ErrInterfaceMethodBody, i.name, m.name)
		}
	}
	mod, err := Modifiers{i.modifier}.Render()
	if err != nil {
		return "", fmt.Errorf("interface %s: %w", i.name, err)
	}

	var sb strings.Builder
	sb.WriteString("package ")
	sb.WriteString(i.pkg)
	sb.WriteString(";\n")
	sb.WriteString(i.imports.Render())
	sb.WriteString(i.annotations.Render())

	header := joinWords(mod, "interface", i.name+strings.TrimSpace(i.generics.Render()))
	if i.superclass != nil {
		header = joinWords(header, "extends", i.superclass.Render())
	}
	sb.WriteString(header)
	sb.WriteString(" {\n")

	for _, m := range i.methods {
		sig, err := m.signature()
		if err != nil {
			return "", fmt.Errorf("interface %s: %w", i.name, err)
		}
		for _, a := range m.annotations {
			sb.WriteString("\t")
			sb.WriteString(a.Render())
		}
		sb.WriteString("\t")
		sb.WriteString(sig)
		sb.WriteString(";\n")
	}
	sb.WriteString("}\n")
	return sb.String(), nil
}

// Implementation builds a skeletal <Name>Impl class in the same package that
// implements the interface. Every method is copied as a public @Override with
// an empty body for the caller to fill in.
func (i *Interface) Implementation() *Class {
	impl := NewClass(i.name+"Impl", i.pkg).
		Public().
		Imports(slices.Clone(i.imports)...).
		Implements(i.AsType())
	for _, g := range i.generics {
		impl.GenericParam(g)
	}
	for _, m := range i.methods {
		cp := m.clone()
		cp.modifiers = append(cp.modifiers.Without(Abstract, Static, Public, Private, Protected), Public)
		if !cp.annotations.Contains("Override") {
			cp.annotations = append(Annotations{Override()}, cp.annotations...)
		}
		cp.body = ""
		impl.Method(cp)
	}
	return impl
}
