package java

import (
	"fmt"
	"slices"
	"strings"
)

type Class struct {
	name        string
	pkg         string
	imports     Imports
	implements  []TypeName
	annotations Annotations
	fields      fieldSet
	methods     []*Method
	generics    GenericParams
	modifiers   Modifiers
	superclass  *TypeName
}

// NewClass panics when name is empty. The package may be left empty and set
// later with SetPackage, but it must be present by the time the class is
// rendered.
func NewClass(name, pkg string) *Class {
	if name == "" {
		panic("java: NewClass called with an empty class name")
	}
	return &Class{name: name, pkg: pkg}
}

func (c *Class) Kind() ClassKind     { return ClassKindClass }
func (c *Class) SimpleName() string  { return c.name }
func (c *Class) PackageName() string { return c.pkg }

func (c *Class) Modifier(m Modifier) *Class {
	c.modifiers = append(c.modifiers, m)
	return c
}

func (c *Class) Modifiers(ms ...Modifier) *Class {
	c.modifiers = append(c.modifiers, ms...)
	return c
}

func (c *Class) Public() *Class    { return c.Modifier(Public) }
func (c *Class) Private() *Class   { return c.Modifier(Private) }
func (c *Class) Protected() *Class { return c.Modifier(Protected) }
func (c *Class) Static() *Class    { return c.Modifier(Static) }
func (c *Class) Abstract() *Class  { return c.Modifier(Abstract) }
func (c *Class) Final() *Class     { return c.Modifier(Final) }

func (c *Class) GenericParam(g string) *Class {
	if g == "" {
		panic("java: empty generic parameter")
	}
	c.generics = append(c.generics, g)
	return c
}

func (c *Class) GenericParams(gs ...string) *Class {
	for _, g := range gs {
		c.GenericParam(g)
	}
	return c
}

func (c *Class) Import(i Import) *Class {
	c.imports = append(c.imports, i)
	return c
}

func (c *Class) Imports(is ...Import) *Class {
	c.imports = append(c.imports, is...)
	return c
}

// Field adds f, replacing any field that already has the same name.
func (c *Class) Field(f *Field) *Class {
	c.fields.put(f)
	return c
}

func (c *Class) Fields(fs ...*Field) *Class {
	for _, f := range fs {
		c.fields.put(f)
	}
	return c
}

func (c *Class) Annotation(a Annotation) *Class {
	c.annotations = append(c.annotations, a)
	return c
}

func (c *Class) Annotations(as ...Annotation) *Class {
	c.annotations = append(c.annotations, as...)
	return c
}

func (c *Class) Implements(t TypeName) *Class {
	c.implements = append(c.implements, t)
	return c
}

func (c *Class) Extends(t TypeName) *Class {
	c.superclass = &t
	return c
}

func (c *Class) Method(m *Method) *Class {
	c.methods = append(c.methods, m)
	return c
}

func (c *Class) Methods(ms ...*Method) *Class {
	c.methods = append(c.methods, ms...)
	return c
}

func (c *Class) Package(pkg string) *Class {
	c.pkg = pkg
	return c
}

// SetPackage assigns the package in place, for multi-pass generation where
// the final package is only known after other declarations are built.
func (c *Class) SetPackage(pkg string) {
	c.pkg = pkg
}

func (c *Class) ClassName(name string) *Class {
	if name == "" {
		panic("java: empty class name")
	}
	c.name = name
	return c
}

// HasMethod reports whether a method with the given name was added.
func (c *Class) HasMethod(name string) bool {
	return slices.ContainsFunc(c.methods, func(m *Method) bool { return m.name == name })
}

// Clone returns a deep copy that can be modified independently.
func (c *Class) Clone() *Class {
	clone := &Class{
		name:        c.name,
		pkg:         c.pkg,
		imports:     slices.Clone(c.imports),
		annotations: c.annotations.clone(),
		fields:      c.fields.clone(),
		generics:    c.generics.clone(),
		modifiers:   c.modifiers.clone(),
	}
	for _, t := range c.implements {
		clone.implements = append(clone.implements, t.clone())
	}
	for _, m := range c.methods {
		clone.methods = append(clone.methods, m.clone())
	}
	if c.superclass != nil {
		super := c.superclass.clone()
		clone.superclass = &super
	}
	return clone
}

func (c *Class) Advisories() []string {
	var advisories []string
	if len(c.imports) == 0 {
		advisories = append(advisories, fmt.Sprintf("class %s has no imports, you might have forgotten them", c.name))
	}
	if len(c.modifiers) == 0 {
		advisories = append(advisories, fmt.Sprintf("class %s has no modifiers, you might want to make it public", c.name))
	}
	return advisories
}

// GenerateCode renders the class as a complete compilation unit: package,
// imports, annotations, header, fields in insertion order, then methods.
func (c *Class) GenerateCode() (string, error) {
	if c.pkg == "" {
		return "", fmt.Errorf("%w: class %s", ErrMissingPackage, c.name)
	}
	for _, advisory := range c.Advisories() {
		log.Warning(advisory, "class", c.name)
	}
	mods, err := c.modifiers.Render()
	if err != nil {
		return "", fmt.Errorf("class %s: %w", c.name, err)
	}

	var sb strings.Builder
	sb.WriteString("package ")
	sb.WriteString(c.pkg)
	sb.WriteString(";\n\n")
	sb.WriteString(c.imports.Render())
	sb.WriteString("\n")
	sb.WriteString(c.annotations.Render())

	header := joinWords(mods, "class", c.name+strings.TrimSpace(c.generics.Render()))
	if c.superclass != nil {
		header = joinWords(header, "extends", c.superclass.Render())
	}
	header = joinWords(header, renderImplements(c.implements))
	sb.WriteString(header)
	sb.WriteString(" {\n")

	for _, f := range c.fields.list() {
		code, err := f.GenerateCode()
		if err != nil {
			return "", fmt.Errorf("class %s: %w", c.name, err)
		}
		sb.WriteString(code)
	}
	for _, m := range c.methods {
		code, err := m.GenerateCode()
		if err != nil {
			return "", fmt.Errorf("class %s: %w", c.name, err)
		}
		sb.WriteString("\n")
		sb.WriteString(code)
	}
	sb.WriteString("}\n")
	return sb.String(), nil
}
