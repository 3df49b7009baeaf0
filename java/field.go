package java

import (
	"fmt"
	"strings"
)

// Field is identified by its name alone: a class holds at most one field per
// name.
type Field struct {
	name        string
	typ         TypeName
	modifiers   Modifiers
	annotations Annotations
	initializer string
}

// NewField creates a private field.
func NewField(name string, typ TypeName) *Field {
	return NewFieldWith(name, typ, Private)
}

// NewFieldWith creates a field with a single explicit modifier.
func NewFieldWith(name string, typ TypeName, m Modifier) *Field {
	return &Field{
		name:      name,
		typ:       typ,
		modifiers: Modifiers{m},
	}
}

func (f *Field) Name() string             { return f.name }
func (f *Field) Type() TypeName           { return f.typ }
func (f *Field) Modifiers() Modifiers     { return f.modifiers.clone() }
func (f *Field) Annotations() Annotations { return f.annotations.clone() }
func (f *Field) Initializer() string      { return f.initializer }

func (f *Field) Modifier(m Modifier) *Field {
	f.modifiers = append(f.modifiers, m)
	return f
}

// SetModifiers replaces every modifier of the field.
func (f *Field) SetModifiers(ms ...Modifier) *Field {
	f.modifiers = Modifiers(ms).clone()
	return f
}

// access replaces whatever access modifier the field has. Conflicting access
// modifiers can still be set explicitly through Modifier or SetModifiers.
func (f *Field) access(m Modifier) *Field {
	f.modifiers = append(f.modifiers.Without(Public, Private, Protected), m)
	return f
}

func (f *Field) Public() *Field    { return f.access(Public) }
func (f *Field) Private() *Field   { return f.access(Private) }
func (f *Field) Protected() *Field { return f.access(Protected) }
func (f *Field) Static() *Field    { return f.Modifier(Static) }
func (f *Field) Final() *Field     { return f.Modifier(Final) }

func (f *Field) Annotation(a Annotation) *Field {
	f.annotations = append(f.annotations, a)
	return f
}

// Init sets the initializer expression, written without a semicolon.
func (f *Field) Init(expr string) *Field {
	f.initializer = expr
	return f
}

// Equal reports whether both fields have the same name.
func (f *Field) Equal(other *Field) bool {
	return other != nil && f.name == other.name
}

// GenerateCode renders the field indented for a class body:
// annotations on their own lines, then "modifiers Type name = init;".
func (f *Field) GenerateCode() (string, error) {
	mods, err := f.modifiers.Render()
	if err != nil {
		return "", fmt.Errorf("field %s: %w", f.name, err)
	}

	var sb strings.Builder
	for _, a := range f.annotations {
		sb.WriteString(fieldIndent)
		sb.WriteString(a.Render())
	}
	sb.WriteString(fieldIndent)
	sb.WriteString(joinWords(mods, f.typ.Render(), f.name))
	if f.initializer != "" {
		sb.WriteString(" = ")
		sb.WriteString(f.initializer)
	}
	sb.WriteString(";\n")
	return sb.String(), nil
}

func (f *Field) clone() *Field {
	return &Field{
		name:        f.name,
		typ:         f.typ.clone(),
		modifiers:   f.modifiers.clone(),
		annotations: f.annotations.clone(),
		initializer: f.initializer,
	}
}

// fieldSet keeps fields in insertion order, keyed by name. Putting a field
// whose name is already present replaces it in place.
type fieldSet struct {
	order []*Field
	index map[string]int
}

func (s *fieldSet) put(f *Field) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[f.name]; ok {
		s.order[i] = f
		return
	}
	s.index[f.name] = len(s.order)
	s.order = append(s.order, f)
}

func (s *fieldSet) list() []*Field {
	return s.order
}

func (s *fieldSet) clone() fieldSet {
	var result fieldSet
	for _, f := range s.order {
		result.put(f.clone())
	}
	return result
}

// Parameter is a method parameter. Parameters are positional; names are not
// checked for collisions.
type Parameter struct {
	Name        string
	Type        TypeName
	Annotations Annotations
}

func Param(typ TypeName, name string) Parameter {
	return Parameter{Name: name, Type: typ}
}

func (p Parameter) Annotation(a Annotation) Parameter {
	p.Annotations = append(p.Annotations.clone(), a)
	return p
}

func (p Parameter) Render() string {
	parts := make([]string, 0, len(p.Annotations)+2)
	for _, a := range p.Annotations {
		parts = append(parts, a.inline())
	}
	parts = append(parts, p.Type.Render(), p.Name)
	return joinWords(parts...)
}

func (p Parameter) clone() Parameter {
	return Parameter{Name: p.Name, Type: p.Type.clone(), Annotations: p.Annotations.clone()}
}

type Parameters []Parameter

// Render returns the parenthesised, comma separated parameter list.
func (ps Parameters) Render() string {
	rendered := make([]string, len(ps))
	for i, p := range ps {
		rendered[i] = p.Render()
	}
	return "(" + strings.Join(rendered, ", ") + ")"
}

func (ps Parameters) clone() Parameters {
	if ps == nil {
		return nil
	}
	result := make(Parameters, len(ps))
	for i, p := range ps {
		result[i] = p.clone()
	}
	return result
}
