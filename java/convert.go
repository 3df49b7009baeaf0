package java

import "strings"

// AsType references the class by name, carrying its generic parameters.
func (c *Class) AsType() TypeName {
	return TypeName{Name: c.name, Generics: c.generics.clone()}
}

func (i *Interface) AsType() TypeName {
	return TypeName{Name: i.name, Generics: i.generics.clone()}
}

func (e *Enum) AsType() TypeName {
	return T(e.name)
}

// AsField embeds the type as a field named after its lowercased name, with no
// modifiers.
func (t TypeName) AsField() *Field {
	return &Field{name: strings.ToLower(t.Name), typ: t.clone()}
}

// AsParameter turns the type into a parameter named after its lowercased name.
func (t TypeName) AsParameter() Parameter {
	return Param(t.clone(), strings.ToLower(t.Name))
}

func (c *Class) AsField() *Field     { return c.AsType().AsField() }
func (i *Interface) AsField() *Field { return i.AsType().AsField() }
func (e *Enum) AsField() *Field      { return e.AsType().AsField() }
