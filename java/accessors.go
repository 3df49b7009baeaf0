package java

import (
	"github.com/go-openapi/inflect"
	"github.com/iancoleman/strcase"
)

var collectionTypes = map[string]bool{
	"List":       true,
	"Set":        true,
	"Collection": true,
}

// Accessors adds a public getter and setter for every non-static field that
// does not already have one. Final fields only get a getter. Collection
// fields with a plural name also get an adder for a single element.
func (c *Class) Accessors() *Class {
	for _, f := range c.fields.list() {
		if f.modifiers.Contains(Static) {
			continue
		}
		suffix := strcase.ToCamel(f.name)

		getter := "get" + suffix
		if f.typ.Name == "boolean" {
			getter = "is" + suffix
		}
		if !c.HasMethod(getter) {
			c.Method(NewMethod(f.typ.clone(), getter).
				Public().
				Code("return this." + f.name + ";"))
		}

		c.adder(f)

		setter := "set" + suffix
		if f.modifiers.Contains(Final) || c.HasMethod(setter) {
			continue
		}
		c.Method(NewMethod(T("void"), setter).
			Public().
			Param(Param(f.typ.clone(), f.name)).
			Code("this." + f.name + " = " + f.name + ";"))
	}
	return c
}

func (c *Class) adder(f *Field) {
	if !collectionTypes[f.typ.Name] || len(f.typ.Generics) != 1 {
		return
	}
	singular := inflect.Singularize(f.name)
	if singular == f.name {
		return
	}
	name := "add" + strcase.ToCamel(singular)
	if c.HasMethod(name) {
		return
	}
	c.Method(NewMethod(T("void"), name).
		Public().
		Param(Param(T(f.typ.Generics[0]), singular)).
		Code("this." + f.name + ".add(" + singular + ");"))
}
