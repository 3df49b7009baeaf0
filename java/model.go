package java

import "github.com/tliron/commonlog"

var log = commonlog.GetLogger("javagen.java")

type ClassKind string

const (
	ClassKindClass     ClassKind = "class"
	ClassKindInterface ClassKind = "interface"
	ClassKindEnum      ClassKind = "enum"
)

// Codegen is implemented by every element that renders to Java source.
type Codegen interface {
	GenerateCode() (string, error)
}

// Declaration is a top-level type that becomes one .java file.
type Declaration interface {
	Codegen
	Kind() ClassKind
	SimpleName() string
	PackageName() string
	// Advisories lists style problems that do not prevent rendering.
	Advisories() []string
	Model() ClassModel
}

// MustGenerateCode renders c and panics on failure.
func MustGenerateCode(c Codegen) string {
	code, err := c.GenerateCode()
	if err != nil {
		panic(err)
	}
	return code
}

var (
	_ Declaration = (*Class)(nil)
	_ Declaration = (*Interface)(nil)
	_ Declaration = (*Enum)(nil)
	_ Codegen     = (*Method)(nil)
	_ Codegen     = (*Field)(nil)
)

// ClassModel is a read-only snapshot of a declaration, used by encoders that
// describe a declaration without rendering it.
type ClassModel struct {
	Name          string
	SimpleName    string
	Package       string
	Kind          ClassKind
	Modifiers     []string
	SuperClass    string
	Interfaces    []string
	TypeParams    []string
	Imports       []string
	Annotations   []string
	EnumConstants []EnumConstantModel
	Fields        []FieldModel
	Methods       []MethodModel
}

type EnumConstantModel struct {
	Name      string
	Arguments string
}

type FieldModel struct {
	Name        string
	Type        string
	Modifiers   []string
	Annotations []string
	Initializer string
}

type MethodModel struct {
	Name        string
	ReturnType  string
	Parameters  []ParameterModel
	Modifiers   []string
	TypeParams  []string
	Annotations []string
	IsAbstract  bool
	HasBody     bool
}

type ParameterModel struct {
	Name        string
	Type        string
	Annotations []string
}

func qualifiedName(pkg, name string) string {
	if pkg == "" {
		return name
	}
	return pkg + "." + name
}

func modifierNames(ms Modifiers) []string {
	var names []string
	for _, m := range ms.Canonical() {
		names = append(names, m.String())
	}
	return names
}

func annotationNames(as Annotations) []string {
	var names []string
	for _, a := range as {
		names = append(names, a.Name)
	}
	return names
}

func importNames(is Imports) []string {
	var names []string
	for _, i := range is {
		names = append(names, qualifiedName(i.Package, i.Class))
	}
	return names
}

func fieldModel(f *Field) FieldModel {
	return FieldModel{
		Name:        f.name,
		Type:        f.typ.String(),
		Modifiers:   modifierNames(f.modifiers),
		Annotations: annotationNames(f.annotations),
		Initializer: f.initializer,
	}
}

func methodModel(m *Method) MethodModel {
	mm := MethodModel{
		Name:        m.name,
		ReturnType:  m.returnType.String(),
		Modifiers:   modifierNames(m.modifiers),
		TypeParams:  m.generics.clone(),
		Annotations: annotationNames(m.annotations),
		IsAbstract:  m.IsAbstract(),
		HasBody:     m.body != "",
	}
	for _, p := range m.params {
		mm.Parameters = append(mm.Parameters, ParameterModel{
			Name:        p.Name,
			Type:        p.Type.String(),
			Annotations: annotationNames(p.Annotations),
		})
	}
	return mm
}

func (c *Class) Model() ClassModel {
	cm := ClassModel{
		Name:        qualifiedName(c.pkg, c.name),
		SimpleName:  c.name,
		Package:     c.pkg,
		Kind:        ClassKindClass,
		Modifiers:   modifierNames(c.modifiers),
		TypeParams:  c.generics.clone(),
		Imports:     importNames(c.imports),
		Annotations: annotationNames(c.annotations),
	}
	if c.superclass != nil {
		cm.SuperClass = c.superclass.String()
	}
	for _, t := range c.implements {
		cm.Interfaces = append(cm.Interfaces, t.String())
	}
	for _, f := range c.fields.list() {
		cm.Fields = append(cm.Fields, fieldModel(f))
	}
	for _, m := range c.methods {
		cm.Methods = append(cm.Methods, methodModel(m))
	}
	return cm
}

func (i *Interface) Model() ClassModel {
	cm := ClassModel{
		Name:        qualifiedName(i.pkg, i.name),
		SimpleName:  i.name,
		Package:     i.pkg,
		Kind:        ClassKindInterface,
		Modifiers:   modifierNames(Modifiers{i.modifier}),
		TypeParams:  i.generics.clone(),
		Imports:     importNames(i.imports),
		Annotations: annotationNames(i.annotations),
	}
	if i.superclass != nil {
		cm.SuperClass = i.superclass.String()
	}
	for _, m := range i.methods {
		cm.Methods = append(cm.Methods, methodModel(m))
	}
	return cm
}

func (e *Enum) Model() ClassModel {
	cm := ClassModel{
		Name:        qualifiedName(e.pkg, e.name),
		SimpleName:  e.name,
		Package:     e.pkg,
		Kind:        ClassKindEnum,
		Modifiers:   modifierNames(e.modifiers),
		Imports:     importNames(e.imports),
		Annotations: annotationNames(e.annotations),
	}
	for _, c := range e.constants {
		cm.EnumConstants = append(cm.EnumConstants, EnumConstantModel{Name: c.Name, Arguments: c.Args})
	}
	return cm
}
