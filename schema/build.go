package schema

import (
	"fmt"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/javagen/java"
)

var log = commonlog.GetLogger("javagen.schema")

// Declarations builds every class, interface and enum in file order.
// Declarations without their own package inherit the file's package.
func (f *File) Declarations() ([]java.Declaration, error) {
	var decls []java.Declaration
	for _, c := range f.Classes {
		class, err := c.build(f.Package)
		if err != nil {
			return nil, err
		}
		decls = append(decls, class)
	}
	for _, i := range f.Interfaces {
		iface, err := i.build(f.Package)
		if err != nil {
			return nil, err
		}
		decls = append(decls, iface)
		if i.Implementation {
			decls = append(decls, iface.Implementation())
		}
	}
	for _, e := range f.Enums {
		enum, err := e.build(f.Package)
		if err != nil {
			return nil, err
		}
		decls = append(decls, enum)
	}
	return decls, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func (c Class) build(pkg string) (*java.Class, error) {
	if c.Name == "" {
		return nil, fmt.Errorf("class: %w", ErrMissingName)
	}
	class := java.NewClass(c.Name, orDefault(c.Package, pkg))
	wrap := func(err error) error { return fmt.Errorf("class %s: %w", c.Name, err) }

	mods, err := parseModifiers(c.Modifiers)
	if err != nil {
		return nil, wrap(err)
	}
	class.Modifiers(mods...)
	class.Imports(parseImports(c.Imports)...)

	as, err := buildAnnotations(c.Annotations)
	if err != nil {
		return nil, wrap(err)
	}
	class.Annotations(as...)

	for _, g := range c.Generics {
		if g == "" {
			return nil, wrap(fmt.Errorf("empty generic parameter"))
		}
		class.GenericParam(g)
	}
	if c.Extends != "" {
		t, err := java.ParseTypeName(c.Extends)
		if err != nil {
			return nil, wrap(err)
		}
		class.Extends(t)
	}
	for _, s := range c.Implements {
		t, err := java.ParseTypeName(s)
		if err != nil {
			return nil, wrap(err)
		}
		class.Implements(t)
	}
	for _, fd := range c.Fields {
		field, err := fd.build()
		if err != nil {
			return nil, wrap(err)
		}
		class.Field(field)
	}
	for _, md := range c.Methods {
		method, err := md.build(c.Name)
		if err != nil {
			return nil, wrap(err)
		}
		class.Method(method)
	}
	if c.Accessors {
		class.Accessors()
	}
	return class, nil
}

func (i Interface) build(pkg string) (*java.Interface, error) {
	if i.Name == "" {
		return nil, fmt.Errorf("interface: %w", ErrMissingName)
	}
	iface := java.NewInterface(i.Name, orDefault(i.Package, pkg))
	wrap := func(err error) error { return fmt.Errorf("interface %s: %w", i.Name, err) }

	mods, err := parseModifiers(i.Modifiers)
	if err != nil {
		return nil, wrap(err)
	}
	switch len(mods) {
	case 0:
	case 1:
		iface.Modifier(mods[0])
	default:
		return nil, wrap(fmt.Errorf("an interface takes a single modifier, got %v", i.Modifiers))
	}
	iface.Imports(parseImports(i.Imports)...)

	as, err := buildAnnotations(i.Annotations)
	if err != nil {
		return nil, wrap(err)
	}
	for _, a := range as {
		iface.Annotation(a)
	}
	for _, g := range i.Generics {
		if g == "" {
			return nil, wrap(fmt.Errorf("empty generic parameter"))
		}
		iface.GenericParam(g)
	}
	if i.Extends != "" {
		t, err := java.ParseTypeName(i.Extends)
		if err != nil {
			return nil, wrap(err)
		}
		iface.Extends(t)
	}
	for _, md := range i.Methods {
		method, err := md.build(i.Name)
		if err != nil {
			return nil, wrap(err)
		}
		iface.Method(method)
	}
	return iface, nil
}

func (e Enum) build(pkg string) (*java.Enum, error) {
	if e.Name == "" {
		return nil, fmt.Errorf("enum: %w", ErrMissingName)
	}
	enum := java.NewEnum(e.Name, orDefault(e.Package, pkg))
	mods, err := parseModifiers(e.Modifiers)
	if err != nil {
		return nil, fmt.Errorf("enum %s: %w", e.Name, err)
	}
	enum.Modifiers(mods...)
	enum.Imports(parseImports(e.Imports)...)

	as, err := buildAnnotations(e.Annotations)
	if err != nil {
		return nil, fmt.Errorf("enum %s: %w", e.Name, err)
	}
	for _, a := range as {
		enum.Annotation(a)
	}
	for _, c := range e.Constants {
		if c.Name == "" {
			return nil, fmt.Errorf("enum %s: constant: %w", e.Name, ErrMissingName)
		}
		enum.Constant(c.Name, c.Args)
	}
	return enum, nil
}

func (fd Field) build() (*java.Field, error) {
	if fd.Name == "" {
		return nil, fmt.Errorf("field: %w", ErrMissingName)
	}
	typ, err := java.ParseTypeName(fd.Type)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", fd.Name, err)
	}
	field := java.NewField(fd.Name, typ)
	if fd.Modifiers != nil {
		mods, err := parseModifiers(fd.Modifiers)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", fd.Name, err)
		}
		field.SetModifiers(mods...)
	}
	as, err := buildAnnotations(fd.Annotations)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", fd.Name, err)
	}
	for _, a := range as {
		field.Annotation(a)
	}
	if fd.Initializer != "" {
		field.Init(fd.Initializer)
	}
	return field, nil
}

// build treats a method named after its owner with no return type as a
// constructor. Any other method without a return type returns void.
func (md Method) build(owner string) (*java.Method, error) {
	if md.Name == "" {
		return nil, fmt.Errorf("method: %w", ErrMissingName)
	}
	wrap := func(err error) error { return fmt.Errorf("method %s: %w", md.Name, err) }

	var method *java.Method
	switch {
	case md.Returns == "" && md.Name == owner:
		method = java.NewConstructor(md.Name)
	default:
		ret, err := java.ParseTypeName(orDefault(md.Returns, "void"))
		if err != nil {
			return nil, wrap(err)
		}
		method = java.NewMethod(ret, md.Name)
	}

	mods, err := parseModifiers(md.Modifiers)
	if err != nil {
		return nil, wrap(err)
	}
	for _, m := range mods {
		method.Modifier(m)
	}
	as, err := buildAnnotations(md.Annotations)
	if err != nil {
		return nil, wrap(err)
	}
	for _, a := range as {
		method.Annotation(a)
	}
	for _, g := range md.Generics {
		method.GenericParam(g)
	}
	for _, p := range md.Params {
		if p.Name == "" {
			return nil, wrap(fmt.Errorf("parameter: %w", ErrMissingName))
		}
		typ, err := java.ParseTypeName(p.Type)
		if err != nil {
			return nil, wrap(fmt.Errorf("parameter %s: %w", p.Name, err))
		}
		param := java.Param(typ, p.Name)
		pas, err := buildAnnotations(p.Annotations)
		if err != nil {
			return nil, wrap(err)
		}
		for _, a := range pas {
			param = param.Annotation(a)
		}
		method.Param(param)
	}
	if md.Body != "" {
		method.Code(md.Body)
	}
	return method, nil
}

func parseModifiers(names []string) (java.Modifiers, error) {
	mods := make(java.Modifiers, 0, len(names))
	for _, name := range names {
		m, err := java.ParseModifier(name)
		if err != nil {
			return nil, err
		}
		mods = append(mods, m)
	}
	return mods, nil
}

// parseImports accepts qualified names, optionally prefixed with "static ".
func parseImports(qualified []string) []java.Import {
	imports := make([]java.Import, 0, len(qualified))
	for _, q := range qualified {
		if rest, ok := strings.CutPrefix(q, "static "); ok {
			imports = append(imports, java.ImportOf(strings.TrimSpace(rest)).Static())
			continue
		}
		imports = append(imports, java.ImportOf(strings.TrimSpace(q)))
	}
	return imports
}

func buildAnnotations(as []Annotation) ([]java.Annotation, error) {
	result := make([]java.Annotation, 0, len(as))
	for _, a := range as {
		if a.Name == "" {
			return nil, fmt.Errorf("annotation: %w", ErrMissingName)
		}
		ann := java.NewAnnotation(a.Name)
		for _, p := range a.Params {
			ann = ann.Param(p.Name, p.Value)
		}
		result = append(result, ann)
	}
	return result, nil
}
