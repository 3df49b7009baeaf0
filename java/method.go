package java

import (
	"fmt"
	"strings"
)

type Method struct {
	name        string
	returnType  TypeName
	modifiers   Modifiers
	generics    GenericParams
	params      Parameters
	body        string
	annotations Annotations
}

func NewMethod(returnType TypeName, name string) *Method {
	return &Method{name: name, returnType: returnType}
}

// NewConstructor creates a method without a return type. Its name must match
// the enclosing class.
func NewConstructor(name string) *Method {
	return &Method{name: name}
}

func (m *Method) Name() string             { return m.name }
func (m *Method) ReturnType() TypeName     { return m.returnType }
func (m *Method) Modifiers() Modifiers     { return m.modifiers.clone() }
func (m *Method) Generics() GenericParams  { return m.generics.clone() }
func (m *Method) Parameters() Parameters   { return m.params.clone() }
func (m *Method) Body() string             { return m.body }
func (m *Method) Annotations() Annotations { return m.annotations.clone() }
func (m *Method) IsAbstract() bool         { return m.modifiers.Contains(Abstract) }
func (m *Method) IsConstructor() bool      { return m.returnType.IsZero() }

func (m *Method) Modifier(mod Modifier) *Method {
	m.modifiers = append(m.modifiers, mod)
	return m
}

func (m *Method) Public() *Method    { return m.Modifier(Public) }
func (m *Method) Private() *Method   { return m.Modifier(Private) }
func (m *Method) Protected() *Method { return m.Modifier(Protected) }
func (m *Method) Static() *Method    { return m.Modifier(Static) }
func (m *Method) Abstract() *Method  { return m.Modifier(Abstract) }
func (m *Method) Final() *Method     { return m.Modifier(Final) }

// Code sets the method body. Each line is indented by one tab on output.
func (m *Method) Code(body string) *Method {
	m.body = body
	return m
}

func (m *Method) Annotation(a Annotation) *Method {
	m.annotations = append(m.annotations, a)
	return m
}

func (m *Method) GenericParam(g string) *Method {
	m.generics = append(m.generics, g)
	return m
}

func (m *Method) Param(p Parameter) *Method {
	m.params = append(m.params, p)
	return m
}

func (m *Method) Params(ps ...Parameter) *Method {
	m.params = append(m.params, ps...)
	return m
}

// signature renders "modifiers <G> ReturnType name(params)".
func (m *Method) signature() (string, error) {
	mods, err := m.modifiers.Render()
	if err != nil {
		return "", fmt.Errorf("method %s: %w", m.name, err)
	}
	return joinWords(mods, m.generics.Render(), m.returnType.Render(), m.name+m.params.Render()), nil
}

func (m *Method) GenerateCode() (string, error) {
	if m.IsAbstract() && m.body != "" {
		return "", fmt.Errorf("%w: %s", ErrAbstractMethodBody, m.name)
	}
	sig, err := m.signature()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, a := range m.annotations {
		sb.WriteString(a.Render())
	}
	sb.WriteString(sig)
	if m.IsAbstract() {
		sb.WriteString(";\n")
		return sb.String(), nil
	}

	sb.WriteString(" {")
	if m.body != "" {
		sb.WriteString("\n")
		for _, line := range bodyLines(m.body) {
			sb.WriteString("\t")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	sb.WriteString("}\n")
	return sb.String(), nil
}

func (m *Method) clone() *Method {
	return &Method{
		name:        m.name,
		returnType:  m.returnType.clone(),
		modifiers:   m.modifiers.clone(),
		generics:    m.generics.clone(),
		params:      m.params.clone(),
		body:        m.body,
		annotations: m.annotations.clone(),
	}
}
