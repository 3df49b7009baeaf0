package java

import (
	"slices"
	"strings"
)

type AnnotationParam struct {
	Name  string
	Value string
}

// Annotation is rendered verbatim; values must already be valid Java
// literals, including any quotes.
type Annotation struct {
	Name   string
	Params []AnnotationParam
}

func NewAnnotation(name string) Annotation {
	return Annotation{Name: name}
}

func Override() Annotation {
	return Annotation{Name: "Override"}
}

func Autowired() Annotation {
	return Annotation{Name: "Autowired"}
}

func (a Annotation) Param(name, value string) Annotation {
	a.Params = append(slices.Clone(a.Params), AnnotationParam{Name: name, Value: value})
	return a
}

// Equal compares qualified names only.
func (a Annotation) Equal(other Annotation) bool {
	return a.Name == other.Name
}

// Render writes "@Name", then one "key = value" pair per line inside
// parentheses when params are present, then a newline.
func (a Annotation) Render() string {
	var sb strings.Builder
	sb.WriteString("@")
	sb.WriteString(a.Name)
	if len(a.Params) > 0 {
		sb.WriteString("(\n")
		for i, p := range a.Params {
			sb.WriteString(p.Name)
			sb.WriteString(" = ")
			sb.WriteString(p.Value)
			if i < len(a.Params)-1 {
				sb.WriteString(",")
			}
			sb.WriteString("\n")
		}
		sb.WriteString(")")
	}
	sb.WriteString("\n")
	return sb.String()
}

// inline renders the annotation on a single line, as used for parameters.
func (a Annotation) inline() string {
	if len(a.Params) == 0 {
		return "@" + a.Name
	}
	pairs := make([]string, len(a.Params))
	for i, p := range a.Params {
		pairs[i] = p.Name + " = " + p.Value
	}
	return "@" + a.Name + "(" + strings.Join(pairs, ", ") + ")"
}

func (a Annotation) clone() Annotation {
	return Annotation{Name: a.Name, Params: slices.Clone(a.Params)}
}

type Annotations []Annotation

// Render concatenates every annotation, each preceded by a newline.
func (as Annotations) Render() string {
	var sb strings.Builder
	for _, a := range as {
		sb.WriteString("\n")
		sb.WriteString(a.Render())
	}
	return sb.String()
}

func (as Annotations) Contains(name string) bool {
	return slices.ContainsFunc(as, func(a Annotation) bool { return a.Name == name })
}

func (as Annotations) clone() Annotations {
	if as == nil {
		return nil
	}
	result := make(Annotations, len(as))
	for i, a := range as {
		result[i] = a.clone()
	}
	return result
}
