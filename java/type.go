package java

import (
	"fmt"
	"slices"
	"strings"
)

// GenericParams holds raw generic parameters such as "T" or "Customer".
type GenericParams []string

// Render returns "" when empty and "<A,B> " otherwise. The trailing space
// keeps concatenation into declarations safe.
func (g GenericParams) Render() string {
	if len(g) == 0 {
		return ""
	}
	return "<" + strings.Join(g, ",") + "> "
}

func (g GenericParams) clone() GenericParams {
	return slices.Clone(g)
}

// TypeName references a Java type wherever one appears: field and parameter
// types, return types, supertypes and implemented interfaces.
type TypeName struct {
	Name     string
	Generics GenericParams
}

// T converts a plain name into a TypeName.
func T(name string, generics ...string) TypeName {
	return TypeName{Name: name, Generics: generics}
}

func (t TypeName) Render() string {
	return t.Name + t.Generics.Render()
}

func (t TypeName) String() string {
	return strings.TrimSpace(t.Render())
}

// Equal compares names only; generic arguments are ignored.
func (t TypeName) Equal(other TypeName) bool {
	return t.Name == other.Name
}

func (t TypeName) IsZero() bool {
	return t.Name == ""
}

func (t TypeName) clone() TypeName {
	return TypeName{Name: t.Name, Generics: t.Generics.clone()}
}

// ParseTypeName splits a written type like "Map<String,List<Long>>" into its
// name and top-level generic arguments. Nested arguments stay raw.
func ParseTypeName(s string) (TypeName, error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '<')
	if open < 0 {
		if s == "" || strings.ContainsAny(s, ">,") {
			return TypeName{}, fmt.Errorf("%w: %q", ErrInvalidTypeName, s)
		}
		return T(s), nil
	}
	if open == 0 || !strings.HasSuffix(s, ">") {
		return TypeName{}, fmt.Errorf("%w: %q", ErrInvalidTypeName, s)
	}

	name := strings.TrimSpace(s[:open])
	inner := s[open+1 : len(s)-1]
	var generics GenericParams
	depth, start := 0, 0
	for i, r := range inner {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return TypeName{}, fmt.Errorf("%w: unbalanced %q", ErrInvalidTypeName, s)
			}
		case ',':
			if depth == 0 {
				generics = append(generics, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return TypeName{}, fmt.Errorf("%w: unbalanced %q", ErrInvalidTypeName, s)
	}
	generics = append(generics, strings.TrimSpace(inner[start:]))
	if slices.Contains(generics, "") {
		return TypeName{}, fmt.Errorf("%w: empty generic argument in %q", ErrInvalidTypeName, s)
	}
	return TypeName{Name: name, Generics: generics}, nil
}

func renderImplements(types []TypeName) string {
	if len(types) == 0 {
		return ""
	}
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return "implements " + strings.Join(names, ", ") + " "
}
