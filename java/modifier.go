package java

import (
	"fmt"
	"slices"
	"strings"
)

type Modifier int

const (
	Public Modifier = iota + 1
	Private
	Protected
	Static
	Abstract
	Final
)

func (m Modifier) String() string {
	switch m {
	case Public:
		return "public"
	case Private:
		return "private"
	case Protected:
		return "protected"
	case Static:
		return "static"
	case Abstract:
		return "abstract"
	case Final:
		return "final"
	}
	return fmt.Sprintf("Modifier(%d)", int(m))
}

// rank gives the rendering order, highest first:
// access modifiers, then abstract, final, static.
func (m Modifier) rank() int {
	switch m {
	case Public, Private, Protected:
		return 4
	case Abstract:
		return 3
	case Final:
		return 2
	case Static:
		return 1
	}
	return 0
}

func (m Modifier) IsAccess() bool {
	return m == Public || m == Private || m == Protected
}

func ParseModifier(s string) (Modifier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "public":
		return Public, nil
	case "private":
		return Private, nil
	case "protected":
		return Protected, nil
	case "static":
		return Static, nil
	case "abstract":
		return Abstract, nil
	case "final":
		return Final, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownModifier, s)
}

type Modifiers []Modifier

func (ms Modifiers) Contains(m Modifier) bool {
	return slices.Contains(ms, m)
}

// Without returns a copy of ms with every occurrence of drop removed.
func (ms Modifiers) Without(drop ...Modifier) Modifiers {
	var result Modifiers
	for _, m := range ms {
		if !slices.Contains(drop, m) {
			result = append(result, m)
		}
	}
	return result
}

// Validate rejects unknown values and more than one distinct access modifier.
func (ms Modifiers) Validate() error {
	var access Modifier
	for _, m := range ms {
		if m.rank() == 0 {
			return fmt.Errorf("%w: %v", ErrUnknownModifier, m)
		}
		if !m.IsAccess() {
			continue
		}
		if access != 0 && access != m {
			return fmt.Errorf("%w: %s and %s", ErrConflictingModifiers, access, m)
		}
		access = m
	}
	return nil
}

// Canonical returns the deduplicated modifiers in rendering order.
func (ms Modifiers) Canonical() Modifiers {
	var result Modifiers
	for _, m := range ms {
		if !result.Contains(m) {
			result = append(result, m)
		}
	}
	slices.SortStableFunc(result, func(a, b Modifier) int {
		return b.rank() - a.rank()
	})
	return result
}

// Render returns the canonical keywords joined by single spaces.
func (ms Modifiers) Render() (string, error) {
	if err := ms.Validate(); err != nil {
		return "", err
	}
	canonical := ms.Canonical()
	words := make([]string, len(canonical))
	for i, m := range canonical {
		words[i] = m.String()
	}
	return strings.Join(words, " "), nil
}

func (ms Modifiers) clone() Modifiers {
	return slices.Clone(ms)
}
