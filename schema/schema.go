// Package schema loads Java declarations from YAML files and turns them into
// java builders.
package schema

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrMissingName = errors.New("declaration without a name")

type File struct {
	Package    string      `yaml:"package"`
	Classes    []Class     `yaml:"classes"`
	Interfaces []Interface `yaml:"interfaces"`
	Enums      []Enum      `yaml:"enums"`
}

type Class struct {
	Name        string       `yaml:"name"`
	Package     string       `yaml:"package"`
	Modifiers   []string     `yaml:"modifiers"`
	Annotations []Annotation `yaml:"annotations"`
	Imports     []string     `yaml:"imports"`
	Extends     string       `yaml:"extends"`
	Implements  []string     `yaml:"implements"`
	Generics    []string     `yaml:"generics"`
	Fields      []Field      `yaml:"fields"`
	Methods     []Method     `yaml:"methods"`
	Accessors   bool         `yaml:"accessors"`
}

type Interface struct {
	Name        string       `yaml:"name"`
	Package     string       `yaml:"package"`
	Modifiers   []string     `yaml:"modifiers"`
	Annotations []Annotation `yaml:"annotations"`
	Imports     []string     `yaml:"imports"`
	Extends     string       `yaml:"extends"`
	Generics    []string     `yaml:"generics"`
	Methods     []Method     `yaml:"methods"`
	// Implementation also emits a <Name>Impl skeleton class.
	Implementation bool `yaml:"implementation"`
}

type Enum struct {
	Name        string       `yaml:"name"`
	Package     string       `yaml:"package"`
	Modifiers   []string     `yaml:"modifiers"`
	Annotations []Annotation `yaml:"annotations"`
	Imports     []string     `yaml:"imports"`
	Constants   []Constant   `yaml:"constants"`
}

type Constant struct {
	Name string `yaml:"name"`
	Args string `yaml:"args"`
}

type Annotation struct {
	Name   string  `yaml:"name"`
	Params []Param `yaml:"params"`
}

type Param struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type Field struct {
	Name        string       `yaml:"name"`
	Type        string       `yaml:"type"`
	Modifiers   []string     `yaml:"modifiers"`
	Annotations []Annotation `yaml:"annotations"`
	Initializer string       `yaml:"initializer"`
}

type Method struct {
	Name        string       `yaml:"name"`
	Returns     string       `yaml:"returns"`
	Modifiers   []string     `yaml:"modifiers"`
	Annotations []Annotation `yaml:"annotations"`
	Generics    []string     `yaml:"generics"`
	Params      []Parameter  `yaml:"params"`
	Body        string       `yaml:"body"`
}

type Parameter struct {
	Name        string       `yaml:"name"`
	Type        string       `yaml:"type"`
	Annotations []Annotation `yaml:"annotations"`
}

// Load reads and parses the declaration file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("declaration file loaded", "path", path, "classes", len(f.Classes), "interfaces", len(f.Interfaces), "enums", len(f.Enums))
	return f, nil
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	return &f, nil
}
