package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/javagen/java"
)

type JSONEncoder struct {
	w    io.Writer
	decl java.Declaration
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(decl java.Declaration) error {
	e.decl = decl
	return encode(e.w, e)
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := buildClassData(e.decl.Model())
	return json.MarshalIndent(data, "", "  ")
}

type jsonClass struct {
	Name        string         `json:"name"`
	SimpleName  string         `json:"simpleName"`
	Package     string         `json:"package"`
	SuperClass  string         `json:"superClass,omitempty"`
	Interfaces  []string       `json:"interfaces,omitempty"`
	TypeParams  []string       `json:"typeParams,omitempty"`
	Visibility  string         `json:"visibility"`
	Kind        string         `json:"kind"`
	Modifiers   []string       `json:"modifiers,omitempty"`
	Imports     []string       `json:"imports,omitempty"`
	Annotations []string       `json:"annotations,omitempty"`
	Constants   []jsonConstant `json:"constants,omitempty"`
	Fields      []jsonField    `json:"fields,omitempty"`
	Methods     []jsonMethod   `json:"methods,omitempty"`
}

type jsonConstant struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments,omitempty"`
}

type jsonField struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Visibility  string   `json:"visibility"`
	Modifiers   []string `json:"modifiers,omitempty"`
	Annotations []string `json:"annotations,omitempty"`
	Initializer string   `json:"initializer,omitempty"`
}

type jsonMethod struct {
	Name        string          `json:"name"`
	ReturnType  string          `json:"returnType,omitempty"`
	Parameters  []jsonParameter `json:"parameters,omitempty"`
	TypeParams  []string        `json:"typeParams,omitempty"`
	Visibility  string          `json:"visibility"`
	Modifiers   []string        `json:"modifiers,omitempty"`
	Annotations []string        `json:"annotations,omitempty"`
	Abstract    bool            `json:"abstract,omitempty"`
	Constructor bool            `json:"constructor,omitempty"`
}

type jsonParameter struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func buildClassData(m java.ClassModel) jsonClass {
	data := jsonClass{
		Name:        m.Name,
		SimpleName:  m.SimpleName,
		Package:     m.Package,
		SuperClass:  m.SuperClass,
		Interfaces:  m.Interfaces,
		TypeParams:  m.TypeParams,
		Visibility:  visibility(m.Modifiers),
		Kind:        string(m.Kind),
		Modifiers:   withoutAccess(m.Modifiers),
		Imports:     m.Imports,
		Annotations: m.Annotations,
	}
	for _, c := range m.EnumConstants {
		data.Constants = append(data.Constants, jsonConstant{Name: c.Name, Arguments: c.Arguments})
	}
	for _, f := range m.Fields {
		data.Fields = append(data.Fields, jsonField{
			Name:        f.Name,
			Type:        f.Type,
			Visibility:  visibility(f.Modifiers),
			Modifiers:   withoutAccess(f.Modifiers),
			Annotations: f.Annotations,
			Initializer: f.Initializer,
		})
	}
	for _, mm := range m.Methods {
		jm := jsonMethod{
			Name:        mm.Name,
			ReturnType:  mm.ReturnType,
			TypeParams:  mm.TypeParams,
			Visibility:  visibility(mm.Modifiers),
			Modifiers:   withoutAccess(mm.Modifiers),
			Annotations: mm.Annotations,
			Abstract:    mm.IsAbstract,
			Constructor: mm.ReturnType == "",
		}
		for _, p := range mm.Parameters {
			jm.Parameters = append(jm.Parameters, jsonParameter{Name: p.Name, Type: p.Type})
		}
		data.Methods = append(data.Methods, jm)
	}
	return data
}
