package java

import (
	"errors"
	"strings"
	"testing"
)

func TestEnumGenerateCode(t *testing.T) {
	e := NewEnum("Color", "paint").Public().
		Constant("RED", `"red"`).
		Constant("GREEN", `"green"`)

	want := "package paint;\n\n\npublic enum Color { \n\tRED(\"red\"),\n\tGREEN(\"green\");\n\n}\n"
	got, err := e.GenerateCode()
	if err != nil {
		t.Fatalf("GenerateCode() error = %v", err)
	}
	if got != want {
		t.Errorf("GenerateCode() = %q, want %q", got, want)
	}
	assertValidJava(t, got)
}

func TestEnumTemplateFileType(t *testing.T) {
	names := []string{"Entity", "Repository", "Service", "Controller", "Dto", "Mapper"}
	e := NewEnum("TemplateFileType", "org.javacodegen.rvtool.templates").Public()
	for _, n := range names {
		e.Constant(n, "Constants."+strings.ToUpper(n))
	}

	got, err := e.GenerateCode()
	if err != nil {
		t.Fatalf("GenerateCode() error = %v", err)
	}
	assertValidJava(t, got)

	if !strings.Contains(got, "enum TemplateFileType") {
		t.Errorf("GenerateCode() missing enum header:\n%s", got)
	}
	var constantLines []string
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, "\t") {
			constantLines = append(constantLines, line)
		}
	}
	if len(constantLines) != len(names) {
		t.Fatalf("got %d constant lines, want %d:\n%s", len(constantLines), len(names), got)
	}
	for i, n := range names {
		line := constantLines[i]
		if !strings.Contains(line, n+"(Constants."+strings.ToUpper(n)+")") {
			t.Errorf("line %d = %q, want constant %s", i, line, n)
		}
		wantEnd := ","
		if i == len(names)-1 {
			wantEnd = ";"
		}
		if !strings.HasSuffix(line, wantEnd) {
			t.Errorf("line %d = %q, want suffix %q", i, line, wantEnd)
		}
	}
}

func TestEnumErrors(t *testing.T) {
	if _, err := NewEnum("Color", "").GenerateCode(); !errors.Is(err, ErrMissingPackage) {
		t.Errorf("GenerateCode() error = %v, want %v", err, ErrMissingPackage)
	}
	if _, err := NewEnum("Color", "p").Private().Public().GenerateCode(); !errors.Is(err, ErrConflictingModifiers) {
		t.Errorf("GenerateCode() error = %v, want %v", err, ErrConflictingModifiers)
	}
}

func TestEnumEmptyNamePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewEnum(\"\") did not panic")
		}
	}()
	NewEnum("", "p")
}
