package java

import (
	"errors"
	"strings"
	"testing"
)

func TestInterfaceGenerateCode(t *testing.T) {
	i := NewInterface("Shape", "geo").Method(NewMethod(T("double"), "area"))

	want := "package geo;\n\npublic interface Shape {\n\tdouble area();\n}\n"
	got, err := i.GenerateCode()
	if err != nil {
		t.Fatalf("GenerateCode() error = %v", err)
	}
	if got != want {
		t.Errorf("GenerateCode() = %q, want %q", got, want)
	}
	assertValidJava(t, got)
}

func customerRepository() *Interface {
	return NewInterface("CustomerRepository", "org.javacodegen.rvtool.repository").
		Import(ImportOf("java.util.List")).
		Import(ImportOf("org.springframework.data.repository.CrudRepository")).
		Extends(T("CrudRepository", "Customer", "Long")).
		Method(NewMethod(T("List", "Customer"), "findByLastName").Param(Param(T("String"), "lastName"))).
		Method(NewMethod(T("Customer"), "findById").Param(Param(T("long"), "id")))
}

func TestInterfaceCustomerRepository(t *testing.T) {
	got, err := customerRepository().GenerateCode()
	if err != nil {
		t.Fatalf("GenerateCode() error = %v", err)
	}
	for _, want := range []string{"interface CustomerRepository", "extends CrudRepository", "findByLastName", "findById"} {
		if !strings.Contains(got, want) {
			t.Errorf("GenerateCode() missing %q in:\n%s", want, got)
		}
	}
	assertValidJava(t, got)
}

func TestInterfaceRejectsMethodBody(t *testing.T) {
	bodies := []string{"return null;", " ", "\n"}
	for _, body := range bodies {
		i := customerRepository().Method(NewMethod(T("Customer"), "findByEmail").Code(body))
		_, err := i.GenerateCode()
		if !errors.Is(err, ErrInterfaceMethodBody) {
			t.Errorf("body %q: error = %v, want %v", body, err, ErrInterfaceMethodBody)
		}
		if err != nil && !strings.Contains(err.Error(), "CustomerRepository.findByEmail") {
			t.Errorf("error %q does not name the method", err)
		}
	}
}

func TestInterfaceAnnotationsAndGenerics(t *testing.T) {
	i := NewInterface("Mapper", "conv").
		GenericParam("S").
		GenericParam("D").
		Annotation(NewAnnotation("FunctionalInterface")).
		Method(NewMethod(T("D"), "map").Param(Param(T("S"), "source")))

	got := MustGenerateCode(i)
	if !strings.Contains(got, "@FunctionalInterface\npublic interface Mapper<S,D> {") {
		t.Errorf("GenerateCode() = %q", got)
	}
	assertValidJava(t, got)
}

func TestInterfaceMissingPackage(t *testing.T) {
	i := NewInterface("Shape", "")
	if _, err := i.GenerateCode(); !errors.Is(err, ErrMissingPackage) {
		t.Errorf("GenerateCode() error = %v, want %v", err, ErrMissingPackage)
	}
}

func TestInterfaceImplementation(t *testing.T) {
	i := NewInterface("Repository", "data").
		GenericParam("T").
		Import(ImportOf("java.util.List")).
		Method(NewMethod(T("List", "T"), "findAll")).
		Method(NewMethod(T("void"), "save").Abstract().Param(Param(T("T"), "item"))).
		Method(NewMethod(T("String"), "toString").Annotation(Override()))

	impl := i.Implementation()
	if impl.SimpleName() != "RepositoryImpl" || impl.PackageName() != "data" {
		t.Fatalf("Implementation() = %s.%s", impl.PackageName(), impl.SimpleName())
	}

	got, err := impl.GenerateCode()
	if err != nil {
		t.Fatalf("GenerateCode() error = %v", err)
	}
	for _, want := range []string{
		"import java.util.List;",
		"public class RepositoryImpl<T> implements Repository<T> {",
		"@Override\npublic List<T> findAll() {}\n",
		"@Override\npublic void save(T item) {}\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("GenerateCode() missing %q in:\n%s", want, got)
		}
	}
	if n := strings.Count(got, "@Override"); n != 3 {
		t.Errorf("@Override count = %d, want 3", n)
	}
	if strings.Contains(got, "abstract") {
		t.Errorf("implementation kept abstract modifier:\n%s", got)
	}
	assertValidJava(t, got)

	// the interface itself is unchanged
	if _, err := i.GenerateCode(); err != nil {
		t.Errorf("interface GenerateCode() error = %v", err)
	}
}

func TestInterfaceEmptyGenericParamPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("GenericParam(\"\") did not panic")
		}
	}()
	NewInterface("Repository", "data").GenericParam("")
}
