package schema

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/javagen/java"
	"github.com/dhamidi/javagen/java/syntax"
)

func TestLoad(t *testing.T) {
	f, err := Load("testdata/shop.yaml")
	require.NoError(t, err)

	assert.Equal(t, "com.example.shop", f.Package)
	require.Len(t, f.Classes, 1)
	assert.True(t, f.Classes[0].Accessors)
	assert.Len(t, f.Classes[0].Fields, 4)
	require.Len(t, f.Interfaces, 1)
	require.Len(t, f.Enums, 1)
	assert.Equal(t, `"closed"`, f.Enums[0].Constants[1].Args)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestDeclarationsRender(t *testing.T) {
	f, err := Load("testdata/shop.yaml")
	require.NoError(t, err)

	decls, err := f.Declarations()
	require.NoError(t, err)

	var names []string
	for _, d := range decls {
		names = append(names, d.PackageName()+"."+d.SimpleName())
		code, err := d.GenerateCode()
		require.NoError(t, err, d.SimpleName())
		require.NoError(t, syntax.Check(context.Background(), []byte(code)), code)
	}
	assert.Equal(t, []string{
		"com.example.shop.Customer",
		"com.example.shop.CustomerRepository",
		"com.example.shop.CustomerRepositoryImpl",
		"com.example.shop.model.Status",
	}, names)

	customer := java.MustGenerateCode(decls[0])
	for _, want := range []string{
		"@Table(\nname = \"customers\"\n)",
		"public class Customer extends BaseEntity implements Comparable<Customer> {",
		"    private List<Order> orders;\n",
		"    private final int age = 0;\n",
		"public Customer(String firstName) {\n\tthis.firstName = firstName;\n\tthis.age = 0;\n}\n",
		"public String getFirstName()",
		"public void setLastName(String lastName)",
		"public int getAge()",
		"public void addOrder(Order order) {\n\tthis.orders.add(order);\n}\n",
	} {
		assert.Contains(t, customer, want)
	}
	assert.NotContains(t, customer, "setAge")
}

func TestDeclarationsErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown modifier", "package: p\nclasses: [{name: A, modifiers: [volatile]}]", "volatile"},
		{"bad type", "package: p\nclasses: [{name: A, fields: [{name: x, type: \"List<\"}]}]", "field x"},
		{"missing name", "package: p\nenums: [{constants: [{name: X}]}]", ErrMissingName.Error()},
		{"two interface modifiers", "package: p\ninterfaces: [{name: I, modifiers: [public, abstract]}]", "single modifier"},
		{"bad extends", "package: p\ninterfaces: [{name: I, extends: \"<T>\"}]", "interface I"},
		{"empty interface generic", "package: p\ninterfaces: [{name: I, generics: [\"\"]}]", "empty generic parameter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			_, err = f.Declarations()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("classes: [unterminated"))
	assert.Error(t, err)
}

func TestStaticImport(t *testing.T) {
	f, err := Parse([]byte("package: p\nclasses: [{name: A, modifiers: [public], imports: [\"static java.lang.Math.max\"]}]"))
	require.NoError(t, err)
	decls, err := f.Declarations()
	require.NoError(t, err)
	code := java.MustGenerateCode(decls[0])
	assert.True(t, strings.Contains(code, "import static java.lang.Math.max;\n"), code)
}
