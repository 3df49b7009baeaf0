package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/javagen/java"
)

// LineEncoder writes one tab separated line for the declaration followed by
// one line per constant, field and method.
type LineEncoder struct {
	w    io.Writer
	decl java.Declaration
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(decl java.Declaration) error {
	e.decl = decl
	return encode(e.w, e)
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	m := e.decl.Model()

	fmt.Fprintf(&sb, "%s\t%s\t%s\n", m.Kind, m.Name, strings.Join(m.Modifiers, " "))

	for _, c := range m.EnumConstants {
		fmt.Fprintf(&sb, "constant\t%s\t%s\n", c.Name, c.Arguments)
	}

	for _, f := range m.Fields {
		fmt.Fprintf(&sb, "field\t%s\t%s\t%s\t%s\n",
			f.Name,
			f.Type,
			visibility(f.Modifiers),
			strings.Join(withoutAccess(f.Modifiers), " "),
		)
	}

	for _, mm := range m.Methods {
		fmt.Fprintf(&sb, "method\t%s\t%s\t%s\t%s\t%s\n",
			mm.Name,
			mm.ReturnType,
			parametersStr(mm.Parameters),
			visibility(mm.Modifiers),
			strings.Join(withoutAccess(mm.Modifiers), " "),
		)
	}

	return []byte(sb.String()), nil
}

func parametersStr(params []java.ParameterModel) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Type + " " + p.Name
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
