package format

import (
	"io"

	"github.com/dhamidi/javagen/java"
)

// JavaEncoder writes the declaration as a complete Java compilation unit.
type JavaEncoder struct {
	w    io.Writer
	decl java.Declaration
}

func NewJavaEncoder(w io.Writer) *JavaEncoder {
	return &JavaEncoder{w: w}
}

func (e *JavaEncoder) Encode(decl java.Declaration) error {
	e.decl = decl
	return encode(e.w, e)
}

func (e *JavaEncoder) MarshalText() ([]byte, error) {
	code, err := e.decl.GenerateCode()
	if err != nil {
		return nil, err
	}
	return []byte(code), nil
}
