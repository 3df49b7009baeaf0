package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/javagen/java"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(decl java.Declaration) error
}

// New returns the encoder registered under name: java, json or line.
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "", "java":
		return NewJavaEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "line":
		return NewLineEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format %q", name)
	}
}

// Extension is the file suffix used when an encoder's output is written to disk.
func Extension(name string) string {
	switch name {
	case "json":
		return ".json"
	case "line":
		return ".txt"
	default:
		return ".java"
	}
}

func visibility(modifiers []string) string {
	for _, m := range modifiers {
		switch m {
		case "public", "protected", "private":
			return m
		}
	}
	return "package"
}

func withoutAccess(modifiers []string) []string {
	var rest []string
	for _, m := range modifiers {
		switch m {
		case "public", "protected", "private":
		default:
			rest = append(rest, m)
		}
	}
	return rest
}

func encode(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
