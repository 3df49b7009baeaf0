package lsp

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/javagen/java/syntax"
	"github.com/dhamidi/javagen/schema"
)

var source = lsName

// Diagnose reports problems in a Java source file or a YAML declaration
// file. Other files yield no diagnostics. The result is never nil so that
// publishing it clears stale diagnostics.
func Diagnose(ctx context.Context, path string, content []byte) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".java":
		diagnostics = append(diagnostics, javaDiagnostics(ctx, path, content)...)
	case ".yaml", ".yml":
		diagnostics = append(diagnostics, declarationDiagnostics(ctx, content)...)
	}
	return diagnostics
}

func javaDiagnostics(ctx context.Context, path string, content []byte) []protocol.Diagnostic {
	err := syntax.CheckFile(ctx, path, content)
	if err == nil {
		return nil
	}
	var serr *syntax.Error
	if !errors.As(err, &serr) {
		return []protocol.Diagnostic{newDiagnostic(0, 0, protocol.DiagnosticSeverityError, err.Error())}
	}
	var diagnostics []protocol.Diagnostic
	for _, p := range serr.Problems {
		msg := fmt.Sprintf("unexpected %q", p.Text)
		if p.Missing {
			msg = "missing " + p.Text
		}
		diagnostics = append(diagnostics, newDiagnostic(p.Line-1, p.Column-1, protocol.DiagnosticSeverityError, msg))
	}
	return diagnostics
}

func declarationDiagnostics(ctx context.Context, content []byte) []protocol.Diagnostic {
	f, err := schema.Parse(content)
	if err != nil {
		return []protocol.Diagnostic{newDiagnostic(yamlErrorLine(err), 0, protocol.DiagnosticSeverityError, err.Error())}
	}
	decls, err := f.Declarations()
	if err != nil {
		return []protocol.Diagnostic{newDiagnostic(0, 0, protocol.DiagnosticSeverityError, err.Error())}
	}

	var diagnostics []protocol.Diagnostic
	for _, d := range decls {
		for _, advisory := range d.Advisories() {
			diagnostics = append(diagnostics, newDiagnostic(0, 0, protocol.DiagnosticSeverityWarning, advisory))
		}
		code, err := d.GenerateCode()
		if err != nil {
			diagnostics = append(diagnostics, newDiagnostic(0, 0, protocol.DiagnosticSeverityError, err.Error()))
			continue
		}
		if err := syntax.CheckFile(ctx, d.SimpleName()+".java", []byte(code)); err != nil {
			diagnostics = append(diagnostics, newDiagnostic(0, 0, protocol.DiagnosticSeverityError, err.Error()))
		}
	}
	return diagnostics
}

// yamlErrorLine extracts the zero-based line from "yaml: line N: ..." errors.
func yamlErrorLine(err error) int {
	msg := err.Error()
	i := strings.Index(msg, "line ")
	if i < 0 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(msg[i:], "line %d", &line); scanErr != nil || line < 1 {
		return 0
	}
	return line - 1
}

func newDiagnostic(line, col int, severity protocol.DiagnosticSeverity, msg string) protocol.Diagnostic {
	pos := protocol.Position{Line: protocol.UInteger(max(line, 0)), Character: protocol.UInteger(max(col, 0))}
	return protocol.Diagnostic{
		Range:    protocol.Range{Start: pos, End: pos},
		Severity: &severity,
		Source:   &source,
		Message:  msg,
	}
}
