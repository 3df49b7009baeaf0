// Package syntax checks Java source against the tree-sitter Java grammar.
// It does not type-check; it only reports where the grammar rejected the
// input.
package syntax

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// Problem locates one rejected region. Line and Column are 1-based.
type Problem struct {
	Line    int
	Column  int
	Missing bool
	Text    string
}

func (p Problem) String() string {
	if p.Missing {
		return fmt.Sprintf("%d:%d: missing %s", p.Line, p.Column, p.Text)
	}
	return fmt.Sprintf("%d:%d: unexpected %q", p.Line, p.Column, p.Text)
}

type Error struct {
	File     string
	Problems []Problem
}

func (e *Error) Error() string {
	lines := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		lines[i] = p.String()
		if e.File != "" {
			lines[i] = e.File + ":" + lines[i]
		}
	}
	return "syntax errors:\n" + strings.Join(lines, "\n")
}

// Check parses src and returns a *Error when the grammar rejects it.
func Check(ctx context.Context, src []byte) error {
	return CheckFile(ctx, "", src)
}

// CheckFile is Check with a file name attached to reported problems.
func CheckFile(ctx context.Context, file string, src []byte) error {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if !root.HasError() {
		return nil
	}
	problems := collectProblems(root, src)
	if len(problems) == 0 {
		problems = append(problems, Problem{Line: 1, Column: 1, Text: "source"})
	}
	return &Error{File: file, Problems: problems}
}

func collectProblems(root *sitter.Node, src []byte) []Problem {
	var problems []Problem
	stack := []*sitter.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.IsError() || n.IsMissing() {
			start := n.StartPoint()
			p := Problem{
				Line:    int(start.Row) + 1,
				Column:  int(start.Column) + 1,
				Missing: n.IsMissing(),
			}
			if p.Missing {
				p.Text = n.Type()
			} else {
				p.Text = firstLine(n.Content(src))
			}
			problems = append(problems, p)
			continue
		}
		if !n.HasError() {
			continue
		}
		for i := int(n.ChildCount()) - 1; i >= 0; i-- {
			stack = append(stack, n.Child(i))
		}
	}
	return problems
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + "..."
	}
	return s
}
