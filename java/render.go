package java

import "strings"

const fieldIndent = "    "

// joinWords trims every part, drops empty ones and joins the rest with a
// single space.
func joinWords(parts ...string) string {
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			words = append(words, p)
		}
	}
	return strings.Join(words, " ")
}

// bodyLines splits a method body into lines, dropping a trailing newline and
// carriage returns.
func bodyLines(body string) []string {
	body = strings.TrimSuffix(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
	return strings.Split(body, "\n")
}
