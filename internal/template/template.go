// Package template renders rule message bodies against a file context.
package template

import (
	"fmt"
	"strings"
	"text/template"
)

// Validate checks that a message template parses without rendering it.
// Used at load time so a broken template fails the document, not the
// evaluation that first matches it.
func Validate(templateStr string) error {
	_, err := template.New("message").Funcs(funcMap()).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("invalid message template: %w", err)
	}
	return nil
}

// Execute renders a message template with the given data.
func Execute(templateStr string, data any) (string, error) {
	tmpl, err := template.New("message").Funcs(funcMap()).Parse(templateStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return result.String(), nil
}
