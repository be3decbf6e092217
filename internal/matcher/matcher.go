// Package matcher evaluates a rule's applicability against a file context.
package matcher

import (
	"github.com/tetherwind/signpost/internal/rule"
)

// ValidateContext checks that a file context carries the fields matching
// requires. An empty path is an error, never a silent non-match; empty
// content is legal since files may be empty.
func ValidateContext(ctx rule.FileContext) error {
	if ctx.Path == "" {
		return &rule.InvalidContextError{Missing: "path"}
	}
	return nil
}

// Matches reports whether the rule applies to the file context: the path
// must satisfy at least one glob and, when a content pattern is present,
// the content must contain it.
func Matches(r *rule.Rule, ctx rule.FileContext) (bool, error) {
	if err := ValidateContext(ctx); err != nil {
		return false, err
	}
	return r.Filter.Match(ctx.Path, ctx.Content), nil
}
