// Package engine is the suggestion emitter: it evaluates a registry
// against a file context and returns the matched rules' guidance.
package engine

import (
	"fmt"
	"sort"

	"github.com/tetherwind/signpost/internal/matcher"
	"github.com/tetherwind/signpost/internal/registry"
	"github.com/tetherwind/signpost/internal/rule"
	"github.com/tetherwind/signpost/internal/template"
)

// Evaluate returns one MatchResult per matching rule, ordered by descending
// priority with load order as the stable tie-break. It is idempotent and
// has no side effects; the registry is never mutated, so concurrent calls
// are safe.
func Evaluate(reg *registry.Registry, ctx rule.FileContext) ([]rule.MatchResult, error) {
	if err := matcher.ValidateContext(ctx); err != nil {
		return nil, err
	}

	data := template.BuildFileData(ctx.Path)

	var results []rule.MatchResult
	for _, r := range reg.All() {
		ok, err := matcher.Matches(&r, ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		message, err := template.Execute(r.Message, data)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", r.ID, err)
		}

		results = append(results, rule.MatchResult{
			RuleID:   r.ID,
			Message:  message,
			Kind:     r.Kind,
			Priority: r.Priority,
		})
	}

	// All() preserves load order, so a stable sort keeps it as the tie-break.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Priority > results[j].Priority
	})

	return results, nil
}
