// Package rule defines the rule data model shared by the registry, matcher and engine.
package rule

import "github.com/tetherwind/signpost/internal/filter"

// Kind distinguishes advisory rules from blocking ones. Evaluation is the
// same for both; callers decide what a guard match means (typically a
// non-zero hook exit).
type Kind string

const (
	// KindGuide marks an advisory rule. This is the default.
	KindGuide Kind = "guide"

	// KindGuard marks a blocking rule.
	KindGuard Kind = "guard"
)

// Valid reports whether k is a recognized kind.
func (k Kind) Valid() bool {
	return k == KindGuide || k == KindGuard
}

// Rule is a named condition-action pair loaded from a rule document.
// Rules are immutable once loaded; the compiled filter is built at load time.
type Rule struct {
	Filter      filter.Filter
	ID          string
	Description string
	Contains    string
	Message     string
	Kind        Kind
	Globs       []string
	Priority    int
}

// FileContext is the path and textual content a rule is evaluated against.
// It is supplied per evaluation call and owned by the caller.
type FileContext struct {
	Path    string
	Content string
}

// MatchResult is one matched rule's emitted guidance.
type MatchResult struct {
	RuleID   string
	Message  string
	Kind     Kind
	Priority int
}
