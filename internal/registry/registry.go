// Package registry holds the loaded rule set in a stable, read-only form.
package registry

import (
	"github.com/tetherwind/signpost/internal/rule"
)

// Document is one rule document handed to Load. Name identifies the
// document in errors, typically its path relative to the rules directory.
type Document struct {
	Name string
	Data []byte
}

// Registry is the loaded rule set. It is read-only after Load, so
// concurrent evaluation needs no locking.
type Registry struct {
	byID  map[string]int
	rules []rule.Rule
}

// Load parses rule definitions from the given documents, preserving
// document order. A malformed document is reported in the returned error
// slice and skipped; the remaining documents still load. Duplicate rule
// identifiers fail the later document.
func Load(docs []Document) (*Registry, []*rule.MalformedRuleError) {
	reg := &Registry{byID: make(map[string]int, len(docs))}
	var failures []*rule.MalformedRuleError

	for _, doc := range docs {
		r, err := rule.ParseDocument(doc.Name, doc.Data)
		if err != nil {
			failures = append(failures, asMalformed(doc.Name, err))
			continue
		}
		if _, exists := reg.byID[r.ID]; exists {
			failures = append(failures, &rule.MalformedRuleError{
				Doc:    doc.Name,
				Field:  "name",
				Reason: "duplicate rule identifier " + r.ID,
			})
			continue
		}
		reg.byID[r.ID] = len(reg.rules)
		reg.rules = append(reg.rules, *r)
	}

	return reg, failures
}

// All returns the rules in load order. The returned slice is a copy; the
// registry itself never changes after Load.
func (reg *Registry) All() []rule.Rule {
	out := make([]rule.Rule, len(reg.rules))
	copy(out, reg.rules)
	return out
}

// Get returns the rule with the given identifier.
func (reg *Registry) Get(id string) (rule.Rule, bool) {
	i, ok := reg.byID[id]
	if !ok {
		return rule.Rule{}, false
	}
	return reg.rules[i], true
}

// Len returns the number of loaded rules.
func (reg *Registry) Len() int {
	return len(reg.rules)
}

func asMalformed(doc string, err error) *rule.MalformedRuleError {
	if m, ok := err.(*rule.MalformedRuleError); ok { //nolint:errorlint // ParseDocument returns this type directly
		return m
	}
	return &rule.MalformedRuleError{Doc: doc, Reason: err.Error()}
}
