// Package filter implements the applicability conditions a rule is compiled to.
package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter decides whether a file, given by path and content, satisfies a condition.
// Implementations are immutable after construction and safe for concurrent use.
type Filter interface {
	Match(path, content string) bool
}

// PathGlob matches when the path satisfies at least one of its patterns.
// Matching is case-sensitive and supports *, ** and brace alternation.
type PathGlob struct {
	patterns []string
}

// NewPathGlob validates the patterns and builds a path filter.
func NewPathGlob(patterns []string) (*PathGlob, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("path glob requires at least one pattern")
	}
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid glob pattern %q", p)
		}
	}
	return &PathGlob{patterns: patterns}, nil
}

// Match reports whether path satisfies any pattern. Paths are compared
// slash-separated, the way rule documents write them.
func (f *PathGlob) Match(path, _ string) bool {
	normalized := strings.ReplaceAll(path, "\\", "/")
	for _, p := range f.patterns {
		if ok, err := doublestar.Match(p, normalized); err == nil && ok {
			return true
		}
	}
	return false
}

// Patterns returns the glob patterns this filter was built from.
func (f *PathGlob) Patterns() []string {
	return f.patterns
}

// ContentRegex matches when the file content contains the pattern.
type ContentRegex struct {
	re *regexp.Regexp
}

// NewContentRegex compiles the pattern into a content filter.
func NewContentRegex(pattern string) (*ContentRegex, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid content pattern %q: %w", pattern, err)
	}
	return &ContentRegex{re: re}, nil
}

// Match reports whether the content contains the pattern.
func (f *ContentRegex) Match(_, content string) bool {
	return f.re.MatchString(content)
}

// Pattern returns the regex source this filter was built from.
func (f *ContentRegex) Pattern() string {
	return f.re.String()
}

// Composite matches when every child filter matches.
type Composite struct {
	children []Filter
}

// NewComposite builds an AND combination of the given filters.
func NewComposite(children ...Filter) *Composite {
	return &Composite{children: children}
}

// Match reports whether all children match. An empty composite never matches;
// a rule must carry at least one applicability condition.
func (f *Composite) Match(path, content string) bool {
	if len(f.children) == 0 {
		return false
	}
	for _, c := range f.children {
		if !c.Match(path, content) {
			return false
		}
	}
	return true
}
