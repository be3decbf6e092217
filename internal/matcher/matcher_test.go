package matcher

import (
	"errors"
	"testing"

	"github.com/tetherwind/signpost/internal/rule"
)

func mustRule(t *testing.T, doc string) *rule.Rule {
	t.Helper()
	r, err := rule.ParseDocument("test.md", []byte(doc))
	if err != nil {
		t.Fatalf("Failed to parse rule document: %v", err)
	}
	return r
}

func TestMatchesGlobOnly(t *testing.T) {
	t.Parallel()

	r := mustRule(t, "---\nname: tsx\nglobs: [\"**/*.tsx\"]\n---\nuse client components\n")

	ok, err := Matches(r, rule.FileContext{Path: "app/page.tsx"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !ok {
		t.Error("Expected rule to match app/page.tsx")
	}

	ok, err = Matches(r, rule.FileContext{Path: "app/page.go"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ok {
		t.Error("Expected rule not to match app/page.go")
	}
}

func TestMatchesContentPattern(t *testing.T) {
	t.Parallel()

	r := mustRule(t, "---\nname: streaming\nglobs: [\"**/api/**\"]\ncontains: \"streamText\"\n---\nstream responses\n")

	tests := []struct {
		name     string
		path     string
		content  string
		expected bool
	}{
		{"glob and content match", "app/api/chat/route.ts", "const x = streamText(...)", true},
		{"glob matches content does not", "app/api/chat/route.ts", "no ai here", false},
		{"content matches glob does not", "app/page.tsx", "streamText()", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ok, err := Matches(r, rule.FileContext{Path: tt.path, Content: tt.content})
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if ok != tt.expected {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.path, tt.content, ok, tt.expected)
			}
		})
	}
}

func TestMatchesInvalidContext(t *testing.T) {
	t.Parallel()

	r := mustRule(t, "---\nname: tsx\nglobs: [\"**/*.tsx\"]\n---\nmsg\n")

	ok, err := Matches(r, rule.FileContext{})
	if err == nil {
		t.Fatal("Expected InvalidContextError, got nil")
	}

	var invalid *rule.InvalidContextError
	if !errors.As(err, &invalid) {
		t.Fatalf("Expected InvalidContextError, got %v", err)
	}
	if invalid.Missing != "path" {
		t.Errorf("Expected missing field path, got %s", invalid.Missing)
	}
	if ok {
		t.Error("Expected no match when the context is invalid")
	}
}

func TestEmptyContentIsValid(t *testing.T) {
	t.Parallel()

	r := mustRule(t, "---\nname: tsx\nglobs: [\"**/*.tsx\"]\n---\nmsg\n")

	ok, err := Matches(r, rule.FileContext{Path: "app/page.tsx", Content: ""})
	if err != nil {
		t.Fatalf("Expected no error for empty content, got %v", err)
	}
	if !ok {
		t.Error("Expected rule without content pattern to match empty content")
	}
}
