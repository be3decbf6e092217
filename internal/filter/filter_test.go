package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathGlobMatching(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pattern  string
		path     string
		expected bool
	}{
		{"star matches within segment", "app/*.tsx", "app/page.tsx", true},
		{"star does not cross segments", "app/*.tsx", "app/sub/page.tsx", false},
		{"doublestar crosses segments", "**/*.tsx", "app/sub/page.tsx", true},
		{"doublestar matches top level", "**/*.tsx", "page.tsx", true},
		{"doublestar directory segment", "**/api/**", "app/api/chat/route.ts", true},
		{"doublestar directory segment no match", "**/api/**", "app/pages/chat/route.ts", false},
		{"brace alternation first", "src/**/*.{ts,tsx}", "src/lib/util.ts", true},
		{"brace alternation second", "src/**/*.{ts,tsx}", "src/lib/View.tsx", true},
		{"brace alternation no match", "src/**/*.{ts,tsx}", "src/lib/util.go", false},
		{"case sensitive", "**/*.TSX", "app/page.tsx", false},
		{"backslash path normalized", "app/**/*.tsx", `app\sub\page.tsx`, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := NewPathGlob([]string{tt.pattern})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f.Match(tt.path, ""))
		})
	}
}

func TestPathGlobAnyPatternSuffices(t *testing.T) {
	t.Parallel()

	f, err := NewPathGlob([]string{"docs/**", "**/*.md"})
	require.NoError(t, err)

	assert.True(t, f.Match("docs/guide.txt", ""))
	assert.True(t, f.Match("src/README.md", ""))
	assert.False(t, f.Match("src/main.go", ""))
}

func TestPathGlobValidation(t *testing.T) {
	t.Parallel()

	_, err := NewPathGlob(nil)
	assert.Error(t, err)

	_, err = NewPathGlob([]string{"app/[.tsx"})
	assert.Error(t, err)
}

func TestContentRegex(t *testing.T) {
	t.Parallel()

	f, err := NewContentRegex("streamText")
	require.NoError(t, err)

	assert.True(t, f.Match("", "const x = streamText(...)"))
	assert.False(t, f.Match("", "no ai here"))

	_, err = NewContentRegex("(unclosed")
	assert.Error(t, err)
}

func TestCompositeRequiresAllChildren(t *testing.T) {
	t.Parallel()

	paths, err := NewPathGlob([]string{"**/api/**"})
	require.NoError(t, err)
	content, err := NewContentRegex("streamText")
	require.NoError(t, err)

	f := NewComposite(paths, content)

	assert.True(t, f.Match("app/api/chat/route.ts", "streamText()"))
	assert.False(t, f.Match("app/api/chat/route.ts", "plain"))
	assert.False(t, f.Match("app/page.tsx", "streamText()"))
}

func TestEmptyCompositeNeverMatches(t *testing.T) {
	t.Parallel()

	f := NewComposite()
	assert.False(t, f.Match("any/path.go", "any content"))
}
