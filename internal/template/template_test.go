package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteFileData(t *testing.T) {
	t.Parallel()

	data := BuildFileData("app/api/chat/route.ts")

	result, err := Execute("{{.Name}} ({{.Ext}}) lives in {{.Dir}}", data)
	require.NoError(t, err)
	assert.Equal(t, "route.ts (.ts) lives in app/api/chat", result)
}

func TestExecutePlainTextPassesThrough(t *testing.T) {
	t.Parallel()

	result, err := Execute("use client components", BuildFileData("app/page.tsx"))
	require.NoError(t, err)
	assert.Equal(t, "use client components", result)
}

func TestExecuteFunctions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		expected string
	}{
		{"lower", `{{lower .Name}}`, "readme.md"},
		{"upper", `{{upper .Ext}}`, ".MD"},
		{"trimSuffix", `{{trimSuffix .Ext .Name}}`, "README"},
		{"hasPrefix", `{{if hasPrefix "docs" .Dir}}yes{{end}}`, "yes"},
	}

	data := BuildFileData("docs/README.md")
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := Execute(tt.template, data)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Validate("plain message"))
	assert.NoError(t, Validate("check {{.Name}}"))
	assert.Error(t, Validate("{{.Name"))
	assert.Error(t, Validate("{{unknownFunc .Name}}"))
}
