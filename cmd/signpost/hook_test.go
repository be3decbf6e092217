package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const guardDoc = "---\nname: env-guard\nglobs: [\"**/*.env\"]\nkind: guard\n---\nnever edit env files directly\n"

func TestHookCommandAdvisory(t *testing.T) {
	setupProject(t, map[string]string{"tsx.md": tsxDoc})

	input := `{"file_path": "app/page.tsx", "content": ""}`
	output, err := runCommand(t, []string{"hook"}, input)
	require.NoError(t, err)

	var decoded hookOutput
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))
	require.Len(t, decoded.Suggestions, 1)
	assert.Equal(t, "tsx", decoded.Suggestions[0].Rule)
	assert.Equal(t, "guide", decoded.Suggestions[0].Kind)
	assert.Equal(t, "use client components", decoded.Suggestions[0].Message)
}

func TestHookCommandClean(t *testing.T) {
	setupProject(t, map[string]string{"tsx.md": tsxDoc})

	input := `{"file_path": "main.go", "content": "package main"}`
	output, err := runCommand(t, []string{"hook"}, input)
	require.NoError(t, err)

	var decoded hookOutput
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))
	assert.Empty(t, decoded.Suggestions)
}

func TestHookCommandGuardExitsWithCode(t *testing.T) {
	setupProject(t, map[string]string{"guard.md": guardDoc})

	input := `{"file_path": "config/.env", "content": "SECRET=1"}`
	output, err := runCommand(t, []string{"hook"}, input)
	require.Error(t, err)

	var hookErr *HookExitError
	require.True(t, errors.As(err, &hookErr))
	assert.Equal(t, 2, hookErr.Code)
	assert.Contains(t, hookErr.Message, "env-guard")

	// Suggestions are still emitted before the blocking exit.
	assert.Contains(t, output, "never edit env files directly")
}

func TestHookCommandBadInput(t *testing.T) {
	setupProject(t, nil)

	_, err := runCommand(t, []string{"hook"}, "not json")
	require.Error(t, err)
}
