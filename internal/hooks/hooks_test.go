package hooks

import (
	"strings"
	"testing"
)

func TestParseInput(t *testing.T) {
	t.Parallel()

	input := `{"file_path": "app/api/chat/route.ts", "content": "const x = streamText(...)"}`

	event, err := ParseInput(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if event.FilePath != "app/api/chat/route.ts" {
		t.Errorf("Expected file path app/api/chat/route.ts, got %s", event.FilePath)
	}
	if event.Content != "const x = streamText(...)" {
		t.Errorf("Unexpected content: %s", event.Content)
	}
}

func TestParseInputInvalidJSON(t *testing.T) {
	t.Parallel()

	if _, err := ParseInput(strings.NewReader("not json")); err == nil {
		t.Fatal("Expected error for invalid JSON, got nil")
	}
}

func TestParseInputIgnoresUnknownFields(t *testing.T) {
	t.Parallel()

	input := `{"file_path": "main.go", "content": "", "session_id": "abc"}`

	event, err := ParseInput(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if event.FilePath != "main.go" {
		t.Errorf("Expected file path main.go, got %s", event.FilePath)
	}
}
