// Package hooks parses the JSON file-context events editors send on stdin.
package hooks

import (
	"encoding/json"
	"io"
)

// Event is one file-context event from an editor or assistant integration.
type Event struct {
	FilePath string `json:"file_path"` //nolint:tagliatelle // integration API uses snake_case
	Content  string `json:"content"`
}

// ParseInput decodes a hook event from the reader.
func ParseInput(reader io.Reader) (*Event, error) {
	var event Event
	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(&event); err != nil {
		return nil, err //nolint:wrapcheck // JSON decode errors are self-descriptive
	}
	return &event, nil
}
