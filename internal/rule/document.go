package rule

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tetherwind/signpost/internal/filter"
	"github.com/tetherwind/signpost/internal/template"
)

const frontmatterDelimiter = "---"

// frontmatter is the YAML header of a rule document. Unknown keys are
// rejected so typos surface as malformed documents instead of silently
// ignored fields.
type frontmatter struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Contains    string   `yaml:"contains"`
	Kind        string   `yaml:"kind"`
	Globs       []string `yaml:"globs"`
	Priority    int      `yaml:"priority"`
}

// ParseDocument parses one rule document into a Rule with its filter
// compiled. doc names the document in errors, typically its relative path.
func ParseDocument(doc string, data []byte) (*Rule, error) {
	header, body, err := splitFrontmatter(data)
	if err != nil {
		return nil, &MalformedRuleError{Doc: doc, Reason: err.Error()}
	}

	var fm frontmatter
	decoder := yaml.NewDecoder(bytes.NewReader(header))
	decoder.KnownFields(true)
	if err := decoder.Decode(&fm); err != nil && !errors.Is(err, io.EOF) {
		return nil, &MalformedRuleError{Doc: doc, Reason: "invalid frontmatter: " + err.Error()}
	}

	if fm.Name == "" {
		return nil, &MalformedRuleError{Doc: doc, Field: "name", Reason: "required"}
	}
	if len(fm.Globs) == 0 {
		return nil, &MalformedRuleError{Doc: doc, Field: "globs", Reason: "at least one glob pattern is required"}
	}

	kind := Kind(fm.Kind)
	if fm.Kind == "" {
		kind = KindGuide
	}
	if !kind.Valid() {
		return nil, &MalformedRuleError{Doc: doc, Field: "kind", Reason: "must be guide or guard"}
	}

	message := strings.TrimSpace(string(body))
	if message == "" {
		return nil, &MalformedRuleError{Doc: doc, Field: "message", Reason: "document body is empty"}
	}
	if err := template.Validate(message); err != nil {
		return nil, &MalformedRuleError{Doc: doc, Field: "message", Reason: err.Error()}
	}

	pathFilter, err := filter.NewPathGlob(fm.Globs)
	if err != nil {
		return nil, &MalformedRuleError{Doc: doc, Field: "globs", Reason: err.Error()}
	}

	filters := []filter.Filter{pathFilter}
	if fm.Contains != "" {
		contentFilter, err := filter.NewContentRegex(fm.Contains)
		if err != nil {
			return nil, &MalformedRuleError{Doc: doc, Field: "contains", Reason: err.Error()}
		}
		filters = append(filters, contentFilter)
	}

	return &Rule{
		ID:          fm.Name,
		Description: fm.Description,
		Globs:       fm.Globs,
		Contains:    fm.Contains,
		Priority:    fm.Priority,
		Kind:        kind,
		Message:     message,
		Filter:      filter.NewComposite(filters...),
	}, nil
}

// splitFrontmatter separates the delimited YAML header from the body.
func splitFrontmatter(data []byte) (header, body []byte, err error) {
	text := string(data)
	if !strings.HasPrefix(text, frontmatterDelimiter+"\n") {
		return nil, nil, errors.New("missing frontmatter header")
	}

	rest := text[len(frontmatterDelimiter)+1:]
	end := strings.Index(rest, "\n"+frontmatterDelimiter+"\n")
	if end < 0 {
		// A header closed at end of file leaves no body; that is caught
		// later as an empty message.
		if strings.HasSuffix(rest, "\n"+frontmatterDelimiter) {
			return []byte(rest[:len(rest)-len(frontmatterDelimiter)-1]), nil, nil
		}
		return nil, nil, errors.New("unterminated frontmatter header")
	}

	header = []byte(rest[:end])
	body = []byte(rest[end+len(frontmatterDelimiter)+2:])
	return header, body, nil
}
