package rule

import "fmt"

// MalformedRuleError reports a rule document that cannot be loaded: a
// required field is missing, an identifier is duplicated, or a glob,
// regex or message template does not compile. Load of other documents
// continues; the error is surfaced per document.
type MalformedRuleError struct {
	Doc    string
	Field  string
	Reason string
}

func (e *MalformedRuleError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed rule document %s: field %q: %s", e.Doc, e.Field, e.Reason)
	}
	return fmt.Sprintf("malformed rule document %s: %s", e.Doc, e.Reason)
}

// InvalidContextError reports an evaluation call with an incomplete file
// context. It is surfaced immediately rather than treated as a non-match.
type InvalidContextError struct {
	Missing string
}

func (e *InvalidContextError) Error() string {
	return fmt.Sprintf("invalid file context: missing %s", e.Missing)
}
