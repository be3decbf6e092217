package cli

import "github.com/tetherwind/signpost/internal/rule"

// ProcessMode tells the hook command how to exit after evaluation.
type ProcessMode int

const (
	// ProcessModeClean means no rule matched; nothing to surface.
	ProcessModeClean ProcessMode = iota

	// ProcessModeAdvise means only advisory rules matched.
	ProcessModeAdvise

	// ProcessModeBlock means at least one guard rule matched.
	ProcessModeBlock
)

// ProcessResult is the structured outcome of one hook evaluation.
type ProcessResult struct {
	Results []rule.MatchResult
	Mode    ProcessMode
}

// modeFor derives the process mode from the matched rules.
func modeFor(results []rule.MatchResult) ProcessMode {
	if len(results) == 0 {
		return ProcessModeClean
	}
	for _, r := range results {
		if r.Kind == rule.KindGuard {
			return ProcessModeBlock
		}
	}
	return ProcessModeAdvise
}
