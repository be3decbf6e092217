package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tetherwind/signpost/internal/cli"
	"github.com/tetherwind/signpost/internal/rule"
)

// HookExitError carries the exit code hook integrations expect: 0 when
// clean or advisory, 2 when a guard rule matched.
type HookExitError struct {
	Message string
	Code    int
}

func (e *HookExitError) Error() string {
	return e.Message
}

// hookSuggestion is one suggestion in the hook's JSON output.
type hookSuggestion struct {
	Rule    string `json:"rule"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type hookOutput struct {
	Suggestions []hookSuggestion `json:"suggestions"`
}

// createHookCommand creates the command that processes file-context
// events from editor and assistant integrations.
func createHookCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "hook",
		Short:        "Process a file-context event from stdin",
		Long:         "Read a JSON file-context event from stdin and emit matched suggestions as JSON",
		SilenceUsage: true,
		RunE:         runHookCommand,
	}
}

func runHookCommand(cmd *cobra.Command, _ []string) error {
	env, err := setupApp(cmd)
	if err != nil {
		return err
	}

	result, err := env.app.ProcessHook(env.ctx, cmd.InOrStdin())
	if err != nil {
		return err
	}

	output := hookOutput{Suggestions: make([]hookSuggestion, 0, len(result.Results))}
	for _, r := range result.Results {
		output.Suggestions = append(output.Suggestions, hookSuggestion{
			Rule:    r.RuleID,
			Kind:    string(r.Kind),
			Message: r.Message,
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("failed to encode hook output: %w", err)
	}

	if result.Mode == cli.ProcessModeBlock {
		return &HookExitError{Code: 2, Message: guardSummary(result.Results)}
	}
	return nil
}

func guardSummary(results []rule.MatchResult) string {
	for _, r := range results {
		if r.Kind == rule.KindGuard {
			return "guard rule matched: " + r.RuleID
		}
	}
	return "guard rule matched"
}
