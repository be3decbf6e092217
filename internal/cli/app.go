// Package cli wires the loader, registry and engine behind the signpost commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/tetherwind/signpost/internal/docs"
	"github.com/tetherwind/signpost/internal/engine"
	"github.com/tetherwind/signpost/internal/hooks"
	"github.com/tetherwind/signpost/internal/registry"
	"github.com/tetherwind/signpost/internal/rule"
)

// App holds the pieces a command invocation needs. The registry is loaded
// once per invocation; evaluation itself does no I/O.
type App struct {
	fs       afero.Fs
	disabled map[string]bool
	rulesDir string
}

// NewApp creates an App reading rule documents from rulesDir through fs.
// Rules whose IDs appear in disabled are loaded but never surfaced.
func NewApp(fs afero.Fs, rulesDir string, disabled map[string]bool) *App {
	return &App{fs: fs, rulesDir: rulesDir, disabled: disabled}
}

// LoadRegistry loads the rule documents, logging and collecting malformed ones.
func (a *App) LoadRegistry(ctx context.Context) (*registry.Registry, *docs.Report, error) {
	return docs.LoadDir(ctx, a.fs, a.rulesDir)
}

// EvaluateContext evaluates a file context against the loaded rules,
// dropping results for disabled rule IDs.
func (a *App) EvaluateContext(ctx context.Context, fctx rule.FileContext) ([]rule.MatchResult, error) {
	reg, _, err := a.LoadRegistry(ctx)
	if err != nil {
		return nil, err
	}
	return a.evaluate(reg, fctx)
}

// EvaluateFile reads a file through the app filesystem and evaluates it.
func (a *App) EvaluateFile(ctx context.Context, path string) ([]rule.MatchResult, error) {
	content, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return a.EvaluateContext(ctx, rule.FileContext{Path: path, Content: string(content)})
}

// ProcessHook decodes a file-context event and evaluates it.
func (a *App) ProcessHook(ctx context.Context, input io.Reader) (ProcessResult, error) {
	event, err := hooks.ParseInput(input)
	if err != nil {
		return ProcessResult{}, fmt.Errorf("failed to parse hook input: %w", err)
	}

	results, err := a.EvaluateContext(ctx, rule.FileContext{
		Path:    event.FilePath,
		Content: event.Content,
	})
	if err != nil {
		return ProcessResult{}, err
	}

	return ProcessResult{Results: results, Mode: modeFor(results)}, nil
}

// ListRules formats the loaded rules for display in load order.
func (a *App) ListRules(ctx context.Context) (string, error) {
	reg, _, err := a.LoadRegistry(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, r := range reg.All() {
		status := ""
		if a.disabled[r.ID] {
			status = " (disabled)"
		}
		_, _ = fmt.Fprintf(&b, "%d. %s [%s, priority %d]%s\n", i+1, r.ID, r.Kind, r.Priority, status)
		_, _ = fmt.Fprintf(&b, "   globs: %s\n", strings.Join(r.Globs, ", "))
		if r.Contains != "" {
			_, _ = fmt.Fprintf(&b, "   contains: %s\n", r.Contains)
		}
		if r.Description != "" {
			_, _ = fmt.Fprintf(&b, "   %s\n", r.Description)
		}
	}
	if reg.Len() == 0 {
		b.WriteString("No rules loaded\n")
	}
	return b.String(), nil
}

// Validate loads every rule document and reports the malformed ones.
func (a *App) Validate(ctx context.Context) (*docs.Report, error) {
	_, report, err := a.LoadRegistry(ctx)
	return report, err
}

func (a *App) evaluate(reg *registry.Registry, fctx rule.FileContext) ([]rule.MatchResult, error) {
	results, err := engine.Evaluate(reg, fctx)
	if err != nil {
		return nil, err //nolint:wrapcheck // engine errors carry rule context already
	}
	if len(a.disabled) == 0 {
		return results, nil
	}

	kept := make([]rule.MatchResult, 0, len(results))
	for _, r := range results {
		if !a.disabled[r.RuleID] {
			kept = append(kept, r)
		}
	}
	return kept, nil
}
