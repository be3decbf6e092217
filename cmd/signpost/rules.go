package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/tetherwind/signpost/internal/constants"
	"github.com/tetherwind/signpost/internal/prompt"
	"github.com/tetherwind/signpost/internal/rule"
)

// createRulesCommand creates the rules management command with subcommands.
func createRulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage signpost rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setupApp(cmd)
			if err != nil {
				return err
			}

			output, err := env.app.ListRules(env.ctx)
			if err != nil {
				return fmt.Errorf("failed to list rules: %w", err)
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.AddCommand(
		createRulesTestCommand(),
		createRulesNewCommand(),
	)

	return cmd
}

// createRulesTestCommand creates the dry-run subcommand.
func createRulesTestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test <path>",
		Short: "Test a file path against the loaded rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setupApp(cmd)
			if err != nil {
				return err
			}

			content, _ := cmd.Flags().GetString("content")
			results, err := env.app.EvaluateContext(env.ctx, rule.FileContext{
				Path:    args[0],
				Content: content,
			})
			if err != nil {
				return err
			}

			if len(results) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No rules match")
				return nil
			}
			for _, result := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s [%s]: %s\n", result.RuleID, result.Kind, result.Message)
			}
			return nil
		},
	}

	cmd.Flags().String("content", "", "File content to evaluate content patterns against")

	return cmd
}

// createRulesNewCommand creates the interactive rule authoring subcommand.
func createRulesNewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Author a new rule document interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setupApp(cmd)
			if err != nil {
				return err
			}

			prompter := prompt.NewLinerPrompter()
			defer func() { _ = prompter.Close() }()

			doc, name, err := authorDocument(prompter)
			if err != nil {
				return err
			}

			// Reject the document before writing it, the same way the loader would.
			if _, err := rule.ParseDocument(name, []byte(doc)); err != nil {
				return err
			}

			if err := env.fs.MkdirAll(env.rulesDir, 0o750); err != nil {
				return fmt.Errorf("failed to create rules directory: %w", err)
			}
			path := filepath.Join(env.rulesDir, name+constants.DocExtension)
			if err := afero.WriteFile(env.fs, path, []byte(doc), 0o600); err != nil {
				return fmt.Errorf("failed to write rule document: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
}

// authorDocument collects rule fields interactively and renders the document text.
func authorDocument(prompter prompt.Prompter) (doc, name string, err error) {
	name, err = prompter.Prompt("Rule name:")
	if err != nil {
		return "", "", err
	}
	description, err := prompter.Prompt("Description (optional):")
	if err != nil {
		return "", "", err
	}
	globsLine, err := prompter.Prompt("Glob patterns (comma-separated):")
	if err != nil {
		return "", "", err
	}
	contains, err := prompter.Prompt("Content pattern (optional regex):")
	if err != nil {
		return "", "", err
	}
	priorityLine, err := prompter.Prompt("Priority (default 0):")
	if err != nil {
		return "", "", err
	}
	kind, err := prompter.Prompt("Kind (guide/guard, default guide):")
	if err != nil {
		return "", "", err
	}
	message, err := prompter.Prompt("Message:")
	if err != nil {
		return "", "", err
	}

	priority := 0
	if priorityLine != "" {
		priority, err = strconv.Atoi(strings.TrimSpace(priorityLine))
		if err != nil {
			return "", "", fmt.Errorf("invalid priority %q: %w", priorityLine, err)
		}
	}

	var b strings.Builder
	b.WriteString("---\n")
	_, _ = fmt.Fprintf(&b, "name: %s\n", strings.TrimSpace(name))
	if description != "" {
		_, _ = fmt.Fprintf(&b, "description: %s\n", description)
	}
	b.WriteString("globs:\n")
	for _, g := range strings.Split(globsLine, ",") {
		_, _ = fmt.Fprintf(&b, "  - %q\n", strings.TrimSpace(g))
	}
	if contains != "" {
		_, _ = fmt.Fprintf(&b, "contains: %q\n", contains)
	}
	if priority != 0 {
		_, _ = fmt.Fprintf(&b, "priority: %d\n", priority)
	}
	if kind != "" {
		_, _ = fmt.Fprintf(&b, "kind: %s\n", strings.TrimSpace(kind))
	}
	b.WriteString("---\n")
	b.WriteString(message)
	b.WriteString("\n")

	return b.String(), strings.TrimSpace(name), nil
}
