package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tetherwind/signpost/internal/rule"
	"github.com/tetherwind/signpost/internal/state"
	"github.com/tetherwind/signpost/internal/storage"
)

// createCheckCommand creates the command that evaluates files on disk.
func createCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Show guidance for the given files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCheckCommand,
	}

	cmd.Flags().BoolP("quiet", "q", false, "Print only file paths and matched rule IDs")
	cmd.Flags().Bool("new-only", false, "Skip suggestions that were already acknowledged")
	cmd.Flags().Bool("ack", false, "Record surfaced suggestions as acknowledged")

	return cmd
}

func runCheckCommand(cmd *cobra.Command, args []string) error {
	env, err := setupApp(cmd)
	if err != nil {
		return err
	}

	quiet, _ := cmd.Flags().GetBool("quiet")
	newOnly, _ := cmd.Flags().GetBool("new-only")
	ack, _ := cmd.Flags().GetBool("ack")

	var stateManager *state.Manager
	if newOnly || ack {
		statePath, err := storage.New(env.fs).GetStatePath()
		if err != nil {
			return err
		}
		stateManager, err = state.NewManager(statePath, env.projectRoot)
		if err != nil {
			return err
		}
		defer func() { _ = stateManager.Close() }()
	}

	for _, path := range args {
		results, err := env.app.EvaluateFile(env.ctx, path)
		if err != nil {
			return err
		}

		for _, result := range results {
			if newOnly {
				acked, err := stateManager.IsAcknowledged(env.ctx, result.RuleID, path)
				if err != nil {
					return err
				}
				if acked {
					continue
				}
			}

			printResult(cmd, path, result, quiet)

			if ack {
				if err := stateManager.Acknowledge(env.ctx, result.RuleID, path); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func printResult(cmd *cobra.Command, path string, result rule.MatchResult, quiet bool) {
	out := cmd.OutOrStdout()
	if quiet {
		_, _ = fmt.Fprintf(out, "%s: %s\n", path, result.RuleID)
		return
	}

	label := color.CyanString(result.RuleID)
	if result.Kind == rule.KindGuard {
		label = color.RedString(result.RuleID)
	}
	_, _ = fmt.Fprintf(out, "%s %s\n%s\n\n", color.New(color.Bold).Sprint(path), label, result.Message)
}
