package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// createValidateCommand creates the command that checks every rule document loads.
func createValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "validate",
		Short:        "Validate the rule documents",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setupApp(cmd)
			if err != nil {
				return err
			}

			report, err := env.app.Validate(env.ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, failure := range report.Failures {
				_, _ = fmt.Fprintf(out, "%s %s\n", color.RedString("✗"), failure.Error())
			}
			_, _ = fmt.Fprintf(out, "%d rule(s) loaded, %d document(s) rejected\n",
				report.Loaded, len(report.Failures))

			if !report.Ok() {
				return fmt.Errorf("%d malformed rule document(s)", len(report.Failures))
			}
			return nil
		},
	}
}
