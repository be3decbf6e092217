package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/tetherwind/signpost/internal/cli"
	"github.com/tetherwind/signpost/internal/config"
	"github.com/tetherwind/signpost/internal/constants"
	"github.com/tetherwind/signpost/internal/logging"
	"github.com/tetherwind/signpost/internal/project"
)

// createRootCommand creates the main root command that shows help by default.
func createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "signpost",
		Short: "Contextual guidance from rule documents",
		Long:  "signpost matches rule documents against files and surfaces their guidance messages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP("rules", "r", "", "Path to the rules directory (default .signpost/rules)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(
		createCheckCommand(),
		createHookCommand(),
		createRulesCommand(),
		createValidateCommand(),
	)

	return rootCmd
}

// appEnv is everything a command needs after setup.
type appEnv struct {
	ctx         context.Context
	app         *cli.App
	fs          afero.Fs
	projectRoot string
	rulesDir    string
}

// setupApp resolves the project root, loads the app config and builds the
// App with a context-attached logger.
func setupApp(cmd *cobra.Command) (*appEnv, error) {
	root, err := project.FindRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to find project root: %w", err)
	}

	fs := afero.NewOsFs()
	cfg, err := config.Load(fs, filepath.Join(root, constants.ProjectDir, constants.ConfigFilename))
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if flagLevel, err := cmd.Flags().GetString("log-level"); err == nil && flagLevel != "" {
		level = flagLevel
	}

	ctx, err := logging.New(cmd.Context(), fs, logging.Config{
		ProjectID: root,
		Level:     logging.ParseLevel(level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	rulesDir := cfg.RulesDir
	if flagDir, err := cmd.Flags().GetString("rules"); err == nil && flagDir != "" {
		rulesDir = flagDir
	}
	if !filepath.IsAbs(rulesDir) {
		rulesDir = filepath.Join(root, rulesDir)
	}

	return &appEnv{
		ctx:         ctx,
		app:         cli.NewApp(fs, rulesDir, cfg.DisabledSet()),
		fs:          fs,
		projectRoot: root,
		rulesDir:    rulesDir,
	}, nil
}
