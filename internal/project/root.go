// Package project provides utilities for detecting project root directories.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tetherwind/signpost/internal/constants"
)

// FindRoot finds the project root directory: SIGNPOST_PROJECT_DIR when set,
// otherwise the nearest ancestor carrying a project marker, otherwise the
// current working directory.
func FindRoot() (string, error) {
	if root, found := checkProjectDirEnv(); found {
		return root, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	if root, found := FindMarkerFrom(cwd); found {
		return root, nil
	}

	return cwd, nil
}

// FindMarkerFrom searches for project root markers starting from startDir.
// Exposed so tests can probe from a fixed directory.
func FindMarkerFrom(startDir string) (string, bool) {
	markers := []string{constants.ProjectDir, ".git", "go.mod", "package.json"}
	currentDir := startDir

	for {
		if hasMarker(currentDir, markers) {
			return currentDir, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func checkProjectDirEnv() (string, bool) {
	dir := os.Getenv("SIGNPOST_PROJECT_DIR")
	if dir == "" {
		return "", false
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", false
	}

	return abs, true
}

func hasMarker(dir string, markers []string) bool {
	for _, marker := range markers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
