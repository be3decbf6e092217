// Package storage provides XDG-compliant storage path management for signpost.
package storage

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"

	"github.com/tetherwind/signpost/internal/constants"
)

// AppName is the application name used for XDG directory paths.
const AppName = "signpost"

// Manager handles storage paths with filesystem abstraction.
type Manager struct {
	fs afero.Fs
}

// New creates a storage manager backed by the given filesystem.
func New(fs afero.Fs) *Manager {
	return &Manager{fs: fs}
}

// GetDataDir returns the XDG data directory for signpost, creating it if necessary.
func (m *Manager) GetDataDir() (string, error) {
	dataDir := filepath.Join(xdg.DataHome, AppName)
	if err := m.fs.MkdirAll(dataDir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	return dataDir, nil
}

// GetLogPath returns the full path to the signpost log file.
func (m *Manager) GetLogPath() (string, error) {
	dataDir, err := m.GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, constants.LogFilename), nil
}

// GetStatePath returns the full path to the acknowledgment state database.
func (m *Manager) GetStatePath() (string, error) {
	dataDir, err := m.GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, constants.StateFilename), nil
}
