// Package docs discovers and reads rule documents from a rules directory.
// Loading is the only blocking I/O in signpost and happens once at startup.
package docs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/tetherwind/signpost/internal/constants"
	"github.com/tetherwind/signpost/internal/logging"
	"github.com/tetherwind/signpost/internal/registry"
	"github.com/tetherwind/signpost/internal/rule"
)

// Report summarizes one load pass: how many rules loaded and which
// documents were rejected. A rejected document never aborts the load of
// the others.
type Report struct {
	Loaded   int
	Failures []*rule.MalformedRuleError
}

// Ok reports whether every discovered document loaded.
func (r *Report) Ok() bool {
	return len(r.Failures) == 0
}

// LoadDir walks dir for rule documents (*.md, lexical order), parses them
// and returns the resulting registry. Malformed documents are logged,
// collected in the report and skipped.
func LoadDir(ctx context.Context, fsys afero.Fs, dir string) (*registry.Registry, *Report, error) {
	documents, err := collect(fsys, dir)
	if err != nil {
		return nil, nil, err
	}

	reg, failures := registry.Load(documents)

	log := logging.Get(ctx)
	for _, failure := range failures {
		log.Warn().
			Str("document", failure.Doc).
			Str("field", failure.Field).
			Str("reason", failure.Reason).
			Msg("Skipping malformed rule document")
	}
	log.Debug().
		Str("dir", dir).
		Int("loaded", reg.Len()).
		Int("rejected", len(failures)).
		Msg("Rule documents loaded")

	return reg, &Report{Loaded: reg.Len(), Failures: failures}, nil
}

// collect reads every rule document under dir. afero.Walk visits entries
// in lexical order, which gives the registry its stable load order.
func collect(fsys afero.Fs, dir string) ([]registry.Document, error) {
	var documents []registry.Document

	err := afero.Walk(fsys, dir, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if info.IsDir() || !strings.HasSuffix(path, constants.DocExtension) {
			return nil
		}

		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("failed to read rule document %s: %w", path, err)
		}

		name := path
		if rel, err := filepath.Rel(dir, path); err == nil {
			name = rel
		}
		documents = append(documents, registry.Document{Name: name, Data: data})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk rules directory %s: %w", dir, err)
	}

	return documents, nil
}
