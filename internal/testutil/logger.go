// Package testutil holds shared helpers for package tests.
package testutil

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
)

// NewTestContext returns a context carrying a discard logger so code under
// test can call logging.Get without setup.
func NewTestContext(t *testing.T) context.Context {
	t.Helper()
	logger := zerolog.New(io.Discard)
	return logger.WithContext(context.Background())
}
