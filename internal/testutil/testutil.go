// Package testutil provides shared test helpers.
package testutil

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// NopLogger returns a logger that discards all output.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// CaptureStdout redirects os.Stdout to a pipe while fn runs and returns
// everything fn wrote. os.Stdout is restored even if fn fails the test.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	t.Cleanup(func() { os.Stdout = orig })

	done := make(chan []byte)
	go func() {
		out, _ := io.ReadAll(r)
		done <- out
	}()

	fn()

	require.NoError(t, w.Close())
	os.Stdout = orig
	out := <-done
	require.NoError(t, r.Close())
	return string(out)
}
