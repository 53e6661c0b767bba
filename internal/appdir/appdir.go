// Package appdir locates and prepares the per-user files demo keeps on disk.
package appdir

import (
	"fmt"
	"os"
	"path/filepath"
)

// Name is the directory name used under the user's config directory.
const Name = "demo"

// ConfigDir returns the OS-specific config directory for demo.
// Linux: $XDG_CONFIG_HOME/demo  macOS: ~/Library/Application Support/demo
// Windows: %AppData%/demo
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting user config dir: %w", err)
	}
	return filepath.Join(base, Name), nil
}

// EnsureFile creates path (mode 0600) and its parent directories (0700) when
// missing. An existing file is left alone.
func EnsureFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return fmt.Errorf("creating config file: %w", err)
	}
	return f.Close()
}
