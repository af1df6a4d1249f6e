package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// tokenFile keeps the session token between invocations of the client.
type tokenFile struct {
	path string
}

// newTokenFile uses path when set, otherwise <user config dir>/greenwall/session.
func newTokenFile(path string) (*tokenFile, error) {
	if path != "" {
		return &tokenFile{path: path}, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("user config dir: %w", err)
	}

	return &tokenFile{path: filepath.Join(dir, "greenwall", "session")}, nil
}

// Load returns "" when no session was saved yet.
func (f *tokenFile) Load() (string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read session file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

func (f *tokenFile) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(f.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

// Clear forgets the session. A missing file is not an error.
func (f *tokenFile) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}

	return nil
}
