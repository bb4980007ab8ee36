package client

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Token persistence for the CLI: one file holding the opaque session token,
// readable only by the owner.

const tokenFileMode = 0o600

func defaultTokenPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".calendard", "token"), nil
}

// LoadToken reads the saved token. A missing file returns "", nil: the
// caller is simply not logged in yet.
func LoadToken(path string) (string, error) {
	if path == "" {
		var err error
		if path, err = defaultTokenPath(); err != nil {
			return "", err
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// SaveToken writes the token, creating the parent directory if needed.
func SaveToken(path, token string) error {
	if path == "" {
		var err error
		if path, err = defaultTokenPath(); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token+"\n"), tokenFileMode)
}
