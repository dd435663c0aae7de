package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/conn-castle/rollout/internal/messages"
)

// DefaultPath returns the config path used when none is given: rollout.toml in dir.
func DefaultPath(dir string) string {
	return filepath.Join(dir, DefaultFileName)
}

// Find walks up from start looking for rollout.toml and returns the first match.
// found is false when no ancestor has one.
func Find(start string) (string, bool, error) {
	if start == "" {
		return "", false, errors.New(messages.ConfigFindStartRequired)
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false, err
	}
	for {
		candidate := DefaultPath(dir)
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", false, fmt.Errorf(messages.ConfigPathIsDirFmt, candidate)
			}
			return candidate, true, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", false, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}
