package release

import (
	"errors"
	"fmt"
	"strings"

	"github.com/conn-castle/rollout/internal/messages"
)

var (
	// ErrNoRollbackTarget reports that no previous release exists to roll back to (not found).
	ErrNoRollbackTarget = errors.New(messages.ReleaseNoRollbackTarget)
	// ErrReleaseNotInstalled reports a rollback target that is not an installed release
	// (invalid argument).
	ErrReleaseNotInstalled = errors.New(messages.ReleaseNotInstalled)
)

// RollbackError is returned when Rollback cannot pick a valid target.
// It unwraps to ErrNoRollbackTarget or ErrReleaseNotInstalled.
type RollbackError struct {
	Err       error
	Release   string
	Available []string
}

func (e *RollbackError) Error() string {
	if errors.Is(e.Err, ErrReleaseNotInstalled) {
		return fmt.Sprintf(messages.ReleaseNotInstalledFmt, e.Release, strings.Join(e.Available, "\n"))
	}
	return e.Err.Error()
}

func (e *RollbackError) Unwrap() error {
	return e.Err
}
