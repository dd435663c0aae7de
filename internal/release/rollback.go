package release

import (
	"context"
	"fmt"
	"slices"

	"github.com/conn-castle/rollout/internal/messages"
)

// RollbackOutcome reports how a rollback ended.
type RollbackOutcome int

const (
	// RollbackFailed is returned together with a non-nil error.
	RollbackFailed RollbackOutcome = iota
	// RollbackAborted means the operator declined the confirmation; nothing changed.
	RollbackAborted
	// RollbackCompleted means current now points at the target release.
	RollbackCompleted
)

func (o RollbackOutcome) String() string {
	switch o {
	case RollbackAborted:
		return "aborted"
	case RollbackCompleted:
		return "completed"
	default:
		return "failed"
	}
}

// Rollback switches current back to name, or to the second newest release when name is
// empty. Nothing on the host changes until the prompter answers "y". After activation
// the version file is updated with the tag encoded in the release name, if any.
// It returns the release that was (or would have been) activated.
func (m *Manager) Rollback(ctx context.Context, name string) (string, RollbackOutcome, error) {
	releases, err := m.Releases(ctx)
	if err != nil {
		return "", RollbackFailed, err
	}
	if name == "" {
		if len(releases) < 2 {
			return "", RollbackFailed, &RollbackError{Err: ErrNoRollbackTarget, Available: releases}
		}
		name = releases[len(releases)-2]
	} else if !slices.Contains(releases, name) {
		return name, RollbackFailed, &RollbackError{Err: ErrReleaseNotInstalled, Release: name, Available: releases}
	}
	if err := ValidateName(name); err != nil {
		return name, RollbackFailed, err
	}

	if m.prompter == nil {
		return name, RollbackFailed, fmt.Errorf(messages.ReleasePrompterRequired)
	}
	answer, err := m.prompter.Prompt(ctx, name, m.exec.Host())
	if err != nil {
		return name, RollbackFailed, fmt.Errorf(messages.ReleasePromptFailedFmt, err)
	}
	if answer != ConfirmAnswer {
		m.logger.Info("rollback aborted", "release", name)
		return name, RollbackAborted, nil
	}

	// TODO: restore the database dump from backups/<release>.dump.sql once backups are taken on deploy.
	tag := TagFromReleaseName(name)
	err = m.withHooks(ctx, Event{Operation: OpRollback, Release: name, Tag: tag}, func() error {
		if err := m.ActivateRelease(ctx, name); err != nil {
			return err
		}
		if tag == "" {
			return nil
		}
		return m.UpdateVersionFile(ctx, tag)
	})
	if err != nil {
		return name, RollbackFailed, err
	}
	return name, RollbackCompleted, nil
}
