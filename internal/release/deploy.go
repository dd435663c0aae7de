package release

import (
	"context"
	"fmt"

	"github.com/conn-castle/rollout/internal/messages"
)

// DeployOptions controls the clean-up step of Deploy.
type DeployOptions struct {
	// Keep is the number of releases left after cleaning. Zero means DefaultKeepReleases.
	Keep      int
	SkipClean bool
}

// Deploy installs tag as a new release and activates it: create, link shared files,
// activate, record the version, then remove old releases. It stops at the first failing
// step and returns the new release name even on failure.
func (m *Manager) Deploy(ctx context.Context, tag string, opts DeployOptions) (string, error) {
	if err := ValidateTag(tag); err != nil {
		return "", err
	}
	keep := opts.Keep
	if keep < 0 {
		return "", fmt.Errorf(messages.ReleaseKeepInvalidFmt, keep)
	}
	if keep == 0 {
		keep = DefaultKeepReleases
	}
	name := NewReleaseName(m.now(), tag)
	err := m.withHooks(ctx, Event{Operation: OpDeploy, Release: name, Tag: tag}, func() error {
		if err := m.CreateRelease(ctx, name, tag); err != nil {
			return err
		}
		if err := m.LinkSharedFiles(ctx, name); err != nil {
			return err
		}
		if err := m.ActivateRelease(ctx, name); err != nil {
			return err
		}
		if err := m.UpdateVersionFile(ctx, tag); err != nil {
			return err
		}
		if opts.SkipClean {
			return nil
		}
		_, err := m.CleanOldReleases(ctx, keep)
		return err
	})
	return name, err
}
