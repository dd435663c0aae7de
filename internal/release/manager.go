package release

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/conn-castle/rollout/internal/logging"
	"github.com/conn-castle/rollout/internal/messages"
	"github.com/conn-castle/rollout/internal/remote"
)

// Options configures optional Manager collaborators.
type Options struct {
	// Prompter confirms rollbacks. Rollback fails when it is nil.
	Prompter Prompter
	// Hooks fire around every mutating operation. May be nil.
	Hooks  *Hooks
	Logger *slog.Logger
	// Now returns the deployment time used to name releases. Defaults to time.Now.
	Now func() time.Time
}

// Manager runs the release lifecycle for one project on one host.
// Operations are sequential and not safe to run concurrently against the same project.
type Manager struct {
	layout      Layout
	exec        remote.Executor
	hooks       *Hooks
	prompter    Prompter
	logger      *slog.Logger
	now         func() time.Time
	newLinkName func() string
}

// New returns a Manager for layout that runs its commands through ex.
func New(layout Layout, ex remote.Executor, opts Options) (*Manager, error) {
	if ex == nil {
		return nil, fmt.Errorf(messages.ReleaseExecutorRequired)
	}
	if strings.TrimSpace(layout.ProjectRoot) == "" {
		return nil, fmt.Errorf(messages.ReleaseLayoutRootRequired)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Manager{
		layout:      layout.withDefaults(),
		exec:        ex,
		hooks:       opts.Hooks,
		prompter:    opts.Prompter,
		logger:      logging.OrDiscard(opts.Logger).With("host", ex.Host()),
		now:         now,
		newLinkName: uuid.NewString,
	}, nil
}

// Layout returns the layout with default roots filled in.
func (m *Manager) Layout() Layout {
	return m.layout
}

// Host returns the host the manager deploys to.
func (m *Manager) Host() string {
	return m.exec.Host()
}

// ReleasePath returns the directory of the named release. It does not check that it exists.
func (m *Manager) ReleasePath(name string) string {
	return path.Join(m.layout.ReleasesRoot, name)
}

// CreateRelease creates the directory for a new release and extracts the repository
// contents at tag into it. It fails if the release directory already exists.
func (m *Manager) CreateRelease(ctx context.Context, name string, tag string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := ValidateRef(tag); err != nil {
		return err
	}
	ev := Event{Operation: OpCreate, Release: name, Tag: tag}
	return m.withHooks(ctx, ev, func() error {
		releasePath := m.ReleasePath(name)
		m.logger.Info("creating release", "release", name, "tag", tag)
		if _, err := m.exec.Run(ctx, "", "mkdir "+remote.Quote(releasePath)); err != nil {
			return fmt.Errorf(messages.ReleaseCreateFailedFmt, name, err)
		}
		extract := fmt.Sprintf("git --git-dir=%s rev-parse --verify --quiet %s >/dev/null && git archive --remote=%s %s | tar -x -C %s",
			remote.Quote(m.layout.RepositoryRoot),
			remote.Quote(tag+"^{commit}"),
			remote.Quote(m.layout.RepositoryRoot),
			remote.Quote(tag),
			remote.Quote(releasePath))
		if _, err := m.exec.Run(ctx, "", extract); err != nil {
			return fmt.Errorf(messages.ReleaseExtractFailedFmt, tag, name, err)
		}
		return nil
	})
}

// LinkSharedFiles points every configured shared link at its target inside the release.
// Each link is created under a unique temporary name and renamed over the old one, so a
// link is never observed missing or half-written.
func (m *Manager) LinkSharedFiles(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	ev := Event{Operation: OpLink, Release: name}
	return m.withHooks(ctx, ev, func() error {
		releasePath := m.ReleasePath(name)
		targets := make([]string, 0, len(m.layout.SharedFiles))
		for target := range m.layout.SharedFiles {
			targets = append(targets, target)
		}
		sort.Strings(targets)
		for _, target := range targets {
			link := m.layout.SharedFiles[target]
			targetPath := path.Join(releasePath, target)
			tmp := m.newLinkName()
			m.logger.Debug("linking shared file", "link", link, "target", targetPath)
			if _, err := m.exec.Run(ctx, m.layout.SharedRoot, "ln -s "+remote.QuoteAll(targetPath, tmp)); err != nil {
				return fmt.Errorf(messages.ReleaseLinkFailedFmt, link, targetPath, err)
			}
			if _, err := m.exec.Run(ctx, m.layout.SharedRoot, "mv -Tf "+remote.QuoteAll(tmp, link)); err != nil {
				return fmt.Errorf(messages.ReleaseLinkFailedFmt, link, targetPath, err)
			}
		}
		return nil
	})
}

// ActivateRelease makes current point at the named release.
// The new link is built as new_current and renamed over current, so current always points
// at either the old or the new release. An interrupted activation leaves new_current
// behind; the next activation replaces it.
func (m *Manager) ActivateRelease(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	ev := Event{Operation: OpActivate, Release: name}
	return m.withHooks(ctx, ev, func() error {
		m.logger.Info("activating release", "release", name)
		if _, err := m.exec.Run(ctx, m.layout.ProjectRoot, "ln -sfn "+remote.QuoteAll(m.ReleasePath(name), NextLink)); err != nil {
			return fmt.Errorf(messages.ReleaseActivateFailedFmt, name, err)
		}
		if _, err := m.exec.Run(ctx, m.layout.ProjectRoot, "mv -Tf "+remote.QuoteAll(NextLink, CurrentLink)); err != nil {
			return fmt.Errorf(messages.ReleaseActivateFailedFmt, name, err)
		}
		return nil
	})
}

// Releases returns the installed release names sorted oldest to newest.
// Each call lists the releases root again.
func (m *Manager) Releases(ctx context.Context) ([]string, error) {
	names, err := m.exec.List(ctx, m.layout.ReleasesRoot)
	if err != nil {
		return nil, fmt.Errorf(messages.ReleaseListFailedFmt, m.layout.ReleasesRoot, err)
	}
	sort.Strings(names)
	return names, nil
}

// CurrentRelease returns the name of the release current points to, or "" before the
// first activation.
func (m *Manager) CurrentRelease(ctx context.Context) (string, error) {
	target, err := m.exec.Run(ctx, m.layout.ProjectRoot, ReadCurrentCommand)
	if err != nil {
		return "", fmt.Errorf(messages.ReleaseReadCurrentFailedFmt, err)
	}
	target = strings.TrimSpace(target)
	if target == "" {
		return "", nil
	}
	return path.Base(target), nil
}

// CleanOldReleases removes every release except the keep newest ones and returns the
// removed names. The release current points to is never removed.
func (m *Manager) CleanOldReleases(ctx context.Context, keep int) ([]string, error) {
	if keep < 1 {
		return nil, fmt.Errorf(messages.ReleaseKeepInvalidFmt, keep)
	}
	removed := make([]string, 0)
	err := m.withHooks(ctx, Event{Operation: OpClean}, func() error {
		releases, err := m.Releases(ctx)
		if err != nil {
			return err
		}
		if len(releases) <= keep {
			return nil
		}
		current, err := m.CurrentRelease(ctx)
		if err != nil {
			return err
		}
		for _, name := range releases[:len(releases)-keep] {
			if name == current {
				m.logger.Warn("keeping active release outside the keep window", "release", name)
				continue
			}
			m.logger.Info("removing release", "release", name)
			if _, err := m.exec.Run(ctx, "", "rm -rf "+remote.Quote(m.ReleasePath(name))); err != nil {
				return fmt.Errorf(messages.ReleaseRemoveFailedFmt, name, err)
			}
			removed = append(removed, name)
		}
		return nil
	})
	return removed, err
}

// InstalledVersion returns the tag recorded in the version file.
func (m *Manager) InstalledVersion(ctx context.Context) (string, error) {
	out, err := m.exec.Run(ctx, m.layout.ProjectRoot, "cat "+VersionFile)
	if err != nil {
		return "", fmt.Errorf(messages.ReleaseReadVersionFailedFmt, err)
	}
	return strings.TrimSpace(out), nil
}

// UpdateVersionFile overwrites the version file with tag.
func (m *Manager) UpdateVersionFile(ctx context.Context, tag string) error {
	if err := ValidateRef(tag); err != nil {
		return err
	}
	ev := Event{Operation: OpUpdateVersion, Tag: tag}
	return m.withHooks(ctx, ev, func() error {
		cmd := fmt.Sprintf(`printf '%%s\n' %s > %s`, remote.Quote(tag), VersionFile)
		if _, err := m.exec.Run(ctx, m.layout.ProjectRoot, cmd); err != nil {
			return fmt.Errorf(messages.ReleaseWriteVersionFailedFmt, err)
		}
		return nil
	})
}

// withHooks runs fn between the before and after hooks for ev.
// After hooks only run when fn succeeds.
func (m *Manager) withHooks(ctx context.Context, ev Event, fn func() error) error {
	ev.Phase = PhaseBefore
	if err := m.hooks.fire(ctx, ev); err != nil {
		return err
	}
	if err := fn(); err != nil {
		return err
	}
	ev.Phase = PhaseAfter
	return m.hooks.fire(ctx, ev)
}
