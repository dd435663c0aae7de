// Package release manages symlinked application releases on a deployment host.
//
// A project root on the host looks like this:
//
//	current -> releases/20240830180015_1.2.3
//	releases/
//	    20240830151210_1.2.2/
//	    20240830180015_1.2.3/
//	repository.git/
//	shared/
//	VERSION
//
// Each deployment extracts a tag from repository.git into a new directory under
// releases/, points the shared links at it, and swaps current over to it with a rename.
package release

import (
	"fmt"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/conn-castle/rollout/internal/messages"
)

const (
	// DefaultKeepReleases is the number of releases kept by CleanOldReleases when none is given.
	DefaultKeepReleases = 5
	// CurrentLink is the name of the symlink to the active release, inside the project root.
	CurrentLink = "current"
	// NextLink is the temporary symlink renamed over CurrentLink during activation.
	NextLink = "new_current"
	// VersionFile holds the tag of the active release, inside the project root.
	VersionFile = "VERSION"
	// ReadCurrentCommand prints the target of CurrentLink, or nothing when it is not a
	// symlink. It runs in the project root.
	ReadCurrentCommand = "if [ -L " + CurrentLink + " ]; then readlink " + CurrentLink + "; fi"

	releaseTimeFormat = "20060102150405"
)

// Layout holds the remote paths a Manager works with.
type Layout struct {
	ProjectRoot    string
	ReleasesRoot   string
	RepositoryRoot string
	SharedRoot     string
	// SharedFiles maps a path inside a release to a link name inside SharedRoot.
	SharedFiles map[string]string
}

// withDefaults fills the roots left empty with their default location under ProjectRoot.
func (l Layout) withDefaults() Layout {
	if l.ReleasesRoot == "" {
		l.ReleasesRoot = path.Join(l.ProjectRoot, "releases")
	}
	if l.RepositoryRoot == "" {
		l.RepositoryRoot = path.Join(l.ProjectRoot, "repository.git")
	}
	if l.SharedRoot == "" {
		l.SharedRoot = path.Join(l.ProjectRoot, "shared")
	}
	return l
}

// NewReleaseName returns the release name for tag deployed at t.
// The fixed-width UTC timestamp prefix makes lexicographic order chronological.
func NewReleaseName(t time.Time, tag string) string {
	return t.UTC().Format(releaseTimeFormat) + "_" + tag
}

// TagFromReleaseName returns the tag part of a name built by NewReleaseName,
// or "" when name does not carry one.
func TagFromReleaseName(name string) string {
	stamp, tag, ok := strings.Cut(name, "_")
	if !ok || len(stamp) != len(releaseTimeFormat) {
		return ""
	}
	if _, err := time.Parse(releaseTimeFormat, stamp); err != nil {
		return ""
	}
	return tag
}

// ValidateName rejects names that are not a single, plain path component.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf(messages.ReleaseNameRequired)
	}
	if name == "." || name == ".." || strings.ContainsAny(name, "/\\") ||
		strings.HasPrefix(name, "-") || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf(messages.ReleaseNameInvalidFmt, name)
	}
	return nil
}

// ValidateRef rejects refs that git would read as an option or that cannot be written
// to the version file as a single line. Slashes are allowed.
func ValidateRef(ref string) error {
	if strings.TrimSpace(ref) == "" {
		return fmt.Errorf(messages.ReleaseTagRequired)
	}
	if strings.HasPrefix(ref, "-") || strings.IndexFunc(ref, isSpaceOrControl) >= 0 {
		return fmt.Errorf(messages.ReleaseRefInvalidFmt, ref)
	}
	return nil
}

// ValidateTag rejects tags that cannot be embedded in a release name.
func ValidateTag(tag string) error {
	if err := ValidateRef(tag); err != nil {
		return err
	}
	if strings.ContainsAny(tag, "/\\") {
		return fmt.Errorf(messages.ReleaseTagInvalidFmt, tag)
	}
	return nil
}

func isSpaceOrControl(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r)
}
