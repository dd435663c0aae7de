package messages

// Release lifecycle messages.
const (
	ReleaseNameRequired          = "release name is required"
	ReleaseNameInvalidFmt        = "invalid release name %q: must be a single path component"
	ReleaseTagRequired           = "tag is required"
	ReleaseTagInvalidFmt         = "invalid tag %q: must not contain slashes to be part of a release name"
	ReleaseRefInvalidFmt         = "invalid tag %q: must not start with '-' or contain whitespace or control characters"
	ReleaseExecutorRequired      = "release manager requires an executor"
	ReleaseLayoutRootRequired    = "release layout requires a project root"
	ReleaseKeepInvalidFmt        = "keep must be at least 1 (got %d)"
	ReleaseCreateFailedFmt       = "create release %s: %w"
	ReleaseExtractFailedFmt      = "extract %s into release %s: %w"
	ReleaseLinkFailedFmt         = "link shared file %s -> %s: %w"
	ReleaseActivateFailedFmt     = "activate release %s: %w"
	ReleaseRemoveFailedFmt       = "remove release %s: %w"
	ReleaseListFailedFmt         = "list releases in %s: %w"
	ReleaseReadCurrentFailedFmt  = "read current release: %w"
	ReleaseReadVersionFailedFmt  = "read version file: %w"
	ReleaseWriteVersionFailedFmt = "write version file: %w"
	ReleaseHookFailedFmt         = "%s hook for %s: %w"
	ReleasePromptFailedFmt       = "rollback confirmation: %w"
	ReleasePrompterRequired      = "rollback requires a prompter"

	ReleaseNoRollbackTarget = "no release to rollback to"
	ReleaseNotInstalled     = "release not installed"
	ReleaseNotInstalledFmt  = "the given release %s is not installed on the server. Available releases:\n\n%s"
)
