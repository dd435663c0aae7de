package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "rollout"
	// RootShort is the short description for the root command.
	RootShort       = "Deploy and roll back symlinked releases on remote hosts"
	RootFlagConfig  = "Path to the rollout config file"
	RootFlagSite    = "Site to deploy (selects [sites.<site>.<env>] overrides)"
	RootFlagEnv     = "Environment of the selected site"
	RootFlagVerbose = "Log every remote command"
	HostHeaderFmt   = "==> %s\n"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// DeployUse is the deploy command usage.
	DeployUse         = "deploy <tag>"
	DeployShort       = "Create, link, and activate a release for a tag"
	DeployFlagKeep    = "Number of releases to keep after deploying"
	DeployFlagNoClean = "Keep every old release after deploying"
	DeployDoneFmt     = "Deployed %s as release %s\n"

	// RollbackUse is the rollback command usage.
	RollbackUse                    = "rollback [release]"
	RollbackShort                  = "Switch current back to a previously installed release"
	RollbackFlagYes                = "Skip the confirmation prompt"
	RollbackFlagSelect             = "Pick the target release interactively"
	RollbackConfirmFmt             = "You're about to rollback to release %s on %s. Are you sure you want to continue (y/n)? "
	RollbackAborting               = "Aborting."
	RollbackDoneFmt                = "Rolled back %s to release %s\n"
	RollbackSelectTitleFmt         = "Rollback %s to"
	RollbackSelectRequiresTerminal = "--select requires an interactive terminal"
	RollbackSelectWithRelease      = "--select cannot be combined with a release argument"
	RollbackYesRequiresTerminal    = "rollback confirmation requires an interactive terminal; re-run with --yes to skip it"

	// ReleasesUse is the releases command usage.
	ReleasesUse        = "releases"
	ReleasesShort      = "List installed releases, oldest first"
	ReleasesNone       = "  (no releases installed)"
	ReleasesLineFmt    = "  %s\n"
	ReleasesCurrentFmt = "* %s\n"

	// CleanUse is the clean command usage.
	CleanUse        = "clean"
	CleanShort      = "Remove old releases"
	CleanFlagKeep   = "Number of releases to keep"
	CleanRemovedFmt = "Removed %s\n"
	CleanNothing    = "Nothing to remove."

	// StatusUse is the status command usage.
	StatusUse        = "status"
	StatusShort      = "Show the active release and installed version"
	StatusHostFmt    = "host:     %s\n"
	StatusCurrentFmt = "current:  %s\n"
	StatusVersionFmt = "version:  %s\n"
	StatusNone       = "(none)"
)
