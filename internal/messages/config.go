package messages

// Config messages for configuration loading and validation.
const (
	// ConfigMissingFileFmt formats missing config file errors.
	ConfigMissingFileFmt      = "missing config file %s: %w"
	ConfigInvalidConfigFmt    = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt = "%s: unrecognized config keys: %w"
	ConfigExpandPathFmt       = "expand path %q: %w"
	ConfigFindStartRequired   = "config search requires a start directory"
	ConfigPathIsDirFmt        = "%s exists but is a directory"

	ConfigProjectRootRequiredFmt  = "%s: project.root is required"
	ConfigPathNotAbsoluteFmt      = "%s: %s must be an absolute path (got %q)"
	ConfigHostsRequiredFmt        = "%s: project.hosts must list at least one host"
	ConfigHostEmptyFmt            = "%s: project.hosts[%d] is empty"
	ConfigKeepReleasesInvalidFmt  = "%s: project.keep_releases must be at least 1 (got %d)"
	ConfigTransportKindInvalidFmt = "%s: transport.kind must be ssh or local (got %q)"
	ConfigTransportPortInvalidFmt = "%s: transport.port must be between 1 and 65535 (got %d)"
	ConfigSSHCommandInvalidFmt    = "%s: transport.ssh_command is invalid: %w"
	ConfigSharedTargetEmptyFmt    = "%s: shared_files has an empty target for link %q"
	ConfigSharedLinkInvalidFmt    = "%s: shared_files link %q for target %q must be a relative path inside the shared root"
	ConfigSharedTargetInvalidFmt  = "%s: shared_files target %q must be a relative path inside a release"
	ConfigHookOperationInvalidFmt = "%s: hooks[%d].operation %q is not a known operation"
	ConfigHookPhaseInvalidFmt     = "%s: hooks[%d].phase must be before or after (got %q)"
	ConfigHookCommandRequiredFmt  = "%s: hooks[%d].command is required"

	ConfigSiteUnknownFmt     = "site %s is not part of the possible sites (%s)"
	ConfigSiteEnvUnknownFmt  = "site %s has no %s environment"
	ConfigSiteEnvRequiredFmt = "site %s requires an environment (available: %s)"
	ConfigEnvWithoutSite     = "an environment was given without a site"
)
