package messages

// Remote execution messages.
const (
	RemoteCommandFailed        = "remote command failed"
	RemoteCommandFailedFmt     = "%s: command %q exited with status %d: %s"
	RemoteCommandStartFmt      = "%s: command %q: %w"
	RemoteHostRequired         = "remote host is required"
	RemoteSSHCommandEmpty      = "ssh command is empty"
	RemoteSSHCommandInvalidFmt = "parse ssh command %q: %w"
)
