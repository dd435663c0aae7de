package remote

import (
	"errors"
	"fmt"

	"github.com/conn-castle/rollout/internal/messages"
)

// ErrCommandFailed is the sentinel every *CommandError unwraps to.
var ErrCommandFailed = errors.New(messages.RemoteCommandFailed)

// CommandError reports a command that exited with a non-zero status.
type CommandError struct {
	Host     string
	Command  string
	ExitCode int
	// Output is the trimmed stderr of the command, or stdout when stderr was empty.
	Output string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf(messages.RemoteCommandFailedFmt, e.Host, e.Command, e.ExitCode, e.Output)
}

// Unwrap lets errors.Is match ErrCommandFailed.
func (e *CommandError) Unwrap() error {
	return ErrCommandFailed
}
