package remote

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/rollout/internal/messages"
)

// DefaultSSHCommand is used when SSHOptions.Command is empty.
const DefaultSSHCommand = "ssh"

// SSHOptions configures how the ssh client is invoked.
type SSHOptions struct {
	// Command is the ssh client command line, split with shell rules
	// (for example "ssh -o BatchMode=yes").
	Command      string
	Port         int
	IdentityFile string
}

// SSHExecutor runs commands on a remote host through the ssh client.
type SSHExecutor struct {
	host   string
	name   string
	args   []string
	logger *slog.Logger
	run    processRunner
}

// ParseSSHCommand splits an ssh command line into its program and arguments.
func ParseSSHCommand(command string) (string, []string, error) {
	if strings.TrimSpace(command) == "" {
		command = DefaultSSHCommand
	}
	parts, err := shlex.Split(command)
	if err != nil {
		return "", nil, fmt.Errorf(messages.RemoteSSHCommandInvalidFmt, command, err)
	}
	if len(parts) == 0 {
		return "", nil, fmt.Errorf(messages.RemoteSSHCommandEmpty)
	}
	return parts[0], parts[1:], nil
}

// NewSSHExecutor builds an executor for host ("user@host" or an ssh config alias).
func NewSSHExecutor(host string, opts SSHOptions, logger *slog.Logger) (*SSHExecutor, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return nil, fmt.Errorf(messages.RemoteHostRequired)
	}
	name, args, err := ParseSSHCommand(opts.Command)
	if err != nil {
		return nil, err
	}
	if opts.Port > 0 {
		args = append(args, "-p", strconv.Itoa(opts.Port))
	}
	if opts.IdentityFile != "" {
		identity, err := homedir.Expand(opts.IdentityFile)
		if err != nil {
			return nil, fmt.Errorf(messages.ConfigExpandPathFmt, opts.IdentityFile, err)
		}
		args = append(args, "-i", identity)
	}
	return &SSHExecutor{host: host, name: name, args: args, logger: logger, run: runProcess}, nil
}

// Host returns the ssh destination.
func (e *SSHExecutor) Host() string {
	return e.host
}

// Run executes command on the remote host after changing into dir.
func (e *SSHExecutor) Run(ctx context.Context, dir string, command string) (string, error) {
	line := commandLine(dir, command)
	logCommand(e.logger, e.host, line)
	args := make([]string, 0, len(e.args)+3)
	args = append(args, e.args...)
	args = append(args, "--", e.host, line)
	res, err := e.run(ctx, e.name, args...)
	return finish(e.host, line, res, err)
}

// List returns the non-hidden entries of dir on the remote host.
func (e *SSHExecutor) List(ctx context.Context, dir string) ([]string, error) {
	return list(ctx, e, dir)
}
