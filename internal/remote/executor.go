// Package remote runs shell commands on deployment hosts.
package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/conn-castle/rollout/internal/logging"
	"github.com/conn-castle/rollout/internal/messages"
)

// Executor runs shell commands on a single host.
// Run executes command from dir ("" runs it from the login directory) and returns its
// trimmed standard output. A non-zero exit status is reported as a *CommandError.
type Executor interface {
	Host() string
	Run(ctx context.Context, dir string, command string) (string, error)
	List(ctx context.Context, dir string) ([]string, error)
}

// result holds the captured output of a finished process.
type result struct {
	stdout   string
	stderr   string
	exitCode int
}

// processRunner starts name with args and waits for it to exit.
// It returns an error only when the process could not be run at all.
type processRunner func(ctx context.Context, name string, args ...string) (result, error)

// runProcess is the processRunner backed by os/exec.
func runProcess(ctx context.Context, name string, args ...string) (result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	res := result{stdout: stdout.String(), stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.exitCode = exitErr.ExitCode()
			if res.exitCode <= 0 {
				res.exitCode = 1
			}
			return res, nil
		}
		return res, err
	}
	return res, nil
}

// commandLine prefixes command with a cd into dir.
func commandLine(dir string, command string) string {
	if dir == "" {
		return command
	}
	return "cd " + Quote(dir) + " && " + command
}

// finish converts a process result into the Executor contract.
func finish(host string, command string, res result, err error) (string, error) {
	if err != nil {
		return "", fmt.Errorf(messages.RemoteCommandStartFmt, host, command, err)
	}
	if res.exitCode != 0 {
		output := res.stderr
		if strings.TrimSpace(output) == "" {
			output = res.stdout
		}
		return "", &CommandError{
			Host:     host,
			Command:  command,
			ExitCode: res.exitCode,
			Output:   strings.TrimSpace(output),
		}
	}
	return strings.TrimRight(res.stdout, "\r\n"), nil
}

// list runs ls on dir through ex and returns the entry names in listing order.
func list(ctx context.Context, ex Executor, dir string) ([]string, error) {
	out, err := ex.Run(ctx, "", "ls -1 "+Quote(dir))
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

func splitLines(out string) []string {
	names := make([]string, 0)
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	return names
}

func logCommand(logger *slog.Logger, host string, command string) {
	logging.OrDiscard(logger).Debug("run", "host", host, "command", command)
}
