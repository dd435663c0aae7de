package remote

import (
	"context"
	"log/slog"
)

// LocalHost is the host name reported by LocalExecutor.
const LocalHost = "localhost"

// LocalExecutor runs commands with sh on the local machine.
type LocalExecutor struct {
	logger *slog.Logger
	run    processRunner
}

// NewLocalExecutor returns an Executor for the machine rollout runs on.
func NewLocalExecutor(logger *slog.Logger) *LocalExecutor {
	return &LocalExecutor{logger: logger, run: runProcess}
}

// Host returns LocalHost.
func (e *LocalExecutor) Host() string {
	return LocalHost
}

// Run executes command with sh -c after changing into dir.
func (e *LocalExecutor) Run(ctx context.Context, dir string, command string) (string, error) {
	line := commandLine(dir, command)
	logCommand(e.logger, LocalHost, line)
	res, err := e.run(ctx, "sh", "-c", line)
	return finish(LocalHost, line, res, err)
}

// List returns the non-hidden entries of dir.
func (e *LocalExecutor) List(ctx context.Context, dir string) ([]string, error) {
	return list(ctx, e, dir)
}
