package config

import (
	"log/slog"

	"github.com/conn-castle/rollout/internal/remote"
)

// Executors returns one executor per configured host, in config order.
func (s *Settings) Executors(logger *slog.Logger) ([]remote.Executor, error) {
	if s.Transport.Kind == TransportLocal {
		return []remote.Executor{remote.NewLocalExecutor(logger)}, nil
	}
	opts := remote.SSHOptions{
		Command:      s.Transport.SSHCommand,
		Port:         s.Transport.Port,
		IdentityFile: s.Transport.IdentityFile,
	}
	executors := make([]remote.Executor, 0, len(s.Project.Hosts))
	for _, host := range s.Project.Hosts {
		ex, err := remote.NewSSHExecutor(host, opts, logger)
		if err != nil {
			return nil, err
		}
		executors = append(executors, ex)
	}
	return executors, nil
}
