package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validSettings() *Settings {
	return &Settings{
		Project: ProjectConfig{
			Root:           "/srv/app",
			ReleasesRoot:   "/srv/app/releases",
			RepositoryRoot: "/srv/app/repository.git",
			SharedRoot:     "/srv/app/shared",
			KeepReleases:   5,
			Hosts:          []string{"web1"},
		},
		Transport:   TransportConfig{Kind: TransportSSH},
		SharedFiles: map[string]string{"config/app.yml": "app.yml"},
		Hooks:       []HookConfig{{Operation: "activate", Phase: "after", Command: "true"}},
	}
}

func TestValidate_Valid(t *testing.T) {
	require.NoError(t, validSettings().Validate("rollout.toml"))
}

func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(s *Settings)
		message string
	}{
		{
			name:    "missing root",
			mutate:  func(s *Settings) { s.Project.Root = "" },
			message: "rollout.toml: project.root is required",
		},
		{
			name:    "relative releases root",
			mutate:  func(s *Settings) { s.Project.ReleasesRoot = "releases" },
			message: `rollout.toml: project.releases_root must be an absolute path (got "releases")`,
		},
		{
			name:    "no hosts",
			mutate:  func(s *Settings) { s.Project.Hosts = nil },
			message: "rollout.toml: project.hosts must list at least one host",
		},
		{
			name:    "blank host",
			mutate:  func(s *Settings) { s.Project.Hosts = []string{"web1", " "} },
			message: "rollout.toml: project.hosts[1] is empty",
		},
		{
			name:    "keep zero",
			mutate:  func(s *Settings) { s.Project.KeepReleases = 0 },
			message: "rollout.toml: project.keep_releases must be at least 1 (got 0)",
		},
		{
			name:    "unknown transport",
			mutate:  func(s *Settings) { s.Transport.Kind = "telnet" },
			message: `rollout.toml: transport.kind must be ssh or local (got "telnet")`,
		},
		{
			name:    "bad port",
			mutate:  func(s *Settings) { s.Transport.Port = 70000 },
			message: "rollout.toml: transport.port must be between 1 and 65535 (got 70000)",
		},
		{
			name:    "absolute shared target",
			mutate:  func(s *Settings) { s.SharedFiles = map[string]string{"/etc/passwd": "passwd"} },
			message: `rollout.toml: shared_files target "/etc/passwd" must be a relative path inside a release`,
		},
		{
			name:    "escaping shared link",
			mutate:  func(s *Settings) { s.SharedFiles = map[string]string{"config/app.yml": "../app.yml"} },
			message: `rollout.toml: shared_files link "../app.yml" for target "config/app.yml" must be a relative path inside the shared root`,
		},
		{
			name:    "unknown hook operation",
			mutate:  func(s *Settings) { s.Hooks[0].Operation = "restart" },
			message: `rollout.toml: hooks[0].operation "restart" is not a known operation`,
		},
		{
			name:    "bad hook phase",
			mutate:  func(s *Settings) { s.Hooks[0].Phase = "during" },
			message: `rollout.toml: hooks[0].phase must be before or after (got "during")`,
		},
		{
			name:    "empty hook command",
			mutate:  func(s *Settings) { s.Hooks[0].Command = " " },
			message: "rollout.toml: hooks[0].command is required",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validSettings()
			tc.mutate(s)
			require.EqualError(t, s.Validate("rollout.toml"), tc.message)
		})
	}
}

func TestValidate_BadSSHCommand(t *testing.T) {
	s := validSettings()
	s.Transport.SSHCommand = `ssh -o "unterminated`
	err := s.Validate("rollout.toml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "transport.ssh_command is invalid")
}
