// Package config loads rollout.toml and resolves it into per-deployment settings.
package config

// DefaultFileName is the config file read when no --config flag is given.
const DefaultFileName = "rollout.toml"

// Transport kinds.
const (
	TransportSSH   = "ssh"
	TransportLocal = "local"
)

// Config is the decoded rollout.toml.
type Config struct {
	Project   ProjectConfig   `toml:"project"`
	Transport TransportConfig `toml:"transport"`
	// SharedFiles maps a path inside a release to a link name inside the shared root.
	SharedFiles map[string]string `toml:"shared_files"`
	Hooks       []HookConfig      `toml:"hooks"`
	// Sites holds per-site, per-environment overrides of Project.
	Sites map[string]map[string]ProjectConfig `toml:"sites"`

	source string
}

// ProjectConfig describes where the project lives on its hosts.
type ProjectConfig struct {
	Root           string   `toml:"root"`
	ReleasesRoot   string   `toml:"releases_root"`
	RepositoryRoot string   `toml:"repository_root"`
	SharedRoot     string   `toml:"shared_root"`
	KeepReleases   int      `toml:"keep_releases"`
	Hosts          []string `toml:"hosts"`
}

// TransportConfig selects how commands reach the hosts.
type TransportConfig struct {
	Kind         string `toml:"kind"`
	SSHCommand   string `toml:"ssh_command"`
	Port         int    `toml:"port"`
	IdentityFile string `toml:"identity_file"`
}

// HookConfig runs a shell command on the host around a release operation.
type HookConfig struct {
	Operation string `toml:"operation"`
	Phase     string `toml:"phase"`
	Command   string `toml:"command"`
}

// Source returns the path or label the config was parsed from.
func (c *Config) Source() string {
	return c.source
}
