package config

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/conn-castle/rollout/internal/messages"
	"github.com/conn-castle/rollout/internal/release"
	"github.com/conn-castle/rollout/internal/remote"
)

// Settings is the fully resolved configuration for one deployment target.
type Settings struct {
	Site        string
	Environment string
	Project     ProjectConfig
	Transport   TransportConfig
	SharedFiles map[string]string
	Hooks       []HookConfig
}

// Resolve applies the overrides of site/environment to the base project settings, fills
// defaults, and validates the result. An empty site selects the base settings.
// cfg is not modified.
func Resolve(cfg *Config, site string, environment string) (*Settings, error) {
	project := cfg.Project
	if site == "" {
		if environment != "" {
			return nil, fmt.Errorf(messages.ConfigEnvWithoutSite)
		}
	} else {
		envs, ok := cfg.Sites[site]
		if !ok {
			return nil, fmt.Errorf(messages.ConfigSiteUnknownFmt, site, strings.Join(sortedKeys(cfg.Sites), ", "))
		}
		if environment == "" {
			return nil, fmt.Errorf(messages.ConfigSiteEnvRequiredFmt, site, strings.Join(sortedKeys(envs), ", "))
		}
		override, ok := envs[environment]
		if !ok {
			return nil, fmt.Errorf(messages.ConfigSiteEnvUnknownFmt, site, environment)
		}
		project = mergeProject(project, override)
	}

	settings := &Settings{
		Site:        site,
		Environment: environment,
		Project:     withProjectDefaults(project),
		Transport:   cfg.Transport,
		SharedFiles: make(map[string]string, len(cfg.SharedFiles)),
		Hooks:       append([]HookConfig(nil), cfg.Hooks...),
	}
	for target, link := range cfg.SharedFiles {
		settings.SharedFiles[target] = link
	}
	if settings.Transport.Kind == "" {
		settings.Transport.Kind = TransportSSH
	}
	if settings.Transport.Kind == TransportLocal {
		settings.Project.Hosts = []string{remote.LocalHost}
	}
	if err := settings.Validate(cfg.source); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return settings, nil
}

// Layout returns the release layout described by the settings.
func (s *Settings) Layout() release.Layout {
	return release.Layout{
		ProjectRoot:    s.Project.Root,
		ReleasesRoot:   s.Project.ReleasesRoot,
		RepositoryRoot: s.Project.RepositoryRoot,
		SharedRoot:     s.Project.SharedRoot,
		SharedFiles:    s.SharedFiles,
	}
}

// mergeProject returns base with every non-empty field of override applied.
func mergeProject(base ProjectConfig, override ProjectConfig) ProjectConfig {
	if override.Root != "" {
		base.Root = override.Root
	}
	if override.ReleasesRoot != "" {
		base.ReleasesRoot = override.ReleasesRoot
	}
	if override.RepositoryRoot != "" {
		base.RepositoryRoot = override.RepositoryRoot
	}
	if override.SharedRoot != "" {
		base.SharedRoot = override.SharedRoot
	}
	if override.KeepReleases != 0 {
		base.KeepReleases = override.KeepReleases
	}
	if len(override.Hosts) > 0 {
		base.Hosts = append([]string(nil), override.Hosts...)
	}
	return base
}

func withProjectDefaults(p ProjectConfig) ProjectConfig {
	if p.Root == "" {
		return p
	}
	if p.ReleasesRoot == "" {
		p.ReleasesRoot = path.Join(p.Root, "releases")
	}
	if p.RepositoryRoot == "" {
		p.RepositoryRoot = path.Join(p.Root, "repository.git")
	}
	if p.SharedRoot == "" {
		p.SharedRoot = path.Join(p.Root, "shared")
	}
	if p.KeepReleases == 0 {
		p.KeepReleases = release.DefaultKeepReleases
	}
	return p
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
