package config

import (
	"fmt"
	"path"
	"strings"

	"github.com/conn-castle/rollout/internal/messages"
	"github.com/conn-castle/rollout/internal/release"
	"github.com/conn-castle/rollout/internal/remote"
)

// Validate ensures the resolved settings are complete and consistent.
// source names the config file in error messages.
func (s *Settings) Validate(source string) error {
	p := s.Project
	if strings.TrimSpace(p.Root) == "" {
		return fmt.Errorf(messages.ConfigProjectRootRequiredFmt, source)
	}
	for _, field := range []struct {
		name  string
		value string
	}{
		{"project.root", p.Root},
		{"project.releases_root", p.ReleasesRoot},
		{"project.repository_root", p.RepositoryRoot},
		{"project.shared_root", p.SharedRoot},
	} {
		if !path.IsAbs(field.value) {
			return fmt.Errorf(messages.ConfigPathNotAbsoluteFmt, source, field.name, field.value)
		}
	}
	if len(p.Hosts) == 0 {
		return fmt.Errorf(messages.ConfigHostsRequiredFmt, source)
	}
	for i, host := range p.Hosts {
		if strings.TrimSpace(host) == "" {
			return fmt.Errorf(messages.ConfigHostEmptyFmt, source, i)
		}
	}
	if p.KeepReleases < 1 {
		return fmt.Errorf(messages.ConfigKeepReleasesInvalidFmt, source, p.KeepReleases)
	}

	switch s.Transport.Kind {
	case TransportSSH:
		if _, _, err := remote.ParseSSHCommand(s.Transport.SSHCommand); err != nil {
			return fmt.Errorf(messages.ConfigSSHCommandInvalidFmt, source, err)
		}
	case TransportLocal:
	default:
		return fmt.Errorf(messages.ConfigTransportKindInvalidFmt, source, s.Transport.Kind)
	}
	if s.Transport.Port < 0 || s.Transport.Port > 65535 {
		return fmt.Errorf(messages.ConfigTransportPortInvalidFmt, source, s.Transport.Port)
	}

	for target, link := range s.SharedFiles {
		if strings.TrimSpace(target) == "" {
			return fmt.Errorf(messages.ConfigSharedTargetEmptyFmt, source, link)
		}
		if !isRelativeInside(target) {
			return fmt.Errorf(messages.ConfigSharedTargetInvalidFmt, source, target)
		}
		if !isRelativeInside(link) {
			return fmt.Errorf(messages.ConfigSharedLinkInvalidFmt, source, link, target)
		}
	}

	for i, hook := range s.Hooks {
		if _, ok := release.ParseOperation(hook.Operation); !ok {
			return fmt.Errorf(messages.ConfigHookOperationInvalidFmt, source, i, hook.Operation)
		}
		if _, ok := release.ParsePhase(hook.Phase); !ok {
			return fmt.Errorf(messages.ConfigHookPhaseInvalidFmt, source, i, hook.Phase)
		}
		if strings.TrimSpace(hook.Command) == "" {
			return fmt.Errorf(messages.ConfigHookCommandRequiredFmt, source, i)
		}
	}
	return nil
}

// isRelativeInside reports whether p is a relative path that stays below its base.
func isRelativeInside(p string) bool {
	if strings.TrimSpace(p) == "" || path.IsAbs(p) {
		return false
	}
	clean := path.Clean(p)
	return clean != "." && clean != ".." && !strings.HasPrefix(clean, "../")
}
