package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conn-castle/rollout/internal/release"
	"github.com/conn-castle/rollout/internal/remote"
)

func parseSample(t *testing.T) *Config {
	t.Helper()
	cfg, err := Parse([]byte(sampleConfig), "rollout.toml")
	require.NoError(t, err)
	return cfg
}

func TestResolve_BaseSettings(t *testing.T) {
	settings, err := Resolve(parseSample(t), "", "")
	require.NoError(t, err)
	require.Equal(t, "/srv/www/app", settings.Project.Root)
	require.Equal(t, "/srv/www/app/releases", settings.Project.ReleasesRoot)
	require.Equal(t, "/srv/www/app/repository.git", settings.Project.RepositoryRoot)
	require.Equal(t, "/srv/www/app/shared", settings.Project.SharedRoot)
	require.Equal(t, 3, settings.Project.KeepReleases)
	require.Equal(t, TransportSSH, settings.Transport.Kind)

	layout := settings.Layout()
	require.Equal(t, release.Layout{
		ProjectRoot:    "/srv/www/app",
		ReleasesRoot:   "/srv/www/app/releases",
		RepositoryRoot: "/srv/www/app/repository.git",
		SharedRoot:     "/srv/www/app/shared",
		SharedFiles:    settings.SharedFiles,
	}, layout)
}

func TestResolve_SiteOverrides(t *testing.T) {
	cfg := parseSample(t)
	settings, err := Resolve(cfg, "main", "production")
	require.NoError(t, err)
	require.Equal(t, "main", settings.Site)
	require.Equal(t, "production", settings.Environment)
	require.Equal(t, "/srv/www/main", settings.Project.Root)
	require.Equal(t, "/srv/www/main/releases", settings.Project.ReleasesRoot)
	require.Equal(t, []string{"deploy@prod1"}, settings.Project.Hosts)
	require.Equal(t, 3, settings.Project.KeepReleases)

	staging, err := Resolve(cfg, "main", "staging")
	require.NoError(t, err)
	require.Equal(t, "/srv/www/app", staging.Project.Root)
	require.Equal(t, 2, staging.Project.KeepReleases)
	require.Equal(t, []string{"deploy@staging1"}, staging.Project.Hosts)

	// Resolving never mutates the loaded config.
	require.Equal(t, "/srv/www/app", cfg.Project.Root)
	require.Equal(t, []string{"deploy@web1", "deploy@web2"}, cfg.Project.Hosts)
}

func TestResolve_IndependentSettings(t *testing.T) {
	cfg := parseSample(t)
	a, err := Resolve(cfg, "", "")
	require.NoError(t, err)
	b, err := Resolve(cfg, "", "")
	require.NoError(t, err)
	a.SharedFiles["extra"] = "extra"
	require.NotContains(t, b.SharedFiles, "extra")
	require.NotContains(t, cfg.SharedFiles, "extra")
}

func TestResolve_SiteErrors(t *testing.T) {
	cfg := parseSample(t)

	_, err := Resolve(cfg, "shop", "production")
	require.EqualError(t, err, "site shop is not part of the possible sites (blog, main)")

	_, err = Resolve(cfg, "blog", "staging")
	require.EqualError(t, err, "site blog has no staging environment")

	_, err = Resolve(cfg, "main", "")
	require.EqualError(t, err, "site main requires an environment (available: production, staging)")

	_, err = Resolve(cfg, "", "production")
	require.Error(t, err)
}

func TestResolve_LocalTransportUsesLocalhost(t *testing.T) {
	cfg, err := Parse([]byte("[project]\nroot = \"/srv/app\"\n[transport]\nkind = \"local\"\n"), "rollout.toml")
	require.NoError(t, err)
	settings, err := Resolve(cfg, "", "")
	require.NoError(t, err)
	require.Equal(t, []string{remote.LocalHost}, settings.Project.Hosts)

	executors, err := settings.Executors(nil)
	require.NoError(t, err)
	require.Len(t, executors, 1)
	require.IsType(t, &remote.LocalExecutor{}, executors[0])
}

func TestSettings_ExecutorsPerHost(t *testing.T) {
	settings, err := Resolve(parseSample(t), "", "")
	require.NoError(t, err)
	executors, err := settings.Executors(nil)
	require.NoError(t, err)
	require.Len(t, executors, 2)
	require.Equal(t, "deploy@web1", executors[0].Host())
	require.Equal(t, "deploy@web2", executors[1].Host())
}
