package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/conn-castle/rollout/internal/config"
	"github.com/conn-castle/rollout/internal/logging"
	"github.com/conn-castle/rollout/internal/messages"
	"github.com/conn-castle/rollout/internal/release"
	"github.com/conn-castle/rollout/internal/terminal"
)

var getwd = os.Getwd
var isTerminal = terminal.StreamsInteractive

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath  string
	site        string
	environment string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", messages.RootFlagConfig)
	flags.StringVarP(&opts.site, "site", "s", "", messages.RootFlagSite)
	flags.StringVarP(&opts.environment, "env", "e", "", messages.RootFlagEnv)
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, messages.RootFlagVerbose)

	cmd.AddCommand(
		newDeployCmd(opts),
		newRollbackCmd(opts),
		newReleasesCmd(opts),
		newCleanCmd(opts),
		newStatusCmd(opts),
		newDoctorCmd(opts),
	)
	return cmd
}

// settings loads the config file (--config, else the nearest rollout.toml) and
// resolves the selected site and environment.
func (o *rootOptions) settings() (*config.Settings, error) {
	path := o.configPath
	if path == "" {
		cwd, err := getwd()
		if err != nil {
			return nil, err
		}
		found, ok, err := config.Find(cwd)
		if err != nil {
			return nil, err
		}
		path = config.DefaultPath(cwd)
		if ok {
			path = found
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return config.Resolve(cfg, o.site, o.environment)
}

// managers returns one release manager per configured host, with the configured
// command hooks registered on each.
func (o *rootOptions) managers(cmd *cobra.Command, settings *config.Settings, prompter release.Prompter) ([]*release.Manager, error) {
	logger := logging.New(cmd.ErrOrStderr(), o.verbose)
	executors, err := settings.Executors(logger)
	if err != nil {
		return nil, err
	}
	managers := make([]*release.Manager, 0, len(executors))
	for _, ex := range executors {
		hooks := release.NewHooks()
		for _, hook := range settings.Hooks {
			op, _ := release.ParseOperation(hook.Operation)
			phase, _ := release.ParsePhase(hook.Phase)
			hooks.On(op, phase, release.CommandHook(ex, settings.Project.Root, hook.Command))
		}
		m, err := release.New(settings.Layout(), ex, release.Options{
			Prompter: prompter,
			Hooks:    hooks,
			Logger:   logger,
		})
		if err != nil {
			return nil, err
		}
		managers = append(managers, m)
	}
	return managers, nil
}
