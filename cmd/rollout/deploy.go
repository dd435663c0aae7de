package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/rollout/internal/messages"
	"github.com/conn-castle/rollout/internal/release"
)

func newDeployCmd(root *rootOptions) *cobra.Command {
	var keep int
	var noClean bool

	cmd := &cobra.Command{
		Use:   messages.DeployUse,
		Short: messages.DeployShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag := args[0]
			if err := release.ValidateTag(tag); err != nil {
				return err
			}
			settings, err := root.settings()
			if err != nil {
				return err
			}
			managers, err := root.managers(cmd, settings, nil)
			if err != nil {
				return err
			}
			opts := release.DeployOptions{Keep: settings.Project.KeepReleases, SkipClean: noClean}
			if cmd.Flags().Changed("keep") {
				opts.Keep = keep
			}
			if opts.Keep < 1 {
				return fmt.Errorf(messages.ReleaseKeepInvalidFmt, opts.Keep)
			}
			out := cmd.OutOrStdout()
			for _, m := range managers {
				if len(managers) > 1 {
					if _, err := fmt.Fprintf(out, messages.HostHeaderFmt, m.Host()); err != nil {
						return err
					}
				}
				name, err := m.Deploy(cmd.Context(), tag, opts)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(out, messages.DeployDoneFmt, tag, name); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&keep, "keep", release.DefaultKeepReleases, messages.DeployFlagKeep)
	cmd.Flags().BoolVar(&noClean, "no-clean", false, messages.DeployFlagNoClean)
	return cmd
}
