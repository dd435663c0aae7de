package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/rollout/internal/messages"
	"github.com/conn-castle/rollout/internal/release"
)

func newCleanCmd(root *rootOptions) *cobra.Command {
	var keep int

	cmd := &cobra.Command{
		Use:   messages.CleanUse,
		Short: messages.CleanShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := root.settings()
			if err != nil {
				return err
			}
			managers, err := root.managers(cmd, settings, nil)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("keep") {
				keep = settings.Project.KeepReleases
			}
			out := cmd.OutOrStdout()
			for _, m := range managers {
				if len(managers) > 1 {
					if _, err := fmt.Fprintf(out, messages.HostHeaderFmt, m.Host()); err != nil {
						return err
					}
				}
				removed, err := m.CleanOldReleases(cmd.Context(), keep)
				if err != nil {
					return err
				}
				if len(removed) == 0 {
					if _, err := fmt.Fprintln(out, messages.CleanNothing); err != nil {
						return err
					}
					continue
				}
				for _, name := range removed {
					if _, err := fmt.Fprintf(out, messages.CleanRemovedFmt, name); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&keep, "keep", release.DefaultKeepReleases, messages.CleanFlagKeep)
	return cmd
}
