package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/rollout/internal/messages"
)

func newReleasesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.ReleasesUse,
		Short: messages.ReleasesShort,
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
			out := cmd.OutOrStdout()
			currentColor := color.New(color.FgGreen, color.Bold)
			for _, m := range managers {
				if _, err := fmt.Fprintf(out, messages.HostHeaderFmt, m.Host()); err != nil {
					return err
				}
				releases, err := m.Releases(cmd.Context())
				if err != nil {
					return err
				}
				current, err := m.CurrentRelease(cmd.Context())
				if err != nil {
					return err
				}
				if len(releases) == 0 {
					if _, err := fmt.Fprintln(out, messages.ReleasesNone); err != nil {
						return err
					}
					continue
				}
				for _, name := range releases {
					if name == current {
						if _, err := currentColor.Fprintf(out, messages.ReleasesCurrentFmt, name); err != nil {
							return err
						}
						continue
					}
					if _, err := fmt.Fprintf(out, messages.ReleasesLineFmt, name); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}
