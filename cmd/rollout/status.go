package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/rollout/internal/messages"
	"github.com/conn-castle/rollout/internal/remote"
)

func newStatusCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.StatusUse,
		Short: messages.StatusShort,
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
			for _, m := range managers {
				current, err := m.CurrentRelease(cmd.Context())
				if err != nil {
					return err
				}
				version, err := m.InstalledVersion(cmd.Context())
				// VERSION is missing until the first deploy.
				if err != nil && (!errors.Is(err, remote.ErrCommandFailed) || current != "") {
					return err
				}
				if _, err := fmt.Fprintf(out, messages.StatusHostFmt, m.Host()); err != nil {
					return err
				}
				if _, err := fmt.Fprintf(out, messages.StatusCurrentFmt, orNone(current)); err != nil {
					return err
				}
				if _, err := fmt.Fprintf(out, messages.StatusVersionFmt, orNone(version)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func orNone(value string) string {
	if value == "" {
		return messages.StatusNone
	}
	return value
}
