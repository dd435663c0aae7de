package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/rollout/internal/messages"
	"github.com/conn-castle/rollout/internal/release"
)

var runSelectForm = func(form *huh.Form) error { return form.Run() }

func newRollbackCmd(root *rootOptions) *cobra.Command {
	var yes bool
	var pick bool

	cmd := &cobra.Command{
		Use:   messages.RollbackUse,
		Short: messages.RollbackShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 1 {
				target = args[0]
			}
			interactive := isTerminal(cmd.InOrStdin(), cmd.OutOrStdout())
			if pick {
				if target != "" {
					return errors.New(messages.RollbackSelectWithRelease)
				}
				if !interactive {
					return errors.New(messages.RollbackSelectRequiresTerminal)
				}
			}
			if !yes && !interactive {
				return errors.New(messages.RollbackYesRequiresTerminal)
			}

			settings, err := root.settings()
			if err != nil {
				return err
			}
			prompter := release.AutoConfirm
			if !yes {
				prompter = newLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			}
			managers, err := root.managers(cmd, settings, prompter)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, m := range managers {
				hostTarget := target
				if pick {
					hostTarget, err = selectRelease(cmd.Context(), m)
					if err != nil {
						return err
					}
				}
				name, outcome, err := m.Rollback(cmd.Context(), hostTarget)
				if err != nil {
					return err
				}
				if outcome == release.RollbackAborted {
					if _, err := fmt.Fprintln(out, messages.RollbackAborting); err != nil {
						return err
					}
					return nil
				}
				if _, err := fmt.Fprintf(out, messages.RollbackDoneFmt, m.Host(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, messages.RollbackFlagYes)
	cmd.Flags().BoolVar(&pick, "select", false, messages.RollbackFlagSelect)
	return cmd
}

// newLinePrompter reads free-text rollback confirmations from in, one line per prompt.
func newLinePrompter(in io.Reader, out io.Writer) release.Prompter {
	reader := bufio.NewReader(in)
	highlight := color.New(color.FgYellow, color.Bold).SprintFunc()
	return release.PromptFunc(func(_ context.Context, name string, host string) (string, error) {
		if _, err := fmt.Fprintf(out, messages.RollbackConfirmFmt, highlight(name), highlight(host)); err != nil {
			return "", err
		}
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		return strings.TrimSpace(line), nil
	})
}

// selectRelease lets the operator pick one of the releases installed on m's host.
// The list is shown newest first.
func selectRelease(ctx context.Context, m *release.Manager) (string, error) {
	releases, err := m.Releases(ctx)
	if err != nil {
		return "", err
	}
	if len(releases) == 0 {
		return "", &release.RollbackError{Err: release.ErrNoRollbackTarget}
	}
	current, err := m.CurrentRelease(ctx)
	if err != nil {
		return "", err
	}
	options := make([]huh.Option[string], 0, len(releases))
	for i := len(releases) - 1; i >= 0; i-- {
		label := releases[i]
		if releases[i] == current {
			label += " (current)"
		}
		options = append(options, huh.NewOption(label, releases[i]))
	}
	choice := ""
	if len(releases) >= 2 {
		choice = releases[len(releases)-2]
	}
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(fmt.Sprintf(messages.RollbackSelectTitleFmt, m.Host())).
			Options(options...).
			Value(&choice),
	))
	if err := runSelectForm(form); err != nil {
		return "", err
	}
	return choice, nil
}
