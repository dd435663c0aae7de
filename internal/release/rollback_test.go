package release

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordedPrompt struct {
	release string
	host    string
}

func answering(answer string, prompts *[]recordedPrompt) Prompter {
	return PromptFunc(func(_ context.Context, release string, host string) (string, error) {
		*prompts = append(*prompts, recordedPrompt{release: release, host: host})
		return answer, nil
	})
}

func TestRollback_DefaultTarget(t *testing.T) {
	h := newHost("20240830151210_1.2.2", "20240830180015_1.2.3", "20240101000000_1.0.0")
	h.current = "20240830180015_1.2.3"
	var prompts []recordedPrompt
	m := newTestManager(t, h, Options{Prompter: answering("y", &prompts)})

	name, outcome, err := m.Rollback(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, RollbackCompleted, outcome)
	require.Equal(t, "20240830151210_1.2.2", name)
	require.Equal(t, []recordedPrompt{{release: "20240830151210_1.2.2", host: "web1"}}, prompts)
	require.Equal(t, "20240830151210_1.2.2", h.current)
	require.Equal(t, "1.2.2", h.version)
	require.Equal(t, []string{
		"ln -sfn /srv/app/releases/20240830151210_1.2.2 new_current",
		"mv -Tf new_current current",
		`printf '%s\n' 1.2.2 > VERSION`,
	}, h.Commands())
}

func TestRollback_NamedTarget(t *testing.T) {
	h := newHost("20240101000000_1.0.0", "20240830151210_1.2.2", "20240830180015_1.2.3")
	var prompts []recordedPrompt
	m := newTestManager(t, h, Options{Prompter: answering("y", &prompts)})

	name, outcome, err := m.Rollback(context.Background(), "20240101000000_1.0.0")
	require.NoError(t, err)
	require.Equal(t, RollbackCompleted, outcome)
	require.Equal(t, "20240101000000_1.0.0", name)
	require.Equal(t, "20240101000000_1.0.0", h.current)
	require.Equal(t, "1.0.0", h.version)
}

func TestRollback_NoTarget(t *testing.T) {
	for _, releases := range [][]string{nil, {"20240830180015_1.2.3"}} {
		h := newHost(releases...)
		var prompts []recordedPrompt
		m := newTestManager(t, h, Options{Prompter: answering("y", &prompts)})

		_, outcome, err := m.Rollback(context.Background(), "")
		require.ErrorIs(t, err, ErrNoRollbackTarget)
		require.EqualError(t, err, "no release to rollback to")
		require.Equal(t, RollbackFailed, outcome)
		require.Empty(t, prompts)
		require.Empty(t, h.Calls)
	}
}

func TestRollback_InvalidNameFailsBeforePrompt(t *testing.T) {
	h := newHost("20240830151210_1.2.2", "bad name", "20240830180015_1.2.3")
	var prompts []recordedPrompt
	m := newTestManager(t, h, Options{Prompter: answering("y", &prompts)})

	name, outcome, err := m.Rollback(context.Background(), "bad name")
	require.EqualError(t, err, `invalid release name "bad name": must be a single path component`)
	require.Equal(t, "bad name", name)
	require.Equal(t, RollbackFailed, outcome)
	require.Empty(t, prompts)
	require.Empty(t, h.Calls)
	require.Empty(t, h.current)
}

func TestRollback_UnknownRelease(t *testing.T) {
	h := newHost("20240830151210_1.2.2", "20240830180015_1.2.3")
	var prompts []recordedPrompt
	m := newTestManager(t, h, Options{Prompter: answering("y", &prompts)})

	_, outcome, err := m.Rollback(context.Background(), "20230101000000_0.9.0")
	require.ErrorIs(t, err, ErrReleaseNotInstalled)
	require.Equal(t, RollbackFailed, outcome)

	var rbErr *RollbackError
	require.True(t, errors.As(err, &rbErr))
	require.Equal(t, "20230101000000_0.9.0", rbErr.Release)
	require.Equal(t, []string{"20240830151210_1.2.2", "20240830180015_1.2.3"}, rbErr.Available)
	require.Equal(t, "the given release 20230101000000_0.9.0 is not installed on the server. Available releases:\n\n"+
		"20240830151210_1.2.2\n20240830180015_1.2.3", err.Error())
	require.Empty(t, prompts)
	require.Empty(t, h.Calls)
}

func TestRollback_Declined(t *testing.T) {
	for _, answer := range []string{"n", "", "Y", "yes"} {
		h := newHost("20240830151210_1.2.2", "20240830180015_1.2.3")
		h.current = "20240830180015_1.2.3"
		var prompts []recordedPrompt
		m := newTestManager(t, h, Options{Prompter: answering(answer, &prompts)})

		name, outcome, err := m.Rollback(context.Background(), "")
		require.NoError(t, err, "answer %q", answer)
		require.Equal(t, RollbackAborted, outcome, "answer %q", answer)
		require.Equal(t, "20240830151210_1.2.2", name)
		require.Len(t, prompts, 1)
		require.Empty(t, h.Calls, "answer %q", answer)
		require.Equal(t, "20240830180015_1.2.3", h.current)
	}
}

func TestRollback_PromptError(t *testing.T) {
	h := newHost("a", "b")
	m := newTestManager(t, h, Options{Prompter: PromptFunc(func(context.Context, string, string) (string, error) {
		return "", errors.New("stdin closed")
	})})

	_, outcome, err := m.Rollback(context.Background(), "")
	require.EqualError(t, err, "rollback confirmation: stdin closed")
	require.Equal(t, RollbackFailed, outcome)
	require.Empty(t, h.Calls)
}

func TestRollback_RequiresPrompter(t *testing.T) {
	h := newHost("a", "b")
	m := newTestManager(t, h, Options{})

	_, outcome, err := m.Rollback(context.Background(), "")
	require.Error(t, err)
	require.Equal(t, RollbackFailed, outcome)
	require.Empty(t, h.Calls)
}

func TestRollback_ReleaseWithoutTagKeepsVersion(t *testing.T) {
	h := newHost("manual-build", "zz-latest")
	h.version = "1.2.3"
	m := newTestManager(t, h, Options{Prompter: AutoConfirm})

	_, outcome, err := m.Rollback(context.Background(), "manual-build")
	require.NoError(t, err)
	require.Equal(t, RollbackCompleted, outcome)
	require.Equal(t, "manual-build", h.current)
	require.Equal(t, "1.2.3", h.version)
	require.Empty(t, h.CommandsMatching("printf "))
}

func TestRollback_FiresHooks(t *testing.T) {
	h := newHost("20240830151210_1.2.2", "20240830180015_1.2.3")
	hooks := NewHooks()
	var ops []string
	for _, op := range []Operation{OpRollback, OpActivate, OpUpdateVersion} {
		hooks.On(op, PhaseAfter, func(_ context.Context, ev Event) error {
			ops = append(ops, string(ev.Operation))
			return nil
		})
	}
	m := newTestManager(t, h, Options{Prompter: AutoConfirm, Hooks: hooks})

	_, _, err := m.Rollback(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, []string{"activate", "update_version", "rollback"}, ops)
}

func TestRollbackOutcomeString(t *testing.T) {
	require.Equal(t, "failed", RollbackFailed.String())
	require.Equal(t, "aborted", RollbackAborted.String())
	require.Equal(t, "completed", RollbackCompleted.String())
}
