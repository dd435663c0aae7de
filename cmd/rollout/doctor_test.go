package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conn-castle/rollout/internal/doctor"
	"github.com/conn-castle/rollout/internal/messages"
	"github.com/conn-castle/rollout/internal/release"
	"github.com/conn-castle/rollout/internal/remote"
)

func withDoctorResults(t *testing.T, results []doctor.Result) {
	t.Helper()
	orig := runDoctor
	t.Cleanup(func() { runDoctor = orig })
	runDoctor = func(context.Context, remote.Executor, release.Layout) []doctor.Result {
		return results
	}
}

func TestDoctorCommand_Success(t *testing.T) {
	withDoctorResults(t, []doctor.Result{
		{Status: doctor.StatusOK, CheckName: "Tools", Message: "Command available: git"},
		{Status: doctor.StatusWarn, CheckName: "Current", Message: "current is not set", Recommendation: "Deploy a tag."},
	})
	p := newTestProject(t)

	out, err := p.run("", "doctor")
	require.NoError(t, err)
	require.Contains(t, out, "Checking localhost in "+p.root)
	require.Contains(t, out, "Command available: git")
	require.Contains(t, out, "hint: Deploy a tag.")
	require.Contains(t, out, "All hosts are ready.")
}

func TestDoctorCommand_Failure(t *testing.T) {
	withDoctorResults(t, []doctor.Result{
		{Status: doctor.StatusFail, CheckName: "Repository", Message: "No bare git repository"},
	})
	p := newTestProject(t)

	out, err := p.run("", "doctor")
	require.EqualError(t, err, "doctor checks failed")
	require.Contains(t, out, "Some checks failed.")
}

func TestDoctorCommand_LocalHost(t *testing.T) {
	p := newTestProject(t, "20240101000000_1.0")

	out, _ := p.run("", "doctor")
	require.Contains(t, out, "Directory exists: "+p.root)
	require.Contains(t, out, "current is not set")
}

func TestPrintRecommendation(t *testing.T) {
	var out bytes.Buffer
	printRecommendation(&out, "first\n\nthird")
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasSuffix(lines[0], "hint: first"))
	require.Equal(t, messages.DoctorRecommendationIndent+"third", lines[2])
}
