// Package doctor inspects a host and reports whether it is ready for deployments.
package doctor

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/conn-castle/rollout/internal/messages"
	"github.com/conn-castle/rollout/internal/release"
	"github.com/conn-castle/rollout/internal/remote"
)

// Status is the outcome of a single check.
type Status string

// Check outcomes.
const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result is one line of the doctor report.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

// requiredTools are the commands a deployment runs on the host.
var requiredTools = []string{"git", "tar", "ln", "mv", "readlink", "rm"}

// Run performs every check against the host behind ex.
func Run(ctx context.Context, ex remote.Executor, layout release.Layout) []Result {
	var results []Result
	results = append(results, CheckTools(ctx, ex)...)
	results = append(results, CheckLayout(ctx, ex, layout)...)
	results = append(results, CheckCurrent(ctx, ex, layout)...)
	results = append(results, CheckShared(ctx, ex, layout)...)
	return results
}

// HasFailure reports whether any result failed.
func HasFailure(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}

// CheckTools verifies the commands used by deployments exist and that mv can replace
// a symlink to a directory in place.
func CheckTools(ctx context.Context, ex remote.Executor) []Result {
	results := make([]Result, 0, len(requiredTools)+1)
	for _, tool := range requiredTools {
		if _, err := ex.Run(ctx, "", "command -v "+remote.Quote(tool)); err != nil {
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameTools,
				Message:        fmt.Sprintf(messages.DoctorToolMissingFmt, tool),
				Recommendation: messages.DoctorToolMissingRecommend,
			})
			continue
		}
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameTools,
			Message:   fmt.Sprintf(messages.DoctorToolFoundFmt, tool),
		})
	}

	if _, err := ex.Run(ctx, "", "mv --help 2>&1 | grep -q -e -T"); err != nil {
		results = append(results, Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameTools,
			Message:        messages.DoctorMoveTMissing,
			Recommendation: messages.DoctorMoveTRecommend,
		})
	} else {
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameTools,
			Message:   messages.DoctorMoveTSupported,
		})
	}
	return results
}

// CheckLayout verifies the project directories exist and the repository root holds a
// bare git repository.
func CheckLayout(ctx context.Context, ex remote.Executor, layout release.Layout) []Result {
	var results []Result
	for _, dir := range []string{layout.ProjectRoot, layout.ReleasesRoot, layout.SharedRoot} {
		if _, err := ex.Run(ctx, "", "test -d "+remote.Quote(dir)); err != nil {
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameLayout,
				Message:        fmt.Sprintf(messages.DoctorDirMissingFmt, dir),
				Recommendation: fmt.Sprintf(messages.DoctorDirMissingRecommendFmt, remote.Quote(dir)),
			})
			continue
		}
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameLayout,
			Message:   fmt.Sprintf(messages.DoctorDirExistsFmt, dir),
		})
	}

	out, err := ex.Run(ctx, "", "git --git-dir="+remote.Quote(layout.RepositoryRoot)+" rev-parse --is-bare-repository")
	if err != nil || strings.TrimSpace(out) != "true" {
		results = append(results, Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameRepository,
			Message:        fmt.Sprintf(messages.DoctorRepositoryMissingFmt, layout.RepositoryRoot),
			Recommendation: fmt.Sprintf(messages.DoctorRepositoryRecommendFmt, remote.Quote(layout.RepositoryRoot)),
		})
		return results
	}
	results = append(results, Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameRepository,
		Message:   fmt.Sprintf(messages.DoctorRepositoryOKFmt, layout.RepositoryRoot),
	})
	return results
}

// CheckCurrent reports where current points and warns about a leftover new_current.
// A missing current is only a warning: it is expected before the first deploy.
func CheckCurrent(ctx context.Context, ex remote.Executor, layout release.Layout) []Result {
	target, err := ex.Run(ctx, layout.ProjectRoot, release.ReadCurrentCommand)
	if err != nil {
		return []Result{{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameCurrent,
			Message:   fmt.Sprintf(messages.DoctorCurrentReadFailedFmt, err),
		}}
	}

	var results []Result
	target = strings.TrimSpace(target)
	if target == "" {
		results = append(results, Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameCurrent,
			Message:        messages.DoctorCurrentMissing,
			Recommendation: messages.DoctorCurrentRecommend,
		})
	} else if _, err := ex.Run(ctx, layout.ProjectRoot, "test -e "+release.CurrentLink); err != nil {
		results = append(results, Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameCurrent,
			Message:        fmt.Sprintf(messages.DoctorCurrentDanglingFmt, target),
			Recommendation: messages.DoctorCurrentRecommend,
		})
	} else {
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameCurrent,
			Message:   fmt.Sprintf(messages.DoctorCurrentFmt, path.Base(target)),
		})
	}

	if _, err := ex.Run(ctx, layout.ProjectRoot, "test -L "+release.NextLink); err == nil {
		results = append(results, Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameCurrent,
			Message:        messages.DoctorNextLinkLeftover,
			Recommendation: messages.DoctorNextLinkRecommend,
		})
	}
	return results
}

// CheckShared reports the target of every configured shared link.
func CheckShared(ctx context.Context, ex remote.Executor, layout release.Layout) []Result {
	if len(layout.SharedFiles) == 0 {
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameShared,
			Message:   messages.DoctorSharedNone,
		}}
	}
	links := make([]string, 0, len(layout.SharedFiles))
	for _, link := range layout.SharedFiles {
		links = append(links, link)
	}
	sort.Strings(links)

	results := make([]Result, 0, len(links))
	for _, link := range links {
		target, err := ex.Run(ctx, layout.SharedRoot, "readlink "+remote.Quote(link))
		if err != nil {
			results = append(results, Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameShared,
				Message:        fmt.Sprintf(messages.DoctorSharedLinkMissingFmt, link),
				Recommendation: messages.DoctorSharedLinkRecommend,
			})
			continue
		}
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameShared,
			Message:   fmt.Sprintf(messages.DoctorSharedLinkOKFmt, link, strings.TrimSpace(target)),
		})
	}
	return results
}
