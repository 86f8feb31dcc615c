package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pacplan/internal/ports"
)

// GitRepoAdapter syncs a git working copy: clone when the destination
// is absent, fast-forward pull when it already holds a repository.
type GitRepoAdapter struct {
	Runner ports.RunnerPort
}

func NewGitRepoAdapter(runner ports.RunnerPort) GitRepoAdapter {
	return GitRepoAdapter{Runner: runner}
}

func (a GitRepoAdapter) Sync(ctx context.Context, url string, dest string) (ports.SyncAction, error) {
	if strings.TrimSpace(url) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("repository url is empty")
	}
	if strings.TrimSpace(dest) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("repository destination is empty")
	}

	if _, err := os.Stat(filepath.Join(dest, ".git")); err == nil {
		if err := a.git(ctx, "", "-C", dest, "pull", "--ff-only"); err != nil {
			return "", err
		}
		return ports.SyncActionPulled, nil
	}
	if _, err := os.Stat(dest); err == nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("destination %s exists but is not a git repository", dest))
	}

	if err := a.git(ctx, "", "clone", "--depth", "1", url, dest); err != nil {
		return "", err
	}
	return ports.SyncActionCloned, nil
}

func (a GitRepoAdapter) git(ctx context.Context, dir string, args ...string) error {
	result, err := a.Runner.Run(ctx, ports.Command{Path: "git", Args: args, Dir: dir})
	if err != nil {
		return err
	}
	if result.TimedOut {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("git command timed out")
	}
	if result.ExitCode != 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("git %s failed: %s", strings.Join(args, " "), strings.TrimSpace(result.Stderr)))
	}
	return nil
}

var _ ports.RepoSyncPort = GitRepoAdapter{}
