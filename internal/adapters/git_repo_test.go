package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacplan/internal/ports"
)

func TestGitRepoSyncClonesWhenAbsent(t *testing.T) {
	runner := &stubRunner{}
	adapter := NewGitRepoAdapter(runner)
	dest := filepath.Join(t.TempDir(), "dotfiles")

	action, err := adapter.Sync(t.Context(), "https://example.invalid/dotfiles.git", dest)
	require.NoError(t, err)
	assert.Equal(t, ports.SyncActionCloned, action)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, "git", runner.calls[0].Path)
	assert.Equal(t, []string{"clone", "--depth", "1", "https://example.invalid/dotfiles.git", dest}, runner.calls[0].Args)
}

func TestGitRepoSyncPullsExistingWorkingCopy(t *testing.T) {
	runner := &stubRunner{}
	adapter := NewGitRepoAdapter(runner)
	dest := filepath.Join(t.TempDir(), "dotfiles")
	require.NoError(t, os.MkdirAll(filepath.Join(dest, ".git"), 0o755))

	action, err := adapter.Sync(t.Context(), "https://example.invalid/dotfiles.git", dest)
	require.NoError(t, err)
	assert.Equal(t, ports.SyncActionPulled, action)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"-C", dest, "pull", "--ff-only"}, runner.calls[0].Args)
}

func TestGitRepoSyncRejectsNonRepoDestination(t *testing.T) {
	runner := &stubRunner{}
	adapter := NewGitRepoAdapter(runner)
	dest := t.TempDir()

	_, err := adapter.Sync(t.Context(), "https://example.invalid/dotfiles.git", dest)
	require.Error(t, err)
	assert.Empty(t, runner.calls)
}

func TestGitRepoSyncPropagatesGitFailure(t *testing.T) {
	runner := &stubRunner{handler: func(cmd ports.Command) (ports.Execution, error) {
		return ports.Execution{ExitCode: 128, Stderr: "fatal: repository not found"}, nil
	}}
	adapter := NewGitRepoAdapter(runner)
	dest := filepath.Join(t.TempDir(), "dotfiles")

	_, err := adapter.Sync(t.Context(), "https://example.invalid/dotfiles.git", dest)
	assert.Error(t, err)
}

func TestGitRepoSyncValidatesArguments(t *testing.T) {
	adapter := NewGitRepoAdapter(&stubRunner{})

	_, err := adapter.Sync(t.Context(), "", "somewhere")
	assert.Error(t, err)

	_, err = adapter.Sync(t.Context(), "https://example.invalid/x.git", " ")
	assert.Error(t, err)
}
