package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacplan/internal/types"
)

func TestPreviewReportsSatisfiedSteps(t *testing.T) {
	runner := newScriptRunner()
	runner.installed["git"] = true
	service := newTestService(runner)
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, ".bashrc"), []byte("export EDITOR=nvim\n"), 0o644))

	planPath := writePlan(t, testPlanSpec(
		types.Step{Name: "install-git", Kind: types.StepKindRepo, Package: "git"},
		types.Step{Name: "install-zsh", Kind: types.StepKindRepo, Package: "zsh"},
		types.Step{Name: "bashrc", Kind: types.StepKindFile, Path: "~/.bashrc", Content: "export EDITOR=nvim\n"},
		types.Step{Name: "system-update", Kind: types.StepKindUpdate},
	))

	result, err := service.Preview(t.Context(), PreviewRequest{PlanPath: planPath, Home: home})
	require.NoError(t, err)
	require.Len(t, result.Entries, 4)

	assert.True(t, result.Entries[0].Satisfied)
	assert.False(t, result.Entries[1].Satisfied)
	assert.True(t, result.Entries[2].Satisfied)
	assert.False(t, result.Entries[3].Satisfied, "the update step always runs")
}

func TestPreviewPerformsNoMutation(t *testing.T) {
	runner := newScriptRunner()
	service := newTestService(runner)
	home := t.TempDir()

	planPath := writePlan(t, testPlanSpec(
		types.Step{Name: "install-git", Kind: types.StepKindRepo, Package: "git"},
		types.Step{Name: "bashrc", Kind: types.StepKindFile, Path: "~/.bashrc", Content: "x\n"},
	))

	_, err := service.Preview(t.Context(), PreviewRequest{PlanPath: planPath, Home: home})
	require.NoError(t, err)

	assert.False(t, runner.installed["git"])
	_, statErr := os.Stat(filepath.Join(home, ".bashrc"))
	assert.True(t, os.IsNotExist(statErr), "preview must not write files")
	for _, call := range runner.calls {
		assert.NotEqual(t, "-S", call.Args[0], "preview must not install packages")
	}
}
