package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacplan/internal/types"
)

func TestValidateFixturePlan(t *testing.T) {
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	service := NewService()
	result, err := service.Validate(t.Context(), ValidateRequest{
		PlanPath: filepath.Join(root, "fixtures", "plan-sample.yaml"),
	})
	require.NoError(t, err)
	assert.Equal(t, "sample-workstation", result.PlanName)
	assert.Equal(t, 9, result.StepCount)
}

func TestValidateRequiresPlanPath(t *testing.T) {
	service := NewService()

	_, err := service.Validate(t.Context(), ValidateRequest{})
	assert.Error(t, err)
}

func validSpec(steps ...types.Step) types.PlanSpec {
	return types.PlanSpec{
		APIVersion: "v1",
		Kind:       types.PlanKindPlan,
		Metadata:   types.Metadata{Name: "test", Version: "1.0"},
		Steps:      steps,
	}
}

func TestValidatePlanAurBeforeHelper(t *testing.T) {
	spec := validSpec(
		types.Step{Name: "install-librewolf", Kind: types.StepKindAur, Package: "librewolf-bin"},
		types.Step{Name: "install-aur-helper", Kind: types.StepKindCommand,
			Argv: []string{"sh", "-c", "true"}, ProvidesAurHelper: true},
	)
	err := ValidatePlan(t.Context(), spec)
	require.Error(t, err, "aur steps must come after the helper step, never be reordered")
}

func TestValidatePlanHelperBeforeAur(t *testing.T) {
	spec := validSpec(
		types.Step{Name: "install-aur-helper", Kind: types.StepKindCommand,
			Argv: []string{"sh", "-c", "true"}, ProvidesAurHelper: true},
		types.Step{Name: "install-librewolf", Kind: types.StepKindAur, Package: "librewolf-bin"},
	)
	assert.NoError(t, ValidatePlan(t.Context(), spec))
}

func TestValidatePlanRejectsDuplicateNames(t *testing.T) {
	spec := validSpec(
		types.Step{Name: "a", Kind: types.StepKindRepo, Package: "git"},
		types.Step{Name: "a", Kind: types.StepKindRepo, Package: "zsh"},
	)
	assert.Error(t, ValidatePlan(t.Context(), spec))
}

func TestValidatePlanRejectsEmptyPlan(t *testing.T) {
	assert.Error(t, ValidatePlan(t.Context(), validSpec()))
}

func TestValidatePlanPerKindRequirements(t *testing.T) {
	cases := []struct {
		name string
		step types.Step
	}{
		{"repo without package", types.Step{Name: "s", Kind: types.StepKindRepo}},
		{"pip without package", types.Step{Name: "s", Kind: types.StepKindPip}},
		{"command without argv", types.Step{Name: "s", Kind: types.StepKindCommand}},
		{"file without path", types.Step{Name: "s", Kind: types.StepKindFile, Content: "x"}},
		{"file with bad mode", types.Step{Name: "s", Kind: types.StepKindFile, Path: "~/x", Mode: "merge"}},
		{"gitrepo without dest", types.Step{Name: "s", Kind: types.StepKindGitRepo, URL: "https://example.invalid/x.git"}},
		{"unknown kind", types.Step{Name: "s", Kind: "snap"}},
		{"missing name", types.Step{Kind: types.StepKindUpdate}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, ValidatePlan(t.Context(), validSpec(tc.step)))
		})
	}
}

func TestValidatePlanUpdateStepNeedsNothingElse(t *testing.T) {
	spec := validSpec(types.Step{Name: "system-update", Kind: types.StepKindUpdate})
	assert.NoError(t, ValidatePlan(t.Context(), spec))
}
