package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pacplan/internal/types"
)

const aurHelperRemote = "https://aur.archlinux.org/yay.git"

// Import converts a legacy CSV program list into a plan file. When the
// list contains AUR packages, a bootstrap step that builds the AUR
// helper from source is inserted ahead of them, matching what the
// shell scripts this format comes from did by hand.
func (s Service) Import(ctx context.Context, req ImportRequest) (ImportResult, error) {
	programsPath := strings.TrimSpace(req.ProgramsPath)
	if programsPath == "" {
		return ImportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("program list path is required")
	}
	outputPath := strings.TrimSpace(req.OutputPath)
	if outputPath == "" {
		return ImportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is required")
	}

	steps, err := s.Programs.LoadPrograms(programsPath)
	if err != nil {
		return ImportResult{}, err
	}
	if hasAurStep(steps) {
		steps = append([]types.Step{aurHelperBootstrapStep()}, steps...)
	}

	name := firstNonEmpty(req.PlanName, "imported")
	spec := types.PlanSpec{
		APIVersion: "v1",
		Kind:       types.PlanKindPlan,
		Metadata:   types.Metadata{Name: name, Version: "1.0"},
		Steps:      steps,
	}
	if err := ValidatePlan(ctx, spec); err != nil {
		return ImportResult{}, err
	}
	if err := s.PlanWriter.WritePlan(outputPath, spec); err != nil {
		return ImportResult{}, err
	}
	return ImportResult{OutputPath: outputPath, StepCount: len(spec.Steps)}, nil
}

func hasAurStep(steps []types.Step) bool {
	for _, step := range steps {
		if step.Kind == types.StepKindAur {
			return true
		}
	}
	return false
}

func aurHelperBootstrapStep() types.Step {
	return types.Step{
		Name: "install-aur-helper",
		Kind: types.StepKindCommand,
		Argv: []string{"sh", "-c",
			"tmp=$(mktemp -d) && git clone --depth 1 " + aurHelperRemote + " \"$tmp/yay\" && cd \"$tmp/yay\" && makepkg -si --noconfirm"},
		Unless:            []string{"sh", "-c", "command -v yay"},
		ProvidesAurHelper: true,
	}
}
