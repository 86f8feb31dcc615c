package app

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"pacplan/internal/types"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	planPath := strings.TrimSpace(req.PlanPath)
	if planPath == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("plan file path is required")
	}
	spec, err := s.PlanLoader.LoadPlan(planPath)
	if err != nil {
		return ValidateResult{}, err
	}
	if err := ValidatePlan(ctx, spec); err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{PlanName: spec.Metadata.Name, StepCount: len(spec.Steps)}, nil
}

var validStepKinds = map[types.StepKind]struct{}{
	types.StepKindRepo:    {},
	types.StepKindAur:     {},
	types.StepKindPip:     {},
	types.StepKindCommand: {},
	types.StepKindFile:    {},
	types.StepKindGitRepo: {},
	types.StepKindUpdate:  {},
}

var validWriteModes = map[types.WriteMode]struct{}{
	"":                     {},
	types.WriteModeReplace: {},
	types.WriteModeAppend:  {},
}

// ValidatePlan checks structural plan invariants, including the
// ordering rule that every aur step is preceded by the step providing
// the AUR helper. Steps are never reordered to satisfy the rule; an
// invalid order is a plan authoring error.
func ValidatePlan(ctx context.Context, spec types.PlanSpec) error {
	assert.NotEmpty(ctx, spec.APIVersion, "api_version must be set")
	assert.NotEmpty(ctx, string(spec.Kind), "kind must be set")
	assert.NotEmpty(ctx, spec.Metadata.Name, "metadata.name must be set")
	if len(spec.Steps) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("plan must contain at least one step")
	}

	seen := map[string]struct{}{}
	helperSeen := false
	for i, step := range spec.Steps {
		if err := validateStep(i, step); err != nil {
			return err
		}
		if _, ok := seen[step.Name]; ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("duplicate step name: %s", step.Name))
		}
		seen[step.Name] = struct{}{}
		if step.ProvidesAurHelper {
			helperSeen = true
		}
		if step.Kind == types.StepKindAur && !helperSeen {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("aur step %q requires a provides_aur_helper step earlier in the plan", step.Name))
		}
	}
	return nil
}

func validateStep(index int, step types.Step) error {
	if strings.TrimSpace(step.Name) == "" {
		return stepError(index, "step name must be set")
	}
	if _, ok := validStepKinds[step.Kind]; !ok {
		return stepError(index, fmt.Sprintf("unknown step kind: %s", step.Kind))
	}
	switch step.Kind {
	case types.StepKindRepo, types.StepKindAur, types.StepKindPip:
		if strings.TrimSpace(step.Package) == "" {
			return stepError(index, "package steps require a package name")
		}
	case types.StepKindCommand:
		if len(step.Argv) == 0 {
			return stepError(index, "command steps require argv")
		}
	case types.StepKindFile:
		if strings.TrimSpace(step.Path) == "" {
			return stepError(index, "file steps require a path")
		}
		if _, ok := validWriteModes[step.Mode]; !ok {
			return stepError(index, fmt.Sprintf("unknown write mode: %s", step.Mode))
		}
	case types.StepKindGitRepo:
		if strings.TrimSpace(step.URL) == "" || strings.TrimSpace(step.Dest) == "" {
			return stepError(index, "gitrepo steps require url and dest")
		}
	}
	return nil
}

func stepError(index int, msg string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("step %d: %s", index+1, msg))
}
