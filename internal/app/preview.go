package app

import (
	"context"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Preview reports, per step, whether its idempotence predicate already
// holds. It performs no mutation.
func (s Service) Preview(ctx context.Context, req PreviewRequest) (PreviewResult, error) {
	planPath := strings.TrimSpace(req.PlanPath)
	if planPath == "" {
		return PreviewResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("plan file path is required")
	}
	spec, err := s.PlanLoader.LoadPlan(planPath)
	if err != nil {
		return PreviewResult{}, err
	}
	if err := ValidatePlan(ctx, spec); err != nil {
		return PreviewResult{}, err
	}

	home := firstNonEmpty(req.Home, spec.Settings.Home, os.Getenv("HOME"))
	sudoCommand := firstNonEmpty(req.SudoCommand, spec.Settings.SudoCommand)
	executor := s.newExecutor(sudoCommand, home)

	result := PreviewResult{PlanName: spec.Metadata.Name}
	for _, step := range spec.Steps {
		satisfied, detail, err := executor.Satisfied(ctx, step)
		if err != nil {
			return PreviewResult{}, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("could not determine state of step " + step.Name).
				WithCause(err)
		}
		result.Entries = append(result.Entries, PreviewEntry{
			Step:      step.Name,
			Kind:      step.Kind,
			Satisfied: satisfied,
			Detail:    detail,
		})
	}
	return result, nil
}
