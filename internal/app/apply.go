package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pacplan/internal/adapters"
	"pacplan/internal/core"
	"pacplan/internal/policies"
	"pacplan/internal/shared"
	"pacplan/internal/types"
)

func (s Service) Apply(ctx context.Context, req ApplyRequest) (ApplyResult, error) {
	planPath := strings.TrimSpace(req.PlanPath)
	if planPath == "" {
		return ApplyResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("plan file path is required")
	}
	spec, err := s.PlanLoader.LoadPlan(planPath)
	if err != nil {
		return ApplyResult{}, err
	}
	if err := ValidatePlan(ctx, spec); err != nil {
		return ApplyResult{}, err
	}

	home := firstNonEmpty(req.Home, spec.Settings.Home, os.Getenv("HOME"))
	logPath := firstNonEmpty(req.FailureLog, spec.Settings.FailureLog,
		filepath.Join(home, ".local", "state", "pacplan", "failures.log"))
	logPath = shared.ExpandHome(logPath, home)
	sudoCommand := firstNonEmpty(req.SudoCommand, spec.Settings.SudoCommand)

	executor := s.newExecutor(sudoCommand, home)
	pipeline := core.NewPipeline(executor, s.NewFailureLog(logPath), policies.NewCriticalPolicy(req.CriticalSteps))
	pipeline.Clock = s.Clock

	report := pipeline.Run(ctx, types.Plan{Name: spec.Metadata.Name, Steps: spec.Steps})
	skipped, succeeded, failedCount := report.Counts()
	return ApplyResult{
		PlanName:  spec.Metadata.Name,
		State:     report.State,
		Results:   report.Results,
		Skipped:   skipped,
		Succeeded: succeeded,
		Failed:    failedCount,
	}, nil
}

func (s Service) newExecutor(sudoCommand string, home string) *core.Executor {
	runner := s.NewRunner(sudoCommand)
	return core.NewExecutor(
		adapters.NewPacmanProbe(runner),
		adapters.NewPipProbe(runner),
		runner,
		adapters.NewGitRepoAdapter(runner),
		home,
	)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
