package core

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"pacplan/internal/policies"
	"pacplan/internal/ports"
	"pacplan/internal/types"
)

// Pipeline executes a plan's steps strictly in declared order, one at
// a time. Non-critical failures are recorded and execution continues;
// a critical failure (or an undeterminable installation state) halts
// the run. The package database is the shared mutable resource behind
// most steps, so no two steps ever run concurrently.
type Pipeline struct {
	Executor *Executor
	Failures ports.FailureSinkPort
	Policy   policies.CriticalPolicy
	Clock    func() time.Time

	state types.PipelineState
}

func NewPipeline(executor *Executor, failures ports.FailureSinkPort, policy policies.CriticalPolicy) *Pipeline {
	return &Pipeline{
		Executor: executor,
		Failures: failures,
		Policy:   policy,
		Clock:    time.Now,
		state:    types.PipelineStateIdle,
	}
}

func (p *Pipeline) State() types.PipelineState {
	return p.state
}

// Run applies the plan. Cancellation is cooperative and checked
// between steps only; killing a package transaction mid-flight risks
// a corrupt package database.
func (p *Pipeline) Run(ctx context.Context, plan types.Plan) types.RunReport {
	p.state = types.PipelineStateRunning
	report := types.RunReport{Plan: plan.Name}
	anyFailed := false

	for _, step := range plan.Steps {
		if err := ctx.Err(); err != nil {
			log.Warn().Str("step", step.Name).Msg("run canceled before step")
			p.state = types.PipelineStateHalted
			report.State = p.state
			return report
		}

		result, queryErr := p.Executor.Execute(ctx, step)
		report.Results = append(report.Results, result)
		p.logResult(result)

		if result.Status != types.StepStatusFailed {
			continue
		}
		p.recordFailure(step, result)
		if queryErr != nil {
			log.Error().Str("step", step.Name).Err(queryErr).
				Msg("installation state unknown, halting")
			p.state = types.PipelineStateHalted
			report.State = p.state
			return report
		}
		if p.Policy.IsCritical(step) {
			log.Error().Str("step", step.Name).Str("reason", result.Reason).
				Msg("critical step failed, halting")
			p.state = types.PipelineStateHalted
			report.State = p.state
			return report
		}
		anyFailed = true
	}

	if anyFailed {
		p.state = types.PipelineStateCompletedWithFailures
	} else {
		p.state = types.PipelineStateCompleted
	}
	report.State = p.state
	return report
}

func (p *Pipeline) recordFailure(step types.Step, result types.StepResult) {
	record := types.FailureRecord{
		Timestamp: p.Clock(),
		Step:      step.Name,
		Reason:    result.Reason,
	}
	if err := p.Failures.Append(record); err != nil {
		log.Warn().Err(err).Str("step", step.Name).Msg("failed to persist failure record")
	}
}

func (p *Pipeline) logResult(result types.StepResult) {
	event := log.Info()
	if result.Status == types.StepStatusFailed {
		event = log.Error()
	}
	event.
		Str("step", result.Step).
		Str("kind", string(result.Kind)).
		Str("status", string(result.Status)).
		Dur("duration", result.Duration)
	if result.Reason != "" {
		event = event.Str("reason", result.Reason)
	}
	event.Msg("step finished")
}
