package types

import "time"

// StepResult is produced exactly once per step per run and never
// mutated afterwards.
type StepResult struct {
	Step     string
	Kind     StepKind
	Status   StepStatus
	Reason   string
	Duration time.Duration
}

type FailureRecord struct {
	Timestamp time.Time
	Step      string
	Reason    string
}

// RunReport is the pipeline's terminal state plus the ordered results
// for every step that executed. Steps after a halt are absent.
type RunReport struct {
	Plan    string
	State   PipelineState
	Results []StepResult
}

func (r RunReport) Counts() (skipped, succeeded, failed int) {
	for _, result := range r.Results {
		switch result.Status {
		case StepStatusSkipped:
			skipped++
		case StepStatusSucceeded:
			succeeded++
		case StepStatusFailed:
			failed++
		}
	}
	return skipped, succeeded, failed
}
