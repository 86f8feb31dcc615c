package app

import "pacplan/internal/types"

type ApplyRequest struct {
	PlanPath      string
	Home          string
	FailureLog    string
	SudoCommand   string
	CriticalSteps []string
}

type ApplyResult struct {
	PlanName  string
	State     types.PipelineState
	Results   []types.StepResult
	Skipped   int
	Succeeded int
	Failed    int
}

type ValidateRequest struct {
	PlanPath string
}

type ValidateResult struct {
	PlanName  string
	StepCount int
}

type PreviewRequest struct {
	PlanPath    string
	Home        string
	SudoCommand string
}

type PreviewEntry struct {
	Step      string
	Kind      types.StepKind
	Satisfied bool
	Detail    string
}

type PreviewResult struct {
	PlanName string
	Entries  []PreviewEntry
}

type ImportRequest struct {
	ProgramsPath string
	OutputPath   string
	PlanName     string
}

type ImportResult struct {
	OutputPath string
	StepCount  int
}
