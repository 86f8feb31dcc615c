package types

type StepKind string

const (
	StepKindRepo    StepKind = "repo"
	StepKindAur     StepKind = "aur"
	StepKindPip     StepKind = "pip"
	StepKindCommand StepKind = "command"
	StepKindFile    StepKind = "file"
	StepKindGitRepo StepKind = "gitrepo"
	StepKindUpdate  StepKind = "update"
)

type StepStatus string

const (
	StepStatusSkipped   StepStatus = "skipped"
	StepStatusSucceeded StepStatus = "succeeded"
	StepStatusFailed    StepStatus = "failed"
)

type PipelineState string

const (
	PipelineStateIdle                  PipelineState = "idle"
	PipelineStateRunning               PipelineState = "running"
	PipelineStateCompleted             PipelineState = "completed"
	PipelineStateCompletedWithFailures PipelineState = "completed_with_failures"
	PipelineStateHalted                PipelineState = "halted"
)

type WriteMode string

const (
	WriteModeReplace WriteMode = "replace"
	WriteModeAppend  WriteMode = "append"
)

type PlanKind string

const (
	PlanKindPlan PlanKind = "plan"
)
