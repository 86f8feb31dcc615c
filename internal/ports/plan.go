package ports

import "pacplan/internal/types"

type PlanLoaderPort interface {
	LoadPlan(path string) (types.PlanSpec, error)
}

type PlanWriterPort interface {
	WritePlan(path string, spec types.PlanSpec) error
}

// ProgramListPort reads the legacy CSV program list (tag,name,note)
// and converts it into plan steps.
type ProgramListPort interface {
	LoadPrograms(path string) ([]types.Step, error)
}
