package app

import (
	"time"

	"pacplan/internal/adapters"
	"pacplan/internal/ports"
)

type Service struct {
	PlanLoader ports.PlanLoaderPort
	PlanWriter ports.PlanWriterPort
	Programs   ports.ProgramListPort
	// NewRunner and NewFailureLog are factories because the sudo
	// command and log path come from plan settings resolved per
	// request. Tests swap them for fakes.
	NewRunner     func(sudoCommand string) ports.RunnerPort
	NewFailureLog func(path string) ports.FailureSinkPort
	Clock         func() time.Time
}

func NewService() Service {
	plan := adapters.NewPlanFileAdapter()
	return Service{
		PlanLoader: plan,
		PlanWriter: plan,
		Programs:   adapters.NewProgramListAdapter(),
		NewRunner: func(sudoCommand string) ports.RunnerPort {
			return adapters.NewExecRunner(sudoCommand)
		},
		NewFailureLog: func(path string) ports.FailureSinkPort {
			return adapters.NewFileFailureLog(path)
		},
		Clock: time.Now,
	}
}
