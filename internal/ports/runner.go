package ports

import (
	"context"
	"time"
)

// Command describes one subprocess invocation. Elevate is explicit:
// callers decide per command whether it runs through the configured
// privilege-escalation binary, never through ambient shell state.
type Command struct {
	Path    string
	Args    []string
	Dir     string
	Elevate bool
	Timeout time.Duration
}

// Execution is the structured outcome of a finished subprocess. A
// non-zero exit code is data, not an error; RunnerPort errors mean the
// process could not be started or supervised at all.
type Execution struct {
	ExitCode int
	Stdout   string
	Stderr   string
	TimedOut bool
	Duration time.Duration
}

type RunnerPort interface {
	Run(ctx context.Context, cmd Command) (Execution, error)
}
