package adapters

import (
	"context"

	"pacplan/internal/ports"
)

type stubRunner struct {
	calls   []ports.Command
	handler func(ports.Command) (ports.Execution, error)
}

func (r *stubRunner) Run(_ context.Context, cmd ports.Command) (ports.Execution, error) {
	r.calls = append(r.calls, cmd)
	if r.handler == nil {
		return ports.Execution{}, nil
	}
	return r.handler(cmd)
}
