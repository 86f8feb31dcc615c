package adapters

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pacplan/internal/ports"
	"pacplan/internal/shared"
)

const defaultSudoCommand = "sudo"

// ExecRunner runs external commands synchronously. Elevated commands
// are prefixed with the configured privilege-escalation binary in
// non-interactive mode so a missing sudo ticket fails fast instead of
// hanging on a password prompt.
type ExecRunner struct {
	SudoCommand string
}

func NewExecRunner(sudoCommand string) ExecRunner {
	if strings.TrimSpace(sudoCommand) == "" {
		sudoCommand = defaultSudoCommand
	}
	return ExecRunner{SudoCommand: sudoCommand}
}

func (r ExecRunner) Run(ctx context.Context, command ports.Command) (ports.Execution, error) {
	if strings.TrimSpace(command.Path) == "" {
		return ports.Execution{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("command path is empty")
	}

	runCtx := ctx
	if command.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, command.Timeout)
		defer cancel()
	}

	path := command.Path
	args := command.Args
	if command.Elevate {
		args = append([]string{"-n", path}, args...)
		path = r.SudoCommand
	}

	cmd := exec.CommandContext(runCtx, path, args...)
	cmd.Dir = command.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	result := ports.Execution{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		result.TimedOut = true
		result.ExitCode = -1
		return result, nil
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to start command").
			WithCause(shared.CommandError(stderr.Bytes(), err))
	}
	return result, nil
}

var _ ports.RunnerPort = ExecRunner{}
