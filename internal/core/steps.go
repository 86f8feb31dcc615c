package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pacplan/internal/ports"
	"pacplan/internal/shared"
	"pacplan/internal/types"
)

const defaultAurHelper = "yay"

// Executor runs one plan step and produces exactly one StepResult.
// Side effects are forward-only: nothing is rolled back on failure.
//
// The second return value of Execute is non-nil only when the step's
// installation state could not be determined (the probe or idempotence
// predicate itself failed). Callers must treat that as critical since
// re-running the step cannot be assumed safe.
type Executor struct {
	Pacman    ports.PackageProbePort
	Pip       ports.PackageProbePort
	Runner    ports.RunnerPort
	Repo      ports.RepoSyncPort
	Recovery  *RecoveryPolicy
	Home      string
	AurHelper string
	Python    string

	versions *versionCache
}

func NewExecutor(pacman ports.PackageProbePort, pip ports.PackageProbePort, runner ports.RunnerPort, repo ports.RepoSyncPort, home string) *Executor {
	return &Executor{
		Pacman:    pacman,
		Pip:       pip,
		Runner:    runner,
		Repo:      repo,
		Recovery:  NewRecoveryPolicy(runner),
		Home:      home,
		AurHelper: defaultAurHelper,
		Python:    "python3",
		versions:  newVersionCache(),
	}
}

func (e *Executor) Execute(ctx context.Context, step types.Step) (types.StepResult, error) {
	start := time.Now()
	result, err := e.execute(ctx, step)
	result.Step = step.Name
	result.Kind = step.Kind
	result.Duration = time.Since(start)
	return result, err
}

func (e *Executor) execute(ctx context.Context, step types.Step) (types.StepResult, error) {
	switch step.Kind {
	case types.StepKindRepo:
		return e.installPackage(ctx, step, e.Pacman, ports.Command{
			Path:    "pacman",
			Args:    []string{"-S", "--noconfirm", "--needed", step.Package},
			Elevate: true,
			Timeout: stepTimeout(step),
		})
	case types.StepKindAur:
		// The helper refuses to run as root and escalates internally
		// for the install phase, so the step itself stays unelevated.
		return e.installPackage(ctx, step, e.Pacman, ports.Command{
			Path:    e.AurHelper,
			Args:    []string{"-S", "--noconfirm", "--needed", step.Package},
			Timeout: stepTimeout(step),
		})
	case types.StepKindPip:
		return e.installPackage(ctx, step, e.Pip, ports.Command{
			Path:    e.Python,
			Args:    []string{"-m", "pip", "install", "--user", step.Package},
			Timeout: stepTimeout(step),
		})
	case types.StepKindCommand:
		return e.runCommand(ctx, step)
	case types.StepKindFile:
		return e.writeFile(step)
	case types.StepKindGitRepo:
		return e.syncRepo(ctx, step)
	case types.StepKindUpdate:
		if err := e.Recovery.Update(ctx); err != nil {
			return failed(err.Error()), nil
		}
		return succeeded("system updated"), nil
	default:
		return failed(fmt.Sprintf("unknown step kind: %s", step.Kind)), nil
	}
}

// Satisfied reports whether a step's idempotence predicate already
// holds, without mutating anything. Used by dry-run previews.
func (e *Executor) Satisfied(ctx context.Context, step types.Step) (bool, string, error) {
	switch step.Kind {
	case types.StepKindRepo, types.StepKindAur:
		return e.packageSatisfied(ctx, step, e.Pacman)
	case types.StepKindPip:
		return e.packageSatisfied(ctx, step, e.Pip)
	case types.StepKindCommand:
		if len(step.Unless) == 0 {
			return false, "no predicate, runs unconditionally", nil
		}
		return e.predicateSatisfied(ctx, step)
	case types.StepKindFile:
		return e.fileSatisfied(step)
	case types.StepKindGitRepo:
		dest := shared.ExpandHome(step.Dest, e.Home)
		if _, err := os.Stat(filepath.Join(dest, ".git")); err == nil {
			return true, "working copy present, would pull", nil
		}
		return false, "would clone", nil
	case types.StepKindUpdate:
		return false, "always runs", nil
	default:
		return false, fmt.Sprintf("unknown step kind: %s", step.Kind), nil
	}
}

func (e *Executor) installPackage(ctx context.Context, step types.Step, probe ports.PackageProbePort, install ports.Command) (types.StepResult, error) {
	satisfied, reason, err := e.packageSatisfied(ctx, step, probe)
	if err != nil {
		return failed(err.Error()), err
	}
	if satisfied {
		return skipped(reason), nil
	}

	result, err := e.Runner.Run(ctx, install)
	if err != nil {
		return failed(err.Error()), nil
	}
	if result.TimedOut {
		return failed(fmt.Sprintf("install of %s timed out", step.Package)), nil
	}
	if result.ExitCode != 0 {
		return failed(fmt.Sprintf("install of %s failed with exit code %d: %s",
			step.Package, result.ExitCode, strings.TrimSpace(result.Stderr))), nil
	}
	return succeeded("installed " + step.Package), nil
}

func (e *Executor) packageSatisfied(ctx context.Context, step types.Step, probe ports.PackageProbePort) (bool, string, error) {
	pkg, installed, err := probe.Installed(ctx, step.Package)
	if err != nil {
		return false, "", err
	}
	if !installed {
		return false, "not installed", nil
	}
	if step.MinVersion == "" {
		return true, fmt.Sprintf("already installed (%s)", pkg.Version), nil
	}

	var ok bool
	if step.Kind == types.StepKindPip {
		ok, err = e.versions.PipAtLeast(pkg.Version, step.MinVersion)
	} else {
		ok, err = e.versions.PacmanAtLeast(pkg.Version, step.MinVersion)
	}
	if err != nil {
		return false, "", err
	}
	if ok {
		return true, fmt.Sprintf("installed %s satisfies minimum %s", pkg.Version, step.MinVersion), nil
	}
	return false, fmt.Sprintf("installed %s below minimum %s", pkg.Version, step.MinVersion), nil
}

func (e *Executor) runCommand(ctx context.Context, step types.Step) (types.StepResult, error) {
	if len(step.Unless) > 0 {
		ok, reason, err := e.predicateSatisfied(ctx, step)
		if err != nil {
			return failed(err.Error()), err
		}
		if ok {
			return skipped(reason), nil
		}
	}

	if len(step.Argv) == 0 {
		return failed("command argv is empty"), nil
	}
	result, err := e.Runner.Run(ctx, ports.Command{
		Path:    step.Argv[0],
		Args:    step.Argv[1:],
		Dir:     e.Home,
		Elevate: step.Elevate,
		Timeout: stepTimeout(step),
	})
	if err != nil {
		return failed(err.Error()), nil
	}
	if result.TimedOut {
		return failed("command timed out"), nil
	}
	if result.ExitCode != 0 {
		return failed(fmt.Sprintf("command failed with exit code %d: %s",
			result.ExitCode, strings.TrimSpace(result.Stderr))), nil
	}
	return succeeded(""), nil
}

func (e *Executor) predicateSatisfied(ctx context.Context, step types.Step) (bool, string, error) {
	result, err := e.Runner.Run(ctx, ports.Command{
		Path:    step.Unless[0],
		Args:    step.Unless[1:],
		Dir:     e.Home,
		Timeout: stepTimeout(step),
	})
	if err != nil {
		return false, "", err
	}
	if !result.TimedOut && result.ExitCode == 0 {
		return true, "predicate satisfied", nil
	}
	return false, "predicate not satisfied", nil
}

func (e *Executor) writeFile(step types.Step) (types.StepResult, error) {
	satisfied, reason, err := e.fileSatisfied(step)
	if err != nil {
		return failed(err.Error()), nil
	}
	if satisfied {
		return skipped(reason), nil
	}

	path := shared.ExpandHome(step.Path, e.Home)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return failed("failed to create parent directory: " + err.Error()), nil
	}
	switch writeMode(step) {
	case types.WriteModeReplace:
		if err := os.WriteFile(path, []byte(step.Content), 0o644); err != nil {
			return failed("failed to write file: " + err.Error()), nil
		}
		return succeeded("wrote " + path), nil
	case types.WriteModeAppend:
		file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return failed("failed to open file: " + err.Error()), nil
		}
		defer file.Close()
		if _, err := file.WriteString(step.Content); err != nil {
			return failed("failed to append to file: " + err.Error()), nil
		}
		return succeeded("appended to " + path), nil
	default:
		return failed(fmt.Sprintf("unknown write mode: %s", step.Mode)), nil
	}
}

func (e *Executor) fileSatisfied(step types.Step) (bool, string, error) {
	path := shared.ExpandHome(step.Path, e.Home)
	existing, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, "file absent", nil
		}
		return false, "", err
	}
	switch writeMode(step) {
	case types.WriteModeReplace:
		if string(existing) == step.Content {
			return true, "content already present", nil
		}
		return false, "content differs", nil
	case types.WriteModeAppend:
		if strings.Contains(string(existing), step.Content) {
			return true, "content already present", nil
		}
		return false, "content absent", nil
	default:
		return false, fmt.Sprintf("unknown write mode: %s", step.Mode), nil
	}
}

func (e *Executor) syncRepo(ctx context.Context, step types.Step) (types.StepResult, error) {
	dest := shared.ExpandHome(step.Dest, e.Home)
	action, err := e.Repo.Sync(ctx, step.URL, dest)
	if err != nil {
		return failed(err.Error()), nil
	}
	return succeeded(string(action) + " " + dest), nil
}

func writeMode(step types.Step) types.WriteMode {
	if step.Mode == "" {
		return types.WriteModeReplace
	}
	return step.Mode
}

func stepTimeout(step types.Step) time.Duration {
	if step.TimeoutSeconds > 0 {
		return time.Duration(step.TimeoutSeconds) * time.Second
	}
	return 0
}

func skipped(reason string) types.StepResult {
	return types.StepResult{Status: types.StepStatusSkipped, Reason: reason}
}

func succeeded(reason string) types.StepResult {
	return types.StepResult{Status: types.StepStatusSucceeded, Reason: reason}
}

func failed(reason string) types.StepResult {
	return types.StepResult{Status: types.StepStatusFailed, Reason: reason}
}
