package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pacplan/internal/ports"
)

// PacmanProbe queries the local pacman database through `pacman -Q`.
// Exit code 1 means the package is not installed; any other non-zero
// exit means the database itself could not be queried, which callers
// must treat as fatal rather than as "not installed".
type PacmanProbe struct {
	Runner ports.RunnerPort
}

func NewPacmanProbe(runner ports.RunnerPort) PacmanProbe {
	return PacmanProbe{Runner: runner}
}

func (p PacmanProbe) Installed(ctx context.Context, name string) (ports.InstalledPackage, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ports.InstalledPackage{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name is empty")
	}

	result, err := p.Runner.Run(ctx, ports.Command{Path: "pacman", Args: []string{"-Q", name}})
	if err != nil {
		return ports.InstalledPackage{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("package database query failed").
			WithCause(err)
	}
	if result.TimedOut {
		return ports.InstalledPackage{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("package database query timed out")
	}

	switch result.ExitCode {
	case 0:
		fields := strings.Fields(strings.TrimSpace(result.Stdout))
		if len(fields) < 2 {
			return ports.InstalledPackage{}, false, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("unexpected pacman -Q output: %q", result.Stdout))
		}
		return ports.InstalledPackage{Name: fields[0], Version: fields[1]}, true, nil
	case 1:
		return ports.InstalledPackage{}, false, nil
	default:
		return ports.InstalledPackage{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("pacman -Q failed with exit code %d: %s", result.ExitCode, strings.TrimSpace(result.Stderr)))
	}
}

var _ ports.PackageProbePort = PacmanProbe{}
