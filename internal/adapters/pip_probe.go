package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pacplan/internal/ports"
	"pacplan/internal/shared"
)

const defaultPythonCommand = "python3"

// PipProbe queries installed Python packages through
// `python3 -m pip list --format=json`, matching names after PEP 503
// normalization.
type PipProbe struct {
	Runner ports.RunnerPort
	Python string
}

type pipListEntry struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func NewPipProbe(runner ports.RunnerPort) PipProbe {
	return PipProbe{Runner: runner, Python: defaultPythonCommand}
}

func (p PipProbe) Installed(ctx context.Context, name string) (ports.InstalledPackage, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ports.InstalledPackage{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name is empty")
	}

	python := p.Python
	if strings.TrimSpace(python) == "" {
		python = defaultPythonCommand
	}
	result, err := p.Runner.Run(ctx, ports.Command{
		Path: python,
		Args: []string{"-m", "pip", "list", "--format=json"},
	})
	if err != nil {
		return ports.InstalledPackage{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("pip package query failed").
			WithCause(err)
	}
	if result.TimedOut || result.ExitCode != 0 {
		return ports.InstalledPackage{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("pip list failed with exit code %d: %s", result.ExitCode, strings.TrimSpace(result.Stderr)))
	}

	var entries []pipListEntry
	if err := json.Unmarshal([]byte(result.Stdout), &entries); err != nil {
		return ports.InstalledPackage{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse pip list output").
			WithCause(err)
	}

	wanted := shared.NormalizePipName(name)
	for _, entry := range entries {
		if shared.NormalizePipName(entry.Name) == wanted {
			return ports.InstalledPackage{Name: entry.Name, Version: entry.Version}, true, nil
		}
	}
	return ports.InstalledPackage{}, false, nil
}

var _ ports.PackageProbePort = PipProbe{}
