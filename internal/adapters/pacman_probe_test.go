package adapters

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacplan/internal/ports"
)

func TestPacmanProbeInstalled(t *testing.T) {
	runner := &stubRunner{handler: func(cmd ports.Command) (ports.Execution, error) {
		return ports.Execution{ExitCode: 0, Stdout: "git 2.49.0-1\n"}, nil
	}}
	probe := NewPacmanProbe(runner)

	pkg, installed, err := probe.Installed(t.Context(), "git")
	require.NoError(t, err)
	assert.True(t, installed)
	assert.Equal(t, ports.InstalledPackage{Name: "git", Version: "2.49.0-1"}, pkg)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, "pacman", runner.calls[0].Path)
	assert.Equal(t, []string{"-Q", "git"}, runner.calls[0].Args)
	assert.False(t, runner.calls[0].Elevate, "queries never need elevation")
}

func TestPacmanProbeNotInstalled(t *testing.T) {
	runner := &stubRunner{handler: func(cmd ports.Command) (ports.Execution, error) {
		return ports.Execution{ExitCode: 1, Stderr: "error: package 'nope' was not found"}, nil
	}}
	probe := NewPacmanProbe(runner)

	_, installed, err := probe.Installed(t.Context(), "nope")
	require.NoError(t, err)
	assert.False(t, installed)
}

func TestPacmanProbeDatabaseError(t *testing.T) {
	runner := &stubRunner{handler: func(cmd ports.Command) (ports.Execution, error) {
		return ports.Execution{ExitCode: 255, Stderr: "error: could not open database"}, nil
	}}
	probe := NewPacmanProbe(runner)

	_, _, err := probe.Installed(t.Context(), "git")
	assert.Error(t, err)
}

func TestPacmanProbeRunnerError(t *testing.T) {
	runner := &stubRunner{handler: func(cmd ports.Command) (ports.Execution, error) {
		return ports.Execution{}, errors.New("exec format error")
	}}
	probe := NewPacmanProbe(runner)

	_, _, err := probe.Installed(t.Context(), "git")
	assert.Error(t, err)
}

func TestPacmanProbeEmptyName(t *testing.T) {
	probe := NewPacmanProbe(&stubRunner{})

	_, _, err := probe.Installed(t.Context(), "  ")
	assert.Error(t, err)
}
