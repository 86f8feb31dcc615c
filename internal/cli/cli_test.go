package cli

import (
	"errors"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	expected := []string{"apply", "validate", "plan", "import"}
	for _, name := range expected {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestApplyCommandFlags(t *testing.T) {
	cmd := newApplyCommand()
	flags := []string{"plan", "home", "failure-log", "sudo-command", "critical"}
	for _, name := range flags {
		flag := cmd.Flags().Lookup(name)
		assert.NotNil(t, flag, "missing flag: %s", name)
	}
}

func TestPlanCommandFlags(t *testing.T) {
	cmd := newPlanCommand()
	flags := []string{"plan", "home", "sudo-command"}
	for _, name := range flags {
		flag := cmd.Flags().Lookup(name)
		assert.NotNil(t, flag, "missing flag: %s", name)
	}
}

func TestImportCommandFlags(t *testing.T) {
	cmd := newImportCommand()
	flags := []string{"csv", "output", "name"}
	for _, name := range flags {
		flag := cmd.Flags().Lookup(name)
		assert.NotNil(t, flag, "missing flag: %s", name)
	}
}

// ---------- Exit code tests ----------

func TestExitCodeForError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{
			"invalid plan",
			errbuilder.New().WithCode(errbuilder.CodeInvalidArgument).WithMsg("bad plan"),
			2,
		},
		{
			"halted",
			errbuilder.New().WithCode(errbuilder.CodeFailedPrecondition).WithMsg("plan halted: critical step failed"),
			3,
		},
		{
			"degraded",
			errbuilder.New().WithCode(errbuilder.CodeUnavailable).WithMsg("plan completed with failures: 2 step(s) failed"),
			4,
		},
		{
			"internal",
			errbuilder.New().WithCode(errbuilder.CodeInternal).WithMsg("boom"),
			5,
		},
		{
			"plan not found",
			errbuilder.New().WithCode(errbuilder.CodeNotFound).WithMsg("plan file not found"),
			5,
		},
		{
			"plain error",
			errors.New("unknown"),
			1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, exitCodeForError(tc.err))
		})
	}
}
