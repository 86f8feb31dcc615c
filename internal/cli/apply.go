package cli

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pacplan/internal/app"
	"pacplan/internal/types"
)

type applyOptions struct {
	Plan          string
	Home          string
	FailureLog    string
	SudoCommand   string
	CriticalSteps []string
}

func newApplyCommand() *cobra.Command {
	opts := applyOptions{}
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Run a provisioning plan against this host",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApply(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Plan, "plan", "", "Plan file path")
	cmd.Flags().StringVar(&opts.Home, "home", "", "Home directory for ~ expansion")
	cmd.Flags().StringVar(&opts.FailureLog, "failure-log", "", "Failure log path")
	cmd.Flags().StringVar(&opts.SudoCommand, "sudo-command", "", "Privilege escalation command")
	cmd.Flags().StringSliceVar(&opts.CriticalSteps, "critical", nil, "Additional critical step names")

	_ = viper.BindPFlag("plan", cmd.Flags().Lookup("plan"))
	_ = viper.BindPFlag("home", cmd.Flags().Lookup("home"))
	_ = viper.BindPFlag("failure_log", cmd.Flags().Lookup("failure-log"))
	_ = viper.BindPFlag("sudo_command", cmd.Flags().Lookup("sudo-command"))
	_ = viper.BindPFlag("critical", cmd.Flags().Lookup("critical"))

	return cmd
}

func runApply(ctx context.Context, cmd *cobra.Command, opts applyOptions) error {
	service := newAppService()
	result, err := service.Apply(ctx, app.ApplyRequest{
		PlanPath:      resolveString(cmd, opts.Plan, "plan", "plan"),
		Home:          resolveString(cmd, opts.Home, "home", "home"),
		FailureLog:    resolveString(cmd, opts.FailureLog, "failure_log", "failure-log"),
		SudoCommand:   resolveString(cmd, opts.SudoCommand, "sudo_command", "sudo-command"),
		CriticalSteps: resolveStrings(cmd, opts.CriticalSteps, "critical", "critical"),
	})
	if err != nil {
		return err
	}

	printSummary(result)

	switch result.State {
	case types.PipelineStateHalted:
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("plan halted: critical step failed")
	case types.PipelineStateCompletedWithFailures:
		return errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg(fmt.Sprintf("plan completed with failures: %d step(s) failed", result.Failed))
	default:
		return nil
	}
}

// printSummary enumerates every executed step so a degraded run is
// never silent about which steps failed and why.
func printSummary(result app.ApplyResult) {
	fmt.Printf("plan: %s (%s)\n", result.PlanName, result.State)
	for _, step := range result.Results {
		line := fmt.Sprintf("  %-10s %s", step.Status, step.Step)
		if step.Reason != "" {
			line += ": " + step.Reason
		}
		fmt.Println(line)
	}
	fmt.Printf("skipped=%d succeeded=%d failed=%d\n",
		result.Skipped, result.Succeeded, result.Failed)
}
