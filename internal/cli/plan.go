package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pacplan/internal/app"
)

type planOptions struct {
	Plan        string
	Home        string
	SudoCommand string
}

func newPlanCommand() *cobra.Command {
	opts := planOptions{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Preview which steps a plan would run",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Plan, "plan", "", "Plan file path")
	cmd.Flags().StringVar(&opts.Home, "home", "", "Home directory for ~ expansion")
	cmd.Flags().StringVar(&opts.SudoCommand, "sudo-command", "", "Privilege escalation command")
	_ = viper.BindPFlag("plan", cmd.Flags().Lookup("plan"))
	_ = viper.BindPFlag("home", cmd.Flags().Lookup("home"))
	_ = viper.BindPFlag("sudo_command", cmd.Flags().Lookup("sudo-command"))
	return cmd
}

func runPlan(ctx context.Context, cmd *cobra.Command, opts planOptions) error {
	service := newAppService()
	result, err := service.Preview(ctx, app.PreviewRequest{
		PlanPath:    resolveString(cmd, opts.Plan, "plan", "plan"),
		Home:        resolveString(cmd, opts.Home, "home", "home"),
		SudoCommand: resolveString(cmd, opts.SudoCommand, "sudo_command", "sudo-command"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("plan: %s\n", result.PlanName)
	for _, entry := range result.Entries {
		state := "would run"
		if entry.Satisfied {
			state = "satisfied"
		}
		fmt.Printf("  %-10s %-8s %s: %s\n", state, entry.Kind, entry.Step, entry.Detail)
	}
	return nil
}
