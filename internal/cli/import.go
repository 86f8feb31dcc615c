package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pacplan/internal/app"
)

type importOptions struct {
	CSV    string
	Output string
	Name   string
}

func newImportCommand() *cobra.Command {
	opts := importOptions{}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Convert a legacy CSV program list into a plan file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runImport(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.CSV, "csv", "", "Program list CSV path")
	cmd.Flags().StringVar(&opts.Output, "output", "plan.yaml", "Output plan path")
	cmd.Flags().StringVar(&opts.Name, "name", "", "Plan name")
	_ = viper.BindPFlag("csv", cmd.Flags().Lookup("csv"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("name", cmd.Flags().Lookup("name"))
	return cmd
}

func runImport(ctx context.Context, cmd *cobra.Command, opts importOptions) error {
	service := newAppService()
	result, err := service.Import(ctx, app.ImportRequest{
		ProgramsPath: resolveString(cmd, opts.CSV, "csv", "csv"),
		OutputPath:   resolveString(cmd, opts.Output, "output", "output"),
		PlanName:     resolveString(cmd, opts.Name, "name", "name"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("imported: %s (%d steps)\n", result.OutputPath, result.StepCount)
	return nil
}
