package command

import (
	"context"
	"fmt"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/args"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/client"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/logger"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/lzerrors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time with -ldflags "-X .../command.Version=x.y.z".
var Version = "development"

const (
	ExitOk                 = 0
	ExitError              = 1
	ExitConfigurationError = 2
)

// NewRootCommand returns the lzterra command tree. The arguments are shared by every sub command, and are
// completed from the configuration file and environment before a sub command runs.
func NewRootCommand(source client.ConfigSource) *cobra.Command {
	arguments := &args.Arguments{}

	root := &cobra.Command{
		Use:   "lzterra",
		Short: "Composes a cloud landing zone as Terraform configuration",
		Long: `Composes a cloud landing zone as Terraform configuration.

The landing zone is an organization hierarchy, a unit per platform concern and per environment,
a shared network, security services and monitoring, described for one of GCP, AWS or Azure.

Settings can be passed as flags, in an lzterra.yaml configuration file, or as LZTERRA_ prefixed
environment variables.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger.BuildLogger(arguments.Verbose)
			return args.Complete(cmd.Context(), cmd.Flags(), arguments, source)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if arguments.Version {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), Version)
				return err
			}
			return cmd.Help()
		},
	}

	args.AddFlags(root.PersistentFlags(), arguments)

	root.AddCommand(newRenderCommand(arguments))
	root.AddCommand(newGraphCommand(arguments))
	root.AddCommand(newPreviewCommand(arguments))

	return root
}

// Execute runs the command tree and returns the process exit code. Configuration errors exit with 2, so
// they can be told apart from failures while composing or writing the landing zone.
func Execute(ctx context.Context, arguments []string) int {
	root := NewRootCommand(client.ConfigSourceClient{})
	root.SetArgs(arguments)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOk
	}

	root.PrintErrln(fmt.Sprintf("%s %v", root.ErrPrefix(), err))

	if lzerrors.IsConfigurationError(err) {
		return ExitConfigurationError
	}

	if lzerrors.IsDependencyError(err) {
		zap.L().Error("The landing zone graph is invalid", zap.Error(err))
	}

	return ExitError
}
