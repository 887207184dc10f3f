package command

import (
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/args"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/entry"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/output"
	"github.com/spf13/cobra"
)

func newRenderCommand(arguments *args.Arguments) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Writes the landing zone as Terraform files",
		Long: `Writes the landing zone as Terraform files, one file per component.

Files are written to the directory set with --dest, or to the console when no directory is set.
The files of --overlayDir are copied to the destination first, which is a way to add a backend
configuration or other hand written files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			files, err := entry.Entry(cmd.Context(), *arguments)
			if err != nil {
				return err
			}

			return output.WriteFiles(files, arguments.Destination, arguments.OverlayDir, arguments.Console, cmd.OutOrStdout())
		},
	}
}
