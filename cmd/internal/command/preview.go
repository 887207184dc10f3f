package command

import (
	"encoding/json"
	"io"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/args"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/data"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/entry"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/lzerrors"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/realize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	PreviewFormatJson = "json"
	PreviewFormatYaml = "yaml"
)

func newPreviewCommand(arguments *args.Arguments) *cobra.Command {
	var format string
	var concurrency int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Simulates creating the landing zone and prints the aggregate outputs",
		Long: `Simulates creating the landing zone and prints the aggregate outputs.

Every resource is created only after the resources it depends on, wave by wave, and generated
values like project numbers and account ids are replaced by stable placeholder values. No cloud
is contacted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != PreviewFormatJson && format != PreviewFormatYaml {
				return lzerrors.NewConfigurationError("output", "must be %s or %s, was %q", PreviewFormatJson, PreviewFormatYaml, format)
			}

			zone, result, err := entry.Describe(cmd.Context(), *arguments)
			if err != nil {
				return err
			}

			preview, err := realize.Realizer{Concurrency: concurrency}.Realize(cmd.Context(), zone.Resources, result, data.NewState())
			if err != nil {
				return err
			}

			return WritePreview(cmd.OutOrStdout(), preview, format)
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", PreviewFormatJson, "The output format, one of json or yaml")
	cmd.Flags().IntVar(&concurrency, "parallelism", realize.DefaultConcurrency, "The number of resources created at the same time")

	return cmd
}

// WritePreview writes the preview as indented JSON or as YAML.
func WritePreview(out io.Writer, preview *realize.Preview, format string) error {
	if format == PreviewFormatYaml {
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(preview); err != nil {
			return err
		}
		return encoder.Close()
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(preview)
}
