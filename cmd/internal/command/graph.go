package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/args"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/data"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/entry"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/lzerrors"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/spf13/cobra"
)

const (
	GraphFormatWaves = "waves"
	GraphFormatDot   = "dot"
)

func newGraphCommand(arguments *args.Arguments) *cobra.Command {
	var format string
	var resource string
	var resourceType string

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Prints the dependency graph of the landing zone",
		Long: `Prints the dependency graph of the landing zone.

The waves format lists the resources in the order they can be created, with the resources of each
wave having no dependencies on each other. The dot format can be rendered with Graphviz.

Use --resource to print the direct dependencies and dependents of a single resource instead, and
--type to limit the waves to the resources of one type.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			zone, _, err := entry.Describe(cmd.Context(), *arguments)
			if err != nil {
				return err
			}

			if resource != "" {
				return WriteNeighbours(cmd.OutOrStdout(), zone.Resources, resource)
			}

			switch format {
			case GraphFormatWaves:
				return WriteWaves(cmd.OutOrStdout(), zone.Resources, resourceType)
			case GraphFormatDot:
				return WriteDot(cmd.OutOrStdout(), zone.Resources)
			default:
				return lzerrors.NewConfigurationError("format", "must be %s or %s, was %q", GraphFormatWaves, GraphFormatDot, format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", GraphFormatWaves, "The graph format, one of waves or dot")
	cmd.Flags().StringVar(&resource, "resource", "", "The address of a resource whose dependencies and dependents are printed, e.g. google_project.dev")
	cmd.Flags().StringVar(&resourceType, "type", "", "Only list the resources of this type in the waves, e.g. google_project")

	return cmd
}

// WriteWaves writes every wave of the graph followed by the resources in the wave. When resourceType is
// not empty, only the resources of that type are listed, and waves without any are skipped.
func WriteWaves(out io.Writer, resources *data.ResourceDetailsCollection, resourceType string) error {
	waves, err := resources.Waves()
	if err != nil {
		return err
	}

	var included mapset.Set[string]
	if resourceType != "" {
		included = mapset.NewThreadUnsafeSet[string]()
		for _, resource := range resources.GetAllResource(resourceType) {
			included.Add(resource.Id)
		}

		if included.Cardinality() == 0 {
			return lzerrors.NewConfigurationError("type", "the landing zone has no resources of type %q", resourceType)
		}
	}

	var sb strings.Builder
	for i, wave := range waves {
		listed := []string{}
		for _, resource := range wave {
			if included == nil || included.Contains(resource.Id) {
				listed = append(listed, resource.Id)
			}
		}

		if len(listed) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("wave %d:\n", i))
		for _, id := range listed {
			sb.WriteString("  " + id + "\n")
		}
	}

	_, err = io.WriteString(out, sb.String())
	return err
}

// WriteDot writes the graph in the DOT language, with an edge from each resource to each of its dependencies.
func WriteDot(out io.Writer, resources *data.ResourceDetailsCollection) error {
	ordered, err := resources.Order()
	if err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("digraph landingzone {\n")
	sb.WriteString("  rankdir = \"RL\";\n")
	for _, resource := range ordered {
		sb.WriteString(fmt.Sprintf("  %q;\n", resource.Id))
		for _, dependency := range resource.DependencyList() {
			sb.WriteString(fmt.Sprintf("  %q -> %q;\n", resource.Id, dependency))
		}
	}
	sb.WriteString("}\n")

	_, err = io.WriteString(out, sb.String())
	return err
}

// WriteNeighbours writes the direct dependencies and the direct dependents of a single resource.
func WriteNeighbours(out io.Writer, resources *data.ResourceDetailsCollection, id string) error {
	if !resources.HasResource(id) {
		return lzerrors.NewConfigurationError("resource", "the landing zone has no resource with the address %q", id)
	}

	resource, _ := resources.GetResource(id)

	var sb strings.Builder
	sb.WriteString(id + "\n")
	sb.WriteString("dependencies:\n")
	for _, dependency := range resource.DependencyList() {
		sb.WriteString("  " + dependency + "\n")
	}
	sb.WriteString("dependents:\n")
	for _, dependent := range resources.Dependents(id) {
		sb.WriteString("  " + dependent + "\n")
	}

	_, err := io.WriteString(out, sb.String())
	return err
}
