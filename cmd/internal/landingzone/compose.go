package landingzone

import (
	"context"
	"fmt"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/data"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/lzerrors"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/naming"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// OutputsComponent is the component that owns the aggregate outputs.
const OutputsComponent = "outputs"

// AggregateOutput describes one of the outputs that map every logical name to a deferred value of its unit.
type AggregateOutput struct {
	Name        string
	Description string
}

// Cloud builds the components of a landing zone in one cloud. Compose calls the methods in the order
// resources have to be described, so each method can reference anything described by an earlier one.
type Cloud interface {
	// Name is the value of the cloud setting that selects this cloud
	Name() string
	// Providers describes the terraform settings block and the default provider
	Providers(ctx context.Context, zone *Zone) error
	// Containers describes the root container and the platform and workloads containers under it
	Containers(ctx context.Context, zone *Zone) error
	// SharedServices describes the shared services unit under the platform container
	SharedServices(ctx context.Context, zone *Zone) (*Unit, error)
	// Security describes the security unit under the platform container
	Security(ctx context.Context, zone *Zone) (*Unit, error)
	// Environment describes the container and unit of the environment at the position in the environment list
	Environment(ctx context.Context, zone *Zone, name string, position int) (*Unit, error)
	// Networking describes the networking unit and shares its network with every consumer
	Networking(ctx context.Context, zone *Zone, consumers []*Unit) (*Unit, error)
	// AggregateOutputs lists the outputs every unit contributes a value to
	AggregateOutputs() []AggregateOutput
}

// Result holds the aggregate outputs of a composed landing zone, keyed by output name.
type Result struct {
	Outputs map[string]data.OutputMap
}

// Compose describes the landing zone of the cloud into the zone's resource collection. The configuration is
// validated first, and nothing is described when it is invalid.
func Compose(ctx context.Context, cloud Cloud, zone *Zone) (*Result, error) {
	ctx, span := telemetry.Start(ctx, "compose")
	defer span.End()
	span.SetAttributes(
		attribute.String("cloud", cloud.Name()),
		attribute.Int("environments", len(zone.Config.Environments)))

	if err := zone.Config.Validate(); err != nil {
		return nil, err
	}

	if zone.Config.Cloud != cloud.Name() {
		return nil, lzerrors.NewConfigurationError("cloud", "the configuration is for %s, not %s", zone.Config.Cloud, cloud.Name())
	}

	zap.L().Info("Composing the " + cloud.Name() + " landing zone for " + zone.Config.OrgName)

	if err := phase(ctx, "providers", func(ctx context.Context) error {
		return cloud.Providers(ctx, zone)
	}); err != nil {
		return nil, err
	}

	if err := phase(ctx, "containers", func(ctx context.Context) error {
		return cloud.Containers(ctx, zone)
	}); err != nil {
		return nil, err
	}

	if err := phase(ctx, "units", func(ctx context.Context) error {
		return describeUnits(ctx, cloud, zone)
	}); err != nil {
		return nil, err
	}

	if err := phase(ctx, "networking", func(ctx context.Context) error {
		consumers, err := zone.Units(append([]string{naming.SharedServices}, zone.Config.Environments...))
		if err != nil {
			return err
		}

		unit, err := cloud.Networking(ctx, zone, consumers)
		if err != nil {
			return err
		}

		return zone.AddUnit(unit)
	}); err != nil {
		return nil, err
	}

	result := &Result{}
	if err := phase(ctx, "outputs", func(ctx context.Context) error {
		outputs, err := describeOutputs(cloud, zone)
		result.Outputs = outputs
		return err
	}); err != nil {
		return nil, err
	}

	zap.L().Info(fmt.Sprintf("Described %d resources", zone.Resources.Len()))

	return result, nil
}

func phase(ctx context.Context, name string, f func(ctx context.Context) error) error {
	ctx, span := telemetry.Start(ctx, name)
	defer span.End()

	if err := f(ctx); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to describe %s: %w", name, err)
	}

	return nil
}

// describeUnits describes the shared services and security units and every environment concurrently.
// None of them reference each other, so the order they are described in has no effect on the graph.
func describeUnits(ctx context.Context, cloud Cloud, zone *Zone) error {
	g, ctx := errgroup.WithContext(ctx)

	describe := func(f func() (*Unit, error)) {
		g.Go(func() error {
			unit, err := f()
			if err != nil {
				return err
			}
			zap.L().Info("Described " + unit.LogicalName + " as " + unit.Address)
			return zone.AddUnit(unit)
		})
	}

	describe(func() (*Unit, error) { return cloud.SharedServices(ctx, zone) })
	describe(func() (*Unit, error) { return cloud.Security(ctx, zone) })

	for position, environment := range zone.Config.Environments {
		position, environment := position, environment
		describe(func() (*Unit, error) { return cloud.Environment(ctx, zone, environment, position) })
	}

	return g.Wait()
}

// describeOutputs joins the value every unit contributes to each aggregate output. An output is only
// described once every unit it is keyed by exists.
func describeOutputs(cloud Cloud, zone *Zone) (map[string]data.OutputMap, error) {
	component := zone.Component(OutputsComponent)
	outputs := map[string]data.OutputMap{}

	units, err := zone.Units(zone.Config.LogicalNames())
	if err != nil {
		return nil, err
	}

	for _, aggregate := range cloud.AggregateOutputs() {
		entries := map[string]data.Output{}
		for _, unit := range units {
			value, ok := unit.Values[aggregate.Name]
			if !ok || value.IsZero() {
				return nil, &lzerrors.DependencyError{Resource: OutputAddress(aggregate.Name), Missing: []string{unit.LogicalName}}
			}
			entries[unit.LogicalName] = value
		}

		outputs[aggregate.Name] = data.All(entries)
		component.Output(aggregate.Name, aggregate.Description, outputs[aggregate.Name])
	}

	return outputs, component.Err()
}
