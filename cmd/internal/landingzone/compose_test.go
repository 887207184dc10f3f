package landingzone

import (
	"context"
	"strings"
	"testing"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/args"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/data"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/lzerrors"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/naming"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testBlock struct {
	Type   string `hcl:"type,label"`
	Name   string `hcl:"name,label"`
	Parent string `hcl:"parent"`
}

// testCloud builds a minimal landing zone out of a single resource type, which is enough to exercise the
// order Compose describes things in.
type testCloud struct{}

func (testCloud) Name() string {
	return args.CloudGcp
}

func (testCloud) Providers(ctx context.Context, zone *Zone) error {
	return nil
}

func (testCloud) Containers(ctx context.Context, zone *Zone) error {
	component := zone.Component("landing-zone")

	root := container(component, naming.Root, data.Literal(zone.Config.LandingZoneRootId))
	zone.AddContainer(root)
	zone.AddContainer(container(component, naming.Platform, root.Id))
	zone.AddContainer(container(component, naming.Workloads, root.Id))

	return component.Err()
}

func container(component *Component, logicalName string, parent data.Output) Container {
	name := naming.ResourceName(logicalName)
	address := component.Resource(Resource{
		Type:       "test_container",
		Name:       name,
		Body:       testBlock{Type: "test_container", Name: name, Parent: parent.Expression()},
		References: []data.Output{parent},
	})
	return Container{LogicalName: logicalName, Address: address, Id: data.Reference(address, "id")}
}

func (c testCloud) unit(zone *Zone, parent string, logicalName string) (*Unit, error) {
	component := zone.Component(logicalName)

	container, err := zone.Container(parent)
	if err != nil {
		return nil, err
	}

	name := naming.ResourceName(logicalName)
	address := component.Resource(Resource{
		Type:       "test_unit",
		Name:       name,
		Body:       testBlock{Type: "test_unit", Name: name, Parent: container.Id.Expression()},
		References: []data.Output{container.Id},
		Attributes: []string{"number"},
	})

	number := data.Reference(address, "number")

	return &Unit{
		LogicalName: logicalName,
		Name:        naming.UnitName(zone.Config.OrgName, logicalName),
		Address:     address,
		Container:   container,
		Id:          data.Reference(address, "id"),
		Number:      number,
		Values:      map[string]data.Output{"unit_numbers": number},
	}, component.Err()
}

func (c testCloud) SharedServices(ctx context.Context, zone *Zone) (*Unit, error) {
	return c.unit(zone, naming.Platform, naming.SharedServices)
}

func (c testCloud) Security(ctx context.Context, zone *Zone) (*Unit, error) {
	return c.unit(zone, naming.Platform, naming.Security)
}

func (c testCloud) Environment(ctx context.Context, zone *Zone, name string, position int) (*Unit, error) {
	return c.unit(zone, naming.Workloads, name)
}

func (c testCloud) Networking(ctx context.Context, zone *Zone, consumers []*Unit) (*Unit, error) {
	unit, err := c.unit(zone, naming.Platform, naming.Networking)
	if err != nil {
		return nil, err
	}

	component := zone.Component(naming.Networking)
	for _, consumer := range consumers {
		name := "grant_" + naming.ResourceName(consumer.LogicalName)
		component.Resource(Resource{
			Type:       "test_grant",
			Name:       name,
			Body:       testBlock{Type: "test_grant", Name: name, Parent: consumer.Number.Expression()},
			References: []data.Output{consumer.Number, unit.Id},
		})
	}

	return unit, component.Err()
}

func (testCloud) AggregateOutputs() []AggregateOutput {
	return []AggregateOutput{{Name: "unit_numbers", Description: "The number of every unit"}}
}

func testConfig(environments ...string) args.OrgConfig {
	return (&args.Arguments{
		Cloud:             "gcp",
		OrgName:           "acme",
		Environments:      environments,
		BillingAccount:    "000000-000000-000000",
		LandingZoneRootId: "folders/123456",
	}).OrgConfig()
}

func TestComposeDescribesEveryEnvironment(t *testing.T) {
	zone := NewZone(testConfig("dev", "test", "prod"), Options{})

	result, err := Compose(context.Background(), testCloud{}, zone)
	require.NoError(t, err)

	// 3 containers, 3 platform units, 3 environments, 4 grants and 1 output
	assert.Equal(t, 14, zone.Resources.Len())
	assert.Len(t, zone.Resources.GetAllResource("test_grant"), 4)

	numbers := result.Outputs["unit_numbers"]
	assert.Equal(t, []string{"dev", "networking", "prod", "security", "shared-services", "test"}, numbers.Keys())
}

func TestComposeOrdersGrantsAfterUnits(t *testing.T) {
	zone := NewZone(testConfig("dev", "prod"), Options{})

	_, err := Compose(context.Background(), testCloud{}, zone)
	require.NoError(t, err)

	ordered, err := zone.Resources.Order()
	require.NoError(t, err)

	position := map[string]int{}
	for i, r := range ordered {
		position[r.Id] = i
	}

	for _, grant := range zone.Resources.GetAllResource("test_grant") {
		for _, dep := range grant.DependencyList() {
			assert.Less(t, position[dep], position[grant.Id], grant.Id+" must come after "+dep)
		}
	}

	assert.Equal(t, len(ordered)-1, position[OutputAddress("unit_numbers")])
}

func TestComposeRejectsInvalidConfiguration(t *testing.T) {
	config := testConfig("dev")
	config.BillingAccount = ""
	zone := NewZone(config, Options{})

	_, err := Compose(context.Background(), testCloud{}, zone)
	require.Error(t, err)
	assert.True(t, lzerrors.IsConfigurationError(err))
	assert.Equal(t, 0, zone.Resources.Len())
}

func TestComposeOutputExpression(t *testing.T) {
	zone := NewZone(testConfig("dev"), Options{})

	_, err := Compose(context.Background(), testCloud{}, zone)
	require.NoError(t, err)

	output, ok := zone.Resources.GetResource(OutputAddress("unit_numbers"))
	require.True(t, ok)

	hcl, err := output.ToHcl()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hcl, "# outputs: output.unit_numbers\n"))
	assert.Contains(t, hcl, `"dev" = "${test_unit.dev.number}"`)
	assert.Contains(t, hcl, `"shared-services" = "${test_unit.shared_services.number}"`)
}

func TestZoneConfigIsCopied(t *testing.T) {
	config := testConfig("dev")
	zone := NewZone(config, Options{})
	config.Environments[0] = "changed"

	assert.Equal(t, []string{"dev"}, zone.Config.Environments)
}
