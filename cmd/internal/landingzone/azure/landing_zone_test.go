package azure

import (
	"context"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armpolicy"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/args"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/data"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/landingzone"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/lzerrors"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/strutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const billingScope = "/providers/Microsoft.Billing/billingAccounts/1234/enrollmentAccounts/5678"

func testConfig(environments ...string) args.OrgConfig {
	return (&args.Arguments{
		Cloud:             "azure",
		OrgName:           "acme",
		Environments:      environments,
		BillingAccount:    billingScope,
		LandingZoneRootId: "/providers/Microsoft.Management/managementGroups/tenant-platform",
		Region:            "eastus",
		AllowedRegions:    []string{"eastus", "westus2"},
	}).OrgConfig()
}

func compose(t *testing.T, environments ...string) (*landingzone.Zone, *landingzone.Result) {
	zone := landingzone.NewZone(testConfig(environments...), landingzone.Options{})
	result, err := landingzone.Compose(context.Background(), LandingZone{}, zone)
	require.NoError(t, err)
	return zone, result
}

func render(t *testing.T, zone *landingzone.Zone) map[string]string {
	rendered := map[string]string{}
	for _, r := range zone.Resources.Resources() {
		hcl, err := r.ToHcl()
		require.NoError(t, err)
		rendered[r.Id] = strutil.UnEscapeDollarInString(hcl)
	}
	return rendered
}

func TestSubscriptionsAreDescribed(t *testing.T) {
	zone, _ := compose(t, "dev", "test", "prod")

	// root, platform and landing zones, plus one management group per environment
	assert.Len(t, zone.Resources.GetAllResource("azurerm_management_group"), 3+3)
	assert.Len(t, zone.Resources.GetAllResource("azurerm_subscription"), 6)
	assert.Len(t, zone.Resources.GetAllResource("azurerm_management_group_subscription_association"), 6)
	assert.Len(t, zone.Resources.GetAllResource("azurerm_resource_group"), 6)
	// the hub plus a spoke for shared services and every environment
	assert.Len(t, zone.Resources.GetAllResource("azurerm_virtual_network"), 1+4)
	assert.Len(t, zone.Resources.GetAllResource("azurerm_virtual_network_peering"), 2*4)

	for _, environment := range []string{"dev", "test", "prod"} {
		assert.True(t, zone.Resources.HasResource("azurerm_management_group."+environment))
		assert.True(t, zone.Resources.HasResource("azurerm_subscription."+environment))
		assert.True(t, zone.Resources.HasResource(landingzone.ProviderAddress("azurerm", environment)))
	}
}

func TestSubscriptions(t *testing.T) {
	zone, _ := compose(t, "dev")
	rendered := render(t, zone)

	dev := rendered["azurerm_subscription.dev"]
	assert.Regexp(t, `alias\s+= "acme-dev"`, dev)
	assert.Contains(t, dev, billingScope)

	association := rendered["azurerm_management_group_subscription_association.dev"]
	assert.Contains(t, association, "/subscriptions/${azurerm_subscription.dev.subscription_id}")
	assert.Contains(t, association, "${azurerm_management_group.dev.id}")

	assert.Regexp(t, `parent_management_group_id\s+= "/providers/Microsoft.Management/managementGroups/tenant-platform"`, rendered["azurerm_management_group.root"])
	assert.Regexp(t, `name\s+= "acme-landing-zones"`, rendered["azurerm_management_group.workloads"])
}

func TestSpokesArePeeredWithTheHub(t *testing.T) {
	zone, _ := compose(t, "dev", "prod")
	rendered := render(t, zone)

	assert.Contains(t, rendered["azurerm_virtual_network.hub"], `"10.0.0.0/24"`)
	assert.Contains(t, rendered["azurerm_subnet.hub_gateway"], `"GatewaySubnet"`)
	assert.Contains(t, rendered["azurerm_subnet.hub_firewall"], `"10.0.0.64/26"`)

	dev := rendered["azurerm_virtual_network.dev"]
	assert.Contains(t, dev, `"10.0.2.0/24"`)
	assert.Contains(t, dev, `"10.2.0.0/16"`)
	assert.Contains(t, dev, `"10.3.0.0/16"`)

	for _, consumer := range []string{"shared_services", "dev", "prod"} {
		hubToSpoke, ok := zone.Resources.GetResource("azurerm_virtual_network_peering.hub_to_" + consumer)
		require.True(t, ok)
		assert.True(t, hubToSpoke.Dependencies.Contains("azurerm_virtual_network."+consumer))
		assert.True(t, hubToSpoke.Dependencies.Contains("provider.azurerm.networking"))

		spokeToHub, ok := zone.Resources.GetResource("azurerm_virtual_network_peering." + consumer + "_to_hub")
		require.True(t, ok)
		assert.True(t, spokeToHub.Dependencies.Contains("azurerm_virtual_network.hub"))
		assert.True(t, spokeToHub.Dependencies.Contains("provider.azurerm."+consumer))
	}

	ordered, err := zone.Resources.Order()
	require.NoError(t, err)

	position := map[string]int{}
	for i, r := range ordered {
		position[r.Id] = i
	}
	assert.Less(t, position["azurerm_subscription.dev"], position["azurerm_virtual_network_peering.hub_to_dev"])
}

func TestSecurityServices(t *testing.T) {
	zone, _ := compose(t, "dev")
	rendered := render(t, zone)

	assert.Len(t, zone.Resources.GetAllResource("azurerm_security_center_subscription_pricing"), 3)
	assert.Contains(t, rendered["azurerm_security_center_contact.main"], "security@acme.com")

	keyVault := rendered["azurerm_key_vault.main"]
	assert.Contains(t, keyVault, "${data.azurerm_client_config.current.tenant_id}")
	assert.Regexp(t, `name\s+= "acme-kv-[0-9a-f]{5}"`, keyVault)

	assignment, ok := zone.Resources.GetResource("azurerm_resource_group_policy_assignment.allowed_locations")
	require.True(t, ok)
	assert.True(t, assignment.Dependencies.Contains("azurerm_resource_group.security"))
	assert.Contains(t, rendered[assignment.Id], "listOfAllowedLocations")
	assert.Contains(t, rendered[assignment.Id], "westus2")
}

func TestKeyVaultName(t *testing.T) {
	name := keyVaultName("averyveryverylongorganization")
	assert.LessOrEqual(t, len(name), 24)
	assert.Equal(t, name, keyVaultName("averyveryverylongorganization"))
}

func TestManagementGroupDepth(t *testing.T) {
	zone := landingzone.NewZone(testConfig("dev"), landingzone.Options{})
	component := zone.Component("landing-zone")

	parent := managementGroupLevel{
		Container: landingzone.Container{Id: data.Literal("/providers/Microsoft.Management/managementGroups/deep")},
		depth:     MaxManagementGroupDepth,
	}

	_, err := managementGroup(component, "too-deep", "Too Deep", "acme-too-deep", parent)
	require.Error(t, err)
	assert.True(t, lzerrors.IsConfigurationError(err))
	assert.Equal(t, 0, zone.Resources.Len())

	parent.depth = MaxManagementGroupDepth - 1
	_, err = managementGroup(component, "deep-enough", "Deep Enough", "acme-deep-enough", parent)
	require.NoError(t, err)
	require.NoError(t, component.Err())
}

func TestAggregateOutputs(t *testing.T) {
	zone, result := compose(t, "dev", "prod")

	expected := []string{"dev", "networking", "prod", "security", "shared-services"}
	for _, name := range []string{SubscriptionIdsOutput, ManagementGroupIdsOutput, VnetIdsOutput} {
		assert.Equal(t, expected, result.Outputs[name].Keys())
	}

	vnets, ok := zone.Resources.GetResource(landingzone.OutputAddress(VnetIdsOutput))
	require.True(t, ok)
	for _, vnet := range []string{"hub", "dev", "prod", "shared_services"} {
		assert.True(t, vnets.Dependencies.Contains("azurerm_virtual_network."+vnet))
	}
}

func TestPolicyParameters(t *testing.T) {
	parameters, err := policyParameters(map[string]*armpolicy.ParameterValuesValue{
		"listOfAllowedLocations": {Value: []string{"eastus", "westus2"}},
	})
	require.NoError(t, err)
	require.NotNil(t, parameters)
	assert.JSONEq(t, `{"listOfAllowedLocations":{"value":["eastus","westus2"]}}`, *parameters)

	none, err := policyParameters(nil)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestCompositionIsIdempotent(t *testing.T) {
	first, _ := compose(t, "dev", "prod")
	second, _ := compose(t, "dev", "prod")

	if diff := cmp.Diff(render(t, first), render(t, second)); diff != "" {
		t.Fatalf("rendered resources differ (-first +second):\n%s", diff)
	}
}

func TestRootIdMustBeAManagementGroup(t *testing.T) {
	config := testConfig("dev")
	config.LandingZoneRootId = "/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/rg"
	zone := landingzone.NewZone(config, landingzone.Options{})

	_, err := landingzone.Compose(context.Background(), LandingZone{}, zone)
	require.Error(t, err)
	assert.True(t, lzerrors.IsConfigurationError(err))
	assert.Equal(t, 0, zone.Resources.Len())
}

func TestHubIsNotAnEnvironment(t *testing.T) {
	zone := landingzone.NewZone(testConfig("dev", "hub"), landingzone.Options{})

	_, err := landingzone.Compose(context.Background(), LandingZone{}, zone)
	require.Error(t, err)
	assert.True(t, lzerrors.IsConfigurationError(err))
	assert.Contains(t, err.Error(), `"hub" is reserved`)
	assert.Equal(t, 0, zone.Resources.Len())
}
