package azure

import (
	"context"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/args"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/data"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/landingzone"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/lzerrors"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/maputil"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/model/terraform"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/naming"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/strutil"
	"go.uber.org/zap"
)

const (
	SubscriptionIdsOutput    = "subscription_ids"
	ManagementGroupIdsOutput = "management_group_ids"
	VnetIdsOutput            = "vnet_ids"

	// MaxManagementGroupDepth is the number of management group levels Azure allows below the tenant root group.
	MaxManagementGroupDepth = 6

	// rootParentDepth is the depth assumed for the configured parent of the landing zone root. The parent may be
	// any management group, so it is treated as a direct child of the tenant root group.
	rootParentDepth = 1

	subscriptionWorkload = "Production"

	providerType = "azurerm"
)

// LandingZone builds a landing zone out of management groups and subscriptions, with a hub virtual network
// in the networking subscription peered to a spoke virtual network in every other subscription.
type LandingZone struct{}

func (l LandingZone) Name() string {
	return args.CloudAzure
}

func (l LandingZone) AggregateOutputs() []landingzone.AggregateOutput {
	return []landingzone.AggregateOutput{
		{Name: SubscriptionIdsOutput, Description: "The id of every subscription in the landing zone, keyed by logical name"},
		{Name: ManagementGroupIdsOutput, Description: "The management group holding every subscription in the landing zone, keyed by logical name"},
		{Name: VnetIdsOutput, Description: "The virtual network the traffic of every subscription is routed through, keyed by logical name"},
	}
}

func (l LandingZone) Providers(ctx context.Context, zone *landingzone.Zone) error {
	component := zone.Component("providers")

	component.Terraform(terraform.TerraformConfig{}.CreateTerraformConfig(providerType, zone.Options.Backend, zone.Options.ProviderVersion))
	component.Provider(providerType, "", terraform.TerraformAzureProvider{
		Type: providerType,
	})

	return component.Err()
}

// Containers describes the landing zone root management group under the configured parent, and the platform
// and landing zones management groups under the root.
func (l LandingZone) Containers(ctx context.Context, zone *landingzone.Zone) error {
	component := zone.Component("landing-zone")
	org := naming.OrgSlug(zone.Config.OrgName)

	parent := managementGroupLevel{
		Container: landingzone.Container{Id: data.Literal(zone.Config.LandingZoneRootId)},
		depth:     rootParentDepth,
	}

	root, err := managementGroup(component, naming.Root, strutil.Capitalize(zone.Config.OrgName)+" Root", org+"-root", parent)
	if err != nil {
		return err
	}

	platform, err := managementGroup(component, naming.Platform, "Platform", org+"-platform", root)
	if err != nil {
		return err
	}

	workloads, err := managementGroup(component, naming.Workloads, "Landing Zones", org+"-landing-zones", root)
	if err != nil {
		return err
	}

	zone.AddContainer(root.Container)
	zone.AddContainer(platform.Container)
	zone.AddContainer(workloads.Container)

	return component.Err()
}

// managementGroupLevel is a management group and its depth below the tenant root group.
type managementGroupLevel struct {
	landingzone.Container
	depth int
}

// containerDepths are the depths of the management groups described by Containers.
var containerDepths = map[string]int{
	naming.Root:      rootParentDepth + 1,
	naming.Platform:  rootParentDepth + 2,
	naming.Workloads: rootParentDepth + 2,
}

// managementGroup describes a management group under the parent. Azure rejects hierarchies deeper than
// MaxManagementGroupDepth, so that is reported here rather than when the configuration is applied.
func managementGroup(component *landingzone.Component, logicalName string, displayName string, resourceName string, parent managementGroupLevel) (managementGroupLevel, error) {
	depth := parent.depth + 1
	if depth > MaxManagementGroupDepth {
		return managementGroupLevel{}, lzerrors.NewConfigurationError("landingZoneRootId",
			"management group %s would be %d levels below the tenant root group, the maximum is %d", resourceName, depth, MaxManagementGroupDepth)
	}

	name := naming.ResourceName(logicalName)

	address := component.Resource(landingzone.Resource{
		Type: "azurerm_management_group",
		Name: name,
		Body: terraform.TerraformAzureManagementGroup{
			Type:                    "azurerm_management_group",
			Name:                    name,
			ResourceName:            resourceName,
			DisplayName:             displayName,
			ParentManagementGroupId: parent.Id.Expression(),
		},
		References: []data.Output{parent.Id},
	})

	return managementGroupLevel{
		Container: landingzone.Container{
			LogicalName: logicalName,
			Address:     address,
			Id:          data.Reference(address, "id"),
		},
		depth: depth,
	}, nil
}

func tags(zone *landingzone.Zone, logicalName string, extra map[string]string) map[string]string {
	return maputil.MergeTags(map[string]string{
		"LandingZone": zone.Config.OrgName,
		"Unit":        logicalName,
	}, extra)
}

// subscription describes the subscription of a unit, its association with the management group, a provider
// that creates resources inside it, and the resource group those resources are created in.
func subscription(zone *landingzone.Zone, component *landingzone.Component, logicalName string, container landingzone.Container) *landingzone.Unit {
	name := naming.ResourceName(logicalName)
	unitName := naming.UnitName(zone.Config.OrgName, logicalName)

	address := component.Resource(landingzone.Resource{
		Type: "azurerm_subscription",
		Name: name,
		Body: terraform.TerraformAzureSubscription{
			Type:             "azurerm_subscription",
			Name:             name,
			Alias:            unitName,
			SubscriptionName: unitName,
			BillingScopeId:   zone.Config.BillingAccount,
			Workload:         subscriptionWorkload,
			Tags:             tags(zone, logicalName, nil),
		},
		Attributes: []string{"subscription_id"},
	})

	subscriptionId := data.Reference(address, "subscription_id")
	scopeId := data.Interpolate("/subscriptions/", subscriptionId)

	component.Resource(landingzone.Resource{
		Type: "azurerm_management_group_subscription_association",
		Name: name,
		Body: terraform.TerraformAzureManagementGroupSubscriptionAssociation{
			Type:              "azurerm_management_group_subscription_association",
			Name:              name,
			ManagementGroupId: container.Id.Expression(),
			SubscriptionId:    scopeId.Expression(),
		},
		References: []data.Output{container.Id, scopeId},
	})

	provider := component.Provider(providerType, name, terraform.TerraformAzureProvider{
		Type:           providerType,
		Alias:          strutil.StrPointer(name),
		SubscriptionId: strutil.StrPointer(subscriptionId.Expression()),
	}, subscriptionId)

	resourceGroup := component.Resource(landingzone.Resource{
		Type: "azurerm_resource_group",
		Name: name,
		Body: terraform.TerraformAzureResourceGroup{
			Type:         "azurerm_resource_group",
			Name:         name,
			ResourceName: unitName + "-rg",
			Location:     zone.Config.Region,
			Tags:         tags(zone, logicalName, nil),
		},
		Provider:   provider,
		Attributes: []string{"name"},
	})

	zap.L().Debug("Described subscription " + unitName + " with provider " + provider)

	return &landingzone.Unit{
		LogicalName: logicalName,
		Name:        unitName,
		Address:     address,
		Container:   container,
		Id:          subscriptionId,
		Number:      subscriptionId,
		Scope:       data.Reference(resourceGroup, "name"),
		Provider:    provider,
		Values: map[string]data.Output{
			SubscriptionIdsOutput:    subscriptionId,
			ManagementGroupIdsOutput: container.Id,
		},
	}
}

// resourceGroupId returns the id of the resource group of the unit.
func resourceGroupId(unit *landingzone.Unit) data.Output {
	return data.Reference("azurerm_resource_group."+naming.ResourceName(unit.LogicalName), "id")
}
