package azure

import (
	"context"
	"fmt"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/data"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/landingzone"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/model/terraform"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/naming"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/network"
	"github.com/samber/lo"
)

const (
	gatewaySubnetName  = "GatewaySubnet"
	firewallSubnetName = "AzureFirewallSubnet"
	workloadsSubnet    = "workloads"
)

type hubNetwork struct {
	unit *landingzone.Unit
	name data.Output
	id   data.Output
}

// Networking describes the networking subscription with the hub virtual network and the firewall. Every
// consumer gets a spoke virtual network in its own subscription, peered with the hub in both directions.
func (l LandingZone) Networking(ctx context.Context, zone *landingzone.Zone, consumers []*landingzone.Unit) (*landingzone.Unit, error) {
	component := zone.Component(naming.Networking)
	org := naming.OrgSlug(zone.Config.OrgName)

	plans, err := network.Plan(naming.SharedServices, zone.Config.Environments)
	if err != nil {
		return nil, err
	}
	plansByConsumer := lo.KeyBy(plans, func(item network.SubnetPlan) string {
		return item.Consumer
	})

	unit, err := platformSubscription(zone, component, naming.Networking)
	if err != nil {
		return nil, err
	}

	vnet := component.Resource(landingzone.Resource{
		Type: "azurerm_virtual_network",
		Name: naming.Hub,
		Body: terraform.TerraformAzureVirtualNetwork{
			Type:              "azurerm_virtual_network",
			Name:              naming.Hub,
			ResourceName:      org + "-" + naming.Hub + "-vnet",
			Location:          zone.Config.Region,
			ResourceGroupName: unit.Scope.Expression(),
			AddressSpace:      []string{network.HubAddressSpace},
			Tags:              tags(zone, naming.Networking, map[string]string{"NetworkType": "Hub"}),
		},
		References: []data.Output{unit.Scope},
		Provider:   unit.Provider,
		Attributes: []string{"name"},
	})
	hub := hubNetwork{
		unit: unit,
		name: data.Reference(vnet, "name"),
		id:   data.Reference(vnet, "id"),
	}
	unit.Values[VnetIdsOutput] = hub.id

	// the security subscription has no workloads of its own and is routed through the hub
	security, err := zone.Unit(naming.Security)
	if err != nil {
		return nil, err
	}
	security.Values[VnetIdsOutput] = hub.id

	subnet(component, unit, "hub_gateway", gatewaySubnetName, hub.name, network.HubGatewaySubnet)
	firewallSubnet := subnet(component, unit, "hub_firewall", firewallSubnetName, hub.name, network.HubFirewallSubnet)

	firewall(component, zone, unit, org, data.Reference(firewallSubnet, "id"))

	for _, consumer := range consumers {
		plan, ok := plansByConsumer[consumer.LogicalName]
		if !ok {
			return nil, fmt.Errorf("no address ranges were allocated to %s", consumer.LogicalName)
		}

		spoke(component, zone, hub, consumer, plan)
	}

	return unit, component.Err()
}

func subnet(component *landingzone.Component, unit *landingzone.Unit, name string, resourceName string, vnetName data.Output, prefix string) string {
	return component.Resource(landingzone.Resource{
		Type: "azurerm_subnet",
		Name: name,
		Body: terraform.TerraformAzureSubnet{
			Type:               "azurerm_subnet",
			Name:               name,
			ResourceName:       resourceName,
			ResourceGroupName:  unit.Scope.Expression(),
			VirtualNetworkName: vnetName.Expression(),
			AddressPrefixes:    []string{prefix},
		},
		References: []data.Output{unit.Scope, vnetName},
		Provider:   unit.Provider,
	})
}

// firewall describes the hub firewall, its public address, and the static rules allowing traffic between
// landing zone networks.
func firewall(component *landingzone.Component, zone *landingzone.Zone, unit *landingzone.Unit, org string, subnetId data.Output) {
	publicIp := component.Resource(landingzone.Resource{
		Type: "azurerm_public_ip",
		Name: "firewall",
		Body: terraform.TerraformAzurePublicIp{
			Type:              "azurerm_public_ip",
			Name:              "firewall",
			ResourceName:      org + "-fw-pip",
			Location:          zone.Config.Region,
			ResourceGroupName: unit.Scope.Expression(),
			AllocationMethod:  "Static",
			Sku:               "Standard",
			Tags:              tags(zone, naming.Networking, map[string]string{"Purpose": "Network-Security"}),
		},
		References: []data.Output{unit.Scope},
		Provider:   unit.Provider,
	})
	publicIpId := data.Reference(publicIp, "id")

	fw := component.Resource(landingzone.Resource{
		Type: "azurerm_firewall",
		Name: naming.Hub,
		Body: terraform.TerraformAzureFirewall{
			Type:              "azurerm_firewall",
			Name:              naming.Hub,
			ResourceName:      org + "-fw",
			Location:          zone.Config.Region,
			ResourceGroupName: unit.Scope.Expression(),
			SkuName:           "AZFW_VNet",
			SkuTier:           "Standard",
			IpConfiguration: terraform.TerraformAzureFirewallIpConfiguration{
				Name:              "configuration",
				SubnetId:          subnetId.Expression(),
				PublicIpAddressId: publicIpId.Expression(),
			},
			Tags: tags(zone, naming.Networking, map[string]string{"Purpose": "Network-Security"}),
		},
		References: []data.Output{unit.Scope, subnetId, publicIpId},
		Provider:   unit.Provider,
		Attributes: []string{"name"},
	})
	firewallName := data.Reference(fw, "name")

	component.Resource(landingzone.Resource{
		Type: "azurerm_firewall_network_rule_collection",
		Name: "internal",
		Body: terraform.TerraformAzureFirewallNetworkRuleCollection{
			Type:              "azurerm_firewall_network_rule_collection",
			Name:              "internal",
			ResourceName:      org + "-internal",
			AzureFirewallName: firewallName.Expression(),
			ResourceGroupName: unit.Scope.Expression(),
			Priority:          100,
			Action:            "Allow",
			Rule: []terraform.TerraformAzureFirewallNetworkRule{{
				Name:                 "allow-internal",
				SourceAddresses:      []string{network.AddressSpace},
				DestinationAddresses: []string{network.AddressSpace},
				DestinationPorts:     []string{"*"},
				Protocols:            []string{"Any"},
			}},
		},
		References: []data.Output{firewallName, unit.Scope},
		Provider:   unit.Provider,
	})
}

// spoke describes the virtual network of a consumer in the consumer subscription and the peerings with the
// hub. The hub side peering references the spoke, so it waits for the consumer subscription.
func spoke(component *landingzone.Component, zone *landingzone.Zone, hub hubNetwork, consumer *landingzone.Unit, plan network.SubnetPlan) {
	name := naming.ResourceName(consumer.LogicalName)
	addressSpace := lo.Without([]string{plan.Primary, plan.Pods, plan.Services}, "")

	vnet := component.Resource(landingzone.Resource{
		Type: "azurerm_virtual_network",
		Name: name,
		Body: terraform.TerraformAzureVirtualNetwork{
			Type:              "azurerm_virtual_network",
			Name:              name,
			ResourceName:      naming.UnitName(zone.Config.OrgName, consumer.LogicalName) + "-vnet",
			Location:          zone.Config.Region,
			ResourceGroupName: consumer.Scope.Expression(),
			AddressSpace:      addressSpace,
			Tags:              tags(zone, consumer.LogicalName, map[string]string{"NetworkType": "Spoke"}),
		},
		References: []data.Output{consumer.Scope},
		Provider:   consumer.Provider,
		Attributes: []string{"name"},
	})
	vnetName := data.Reference(vnet, "name")
	vnetId := data.Reference(vnet, "id")
	consumer.Values[VnetIdsOutput] = vnetId

	subnet(component, consumer, name+"_"+workloadsSubnet, workloadsSubnet, vnetName, plan.Primary)

	component.Resource(landingzone.Resource{
		Type: "azurerm_virtual_network_peering",
		Name: "hub_to_" + name,
		Body: terraform.TerraformAzureVirtualNetworkPeering{
			Type:                      "azurerm_virtual_network_peering",
			Name:                      "hub_to_" + name,
			ResourceName:              "hub-to-" + consumer.LogicalName,
			ResourceGroupName:         hub.unit.Scope.Expression(),
			VirtualNetworkName:        hub.name.Expression(),
			RemoteVirtualNetworkId:    vnetId.Expression(),
			AllowVirtualNetworkAccess: true,
			AllowForwardedTraffic:     true,
			AllowGatewayTransit:       true,
		},
		References: []data.Output{hub.unit.Scope, hub.name, vnetId},
		Provider:   hub.unit.Provider,
	})

	component.Resource(landingzone.Resource{
		Type: "azurerm_virtual_network_peering",
		Name: name + "_to_hub",
		Body: terraform.TerraformAzureVirtualNetworkPeering{
			Type:                      "azurerm_virtual_network_peering",
			Name:                      name + "_to_hub",
			ResourceName:              consumer.LogicalName + "-to-hub",
			ResourceGroupName:         consumer.Scope.Expression(),
			VirtualNetworkName:        vnetName.Expression(),
			RemoteVirtualNetworkId:    hub.id.Expression(),
			AllowVirtualNetworkAccess: true,
			AllowForwardedTraffic:     true,
			UseRemoteGateways:         false,
		},
		References: []data.Output{consumer.Scope, vnetName, hub.id},
		Provider:   consumer.Provider,
	})
}
