package gcp

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

const networkUserRole = "roles/compute.networkUser"

// Networking describes the networking project and the shared VPC it hosts. Every consumer gets a subnet,
// is attached to the host project as a service project, and its compute service account is granted the
// network user role on the host project and the subnet.
func (l LandingZone) Networking(ctx context.Context, zone *landingzone.Zone, consumers []*landingzone.Unit) (*landingzone.Unit, error) {
	component := zone.Component(naming.Networking)
	org := zone.Config.OrgName
	region := zone.Config.Region

	plans, err := network.Plan(naming.SharedServices, zone.Config.Environments)
	if err != nil {
		return nil, err
	}
	plansByConsumer := lo.KeyBy(plans, func(item network.SubnetPlan) string {
		return item.Consumer
	})

	unit, err := workloadUnit(zone, component, naming.Platform, naming.Networking, "Networking", map[string]string{
		"purpose": "networking",
	})
	if err != nil {
		return nil, err
	}

	computeService := service(component, unit, computeApi, "compute", false)

	vpc := component.Resource(landingzone.Resource{
		Type: "google_compute_network",
		Name: "host",
		Body: terraform.TerraformGoogleComputeNetwork{
			Type:                  "google_compute_network",
			Name:                  "host",
			ResourceName:          org + "-host-vpc",
			Project:               unit.Id.Expression(),
			Description:           "Shared VPC network for the landing zone",
			AutoCreateSubnetworks: false,
		},
		References: []data.Output{unit.Id},
		DependsOn:  []string{computeService},
		Attributes: []string{"self_link"},
	})
	vpcId := data.Reference(vpc, "id")

	hostProject := component.Resource(landingzone.Resource{
		Type: "google_compute_shared_vpc_host_project",
		Name: "host",
		Body: terraform.TerraformGoogleComputeSharedVpcHostProject{
			Type:    "google_compute_shared_vpc_host_project",
			Name:    "host",
			Project: unit.Id.Expression(),
		},
		References: []data.Output{unit.Id},
		DependsOn:  []string{computeService},
	})

	for _, consumer := range consumers {
		plan, ok := plansByConsumer[consumer.LogicalName]
		if !ok {
			return nil, fmt.Errorf("no address ranges were allocated to %s", consumer.LogicalName)
		}

		share(component, zone, unit, consumer, plan, vpcId, hostProject)
	}

	firewalls(component, org, unit, vpcId)

	router := component.Resource(landingzone.Resource{
		Type: "google_compute_router",
		Name: "host",
		Body: terraform.TerraformGoogleComputeRouter{
			Type:         "google_compute_router",
			Name:         "host",
			ResourceName: org + "-router",
			Project:      unit.Id.Expression(),
			Region:       region,
			Network:      vpcId.Expression(),
			Description:  "Cloud Router for NAT gateway",
		},
		References: []data.Output{unit.Id, vpcId},
		Attributes: []string{"name"},
	})
	routerName := data.Reference(router, "name")

	component.Resource(landingzone.Resource{
		Type: "google_compute_router_nat",
		Name: "host",
		Body: terraform.TerraformGoogleComputeRouterNat{
			Type:                          "google_compute_router_nat",
			Name:                          "host",
			ResourceName:                  org + "-nat",
			Project:                       unit.Id.Expression(),
			Router:                        routerName.Expression(),
			Region:                        region,
			NatIpAllocateOption:           "AUTO_ONLY",
			SourceSubnetworkIpRangesToNat: "ALL_SUBNETWORKS_ALL_IP_RANGES",
		},
		References: []data.Output{unit.Id, routerName},
	})

	return unit, component.Err()
}

// share describes the subnet of a consumer and the grants that let the consumer use it. The grants reference
// the consumer's project number, so they can only be created once the consumer project exists.
func share(component *landingzone.Component, zone *landingzone.Zone, host *landingzone.Unit, consumer *landingzone.Unit, plan network.SubnetPlan, vpcId data.Output, hostProject string) {
	name := naming.ResourceName(consumer.LogicalName)
	subnetName := zone.Config.OrgName + "-subnet-" + consumer.LogicalName
	if consumer.LogicalName == naming.SharedServices {
		subnetName = zone.Config.OrgName + "-subnet-" + naming.Shared
	}

	secondaryRanges := []terraform.TerraformGoogleSubnetworkSecondaryRange{}
	if plan.Pods != "" {
		secondaryRanges = append(secondaryRanges, terraform.TerraformGoogleSubnetworkSecondaryRange{
			RangeName:   network.PodsRangeName,
			IpCidrRange: plan.Pods,
		})
	}
	if plan.Services != "" {
		secondaryRanges = append(secondaryRanges, terraform.TerraformGoogleSubnetworkSecondaryRange{
			RangeName:   network.ServicesRangeName,
			IpCidrRange: plan.Services,
		})
	}

	subnet := component.Resource(landingzone.Resource{
		Type: "google_compute_subnetwork",
		Name: name,
		Body: terraform.TerraformGoogleComputeSubnetwork{
			Type:                  "google_compute_subnetwork",
			Name:                  name,
			ResourceName:          subnetName,
			Project:               host.Id.Expression(),
			Region:                zone.Config.Region,
			Network:               vpcId.Expression(),
			Description:           "Subnet for " + consumer.LogicalName,
			IpCidrRange:           plan.Primary,
			PrivateIpGoogleAccess: true,
			SecondaryIpRange:      secondaryRanges,
		},
		References: []data.Output{host.Id, vpcId},
		Attributes: []string{"name"},
	})
	subnetRef := data.Reference(subnet, "name")

	component.Resource(landingzone.Resource{
		Type: "google_compute_shared_vpc_service_project",
		Name: name,
		Body: terraform.TerraformGoogleComputeSharedVpcServiceProject{
			Type:           "google_compute_shared_vpc_service_project",
			Name:           name,
			HostProject:    host.Id.Expression(),
			ServiceProject: consumer.Id.Expression(),
		},
		References: []data.Output{host.Id, consumer.Id},
		DependsOn:  []string{hostProject},
	})

	member := data.Interpolate("serviceAccount:", consumer.Number, "-compute@developer.gserviceaccount.com")

	component.Resource(landingzone.Resource{
		Type: "google_project_iam_member",
		Name: name + "_network_user",
		Body: terraform.TerraformGoogleProjectIamMember{
			Type:    "google_project_iam_member",
			Name:    name + "_network_user",
			Project: host.Id.Expression(),
			Role:    networkUserRole,
			Member:  member.Expression(),
		},
		References: []data.Output{host.Id, member},
	})

	component.Resource(landingzone.Resource{
		Type: "google_compute_subnetwork_iam_member",
		Name: name + "_network_user",
		Body: terraform.TerraformGoogleComputeSubnetworkIamMember{
			Type:       "google_compute_subnetwork_iam_member",
			Name:       name + "_network_user",
			Project:    host.Id.Expression(),
			Region:     zone.Config.Region,
			Subnetwork: subnetRef.Expression(),
			Role:       networkUserRole,
			Member:     member.Expression(),
		},
		References: []data.Output{host.Id, subnetRef, member},
	})
}

// firewalls describes the static firewall rules of the shared VPC. They are scoped to address ranges, not to
// consumers, so they do not change when environments are added.
func firewalls(component *landingzone.Component, org string, host *landingzone.Unit, vpcId data.Output) {
	allPorts := []terraform.TerraformGoogleFirewallAllow{
		{Protocol: "tcp", Ports: []string{"0-65535"}},
		{Protocol: "udp", Ports: []string{"0-65535"}},
		{Protocol: "icmp"},
	}

	rules := []struct {
		name         string
		description  string
		sourceRanges []string
		targetTags   []string
		allow        []terraform.TerraformGoogleFirewallAllow
	}{
		{
			name:         "shared-vpc-internal",
			description:  "Allow internal traffic within the shared VPC",
			sourceRanges: []string{network.SharedAddressSpace},
			targetTags:   []string{"shared-vpc-internal"},
			allow:        allPorts,
		},
		{
			name:         "allow-internal",
			description:  "Allow internal traffic between landing zone networks",
			sourceRanges: []string{network.AddressSpace},
			allow:        allPorts,
		},
		{
			name:         "allow-ssh",
			description:  "Allow SSH through Identity-Aware Proxy",
			sourceRanges: []string{network.IapAddressSpace},
			targetTags:   []string{"ssh-allowed"},
			allow:        []terraform.TerraformGoogleFirewallAllow{{Protocol: "tcp", Ports: []string{"22"}}},
		},
	}

	for _, rule := range rules {
		name := naming.ResourceName(rule.name)
		component.Resource(landingzone.Resource{
			Type: "google_compute_firewall",
			Name: name,
			Body: terraform.TerraformGoogleComputeFirewall{
				Type:         "google_compute_firewall",
				Name:         name,
				ResourceName: org + "-" + rule.name,
				Project:      host.Id.Expression(),
				Network:      vpcId.Expression(),
				Description:  rule.description,
				SourceRanges: rule.sourceRanges,
				TargetTags:   rule.targetTags,
				Allow:        rule.allow,
			},
			References: []data.Output{host.Id, vpcId},
		})
	}
}
