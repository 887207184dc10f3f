package aws

import (
	"context"
	"fmt"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/data"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/landingzone"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/model/terraform"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/naming"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/network"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/strutil"
	"github.com/samber/lo"
)

// Networking describes the networking account and the VPC it owns. Every consumer gets a subnet of the VPC,
// and the subnets are shared with the consumer accounts through a Resource Access Manager share.
func (l LandingZone) Networking(ctx context.Context, zone *landingzone.Zone, consumers []*landingzone.Unit) (*landingzone.Unit, error) {
	component := zone.Component(naming.Networking)
	org := zone.Config.OrgName

	plans, err := network.Plan(naming.SharedServices, zone.Config.Environments)
	if err != nil {
		return nil, err
	}
	plansByConsumer := lo.KeyBy(plans, func(item network.SubnetPlan) string {
		return item.Consumer
	})

	unit, err := platformAccount(zone, component, naming.Networking)
	if err != nil {
		return nil, err
	}

	vpc := component.Resource(landingzone.Resource{
		Type: "aws_vpc",
		Name: naming.Shared,
		Body: terraform.TerraformAwsVpc{
			Type:               "aws_vpc",
			Name:               naming.Shared,
			CidrBlock:          network.SharedAddressSpace,
			EnableDnsHostnames: true,
			EnableDnsSupport:   true,
			Tags:               tags(zone, naming.Networking, map[string]string{"Name": org + "-shared-vpc"}),
		},
		Provider: unit.Provider,
	})
	vpcId := data.Reference(vpc, "id")

	share := component.Resource(landingzone.Resource{
		Type: "aws_ram_resource_share",
		Name: "vpc",
		Body: terraform.TerraformAwsRamResourceShare{
			Type:                    "aws_ram_resource_share",
			Name:                    "vpc",
			ResourceName:            org + "-vpc-share",
			AllowExternalPrincipals: false,
			Tags:                    tags(zone, naming.Networking, nil),
		},
		Provider:   unit.Provider,
		Attributes: []string{"arn"},
	})
	shareArn := data.Reference(share, "arn")

	for _, consumer := range consumers {
		plan, ok := plansByConsumer[consumer.LogicalName]
		if !ok {
			return nil, fmt.Errorf("no address ranges were allocated to %s", consumer.LogicalName)
		}

		shareSubnet(component, zone, unit, consumer, plan, vpcId, shareArn)
	}

	component.Resource(landingzone.Resource{
		Type: "aws_security_group",
		Name: "internal",
		Body: terraform.TerraformAwsSecurityGroup{
			Type:         "aws_security_group",
			Name:         "internal",
			ResourceName: org + "-internal",
			Description:  "Allow internal traffic within the landing zone",
			VpcId:        vpcId.Expression(),
			Ingress: []terraform.TerraformAwsSecurityGroupRule{{
				Description: strutil.StrPointer("Internal traffic"),
				FromPort:    0,
				ToPort:      65535,
				Protocol:    "tcp",
				CidrBlocks:  []string{network.SharedAddressSpace},
			}},
			Egress: []terraform.TerraformAwsSecurityGroupRule{{
				FromPort:   0,
				ToPort:     0,
				Protocol:   "-1",
				CidrBlocks: []string{"0.0.0.0/0"},
			}},
			Tags: tags(zone, naming.Networking, nil),
		},
		References: []data.Output{vpcId},
		Provider:   unit.Provider,
	})

	return unit, component.Err()
}

// shareSubnet describes the subnet of a consumer, adds it to the share, and grants the consumer account
// access to the share. The grant references the consumer's account id, so it waits for the account.
func shareSubnet(component *landingzone.Component, zone *landingzone.Zone, host *landingzone.Unit, consumer *landingzone.Unit, plan network.SubnetPlan, vpcId data.Output, shareArn data.Output) {
	name := naming.ResourceName(consumer.LogicalName)

	subnet := component.Resource(landingzone.Resource{
		Type: "aws_subnet",
		Name: name,
		Body: terraform.TerraformAwsSubnet{
			Type:      "aws_subnet",
			Name:      name,
			VpcId:     vpcId.Expression(),
			CidrBlock: plan.Primary,
			Tags: tags(zone, consumer.LogicalName, map[string]string{
				"Name": zone.Config.OrgName + "-subnet-" + consumer.LogicalName,
			}),
		},
		References: []data.Output{vpcId},
		Provider:   host.Provider,
		Attributes: []string{"arn"},
	})
	subnetArn := data.Reference(subnet, "arn")

	component.Resource(landingzone.Resource{
		Type: "aws_ram_resource_association",
		Name: name,
		Body: terraform.TerraformAwsRamResourceAssociation{
			Type:             "aws_ram_resource_association",
			Name:             name,
			ResourceArn:      subnetArn.Expression(),
			ResourceShareArn: shareArn.Expression(),
		},
		References: []data.Output{subnetArn, shareArn},
		Provider:   host.Provider,
	})

	component.Resource(landingzone.Resource{
		Type: "aws_ram_principal_association",
		Name: name,
		Body: terraform.TerraformAwsRamPrincipalAssociation{
			Type:             "aws_ram_principal_association",
			Name:             name,
			Principal:        consumer.Id.Expression(),
			ResourceShareArn: shareArn.Expression(),
		},
		References: []data.Output{consumer.Id, shareArn},
		Provider:   host.Provider,
	})
}
