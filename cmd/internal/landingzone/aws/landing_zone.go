package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/args"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/data"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/landingzone"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/maputil"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/model/terraform"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/naming"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/strutil"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

const (
	AccountIdsOutput            = "account_ids"
	AccountArnsOutput           = "account_arns"
	OrganizationalUnitIdsOutput = "organizational_unit_ids"

	// AccountAccessRole is the role Organizations creates in every new account, trusted by the management account.
	AccountAccessRole = "OrganizationAccountAccessRole"

	providerType = "aws"
)

// LandingZone builds a landing zone out of organizational units and accounts, governed by Control Tower,
// with a VPC owned by the networking account and shared through Resource Access Manager.
type LandingZone struct{}

func (l LandingZone) Name() string {
	return args.CloudAws
}

func (l LandingZone) AggregateOutputs() []landingzone.AggregateOutput {
	return []landingzone.AggregateOutput{
		{Name: AccountIdsOutput, Description: "The id of every account in the landing zone, keyed by logical name"},
		{Name: AccountArnsOutput, Description: "The ARN of every account in the landing zone, keyed by logical name"},
		{Name: OrganizationalUnitIdsOutput, Description: "The organizational unit holding every account in the landing zone, keyed by logical name"},
	}
}

func (l LandingZone) Providers(ctx context.Context, zone *landingzone.Zone) error {
	component := zone.Component("providers")

	component.Terraform(terraform.TerraformConfig{}.CreateTerraformConfig(providerType, zone.Options.Backend, zone.Options.ProviderVersion))
	component.Provider(providerType, "", terraform.TerraformAwsProvider{
		Type:   providerType,
		Region: zone.Config.Region,
	})

	return component.Err()
}

// Containers describes the landing zone root organizational unit under the configured parent, and the platform
// and workloads organizational units under the root.
func (l LandingZone) Containers(ctx context.Context, zone *landingzone.Zone) error {
	component := zone.Component("landing-zone")

	root := organizationalUnit(zone, component, naming.Root, strutil.Capitalize(zone.Config.OrgName)+" Landing Zone", data.Literal(zone.Config.LandingZoneRootId))
	platform := organizationalUnit(zone, component, naming.Platform, "Platform", root.Id)
	workloads := organizationalUnit(zone, component, naming.Workloads, "Workloads", root.Id)

	zone.AddContainer(root)
	zone.AddContainer(platform)
	zone.AddContainer(workloads)

	return component.Err()
}

func tags(zone *landingzone.Zone, logicalName string, extra map[string]string) map[string]string {
	return maputil.MergeTags(map[string]string{
		"LandingZone": zone.Config.OrgName,
		"Unit":        logicalName,
	}, extra)
}

func organizationalUnit(zone *landingzone.Zone, component *landingzone.Component, logicalName string, displayName string, parent data.Output) landingzone.Container {
	name := naming.ResourceName(logicalName)

	address := component.Resource(landingzone.Resource{
		Type: "aws_organizations_organizational_unit",
		Name: name,
		Body: terraform.TerraformAwsOrganizationalUnit{
			Type:         "aws_organizations_organizational_unit",
			Name:         name,
			ResourceName: displayName,
			ParentId:     parent.Expression(),
			Tags:         tags(zone, logicalName, nil),
		},
		References: []data.Output{parent},
		Attributes: []string{"arn"},
	})

	return landingzone.Container{
		LogicalName: logicalName,
		Address:     address,
		Id:          data.Reference(address, "id"),
	}
}

// account describes the account of a unit in the organizational unit, and a provider that assumes the
// organization access role in the new account. Resources inside the account are created with that provider.
func account(zone *landingzone.Zone, component *landingzone.Component, logicalName string, container landingzone.Container) *landingzone.Unit {
	name := naming.ResourceName(logicalName)
	unitName := naming.UnitName(zone.Config.OrgName, logicalName)

	address := component.Resource(landingzone.Resource{
		Type: "aws_organizations_account",
		Name: name,
		Body: terraform.TerraformAwsOrganizationsAccount{
			Type:            "aws_organizations_account",
			Name:            name,
			ResourceName:    unitName,
			Email:           naming.AccountEmail(zone.Config.EmailLocalPart, zone.Config.OrgName, logicalName, zone.Config.EmailDomain),
			RoleName:        AccountAccessRole,
			ParentId:        container.Id.Expression(),
			CloseOnDeletion: false,
			Tags: tags(zone, logicalName, map[string]string{
				"BillingAccount": zone.Config.BillingAccount,
			}),
		},
		References: []data.Output{container.Id},
		Attributes: []string{"arn"},
	})

	id := data.Reference(address, "id")
	arn := data.Reference(address, "arn")
	roleArn := data.Interpolate("arn:aws:iam::", id, ":role/"+AccountAccessRole)

	provider := component.Provider(providerType, name, terraform.TerraformAwsProvider{
		Type:   providerType,
		Alias:  strutil.StrPointer(name),
		Region: zone.Config.Region,
		AssumeRole: &terraform.TerraformAwsAssumeRole{
			RoleArn: roleArn.Expression(),
		},
	}, roleArn)

	return &landingzone.Unit{
		LogicalName: logicalName,
		Name:        unitName,
		Address:     address,
		Container:   container,
		Id:          id,
		Number:      id,
		Provider:    provider,
		Values: map[string]data.Output{
			AccountIdsOutput:            id,
			AccountArnsOutput:           arn,
			OrganizationalUnitIdsOutput: container.Id,
		},
	}
}

// policyDocument returns an IAM policy document with the statements.
func policyDocument(statements ...map[string]any) (string, error) {
	document, err := json.Marshal(map[string]any{
		"Version":   "2012-10-17",
		"Statement": statements,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode the policy document: %w", err)
	}
	return string(document), nil
}

// assumeRolePolicy returns a trust policy allowing the service to assume a role.
func assumeRolePolicy(service string) (string, error) {
	return policyDocument(map[string]any{
		"Effect":    "Allow",
		"Principal": map[string]any{"Service": service},
		"Action":    "sts:AssumeRole",
	})
}

// templateOf replaces every placeholder in the text with the matching Output.
func templateOf(text string, values map[string]data.Output) data.Output {
	placeholders := lo.Keys(values)
	slices.Sort(placeholders)

	parts := []any{text}
	for _, placeholder := range placeholders {
		next := []any{}
		for _, part := range parts {
			literal, ok := part.(string)
			if !ok {
				next = append(next, part)
				continue
			}

			for i, piece := range strings.Split(literal, placeholder) {
				if i != 0 {
					next = append(next, values[placeholder])
				}
				next = append(next, piece)
			}
		}
		parts = next
	}

	return data.Interpolate(parts...)
}
