package aws

import (
	"context"
	"encoding/json"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/data"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/landingzone"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/model/terraform"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/naming"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/strutil"
)

const (
	controlTowerVersion = "3.3"
	logRetentionDays    = 365
)

type controlTowerRole struct {
	name       string
	service    string
	policyName string
	statements []map[string]any
}

type guardrail struct {
	name       string
	control    string
	parameters []terraform.TerraformAwsControlTowerParameter
}

// ControlTower describes the service roles Control Tower needs, the landing zone itself, and the guardrails
// applied to the workloads organizational unit. These resources live in the management account.
func (l LandingZone) ControlTower(ctx context.Context, zone *landingzone.Zone, security *landingzone.Unit, logArchive *landingzone.Unit) error {
	component := zone.Component("control-tower")
	org := zone.Config.OrgName

	roles := []controlTowerRole{
		{
			name:       "AWSControlTowerAdmin",
			service:    "controltower.amazonaws.com",
			policyName: "AWSControlTowerAdminInlinePolicy",
			statements: []map[string]any{{
				"Effect":   "Allow",
				"Action":   "ec2:DescribeAvailabilityZones",
				"Resource": "*",
			}},
		},
		{
			name:       "AWSControlTowerStackSetRole",
			service:    "cloudformation.amazonaws.com",
			policyName: "execution",
			statements: []map[string]any{{
				"Effect":   "Allow",
				"Action":   []string{"sts:AssumeRole"},
				"Resource": []string{"arn:aws:iam::*:role/AWSControlTowerExecution"},
			}},
		},
		{
			name:       "AWSControlTowerCloudTrailRole",
			service:    "cloudtrail.amazonaws.com",
			policyName: "execution",
			statements: []map[string]any{
				{
					"Effect":   "Allow",
					"Action":   "logs:CreateLogStream",
					"Resource": "arn:aws:logs:*:*:log-group:aws-controltower/CloudTrailLogs:*",
				},
				{
					"Effect":   "Allow",
					"Action":   "logs:PutLogEvents",
					"Resource": "arn:aws:logs:*:*:log-group:aws-controltower/CloudTrailLogs:*",
				},
			},
		},
	}

	roleAddresses := []string{}
	for _, role := range roles {
		name := naming.ResourceName(role.name)

		trustPolicy, err := assumeRolePolicy(role.service)
		if err != nil {
			return err
		}

		policy, err := policyDocument(role.statements...)
		if err != nil {
			return err
		}

		roleAddresses = append(roleAddresses, component.Resource(landingzone.Resource{
			Type: "aws_iam_role",
			Name: name,
			Body: terraform.TerraformAwsIamRole{
				Type:             "aws_iam_role",
				Name:             name,
				ResourceName:     strutil.StrPointer(role.name),
				Path:             strutil.StrPointer("/service-role/"),
				AssumeRolePolicy: trustPolicy,
				InlinePolicy: []terraform.TerraformAwsInlinePolicy{{
					Name:   role.policyName,
					Policy: policy,
				}},
				Tags: tags(zone, "control-tower", map[string]string{"Name": role.name}),
			},
			Attributes: []string{"arn", "name"},
		}))
	}

	adminRoleName := data.Reference(roleAddresses[0], "name")
	adminPolicy := component.Resource(landingzone.Resource{
		Type: "aws_iam_role_policy_attachment",
		Name: "awscontroltoweradmin",
		Body: terraform.TerraformAwsIamRolePolicyAttachment{
			Type:      "aws_iam_role_policy_attachment",
			Name:      "awscontroltoweradmin",
			Role:      adminRoleName.Expression(),
			PolicyArn: "arn:aws:iam::aws:policy/service-role/AWSControlTowerServiceRolePolicy",
		},
		References: []data.Output{adminRoleName},
	})

	manifest, err := landingZoneManifest(zone, security, logArchive)
	if err != nil {
		return err
	}

	landingZone := component.Resource(landingzone.Resource{
		Type: "aws_controltower_landing_zone",
		Name: "main",
		Body: terraform.TerraformAwsControlTowerLandingZone{
			Type:         "aws_controltower_landing_zone",
			Name:         "main",
			ManifestJson: manifest.Expression(),
			Version:      controlTowerVersion,
			Tags:         tags(zone, "control-tower", map[string]string{"Name": org + "-control-tower"}),
		},
		References: []data.Output{manifest},
		DependsOn:  append(roleAddresses, adminPolicy),
		Attributes: []string{"arn"},
	})

	workloads, err := zone.Container(naming.Workloads)
	if err != nil {
		return err
	}
	target := data.Reference(workloads.Address, "arn")

	allowedRegions, err := json.Marshal(zone.Config.AllowedRegions)
	if err != nil {
		return err
	}

	guardrails := []guardrail{
		{
			name:    "region_deny",
			control: "AWS-GR_REGION_DENY",
			parameters: []terraform.TerraformAwsControlTowerParameter{{
				Key:   "AllowedRegions",
				Value: string(allowedRegions),
			}},
		},
		{name: "s3_encryption", control: "AWS-GR_S3_BUCKET_SERVER_SIDE_ENCRYPTION_ENABLED"},
		{name: "root_access_key", control: "AWS-GR_ROOT_ACCESS_KEY_CHECK"},
		{name: "mfa_enabled", control: "AWS-GR_MFA_ENABLED_FOR_IAM_CONSOLE_ACCESS"},
	}

	for _, g := range guardrails {
		component.Resource(landingzone.Resource{
			Type: "aws_controltower_control",
			Name: g.name,
			Body: terraform.TerraformAwsControlTowerControl{
				Type:              "aws_controltower_control",
				Name:              g.name,
				ControlIdentifier: "arn:aws:controltower:" + zone.Config.Region + "::control/" + g.control,
				TargetIdentifier:  target.Expression(),
				Parameters:        g.parameters,
			},
			References: []data.Output{target},
			DependsOn:  []string{landingZone},
		})
	}

	return component.Err()
}

// landingZoneManifest builds the manifest of the Control Tower landing zone. The account ids are only known
// once the accounts exist, so the manifest is a template around them.
func landingZoneManifest(zone *landingzone.Zone, security *landingzone.Unit, logArchive *landingzone.Unit) (data.Output, error) {
	const logArchivePlaceholder = "LOG_ARCHIVE_ACCOUNT_ID"
	const securityPlaceholder = "SECURITY_ACCOUNT_ID"

	manifest, err := json.Marshal(map[string]any{
		"governedRegions": zone.Config.AllowedRegions,
		"organizationStructure": map[string]any{
			"security": map[string]any{"name": "Security"},
			"sandbox":  map[string]any{"name": "Workloads"},
		},
		"centralizedLogging": map[string]any{
			"accountId": logArchivePlaceholder,
			"configurations": map[string]any{
				"loggingBucket":       map[string]any{"retentionDays": logRetentionDays},
				"accessLoggingBucket": map[string]any{"retentionDays": logRetentionDays},
			},
			"enabled": true,
		},
		"securityRoles": map[string]any{
			"accountId": securityPlaceholder,
		},
		"accessManagement": map[string]any{
			"enabled": true,
		},
	})
	if err != nil {
		return data.Output{}, err
	}

	return templateOf(string(manifest), map[string]data.Output{
		logArchivePlaceholder: logArchive.Id,
		securityPlaceholder:   security.Id,
	}), nil
}
