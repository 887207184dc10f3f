package aws

import (
	"context"
	"strings"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/data"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/landingzone"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/model/terraform"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/naming"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/strutil"
)

var configRules = []string{
	"S3_BUCKET_PUBLIC_ACCESS_PROHIBITED",
	"ROOT_ACCESS_KEY_CHECK",
	"MFA_ENABLED_FOR_IAM_CONSOLE_ACCESS",
}

// SecurityServices enables GuardDuty, Security Hub and AWS Config inside the security account.
func (l LandingZone) SecurityServices(ctx context.Context, zone *landingzone.Zone, security *landingzone.Unit) error {
	component := zone.Component("security-services")
	org := zone.Config.OrgName
	provider := security.Provider

	component.Resource(landingzone.Resource{
		Type: "aws_guardduty_detector",
		Name: "main",
		Body: terraform.TerraformAwsGuardDutyDetector{
			Type:                       "aws_guardduty_detector",
			Name:                       "main",
			Enable:                     true,
			FindingPublishingFrequency: "FIFTEEN_MINUTES",
		},
		Provider: provider,
	})

	component.Resource(landingzone.Resource{
		Type: "aws_securityhub_account",
		Name: "main",
		Body: terraform.TerraformAwsSecurityHubAccount{
			Type:                   "aws_securityhub_account",
			Name:                   "main",
			EnableDefaultStandards: true,
		},
		Provider: provider,
	})

	bucketName := data.Interpolate(org+"-aws-config-", security.Id)
	bucket := component.Resource(landingzone.Resource{
		Type: "aws_s3_bucket",
		Name: "config",
		Body: terraform.TerraformAwsS3Bucket{
			Type:   "aws_s3_bucket",
			Name:   "config",
			Bucket: bucketName.Expression(),
			Tags:   tags(zone, naming.Security, map[string]string{"Name": "AWS Config bucket"}),
		},
		References: []data.Output{bucketName},
		Provider:   provider,
		Attributes: []string{"bucket", "arn"},
	})
	bucketRef := data.Reference(bucket, "id")

	component.Resource(landingzone.Resource{
		Type: "aws_s3_bucket_versioning",
		Name: "config",
		Body: terraform.TerraformAwsS3BucketVersioning{
			Type:                    "aws_s3_bucket_versioning",
			Name:                    "config",
			Bucket:                  bucketRef.Expression(),
			VersioningConfiguration: terraform.TerraformAwsVersioningConfiguration{Status: "Enabled"},
		},
		References: []data.Output{bucketRef},
		Provider:   provider,
	})

	component.Resource(landingzone.Resource{
		Type: "aws_s3_bucket_server_side_encryption_configuration",
		Name: "config",
		Body: terraform.TerraformAwsS3BucketEncryption{
			Type:   "aws_s3_bucket_server_side_encryption_configuration",
			Name:   "config",
			Bucket: bucketRef.Expression(),
			Rule: terraform.TerraformAwsS3BucketEncryptionRule{
				ApplyServerSideEncryptionByDefault: terraform.TerraformAwsS3EncryptionDefault{SseAlgorithm: "AES256"},
			},
		},
		References: []data.Output{bucketRef},
		Provider:   provider,
	})

	trustPolicy, err := assumeRolePolicy("config.amazonaws.com")
	if err != nil {
		return err
	}

	role := component.Resource(landingzone.Resource{
		Type: "aws_iam_role",
		Name: "config",
		Body: terraform.TerraformAwsIamRole{
			Type:             "aws_iam_role",
			Name:             "config",
			ResourceName:     strutil.StrPointer(org + "-config-role"),
			AssumeRolePolicy: trustPolicy,
			Tags:             tags(zone, naming.Security, nil),
		},
		Provider:   provider,
		Attributes: []string{"arn", "name"},
	})
	roleName := data.Reference(role, "name")
	roleArn := data.Reference(role, "arn")

	component.Resource(landingzone.Resource{
		Type: "aws_iam_role_policy_attachment",
		Name: "config",
		Body: terraform.TerraformAwsIamRolePolicyAttachment{
			Type:      "aws_iam_role_policy_attachment",
			Name:      "config",
			Role:      roleName.Expression(),
			PolicyArn: "arn:aws:iam::aws:policy/service-role/AWS_ConfigRole",
		},
		References: []data.Output{roleName},
		Provider:   provider,
	})

	recorder := component.Resource(landingzone.Resource{
		Type: "aws_config_configuration_recorder",
		Name: "main",
		Body: terraform.TerraformAwsConfigRecorder{
			Type:         "aws_config_configuration_recorder",
			Name:         "main",
			ResourceName: "main-recorder",
			RoleArn:      roleArn.Expression(),
			RecordingGroup: terraform.TerraformAwsConfigRecordingGroup{
				AllSupported:               true,
				IncludeGlobalResourceTypes: true,
			},
		},
		References: []data.Output{roleArn},
		Provider:   provider,
		Attributes: []string{"name"},
	})
	recorderName := data.Reference(recorder, "name")

	channel := component.Resource(landingzone.Resource{
		Type: "aws_config_delivery_channel",
		Name: "main",
		Body: terraform.TerraformAwsConfigDeliveryChannel{
			Type:         "aws_config_delivery_channel",
			Name:         "main",
			ResourceName: "main-delivery-channel",
			S3BucketName: bucketRef.Expression(),
		},
		References: []data.Output{bucketRef},
		DependsOn:  []string{recorder},
		Provider:   provider,
	})

	component.Resource(landingzone.Resource{
		Type: "aws_config_configuration_recorder_status",
		Name: "main",
		Body: terraform.TerraformAwsConfigRecorderStatus{
			Type:         "aws_config_configuration_recorder_status",
			Name:         "main",
			ResourceName: recorderName.Expression(),
			IsEnabled:    true,
		},
		References: []data.Output{recorderName},
		DependsOn:  []string{channel},
		Provider:   provider,
	})

	for _, rule := range configRules {
		name := naming.ResourceName(rule)
		component.Resource(landingzone.Resource{
			Type: "aws_config_config_rule",
			Name: name,
			Body: terraform.TerraformAwsConfigRule{
				Type:         "aws_config_config_rule",
				Name:         name,
				ResourceName: strings.ReplaceAll(name, "_", "-"),
				Source: terraform.TerraformAwsConfigRuleSource{
					Owner:            "AWS",
					SourceIdentifier: rule,
				},
			},
			DependsOn: []string{recorder},
			Provider:  provider,
		})
	}

	return component.Err()
}
