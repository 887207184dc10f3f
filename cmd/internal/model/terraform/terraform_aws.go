package terraform

type TerraformAwsIamRole struct {
	Type             string                     `hcl:"type,label"`
	Name             string                     `hcl:"name,label"`
	ResourceName     *string                    `hcl:"name"`
	Path             *string                    `hcl:"path"`
	AssumeRolePolicy string                     `hcl:"assume_role_policy"`
	InlinePolicy     []TerraformAwsInlinePolicy `hcl:"inline_policy,block"`
	Tags             map[string]string          `hcl:"tags"`
}

type TerraformAwsInlinePolicy struct {
	Name   string `hcl:"name"`
	Policy string `hcl:"policy"`
}

type TerraformAwsIamRolePolicyAttachment struct {
	Type      string `hcl:"type,label"`
	Name      string `hcl:"name,label"`
	Role      string `hcl:"role"`
	PolicyArn string `hcl:"policy_arn"`
}

type TerraformAwsOrganizationalUnit struct {
	Type         string            `hcl:"type,label"`
	Name         string            `hcl:"name,label"`
	ResourceName string            `hcl:"name"`
	ParentId     string            `hcl:"parent_id"`
	Tags         map[string]string `hcl:"tags"`
}

type TerraformAwsOrganizationsAccount struct {
	Type            string            `hcl:"type,label"`
	Name            string            `hcl:"name,label"`
	ResourceName    string            `hcl:"name"`
	Email           string            `hcl:"email"`
	RoleName        string            `hcl:"role_name"`
	ParentId        string            `hcl:"parent_id"`
	CloseOnDeletion bool              `hcl:"close_on_deletion"`
	Tags            map[string]string `hcl:"tags"`
}

type TerraformAwsControlTowerLandingZone struct {
	Type         string            `hcl:"type,label"`
	Name         string            `hcl:"name,label"`
	ManifestJson string            `hcl:"manifest_json"`
	Version      string            `hcl:"version"`
	Tags         map[string]string `hcl:"tags"`
}

type TerraformAwsControlTowerControl struct {
	Type              string                              `hcl:"type,label"`
	Name              string                              `hcl:"name,label"`
	ControlIdentifier string                              `hcl:"control_identifier"`
	TargetIdentifier  string                              `hcl:"target_identifier"`
	Parameters        []TerraformAwsControlTowerParameter `hcl:"parameters,block"`
}

type TerraformAwsControlTowerParameter struct {
	Key   string `hcl:"key"`
	Value string `hcl:"value"`
}

type TerraformAwsVpc struct {
	Type               string            `hcl:"type,label"`
	Name               string            `hcl:"name,label"`
	CidrBlock          string            `hcl:"cidr_block"`
	EnableDnsHostnames bool              `hcl:"enable_dns_hostnames"`
	EnableDnsSupport   bool              `hcl:"enable_dns_support"`
	Tags               map[string]string `hcl:"tags"`
}

type TerraformAwsSubnet struct {
	Type      string            `hcl:"type,label"`
	Name      string            `hcl:"name,label"`
	VpcId     string            `hcl:"vpc_id"`
	CidrBlock string            `hcl:"cidr_block"`
	Tags      map[string]string `hcl:"tags"`
}

type TerraformAwsRamResourceShare struct {
	Type                    string            `hcl:"type,label"`
	Name                    string            `hcl:"name,label"`
	ResourceName            string            `hcl:"name"`
	AllowExternalPrincipals bool              `hcl:"allow_external_principals"`
	Tags                    map[string]string `hcl:"tags"`
}

type TerraformAwsRamResourceAssociation struct {
	Type             string `hcl:"type,label"`
	Name             string `hcl:"name,label"`
	ResourceArn      string `hcl:"resource_arn"`
	ResourceShareArn string `hcl:"resource_share_arn"`
}

type TerraformAwsRamPrincipalAssociation struct {
	Type             string `hcl:"type,label"`
	Name             string `hcl:"name,label"`
	Principal        string `hcl:"principal"`
	ResourceShareArn string `hcl:"resource_share_arn"`
}

type TerraformAwsSecurityGroup struct {
	Type         string                          `hcl:"type,label"`
	Name         string                          `hcl:"name,label"`
	ResourceName string                          `hcl:"name"`
	Description  string                          `hcl:"description"`
	VpcId        string                          `hcl:"vpc_id"`
	Ingress      []TerraformAwsSecurityGroupRule `hcl:"ingress,block"`
	Egress       []TerraformAwsSecurityGroupRule `hcl:"egress,block"`
	Tags         map[string]string               `hcl:"tags"`
}

type TerraformAwsSecurityGroupRule struct {
	Description *string  `hcl:"description"`
	FromPort    int      `hcl:"from_port"`
	ToPort      int      `hcl:"to_port"`
	Protocol    string   `hcl:"protocol"`
	CidrBlocks  []string `hcl:"cidr_blocks"`
}

type TerraformAwsGuardDutyDetector struct {
	Type                       string `hcl:"type,label"`
	Name                       string `hcl:"name,label"`
	Enable                     bool   `hcl:"enable"`
	FindingPublishingFrequency string `hcl:"finding_publishing_frequency"`
}

type TerraformAwsSecurityHubAccount struct {
	Type                   string `hcl:"type,label"`
	Name                   string `hcl:"name,label"`
	EnableDefaultStandards bool   `hcl:"enable_default_standards"`
}

type TerraformAwsS3Bucket struct {
	Type   string            `hcl:"type,label"`
	Name   string            `hcl:"name,label"`
	Bucket string            `hcl:"bucket"`
	Tags   map[string]string `hcl:"tags"`
}

type TerraformAwsS3BucketVersioning struct {
	Type                    string                              `hcl:"type,label"`
	Name                    string                              `hcl:"name,label"`
	Bucket                  string                              `hcl:"bucket"`
	VersioningConfiguration TerraformAwsVersioningConfiguration `hcl:"versioning_configuration,block"`
}

type TerraformAwsVersioningConfiguration struct {
	Status string `hcl:"status"`
}

type TerraformAwsS3BucketEncryption struct {
	Type   string                             `hcl:"type,label"`
	Name   string                             `hcl:"name,label"`
	Bucket string                             `hcl:"bucket"`
	Rule   TerraformAwsS3BucketEncryptionRule `hcl:"rule,block"`
}

type TerraformAwsS3BucketEncryptionRule struct {
	ApplyServerSideEncryptionByDefault TerraformAwsS3EncryptionDefault `hcl:"apply_server_side_encryption_by_default,block"`
}

type TerraformAwsS3EncryptionDefault struct {
	SseAlgorithm string `hcl:"sse_algorithm"`
}

type TerraformAwsConfigRecorder struct {
	Type           string                           `hcl:"type,label"`
	Name           string                           `hcl:"name,label"`
	ResourceName   string                           `hcl:"name"`
	RoleArn        string                           `hcl:"role_arn"`
	RecordingGroup TerraformAwsConfigRecordingGroup `hcl:"recording_group,block"`
}

type TerraformAwsConfigRecordingGroup struct {
	AllSupported               bool `hcl:"all_supported"`
	IncludeGlobalResourceTypes bool `hcl:"include_global_resource_types"`
}

type TerraformAwsConfigRecorderStatus struct {
	Type         string `hcl:"type,label"`
	Name         string `hcl:"name,label"`
	ResourceName string `hcl:"name"`
	IsEnabled    bool   `hcl:"is_enabled"`
}

type TerraformAwsConfigDeliveryChannel struct {
	Type         string `hcl:"type,label"`
	Name         string `hcl:"name,label"`
	ResourceName string `hcl:"name"`
	S3BucketName string `hcl:"s3_bucket_name"`
}

type TerraformAwsConfigRule struct {
	Type         string                       `hcl:"type,label"`
	Name         string                       `hcl:"name,label"`
	ResourceName string                       `hcl:"name"`
	Source       TerraformAwsConfigRuleSource `hcl:"source,block"`
}

type TerraformAwsConfigRuleSource struct {
	Owner            string `hcl:"owner"`
	SourceIdentifier string `hcl:"source_identifier"`
}

type TerraformAwsCloudwatchDashboard struct {
	Type          string `hcl:"type,label"`
	Name          string `hcl:"name,label"`
	DashboardName string `hcl:"dashboard_name"`
	DashboardBody string `hcl:"dashboard_body"`
}

type TerraformAwsSnsTopic struct {
	Type         string            `hcl:"type,label"`
	Name         string            `hcl:"name,label"`
	ResourceName string            `hcl:"name"`
	Tags         map[string]string `hcl:"tags"`
}

type TerraformAwsCloudwatchMetricAlarm struct {
	Type               string   `hcl:"type,label"`
	Name               string   `hcl:"name,label"`
	AlarmName          string   `hcl:"alarm_name"`
	AlarmDescription   string   `hcl:"alarm_description"`
	ComparisonOperator string   `hcl:"comparison_operator"`
	EvaluationPeriods  int      `hcl:"evaluation_periods"`
	MetricName         string   `hcl:"metric_name"`
	Namespace          string   `hcl:"namespace"`
	Period             int      `hcl:"period"`
	Statistic          string   `hcl:"statistic"`
	Threshold          float64  `hcl:"threshold"`
	AlarmActions       []string `hcl:"alarm_actions"`
}
