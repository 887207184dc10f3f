package terraform

type TerraformGoogleFolder struct {
	Type               string `hcl:"type,label"`
	Name               string `hcl:"name,label"`
	DisplayName        string `hcl:"display_name"`
	Parent             string `hcl:"parent"`
	DeletionProtection bool   `hcl:"deletion_protection"`
}

type TerraformGoogleProject struct {
	Type              string            `hcl:"type,label"`
	Name              string            `hcl:"name,label"`
	ResourceName      string            `hcl:"name"`
	ProjectId         string            `hcl:"project_id"`
	FolderId          string            `hcl:"folder_id"`
	BillingAccount    string            `hcl:"billing_account"`
	AutoCreateNetwork bool              `hcl:"auto_create_network"`
	Labels            map[string]string `hcl:"labels"`
}

type TerraformGoogleProjectService struct {
	Type                     string `hcl:"type,label"`
	Name                     string `hcl:"name,label"`
	Project                  string `hcl:"project"`
	Service                  string `hcl:"service"`
	DisableOnDestroy         bool   `hcl:"disable_on_destroy"`
	DisableDependentServices *bool  `hcl:"disable_dependent_services"`
}

type TerraformGoogleKmsKeyRing struct {
	Type         string `hcl:"type,label"`
	Name         string `hcl:"name,label"`
	ResourceName string `hcl:"name"`
	Project      string `hcl:"project"`
	Location     string `hcl:"location"`
}

type TerraformGooglePubsubTopic struct {
	Type         string            `hcl:"type,label"`
	Name         string            `hcl:"name,label"`
	ResourceName string            `hcl:"name"`
	Project      string            `hcl:"project"`
	Labels       map[string]string `hcl:"labels"`
}

type TerraformGoogleProjectIamMember struct {
	Type    string `hcl:"type,label"`
	Name    string `hcl:"name,label"`
	Project string `hcl:"project"`
	Role    string `hcl:"role"`
	Member  string `hcl:"member"`
}

type TerraformGoogleComputeNetwork struct {
	Type                  string `hcl:"type,label"`
	Name                  string `hcl:"name,label"`
	ResourceName          string `hcl:"name"`
	Project               string `hcl:"project"`
	Description           string `hcl:"description"`
	AutoCreateSubnetworks bool   `hcl:"auto_create_subnetworks"`
}

type TerraformGoogleComputeSharedVpcHostProject struct {
	Type    string `hcl:"type,label"`
	Name    string `hcl:"name,label"`
	Project string `hcl:"project"`
}

type TerraformGoogleComputeSharedVpcServiceProject struct {
	Type           string `hcl:"type,label"`
	Name           string `hcl:"name,label"`
	HostProject    string `hcl:"host_project"`
	ServiceProject string `hcl:"service_project"`
}

type TerraformGoogleComputeSubnetwork struct {
	Type                  string                                    `hcl:"type,label"`
	Name                  string                                    `hcl:"name,label"`
	ResourceName          string                                    `hcl:"name"`
	Project               string                                    `hcl:"project"`
	Region                string                                    `hcl:"region"`
	Network               string                                    `hcl:"network"`
	Description           string                                    `hcl:"description"`
	IpCidrRange           string                                    `hcl:"ip_cidr_range"`
	PrivateIpGoogleAccess bool                                      `hcl:"private_ip_google_access"`
	SecondaryIpRange      []TerraformGoogleSubnetworkSecondaryRange `hcl:"secondary_ip_range,block"`
}

type TerraformGoogleSubnetworkSecondaryRange struct {
	RangeName   string `hcl:"range_name"`
	IpCidrRange string `hcl:"ip_cidr_range"`
}

type TerraformGoogleComputeSubnetworkIamMember struct {
	Type       string `hcl:"type,label"`
	Name       string `hcl:"name,label"`
	Project    string `hcl:"project"`
	Region     string `hcl:"region"`
	Subnetwork string `hcl:"subnetwork"`
	Role       string `hcl:"role"`
	Member     string `hcl:"member"`
}

type TerraformGoogleComputeFirewall struct {
	Type         string                         `hcl:"type,label"`
	Name         string                         `hcl:"name,label"`
	ResourceName string                         `hcl:"name"`
	Project      string                         `hcl:"project"`
	Network      string                         `hcl:"network"`
	Description  string                         `hcl:"description"`
	SourceRanges []string                       `hcl:"source_ranges"`
	TargetTags   []string                       `hcl:"target_tags"`
	Allow        []TerraformGoogleFirewallAllow `hcl:"allow,block"`
}

type TerraformGoogleFirewallAllow struct {
	Protocol string   `hcl:"protocol"`
	Ports    []string `hcl:"ports"`
}

type TerraformGoogleComputeRouter struct {
	Type         string `hcl:"type,label"`
	Name         string `hcl:"name,label"`
	ResourceName string `hcl:"name"`
	Project      string `hcl:"project"`
	Region       string `hcl:"region"`
	Network      string `hcl:"network"`
	Description  string `hcl:"description"`
}

type TerraformGoogleComputeRouterNat struct {
	Type                          string `hcl:"type,label"`
	Name                          string `hcl:"name,label"`
	ResourceName                  string `hcl:"name"`
	Project                       string `hcl:"project"`
	Router                        string `hcl:"router"`
	Region                        string `hcl:"region"`
	NatIpAllocateOption           string `hcl:"nat_ip_allocate_option"`
	SourceSubnetworkIpRangesToNat string `hcl:"source_subnetwork_ip_ranges_to_nat"`
}

type TerraformGoogleLoggingProjectBucketConfig struct {
	Type          string `hcl:"type,label"`
	Name          string `hcl:"name,label"`
	Project       string `hcl:"project"`
	Location      string `hcl:"location"`
	BucketId      string `hcl:"bucket_id"`
	RetentionDays int    `hcl:"retention_days"`
}

type TerraformGoogleLoggingProjectSink struct {
	Type                 string `hcl:"type,label"`
	Name                 string `hcl:"name,label"`
	ResourceName         string `hcl:"name"`
	Project              string `hcl:"project"`
	Destination          string `hcl:"destination"`
	Filter               string `hcl:"filter"`
	UniqueWriterIdentity bool   `hcl:"unique_writer_identity"`
}

type TerraformGoogleMonitoringAlertPolicy struct {
	Type          string                                `hcl:"type,label"`
	Name          string                                `hcl:"name,label"`
	Project       string                                `hcl:"project"`
	DisplayName   string                                `hcl:"display_name"`
	Combiner      string                                `hcl:"combiner"`
	Conditions    []TerraformGoogleAlertPolicyCondition `hcl:"conditions,block"`
	AlertStrategy *TerraformGoogleAlertStrategy         `hcl:"alert_strategy,block"`
}

type TerraformGoogleAlertPolicyCondition struct {
	DisplayName        string                                 `hcl:"display_name"`
	ConditionThreshold TerraformGoogleAlertConditionThreshold `hcl:"condition_threshold,block"`
}

type TerraformGoogleAlertConditionThreshold struct {
	Filter         string                       `hcl:"filter"`
	Comparison     string                       `hcl:"comparison"`
	ThresholdValue float64                      `hcl:"threshold_value"`
	Duration       string                       `hcl:"duration"`
	Aggregations   []TerraformGoogleAggregation `hcl:"aggregations,block"`
}

type TerraformGoogleAggregation struct {
	AlignmentPeriod    string   `hcl:"alignment_period"`
	PerSeriesAligner   string   `hcl:"per_series_aligner"`
	CrossSeriesReducer string   `hcl:"cross_series_reducer"`
	GroupByFields      []string `hcl:"group_by_fields"`
}

type TerraformGoogleAlertStrategy struct {
	AutoClose string `hcl:"auto_close"`
}

type TerraformGoogleMonitoringDashboard struct {
	Type          string `hcl:"type,label"`
	Name          string `hcl:"name,label"`
	Project       string `hcl:"project"`
	DashboardJson string `hcl:"dashboard_json"`
}
