package terraform

type TerraformAzureManagementGroup struct {
	Type                    string `hcl:"type,label"`
	Name                    string `hcl:"name,label"`
	ResourceName            string `hcl:"name"`
	DisplayName             string `hcl:"display_name"`
	ParentManagementGroupId string `hcl:"parent_management_group_id"`
}

type TerraformAzureSubscription struct {
	Type             string            `hcl:"type,label"`
	Name             string            `hcl:"name,label"`
	Alias            string            `hcl:"alias"`
	SubscriptionName string            `hcl:"subscription_name"`
	BillingScopeId   string            `hcl:"billing_scope_id"`
	Workload         string            `hcl:"workload"`
	Tags             map[string]string `hcl:"tags"`
}

type TerraformAzureManagementGroupSubscriptionAssociation struct {
	Type              string `hcl:"type,label"`
	Name              string `hcl:"name,label"`
	ManagementGroupId string `hcl:"management_group_id"`
	SubscriptionId    string `hcl:"subscription_id"`
}

type TerraformAzureResourceGroup struct {
	Type         string            `hcl:"type,label"`
	Name         string            `hcl:"name,label"`
	ResourceName string            `hcl:"name"`
	Location     string            `hcl:"location"`
	Tags         map[string]string `hcl:"tags"`
}

type TerraformAzureVirtualNetwork struct {
	Type              string            `hcl:"type,label"`
	Name              string            `hcl:"name,label"`
	ResourceName      string            `hcl:"name"`
	Location          string            `hcl:"location"`
	ResourceGroupName string            `hcl:"resource_group_name"`
	AddressSpace      []string          `hcl:"address_space"`
	Tags              map[string]string `hcl:"tags"`
}

type TerraformAzureSubnet struct {
	Type               string   `hcl:"type,label"`
	Name               string   `hcl:"name,label"`
	ResourceName       string   `hcl:"name"`
	ResourceGroupName  string   `hcl:"resource_group_name"`
	VirtualNetworkName string   `hcl:"virtual_network_name"`
	AddressPrefixes    []string `hcl:"address_prefixes"`
}

type TerraformAzureVirtualNetworkPeering struct {
	Type                      string `hcl:"type,label"`
	Name                      string `hcl:"name,label"`
	ResourceName              string `hcl:"name"`
	ResourceGroupName         string `hcl:"resource_group_name"`
	VirtualNetworkName        string `hcl:"virtual_network_name"`
	RemoteVirtualNetworkId    string `hcl:"remote_virtual_network_id"`
	AllowVirtualNetworkAccess bool   `hcl:"allow_virtual_network_access"`
	AllowForwardedTraffic     bool   `hcl:"allow_forwarded_traffic"`
	AllowGatewayTransit       bool   `hcl:"allow_gateway_transit"`
	UseRemoteGateways         bool   `hcl:"use_remote_gateways"`
}

type TerraformAzurePublicIp struct {
	Type              string            `hcl:"type,label"`
	Name              string            `hcl:"name,label"`
	ResourceName      string            `hcl:"name"`
	Location          string            `hcl:"location"`
	ResourceGroupName string            `hcl:"resource_group_name"`
	AllocationMethod  string            `hcl:"allocation_method"`
	Sku               string            `hcl:"sku"`
	Tags              map[string]string `hcl:"tags"`
}

type TerraformAzureFirewall struct {
	Type              string                                `hcl:"type,label"`
	Name              string                                `hcl:"name,label"`
	ResourceName      string                                `hcl:"name"`
	Location          string                                `hcl:"location"`
	ResourceGroupName string                                `hcl:"resource_group_name"`
	SkuName           string                                `hcl:"sku_name"`
	SkuTier           string                                `hcl:"sku_tier"`
	IpConfiguration   TerraformAzureFirewallIpConfiguration `hcl:"ip_configuration,block"`
	Tags              map[string]string                     `hcl:"tags"`
}

type TerraformAzureFirewallIpConfiguration struct {
	Name              string `hcl:"name"`
	SubnetId          string `hcl:"subnet_id"`
	PublicIpAddressId string `hcl:"public_ip_address_id"`
}

type TerraformAzureFirewallNetworkRuleCollection struct {
	Type              string                              `hcl:"type,label"`
	Name              string                              `hcl:"name,label"`
	ResourceName      string                              `hcl:"name"`
	AzureFirewallName string                              `hcl:"azure_firewall_name"`
	ResourceGroupName string                              `hcl:"resource_group_name"`
	Priority          int                                 `hcl:"priority"`
	Action            string                              `hcl:"action"`
	Rule              []TerraformAzureFirewallNetworkRule `hcl:"rule,block"`
}

type TerraformAzureFirewallNetworkRule struct {
	Name                 string   `hcl:"name"`
	SourceAddresses      []string `hcl:"source_addresses"`
	DestinationAddresses []string `hcl:"destination_addresses"`
	DestinationPorts     []string `hcl:"destination_ports"`
	Protocols            []string `hcl:"protocols"`
}

type TerraformAzureLogAnalyticsWorkspace struct {
	Type              string            `hcl:"type,label"`
	Name              string            `hcl:"name,label"`
	ResourceName      string            `hcl:"name"`
	Location          string            `hcl:"location"`
	ResourceGroupName string            `hcl:"resource_group_name"`
	Sku               string            `hcl:"sku"`
	RetentionInDays   int               `hcl:"retention_in_days"`
	Tags              map[string]string `hcl:"tags"`
}

type TerraformAzureApplicationInsights struct {
	Type              string `hcl:"type,label"`
	Name              string `hcl:"name,label"`
	ResourceName      string `hcl:"name"`
	Location          string `hcl:"location"`
	ResourceGroupName string `hcl:"resource_group_name"`
	ApplicationType   string `hcl:"application_type"`
	WorkspaceId       string `hcl:"workspace_id"`
}

type TerraformAzureMonitorActionGroup struct {
	Type              string                        `hcl:"type,label"`
	Name              string                        `hcl:"name,label"`
	ResourceName      string                        `hcl:"name"`
	ResourceGroupName string                        `hcl:"resource_group_name"`
	ShortName         string                        `hcl:"short_name"`
	EmailReceiver     []TerraformAzureEmailReceiver `hcl:"email_receiver,block"`
}

type TerraformAzureEmailReceiver struct {
	Name         string `hcl:"name"`
	EmailAddress string `hcl:"email_address"`
}

type TerraformAzureMonitorMetricAlert struct {
	Type                   string                            `hcl:"type,label"`
	Name                   string                            `hcl:"name,label"`
	ResourceName           string                            `hcl:"name"`
	ResourceGroupName      string                            `hcl:"resource_group_name"`
	Scopes                 []string                          `hcl:"scopes"`
	Description            string                            `hcl:"description"`
	TargetResourceType     *string                           `hcl:"target_resource_type"`
	TargetResourceLocation *string                           `hcl:"target_resource_location"`
	Frequency              string                            `hcl:"frequency"`
	WindowSize             string                            `hcl:"window_size"`
	Criteria               TerraformAzureMetricAlertCriteria `hcl:"criteria,block"`
	Action                 TerraformAzureMetricAlertAction   `hcl:"action,block"`
}

type TerraformAzureMetricAlertCriteria struct {
	MetricNamespace string  `hcl:"metric_namespace"`
	MetricName      string  `hcl:"metric_name"`
	Aggregation     string  `hcl:"aggregation"`
	Operator        string  `hcl:"operator"`
	Threshold       float64 `hcl:"threshold"`
}

type TerraformAzureMetricAlertAction struct {
	ActionGroupId string `hcl:"action_group_id"`
}

type TerraformAzureSecurityCenterContact struct {
	Type               string `hcl:"type,label"`
	Name               string `hcl:"name,label"`
	ResourceName       string `hcl:"name"`
	Email              string `hcl:"email"`
	Phone              string `hcl:"phone"`
	AlertNotifications bool   `hcl:"alert_notifications"`
	AlertsToAdmins     bool   `hcl:"alerts_to_admins"`
}

type TerraformAzureSecurityCenterSubscriptionPricing struct {
	Type         string `hcl:"type,label"`
	Name         string `hcl:"name,label"`
	Tier         string `hcl:"tier"`
	ResourceType string `hcl:"resource_type"`
}

type TerraformAzureResourceGroupPolicyAssignment struct {
	Type               string  `hcl:"type,label"`
	Name               string  `hcl:"name,label"`
	ResourceName       string  `hcl:"name"`
	ResourceGroupId    string  `hcl:"resource_group_id"`
	PolicyDefinitionId string  `hcl:"policy_definition_id"`
	DisplayName        string  `hcl:"display_name"`
	Description        *string `hcl:"description"`
	Parameters         *string `hcl:"parameters"`
}

type TerraformAzureKeyVault struct {
	Type                    string            `hcl:"type,label"`
	Name                    string            `hcl:"name,label"`
	ResourceName            string            `hcl:"name"`
	Location                string            `hcl:"location"`
	ResourceGroupName       string            `hcl:"resource_group_name"`
	TenantId                string            `hcl:"tenant_id"`
	SkuName                 string            `hcl:"sku_name"`
	PurgeProtectionEnabled  bool              `hcl:"purge_protection_enabled"`
	EnableRbacAuthorization bool              `hcl:"enable_rbac_authorization"`
	Tags                    map[string]string `hcl:"tags"`
}

type TerraformAzureClientConfigData struct {
	Type string `hcl:"type,label"`
	Name string `hcl:"name,label"`
}
