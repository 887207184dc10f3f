package azure

import (
	"context"
	"encoding/json"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armpolicy"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/data"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/hash"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/landingzone"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/model/terraform"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/naming"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/strutil"
)

const (
	requireStorageEncryptionPolicy = "/providers/Microsoft.Authorization/policyDefinitions/404c3081-a854-4457-ae30-26a93ef643f9"
	allowedLocationsPolicy         = "/providers/Microsoft.Authorization/policyDefinitions/e56962a6-4747-49cd-b67b-bf8b01975c4c"

	securityContactPhone = "+1-555-555-5555"

	// keyVaultPrefixLength keeps key vault names within the 24 character limit.
	keyVaultPrefixLength = 15
)

// defenderPlans are the resource types given the Standard tier of Microsoft Defender for Cloud.
var defenderPlans = []string{"VirtualMachines", "StorageAccounts", "KeyVaults"}

type policyAssignment struct {
	name        string
	displayName string
	definition  string
	parameters  map[string]*armpolicy.ParameterValuesValue
}

// SecurityServices describes Defender for Cloud, the governance policy assignments and a key vault inside the
// security subscription.
func (l LandingZone) SecurityServices(ctx context.Context, zone *landingzone.Zone, security *landingzone.Unit) error {
	component := zone.Component("security-services")
	org := naming.OrgSlug(zone.Config.OrgName)
	provider := security.Provider

	component.Resource(landingzone.Resource{
		Type: "azurerm_security_center_contact",
		Name: "main",
		Body: terraform.TerraformAzureSecurityCenterContact{
			Type:               "azurerm_security_center_contact",
			Name:               "main",
			ResourceName:       "default",
			Email:              zone.Config.SecurityEmail,
			Phone:              securityContactPhone,
			AlertNotifications: true,
			AlertsToAdmins:     true,
		},
		Provider: provider,
	})

	for _, plan := range defenderPlans {
		name := naming.ResourceName(plan)
		component.Resource(landingzone.Resource{
			Type: "azurerm_security_center_subscription_pricing",
			Name: name,
			Body: terraform.TerraformAzureSecurityCenterSubscriptionPricing{
				Type:         "azurerm_security_center_subscription_pricing",
				Name:         name,
				Tier:         "Standard",
				ResourceType: plan,
			},
			Provider: provider,
		})
	}

	assignments := []policyAssignment{
		{
			name:        "require-storage-encryption",
			displayName: "Require storage account encryption",
			definition:  requireStorageEncryptionPolicy,
		},
		{
			name:        "allowed-locations",
			displayName: "Allowed locations",
			definition:  allowedLocationsPolicy,
			parameters: map[string]*armpolicy.ParameterValuesValue{
				"listOfAllowedLocations": {Value: zone.Config.AllowedRegions},
			},
		},
	}

	scope := resourceGroupId(security)
	for _, assignment := range assignments {
		parameters, err := policyParameters(assignment.parameters)
		if err != nil {
			return err
		}

		name := naming.ResourceName(assignment.name)
		component.Resource(landingzone.Resource{
			Type: "azurerm_resource_group_policy_assignment",
			Name: name,
			Body: terraform.TerraformAzureResourceGroupPolicyAssignment{
				Type: "azurerm_resource_group_policy_assignment",
				Name: name,
				// assignment names are unique per scope and limited in length, so they are stable guids
				ResourceName:       hash.StableGuid(org + "-" + assignment.name),
				ResourceGroupId:    scope.Expression(),
				PolicyDefinitionId: assignment.definition,
				DisplayName:        assignment.displayName,
				Parameters:         parameters,
			},
			References: []data.Output{scope},
			Provider:   provider,
		})
	}

	clientConfig := component.Data(landingzone.Resource{
		Type: "azurerm_client_config",
		Name: "current",
		Body: terraform.TerraformAzureClientConfigData{
			Type: "azurerm_client_config",
			Name: "current",
		},
		Provider:   provider,
		Attributes: []string{"tenant_id", "object_id"},
	})
	tenantId := data.Reference(clientConfig, "tenant_id")

	component.Resource(landingzone.Resource{
		Type: "azurerm_key_vault",
		Name: "main",
		Body: terraform.TerraformAzureKeyVault{
			Type:                    "azurerm_key_vault",
			Name:                    "main",
			ResourceName:            keyVaultName(org),
			Location:                zone.Config.Region,
			ResourceGroupName:       security.Scope.Expression(),
			TenantId:                tenantId.Expression(),
			SkuName:                 "standard",
			PurgeProtectionEnabled:  true,
			EnableRbacAuthorization: true,
			Tags:                    tags(zone, naming.Security, nil),
		},
		References: []data.Output{security.Scope, tenantId},
		Provider:   provider,
	})

	return component.Err()
}

// policyParameters returns the parameters of a policy assignment as JSON, or nil when there are none.
func policyParameters(parameters map[string]*armpolicy.ParameterValuesValue) (*string, error) {
	if len(parameters) == 0 {
		return nil, nil
	}

	encoded, err := json.Marshal(parameters)
	if err != nil {
		return nil, err
	}
	return strutil.StrPointer(string(encoded)), nil
}

// keyVaultName returns a globally unique key vault name of at most 24 characters, e.g. acme-kv-1a2b3.
func keyVaultName(org string) string {
	return strutil.Truncate(org, keyVaultPrefixLength) + "-kv-" + hash.Sha256Hash(org)[:5]
}
