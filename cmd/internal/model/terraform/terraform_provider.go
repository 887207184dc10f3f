package terraform

import "github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/strutil"

type TerraformConfig struct {
	RequiredProviders RequiredProviders `hcl:"required_providers,block"`
	Backend           *Backend          `hcl:"backend,block"`
}

type Backend struct {
	Type string `hcl:"type,label"`
}

// RequiredProviders holds the provider requirement of the one cloud a landing zone is built in.
// Unset providers are not written.
type RequiredProviders struct {
	GoogleProvider  *ProviderRequirement `hcl:"google"`
	AwsProvider     *ProviderRequirement `hcl:"aws"`
	AzurermProvider *ProviderRequirement `hcl:"azurerm"`
}

type ProviderRequirement struct {
	Source  string `cty:"source"`
	Version string `cty:"version"`
}

type TerraformGoogleProvider struct {
	Type   string `hcl:"type,label"`
	Region string `hcl:"region"`
}

type TerraformAwsProvider struct {
	Type       string                  `hcl:"type,label"`
	Alias      *string                 `hcl:"alias"`
	Region     string                  `hcl:"region"`
	AssumeRole *TerraformAwsAssumeRole `hcl:"assume_role,block"`
}

type TerraformAwsAssumeRole struct {
	RoleArn string `hcl:"role_arn"`
}

type TerraformAzureProvider struct {
	Type           string                 `hcl:"type,label"`
	Alias          *string                `hcl:"alias"`
	SubscriptionId *string                `hcl:"subscription_id"`
	Features       TerraformAzureFeatures `hcl:"features,block"`
}

type TerraformAzureFeatures struct {
}

// CreateTerraformConfig builds the terraform block for the named provider, e.g. google, pinning the provider
// to version when it is set.
func (c TerraformConfig) CreateTerraformConfig(provider string, backend string, version string) TerraformConfig {
	config := TerraformConfig{}

	switch provider {
	case "google":
		config.RequiredProviders.GoogleProvider = &ProviderRequirement{
			Source:  "hashicorp/google",
			Version: strutil.DefaultIfEmpty(version, ">= 5.0.0"),
		}
	case "aws":
		config.RequiredProviders.AwsProvider = &ProviderRequirement{
			Source:  "hashicorp/aws",
			Version: strutil.DefaultIfEmpty(version, ">= 5.40.0"),
		}
	case "azurerm":
		config.RequiredProviders.AzurermProvider = &ProviderRequirement{
			Source:  "hashicorp/azurerm",
			Version: strutil.DefaultIfEmpty(version, ">= 3.90.0"),
		}
	}

	if backend != "" {
		config.Backend = &Backend{Type: backend}
	}

	return config
}
