package args

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/client"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/lzerrors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseFlags registers and parses the flags the way the root command does.
func parseFlags(arguments ...string) (Arguments, error) {
	flags := pflag.NewFlagSet("lzterra", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)

	parsed := Arguments{}
	AddFlags(flags, &parsed)

	if err := flags.Parse(arguments); err != nil {
		return Arguments{}, err
	}

	err := Complete(context.Background(), flags, &parsed, client.ConfigSourceClient{})
	return parsed, err
}

func validGcpConfig() OrgConfig {
	arguments := Arguments{
		Cloud:             "gcp",
		OrgName:           "acme",
		Environments:      []string{"dev", "prod"},
		BillingAccount:    "000000-000000-000000",
		LandingZoneRootId: "folders/123456",
	}
	return arguments.OrgConfig()
}

func TestParseFlagsCorrect(t *testing.T) {
	args, err := parseFlags(
		"--cloud",
		"gcp",
		"--orgName",
		"acme",
		"--environments",
		"dev,prod",
		"--billingAccount",
		"000000-000000-000000",
		"--landingZoneRootId",
		"folders/123456",
		"--dest",
		"/tmp",
		"--console",
	)

	if err != nil {
		t.Fatalf("Should not have returned an error")
	}

	if args.OrgName != "acme" {
		t.Fatalf("OrgName should have been acme")
	}

	if len(args.Environments) != 2 || args.Environments[0] != "dev" || args.Environments[1] != "prod" {
		t.Fatalf("Environments should have been dev and prod")
	}

	if args.LandingZoneRootId != "folders/123456" {
		t.Fatalf("LandingZoneRootId should have been folders/123456")
	}

	if args.Destination != "/tmp" {
		t.Fatalf("Destination should have been /tmp")
	}

	if !args.Console {
		t.Fatalf("Console should have been true")
	}
}

func TestParseFlagsFromEnvironment(t *testing.T) {
	t.Setenv("LZTERRA_ORGNAME", "globex")
	t.Setenv("LZTERRA_ENVIRONMENTS", "dev,test,prod")

	args, err := parseFlags("--cloud", "aws")
	require.NoError(t, err)

	assert.Equal(t, "globex", args.OrgName)
	assert.Equal(t, []string{"dev", "test", "prod"}, args.Environments)
	assert.Equal(t, "aws", args.Cloud)
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lzterra.yaml"), []byte(`
cloud: azure
orgName: initech
environments:
  - dev
  - prod
billingAccount: /providers/Microsoft.Billing/billingAccounts/1/enrollmentAccounts/2
`), 0600))

	args, err := parseFlags("--configPath", dir, "--orgName", "acme")
	require.NoError(t, err)

	assert.Equal(t, "azure", args.Cloud)
	assert.Equal(t, "acme", args.OrgName)
	assert.Equal(t, []string{"dev", "prod"}, args.Environments)
	assert.Equal(t, "/providers/Microsoft.Billing/billingAccounts/1/enrollmentAccounts/2", args.BillingAccount)
}

func TestParseFlagsUnknown(t *testing.T) {
	_, err := parseFlags("--whatever")
	assert.Error(t, err)
}

func TestOrgConfigDefaults(t *testing.T) {
	config := validGcpConfig()

	assert.Equal(t, "us-central1", config.Region)
	assert.Equal(t, []string{"us-central1"}, config.AllowedRegions)
	assert.Equal(t, "security@acme.com", config.SecurityEmail)

	azure := (&Arguments{Cloud: "azure", LandingZoneRootId: "acme-parent"}).OrgConfig()
	assert.Equal(t, "/providers/Microsoft.Management/managementGroups/acme-parent", azure.LandingZoneRootId)
	assert.Equal(t, "eastus", azure.Region)
}

func TestValidateGcp(t *testing.T) {
	assert.NoError(t, validGcpConfig().Validate())
}

func TestValidateMissingBillingAccount(t *testing.T) {
	config := validGcpConfig()
	config.BillingAccount = ""

	err := config.Validate()
	require.Error(t, err)
	assert.True(t, lzerrors.IsConfigurationError(err))
	assert.Contains(t, err.Error(), "billingAccount")
}

func TestValidateMissingRequiredSettings(t *testing.T) {
	err := (&Arguments{Cloud: "gcp"}).OrgConfig().Validate()
	require.Error(t, err)

	for _, setting := range []string{"orgName", "billingAccount", "landingZoneRootId", "environments"} {
		assert.Contains(t, err.Error(), setting)
	}
}

func TestValidateEnvironments(t *testing.T) {
	config := validGcpConfig()
	config.Environments = []string{"dev", "dev", "Prod", "networking"}

	err := config.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"dev" is listed more than once`)
	assert.Contains(t, err.Error(), `"Prod" must be a lower case DNS label`)
	assert.Contains(t, err.Error(), `"networking" is reserved`)
}

func TestSharedNetworkNamesAreReserved(t *testing.T) {
	for _, environment := range []string{"hub", "shared"} {
		config := validGcpConfig()
		config.Environments = []string{"dev", environment}

		err := config.Validate()
		require.Error(t, err, environment)
		assert.True(t, lzerrors.IsConfigurationError(err), environment)
		assert.Contains(t, err.Error(), `"`+environment+`" is reserved`)
	}
}

func TestValidateGcpProjectIds(t *testing.T) {
	config := validGcpConfig()
	config.Environments = []string{"a-very-long-environment-name"}

	err := config.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "acme-a-very-long-environment-name")

	config = validGcpConfig()
	config.LandingZoneRootId = "123456"
	assert.Error(t, config.Validate())
}

func TestValidateUnknownCloud(t *testing.T) {
	config := validGcpConfig()
	config.Cloud = "oracle"

	err := config.Validate()
	require.Error(t, err)
	assert.True(t, lzerrors.IsConfigurationError(err))
}

func TestValidateAws(t *testing.T) {
	config := (&Arguments{
		Cloud:             "aws",
		OrgName:           "acme",
		Environments:      []string{"dev", "prod"},
		BillingAccount:    "acme-billing",
		LandingZoneRootId: "r-ab12",
		EmailLocalPart:    "cloud",
		EmailDomain:       "example.org",
	}).OrgConfig()
	assert.NoError(t, config.Validate())

	config.EmailDomain = "example"
	assert.Error(t, config.Validate())

	config.EmailDomain = "example.org"
	config.LandingZoneRootId = "acme"
	assert.Error(t, config.Validate())
}

func TestValidateAzure(t *testing.T) {
	config := (&Arguments{
		Cloud:             "azure",
		OrgName:           "acme",
		Environments:      []string{"dev"},
		BillingAccount:    "/providers/Microsoft.Billing/billingAccounts/1/enrollmentAccounts/2",
		LandingZoneRootId: "/providers/Microsoft.Management/managementGroups/acme-parent",
	}).OrgConfig()
	assert.NoError(t, config.Validate())

	config.LandingZoneRootId = "/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/rg"
	err := config.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a management group")
}

func TestCopyIsIndependent(t *testing.T) {
	config := validGcpConfig()
	copied := config.Copy()
	copied.Environments[0] = "changed"

	assert.Equal(t, "dev", config.Environments[0])
}
