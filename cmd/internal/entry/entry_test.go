package entry

import (
	"context"
	"strings"
	"testing"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/args"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/data"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/lzerrors"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gcpArguments(environments ...string) args.Arguments {
	return args.Arguments{
		Cloud:             "gcp",
		OrgName:           "acme",
		Environments:      environments,
		BillingAccount:    "000000-000000-000000",
		LandingZoneRootId: "folders/123456",
	}
}

func TestEntryWritesOneFilePerComponent(t *testing.T) {
	files, err := Entry(context.Background(), gcpArguments("dev", "prod"))
	require.NoError(t, err)

	for _, file := range []string{"providers.tf", "landing_zone.tf", "shared_services.tf", "security.tf",
		"environment_dev.tf", "environment_prod.tf", "networking.tf", "monitoring.tf", "outputs.tf"} {
		content, ok := files[file]
		require.True(t, ok, "expected "+file+" to be generated")
		assert.True(t, strings.HasPrefix(content, "# Generated by lzterra."), file+" should start with the header")
		assert.NotContains(t, content, "$${", file+" should not contain escaped interpolations")
		assert.NotRegexp(t, `=\s*null\s*\n`, content, file+" should not contain unset attributes")
	}

	assert.Contains(t, files["networking.tf"], "# Component: networking")
	assert.Contains(t, files["environment_dev.tf"], `resource "google_project" "dev"`)
	assert.Contains(t, files["outputs.tf"], `output "project_numbers"`)
}

func TestBlocksAreWrittenInDependencyOrder(t *testing.T) {
	files, err := Entry(context.Background(), gcpArguments("dev"))
	require.NoError(t, err)

	networking := files["networking.tf"]
	project := strings.Index(networking, `resource "google_project" "networking"`)
	subnet := strings.Index(networking, `resource "google_compute_subnetwork" "dev"`)
	grant := strings.Index(networking, `resource "google_compute_subnetwork_iam_member" "dev_network_user"`)

	require.NotEqual(t, -1, project)
	require.NotEqual(t, -1, subnet)
	require.NotEqual(t, -1, grant)
	assert.Less(t, project, subnet)
	assert.Less(t, subnet, grant)
}

func TestEntryIsIdempotent(t *testing.T) {
	first, err := Entry(context.Background(), gcpArguments("dev", "test", "prod"))
	require.NoError(t, err)

	second, err := Entry(context.Background(), gcpArguments("dev", "test", "prod"))
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("rendered files differ (-first +second):\n%s", diff)
	}
}

func TestEveryCloudRenders(t *testing.T) {
	arguments := []args.Arguments{
		gcpArguments("dev"),
		{
			Cloud:             "aws",
			OrgName:           "acme",
			Environments:      []string{"dev"},
			BillingAccount:    "123456789012",
			LandingZoneRootId: "r-abcd",
			EmailLocalPart:    "aws",
			EmailDomain:       "example.com",
		},
		{
			Cloud:             "azure",
			OrgName:           "acme",
			Environments:      []string{"dev"},
			BillingAccount:    "/providers/Microsoft.Billing/billingAccounts/1234/enrollmentAccounts/5678",
			LandingZoneRootId: "/providers/Microsoft.Management/managementGroups/tenant-platform",
		},
	}

	for _, a := range arguments {
		files, err := Entry(context.Background(), a)
		require.NoError(t, err, a.Cloud)
		assert.Contains(t, files["providers.tf"], "# Cloud: "+a.Cloud)
	}
}

func TestUnknownCloud(t *testing.T) {
	arguments := gcpArguments("dev")
	arguments.Cloud = "oracle"

	_, err := Entry(context.Background(), arguments)
	require.Error(t, err)
	assert.True(t, lzerrors.IsConfigurationError(err))
}

func TestBackendAndProviderVersion(t *testing.T) {
	arguments := gcpArguments("dev")
	arguments.BackendBlock = "gcs"
	arguments.ProviderVersion = "~> 5.0"

	files, err := Entry(context.Background(), arguments)
	require.NoError(t, err)

	assert.Contains(t, files["providers.tf"], `backend "gcs"`)
	assert.Contains(t, files["providers.tf"], "~> 5.0")
}

func TestCheckReferences(t *testing.T) {
	resource := data.ResourceDetails{
		Id:           "google_compute_subnetwork_iam_member.dev_network_user",
		Dependencies: mapset.NewSet("google_project.networking"),
	}

	err := CheckReferences(resource, `project = "${google_project.networking.project_id}"`)
	require.NoError(t, err)

	err = CheckReferences(resource, `member = "serviceAccount:${google_project.dev.number}-compute@developer.gserviceaccount.com"`)
	require.Error(t, err)
	assert.True(t, lzerrors.IsDependencyError(err))
	assert.Contains(t, err.Error(), "google_project.dev")
}
