package realize

import (
	"context"
	"regexp"
	"testing"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/args"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/data"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/landingzone"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/landingzone/gcp"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/lzerrors"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func preview(t *testing.T, environments ...string) (*landingzone.Zone, *Preview) {
	config := (&args.Arguments{
		Cloud:             "gcp",
		OrgName:           "acme",
		Environments:      environments,
		BillingAccount:    "000000-000000-000000",
		LandingZoneRootId: "folders/123456",
	}).OrgConfig()

	zone := landingzone.NewZone(config, landingzone.Options{})
	result, err := landingzone.Compose(context.Background(), gcp.LandingZone{}, zone)
	require.NoError(t, err)

	p, err := Realizer{Concurrency: 4}.Realize(context.Background(), zone.Resources, result, data.NewState())
	require.NoError(t, err)
	return zone, p
}

func TestEveryResourceIsRealizedAfterItsDependencies(t *testing.T) {
	zone, p := preview(t, "dev", "prod")

	wave := map[string]int{}
	for i, addresses := range p.Waves {
		for _, address := range addresses {
			wave[address] = i
		}
	}

	assert.Len(t, wave, zone.Resources.Len())

	for _, resource := range zone.Resources.Resources() {
		for _, dependency := range resource.DependencyList() {
			if wave[dependency] >= wave[resource.Id] {
				t.Fatalf("%s was realized in wave %d, but its dependency %s was realized in wave %d",
					resource.Id, wave[resource.Id], dependency, wave[dependency])
			}
		}
	}

	assert.Less(t, wave["google_project.dev"], wave["google_compute_subnetwork_iam_member.dev_network_user"])
}

func TestOutputsAreResolved(t *testing.T) {
	_, p := preview(t, "dev", "prod")

	numbers, ok := p.Outputs[gcp.ProjectNumbersOutput]
	require.True(t, ok)

	expected := []string{"dev", "networking", "prod", "security", "shared-services"}
	assert.Len(t, numbers, len(expected))
	for _, logicalName := range expected {
		assert.Regexp(t, `^[1-9][0-9]{11}$`, numbers[logicalName], logicalName)
	}

	assert.Regexp(t, `^folders/[0-9]{12}$`, p.Outputs[gcp.FolderIdsOutput]["dev"])
	assert.NotContains(t, p.Outputs[gcp.ProjectIdsOutput]["dev"], "${")
}

func TestPreviewIsDeterministic(t *testing.T) {
	_, first := preview(t, "dev", "test", "prod")
	_, second := preview(t, "dev", "test", "prod")

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("previews differ (-first +second):\n%s", diff)
	}
}

func TestUnrealizedDependency(t *testing.T) {
	state := data.NewState()
	resource := data.ResourceDetails{
		Id:           "google_compute_subnetwork_iam_member.dev_network_user",
		Dependencies: mapset.NewSet("google_project.dev"),
		Attributes:   []string{"id"},
	}

	err := realizeResource(resource, state)
	require.Error(t, err)
	assert.True(t, lzerrors.IsDependencyError(err))
	assert.False(t, state.IsRealized(resource.Id))

	state.Set("google_project.dev", map[string]string{"number": "123456789012"})
	require.NoError(t, realizeResource(resource, state))
	assert.True(t, state.IsRealized(resource.Id))
}

func TestFakeValue(t *testing.T) {
	account := data.ResourceDetails{Id: "aws_organizations_account.dev", ResourceType: "aws_organizations_account"}
	assert.Regexp(t, `^[0-9]{12}$`, FakeValue(account, "id"))
	assert.Regexp(t, `^arn:aws:organizations::[0-9]{12}:`, FakeValue(account, "arn"))

	ou := data.ResourceDetails{Id: "aws_organizations_organizational_unit.platform", ResourceType: "aws_organizations_organizational_unit"}
	assert.Regexp(t, `^ou-[0-9a-f]{4}-[0-9a-f]{8}$`, FakeValue(ou, "id"))

	subscription := data.ResourceDetails{Id: "azurerm_subscription.dev", ResourceType: "azurerm_subscription"}
	guid := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	assert.Regexp(t, guid, FakeValue(subscription, "subscription_id"))

	assert.Equal(t, FakeValue(subscription, "subscription_id"), FakeValue(subscription, "subscription_id"))
	assert.NotEqual(t, FakeValue(subscription, "subscription_id"), FakeValue(subscription, "id"))
}
