package network

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevAndProd(t *testing.T) {
	plans, err := Plan("shared-services", []string{"dev", "prod"})
	require.NoError(t, err)
	require.Len(t, plans, 3)

	assert.Equal(t, SubnetPlan{Consumer: "shared-services", Primary: "10.0.1.0/24"}, plans[0])
	assert.Equal(t, SubnetPlan{Consumer: "dev", Primary: "10.0.2.0/24", Pods: "10.2.0.0/16", Services: "10.3.0.0/16"}, plans[1])
	assert.Equal(t, SubnetPlan{Consumer: "prod", Primary: "10.0.4.0/24", Pods: "10.4.0.0/16", Services: "10.5.0.0/16"}, plans[2])
}

func TestPlanIsDeterministicByPosition(t *testing.T) {
	first, err := Plan("shared-services", []string{"dev", "test", "prod"})
	require.NoError(t, err)

	second, err := Plan("shared-services", []string{"dev", "test", "prod"})
	require.NoError(t, err)

	assert.Equal(t, first, second)

	reordered, err := Plan("shared-services", []string{"prod", "test", "dev"})
	require.NoError(t, err)

	// ranges follow the position, not the name
	assert.Equal(t, first[1].Primary, reordered[1].Primary)
	assert.Equal(t, "prod", reordered[1].Consumer)
}

func TestMaximumEnvironments(t *testing.T) {
	environments := []string{}
	for i := 0; i < MaxEnvironments; i++ {
		environments = append(environments, fmt.Sprintf("env%d", i))
	}

	plans, err := Plan("shared-services", environments)
	require.NoError(t, err)

	last := plans[len(plans)-1]
	assert.Equal(t, "10.0.254.0/24", last.Primary)
	assert.Equal(t, "10.255.0.0/16", last.Services)

	_, err = Plan("shared-services", append(environments, "onetoomany"))
	assert.Error(t, err)
}

func TestValidateNoOverlap(t *testing.T) {
	err := ValidateNoOverlap([]SubnetPlan{
		{Consumer: "a", Primary: "10.0.2.0/24"},
		{Consumer: "b", Primary: "10.0.2.128/25"},
	})
	assert.Error(t, err)

	err = ValidateNoOverlap([]SubnetPlan{{Consumer: "a", Primary: "10.0.0.0/24"}}, HubAddressSpace)
	assert.Error(t, err)
}

func TestRanges(t *testing.T) {
	assert.Equal(t, []string{"10.0.1.0/24"}, SharedServicesPlan("shared-services").Ranges())

	plan, err := EnvironmentPlan("dev", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.2.0/24", "10.2.0.0/16", "10.3.0.0/16"}, plan.Ranges())
}
