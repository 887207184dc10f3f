package data

import (
	"testing"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/lzerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteral(t *testing.T) {
	value := Literal("acme-dev")

	assert.Equal(t, 0, value.Dependencies().Cardinality())
	assert.Equal(t, "acme-dev", value.Expression())

	resolved, err := value.Resolve(NewState())
	require.NoError(t, err)
	assert.Equal(t, "acme-dev", resolved)
}

func TestInterpolateCollectsDependencies(t *testing.T) {
	value := Interpolate("serviceAccount:", Reference("google_project.dev", "number"), "-compute@developer.gserviceaccount.com")

	assert.True(t, value.Dependencies().Contains("google_project.dev"))
	assert.Equal(t, "serviceAccount:${google_project.dev.number}-compute@developer.gserviceaccount.com", value.Expression())
}

func TestInterpolateFormatsOtherValues(t *testing.T) {
	value := Interpolate("10.0.", 2, ".0/24")

	assert.Equal(t, 0, value.Dependencies().Cardinality())
	assert.Equal(t, "10.0.2.0/24", value.Expression())
}

func TestLiteralTemplatesAreEscaped(t *testing.T) {
	assert.Equal(t, "$${not.a.reference}", Literal("${not.a.reference}").Expression())
}

func TestResolveFailsUntilRealized(t *testing.T) {
	state := NewState()
	value := Interpolate("projects/", Reference("google_project.dev", "project_id"))

	_, err := value.Resolve(state)
	require.Error(t, err)
	assert.True(t, lzerrors.IsDependencyError(err))

	state.Set("google_project.dev", map[string]string{"project_id": "acme-dev"})

	resolved, err := value.Resolve(state)
	require.NoError(t, err)
	assert.Equal(t, "projects/acme-dev", resolved)
}

func TestOutputMapIsAJoin(t *testing.T) {
	entries := map[string]Output{
		"dev":  Reference("google_project.dev", "number"),
		"prod": Reference("google_project.prod", "number"),
	}
	joined := All(entries)

	// later changes to the source map have no effect on the join
	entries["test"] = Reference("google_project.test", "number")

	assert.Equal(t, []string{"dev", "prod"}, joined.Keys())
	assert.ElementsMatch(t, []string{"google_project.dev", "google_project.prod"}, joined.Dependencies().ToSlice())

	state := NewState()
	state.Set("google_project.dev", map[string]string{"number": "111"})

	_, err := joined.Resolve(state)
	require.Error(t, err, "a partially realized join must not resolve")

	state.Set("google_project.prod", map[string]string{"number": "222"})

	resolved, err := joined.Resolve(state)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"dev": "111", "prod": "222"}, resolved)
}

func TestOutputMapExpression(t *testing.T) {
	joined := All(map[string]Output{
		"security": Reference("google_project.security", "number"),
		"dev":      Reference("google_project.dev", "number"),
	})

	assert.Equal(t, "{\n"+
		"    \"dev\" = \"${google_project.dev.number}\"\n"+
		"    \"security\" = \"${google_project.security.number}\"\n"+
		"  }", joined.Expression())
}
