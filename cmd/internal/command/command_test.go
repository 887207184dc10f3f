package command

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/lzerrors"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/realize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// unusedSource fails the test if a remote configuration is fetched.
type unusedSource struct {
	t *testing.T
}

func (s unusedSource) Fetch(ctx context.Context, source string, configFile string) (string, error) {
	s.t.Fatalf("no configuration source was expected, got %s", source)
	return "", nil
}

var gcpFlags = []string{
	"--cloud", "gcp",
	"--orgName", "acme",
	"--environments", "dev,prod",
	"--billingAccount", "000000-000000-000000",
	"--landingZoneRootId", "folders/123456",
	"--configPath", "testdata-does-not-exist",
}

func run(t *testing.T, arguments ...string) (string, error) {
	root := NewRootCommand(unusedSource{t: t})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(arguments)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRenderToDestination(t *testing.T) {
	dest := t.TempDir()
	overlay := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(overlay, "backend.tf"), []byte(`terraform { backend "gcs" {} }`), 0644))

	_, err := run(t, append([]string{"render", "--dest", dest, "--overlayDir", overlay}, gcpFlags...)...)
	require.NoError(t, err)

	for _, file := range []string{"backend.tf", "providers.tf", "networking.tf", "outputs.tf"} {
		_, err := os.Stat(filepath.Join(dest, file))
		assert.NoError(t, err, file)
	}
}

func TestRenderToConsole(t *testing.T) {
	out, err := run(t, append([]string{"render"}, gcpFlags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "# networking.tf")
	assert.Contains(t, out, `resource "google_compute_subnetwork" "dev"`)
}

func TestGraphWaves(t *testing.T) {
	out, err := run(t, append([]string{"graph"}, gcpFlags...)...)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "wave 0:\n"))
	assert.Less(t, strings.Index(out, "google_project.dev\n"), strings.Index(out, "google_compute_subnetwork_iam_member.dev_network_user\n"))
}

func TestGraphDot(t *testing.T) {
	out, err := run(t, append([]string{"graph", "--format", "dot"}, gcpFlags...)...)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "digraph landingzone {"))
	assert.Contains(t, out, `"google_compute_subnetwork_iam_member.dev_network_user" -> "google_project.dev";`)
}

func TestGraphWavesOfOneType(t *testing.T) {
	out, err := run(t, append([]string{"graph", "--type", "google_project"}, gcpFlags...)...)
	require.NoError(t, err)

	assert.Contains(t, out, "  google_project.dev\n")
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if strings.HasPrefix(line, "  ") {
			assert.True(t, strings.HasPrefix(line, "  google_project."), line)
		}
	}

	_, err = run(t, append([]string{"graph", "--type", "aws_vpc"}, gcpFlags...)...)
	require.Error(t, err)
	assert.True(t, lzerrors.IsConfigurationError(err))
}

func TestGraphOfOneResource(t *testing.T) {
	out, err := run(t, append([]string{"graph", "--resource", "google_compute_subnetwork_iam_member.dev_network_user"}, gcpFlags...)...)
	require.NoError(t, err)

	dependencies := strings.Index(out, "dependencies:\n")
	dependents := strings.Index(out, "dependents:\n")
	require.True(t, dependencies >= 0 && dependents > dependencies, out)
	assert.Contains(t, out[dependencies:dependents], "  google_project.dev\n")
	assert.Equal(t, "dependents:\n", out[dependents:])

	out, err = run(t, append([]string{"graph", "--resource", "google_project.dev"}, gcpFlags...)...)
	require.NoError(t, err)
	assert.Contains(t, out[strings.Index(out, "dependents:\n"):], "  google_compute_subnetwork_iam_member.dev_network_user\n")
}

func TestGraphOfUnknownResource(t *testing.T) {
	_, err := run(t, append([]string{"graph", "--resource", "google_project.staging"}, gcpFlags...)...)
	require.Error(t, err)
	assert.True(t, lzerrors.IsConfigurationError(err))
}

func TestPreviewJson(t *testing.T) {
	out, err := run(t, append([]string{"preview"}, gcpFlags...)...)
	require.NoError(t, err)

	preview := realize.Preview{}
	require.NoError(t, json.Unmarshal([]byte(out), &preview))
	assert.Len(t, preview.Outputs["project_numbers"], 5)
	assert.NotEmpty(t, preview.Waves)
}

func TestPreviewYaml(t *testing.T) {
	out, err := run(t, append([]string{"preview", "-o", "yaml"}, gcpFlags...)...)
	require.NoError(t, err)

	preview := realize.Preview{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &preview))
	assert.Contains(t, preview.Outputs["folder_ids"], "shared-services")
}

func TestMissingBillingAccount(t *testing.T) {
	flags := []string{
		"--cloud", "gcp",
		"--orgName", "acme",
		"--environments", "dev",
		"--landingZoneRootId", "folders/123456",
		"--configPath", "testdata-does-not-exist",
	}

	out, err := run(t, append([]string{"render"}, flags...)...)
	require.Error(t, err)
	assert.True(t, lzerrors.IsConfigurationError(err))
	assert.Empty(t, out)
}

func TestUnknownGraphFormat(t *testing.T) {
	_, err := run(t, append([]string{"graph", "--format", "svg"}, gcpFlags...)...)
	require.Error(t, err)
	assert.True(t, lzerrors.IsConfigurationError(err))
}

func TestVersion(t *testing.T) {
	out, err := run(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}
