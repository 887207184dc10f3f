package hcl

import (
	"strings"
	"sync"
	"testing"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/model/terraform"
)

func TestEncodeBlockWritesMetaArguments(t *testing.T) {
	block := EncodeBlock(terraform.TerraformAwsSnsTopic{
		Type:         "aws_sns_topic",
		Name:         "alerts",
		ResourceName: "acme-alerts",
	}, "resource", "provider.aws.shared_services", []string{"aws_organizations_account.shared_services"})

	hcl := BlockToString(block, WriteComponentComment("monitoring", "aws_sns_topic.alerts"))

	if !strings.HasPrefix(hcl, "# monitoring: aws_sns_topic.alerts\n") {
		t.Fatal("The component comment should have been written first, got " + hcl)
	}

	if !strings.Contains(hcl, "resource \"aws_sns_topic\" \"alerts\"") {
		t.Fatal("The block should have been written, got " + hcl)
	}

	if !strings.Contains(hcl, "provider") || !strings.Contains(hcl, "aws.shared_services") {
		t.Fatal("The provider should have been written without the graph prefix, got " + hcl)
	}

	if !strings.Contains(hcl, "[aws_organizations_account.shared_services]") {
		t.Fatal("The dependencies should have been written unquoted, got " + hcl)
	}
}

func TestWriteDependsOnSkipsEmpty(t *testing.T) {
	block := EncodeBlock(terraform.TerraformAwsSnsTopic{
		Type:         "aws_sns_topic",
		Name:         "alerts",
		ResourceName: "acme-alerts",
	}, "resource", "", nil)

	hcl := BlockToString(block, nil)

	if strings.Contains(hcl, "depends_on") || strings.Contains(hcl, "provider") {
		t.Fatal("No meta-arguments should have been written, got " + hcl)
	}
}

func TestNilListsAreNotWritten(t *testing.T) {
	block := EncodeBlock(terraform.TerraformGoogleComputeFirewall{
		Type:         "google_compute_firewall",
		Name:         "allow_iap",
		ResourceName: "acme-allow-iap",
		Project:      "acme-networking",
		Network:      "acme-vpc",
		Description:  "Allow IAP",
		SourceRanges: []string{"35.235.240.0/20"},
		Allow:        []terraform.TerraformGoogleFirewallAllow{{Protocol: "icmp"}},
	}, "resource", "", nil)

	hcl := BlockToString(block, nil)

	if strings.Contains(hcl, "null") {
		t.Fatal("Nil lists should not have been written, got " + hcl)
	}

	if strings.Contains(hcl, "target_tags") || strings.Contains(hcl, "ports") {
		t.Fatal("Unset attributes should have been left out, got " + hcl)
	}

	if !strings.Contains(hcl, "source_ranges = [\"35.235.240.0/20\"]") {
		t.Fatal("The source ranges should have been written, got " + hcl)
	}

	if !strings.Contains(hcl, "protocol = \"icmp\"") {
		t.Fatal("The nested block should have been kept, got " + hcl)
	}
}

func TestEncodeOutput(t *testing.T) {
	block := EncodeOutput(terraform.TerraformOutput{
		Name:        "project_numbers",
		Description: "Project numbers by logical name",
	}, "{\n    \"dev\" = \"${google_project.dev.number}\"\n  }")

	hcl := BlockToString(block, nil)

	if !strings.Contains(hcl, "output \"project_numbers\"") {
		t.Fatal("The output block should have been written, got " + hcl)
	}

	if !strings.Contains(hcl, "\"dev\" = \"${google_project.dev.number}\"") {
		t.Fatal("The value should have been written unquoted, got " + hcl)
	}
}

func TestConcurrentRendering(t *testing.T) {
	render := func() string {
		block := EncodeBlock(terraform.TerraformGoogleComputeFirewall{
			Type:         "google_compute_firewall",
			Name:         "allow_internal",
			ResourceName: "acme-allow-internal",
			Project:      "acme-networking",
			Network:      "acme-vpc",
			Description:  "Allow internal traffic",
			SourceRanges: []string{"10.0.0.0/8"},
			Allow:        []terraform.TerraformGoogleFirewallAllow{{Protocol: "tcp", Ports: []string{"0-65535"}}},
		}, "resource", "provider.google", []string{"google_project.networking"})
		return BlockToString(block, WriteComponentComment("networking", "google_compute_firewall.allow_internal"))
	}

	expected := render()

	var wg sync.WaitGroup
	results := make([]string, 20)
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = render()
		}()
	}
	wg.Wait()

	for _, result := range results {
		if result != expected {
			t.Fatal("Concurrent rendering should match sequential rendering, got " + result)
		}
	}
}
