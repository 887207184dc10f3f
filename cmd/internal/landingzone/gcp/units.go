package gcp

import (
	"context"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/data"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/landingzone"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/model/terraform"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/naming"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/strutil"
)

const computeApi = "compute.googleapis.com"

// SharedServices describes the shared services project, which also hosts the monitoring of the landing zone.
func (l LandingZone) SharedServices(ctx context.Context, zone *landingzone.Zone) (*landingzone.Unit, error) {
	component := zone.Component(naming.SharedServices)

	unit, err := workloadUnit(zone, component, naming.Platform, naming.SharedServices, "Shared Services", map[string]string{
		"purpose": "shared-services",
	})
	if err != nil {
		return nil, err
	}

	service(component, unit, computeApi, "compute", false)

	if err := component.Err(); err != nil {
		return nil, err
	}

	if err := l.Monitoring(ctx, zone, DefaultMonitoring(zone, unit)); err != nil {
		return nil, err
	}

	return unit, nil
}

// Security describes the security project, with a key ring for encryption keys and a topic that
// security notifications are published to.
func (l LandingZone) Security(ctx context.Context, zone *landingzone.Zone) (*landingzone.Unit, error) {
	component := zone.Component(naming.Security)
	org := zone.Config.OrgName

	unit, err := workloadUnit(zone, component, naming.Platform, naming.Security, "Security", map[string]string{
		"purpose": "platform-security",
	})
	if err != nil {
		return nil, err
	}

	kmsApi := service(component, unit, "cloudkms.googleapis.com", "kms", false)
	pubsubApi := service(component, unit, "pubsub.googleapis.com", "pubsub", false)
	service(component, unit, "binaryauthorization.googleapis.com", "binary_authorization", false)
	service(component, unit, "websecurityscanner.googleapis.com", "web_security_scanner", false)

	component.Resource(landingzone.Resource{
		Type: "google_kms_key_ring",
		Name: "security",
		Body: terraform.TerraformGoogleKmsKeyRing{
			Type:         "google_kms_key_ring",
			Name:         "security",
			ResourceName: org + "-keyring",
			Project:      unit.Id.Expression(),
			Location:     zone.Config.Region,
		},
		References: []data.Output{unit.Id},
		DependsOn:  []string{kmsApi},
	})

	component.Resource(landingzone.Resource{
		Type: "google_pubsub_topic",
		Name: "security_notifications",
		Body: terraform.TerraformGooglePubsubTopic{
			Type:         "google_pubsub_topic",
			Name:         "security_notifications",
			ResourceName: org + "-security-notifications",
			Project:      unit.Id.Expression(),
			Labels: map[string]string{
				"purpose": "landing-zone-security",
			},
		},
		References: []data.Output{unit.Id},
		DependsOn:  []string{pubsubApi},
	})

	return unit, component.Err()
}

// Environment describes the folder of the environment under the workloads folder and the project in it.
func (l LandingZone) Environment(ctx context.Context, zone *landingzone.Zone, name string, position int) (*landingzone.Unit, error) {
	component := zone.Component("environment-" + name)

	unit, err := workloadUnit(zone, component, naming.Workloads, name, strutil.Capitalize(name), map[string]string{
		"environment": name,
		"purpose":     "workloads",
	})
	if err != nil {
		return nil, err
	}

	service(component, unit, computeApi, "compute", true)

	return unit, component.Err()
}
