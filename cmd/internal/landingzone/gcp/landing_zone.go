package gcp

import (
	"context"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/args"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/data"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/landingzone"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/model/terraform"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/naming"
)

const (
	ProjectNumbersOutput = "project_numbers"
	ProjectIdsOutput     = "project_ids"
	FolderIdsOutput      = "folder_ids"

	// ContainerFolderIdsOutput holds the folders that only contain other folders, so it is not an
	// aggregate output keyed by unit.
	ContainerFolderIdsOutput = "container_folder_ids"

	providerType = "google"
)

// LandingZone builds a landing zone out of a folder hierarchy and projects, with a shared VPC owned by the
// networking project.
type LandingZone struct{}

func (l LandingZone) Name() string {
	return args.CloudGcp
}

func (l LandingZone) AggregateOutputs() []landingzone.AggregateOutput {
	return []landingzone.AggregateOutput{
		{Name: ProjectNumbersOutput, Description: "The number of every project in the landing zone, keyed by logical name"},
		{Name: ProjectIdsOutput, Description: "The id of every project in the landing zone, keyed by logical name"},
		{Name: FolderIdsOutput, Description: "The folder holding every project in the landing zone, keyed by logical name"},
	}
}

func (l LandingZone) Providers(ctx context.Context, zone *landingzone.Zone) error {
	component := zone.Component("providers")

	component.Terraform(terraform.TerraformConfig{}.CreateTerraformConfig(providerType, zone.Options.Backend, zone.Options.ProviderVersion))
	component.Provider(providerType, "", terraform.TerraformGoogleProvider{
		Type:   providerType,
		Region: zone.Config.Region,
	})

	return component.Err()
}

// Containers describes the landing zone root folder under the configured parent, and the platform and
// workloads folders under the root.
func (l LandingZone) Containers(ctx context.Context, zone *landingzone.Zone) error {
	component := zone.Component("landing-zone")

	root := folder(component, naming.Root, "Landing Zone Root", data.Literal(zone.Config.LandingZoneRootId))
	platform := folder(component, naming.Platform, "Platform", root.Id)
	workloads := folder(component, naming.Workloads, "Workloads", root.Id)

	zone.AddContainer(root)
	zone.AddContainer(platform)
	zone.AddContainer(workloads)

	outputs := zone.Component(landingzone.OutputsComponent)
	outputs.Output(ContainerFolderIdsOutput, "The root, platform and workloads folders of the landing zone", data.All(map[string]data.Output{
		naming.Root:      data.Reference(root.Address, "id"),
		naming.Platform:  data.Reference(platform.Address, "id"),
		naming.Workloads: data.Reference(workloads.Address, "id"),
	}))

	if err := component.Err(); err != nil {
		return err
	}
	return outputs.Err()
}

func folder(component *landingzone.Component, logicalName string, displayName string, parent data.Output) landingzone.Container {
	name := naming.ResourceName(logicalName)

	address := component.Resource(landingzone.Resource{
		Type: "google_folder",
		Name: name,
		Body: terraform.TerraformGoogleFolder{
			Type:               "google_folder",
			Name:               name,
			DisplayName:        displayName,
			Parent:             parent.Expression(),
			DeletionProtection: false,
		},
		References: []data.Output{parent},
		Attributes: []string{"name", "folder_id"},
	})

	return landingzone.Container{
		LogicalName: logicalName,
		Address:     address,
		Id:          data.Reference(address, "name"),
	}
}

// project describes the project of a unit in the folder. The project id is the unit name, which is
// validated with the configuration.
func project(zone *landingzone.Zone, component *landingzone.Component, logicalName string, container landingzone.Container, labels map[string]string) *landingzone.Unit {
	name := naming.ResourceName(logicalName)
	unitName := naming.UnitName(zone.Config.OrgName, logicalName)

	address := component.Resource(landingzone.Resource{
		Type: "google_project",
		Name: name,
		Body: terraform.TerraformGoogleProject{
			Type:              "google_project",
			Name:              name,
			ResourceName:      unitName,
			ProjectId:         unitName,
			FolderId:          container.Id.Expression(),
			BillingAccount:    zone.Config.BillingAccount,
			AutoCreateNetwork: false,
			Labels:            labels,
		},
		References: []data.Output{container.Id},
		Attributes: []string{"number", "project_id"},
	})

	number := data.Reference(address, "number")
	projectId := data.Reference(address, "project_id")

	return &landingzone.Unit{
		LogicalName: logicalName,
		Name:        unitName,
		Address:     address,
		Container:   container,
		Id:          projectId,
		Number:      number,
		Scope:       projectId,
		Values: map[string]data.Output{
			ProjectNumbersOutput: number,
			ProjectIdsOutput:     projectId,
			FolderIdsOutput:      data.Reference(container.Address, "id"),
		},
	}
}

// service enables an API in the unit's project and returns the address of the service.
func service(component *landingzone.Component, unit *landingzone.Unit, api string, shortName string, disableDependentServices bool) string {
	name := naming.ResourceName(unit.LogicalName) + "_" + shortName

	var disableDependent *bool
	if disableDependentServices {
		disableDependent = &disableDependentServices
	}

	return component.Resource(landingzone.Resource{
		Type: "google_project_service",
		Name: name,
		Body: terraform.TerraformGoogleProjectService{
			Type:                     "google_project_service",
			Name:                     name,
			Project:                  unit.Id.Expression(),
			Service:                  api,
			DisableOnDestroy:         false,
			DisableDependentServices: disableDependent,
		},
		References: []data.Output{unit.Id},
	})
}

// workloadUnit describes the folder of a unit under the parent container, and the project in the folder.
func workloadUnit(zone *landingzone.Zone, component *landingzone.Component, parentName string, logicalName string, displayName string, labels map[string]string) (*landingzone.Unit, error) {
	parent, err := zone.Container(parentName)
	if err != nil {
		return nil, err
	}

	container := folder(component, logicalName, displayName, parent.Id)
	return project(zone, component, logicalName, container, labels), nil
}
