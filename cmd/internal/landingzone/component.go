package landingzone

import (
	"strings"
	"sync"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/data"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/hcl"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/model/terraform"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

const (
	ResourceTypeProvider  = "provider"
	ResourceTypeOutput    = "output"
	ResourceTypeTerraform = "terraform"

	// TerraformAddress is the address of the terraform settings block.
	TerraformAddress = "terraform"
)

// Resource is a Terraform resource or data source described by a component.
type Resource struct {
	// Type is the Terraform resource type, e.g. google_project
	Type string
	// Name is the Terraform name of the resource, e.g. shared_services
	Name string
	// Body is a struct tagged for gohcl with type and name labels
	Body any
	// References are the deferred values used to build the body. Each one becomes a graph edge.
	References []data.Output
	// DependsOn lists the addresses of resources that must be created first but are not referenced
	DependsOn []string
	// Provider is the address of the aliased provider the resource is created with, if any
	Provider string
	// Attributes are the attributes other resources read from this one, in addition to id
	Attributes []string
}

// Component describes the resources of one landing zone component into the shared graph. Every resource
// a component describes is written to the same file.
//
// The first error is recorded and every later call is skipped, so a component can describe its resources
// without checking each one, and check Err once at the end.
type Component struct {
	Cloud     string
	Name      string
	FileName  string
	resources *data.ResourceDetailsCollection

	mu  sync.Mutex
	err error
}

// NewComponent returns a component that adds its resources to the collection.
func NewComponent(resources *data.ResourceDetailsCollection, cloud string, name string) *Component {
	return &Component{
		Cloud:     cloud,
		Name:      name,
		FileName:  strings.ReplaceAll(name, "-", "_") + ".tf",
		resources: resources,
	}
}

// Err returns the first error encountered while describing resources.
func (c *Component) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *Component) add(resource data.ResourceDetails) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return
	}

	c.err = c.resources.AddResource(resource)
}

// Resource describes a resource block and returns its address.
func (c *Component) Resource(resource Resource) string {
	address := resource.Type + "." + resource.Name
	c.describe(address, resource, "resource")
	return address
}

// Data describes a data block and returns its address.
func (c *Component) Data(resource Resource) string {
	address := "data." + resource.Type + "." + resource.Name
	c.describe(address, resource, "data")
	return address
}

func (c *Component) describe(address string, resource Resource, blockType string) {
	dependencies := data.DependenciesOf(resource.References...)
	dependencies.Append(resource.DependsOn...)
	if resource.Provider != "" {
		dependencies.Add(resource.Provider)
	}

	dependsOn := lo.Uniq(resource.DependsOn)
	slices.Sort(dependsOn)

	body := resource.Body
	provider := resource.Provider

	c.add(data.ResourceDetails{
		Id:           address,
		ResourceType: resource.Type,
		Component:    c.Name,
		FileName:     c.FileName,
		Dependencies: dependencies,
		Attributes:   append([]string{"id"}, resource.Attributes...),
		ToHcl: func() (string, error) {
			block := hcl.EncodeBlock(body, blockType, provider, dependsOn)
			return hcl.BlockToString(block, hcl.WriteComponentComment(c.Name, address)), nil
		},
	})
}

// Provider describes a provider block. The address is provider.<type> for the default provider and
// provider.<type>.<alias> for an aliased one. Resources only take an edge to aliased providers.
func (c *Component) Provider(providerType string, alias string, body any, references ...data.Output) string {
	address := ProviderAddress(providerType, alias)

	c.add(data.ResourceDetails{
		Id:           address,
		ResourceType: ResourceTypeProvider,
		Component:    c.Name,
		FileName:     c.FileName,
		Dependencies: data.DependenciesOf(references...),
		ToHcl: func() (string, error) {
			block := hcl.EncodeBlock(body, "provider", "", nil)
			return hcl.BlockToString(block, hcl.WriteComponentComment(c.Name, address)), nil
		},
	})

	return address
}

// Terraform describes the terraform settings block.
func (c *Component) Terraform(config terraform.TerraformConfig) string {
	c.add(data.ResourceDetails{
		Id:           TerraformAddress,
		ResourceType: ResourceTypeTerraform,
		Component:    c.Name,
		FileName:     c.FileName,
		ToHcl: func() (string, error) {
			block := hcl.EncodeBlock(config, "terraform", "", nil)
			return hcl.BlockToString(block, nil), nil
		},
	})

	return TerraformAddress
}

// Output describes an output block whose value is the join of every entry of the map. The output depends
// on every resource any entry references.
func (c *Component) Output(name string, description string, value data.OutputMap) string {
	address := OutputAddress(name)

	c.add(data.ResourceDetails{
		Id:           address,
		ResourceType: ResourceTypeOutput,
		Component:    c.Name,
		FileName:     c.FileName,
		Dependencies: value.Dependencies(),
		ToHcl: func() (string, error) {
			block := hcl.EncodeOutput(terraform.TerraformOutput{
				Name:        name,
				Description: description,
			}, value.Expression())
			return hcl.BlockToString(block, hcl.WriteComponentComment(c.Name, address)), nil
		},
	})

	return address
}

// ProviderAddress returns the graph address of a provider, e.g. provider.aws.networking.
func ProviderAddress(providerType string, alias string) string {
	if alias == "" {
		return "provider." + providerType
	}
	return "provider." + providerType + "." + alias
}

// OutputAddress returns the graph address of an output, e.g. output.project_numbers.
func OutputAddress(name string) string {
	return "output." + name
}
