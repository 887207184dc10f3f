package landingzone

import (
	"fmt"
	"sync"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/args"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/data"
)

// Container is an organizational container: a folder, organizational unit or management group.
type Container struct {
	// LogicalName is the name the container is known by in the landing zone, e.g. platform
	LogicalName string
	// Address is the graph address of the container resource
	Address string
	// Id is the deferred id children are created under
	Id data.Output
}

// Unit is a workload unit: a project, account or subscription.
type Unit struct {
	// LogicalName is the key of the unit in the aggregate outputs, e.g. shared-services or dev
	LogicalName string
	// Name is the name of the unit in the cloud, e.g. acme-dev
	Name string
	// Address is the graph address of the unit resource
	Address string
	// Container is the container the unit is bound to
	Container Container
	// Id is the deferred id of the unit
	Id data.Output
	// Number is the deferred numeric identifier of the unit
	Number data.Output
	// Scope is the deferred scope resources inside the unit are created in, like an Azure resource group name
	Scope data.Output
	// Provider is the address of the provider that creates resources inside the unit, if the cloud needs one
	Provider string
	// Values holds the deferred values that contribute to the aggregate outputs, keyed by output name
	Values map[string]data.Output
}

// Options change how the landing zone is rendered, without changing what it is made of.
type Options struct {
	Backend         string
	ProviderVersion string
}

// Zone is the state of a landing zone while it is being composed. Configuration is read once, before the
// zone is created, and every component reads it from here.
type Zone struct {
	Config    args.OrgConfig
	Options   Options
	Resources *data.ResourceDetailsCollection

	mu         sync.Mutex
	containers map[string]Container
	units      map[string]*Unit
}

// NewZone returns an empty zone. The configuration is copied.
func NewZone(config args.OrgConfig, options Options) *Zone {
	return &Zone{
		Config:     config.Copy(),
		Options:    options,
		Resources:  &data.ResourceDetailsCollection{},
		containers: map[string]Container{},
		units:      map[string]*Unit{},
	}
}

// Component returns a component that describes its resources into the zone.
func (z *Zone) Component(name string) *Component {
	return NewComponent(z.Resources, z.Config.Cloud, name)
}

// AddContainer records a container by its logical name.
func (z *Zone) AddContainer(container Container) {
	z.mu.Lock()
	defer z.mu.Unlock()
	z.containers[container.LogicalName] = container
}

// Container returns the container with the logical name.
func (z *Zone) Container(logicalName string) (Container, error) {
	z.mu.Lock()
	defer z.mu.Unlock()

	container, ok := z.containers[logicalName]
	if !ok {
		return Container{}, fmt.Errorf("container %s has not been described", logicalName)
	}
	return container, nil
}

// AddUnit records a unit by its logical name. A unit can only be added once.
func (z *Zone) AddUnit(unit *Unit) error {
	z.mu.Lock()
	defer z.mu.Unlock()

	if _, ok := z.units[unit.LogicalName]; ok {
		return fmt.Errorf("unit %s has already been described", unit.LogicalName)
	}

	if unit.Values == nil {
		unit.Values = map[string]data.Output{}
	}

	z.units[unit.LogicalName] = unit
	return nil
}

// Unit returns the unit with the logical name.
func (z *Zone) Unit(logicalName string) (*Unit, error) {
	z.mu.Lock()
	defer z.mu.Unlock()

	unit, ok := z.units[logicalName]
	if !ok {
		return nil, fmt.Errorf("unit %s has not been described", logicalName)
	}
	return unit, nil
}

// Units returns the units with the logical names, in the same order.
func (z *Zone) Units(logicalNames []string) ([]*Unit, error) {
	units := make([]*Unit, 0, len(logicalNames))
	for _, logicalName := range logicalNames {
		unit, err := z.Unit(logicalName)
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}
	return units, nil
}
