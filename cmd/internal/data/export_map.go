package data

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/lzerrors"
	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type ToHcl func() (string, error)

// ResourceDetails is a node in the landing zone dependency graph. The process works like this:
// 1. A component describes a resource, capturing the addresses of every resource it references in Dependencies.
// 2. The resource is added to the ResourceDetailsCollection, which rejects it if any dependency has not been added.
// 3. Once all components have described their resources, the collection is ordered topologically.
// 4. ToHcl is called on each resource, generating HCL that references the other resources by address.
type ResourceDetails struct {
	// Id is the Terraform address of the resource, e.g. google_project.dev. It is also the idempotency key.
	Id string
	// ResourceType is the Terraform resource type, or "provider" and "output" for those blocks
	ResourceType string
	// Component is the landing zone component that owns the resource, e.g. networking or security
	Component string
	// FileName is the file the resource is written to
	FileName string
	// Dependencies are the addresses of the resources that must be realized before this one
	Dependencies mapset.Set[string]
	// Attributes are the attributes Terraform exports for the resource, used when simulating realization
	Attributes []string
	// ToHcl is a function that generates the HCL for the resource
	ToHcl ToHcl
}

// DependencyList returns the sorted dependencies of the resource.
func (r ResourceDetails) DependencyList() []string {
	if r.Dependencies == nil {
		return []string{}
	}
	deps := r.Dependencies.ToSlice()
	sort.Strings(deps)
	return deps
}

// ResourceDetailsCollection is the dependency graph of a landing zone. The zero value is ready to use,
// and it is safe for concurrent use.
type ResourceDetailsCollection struct {
	mu        sync.RWMutex
	resources map[string]ResourceDetails
}

// AddResource adds resources to the collection. Every dependency of a resource must already be in the
// collection (or be added earlier in the same call), which means a resource can never be described before
// the resources it references. Adding the same address twice is an error.
func (c *ResourceDetailsCollection) AddResource(resource ...ResourceDetails) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.resources == nil {
		c.resources = map[string]ResourceDetails{}
	}

	for _, r := range resource {
		if r.Id == "" {
			return fmt.Errorf("resource of type %s has no address", r.ResourceType)
		}

		if _, ok := c.resources[r.Id]; ok {
			return fmt.Errorf("resource %s has already been described", r.Id)
		}

		if r.Dependencies == nil {
			r.Dependencies = mapset.NewThreadUnsafeSet[string]()
		}

		missing := []string{}
		for _, dep := range r.DependencyList() {
			if _, ok := c.resources[dep]; !ok {
				missing = append(missing, dep)
			}
		}

		if len(missing) != 0 {
			return &lzerrors.DependencyError{Resource: r.Id, Missing: missing}
		}

		zap.L().Debug("Described " + r.Id)

		c.resources[r.Id] = r
	}

	return nil
}

// HasResource returns true if a resource with the address exists in the collection
func (c *ResourceDetailsCollection) HasResource(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.resources[id]
	return ok
}

// GetResource returns the resource with the address.
func (c *ResourceDetailsCollection) GetResource(id string) (ResourceDetails, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	r, ok := c.resources[id]
	return r, ok
}

// GetAllResource returns the resources in the collection of type resourceType, sorted by address
func (c *ResourceDetailsCollection) GetAllResource(resourceType string) []ResourceDetails {
	resources := []ResourceDetails{}
	for _, r := range c.Resources() {
		if r.ResourceType == resourceType {
			resources = append(resources, r)
		}
	}

	return resources
}

// Resources returns every resource in the collection, sorted by address
func (c *ResourceDetailsCollection) Resources() []ResourceDetails {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := maps.Keys(c.resources)
	slices.Sort(ids)

	resources := make([]ResourceDetails, 0, len(ids))
	for _, id := range ids {
		resources = append(resources, c.resources[id])
	}

	return resources
}

// Len returns the number of resources in the collection
func (c *ResourceDetailsCollection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.resources)
}

// Dependents returns the sorted addresses of the resources that depend directly on the resource with the address
func (c *ResourceDetailsCollection) Dependents(id string) []string {
	dependents := []string{}
	for _, r := range c.Resources() {
		if r.Dependencies.Contains(id) {
			dependents = append(dependents, r.Id)
		}
	}
	return dependents
}

// Order returns the resources in topological order using Kahn's algorithm. Ties are broken by address,
// so the order is stable regardless of the order in which concurrent components added their resources.
func (c *ResourceDetailsCollection) Order() ([]ResourceDetails, error) {
	waves, err := c.Waves()
	if err != nil {
		return nil, err
	}

	ordered := []ResourceDetails{}
	for _, wave := range waves {
		ordered = append(ordered, wave...)
	}

	return ordered, nil
}

// Waves groups the resources into levels. Every resource in a wave depends only on resources in earlier
// waves, so all the resources in a wave can be realized in parallel.
func (c *ResourceDetailsCollection) Waves() ([][]ResourceDetails, error) {
	resources := c.Resources()

	inDegree := map[string]int{}
	dependents := map[string][]string{}
	byId := map[string]ResourceDetails{}

	for _, r := range resources {
		byId[r.Id] = r
		inDegree[r.Id] = 0
	}

	for _, r := range resources {
		for _, dep := range r.DependencyList() {
			if _, ok := byId[dep]; !ok {
				return nil, &lzerrors.DependencyError{Resource: r.Id, Missing: []string{dep}}
			}
			inDegree[r.Id]++
			dependents[dep] = append(dependents[dep], r.Id)
		}
	}

	current := []string{}
	for id, degree := range inDegree {
		if degree == 0 {
			current = append(current, id)
		}
	}

	waves := [][]ResourceDetails{}
	processed := 0
	for len(current) != 0 {
		slices.Sort(current)

		wave := make([]ResourceDetails, 0, len(current))
		next := []string{}
		for _, id := range current {
			wave = append(wave, byId[id])
			processed++

			for _, dependent := range dependents[id] {
				inDegree[dependent]--
				if inDegree[dependent] == 0 {
					next = append(next, dependent)
				}
			}
		}

		waves = append(waves, wave)
		current = next
	}

	if processed != len(resources) {
		cycle := []string{}
		for id, degree := range inDegree {
			if degree > 0 {
				cycle = append(cycle, id)
			}
		}
		slices.Sort(cycle)
		return nil, fmt.Errorf("circular dependency detected between resources: %s", strings.Join(cycle, ", "))
	}

	return waves, nil
}
