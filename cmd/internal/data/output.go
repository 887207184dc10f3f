package data

import (
	"fmt"
	"sort"
	"strings"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/lzerrors"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"
)

type outputPart struct {
	literal   string
	address   string
	attribute string
}

func (p outputPart) isReference() bool {
	return p.address != ""
}

// Output is a value that may only be known once Terraform has realized the resources it references.
// It is made up of literal text and references to attributes of other resources. Terraform resolves
// the references when the configuration is applied, which is what orders the creation of resources.
type Output struct {
	parts []outputPart
}

// Literal returns an Output whose value is known up front.
func Literal(value string) Output {
	if value == "" {
		return Output{}
	}
	return Output{parts: []outputPart{{literal: value}}}
}

// Reference returns an Output that resolves to the attribute of the resource with the given address,
// e.g. Reference("google_project.dev", "number").
func Reference(address string, attribute string) Output {
	return Output{parts: []outputPart{{address: address, attribute: attribute}}}
}

// Interpolate concatenates strings and Outputs into a single Output, in the spirit of a HCL template.
// Any other value is formatted with fmt.Sprint and treated as a literal.
func Interpolate(values ...any) Output {
	result := Output{}
	for _, value := range values {
		switch v := value.(type) {
		case Output:
			result.parts = append(result.parts, v.parts...)
		case string:
			if v != "" {
				result.parts = append(result.parts, outputPart{literal: v})
			}
		default:
			result.parts = append(result.parts, outputPart{literal: fmt.Sprint(v)})
		}
	}
	return result
}

// IsZero returns true if the Output has no content at all.
func (o Output) IsZero() bool {
	return len(o.parts) == 0
}

// Dependencies returns the addresses of the resources this Output is waiting on.
func (o Output) Dependencies() mapset.Set[string] {
	deps := mapset.NewThreadUnsafeSet[string]()
	for _, p := range o.parts {
		if p.isReference() {
			deps.Add(p.address)
		}
	}
	return deps
}

// Expression returns the Output as the body of a HCL template string.
// Literal template introducers are escaped so they survive Terraform's own interpolation.
func (o Output) Expression() string {
	var sb strings.Builder
	for _, p := range o.parts {
		if p.isReference() {
			sb.WriteString("${" + p.address + "." + p.attribute + "}")
		} else {
			sb.WriteString(strings.ReplaceAll(p.literal, "${", "$${"))
		}
	}
	return sb.String()
}

// String is used for logging.
func (o Output) String() string {
	return o.Expression()
}

// Resolve returns the concrete value of the Output using the attributes recorded in state.
// A DependencyError is returned if any referenced resource has not been realized.
func (o Output) Resolve(state *State) (string, error) {
	var sb strings.Builder
	missing := []string{}
	for _, p := range o.parts {
		if !p.isReference() {
			sb.WriteString(p.literal)
			continue
		}

		value, ok := state.Get(p.address, p.attribute)
		if !ok {
			missing = append(missing, p.address+"."+p.attribute)
			continue
		}
		sb.WriteString(value)
	}

	if len(missing) != 0 {
		return "", &lzerrors.DependencyError{Resource: o.Expression(), Missing: missing}
	}

	return sb.String(), nil
}

// DependenciesOf returns the union of the dependencies of all the supplied outputs.
func DependenciesOf(outputs ...Output) mapset.Set[string] {
	deps := mapset.NewThreadUnsafeSet[string]()
	for _, o := range outputs {
		deps = deps.Union(o.Dependencies())
	}
	return deps
}

// OutputMap is the join of a number of Outputs. It can only be resolved once every entry can be resolved,
// so it acts as a barrier over everything it references rather than a running accumulator.
type OutputMap struct {
	entries map[string]Output
}

// All joins the supplied outputs into an OutputMap. The map is copied, so later changes to entries
// have no effect.
func All(entries map[string]Output) OutputMap {
	copied := make(map[string]Output, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	return OutputMap{entries: copied}
}

// Keys returns the sorted keys of the map.
func (m OutputMap) Keys() []string {
	keys := lo.Keys(m.entries)
	sort.Strings(keys)
	return keys
}

// Get returns the Output for the key.
func (m OutputMap) Get(key string) (Output, bool) {
	value, ok := m.entries[key]
	return value, ok
}

// Len returns the number of entries.
func (m OutputMap) Len() int {
	return len(m.entries)
}

// Dependencies returns the addresses of every resource referenced by any entry.
func (m OutputMap) Dependencies() mapset.Set[string] {
	return DependenciesOf(lo.Values(m.entries)...)
}

// Expression returns the map as a HCL object expression with one quoted template per entry.
func (m OutputMap) Expression() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, key := range m.Keys() {
		sb.WriteString("    \"" + key + "\" = \"" + strings.ReplaceAll(m.entries[key].Expression(), "\"", "\\\"") + "\"\n")
	}
	sb.WriteString("  }")
	return sb.String()
}

// Resolve returns the concrete values of every entry. Nothing is returned unless every entry resolves.
func (m OutputMap) Resolve(state *State) (map[string]string, error) {
	result := make(map[string]string, len(m.entries))
	missing := []string{}
	for _, key := range m.Keys() {
		value, err := m.entries[key].Resolve(state)
		if err != nil {
			missing = append(missing, key)
			continue
		}
		result[key] = value
	}

	if len(missing) != 0 {
		return nil, &lzerrors.DependencyError{Resource: "output map", Missing: missing}
	}

	return result, nil
}
