package network

import (
	"fmt"
	"net/netip"

	"github.com/samber/lo"
)

const (
	// AddressSpace is the private range every landing zone network is carved from.
	AddressSpace = "10.0.0.0/8"
	// SharedAddressSpace is the range of the shared network, holding every primary subnet.
	SharedAddressSpace = "10.0.0.0/16"
	// SharedServicesSubnet is the primary subnet of the shared services unit.
	SharedServicesSubnet = "10.0.1.0/24"
	// HubAddressSpace is used by clouds that route through a hub network, leaving 10.0.1.0/24 and up for consumers.
	HubAddressSpace = "10.0.0.0/24"
	// HubGatewaySubnet and HubFirewallSubnet split the hub address space.
	HubGatewaySubnet  = "10.0.0.0/26"
	HubFirewallSubnet = "10.0.0.64/26"
	// IapAddressSpace is the range Google Identity-Aware Proxy connects from.
	IapAddressSpace = "35.235.240.0/20"

	PodsRangeName     = "pods"
	ServicesRangeName = "services"

	firstEnvironmentIndex = 2
	indexStep             = 2
	maxIndex              = 254
)

// MaxEnvironments is the number of environments that can be allocated address ranges before the
// second octet runs out.
const MaxEnvironments = (maxIndex-firstEnvironmentIndex)/indexStep + 1

// SubnetPlan holds the address ranges allocated to one consumer of the shared network.
type SubnetPlan struct {
	// Consumer is the logical name of the unit that uses the subnet
	Consumer string
	// Primary is the range of the subnet itself
	Primary string
	// Pods is the secondary range for container pods, empty for shared services
	Pods string
	// Services is the secondary range for container services, empty for shared services
	Services string
}

// Ranges returns every range allocated to the consumer.
func (s SubnetPlan) Ranges() []string {
	return lo.Filter([]string{s.Primary, s.Pods, s.Services}, func(item string, index int) bool {
		return item != ""
	})
}

// EnvironmentPlan allocates the ranges of the environment at the zero based position in the configured
// environment list. The environment at position p uses index i = 2 + 2p: the primary range 10.0.i.0/24, pods
// 10.i.0.0/16 and services 10.(i+1).0.0/16. The same environment list always produces the same ranges.
func EnvironmentPlan(name string, position int) (SubnetPlan, error) {
	if position < 0 || position >= MaxEnvironments {
		return SubnetPlan{}, fmt.Errorf("environment %s at position %d is outside the %d environments that can be allocated address ranges", name, position, MaxEnvironments)
	}

	index := firstEnvironmentIndex + indexStep*position

	return SubnetPlan{
		Consumer: name,
		Primary:  fmt.Sprintf("10.0.%d.0/24", index),
		Pods:     fmt.Sprintf("10.%d.0.0/16", index),
		Services: fmt.Sprintf("10.%d.0.0/16", index+1),
	}, nil
}

// SharedServicesPlan returns the ranges of the shared services unit.
func SharedServicesPlan(name string) SubnetPlan {
	return SubnetPlan{
		Consumer: name,
		Primary:  SharedServicesSubnet,
	}
}

// Plan allocates ranges to the shared services unit and every environment, in that order.
func Plan(sharedServices string, environments []string) ([]SubnetPlan, error) {
	plans := []SubnetPlan{SharedServicesPlan(sharedServices)}
	for position, environment := range environments {
		plan, err := EnvironmentPlan(environment, position)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	if err := ValidateNoOverlap(plans, HubAddressSpace); err != nil {
		return nil, err
	}

	return plans, nil
}

// ValidateNoOverlap returns an error if any range allocated to a consumer overlaps with another consumer's
// range, or with any of the reserved ranges.
func ValidateNoOverlap(plans []SubnetPlan, reserved ...string) error {
	type owned struct {
		owner  string
		prefix netip.Prefix
	}

	all := []owned{}
	for _, r := range reserved {
		prefix, err := netip.ParsePrefix(r)
		if err != nil {
			return err
		}
		all = append(all, owned{owner: "reserved", prefix: prefix})
	}

	for _, plan := range plans {
		for _, r := range plan.Ranges() {
			prefix, err := netip.ParsePrefix(r)
			if err != nil {
				return err
			}
			all = append(all, owned{owner: plan.Consumer, prefix: prefix})
		}
	}

	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			if all[i].owner == all[j].owner {
				continue
			}

			if all[i].prefix.Overlaps(all[j].prefix) {
				return fmt.Errorf("range %s of %s overlaps range %s of %s", all[i].prefix, all[i].owner, all[j].prefix, all[j].owner)
			}
		}
	}

	return nil
}
