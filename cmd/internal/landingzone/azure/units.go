package azure

import (
	"context"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/landingzone"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/naming"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/strutil"
)

func platformSubscription(zone *landingzone.Zone, component *landingzone.Component, logicalName string) (*landingzone.Unit, error) {
	platform, err := zone.Container(naming.Platform)
	if err != nil {
		return nil, err
	}

	return subscription(zone, component, logicalName, platform), nil
}

// SharedServices describes the shared services subscription, which also hosts the monitoring of the landing zone.
func (l LandingZone) SharedServices(ctx context.Context, zone *landingzone.Zone) (*landingzone.Unit, error) {
	component := zone.Component(naming.SharedServices)

	unit, err := platformSubscription(zone, component, naming.SharedServices)
	if err != nil {
		return nil, err
	}

	if err := component.Err(); err != nil {
		return nil, err
	}

	if err := l.Monitoring(ctx, zone, DefaultMonitoring(zone, unit)); err != nil {
		return nil, err
	}

	return unit, nil
}

// Security describes the security subscription with Defender for Cloud, the governance policies and a key vault.
func (l LandingZone) Security(ctx context.Context, zone *landingzone.Zone) (*landingzone.Unit, error) {
	component := zone.Component(naming.Security)

	unit, err := platformSubscription(zone, component, naming.Security)
	if err != nil {
		return nil, err
	}

	if err := component.Err(); err != nil {
		return nil, err
	}

	if err := l.SecurityServices(ctx, zone, unit); err != nil {
		return nil, err
	}

	return unit, nil
}

// Environment describes the management group of the environment under the landing zones management group,
// and the subscription in it.
func (l LandingZone) Environment(ctx context.Context, zone *landingzone.Zone, name string, position int) (*landingzone.Unit, error) {
	component := zone.Component("environment-" + name)

	workloads, err := zone.Container(naming.Workloads)
	if err != nil {
		return nil, err
	}

	container, err := managementGroup(component, name, strutil.Capitalize(name), naming.UnitName(zone.Config.OrgName, name),
		managementGroupLevel{Container: workloads, depth: containerDepths[naming.Workloads]})
	if err != nil {
		return nil, err
	}

	unit := subscription(zone, component, name, container.Container)

	return unit, component.Err()
}
