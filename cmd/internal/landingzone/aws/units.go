package aws

import (
	"context"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/landingzone"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/naming"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/strutil"
)

// platformAccount describes an account of a platform unit directly under the platform organizational unit.
func platformAccount(zone *landingzone.Zone, component *landingzone.Component, logicalName string) (*landingzone.Unit, error) {
	platform, err := zone.Container(naming.Platform)
	if err != nil {
		return nil, err
	}

	return account(zone, component, logicalName, platform), nil
}

// SharedServices describes the shared services account, which also hosts the monitoring of the landing zone.
func (l LandingZone) SharedServices(ctx context.Context, zone *landingzone.Zone) (*landingzone.Unit, error) {
	component := zone.Component(naming.SharedServices)

	unit, err := platformAccount(zone, component, naming.SharedServices)
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

// Security describes the security account with the services that audit the landing zone, along with the log
// archive account and the Control Tower landing zone that uses them both.
func (l LandingZone) Security(ctx context.Context, zone *landingzone.Zone) (*landingzone.Unit, error) {
	component := zone.Component(naming.Security)

	unit, err := platformAccount(zone, component, naming.Security)
	if err != nil {
		return nil, err
	}

	logArchive, err := platformAccount(zone, component, naming.LogArchive)
	if err != nil {
		return nil, err
	}

	if err := component.Err(); err != nil {
		return nil, err
	}

	if err := l.ControlTower(ctx, zone, unit, logArchive); err != nil {
		return nil, err
	}

	if err := l.SecurityServices(ctx, zone, unit); err != nil {
		return nil, err
	}

	return unit, nil
}

// Environment describes the organizational unit of the environment under the workloads organizational unit
// and the account in it.
func (l LandingZone) Environment(ctx context.Context, zone *landingzone.Zone, name string, position int) (*landingzone.Unit, error) {
	component := zone.Component("environment-" + name)

	workloads, err := zone.Container(naming.Workloads)
	if err != nil {
		return nil, err
	}

	container := organizationalUnit(zone, component, name, strutil.Capitalize(name), workloads.Id)
	unit := account(zone, component, name, container)

	return unit, component.Err()
}
