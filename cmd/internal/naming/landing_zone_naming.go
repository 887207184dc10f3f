package naming

import (
	"strings"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/sanitizer"
)

// The logical names of the platform units. Environments use their configured name as their logical name.
const (
	Networking     = "networking"
	SharedServices = "shared-services"
	Security       = "security"
	LogArchive     = "log-archive"
	Platform       = "platform"
	Workloads      = "workloads"
	Root           = "root"
)

// Names of the shared network resources. The GCP shared services subnet and the AWS VPC use Shared, and
// the Azure hub virtual network uses Hub.
const (
	Hub    = "hub"
	Shared = "shared"
)

// ReservedNames can not be used as environment names because they would collide with the platform units,
// the containers or the shared network resources.
var ReservedNames = []string{Networking, SharedServices, Security, LogArchive, Platform, Workloads, Root, Hub, Shared}

// PlatformUnits are the units that exist in every landing zone, regardless of the environments.
var PlatformUnits = []string{Networking, SharedServices, Security}

// LogicalNames returns the keys of the aggregate outputs: the platform units followed by every environment.
func LogicalNames(environments []string) []string {
	names := make([]string, 0, len(PlatformUnits)+len(environments))
	names = append(names, PlatformUnits...)
	names = append(names, environments...)
	return names
}

// OrgSlug returns the lower case form of the organization name used in cloud resource names.
func OrgSlug(orgName string) string {
	return strings.ToLower(strings.TrimSpace(orgName))
}

// UnitName is the cloud name of a workload unit, e.g. acme-dev. For GCP this is also the project id.
func UnitName(orgName string, logicalName string) string {
	return OrgSlug(orgName) + "-" + logicalName
}

// ResourceName is the Terraform name of the resources belonging to the logical unit, e.g. shared_services.
func ResourceName(logicalName string) string {
	return sanitizer.SanitizeName(logicalName)
}

// AccountEmail is the root email address of an AWS account, using plus addressing to give every account
// its own address in the same mailbox, e.g. cloud+acme-dev@example.org.
func AccountEmail(localPart string, orgName string, logicalName string, domain string) string {
	return localPart + "+" + UnitName(orgName, logicalName) + "@" + domain
}
