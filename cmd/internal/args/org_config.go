package args

import (
	"errors"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/lzerrors"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/naming"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/network"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/regexes"
	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/strutil"
	"github.com/brunoga/deep"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"
	"k8s.io/utils/strings/slices"
)

const (
	CloudGcp   = "gcp"
	CloudAws   = "aws"
	CloudAzure = "azure"

	managementGroupResourceType = "Microsoft.Management/managementGroups"
	managementGroupIdPrefix     = "/providers/" + managementGroupResourceType + "/"
)

// Clouds are the supported values of the cloud setting.
var Clouds = []string{CloudGcp, CloudAws, CloudAzure}

var defaultRegions = map[string]string{
	CloudGcp:   "us-central1",
	CloudAws:   "us-east-1",
	CloudAzure: "eastus",
}

// OrgConfig is the validated description of the organization a landing zone is composed for.
// Components receive a copy and never modify it.
type OrgConfig struct {
	Cloud             string
	OrgName           string
	Environments      []string
	BillingAccount    string
	LandingZoneRootId string
	Region            string
	AllowedRegions    []string
	EmailLocalPart    string
	EmailDomain       string
	SecurityEmail     string
}

// OrgConfig builds the organization configuration from the arguments, applying the defaults of the
// optional settings. The required settings have no defaults.
func (arguments *Arguments) OrgConfig() OrgConfig {
	cloud := strings.ToLower(strings.TrimSpace(arguments.Cloud))
	orgName := naming.OrgSlug(arguments.OrgName)
	region := strutil.DefaultIfEmpty(strings.TrimSpace(arguments.Region), defaultRegions[cloud])

	environments := lo.Map(arguments.Environments, func(item string, index int) string {
		return strings.TrimSpace(item)
	})

	allowedRegions := lo.Filter(arguments.AllowedRegions, func(item string, index int) bool {
		return strings.TrimSpace(item) != ""
	})
	if len(allowedRegions) == 0 && region != "" {
		allowedRegions = []string{region}
	}

	securityEmail := arguments.SecurityEmail
	if securityEmail == "" && orgName != "" {
		securityEmail = "security@" + orgName + ".com"
	}

	landingZoneRootId := strings.TrimSpace(arguments.LandingZoneRootId)
	if cloud == CloudAzure && landingZoneRootId != "" && !strings.HasPrefix(landingZoneRootId, "/") {
		landingZoneRootId = managementGroupIdPrefix + landingZoneRootId
	}

	return OrgConfig{
		Cloud:             cloud,
		OrgName:           orgName,
		Environments:      environments,
		BillingAccount:    strings.TrimSpace(arguments.BillingAccount),
		LandingZoneRootId: landingZoneRootId,
		Region:            region,
		AllowedRegions:    allowedRegions,
		EmailLocalPart:    strings.TrimSpace(arguments.EmailLocalPart),
		EmailDomain:       strings.TrimSpace(arguments.EmailDomain),
		SecurityEmail:     securityEmail,
	}
}

// Copy returns a deep copy of the configuration, so a component can not change what another one sees.
func (c OrgConfig) Copy() OrgConfig {
	return deep.MustCopy(c)
}

// LogicalNames returns the platform units followed by every environment.
func (c OrgConfig) LogicalNames() []string {
	return naming.LogicalNames(c.Environments)
}

// Validate checks the configuration before any resource is described. Every problem is reported, each one
// as a ConfigurationError.
func (c OrgConfig) Validate() error {
	var err error

	if !slices.Contains(Clouds, c.Cloud) {
		err = errors.Join(err, lzerrors.NewConfigurationError("cloud", "must be one of %s, was %q", strings.Join(Clouds, ", "), c.Cloud))
	}

	if c.OrgName == "" {
		err = errors.Join(err, lzerrors.NewConfigurationError("orgName", "is required"))
	} else if !regexes.DnsLabelRegex.MatchString(c.OrgName) {
		err = errors.Join(err, lzerrors.NewConfigurationError("orgName", "%q must be a lower case DNS label", c.OrgName))
	}

	if c.BillingAccount == "" {
		err = errors.Join(err, lzerrors.NewConfigurationError("billingAccount", "is required"))
	}

	if c.LandingZoneRootId == "" {
		err = errors.Join(err, lzerrors.NewConfigurationError("landingZoneRootId", "is required"))
	}

	err = errors.Join(err, c.validateEnvironments())

	switch c.Cloud {
	case CloudGcp:
		err = errors.Join(err, c.validateGcp())
	case CloudAws:
		err = errors.Join(err, c.validateAws())
	case CloudAzure:
		err = errors.Join(err, c.validateAzure())
	}

	return err
}

func (c OrgConfig) validateEnvironments() error {
	if len(c.Environments) == 0 {
		return lzerrors.NewConfigurationError("environments", "at least one environment is required")
	}

	var err error

	if len(c.Environments) > network.MaxEnvironments {
		err = errors.Join(err, lzerrors.NewConfigurationError("environments", "at most %d environments are supported, %d were configured", network.MaxEnvironments, len(c.Environments)))
	}

	for _, environment := range c.Environments {
		if !regexes.DnsLabelRegex.MatchString(environment) {
			err = errors.Join(err, lzerrors.NewConfigurationError("environments", "%q must be a lower case DNS label", environment))
		}

		if slices.Contains(naming.ReservedNames, environment) {
			err = errors.Join(err, lzerrors.NewConfigurationError("environments", "%q is reserved for the platform units", environment))
		}
	}

	for _, duplicate := range lo.FindDuplicates(c.Environments) {
		err = errors.Join(err, lzerrors.NewConfigurationError("environments", "%q is listed more than once", duplicate))
	}

	return err
}

func (c OrgConfig) validateGcp() error {
	var err error

	if c.LandingZoneRootId != "" && !regexes.GcpParentRegex.MatchString(c.LandingZoneRootId) {
		err = errors.Join(err, lzerrors.NewConfigurationError("landingZoneRootId", "%q must be folders/<number> or organizations/<number>", c.LandingZoneRootId))
	}

	if c.OrgName == "" {
		return err
	}

	for _, logicalName := range c.LogicalNames() {
		projectId := naming.UnitName(c.OrgName, logicalName)
		if !regexes.GcpProjectIdRegex.MatchString(projectId) {
			err = errors.Join(err, lzerrors.NewConfigurationError("orgName", "project id %q must be 6 to 30 lower case letters, digits or hyphens, starting with a letter", projectId))
		}
	}

	return err
}

func (c OrgConfig) validateAws() error {
	var err error

	if c.LandingZoneRootId != "" && !regexes.AwsParentRegex.MatchString(c.LandingZoneRootId) {
		err = errors.Join(err, lzerrors.NewConfigurationError("landingZoneRootId", "%q must be an organization root id (r-xxxx) or an organizational unit id (ou-xxxx-xxxxxxxx)", c.LandingZoneRootId))
	}

	if !regexes.EmailLocalPartRegex.MatchString(c.EmailLocalPart) {
		err = errors.Join(err, lzerrors.NewConfigurationError("emailLocalPart", "%q is not a valid email local part", c.EmailLocalPart))
	}

	if !regexes.EmailDomainRegex.MatchString(c.EmailDomain) {
		err = errors.Join(err, lzerrors.NewConfigurationError("emailDomain", "%q is not a valid email domain", c.EmailDomain))
	}

	if err != nil {
		return err
	}

	emails := mapset.NewThreadUnsafeSet[string]()
	for _, logicalName := range c.AccountLogicalNames() {
		email := strings.ToLower(naming.AccountEmail(c.EmailLocalPart, c.OrgName, logicalName, c.EmailDomain))
		if !emails.Add(email) {
			err = errors.Join(err, lzerrors.NewConfigurationError("environments", "the account email %q is used by more than one account", email))
		}
	}

	return err
}

// AccountLogicalNames returns every unit that is an AWS account: the platform units, the log archive
// and every environment.
func (c OrgConfig) AccountLogicalNames() []string {
	return append([]string{naming.LogArchive}, c.LogicalNames()...)
}

func (c OrgConfig) validateAzure() error {
	if c.LandingZoneRootId == "" {
		return nil
	}

	id, err := arm.ParseResourceID(c.LandingZoneRootId)
	if err != nil {
		return lzerrors.NewConfigurationError("landingZoneRootId", "%q is not a management group id: %v", c.LandingZoneRootId, err)
	}

	if !strings.EqualFold(id.ResourceType.String(), managementGroupResourceType) {
		return lzerrors.NewConfigurationError("landingZoneRootId", "%q is a %s, not a management group", c.LandingZoneRootId, id.ResourceType.String())
	}

	return nil
}
