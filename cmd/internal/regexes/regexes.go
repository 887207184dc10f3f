package regexes

import "regexp"

// DnsLabelRegex matches the names that can be used for organizations and environments
var DnsLabelRegex = regexp.MustCompile(`^[a-z]([a-z0-9-]*[a-z0-9])?$`)

// GcpProjectIdRegex matches valid Google Cloud project ids
var GcpProjectIdRegex = regexp.MustCompile(`^[a-z][a-z0-9-]{4,28}[a-z0-9]$`)

// GcpParentRegex matches the folders/N or organizations/N parent of the landing zone root folder
var GcpParentRegex = regexp.MustCompile(`^(folders|organizations)/\d+$`)

// AwsParentRegex matches an organization root id or an organizational unit id
var AwsParentRegex = regexp.MustCompile(`^(r-[0-9a-z]{4,32}|ou-[0-9a-z]{4,32}-[a-z0-9]{8,32})$`)

// EmailDomainRegex is a loose check of the domain part of an email address
var EmailDomainRegex = regexp.MustCompile(`^[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)+$`)

// EmailLocalPartRegex is a loose check of the local part of an email address
var EmailLocalPartRegex = regexp.MustCompile(`^[A-Za-z0-9._%-]+$`)

// TerraformReferenceRegex finds the address of every resource referenced by an interpolation,
// e.g. google_project.dev in ${google_project.dev.number}
var TerraformReferenceRegex = regexp.MustCompile(`\$\{((?:data\.)?[a-z0-9_]+\.[a-z0-9_]+)\.`)
