package sanitizer

import (
	"regexp"
	"strings"
)

var disallowedChars = regexp.MustCompile(`[^A-Za-z0-9]`)
var leadingDigit = regexp.MustCompile(`^[0-9]`)

// SanitizeName creates a string that can be used as a name for HCL resources, e.g. shared-services becomes
// shared_services. Terraform names can not start with a digit, so those are prefixed with an underscore.
func SanitizeName(name string) string {
	sanitized := disallowedChars.ReplaceAllString(strings.ToLower(name), "_")
	if leadingDigit.MatchString(sanitized) {
		return "_" + sanitized
	}
	return sanitized
}
