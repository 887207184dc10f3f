package strutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var escapedTemplate = regexp.MustCompile(`\$\$\{`)

func StrPointer(input string) *string {
	return &input
}

func DefaultIfEmpty(input string, defaultValue string) string {
	if input == "" {
		return defaultValue
	}

	return input
}

func EnsureSuffix(input string, suffix string) string {
	if strings.HasSuffix(input, suffix) {
		return input
	}

	return input + suffix
}

// Capitalize upper cases the first letter of the input, so "dev" becomes "Dev".
func Capitalize(input string) string {
	if input == "" {
		return input
	}

	first, size := utf8.DecodeRuneInString(input)
	return string(unicode.ToUpper(first)) + input[size:]
}

// Truncate returns at most length bytes of the input, trimming any trailing hyphen left by the cut.
func Truncate(input string, length int) string {
	if len(input) <= length {
		return input
	}

	return strings.TrimRight(input[:length], "-")
}

// UnEscapeDollarInString restores the template sequences that hclwrite escapes when it writes a string value.
// Every string generated by the landing zone components that contains "${" is meant to be a Terraform
// interpolation, so all escaped sequences are restored, not just strings that are a single interpolation.
// Literal template sequences survive because they are escaped before being encoded, and hclwrite then
// adds a second escape which this function removes.
// See https://github.com/hashicorp/hcl/issues/323
func UnEscapeDollarInString(input string) string {
	return escapedTemplate.ReplaceAllString(input, "$${")
}
