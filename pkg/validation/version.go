package validation

import (
	"regexp"
	"strings"

	"golang.org/x/mod/semver"
)

// apiVersionPattern matches the trailing semantic version of an apiVersion
// value such as "ossa/v1.0.0" or "ossa.dev/1.0.0".
var apiVersionPattern = regexp.MustCompile(`/v?(\d+\.\d+\.\d+)$`)

// ResolveVersion extracts the schema version a manifest targets from its
// declared apiVersion, falling back to defaultVersion when the value is
// missing or unparseable. The resolver is pure and total: an absent or
// malformed apiVersion is not an error here, only the downstream schema
// lookup can fail.
func ResolveVersion(apiVersion, defaultVersion string) string {
	match := apiVersionPattern.FindStringSubmatch(strings.TrimSpace(apiVersion))
	if match == nil {
		return defaultVersion
	}
	candidate := "v" + match[1]
	if !semver.IsValid(candidate) {
		return defaultVersion
	}
	return strings.TrimPrefix(semver.Canonical(candidate), "v")
}
