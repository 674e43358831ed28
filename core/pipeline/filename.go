package pipeline

import (
	"regexp"
	"strings"
)

// DefaultFileName is used when a node's display name reduces to nothing.
const DefaultFileName = "component"

var nonAlphanumericRun = regexp.MustCompile(`[^a-z0-9]+`)

// DeriveFileName turns a node display name into a file-safe candidate:
// lowercased, non-alphanumeric runs collapsed to single hyphens, leading
// and trailing hyphens trimmed.
func DeriveFileName(displayName string) string {
	name := strings.ToLower(displayName)
	name = nonAlphanumericRun.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")
	if name == "" {
		return DefaultFileName
	}
	return name
}
