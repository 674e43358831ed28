package figma

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/mkerrigan/figgen/core/errors"
)

// Reference identifies a fetch target: a file key and, when the user
// linked a specific element, a node id.
type Reference struct {
	FileKey string
	NodeID  string
}

var (
	bareKeyPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	urlPathPattern = regexp.MustCompile(`/(?:file|design)/([A-Za-z0-9]+)(?:/|$)`)
)

// ParseReference accepts either a bare alphanumeric file key or a
// figma.com file/design URL with an optional node-id query parameter.
// Anything else fails with an InvalidReference error carrying the
// original input.
func ParseReference(input string) (Reference, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Reference{}, errors.InvalidReference(input)
	}

	if bareKeyPattern.MatchString(trimmed) {
		return Reference{FileKey: trimmed}, nil
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return Reference{}, errors.InvalidReference(input)
	}

	m := urlPathPattern.FindStringSubmatch(u.Path)
	if m == nil {
		return Reference{}, errors.InvalidReference(input)
	}

	ref := Reference{FileKey: m[1]}
	if raw := u.Query().Get("node-id"); raw != "" {
		// Query() already URL-decodes, so %3A arrives as a colon.
		ref.NodeID = raw
	}
	return ref, nil
}

// transportNodeID normalizes a colon-separated compound node id to the
// dash delimiter the nodes endpoint expects.
func transportNodeID(id string) string {
	return strings.ReplaceAll(id, ":", "-")
}
