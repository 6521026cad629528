package backend

import (
	"net/url"
	"regexp"
	"strings"
)

var absoluteURLPattern = regexp.MustCompile(`(?i)^https?://`)

// joinURL resolves an endpoint path against the base URL. Absolute endpoint
// values bypass the base entirely, which lets a single endpoint be pointed
// at a different host.
func joinURL(base, path string) string {
	if absoluteURLPattern.MatchString(path) {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(base, "/") + path
}

// expandIDTemplate substitutes an id into an endpoint template. Both ":id"
// and "{id}" placeholders are honored. Templates written without the path
// separator ("questions:id") are repaired first; deployed configs have
// carried that typo.
func expandIDTemplate(base, template, id string) string {
	repaired := strings.ReplaceAll(template, "questions:id", "questions/:id")
	repaired = strings.ReplaceAll(repaired, "question:id", "question/:id")

	escaped := url.PathEscape(id)
	resolved := strings.ReplaceAll(repaired, ":id", escaped)
	resolved = strings.ReplaceAll(resolved, "{id}", escaped)

	return joinURL(base, resolved)
}
