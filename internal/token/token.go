// Package token validates enrollment tokens. An enrollment token is a
// one-time URL-shaped credential issued by the enterprise console, e.g.
//
//	https://acme.fyde.com/connectors/v1/42?auth_token=abc123&tenant_id=0f1e2d3c-...
//
// Validation is purely syntactic; no network call is made.
package token

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Allowed console domain suffixes.
var allowedSuffixes = []string{
	".fyde.com",
	".access.barracuda.com",
}

// Overall token shape. The tenant_id segment is captured and then parsed
// as a UUID, which is stricter than a character-class check.
var tokenPattern = regexp.MustCompile(
	`^https://([a-zA-Z0-9][a-zA-Z0-9.-]*)/connectors/v[0-9]+/[0-9]+\?auth_token=[a-zA-Z0-9]+&tenant_id=([0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12})$`)

// Validate reports whether tok is a syntactically valid enrollment token.
func Validate(tok string) bool {
	m := tokenPattern.FindStringSubmatch(tok)
	if m == nil {
		return false
	}
	if !allowedHost(m[1]) {
		return false
	}
	if _, err := uuid.Parse(m[2]); err != nil {
		return false
	}
	return true
}

func allowedHost(host string) bool {
	for _, suffix := range allowedSuffixes {
		if strings.HasSuffix(host, suffix) && len(host) > len(suffix) {
			return true
		}
	}
	return false
}
