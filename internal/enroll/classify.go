package enroll

import (
	"strings"

	"github.com/fyde/connector-install/types"
)

// Markers the connector prints on its merged output. The connector does
// not emit structured logs, so classification is substring matching over
// the captured text. All matching rules live here so they can be swapped
// for structured parsing if the connector ever grows it.
const (
	successMarker = "Authorization was successful"
	azureMarker   = "azure_access_token:"
	googleMarker  = "google_access_token:"
)

// Classify maps the connector's captured output to an outcome when the
// process itself exited zero. Pure function: identical input always
// yields the identical outcome. Matches are checked in priority order.
func Classify(output string) *types.EnrollmentOutcome {
	if strings.Contains(output, successMarker) {
		return &types.EnrollmentOutcome{Success: true}
	}
	if value, ok := extractMarkerValue(output, azureMarker); ok {
		return &types.EnrollmentOutcome{
			Success:   true,
			AuthExtra: &types.EnvVar{Key: "FYDE_AZURE_ACCESS_TOKEN", Value: value},
		}
	}
	if value, ok := extractMarkerValue(output, googleMarker); ok {
		return &types.EnrollmentOutcome{
			Success:   true,
			AuthExtra: &types.EnvVar{Key: "FYDE_GOOGLE_ACCESS_TOKEN", Value: value},
		}
	}
	// Process claimed success but printed nothing we recognize; operator
	// must inspect the output.
	return &types.EnrollmentOutcome{Success: false, Reason: types.ReasonUnrecognizedSuccess}
}

// ClassifyFailure maps the captured output to a failure reason when the
// connector process exited non-zero.
func ClassifyFailure(output string) *types.EnrollmentOutcome {
	lower := strings.ToLower(output)
	reason := types.ReasonUnrecognizedFailure
	switch {
	case strings.Contains(lower, "ldap"):
		reason = types.ReasonMissingLDAPParams
	case strings.Contains(lower, "422"):
		reason = types.ReasonInvalidAuthToken
	case strings.Contains(lower, "okta"):
		reason = types.ReasonMissingOktaParams
	}
	return &types.EnrollmentOutcome{Success: false, Reason: reason}
}

// Remediation returns the operator-facing hint for a failure reason.
func Remediation(reason types.FailureReason) string {
	switch reason {
	case types.ReasonMissingLDAPParams:
		return "check the ldap arguments (-e ldap-...) and retry"
	case types.ReasonInvalidAuthToken:
		return "the enrollment token was rejected (HTTP 422), request a fresh token from the console"
	case types.ReasonMissingOktaParams:
		return "check the okta arguments (-e okta-...) and retry"
	case types.ReasonUnrecognizedSuccess:
		return "the connector reported success but printed no recognizable result, inspect the output above"
	default:
		return "inspect the connector output above for details"
	}
}

// extractMarkerValue finds marker in output and returns the remainder of
// its line, trimmed.
func extractMarkerValue(output, marker string) (string, bool) {
	idx := strings.Index(output, marker)
	if idx < 0 {
		return "", false
	}
	rest := output[idx+len(marker):]
	if end := strings.IndexByte(rest, '\n'); end >= 0 {
		rest = rest[:end]
	}
	value := strings.TrimSpace(rest)
	if value == "" {
		return "", false
	}
	return value, true
}
