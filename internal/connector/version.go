package connector

import (
	"strconv"
	"strings"
)

// authorizeMinVersion is the first connector release that ships the
// "authorize" subcommand. Older releases are driven through the legacy
// "--dry-run --run-once" invocation instead.
const authorizeMinVersion = "1.3.20"

// devBuildVersion is reported by internal development builds, which are
// always treated as current.
const devBuildVersion = "0.0.1"

// UseAuthorizeCommand reports whether the installed connector version
// supports the authorize subcommand. Comparison is greater-or-equal:
// dotted components are compared left to right as unsigned integers and
// the first difference decides; if every compared component is equal the
// versions are deemed equal and the new command is used.
func UseAuthorizeCommand(installed string) bool {
	if installed == devBuildVersion {
		return true
	}
	return compareVersions(installed, authorizeMinVersion) >= 0
}

// EnrollArgs returns the connector arguments for one enrollment attempt,
// selected by the version gate.
func EnrollArgs(enrollmentToken string, useAuthorize bool) []string {
	if useAuthorize {
		return []string{"authorize", "--enrollment-token", enrollmentToken}
	}
	return []string{"--enrollment-token", enrollmentToken, "--dry-run", "--run-once"}
}

// compareVersions compares two dotted version strings component-wise.
// It returns -1, 0 or 1. Only components present in both versions are
// compared; if those all match the versions are considered equal, so
// "1.3" and "1.3.20" compare equal.
func compareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	n := len(as)
	if len(bs) < n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		av := parseComponent(as[i])
		bv := parseComponent(bs[i])
		if av < bv {
			return -1
		}
		if av > bv {
			return 1
		}
	}
	return 0
}

func parseComponent(s string) uint64 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
