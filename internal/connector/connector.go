// Package connector wraps interaction with the installed fyde-connector
// binary: locating it, querying its version, and choosing the enrollment
// invocation form it understands.
package connector

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const (
	// BinaryName is the connector executable installed by the package.
	BinaryName = "fyde-connector"

	// ServiceName is the systemd unit managed by the installer.
	ServiceName = "fyde-connector"
)

// Find locates the connector binary, preferring PATH and falling back to
// the packaged install location.
func Find() (string, error) {
	if path, err := exec.LookPath(BinaryName); err == nil {
		return path, nil
	}
	packaged := "/usr/bin/" + BinaryName
	if _, err := os.Stat(packaged); err == nil {
		return packaged, nil
	}
	return "", fmt.Errorf("connector binary %s not found", BinaryName)
}

// InstalledVersion runs the connector with --version and extracts the
// version string (last whitespace-separated field, leading "v" stripped).
func InstalledVersion(binary string) (string, error) {
	out, err := exec.Command(binary, "--version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("failed to query connector version: %w", err)
	}
	return ParseVersionOutput(string(out))
}

// ParseVersionOutput extracts a version from the connector's --version
// output, e.g. "Fyde Connector v1.4.2" -> "1.4.2".
func ParseVersionOutput(out string) (string, error) {
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return "", fmt.Errorf("empty version output")
	}
	version := strings.TrimPrefix(fields[len(fields)-1], "v")
	if version == "" {
		return "", fmt.Errorf("could not parse version from %q", out)
	}
	return version, nil
}
