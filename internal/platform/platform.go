// Package platform detects the Linux distribution family the installer
// is running on. Only Debian-like and RHEL-like families are supported;
// anything else is an unsupported platform.
package platform

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/sirupsen/logrus"

	"github.com/fyde/connector-install/types"
)

// Family is a supported package-manager family.
type Family string

const (
	FamilyDebian  Family = "debian"
	FamilyRHEL    Family = "rhel"
	FamilyUnknown Family = ""
)

const osReleasePath = "/etc/os-release"

// Info describes the detected platform.
type Info struct {
	Family     Family
	ID         string
	VersionID  string
	PrettyName string
}

// Detect reads /etc/os-release and classifies the distribution family.
// Returns an UnsupportedPlatform error (exit 4) for unknown families.
func Detect(logger *logrus.Logger) (*Info, error) {
	f, err := os.Open(osReleasePath)
	if err != nil {
		return nil, types.Exitf(types.ExitUnsupportedOS, "cannot read %s: %v", osReleasePath, err)
	}
	defer f.Close()

	fields, err := ParseOSRelease(f)
	if err != nil {
		return nil, types.Exitf(types.ExitUnsupportedOS, "cannot parse %s: %v", osReleasePath, err)
	}

	info := &Info{
		Family:     ClassifyFamily(fields["ID"], fields["ID_LIKE"]),
		ID:         fields["ID"],
		VersionID:  fields["VERSION_ID"],
		PrettyName: fields["PRETTY_NAME"],
	}
	if info.Family == FamilyUnknown {
		return nil, types.Exitf(types.ExitUnsupportedOS,
			"unsupported distribution %q, only Debian-like and RHEL-like systems are supported", info.ID)
	}

	logHostContext(info, logger)
	return info, nil
}

// ParseOSRelease parses the KEY=VALUE lines of an os-release file.
// Values may be quoted; comments and blank lines are skipped.
func ParseOSRelease(r io.Reader) (map[string]string, error) {
	fields := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		fields[key] = strings.Trim(value, `"'`)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading os-release: %w", err)
	}
	return fields, nil
}

// ClassifyFamily maps an os-release ID (plus its ID_LIKE fallback list)
// to a package-manager family.
func ClassifyFamily(id, idLike string) Family {
	candidates := append([]string{strings.ToLower(id)}, strings.Fields(strings.ToLower(idLike))...)
	for _, c := range candidates {
		switch c {
		case "debian", "ubuntu", "raspbian":
			return FamilyDebian
		case "rhel", "centos", "fedora", "rocky", "almalinux", "ol", "amzn":
			return FamilyRHEL
		}
	}
	return FamilyUnknown
}

// logHostContext logs host metadata for troubleshooting context.
// Best-effort; detection does not depend on it.
func logHostContext(info *Info, logger *logrus.Logger) {
	entry := logger.WithFields(logrus.Fields{
		"distribution": info.PrettyName,
		"family":       string(info.Family),
	})
	if hi, err := host.Info(); err == nil {
		entry = entry.WithFields(logrus.Fields{
			"hostname": hi.Hostname,
			"kernel":   hi.KernelVersion,
			"virt":     hi.VirtualizationSystem,
		})
	}
	entry.Info("Detected platform")
}
