package systemd

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// DaemonReload reloads systemd unit definitions.
func DaemonReload(logger *logrus.Logger) error {
	return systemctl(logger, "daemon-reload")
}

// EnableAndRestart enables the unit and (re)starts it.
func EnableAndRestart(unit string, logger *logrus.Logger) error {
	if err := systemctl(logger, "enable", unit); err != nil {
		return err
	}
	return systemctl(logger, "restart", unit)
}

// Stop stops the unit.
func Stop(unit string, logger *logrus.Logger) error {
	return systemctl(logger, "stop", unit)
}

// Disable stops and disables the unit, ignoring "not loaded" failures.
func Disable(unit string, logger *logrus.Logger) error {
	_ = systemctl(logger, "stop", unit)
	return systemctl(logger, "disable", unit)
}

// IsActive reports whether the unit is currently active.
func IsActive(unit string) bool {
	out, err := exec.Command("systemctl", "is-active", unit).CombinedOutput()
	return err == nil && strings.TrimSpace(string(out)) == "active"
}

func systemctl(logger *logrus.Logger, args ...string) error {
	logger.WithField("args", args).Debug("Running systemctl")
	if output, err := exec.Command("systemctl", args...).CombinedOutput(); err != nil {
		return fmt.Errorf("systemctl %s failed: %w\nOutput: %s", strings.Join(args, " "), err, string(output))
	}
	return nil
}
