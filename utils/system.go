package utils

import (
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"

	"github.com/fyde/connector-install/types"
)

// RequireRoot verifies the installer runs with elevated privilege.
// Repository configuration, package installation and the systemd drop-in
// all need root.
func RequireRoot() error {
	if os.Geteuid() != 0 {
		return types.Exitf(types.ExitPrivilege, "this command must be run as root (try sudo)")
	}
	return nil
}

// SetupTimeSync enables NTP time synchronization via timedatectl.
// Enrollment tokens are time-sensitive, so a skewed clock is a common
// cause of rejected enrollments. Best-effort: a failure is logged and
// installation continues.
func SetupTimeSync(logger *logrus.Logger) {
	logger.Info("Enabling NTP time synchronization")
	if output, err := exec.Command("timedatectl", "set-ntp", "true").CombinedOutput(); err != nil {
		logger.WithError(err).WithField("output", string(output)).
			Warn("Failed to enable NTP time sync, continuing anyway")
	}
}
