// Package pkgmgr configures the distribution's package repository and
// installs the connector package through apt or yum.
package pkgmgr

import (
	"fmt"
	"os/exec"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fyde/connector-install/internal/platform"
)

// ConnectorPackage is the distribution package carrying the connector.
const ConnectorPackage = "fyde-connector"

// Lock wait bounds: up to 300 one-second attempts, then proceed anyway.
const (
	LockWaitAttempts = 300
	LockWaitInterval = time.Second
)

// Manager abstracts a package-manager family.
type Manager interface {
	// Family returns the platform family this manager serves.
	Family() platform.Family
	// LockFile is the package-manager lock observed before installing.
	LockFile() string
	// SetupRepository configures the vendor package repository.
	SetupRepository(logger *logrus.Logger) error
	// InstallConnector installs the connector package.
	InstallConnector(logger *logrus.Logger) error
	// RemoveConnector removes the connector package.
	RemoveConnector(logger *logrus.Logger) error
}

// ForFamily returns the Manager for a detected platform family.
func ForFamily(f platform.Family) (Manager, error) {
	switch f {
	case platform.FamilyDebian:
		return &AptManager{}, nil
	case platform.FamilyRHEL:
		return &YumManager{}, nil
	default:
		return nil, fmt.Errorf("no package manager for family %q", f)
	}
}

// WaitForLock polls until probe reports the lock is free, sleeping
// interval between up to attempts tries. On timeout it proceeds anyway
// and returns false; the subsequent install surfaces any real conflict.
func WaitForLock(probe func() bool, attempts int, interval time.Duration, logger *logrus.Logger) bool {
	for i := 0; i < attempts; i++ {
		if !probe() {
			return true
		}
		if i == 0 {
			logger.Info("Package manager is busy, waiting for the lock to clear...")
		}
		time.Sleep(interval)
	}
	logger.Warn("Package manager lock still held after waiting, proceeding anyway")
	return false
}

// LockProbe reports whether any process currently holds path open.
func LockProbe(path string) func() bool {
	return func() bool {
		return exec.Command("fuser", path).Run() == nil
	}
}

func run(logger *logrus.Logger, name string, args ...string) error {
	logger.WithFields(logrus.Fields{"command": name, "args": args}).Debug("Running command")
	if output, err := exec.Command(name, args...).CombinedOutput(); err != nil {
		return fmt.Errorf("%s failed: %w\nOutput: %s", name, err, string(output))
	}
	return nil
}
