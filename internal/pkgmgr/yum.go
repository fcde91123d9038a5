package pkgmgr

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/fyde/connector-install/internal/platform"
)

const yumRepoPath = "/etc/yum.repos.d/fyde.repo"

const yumRepoContent = `[fyde]
name=Fyde
baseurl=https://downloads.fyde.com/yum
enabled=1
gpgcheck=1
gpgkey=https://downloads.fyde.com/fyde.gpg.key
`

// YumManager drives yum-based (RHEL-like) systems.
type YumManager struct{}

func (m *YumManager) Family() platform.Family { return platform.FamilyRHEL }

func (m *YumManager) LockFile() string { return "/var/run/yum.pid" }

func (m *YumManager) SetupRepository(logger *logrus.Logger) error {
	logger.Info("Configuring yum repository")

	if err := os.WriteFile(yumRepoPath, []byte(yumRepoContent), 0o644); err != nil {
		return fmt.Errorf("failed to write yum repo file: %w", err)
	}
	if err := run(logger, "yum", "-q", "makecache"); err != nil {
		return fmt.Errorf("failed to refresh yum cache: %w", err)
	}
	return nil
}

func (m *YumManager) InstallConnector(logger *logrus.Logger) error {
	logger.WithField("package", ConnectorPackage).Info("Installing connector package")
	return run(logger, "yum", "install", "-y", "-q", ConnectorPackage)
}

func (m *YumManager) RemoveConnector(logger *logrus.Logger) error {
	logger.WithField("package", ConnectorPackage).Info("Removing connector package")
	return run(logger, "yum", "remove", "-y", "-q", ConnectorPackage)
}
