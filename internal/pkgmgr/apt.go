package pkgmgr

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/fyde/connector-install/internal/platform"
)

const (
	aptSourcesPath = "/etc/apt/sources.list.d/fyde.list"
	aptKeyringPath = "/usr/share/keyrings/fyde-archive-keyring.gpg"
	aptRepoLine    = "deb [signed-by=" + aptKeyringPath + "] https://downloads.fyde.com/apt stable main\n"
	aptKeyURL      = "https://downloads.fyde.com/fyde.gpg.key"
)

// AptManager drives apt-based (Debian-like) systems.
type AptManager struct{}

func (m *AptManager) Family() platform.Family { return platform.FamilyDebian }

func (m *AptManager) LockFile() string { return "/var/lib/dpkg/lock-frontend" }

func (m *AptManager) SetupRepository(logger *logrus.Logger) error {
	logger.Info("Configuring apt repository")

	if err := run(logger, "sh", "-c",
		fmt.Sprintf("curl -fsSL %s | gpg --dearmor --yes -o %s", aptKeyURL, aptKeyringPath)); err != nil {
		return fmt.Errorf("failed to install repository key: %w", err)
	}
	if err := os.WriteFile(aptSourcesPath, []byte(aptRepoLine), 0o644); err != nil {
		return fmt.Errorf("failed to write apt sources: %w", err)
	}
	if err := run(logger, "apt-get", "update", "-qq"); err != nil {
		return fmt.Errorf("failed to refresh apt indexes: %w", err)
	}
	return nil
}

func (m *AptManager) InstallConnector(logger *logrus.Logger) error {
	logger.WithField("package", ConnectorPackage).Info("Installing connector package")
	return run(logger, "apt-get", "install", "-y", "-qq", ConnectorPackage)
}

func (m *AptManager) RemoveConnector(logger *logrus.Logger) error {
	logger.WithField("package", ConnectorPackage).Info("Removing connector package")
	return run(logger, "apt-get", "remove", "-y", "-qq", ConnectorPackage)
}
