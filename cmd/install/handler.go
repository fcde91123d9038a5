package install

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fyde/connector-install/internal/config"
	"github.com/fyde/connector-install/internal/connector"
	"github.com/fyde/connector-install/internal/enroll"
	"github.com/fyde/connector-install/internal/logging"
	"github.com/fyde/connector-install/internal/pkgmgr"
	"github.com/fyde/connector-install/internal/platform"
	"github.com/fyde/connector-install/internal/systemd"
	"github.com/fyde/connector-install/types"
	"github.com/fyde/connector-install/utils"
)

// NewInstallCommand creates the install command
func NewInstallCommand() *cobra.Command {
	var flags config.Flags

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install and enroll the Fyde Connector",
		Long: `Install the Fyde Connector with complete setup including:
- Distribution family detection (Debian-like or RHEL-like)
- Vendor package repository configuration
- Connector package installation
- Enrollment/authorization against the console
- Systemd environment override generation
- Service start (unless -n is given)

Supply the enrollment token with -t, or paste it when prompted.
In unattended mode (-u) no enrollment is performed; every required
environment variable must be supplied via -e instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(flags)
		},
	}

	config.AddResolverFlags(cmd, &flags)
	return cmd
}

func runInstall(flags config.Flags) error {
	cfg, err := config.Resolve(flags)
	if err != nil {
		return err
	}
	logger := logging.SetupLogger(cfg.LogLevel)

	if err := utils.RequireRoot(); err != nil {
		logger.Error(err)
		return err
	}

	logger.WithFields(logrus.Fields{
		"unattended": cfg.Unattended,
		"log_level":  cfg.LogLevel,
	}).Info("🚀 Starting Fyde Connector installation")

	// Interactive token entry happens up front so the operator is not
	// kept waiting through the package installation.
	if !cfg.Unattended && cfg.EnrollmentToken == "" {
		tok, err := config.PromptToken(os.Stdin, os.Stdout)
		if err != nil {
			return types.Exitf(types.ExitArgument, "no enrollment token supplied: %v", err)
		}
		cfg.EnrollmentToken = tok
	}

	info, err := platform.Detect(logger)
	if err != nil {
		logger.Error(err)
		return err
	}

	mgr, err := pkgmgr.ForFamily(info.Family)
	if err != nil {
		return fatal(logger, err)
	}

	if cfg.SkipNTP {
		logger.Info("Skipping NTP time sync setup")
	} else {
		utils.SetupTimeSync(logger)
	}

	logger.Info("📦 Configuring package repository")
	if err := mgr.SetupRepository(logger); err != nil {
		return fatal(logger, err)
	}

	pkgmgr.WaitForLock(pkgmgr.LockProbe(mgr.LockFile()),
		pkgmgr.LockWaitAttempts, pkgmgr.LockWaitInterval, logger)

	logger.Info("📦 Installing connector package")
	if err := mgr.InstallConnector(logger); err != nil {
		return fatal(logger, err)
	}

	var outcome *types.EnrollmentOutcome
	if !cfg.Unattended {
		outcome, err = runEnrollment(cfg, logger)
		if err != nil {
			return err
		}
	}

	logger.Info("⚙️  Writing systemd environment override")
	if err := systemd.NewOverrideWriter(logger).Write(cfg, outcome); err != nil {
		return fatal(logger, err)
	}
	if err := systemd.DaemonReload(logger); err != nil {
		return fatal(logger, err)
	}

	if cfg.NoStartService {
		logger.Info("Service start skipped (-n), stopping any running instance")
		if err := systemd.Stop(connector.ServiceName, logger); err != nil {
			logger.WithError(err).Warn("Failed to stop service")
		}
	} else {
		logger.Info("▶️  Starting connector service")
		if err := systemd.EnableAndRestart(connector.ServiceName, logger); err != nil {
			return fatal(logger, err)
		}
	}

	logger.Info("✅ Fyde Connector installation complete")
	return nil
}

// runEnrollment locates the freshly installed connector, applies the
// version gate and runs one enrollment attempt.
func runEnrollment(cfg *types.InstallConfig, logger *logrus.Logger) (*types.EnrollmentOutcome, error) {
	binary, err := connector.Find()
	if err != nil {
		return nil, fatal(logger, err)
	}

	version, err := connector.InstalledVersion(binary)
	if err != nil {
		return nil, fatal(logger, err)
	}
	useAuthorize := connector.UseAuthorizeCommand(version)
	logger.WithFields(logrus.Fields{
		"version":   version,
		"authorize": useAuthorize,
	}).Debug("Connector version gate")

	logger.Info("🔑 Running enrollment")
	outcome, err := enroll.NewRunner(binary, logger).Run(cfg, useAuthorize)
	if err != nil {
		logger.Error(err)
		var exitErr *types.ExitError
		if errors.As(err, &exitErr) {
			return nil, err
		}
		return nil, types.Exitf(types.ExitEnrollment, "enrollment failed: %v", err)
	}
	return outcome, nil
}

// fatal logs err and wraps it with the generic failure exit code unless
// it already carries one.
func fatal(logger *logrus.Logger, err error) error {
	logger.Error(err)
	var exitErr *types.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &types.ExitError{Code: 1, Err: err}
}
