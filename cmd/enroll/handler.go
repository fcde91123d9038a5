package enrollcmd

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fyde/connector-install/internal/config"
	"github.com/fyde/connector-install/internal/connector"
	"github.com/fyde/connector-install/internal/enroll"
	"github.com/fyde/connector-install/internal/logging"
	"github.com/fyde/connector-install/internal/systemd"
	"github.com/fyde/connector-install/types"
	"github.com/fyde/connector-install/utils"
)

// NewEnrollCommand creates the enroll command
func NewEnrollCommand() *cobra.Command {
	var flags config.Flags

	cmd := &cobra.Command{
		Use:   "enroll",
		Short: "Re-run enrollment for an already installed connector",
		Long: `Run the enrollment/authorization flow against an already installed
connector and regenerate the systemd environment override. Useful when
re-authorizing with a fresh enrollment token without reinstalling the
package.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnroll(flags)
		},
	}

	config.AddResolverFlags(cmd, &flags)
	return cmd
}

func runEnroll(flags config.Flags) error {
	cfg, err := config.Resolve(flags)
	if err != nil {
		return err
	}
	logger := logging.SetupLogger(cfg.LogLevel)

	if err := utils.RequireRoot(); err != nil {
		logger.Error(err)
		return err
	}

	binary, err := connector.Find()
	if err != nil {
		logger.Error(err)
		logger.Info("💡 Run 'install' first to install the connector package")
		return &types.ExitError{Code: 1, Err: err}
	}

	var outcome *types.EnrollmentOutcome
	if !cfg.Unattended {
		if cfg.EnrollmentToken == "" {
			tok, err := config.PromptToken(os.Stdin, os.Stdout)
			if err != nil {
				return types.Exitf(types.ExitArgument, "no enrollment token supplied: %v", err)
			}
			cfg.EnrollmentToken = tok
		}

		version, err := connector.InstalledVersion(binary)
		if err != nil {
			logger.Error(err)
			return &types.ExitError{Code: 1, Err: err}
		}
		useAuthorize := connector.UseAuthorizeCommand(version)
		logger.WithFields(logrus.Fields{
			"version":   version,
			"authorize": useAuthorize,
		}).Debug("Connector version gate")

		outcome, err = enroll.NewRunner(binary, logger).Run(cfg, useAuthorize)
		if err != nil {
			logger.Error(err)
			var exitErr *types.ExitError
			if errors.As(err, &exitErr) {
				return err
			}
			return types.Exitf(types.ExitEnrollment, "enrollment failed: %v", err)
		}
	}

	if err := systemd.NewOverrideWriter(logger).Write(cfg, outcome); err != nil {
		logger.Error(err)
		return &types.ExitError{Code: 1, Err: err}
	}
	if err := systemd.DaemonReload(logger); err != nil {
		logger.Error(err)
		return &types.ExitError{Code: 1, Err: err}
	}

	if cfg.NoStartService {
		logger.Info("Service start skipped (-n)")
		if err := systemd.Stop(connector.ServiceName, logger); err != nil {
			logger.WithError(err).Warn("Failed to stop service")
		}
	} else if err := systemd.EnableAndRestart(connector.ServiceName, logger); err != nil {
		logger.Error(err)
		return &types.ExitError{Code: 1, Err: err}
	}

	logger.Info("✅ Enrollment complete")
	return nil
}
