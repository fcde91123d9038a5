package uninstall

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fyde/connector-install/internal/connector"
	"github.com/fyde/connector-install/internal/logging"
	"github.com/fyde/connector-install/internal/pkgmgr"
	"github.com/fyde/connector-install/internal/platform"
	"github.com/fyde/connector-install/internal/systemd"
	"github.com/fyde/connector-install/types"
	"github.com/fyde/connector-install/utils"
)

// NewUninstallCommand creates the uninstall command
func NewUninstallCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the Fyde Connector",
		Long: `Remove the Fyde Connector installation:
- Stop and disable the systemd service
- Remove the environment override drop-in
- Remove the connector package

The vendor package repository configuration is left in place.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUninstall(force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	return cmd
}

func runUninstall(force bool) error {
	logger := logging.SetupLogger("info")

	if err := utils.RequireRoot(); err != nil {
		logger.Error(err)
		return err
	}

	if !force && !confirm() {
		logger.Info("Uninstall cancelled")
		return nil
	}

	info, err := platform.Detect(logger)
	if err != nil {
		logger.Error(err)
		return err
	}
	mgr, err := pkgmgr.ForFamily(info.Family)
	if err != nil {
		logger.Error(err)
		return &types.ExitError{Code: 1, Err: err}
	}

	logger.Info("Stopping and disabling connector service")
	if err := systemd.Disable(connector.ServiceName, logger); err != nil {
		logger.WithError(err).Warn("Failed to disable service, continuing")
	}

	dropInDir := filepath.Dir(systemd.DefaultOverridePath)
	logger.WithField("path", dropInDir).Info("Removing environment override")
	if err := os.RemoveAll(dropInDir); err != nil {
		logger.WithError(err).Warn("Failed to remove drop-in directory, continuing")
	}
	if err := systemd.DaemonReload(logger); err != nil {
		logger.WithError(err).Warn("Failed to reload systemd, continuing")
	}

	if err := mgr.RemoveConnector(logger); err != nil {
		logger.Error(err)
		return &types.ExitError{Code: 1, Err: err}
	}

	logger.Info("✅ Fyde Connector removed")
	return nil
}

func confirm() bool {
	fmt.Print("This will stop the connector, remove its configuration and the package. Continue? [y/N] ")
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
