package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	enrollcmd "github.com/fyde/connector-install/cmd/enroll"
	"github.com/fyde/connector-install/cmd/install"
	"github.com/fyde/connector-install/cmd/status"
	"github.com/fyde/connector-install/cmd/uninstall"
	"github.com/fyde/connector-install/cmd/version"
	"github.com/fyde/connector-install/types"
)

var rootCmd = &cobra.Command{
	Use:   "connector-install",
	Short: "Fyde Connector installer - installs, enrolls and configures the connector service",
	Long: `Fyde Connector installer sets up the connector agent on Debian-like and
RHEL-like Linux systems: it configures the vendor package repository,
installs the connector package, runs the enrollment/authorization flow
against the console and writes the systemd environment override before
starting the service.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(install.NewInstallCommand())
	rootCmd.AddCommand(enrollcmd.NewEnrollCommand())
	rootCmd.AddCommand(status.NewStatusCommand())
	rootCmd.AddCommand(uninstall.NewUninstallCommand())
	rootCmd.AddCommand(version.NewVersionCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *types.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		// Anything uncoded came from flag parsing.
		os.Exit(types.ExitArgument)
	}
}
