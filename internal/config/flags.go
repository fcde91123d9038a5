package config

import "github.com/spf13/cobra"

// AddResolverFlags registers the shared installer flags on a command.
// Both install and enroll resolve the same configuration surface.
func AddResolverFlags(cmd *cobra.Command, f *Flags) {
	cmd.Flags().StringArrayVarP(&f.ExtraEnvVars, "extra-env", "e", nil,
		"Extra environment variable for the connector, KEY=VALUE (repeatable)")
	cmd.Flags().StringVarP(&f.LogLevel, "log-level", "l", "",
		"Connector log level: debug, info, warning, error or critical")
	cmd.Flags().BoolVarP(&f.NoStartService, "no-start-service", "n", false,
		"Write the configuration but leave the service stopped")
	cmd.Flags().StringVarP(&f.EnrollmentToken, "token", "t", "",
		"Enrollment token URL from the console")
	cmd.Flags().BoolVarP(&f.Unattended, "unattended", "u", false,
		"Unattended mode: no prompts, no enrollment call")
	cmd.Flags().BoolVarP(&f.SkipNTP, "skip-ntp-setup", "z", false,
		"Skip NTP time synchronization setup")
}
