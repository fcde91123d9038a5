package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/fyde/connector-install/internal/logging"
	"github.com/fyde/connector-install/internal/token"
	"github.com/fyde/connector-install/types"
)

// Flags carries the raw command-line values before resolution.
type Flags struct {
	EnrollmentToken string
	ExtraEnvVars    []string
	LogLevel        string
	Unattended      bool
	SkipNTP         bool
	NoStartService  bool
}

// Resolve builds the immutable InstallConfig from flags and environment.
// Environment variables (FYDE_INSTALLER_*) fill in anything the flags
// left unset; flags win. Validation errors are ArgumentErrors (exit 3).
func Resolve(flags Flags) (*types.InstallConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("FYDE_INSTALLER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	overrides := map[string]interface{}{
		"enrollment-token": flags.EnrollmentToken,
		"log-level":        flags.LogLevel,
		"unattended":       flags.Unattended,
		"skip-ntp-setup":   flags.SkipNTP,
		"no-start-service": flags.NoStartService,
	}
	for key, value := range overrides {
		switch val := value.(type) {
		case string:
			if val != "" {
				v.Set(key, value)
			}
		case bool:
			if val {
				v.Set(key, value)
			}
		}
	}

	level, err := logging.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return nil, types.Exitf(types.ExitArgument, "%s", err)
	}

	extraVars, err := ResolveExtraVars(flags.ExtraEnvVars)
	if err != nil {
		return nil, types.Exitf(types.ExitArgument, "%s", err)
	}

	cfg := &types.InstallConfig{
		EnrollmentToken: strings.TrimSpace(v.GetString("enrollment-token")),
		ExtraEnvVars:    extraVars,
		LogLevel:        level,
		Unattended:      v.GetBool("unattended"),
		SkipNTP:         v.GetBool("skip-ntp-setup"),
		NoStartService:  v.GetBool("no-start-service"),
	}

	if cfg.EnrollmentToken != "" && !token.Validate(cfg.EnrollmentToken) {
		return nil, types.Exitf(types.ExitArgument,
			"invalid enrollment token, expected https://<tenant>.fyde.com/connectors/... URL")
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log-level", "info")
	v.SetDefault("enrollment-token", "")
	v.SetDefault("unattended", false)
	v.SetDefault("skip-ntp-setup", false)
	v.SetDefault("no-start-service", false)
}

// Validate re-checks a fully built config. Used by commands that accept
// a config from a path other than Resolve.
func Validate(cfg *types.InstallConfig) error {
	if !logging.ValidLevel(cfg.LogLevel) {
		return fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	if cfg.EnrollmentToken != "" && !token.Validate(cfg.EnrollmentToken) {
		return fmt.Errorf("invalid enrollment token")
	}
	return nil
}
