// Package systemd writes the connector's environment drop-in override
// and drives the service through systemctl.
package systemd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/fyde/connector-install/types"
)

// DefaultOverridePath is the drop-in file the connector service reads
// its environment from.
const DefaultOverridePath = "/etc/systemd/system/fyde-connector.service.d/10-environment.conf"

// OverrideWriter regenerates the environment drop-in file. The file is
// a pure function of the resolved config and enrollment outcome: it is
// rewritten wholesale on every run, never merged with prior contents.
type OverrideWriter struct {
	// Path of the drop-in file. Empty means DefaultOverridePath.
	Path string

	logger *logrus.Logger
}

// NewOverrideWriter builds an OverrideWriter targeting the default path.
func NewOverrideWriter(logger *logrus.Logger) *OverrideWriter {
	return &OverrideWriter{Path: DefaultOverridePath, logger: logger}
}

// BuildOverride renders the drop-in contents: log level first, then the
// enrollment token (attended runs only), then any outcome-derived auth
// token, then the extra variables in resolution order.
func BuildOverride(cfg *types.InstallConfig, outcome *types.EnrollmentOutcome) string {
	var b strings.Builder
	b.WriteString("[Service]\n")
	writeEnvLine(&b, "FYDE_LOGLEVEL", cfg.LogLevel)
	if !cfg.Unattended && cfg.EnrollmentToken != "" {
		writeEnvLine(&b, "FYDE_ENROLLMENT_TOKEN", cfg.EnrollmentToken)
	}
	if outcome != nil && outcome.AuthExtra != nil {
		writeEnvLine(&b, outcome.AuthExtra.Key, outcome.AuthExtra.Value)
	}
	for _, v := range cfg.ExtraEnvVars {
		writeEnvLine(&b, v.Key, v.Value)
	}
	return b.String()
}

// Write replaces the drop-in file with the rendered contents and
// restricts it to owner read/write, as it carries the enrollment token.
func (w *OverrideWriter) Write(cfg *types.InstallConfig, outcome *types.EnrollmentOutcome) error {
	path := w.Path
	if path == "" {
		path = DefaultOverridePath
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create drop-in directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(BuildOverride(cfg, outcome)), 0o600); err != nil {
		return fmt.Errorf("failed to write environment override: %w", err)
	}
	// WriteFile does not change the mode of a pre-existing file.
	if err := os.Chmod(path, 0o600); err != nil {
		return fmt.Errorf("failed to restrict override permissions: %w", err)
	}

	w.logger.WithField("path", path).Info("Environment override written")
	return nil
}

func writeEnvLine(b *strings.Builder, key, value string) {
	fmt.Fprintf(b, "Environment=%s='%s'\n", key, value)
}
