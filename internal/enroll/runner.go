// Package enroll drives the connector's enrollment/authorization flow:
// it invokes the connector binary with the enrollment token, captures
// the merged output, and classifies the result.
package enroll

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/fyde/connector-install/internal/connector"
	"github.com/fyde/connector-install/types"
)

// Runner invokes the connector binary once and classifies its output.
// The zero value is not usable; use NewRunner.
type Runner struct {
	// Binary is the connector executable to invoke.
	Binary string
	// Stdout receives the live merged subprocess output so the operator
	// sees progress while it is also being captured.
	Stdout io.Writer
	// TempDir hosts the transient capture file. Empty means os.TempDir.
	TempDir string

	logger *logrus.Logger
}

// NewRunner builds a Runner for the given connector binary.
func NewRunner(binary string, logger *logrus.Logger) *Runner {
	return &Runner{
		Binary: binary,
		Stdout: os.Stdout,
		logger: logger,
	}
}

// Run performs at most one enrollment attempt and never retries.
//
// When the config is unattended the runner does nothing: the operator
// supplies all environment variables out-of-band. When the extra
// variables already carry identity-provider credentials the subprocess
// is skipped and only the mandatory-pair checks run. Otherwise the
// connector is invoked with the version-gated argument form.
func (r *Runner) Run(cfg *types.InstallConfig, useAuthorize bool) (*types.EnrollmentOutcome, error) {
	if cfg.Unattended {
		r.logger.Info("Unattended mode, skipping enrollment")
		return nil, nil
	}

	if err := ValidatePresets(cfg); err != nil {
		return nil, types.Exitf(types.ExitEnrollment, "%s", err)
	}

	if HasPresetAuth(cfg.ExtraEnvVars) {
		r.logger.Info("Identity-provider credentials supplied via extra variables, skipping authorization call")
		return nil, nil
	}

	outcome, err := r.invoke(cfg, useAuthorize)
	if err != nil {
		return nil, err
	}
	if !outcome.Success {
		return outcome, types.Exitf(types.ExitEnrollment,
			"enrollment failed (%s): %s", outcome.Reason, Remediation(outcome.Reason))
	}
	r.logger.Info("Enrollment completed successfully")
	return outcome, nil
}

// invoke runs the connector subprocess, streaming its merged output live
// while capturing it to a transient file. The file is removed on every
// exit path, including signal-driven termination.
func (r *Runner) invoke(cfg *types.InstallConfig, useAuthorize bool) (*types.EnrollmentOutcome, error) {
	capture, err := os.CreateTemp(r.TempDir, "fyde-enroll-*.log")
	if err != nil {
		return nil, fmt.Errorf("failed to create capture file: %w", err)
	}
	capturePath := capture.Name()

	// The capture file holds the enrollment token and any returned
	// credentials; guarantee removal even on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		if _, ok := <-sigCh; ok {
			capture.Close()
			os.Remove(capturePath)
			os.Exit(130)
		}
	}()
	defer func() {
		signal.Stop(sigCh)
		close(sigCh)
		capture.Close()
		os.Remove(capturePath)
	}()

	args := connector.EnrollArgs(cfg.EnrollmentToken, useAuthorize)
	r.logger.WithFields(logrus.Fields{
		"binary":    r.Binary,
		"authorize": useAuthorize,
	}).Debug("Invoking connector for enrollment")

	cmd := exec.Command(r.Binary, args...)
	merged := io.MultiWriter(r.Stdout, capture)
	cmd.Stdout = merged
	cmd.Stderr = merged

	runErr := cmd.Run()

	output, err := os.ReadFile(capturePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read capture file: %w", err)
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return ClassifyFailure(string(output)), nil
		}
		return nil, fmt.Errorf("failed to run connector: %w", runErr)
	}
	return Classify(string(output)), nil
}
