package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyde/connector-install/types"
)

const validToken = "https://acme.fyde.com/connectors/v1/42?auth_token=abc123&tenant_id=0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0"

func TestResolveDefaults(t *testing.T) {
	cfg, err := Resolve(Flags{})
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.EnrollmentToken)
	assert.Empty(t, cfg.ExtraEnvVars)
	assert.False(t, cfg.Unattended)
	assert.False(t, cfg.SkipNTP)
	assert.False(t, cfg.NoStartService)
}

func TestResolveFull(t *testing.T) {
	cfg, err := Resolve(Flags{
		EnrollmentToken: validToken,
		ExtraEnvVars:    []string{"ldap-url=foo", "okta-domain=acme.okta.com"},
		LogLevel:        "Debug",
		Unattended:      false,
		SkipNTP:         true,
		NoStartService:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, validToken, cfg.EnrollmentToken)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.SkipNTP)
	assert.True(t, cfg.NoStartService)

	val, ok := cfg.ExtraEnv("FYDE_LDAP_URL")
	assert.True(t, ok)
	assert.Equal(t, "foo", val)
	_, ok = cfg.ExtraEnv("FYDE_MISSING")
	assert.False(t, ok)
}

func TestResolveInvalidToken(t *testing.T) {
	_, err := Resolve(Flags{EnrollmentToken: "https://acme.example.com/nope"})
	require.Error(t, err)

	var exitErr *types.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, types.ExitArgument, exitErr.Code)
}

func TestResolveInvalidLogLevel(t *testing.T) {
	_, err := Resolve(Flags{LogLevel: "verbose"})
	require.Error(t, err)

	var exitErr *types.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, types.ExitArgument, exitErr.Code)
}

func TestResolveBadExtraVar(t *testing.T) {
	_, err := Resolve(Flags{ExtraEnvVars: []string{"not-a-pair"}})
	require.Error(t, err)

	var exitErr *types.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, types.ExitArgument, exitErr.Code)
}

func TestPromptTokenRetriesUntilValid(t *testing.T) {
	in := strings.NewReader("garbage\nstill wrong\n" + validToken + "\n")
	var out strings.Builder

	tok, err := PromptToken(in, &out)
	require.NoError(t, err)
	assert.Equal(t, validToken, tok)
	// Two invalid entries, two retry notices.
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid enrollment token"))
}

func TestPromptTokenEOF(t *testing.T) {
	_, err := PromptToken(strings.NewReader("bad\n"), &strings.Builder{})
	assert.Error(t, err)
}
