package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyde/connector-install/types"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ldap-url", "FYDE_LDAP_URL"},
		{"fyde_custom", "FYDE_CUSTOM"},
		{"FYDE_OKTA_AUTH_TOKEN", "FYDE_OKTA_AUTH_TOKEN"},
		{"okta-domain", "FYDE_OKTA_DOMAIN"},
		{"  spaced ", "FYDE_SPACED"},
		{"fyde-prefixed", "FYDE_PREFIXED"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeKey(tt.in), "key %q", tt.in)
	}
}

func TestParseExtraVar(t *testing.T) {
	ev, err := ParseExtraVar("ldap-url=ldaps://dc.example.com")
	require.NoError(t, err)
	assert.Equal(t, types.EnvVar{Key: "FYDE_LDAP_URL", Value: "ldaps://dc.example.com"}, ev)

	// Value may contain '=' signs.
	ev, err = ParseExtraVar("custom=a=b")
	require.NoError(t, err)
	assert.Equal(t, "FYDE_CUSTOM", ev.Key)
	assert.Equal(t, "a=b", ev.Value)

	// Empty value is allowed.
	ev, err = ParseExtraVar("empty=")
	require.NoError(t, err)
	assert.Equal(t, "", ev.Value)

	_, err = ParseExtraVar("no-separator")
	assert.Error(t, err)

	_, err = ParseExtraVar("=value")
	assert.Error(t, err)
}

func TestResolveExtraVars(t *testing.T) {
	vars, err := ResolveExtraVars([]string{
		"ldap-url=foo",
		"fyde_custom=bar",
		"okta-domain=acme.okta.com",
	})
	require.NoError(t, err)
	assert.Equal(t, []types.EnvVar{
		{Key: "FYDE_LDAP_URL", Value: "foo"},
		{Key: "FYDE_CUSTOM", Value: "bar"},
		{Key: "FYDE_OKTA_DOMAIN", Value: "acme.okta.com"},
	}, vars)
}

func TestResolveExtraVarsLastWriteWins(t *testing.T) {
	vars, err := ResolveExtraVars([]string{
		"ldap-url=first",
		"fyde_custom=bar",
		"LDAP_URL=second",
	})
	require.NoError(t, err)
	// Duplicate key keeps its first position but takes the last value.
	assert.Equal(t, []types.EnvVar{
		{Key: "FYDE_LDAP_URL", Value: "second"},
		{Key: "FYDE_CUSTOM", Value: "bar"},
	}, vars)
}
