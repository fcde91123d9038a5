package connector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseAuthorizeCommand(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"0.0.1", true}, // dev build escape hatch
		{"1.3.20", true},
		{"1.3.21", true},
		{"1.3.19", false},
		{"1.3", true}, // compared components all equal, ge semantics
		{"1.2.99", false},
		{"2.0.0", true},
		{"1.4", true},
		{"0.9.9", false},
		{"1.3.20.1", true},
		{"10.0.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, UseAuthorizeCommand(tt.version))
		})
	}
}

func TestEnrollArgs(t *testing.T) {
	tok := "https://acme.fyde.com/connectors/v1/1?auth_token=a&tenant_id=0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0"

	assert.Equal(t,
		[]string{"authorize", "--enrollment-token", tok},
		EnrollArgs(tok, true))
	assert.Equal(t,
		[]string{"--enrollment-token", tok, "--dry-run", "--run-once"},
		EnrollArgs(tok, false))
}

func TestParseVersionOutput(t *testing.T) {
	v, err := ParseVersionOutput("Fyde Connector v1.4.2\n")
	require.NoError(t, err)
	assert.Equal(t, "1.4.2", v)

	v, err = ParseVersionOutput("1.3.21")
	require.NoError(t, err)
	assert.Equal(t, "1.3.21", v)

	_, err = ParseVersionOutput("   \n")
	assert.Error(t, err)
}
