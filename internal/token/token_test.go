package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{
			name:  "valid fyde domain",
			token: "https://acme.fyde.com/connectors/v1/42?auth_token=abc123XYZ&tenant_id=0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0",
			want:  true,
		},
		{
			name:  "valid barracuda domain",
			token: "https://acme.access.barracuda.com/connectors/v2/7?auth_token=tok1&tenant_id=00000000-0000-0000-0000-000000000000",
			want:  true,
		},
		{
			name:  "valid uppercase hex uuid",
			token: "https://acme.fyde.com/connectors/v1/1?auth_token=a&tenant_id=0F1E2D3C-4B5A-6978-8796-A5B4C3D2E1F0",
			want:  true,
		},
		{
			name:  "wrong domain",
			token: "https://acme.example.com/connectors/v1/42?auth_token=abc&tenant_id=0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0",
			want:  false,
		},
		{
			name:  "bare suffix without tenant subdomain",
			token: "https://.fyde.com/connectors/v1/42?auth_token=abc&tenant_id=0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0",
			want:  false,
		},
		{
			name:  "http not https",
			token: "http://acme.fyde.com/connectors/v1/42?auth_token=abc&tenant_id=0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0",
			want:  false,
		},
		{
			name:  "malformed uuid",
			token: "https://acme.fyde.com/connectors/v1/42?auth_token=abc&tenant_id=0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1",
			want:  false,
		},
		{
			name:  "missing auth_token param",
			token: "https://acme.fyde.com/connectors/v1/42?tenant_id=0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0",
			want:  false,
		},
		{
			name:  "missing tenant_id param",
			token: "https://acme.fyde.com/connectors/v1/42?auth_token=abc",
			want:  false,
		},
		{
			name:  "non-numeric connector id",
			token: "https://acme.fyde.com/connectors/v1/abc?auth_token=abc&tenant_id=0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0",
			want:  false,
		},
		{
			name:  "non-alphanumeric auth token",
			token: "https://acme.fyde.com/connectors/v1/42?auth_token=abc%20def&tenant_id=0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0",
			want:  false,
		},
		{
			name:  "trailing garbage",
			token: "https://acme.fyde.com/connectors/v1/42?auth_token=abc&tenant_id=0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0&extra=1",
			want:  false,
		},
		{
			name:  "empty string",
			token: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.token))
		})
	}
}
