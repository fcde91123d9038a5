package platform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOSRelease(t *testing.T) {
	src := `# comment line
NAME="Ubuntu"
VERSION_ID="22.04"
ID=ubuntu
ID_LIKE=debian

PRETTY_NAME="Ubuntu 22.04.3 LTS"
`
	fields, err := ParseOSRelease(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, "ubuntu", fields["ID"])
	assert.Equal(t, "debian", fields["ID_LIKE"])
	assert.Equal(t, "22.04", fields["VERSION_ID"])
	assert.Equal(t, "Ubuntu 22.04.3 LTS", fields["PRETTY_NAME"])
}

func TestClassifyFamily(t *testing.T) {
	tests := []struct {
		id     string
		idLike string
		want   Family
	}{
		{"ubuntu", "debian", FamilyDebian},
		{"debian", "", FamilyDebian},
		{"raspbian", "debian", FamilyDebian},
		{"centos", "rhel fedora", FamilyRHEL},
		{"rhel", "fedora", FamilyRHEL},
		{"rocky", "rhel centos fedora", FamilyRHEL},
		{"amzn", "centos rhel fedora", FamilyRHEL},
		{"linuxmint", "ubuntu debian", FamilyDebian}, // via ID_LIKE
		{"opensuse-leap", "suse opensuse", FamilyUnknown},
		{"arch", "", FamilyUnknown},
		{"", "", FamilyUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyFamily(tt.id, tt.idLike))
		})
	}
}
