package enroll

import (
	"fmt"
	"strings"

	"github.com/fyde/connector-install/types"
)

const (
	ldapKeyPrefix      = "FYDE_LDAP_"
	authTokenKeySuffix = "_AUTH_TOKEN"

	oktaAuthTokenKey = "FYDE_OKTA_AUTH_TOKEN"
	oktaDomainKey    = "FYDE_OKTA_DOMAIN"
)

// HasPresetAuth reports whether the extra variables already carry
// identity-provider credentials, in which case the authorize subprocess
// is skipped and the variables are passed through to the service as-is.
func HasPresetAuth(vars []types.EnvVar) bool {
	for _, v := range vars {
		if strings.HasSuffix(v.Key, authTokenKeySuffix) || strings.HasPrefix(v.Key, ldapKeyPrefix) {
			return true
		}
	}
	return false
}

// ValidatePresets enforces mandatory key pairings on the extra
// variables. It runs before any subprocess is invoked: an Okta auth
// token without its domain is a hard error regardless of the authorize
// path taken.
func ValidatePresets(cfg *types.InstallConfig) error {
	if _, hasToken := cfg.ExtraEnv(oktaAuthTokenKey); hasToken {
		if _, hasDomain := cfg.ExtraEnv(oktaDomainKey); !hasDomain {
			return fmt.Errorf("%s requires a matching %s (-e okta-domain=...)", oktaAuthTokenKey, oktaDomainKey)
		}
	}
	return nil
}
