package types

import "fmt"

// Exit codes used across the installer. Kept stable because operators
// script against them.
const (
	ExitOK            = 0
	ExitPrivilege     = 1
	ExitEnrollment    = 2
	ExitArgument      = 3
	ExitUnsupportedOS = 4
)

// EnvVar is a single KEY=VALUE pair destined for the connector's systemd
// environment override. Order matters, so pairs travel in slices rather
// than maps.
type EnvVar struct {
	Key   string
	Value string
}

// InstallConfig holds the fully resolved installer configuration. It is
// built once by the resolver and treated as immutable afterwards.
type InstallConfig struct {
	EnrollmentToken string
	ExtraEnvVars    []EnvVar
	LogLevel        string
	Unattended      bool
	SkipNTP         bool
	NoStartService  bool
}

// ExtraEnv returns the value for key and whether it is present.
func (c *InstallConfig) ExtraEnv(key string) (string, bool) {
	for _, v := range c.ExtraEnvVars {
		if v.Key == key {
			return v.Value, true
		}
	}
	return "", false
}

// FailureReason classifies why an enrollment attempt failed.
type FailureReason string

const (
	ReasonMissingLDAPParams   FailureReason = "missing_ldap_params"
	ReasonInvalidAuthToken    FailureReason = "invalid_auth_token"
	ReasonMissingOktaParams   FailureReason = "missing_okta_params"
	ReasonUnrecognizedSuccess FailureReason = "unrecognized_success"
	ReasonUnrecognizedFailure FailureReason = "unrecognized_failure"
)

// EnrollmentOutcome is the result of one enrollment attempt. AuthExtra
// carries an identity-provider access token extracted from the connector
// output (Azure/Google flows); it is nil for plain successes and failures.
type EnrollmentOutcome struct {
	Success   bool
	AuthExtra *EnvVar
	Reason    FailureReason
}

// ExitError is an error carrying a process exit code. Command handlers
// wrap every terminal failure in one so main can map it to os.Exit.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Exitf builds an ExitError with a formatted message.
func Exitf(code int, format string, args ...interface{}) *ExitError {
	return &ExitError{Code: code, Err: fmt.Errorf(format, args...)}
}
