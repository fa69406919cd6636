package cli

import "fmt"

// Exit codes for the pushcli CLI. The spec requires non-zero on every
// failure path; distinct codes support scripting around the tool.
const (
	// ExitSuccess indicates the notification was accepted (or help was shown).
	ExitSuccess = 0

	// ExitValidationFailed indicates one or more parameters were rejected.
	ExitValidationFailed = 1

	// ExitSendFailed indicates the API call failed at the transport or
	// application level.
	ExitSendFailed = 2

	// ExitInvalidArguments indicates malformed or unrecognized flags.
	ExitInvalidArguments = 3

	// ExitConfigError indicates the config file could not be loaded.
	ExitConfigError = 4
)

// exitError is a custom error type that carries an exit code.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError creates a new exit error with the given code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// ExitCode returns the exit code from an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if e, ok := err.(*exitError); ok {
		return e.code
	}
	return ExitValidationFailed
}
