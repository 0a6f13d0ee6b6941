package adapter

import (
	"errors"
	"fmt"
)

// ErrFeatureNotConfigured is returned when the endpoint for a feature has
// no configured URL. The feature is disabled, not broken; callers show a
// warning instead of an error state.
var ErrFeatureNotConfigured = errors.New("feature endpoint not configured")

// ErrNoEmail is returned when the OAuth provider's profile carries no
// email address. Login cannot proceed without one.
var ErrNoEmail = errors.New("account does not have an email address")

// ErrLoginNotConfigured is returned by Authorize when the Google OAuth
// client id is missing from the configuration. Login stays disabled; the
// rest of the client works anonymously.
var ErrLoginNotConfigured = errors.New("Google sign-in is not configured")

// BackendError is a classified backend failure: either a non-success HTTP
// status or a success status whose body carried error:true. Description
// holds the human-readable text shown to the user.
type BackendError struct {
	Status      int
	Description string
}

func (e *BackendError) Error() string {
	return e.Description
}

// AsBackendError unwraps err into a *BackendError if it is one.
func AsBackendError(err error) (*BackendError, bool) {
	var be *BackendError
	ok := errors.As(err, &be)
	return be, ok
}

func notConfigured(feature string) error {
	return fmt.Errorf("%w: %s", ErrFeatureNotConfigured, feature)
}
