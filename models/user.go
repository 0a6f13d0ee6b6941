package models

// User represents an authenticated GifCamp account. It is assembled by
// merging the OAuth provider's profile fields with the fields returned by
// the backend's record-login call: the backend-assigned ID takes precedence,
// while Picture and Method always keep their OAuth-derived values.
type User struct {
	// ID is the backend-assigned user identifier. It is zero until the
	// record-login call returns an authoritative user object.
	ID int64 `json:"id"`

	// Name is the display name taken from the OAuth profile. Falls back
	// to the email address when the provider supplies no name.
	Name string `json:"name"`

	// Email uniquely identifies the account. A login attempt without an
	// email is rejected before it reaches the backend.
	Email string `json:"email"`

	// Picture is an optional avatar URL sourced from the OAuth provider.
	// The backend never supplies this field.
	Picture string `json:"picture,omitempty"`

	// Method tags the provider that authenticated the user ("google",
	// or "oauth" when unspecified).
	Method string `json:"method,omitempty"`
}

// Method tags for the authentication provider. MethodOAuth is the fallback
// applied when a login request does not name its provider.
const (
	MethodGoogle = "google"
	MethodOAuth  = "oauth"
)
