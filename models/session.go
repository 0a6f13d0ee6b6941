package models

// Session is the (User, AuthToken) pair representing an authenticated
// client. It is valid only when both halves are present; the token is
// opaque to the client and only ever forwarded to the backend.
type Session struct {
	User      User
	AuthToken string
}

// Valid reports whether the session carries both a user and a token.
func (s Session) Valid() bool {
	return s.User.Email != "" && s.AuthToken != ""
}

// Session store keys. The persisted session occupies exactly these two
// keys; they are written and cleared together.
const (
	SessionKeyUser      = "user"
	SessionKeyAuthToken = "authToken"
)
