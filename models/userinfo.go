package models

// GoogleUserInfo holds the profile fields fetched from Google's userinfo
// endpoint after a successful OAuth exchange.
type GoogleUserInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// ToUser converts the provider profile into a GifCamp user with the
// "google" method tag. The name falls back to the email address.
func (g GoogleUserInfo) ToUser() User {
	name := g.Name
	if name == "" {
		name = g.Email
	}
	return User{
		Name:    name,
		Email:   g.Email,
		Picture: g.Picture,
		Method:  MethodGoogle,
	}
}
