package domain

import "time"

// TokenPair is the result of a successful login: a short-lived access token
// and a longer-lived refresh token, each independently expiring.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Profile is the read projection of a user returned alongside tokens.
type Profile struct {
	Email    string
	FullName string
	Role     Role
}
