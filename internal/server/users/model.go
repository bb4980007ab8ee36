package users

import "time"

// User is the stored identity record. Token is an opaque session credential
// minted once at signup; there is no expiry or rotation. Only the salt and
// the derived hash of the password are kept.
type User struct {
	ID           string
	Username     string
	Token        string
	PasswordHash []byte
	Salt         []byte
	Friends      []string
	CreatedAt    time.Time
}

// Friend is the projection of a friend id resolved to its username.
type Friend struct {
	ID       string
	Username string
}

// ResolvedUser is a User with its friends list joined. This is what the auth
// gate hands to the rest of the request.
type ResolvedUser struct {
	ID       string
	Username string
	Token    string
	Friends  []Friend
}
