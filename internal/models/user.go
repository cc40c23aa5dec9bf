package models

// User is a login account. Passwords are plaintext because the only
// account is the seeded development admin; swap the credential store
// behind AuthService before pointing this at real users.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// AuthUser is the projection of a User returned to clients.
type AuthUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// LoginResult is the successful login payload: a bearer token plus the
// authenticated user projection.
type LoginResult struct {
	AccessToken string   `json:"access_token"`
	User        AuthUser `json:"user"`
}

// LoginInput is the credential pair presented to POST /auth/login.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// VerifyInput is the body of POST /auth/verify.
type VerifyInput struct {
	Token string `json:"token"`
}
