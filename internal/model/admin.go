package model

// Admin is an editorial account. PasswordHash never leaves the server.
type Admin struct {
	ID           string `json:"-"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// Credentials is the login and seed-admin payload.
type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Session is returned on successful login.
type Session struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
}

// Identity is the authenticated subject of a session token.
type Identity struct {
	Email string `json:"username"`
}
