package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Operator is the single account allowed into the admin pages.
// Password is compared as plaintext; PasswordHash, when set, is a bcrypt
// hash and takes precedence over Password.
type Operator struct {
	Username     string
	Password     string
	PasswordHash string
}

// Configured reports whether a password (plain or hashed) is set.
func (o Operator) Configured() bool {
	return o.Password != "" || o.PasswordHash != ""
}

// Verify reports whether username and password match the operator.
// Empty credentials never match.
func (o Operator) Verify(username, password string) bool {
	if !o.Configured() || username == "" || password == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(o.Username)) == 1

	var passOK bool
	if o.PasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(o.PasswordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(o.Password)) == 1
	}
	return userOK && passOK
}
