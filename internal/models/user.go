// Package models defines the data records persisted by the app.
package models

// User is a registered account. Records are immutable once created.
// PasswordDigest always holds the lowercase hex SHA-256 of the password,
// never the plaintext.
type User struct {
	Name           string
	Email          string
	Mobile         string
	PasswordDigest string
}
