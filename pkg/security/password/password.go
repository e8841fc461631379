// Package password wraps bcrypt hashing of account secrets. Every digest
// carries its own random salt, so hashing the same plaintext twice yields
// different digests.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned by Compare when the plaintext does not match
// the digest. Any other Compare error means the stored digest itself is
// corrupt and must not be reported as bad credentials.
var ErrMismatch = errors.New("password does not match")

// Hash generates a salted bcrypt digest of the plaintext.
func Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", errors.New("empty password")
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	return string(h), err
}

// Compare validates the given plaintext against a stored digest.
func Compare(plaintext, digest string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}
	return nil
}
