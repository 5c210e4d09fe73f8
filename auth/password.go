package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a bcrypt hash with an embedded salt at the given
// cost. Used at registration only.
func HashPassword(plaintext string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether hashed was produced from plaintext. A
// mismatch is (false, nil); a non-nil error means verification could not
// complete (e.g. malformed hash) and must not be read as a mismatch.
func CheckPassword(plaintext, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}
