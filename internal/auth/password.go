// Package auth holds the request gate: password hashing primitives and the
// bearer-token middleware protecting API operations.
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plaintext access password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword reports whether the submitted password matches the stored
// hash. bcrypt's comparison is constant-time on the derived key.
func ComparePassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
