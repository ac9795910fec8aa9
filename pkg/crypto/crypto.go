package crypto

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plaintext password using bcrypt.
// Each call generates a fresh salt, so hashing the same password twice
// yields different strings; CheckPassword still verifies either one.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword reports whether the plaintext password matches the
// bcrypt hash. Returns false for malformed hashes rather than erroring.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
