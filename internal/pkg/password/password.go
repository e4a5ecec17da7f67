package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the bcrypt work factor. 10 keeps login latency in the
// tens of milliseconds while staying expensive to brute-force.
const DefaultCost = 10

// MinLength is the minimum accepted plaintext length.
const MinLength = 6

// Hash hashes a password using bcrypt with a per-call random salt.
func Hash(plaintext string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify compares a plaintext password with a stored hash. A malformed
// hash yields false, never an error.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// IsHash reports whether the stored value looks like a bcrypt hash.
// Used to tell corrupt credential rows apart from wrong passwords.
func IsHash(hash string) bool {
	_, err := bcrypt.Cost([]byte(hash))
	return err == nil
}

// ValidateLength checks the plaintext against the minimum length.
func ValidateLength(plaintext string) bool {
	return len(plaintext) >= MinLength
}
