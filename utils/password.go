package authUtils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt digest of plain. bcrypt salts every call,
// so two hashes of the same password differ.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plain matches the stored digest. A
// malformed digest verifies as false rather than erroring.
func VerifyPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
