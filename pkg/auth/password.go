package auth

import "golang.org/x/crypto/bcrypt"

// PasswordCost is the bcrypt work factor used for every stored password.
const PasswordCost = 10

// maxPasswordBytes is the most bcrypt reads; later bytes do not affect the hash.
const maxPasswordBytes = 72

// HashPassword returns a salted bcrypt hash of pw.
// Passwords longer than 72 bytes are cut to 72, as other bcrypt libraries do,
// so hashes stay compatible with records written elsewhere.
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(clamp(pw), PasswordCost)
	return string(b), err
}

// CheckPassword reports whether pw matches hash.
func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), clamp(pw)) == nil
}

func clamp(pw string) []byte {
	b := []byte(pw)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
