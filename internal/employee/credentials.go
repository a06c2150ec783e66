package employee

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"

	"github.com/lumenkraft/hr-management/internal"
)

// tempPassCharset avoids ambiguous characters (0/O, 1/l/I) so operators can
// read a generated password to an employee over the phone.
const tempPassCharset = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz23456789!@#$%&*()-_=+"

const DefaultTempPasswordLength = 12

// HashTempPassword produces a salted one-way hash of a temporary credential.
// The caller must discard the plaintext immediately after this returns,
// success or failure; nothing here retains it.
func HashTempPassword(plaintext string, cost int) (string, error) {
	if cost <= 0 {
		cost = internal.DefaultBCryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", internal.ErrCredentialPrepare.WithCause(err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored hash.
func VerifyPassword(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// GenerateTempPassword produces a random human-friendly temporary password.
func GenerateTempPassword(length int) (string, error) {
	if length < 8 {
		length = DefaultTempPasswordLength
	}
	out := make([]byte, length)
	max := big.NewInt(int64(len(tempPassCharset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", internal.ErrCredentialPrepare.WithCause(err)
		}
		out[i] = tempPassCharset[n.Int64()]
	}
	return string(out), nil
}
