package shortcode

import (
	"crypto/rand"
	"math/big"
)

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// Length is the fixed size of generated codes. 62^6 gives roughly
	// 56.8 billion combinations, so collisions stay rare.
	Length = 6
)

// Generate returns a random 6-character alphanumeric code drawn from a
// cryptographically strong source. Uniqueness is the caller's problem; the
// generator never touches storage.
func Generate() (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	b := make([]byte, Length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = alphabet[n.Int64()]
	}
	return string(b), nil
}
